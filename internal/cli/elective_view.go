package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/alexanderramin/degreeplan/internal/elective"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type electiveKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Next   key.Binding
	Back   key.Binding
	Cancel key.Binding
}

func defaultElectiveKeys() electiveKeyMap {
	return electiveKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
		Next:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next section")),
		Back:   key.NewBinding(key.WithKeys("left", "backspace", "b"), key.WithHelp("←/b", "back")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k electiveKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Next, k.Back, k.Cancel}
}

// electiveModel walks the user through every elective section, one at a
// time, until each meets its credit target.
type electiveModel struct {
	wizard    *elective.Wizard
	keys      electiveKeyMap
	cursor    int
	status    string
	done      bool
	cancelled bool
}

func newElectiveModel(w *elective.Wizard) *electiveModel {
	return &electiveModel{wizard: w, keys: defaultElectiveKeys(), done: w.Done()}
}

func (m *electiveModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return nil
}

func (m *electiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done || m.cancelled {
		return m, nil
	}
	section, ok := m.wizard.Current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(section.Classes)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(section.Classes) > 0 {
			m.status = ""
			if err := m.wizard.Toggle(section.Classes[m.cursor].ID); err != nil {
				m.status = err.Error()
			}
		}
	case key.Matches(keyMsg, m.keys.Next):
		if err := m.wizard.Advance(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.cursor, m.status = 0, ""
		if m.wizard.Done() {
			m.done = true
			return m, tea.Quit
		}
	case key.Matches(keyMsg, m.keys.Back):
		m.wizard.Back()
		m.cursor, m.status = 0, ""
	}
	return m, nil
}

func (m *electiveModel) View() string {
	section, ok := m.wizard.Current()
	if !ok {
		return formatter.Dim("Electives chosen.") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Electives %d/%d", m.wizard.Index()+1, m.wizard.Len())))
	b.WriteString("\n")
	b.WriteString(formatter.Bold(section.Name) + "  " + formatter.Dim(section.RequirementText()) + "\n\n")

	for i, c := range section.Classes {
		pointer := "  "
		if i == m.cursor {
			pointer = formatter.StyleHeading.Render("> ")
		}
		box := "[ ]"
		if m.wizard.IsSelected(c.ID) {
			box = formatter.StyleOK.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %s %s %s\n", pointer, box, c.Number, c.Name, formatter.Dim(fmt.Sprintf("(%d cr)", c.Credits)))
	}

	b.WriteString("\n" + formatter.RenderCreditBar(m.wizard.CreditsSelected(section.ID), section.CreditsNeeded, 12) + "\n")
	if m.status != "" {
		b.WriteString(formatter.StyleError.Render(m.status) + "\n")
	}

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		help = append(help, k.Help().Key+" "+k.Help().Desc)
	}
	b.WriteString("\n" + formatter.Dim(strings.Join(help, " · ")) + "\n")
	return b.String()
}
