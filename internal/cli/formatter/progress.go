package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCreditBar renders elective progress like [████░░] 3/4 cr. The bar is
// green once the target is reached, red when it is overshot by more than one
// credit and yellow otherwise.
func RenderCreditBar(selected, target, width int) string {
	if width < 2 {
		width = 2
	}
	if target <= 0 {
		return fmt.Sprintf("%s %d cr", StyleOK.Render(strings.Repeat(filledBlock, width)), selected)
	}

	filled := min(selected*width/target, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleWarn
	switch {
	case selected > target+1:
		style = StyleError
	case selected >= target:
		style = StyleOK
	}
	return fmt.Sprintf("[%s] %d/%d cr", style.Render(bar), selected, target)
}
