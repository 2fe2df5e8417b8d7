package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/degreeplan/internal/planner"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Levels(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	ctx := context.Background()

	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "plan",
		Duration: 12 * time.Millisecond,
		Fields:   map[string]any{"terms": 4, "run_id": "r1"},
	})
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name: "plan",
		Err:  fmt.Errorf("%w: a major is required", planner.ErrInvalidSelection),
	})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "import", Err: errors.New("disk full")})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if assert.Len(t, lines, 3) {
		first := string(lines[0])
		assert.Contains(t, first, "level=INFO")
		assert.Contains(t, first, "use_case=plan duration_ms=12 success=true run_id=r1 terms=4")
		assert.Contains(t, string(lines[1]), "level=WARN")
		assert.Contains(t, string(lines[2]), "level=ERROR")
		assert.Contains(t, string(lines[2]), `error="disk full"`)
	}
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	a, b := &recordingObserver{}, &recordingObserver{}
	assert.Same(t, a, useCaseObserverOrNoop([]UseCaseObserver{nil, a}))

	obs := useCaseObserverOrNoop([]UseCaseObserver{a, nil, b})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "schedule"})
	assert.Equal(t, "schedule", a.last(t).Name)
	assert.Equal(t, "schedule", b.last(t).Name)
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
