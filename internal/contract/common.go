package contract

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/alexanderramin/degreeplan/internal/elective"
	"github.com/alexanderramin/degreeplan/internal/planner"
	"github.com/alexanderramin/degreeplan/internal/repository"
	"github.com/alexanderramin/degreeplan/internal/scheduler"
)

// ErrMalformedRequest wraps payload decoding failures.
var ErrMalformedRequest = errors.New("malformed request")

type ErrorCode string

const (
	CodeInvalidInput  ErrorCode = "invalid_input"
	CodeUnsatisfiable ErrorCode = "unsatisfiable"
	CodeTimeout       ErrorCode = "timeout"
	CodeNotFound      ErrorCode = "not_found"
	CodeInternal      ErrorCode = "internal"
)

// ErrorResponse is the failure payload. Stall details are filled in when the
// schedule could not progress.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Term      string    `json:"term,omitempty"`
	Remaining []int64   `json:"remaining,omitempty"`
}

var invalidInput = []error{
	ErrMalformedRequest,
	planner.ErrInvalidSelection,
	planner.ErrMissingReference,
	planner.ErrUnknownElective,
	planner.ErrDanglingEdge,
	scheduler.ErrInvalidPreferences,
	scheduler.ErrInvalidClass,
	domain.ErrInvalidTerm,
	app.ErrUnknownCourseType,
	app.ErrInvalidCatalog,
	elective.ErrPolicyUnmet,
	elective.ErrNotInSection,
}

// CodeFor classifies err into a contract error code.
func CodeFor(err error) ErrorCode {
	for _, target := range invalidInput {
		if errors.Is(err, target) {
			return CodeInvalidInput
		}
	}
	switch {
	case errors.Is(err, scheduler.ErrStalled), errors.Is(err, scheduler.ErrIterationCeiling):
		return CodeUnsatisfiable
	case errors.Is(err, app.ErrCatalogTimeout):
		return CodeTimeout
	case errors.Is(err, repository.ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}

// NewErrorResponse builds the failure payload for err.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error(), Code: CodeFor(err)}
	var stall *scheduler.StallError
	if errors.As(err, &stall) {
		resp.Term = stall.Term.String()
		resp.Remaining = stall.Remaining
	}
	return resp
}

// IDList decodes a list of class ids given either as bare numbers or as
// objects carrying an "id" field, and encodes as bare numbers.
type IDList []int64

func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("id list: %w", err)
	}
	out := make(IDList, 0, len(raw))
	for _, r := range raw {
		var id int64
		if err := json.Unmarshal(r, &id); err == nil {
			out = append(out, id)
			continue
		}
		var obj struct {
			ID *int64 `json:"id"`
		}
		if err := json.Unmarshal(r, &obj); err != nil || obj.ID == nil {
			return fmt.Errorf("id list: entry %s is neither an id nor an object with an id", r)
		}
		out = append(out, *obj.ID)
	}
	*l = out
	return nil
}
