package planner

import "errors"

var (
	// ErrInvalidSelection indicates a missing, duplicate or incompatible
	// major/minor selection.
	ErrInvalidSelection = errors.New("invalid course selection")

	// ErrMissingReference indicates a course or class id that the catalog
	// could not resolve.
	ErrMissingReference = errors.New("missing reference")

	// ErrUnknownElective indicates an elective choice that is not a class of
	// the section it was chosen for.
	ErrUnknownElective = errors.New("elective not offered in section")

	// ErrDanglingEdge indicates a prerequisite or corequisite id that does not
	// resolve inside the flattened class set.
	ErrDanglingEdge = errors.New("dangling dependency edge")
)
