package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// DuplicateError represents a uniqueness violation on insert.
type DuplicateError struct {
	Identifier string
}

func (e DuplicateError) Error() string {
	if e.Identifier == "" {
		return "duplicate identifier"
	}
	return fmt.Sprintf("duplicate identifier %q", e.Identifier)
}

// Is enables errors.Is matching on DuplicateError.
func (e DuplicateError) Is(target error) bool {
	_, ok := target.(DuplicateError)
	if ok {
		return true
	}
	_, ok = target.(*DuplicateError)
	return ok
}

// ErrDuplicate is the sentinel error for identifier uniqueness violations.
var ErrDuplicate = DuplicateError{}

// ExhaustedError is returned when minting gives up after the retry bound.
// It signals a saturated shoulder keyspace or a template with too little
// entropy, which needs operator attention rather than a client retry.
type ExhaustedError struct {
	Shoulder string
	Attempts int
}

func (e ExhaustedError) Error() string {
	if e.Shoulder == "" {
		return "identifier generation exhausted"
	}
	return fmt.Sprintf("identifier generation exhausted for shoulder %q after %d attempts", e.Shoulder, e.Attempts)
}

// Is enables errors.Is matching on ExhaustedError.
func (e ExhaustedError) Is(target error) bool {
	_, ok := target.(ExhaustedError)
	if ok {
		return true
	}
	_, ok = target.(*ExhaustedError)
	return ok
}

// ErrExhausted is the sentinel error for generation exhaustion.
var ErrExhausted = ExhaustedError{}
