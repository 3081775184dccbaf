package phone

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName       = errors.New("invalid phone name")
	ErrNoRecommendations = errors.New("no recommendations found")
	ErrLookupFailed      = errors.New("phone catalog lookup failed")
)

// NotFoundError reports that no catalog entry matched a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no phone found matching %q", e.Name)
}

// CompareError tags a lookup failure with the position (1 or 2) of the phone that failed.
type CompareError struct {
	Position int
	Err      error
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("phone %d: %v", e.Position, e.Err)
}

func (e *CompareError) Unwrap() error {
	return e.Err
}
