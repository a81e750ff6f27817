package quadtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every argument validation failure.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrNilArgument indicates that a required argument was absent.
//
// Index is the position of the offending element for range operations and
// -1 otherwise. errors.Is(err, ErrInvalidArgument) holds for every
// ErrNilArgument.
type ErrNilArgument struct {
	Name  string
	Index int
}

func (e *ErrNilArgument) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("nil argument: %s[%d]", e.Name, e.Index)
	}
	return fmt.Sprintf("nil argument: %s", e.Name)
}

func (e *ErrNilArgument) Unwrap() error { return ErrInvalidArgument }

func nilArgument(name string) error {
	return &ErrNilArgument{Name: name, Index: -1}
}

func nilElement(name string, i int) error {
	return &ErrNilArgument{Name: name, Index: i}
}
