package hanoi

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalStack indicates a larger disk resting on a smaller one.
	ErrIllegalStack = errors.New("hanoi: disk placed on a smaller disk")

	// ErrDiskSet indicates a disk that is missing or present more than once.
	ErrDiskSet = errors.New("hanoi: disk set is not a permutation of 1..N")
)

// InvariantError reports where a board violates the legality invariant.
type InvariantError struct {
	Tower   int
	Rank    int
	Wrapped error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s (tower %d, rank %d)", e.Wrapped.Error(), e.Tower, e.Rank)
}

func (e *InvariantError) Unwrap() error {
	return e.Wrapped
}
