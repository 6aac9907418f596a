package domain

import (
	"errors"
	"fmt"
)

// InsufficientWordsError is returned when the word table holds fewer pairs
// than a round needs. The round is not started.
type InsufficientWordsError struct {
	Required  int
	Available int
}

func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("need at least %d word pairs to start a round, have %d", e.Required, e.Available)
}

// PersistenceError wraps any failure of the underlying storage
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err with the failed operation name, nil stays nil
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistenceError reports whether err is or wraps a PersistenceError
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// IsInsufficientWords reports whether err is or wraps an InsufficientWordsError
func IsInsufficientWords(err error) bool {
	var ie *InsufficientWordsError
	return errors.As(err, &ie)
}
