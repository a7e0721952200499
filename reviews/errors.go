// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reviews

import (
	"errors"
	"fmt"
)

// ErrValidation matches any *ValidationError via errors.Is
var ErrValidation = errors.New("validation failed")

// ValidationError reports a submission that cannot be stored.
// Fields maps the offending field to the rule it broke.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PersistenceError wraps a store failure
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("review %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
