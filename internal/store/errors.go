package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// IntegrityError reports a mutation that would leave the entity graph
// with a dangling or inconsistent reference. The operation that raised
// it mutated nothing.
type IntegrityError struct {
	Entity string // entity kind being written, e.g. "task"
	Ref    string // the violated reference, e.g. "channel_id"
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("referential integrity: %s.%s: %s", e.Entity, e.Ref, e.Reason)
}

// IsIntegrity reports whether err is (or wraps) an IntegrityError.
func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}
