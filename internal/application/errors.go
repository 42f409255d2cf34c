package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound            = errors.New("not found")
	ErrNoSelection         = errors.New("nothing selected")
	ErrIneligibleNode      = errors.New("node cannot be linked")
	ErrNotLinked           = errors.New("node is not linked")
	ErrPropertyUnsupported = errors.New("property not supported")
	ErrPropertyReadOnly    = errors.New("property is read-only")
	ErrTypeMismatch        = errors.New("value type mismatch")
	ErrImportFailed        = errors.New("import failed")
	ErrFontUnavailable     = errors.New("font unavailable")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LinkError represents a failure to link one selected node
type LinkError struct {
	NodeID string
	Reason string
	Err    error
}

func (e *LinkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot link %s: %s: %v", e.NodeID, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot link %s: %s", e.NodeID, e.Reason)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}

// PropertyError represents a rejected property write
type PropertyError struct {
	NodeID   string
	Property string
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("cannot set %s on %s: %v", e.Property, e.NodeID, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}
