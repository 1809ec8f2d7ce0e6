package registry

import (
	"fmt"

	"github.com/hookline/hookline/internal/event"
)

// DuplicateNameError reports two distinct implementations claiming the same
// hook name.
type DuplicateNameError struct {
	Name     string
	Existing event.Type
	Incoming event.Type
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("hook name %q already registered (existing %s, incoming %s)",
		e.Name, e.Existing, e.Incoming)
}

// NotFoundError reports a dispatch or test referencing an unregistered name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no hook registered under name %q", e.Name)
}
