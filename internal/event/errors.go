package event

import "fmt"

// SchemaError reports a payload that does not satisfy the input contract for
// its event type: missing required fields, wrong shapes, or a declared event
// name that disagrees with the type being decoded.
type SchemaError struct {
	Kind   Type
	Detail string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s payload: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("invalid %s payload: %s", e.Kind, e.Detail)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// InvalidDecisionError reports an output decision outside its constrained
// vocabulary. It is raised at construction time, never at serialization.
type InvalidDecisionError struct {
	Decision string
}

func (e *InvalidDecisionError) Error() string {
	return fmt.Sprintf("invalid permission decision %q: must be allow, deny, or ask", e.Decision)
}
