// Package dispatch bridges one host-triggered invocation to one hook
// implementation: raw JSON in, encoded decision out.
package dispatch

import (
	"fmt"

	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/logger"
	"github.com/hookline/hookline/internal/registry"
)

// ExecError reports a failure inside the hook implementation's own logic,
// including recovered panics.
type ExecError struct {
	Hook string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("hook %q failed: %v", e.Hook, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Dispatcher resolves a hook by name and runs it against one payload.
type Dispatcher struct {
	Registry *registry.Registry
}

// New returns a dispatcher over the given registry.
func New(reg *registry.Registry) *Dispatcher {
	return &Dispatcher{Registry: reg}
}

// Run executes one dispatch. The payload is decoded with the event type the
// resolved implementation declares; a payload claiming a different event is
// a configuration mismatch and fails rather than being coerced. On success
// the returned bytes are exactly one encoded JSON document; on any failure
// the bytes are nil so the caller cannot emit partial output on the success
// channel.
func (d *Dispatcher) Run(name string, raw []byte) ([]byte, error) {
	impl, err := d.Registry.ResolveByName(name)
	if err != nil {
		return nil, err
	}

	in, err := event.Decode(impl.Kind, raw)
	if err != nil {
		return nil, err
	}

	out, err := execute(impl, in)
	if err != nil {
		return nil, &ExecError{Hook: name, Err: err}
	}
	if out == nil {
		out = event.NewPassthrough()
	}

	logger.Debug().
		Str("hook", name).
		Str("event", string(impl.Kind)).
		Msg("Hook executed")

	return event.Encode(out)
}

// execute invokes the handler, converting a panic in user hook logic into an
// ordinary error so it surfaces on the error channel instead of crashing the
// invocation with stdout half-written.
func execute(impl *registry.Impl, in event.Input) (out *event.Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return impl.Execute(in)
}
