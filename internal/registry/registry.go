package registry

import (
	"errors"
	"reflect"

	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/logger"
)

// Registry is the table of classified hook implementations for one process.
// It is an explicit value, built by scanning and passed to whoever needs it;
// there is no package-level instance.
type Registry struct {
	byKind map[event.Type][]*Impl
	byName map[string]*Impl
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byKind: make(map[event.Type][]*Impl),
		byName: make(map[string]*Impl),
	}
}

// Register inserts an implementation. Names are unique across the whole
// table: a second registration under an existing name fails with
// *DuplicateNameError unless it is the identical implementation (same name,
// event type, and handler type), in which case the call is a no-op so that
// re-scans stay idempotent.
func (r *Registry) Register(impl *Impl) error {
	existing, ok := r.byName[impl.Name]
	if ok {
		if existing.Kind == impl.Kind &&
			reflect.TypeOf(existing.handler) == reflect.TypeOf(impl.handler) {
			return nil
		}
		return &DuplicateNameError{
			Name:     impl.Name,
			Existing: existing.Kind,
			Incoming: impl.Kind,
		}
	}
	r.byName[impl.Name] = impl
	r.byKind[impl.Kind] = append(r.byKind[impl.Kind], impl)
	return nil
}

// ListByKind returns the implementations registered for an event type, in
// registration order.
func (r *Registry) ListByKind(kind event.Type) []*Impl {
	impls := r.byKind[kind]
	out := make([]*Impl, len(impls))
	copy(out, impls)
	return out
}

// ResolveByName returns the implementation registered under name, or
// *NotFoundError.
func (r *Registry) ResolveByName(name string) (*Impl, error) {
	impl, ok := r.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return impl, nil
}

// Len returns the number of registered implementations.
func (r *Registry) Len() int {
	return len(r.byName)
}

// Skipped records a definition a scan could not classify: it satisfied zero
// or more than one capability. Informational, not an error.
type Skipped struct {
	Path  string
	Type  string
	Kinds []event.Type
}

// ScanReport summarizes one scan pass.
type ScanReport struct {
	Registered []*Impl
	Skipped    []Skipped
}

// ScanAndRegister classifies every definition in every unit the source lists
// under the scan policy and registers the qualifying ones. Units are visited
// in the source's order, which is lexicographic by path for the shipped
// sources, so conflict detection is reproducible. Name conflicts do not
// abort the scan; they are collected and returned joined, after everything
// else has been classified and registered.
func (r *Registry) ScanAndRegister(src Source, opts ScanOptions) (*ScanReport, error) {
	units, err := src.Units()
	if err != nil {
		return nil, err
	}

	report := &ScanReport{}
	var conflicts []error
	for _, unit := range units {
		if !opts.includes(unit.Path) {
			continue
		}
		for _, def := range unit.Definitions() {
			impl, kinds, ok := Classify(def)
			if !ok {
				skip := Skipped{
					Path:  unit.Path,
					Type:  reflect.TypeOf(def).String(),
					Kinds: kinds,
				}
				report.Skipped = append(report.Skipped, skip)
				logger.Info().
					Str("unit", skip.Path).
					Str("type", skip.Type).
					Int("capabilities", len(kinds)).
					Msg("Definition does not satisfy exactly one capability, skipping")
				continue
			}
			if err := r.Register(impl); err != nil {
				conflicts = append(conflicts, err)
				continue
			}
			report.Registered = append(report.Registered, impl)
			logger.Debug().
				Str("unit", unit.Path).
				Str("hook", impl.Name).
				Str("event", string(impl.Kind)).
				Msg("Registered hook")
		}
	}
	return report, errors.Join(conflicts...)
}
