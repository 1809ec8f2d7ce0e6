package settings

import (
	"regexp"

	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/registry"
)

// Managed entries invoke the framework binary with a fixed template
// parameterized only by the hook name. The recognizer below is exact: a
// hand-written entry that happens to match it is treated as managed and will
// be regenerated on the next reconciliation. Known edge case, documented
// rather than guessed around.
const managedCommandPrefix = "hookline execute "

var managedCommandRE = regexp.MustCompile(`^hookline execute ([A-Za-z0-9][A-Za-z0-9._-]*)$`)

// ManagedCommand returns the invocation command for a hook name.
func ManagedCommand(name string) string {
	return managedCommandPrefix + name
}

// IsManaged reports whether an action entry is owned by this framework.
func IsManaged(a Action) bool {
	return a.Type == "command" && managedCommandRE.MatchString(a.Command)
}

// ManagedName extracts the hook name from a managed action entry.
func ManagedName(a Action) (string, bool) {
	if !IsManaged(a) {
		return "", false
	}
	m := managedCommandRE.FindStringSubmatch(a.Command)
	return m[1], true
}

// Override adjusts how one registered hook is advertised, without touching
// the hook itself. Keyed by hook name in the tool configuration.
type Override struct {
	Disabled bool
	Matcher  string
	Timeout  int
}

// Reconciler computes the managed subset of the settings document from a
// registry and merges it into an existing document.
type Reconciler struct {
	Registry  *registry.Registry
	Overrides map[string]Override

	// DefaultTimeout replaces a non-positive advertised timeout. Zero means
	// registry.DefaultTimeout.
	DefaultTimeout int
}

// Apply merges the managed entries derived from the registry into doc and
// returns a new document. It is a pure function of its inputs: doc is not
// mutated, foreign entries are carried over verbatim in their original
// order, and managed entries are replaced wholesale. Running it twice with
// the same registry yields byte-identical output.
func (r *Reconciler) Apply(doc *Document) *Document {
	out := NewDocument()
	for k, v := range doc.Extra {
		out.Extra[k] = v
	}

	managed := r.computeManaged()

	// Pass 1: carry over foreign entries, stripping managed actions. Groups
	// left empty by the strip are dropped.
	for name, groups := range doc.Hooks {
		var kept []MatcherGroup
		for _, g := range groups {
			var foreign []Action
			for _, a := range g.Hooks {
				if !IsManaged(a) {
					foreign = append(foreign, a)
				}
			}
			if len(foreign) > 0 {
				g.Hooks = foreign
				kept = append(kept, g)
			}
		}
		if len(kept) > 0 {
			out.Hooks[name] = kept
		}
	}

	// Pass 2: append the freshly computed managed groups after any foreign
	// groups for the same event.
	for _, t := range event.AllTypes() {
		groups := managed[string(t)]
		if len(groups) == 0 {
			continue
		}
		out.Hooks[string(t)] = append(out.Hooks[string(t)], groups...)
	}

	return out
}

// computeManaged lowers the registry table to matcher-groups per event.
// Implementations sharing an effective matcher coalesce into one group, in
// first-appearance order; non-tool events get a single ungrouped list.
func (r *Reconciler) computeManaged() HookMap {
	managed := HookMap{}
	for _, t := range event.AllTypes() {
		var groups []MatcherGroup
		index := map[string]int{}
		for _, impl := range r.Registry.ListByKind(t) {
			ov := r.Overrides[impl.Name]
			if ov.Disabled {
				continue
			}

			matcher := ""
			if event.IsToolScoped(t) {
				matcher = impl.Matcher
				if ov.Matcher != "" {
					matcher = ov.Matcher
				}
			}

			timeout := impl.Timeout
			if ov.Timeout > 0 {
				timeout = ov.Timeout
			}
			if timeout <= 0 {
				timeout = r.DefaultTimeout
			}
			if timeout <= 0 {
				timeout = registry.DefaultTimeout
			}

			action := Action{
				Type:    "command",
				Command: ManagedCommand(impl.Name),
				Timeout: timeout,
			}

			if i, ok := index[matcher]; ok {
				groups[i].Hooks = append(groups[i].Hooks, action)
				continue
			}
			index[matcher] = len(groups)
			groups = append(groups, MatcherGroup{Matcher: matcher, Hooks: []Action{action}})
		}
		if len(groups) > 0 {
			managed[string(t)] = groups
		}
	}
	return managed
}
