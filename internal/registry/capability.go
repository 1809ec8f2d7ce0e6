package registry

import (
	"fmt"
	"regexp"

	"github.com/hookline/hookline/internal/event"
)

// Hook is the identity every handler carries. The name must be unique across
// the whole registry and is what the generated settings entries reference.
type Hook interface {
	HookName() string
}

// Capability interfaces, one per event type. A definition qualifies as a
// hook implementation when it satisfies exactly one of these.
type (
	PreToolUseHandler interface {
		Hook
		HandlePreToolUse(*event.PreToolUseInput) (*event.Output, error)
	}
	PermissionRequestHandler interface {
		Hook
		HandlePermissionRequest(*event.PermissionRequestInput) (*event.Output, error)
	}
	PostToolUseHandler interface {
		Hook
		HandlePostToolUse(*event.PostToolUseInput) (*event.Output, error)
	}
	UserPromptSubmitHandler interface {
		Hook
		HandleUserPromptSubmit(*event.UserPromptSubmitInput) (*event.Output, error)
	}
	NotificationHandler interface {
		Hook
		HandleNotification(*event.NotificationInput) (*event.Output, error)
	}
	StopHandler interface {
		Hook
		HandleStop(*event.StopInput) (*event.Output, error)
	}
	SubagentStopHandler interface {
		Hook
		HandleSubagentStop(*event.SubagentStopInput) (*event.Output, error)
	}
	PreCompactHandler interface {
		Hook
		HandlePreCompact(*event.PreCompactInput) (*event.Output, error)
	}
	SessionStartHandler interface {
		Hook
		HandleSessionStart(*event.SessionStartInput) (*event.Output, error)
	}
	SessionEndHandler interface {
		Hook
		HandleSessionEnd(*event.SessionEndInput) (*event.Output, error)
	}
)

// Optional interfaces a handler may implement to override the defaults
// advertised in the generated settings entries.
type (
	toolMatcher    interface{ ToolMatcher() string }
	timeoutSeconds interface{ TimeoutSeconds() int }
)

// Defaults advertised when a handler does not declare its own.
const (
	DefaultMatcher = "*"
	DefaultTimeout = 30
)

// Impl is a classified hook implementation: one handler bound to exactly one
// event type, with its advertised matcher and timeout.
type Impl struct {
	Name    string
	Kind    event.Type
	Matcher string
	Timeout int

	handler Hook
}

// Classify inspects a definition against the ten capability interfaces.
// It returns the implementation and true when the definition satisfies
// exactly one capability; otherwise it returns the list of matched kinds
// (possibly empty) and false so the caller can report the skip.
func Classify(def any) (*Impl, []event.Type, bool) {
	hook, ok := def.(Hook)
	if !ok {
		return nil, nil, false
	}

	var kinds []event.Type
	if _, ok := def.(PreToolUseHandler); ok {
		kinds = append(kinds, event.PreToolUse)
	}
	if _, ok := def.(PermissionRequestHandler); ok {
		kinds = append(kinds, event.PermissionRequest)
	}
	if _, ok := def.(PostToolUseHandler); ok {
		kinds = append(kinds, event.PostToolUse)
	}
	if _, ok := def.(UserPromptSubmitHandler); ok {
		kinds = append(kinds, event.UserPromptSubmit)
	}
	if _, ok := def.(NotificationHandler); ok {
		kinds = append(kinds, event.Notification)
	}
	if _, ok := def.(StopHandler); ok {
		kinds = append(kinds, event.Stop)
	}
	if _, ok := def.(SubagentStopHandler); ok {
		kinds = append(kinds, event.SubagentStop)
	}
	if _, ok := def.(PreCompactHandler); ok {
		kinds = append(kinds, event.PreCompact)
	}
	if _, ok := def.(SessionStartHandler); ok {
		kinds = append(kinds, event.SessionStart)
	}
	if _, ok := def.(SessionEndHandler); ok {
		kinds = append(kinds, event.SessionEnd)
	}

	if len(kinds) != 1 {
		return nil, kinds, false
	}

	impl := &Impl{
		Name:    hook.HookName(),
		Kind:    kinds[0],
		Matcher: DefaultMatcher,
		Timeout: DefaultTimeout,
		handler: hook,
	}
	if m, ok := def.(toolMatcher); ok {
		impl.Matcher = m.ToolMatcher()
	}
	if t, ok := def.(timeoutSeconds); ok {
		if secs := t.TimeoutSeconds(); secs > 0 {
			impl.Timeout = secs
		}
	}
	return impl, kinds, true
}

// Execute runs the handler with an input of the implementation's event type.
func (i *Impl) Execute(in event.Input) (*event.Output, error) {
	if in.Kind() != i.Kind {
		return nil, fmt.Errorf("hook %q handles %s, got %s input", i.Name, i.Kind, in.Kind())
	}
	switch i.Kind {
	case event.PreToolUse:
		return i.handler.(PreToolUseHandler).HandlePreToolUse(in.(*event.PreToolUseInput))
	case event.PermissionRequest:
		return i.handler.(PermissionRequestHandler).HandlePermissionRequest(in.(*event.PermissionRequestInput))
	case event.PostToolUse:
		return i.handler.(PostToolUseHandler).HandlePostToolUse(in.(*event.PostToolUseInput))
	case event.UserPromptSubmit:
		return i.handler.(UserPromptSubmitHandler).HandleUserPromptSubmit(in.(*event.UserPromptSubmitInput))
	case event.Notification:
		return i.handler.(NotificationHandler).HandleNotification(in.(*event.NotificationInput))
	case event.Stop:
		return i.handler.(StopHandler).HandleStop(in.(*event.StopInput))
	case event.SubagentStop:
		return i.handler.(SubagentStopHandler).HandleSubagentStop(in.(*event.SubagentStopInput))
	case event.PreCompact:
		return i.handler.(PreCompactHandler).HandlePreCompact(in.(*event.PreCompactInput))
	case event.SessionStart:
		return i.handler.(SessionStartHandler).HandleSessionStart(in.(*event.SessionStartInput))
	case event.SessionEnd:
		return i.handler.(SessionEndHandler).HandleSessionEnd(in.(*event.SessionEndInput))
	default:
		return nil, fmt.Errorf("hook %q has unknown event type %s", i.Name, i.Kind)
	}
}

// ValidateMatcher checks that a matcher compiles as a regular expression.
// The wildcard "*" and the empty string both mean match-everything and are
// always valid.
func ValidateMatcher(pattern string) error {
	if pattern == "" || pattern == DefaultMatcher {
		return nil
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("invalid matcher %q: %w", pattern, err)
	}
	return nil
}
