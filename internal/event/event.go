package event

// Type identifies a Claude Code hook lifecycle event.
type Type string

// The ten lifecycle events a hook can attach to.
const (
	PreToolUse        Type = "PreToolUse"
	PermissionRequest Type = "PermissionRequest"
	PostToolUse       Type = "PostToolUse"
	UserPromptSubmit  Type = "UserPromptSubmit"
	Notification      Type = "Notification"
	Stop              Type = "Stop"
	SubagentStop      Type = "SubagentStop"
	PreCompact        Type = "PreCompact"
	SessionStart      Type = "SessionStart"
	SessionEnd        Type = "SessionEnd"
)

// AllTypes returns every event type in catalog order. The order is fixed
// and drives the ordering of generated settings entries.
func AllTypes() []Type {
	return []Type{
		PreToolUse,
		PermissionRequest,
		PostToolUse,
		UserPromptSubmit,
		Notification,
		Stop,
		SubagentStop,
		PreCompact,
		SessionStart,
		SessionEnd,
	}
}

// IsValid reports whether t is one of the ten known event types.
func IsValid(t Type) bool {
	switch t {
	case PreToolUse, PermissionRequest, PostToolUse, UserPromptSubmit,
		Notification, Stop, SubagentStop, PreCompact, SessionStart, SessionEnd:
		return true
	default:
		return false
	}
}

// IsToolScoped reports whether hooks for t are selected by a tool-name
// matcher. Session and lifecycle events ignore matchers.
func IsToolScoped(t Type) bool {
	switch t {
	case PreToolUse, PermissionRequest, PostToolUse:
		return true
	default:
		return false
	}
}

// CommonInput carries the envelope fields present on every hook payload.
type CommonInput struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	Cwd            string `json:"cwd"`
	PermissionMode string `json:"permission_mode"`
	HookEventName  string `json:"hook_event_name"`
}

// Input is implemented by every per-event input record.
type Input interface {
	Kind() Type
	Common() *CommonInput
}

// PreToolUseInput is the payload delivered before a tool call runs.
type PreToolUseInput struct {
	CommonInput
	ToolName  string         `json:"tool_name"`
	ToolInput map[string]any `json:"tool_input"`
	ToolUseID string         `json:"tool_use_id"`
}

func (i *PreToolUseInput) Kind() Type           { return PreToolUse }
func (i *PreToolUseInput) Common() *CommonInput { return &i.CommonInput }

// PermissionRequestInput is the payload delivered when the host asks for a
// permission decision outside the normal pre-tool flow. Same shape as
// PreToolUse on the wire.
type PermissionRequestInput struct {
	CommonInput
	ToolName  string         `json:"tool_name"`
	ToolInput map[string]any `json:"tool_input"`
	ToolUseID string         `json:"tool_use_id"`
}

func (i *PermissionRequestInput) Kind() Type           { return PermissionRequest }
func (i *PermissionRequestInput) Common() *CommonInput { return &i.CommonInput }

// PostToolUseInput is the payload delivered after a tool call completes.
type PostToolUseInput struct {
	CommonInput
	ToolName     string         `json:"tool_name"`
	ToolInput    map[string]any `json:"tool_input"`
	ToolResponse map[string]any `json:"tool_response"`
	ToolUseID    string         `json:"tool_use_id"`
}

func (i *PostToolUseInput) Kind() Type           { return PostToolUse }
func (i *PostToolUseInput) Common() *CommonInput { return &i.CommonInput }

// UserPromptSubmitInput is the payload delivered when the user submits a
// prompt, before the agent processes it.
type UserPromptSubmitInput struct {
	CommonInput
	Prompt string `json:"prompt"`
}

func (i *UserPromptSubmitInput) Kind() Type           { return UserPromptSubmit }
func (i *UserPromptSubmitInput) Common() *CommonInput { return &i.CommonInput }

// NotificationInput is the payload delivered for host notifications.
type NotificationInput struct {
	CommonInput
	Message          string `json:"message"`
	NotificationType string `json:"notification_type"`
}

func (i *NotificationInput) Kind() Type           { return Notification }
func (i *NotificationInput) Common() *CommonInput { return &i.CommonInput }

// StopInput is the payload delivered when the main agent finishes responding.
type StopInput struct {
	CommonInput
	StopHookActive bool `json:"stop_hook_active"`
}

func (i *StopInput) Kind() Type           { return Stop }
func (i *StopInput) Common() *CommonInput { return &i.CommonInput }

// SubagentStopInput is the payload delivered when a subagent finishes.
type SubagentStopInput struct {
	CommonInput
	StopHookActive bool `json:"stop_hook_active"`
}

func (i *SubagentStopInput) Kind() Type           { return SubagentStop }
func (i *SubagentStopInput) Common() *CommonInput { return &i.CommonInput }

// PreCompactInput is the payload delivered before a transcript compaction.
type PreCompactInput struct {
	CommonInput
	Trigger            string `json:"trigger"` // manual, auto
	CustomInstructions string `json:"custom_instructions"`
}

func (i *PreCompactInput) Kind() Type           { return PreCompact }
func (i *PreCompactInput) Common() *CommonInput { return &i.CommonInput }

// SessionStartInput is the payload delivered when a session starts or resumes.
type SessionStartInput struct {
	CommonInput
	Source string `json:"source"` // startup, resume, clear, compact
}

func (i *SessionStartInput) Kind() Type           { return SessionStart }
func (i *SessionStartInput) Common() *CommonInput { return &i.CommonInput }

// SessionEndInput is the payload delivered when a session ends.
type SessionEndInput struct {
	CommonInput
	Reason string `json:"reason"` // clear, logout, prompt_input_exit, other
}

func (i *SessionEndInput) Kind() Type           { return SessionEnd }
func (i *SessionEndInput) Common() *CommonInput { return &i.CommonInput }
