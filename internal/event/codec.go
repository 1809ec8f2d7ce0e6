package event

import (
	"encoding/json"
	"fmt"
)

// Decode parses a raw payload as the given event type. Unknown extra fields
// are ignored for forward compatibility; a missing required field, a field
// of the wrong shape, or a hook_event_name that names a different event all
// fail with *SchemaError.
func Decode(kind Type, raw []byte) (Input, error) {
	if !IsValid(kind) {
		return nil, &SchemaError{Kind: kind, Detail: "unknown event type"}
	}

	in := newInput(kind)
	if err := json.Unmarshal(raw, in); err != nil {
		return nil, &SchemaError{Kind: kind, Detail: "malformed JSON", Err: err}
	}

	if name := in.Common().HookEventName; name != "" && Type(name) != kind {
		return nil, &SchemaError{
			Kind:   kind,
			Detail: fmt.Sprintf("payload declares hook_event_name %q", name),
		}
	}

	if err := validate(in); err != nil {
		return nil, err
	}
	return in, nil
}

// Encode serializes a hook output to the wire shape. Optional fields that
// were never set are omitted.
func Encode(out *Output) ([]byte, error) {
	if out == nil {
		out = NewPassthrough()
	}
	return json.Marshal(out)
}

func newInput(kind Type) Input {
	switch kind {
	case PreToolUse:
		return &PreToolUseInput{}
	case PermissionRequest:
		return &PermissionRequestInput{}
	case PostToolUse:
		return &PostToolUseInput{}
	case UserPromptSubmit:
		return &UserPromptSubmitInput{}
	case Notification:
		return &NotificationInput{}
	case Stop:
		return &StopInput{}
	case SubagentStop:
		return &SubagentStopInput{}
	case PreCompact:
		return &PreCompactInput{}
	case SessionStart:
		return &SessionStartInput{}
	case SessionEnd:
		return &SessionEndInput{}
	default:
		return nil
	}
}

func validate(in Input) error {
	switch v := in.(type) {
	case *PreToolUseInput:
		if v.ToolName == "" {
			return &SchemaError{Kind: PreToolUse, Detail: "missing required field tool_name"}
		}
	case *PermissionRequestInput:
		if v.ToolName == "" {
			return &SchemaError{Kind: PermissionRequest, Detail: "missing required field tool_name"}
		}
	case *PostToolUseInput:
		if v.ToolName == "" {
			return &SchemaError{Kind: PostToolUse, Detail: "missing required field tool_name"}
		}
	case *UserPromptSubmitInput:
		if v.Prompt == "" {
			return &SchemaError{Kind: UserPromptSubmit, Detail: "missing required field prompt"}
		}
	}
	return nil
}
