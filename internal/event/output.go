package event

// PermissionDecision is the constrained vocabulary for tool permission
// outcomes.
type PermissionDecision string

// Permission decision values.
const (
	PermissionAllow PermissionDecision = "allow"
	PermissionDeny  PermissionDecision = "deny"
	PermissionAsk   PermissionDecision = "ask"
)

// Decision is the top-level blocking decision vocabulary.
type Decision string

// DecisionBlock stops the host from proceeding with the current action.
const DecisionBlock Decision = "block"

// Output is the wire shape every hook returns. Field names serialize to the
// camelCase vocabulary the host expects regardless of how the hook built
// them internally.
type Output struct {
	Continue           bool            `json:"continue"`
	StopReason         string          `json:"stopReason,omitempty"`
	SuppressOutput     bool            `json:"suppressOutput,omitempty"`
	SystemMessage      string          `json:"systemMessage,omitempty"`
	Decision           Decision        `json:"decision,omitempty"`
	Reason             string          `json:"reason,omitempty"`
	HookSpecificOutput *SpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// SpecificOutput is the per-event envelope nested under hookSpecificOutput.
// It always carries the literal event name so the host can sanity-check the
// response against the event it dispatched.
type SpecificOutput struct {
	HookEventName            string             `json:"hookEventName"`
	PermissionDecision       PermissionDecision `json:"permissionDecision,omitempty"`
	PermissionDecisionReason string             `json:"permissionDecisionReason,omitempty"`
	UpdatedInput             map[string]any     `json:"updatedInput,omitempty"`
	AdditionalContext        string             `json:"additionalContext,omitempty"`
}

// NewPermission builds a permission output for the given event. The decision
// is validated here, at construction time, so an out-of-vocabulary value can
// never reach serialization.
func NewPermission(kind Type, decision PermissionDecision, reason string) (*Output, error) {
	switch decision {
	case PermissionAllow, PermissionDeny, PermissionAsk:
	default:
		return nil, &InvalidDecisionError{Decision: string(decision)}
	}
	return &Output{
		Continue: true,
		HookSpecificOutput: &SpecificOutput{
			HookEventName:            string(kind),
			PermissionDecision:       decision,
			PermissionDecisionReason: reason,
		},
	}, nil
}

// NewAllow builds an allow decision output.
func NewAllow(kind Type, reason string) *Output {
	out, _ := NewPermission(kind, PermissionAllow, reason)
	return out
}

// NewDeny builds a deny decision output.
func NewDeny(kind Type, reason string) *Output {
	out, _ := NewPermission(kind, PermissionDeny, reason)
	return out
}

// NewAsk builds an ask decision output, prompting the user.
func NewAsk(kind Type, reason string) *Output {
	out, _ := NewPermission(kind, PermissionAsk, reason)
	return out
}

// NewUpdateInput builds an allow decision that replaces the tool input. The
// replacement serializes under the wire key updatedInput.
func NewUpdateInput(kind Type, reason string, updated map[string]any) *Output {
	out := NewAllow(kind, reason)
	out.HookSpecificOutput.UpdatedInput = updated
	return out
}

// NewAddContext builds an output that injects additional context for the
// agent without making a permission decision.
func NewAddContext(kind Type, context string) *Output {
	return &Output{
		Continue: true,
		HookSpecificOutput: &SpecificOutput{
			HookEventName:     string(kind),
			AdditionalContext: context,
		},
	}
}

// NewBlock builds a top-level blocking output with a reason fed back to the
// agent. Used by Stop, SubagentStop and PostToolUse hooks.
func NewBlock(reason string) *Output {
	return &Output{
		Continue: true,
		Decision: DecisionBlock,
		Reason:   reason,
	}
}

// NewHalt builds an output that stops processing entirely.
func NewHalt(stopReason, systemMessage string) *Output {
	return &Output{
		Continue:      false,
		StopReason:    stopReason,
		SystemMessage: systemMessage,
	}
}

// NewPassthrough builds the neutral output: continue, no decision.
func NewPassthrough() *Output {
	return &Output{Continue: true}
}
