package event

import (
	"errors"
	"testing"
)

func TestNewPermission_ValidatesDecision(t *testing.T) {
	tests := []struct {
		decision PermissionDecision
		wantErr  bool
	}{
		{PermissionAllow, false},
		{PermissionDeny, false},
		{PermissionAsk, false},
		{PermissionDecision("approve"), true},
		{PermissionDecision(""), true},
		{PermissionDecision("block"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.decision), func(t *testing.T) {
			out, err := NewPermission(PreToolUse, tt.decision, "because")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for invalid decision")
				}
				var invalid *InvalidDecisionError
				if !errors.As(err, &invalid) {
					t.Errorf("got %T, want *InvalidDecisionError", err)
				}
				if out != nil {
					t.Error("invalid decision must not produce an output")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.HookSpecificOutput.PermissionDecision != tt.decision {
				t.Errorf("got decision %q, want %q", out.HookSpecificOutput.PermissionDecision, tt.decision)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Run("deny carries reason", func(t *testing.T) {
		out := NewDeny(PreToolUse, "dangerous command")
		if out.HookSpecificOutput.PermissionDecisionReason != "dangerous command" {
			t.Errorf("got reason %q", out.HookSpecificOutput.PermissionDecisionReason)
		}
		if !out.Continue {
			t.Error("deny still continues; the decision is relayed, not enforced here")
		}
	})

	t.Run("add context has no decision", func(t *testing.T) {
		out := NewAddContext(SessionStart, "repo uses make")
		if out.HookSpecificOutput.PermissionDecision != "" {
			t.Error("context output must not carry a permission decision")
		}
		if out.HookSpecificOutput.AdditionalContext != "repo uses make" {
			t.Errorf("got context %q", out.HookSpecificOutput.AdditionalContext)
		}
	})

	t.Run("block sets top-level decision", func(t *testing.T) {
		out := NewBlock("try again")
		if out.Decision != DecisionBlock || out.Reason != "try again" {
			t.Errorf("got decision=%q reason=%q", out.Decision, out.Reason)
		}
	})

	t.Run("halt stops processing", func(t *testing.T) {
		out := NewHalt("policy", "stopped by policy")
		if out.Continue {
			t.Error("halt must set continue=false")
		}
	})
}
