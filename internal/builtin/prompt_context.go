package builtin

import (
	"fmt"
	"strings"

	"github.com/hookline/hookline/internal/event"
)

// PromptContext is a UserPromptSubmit hook that reminds the agent which
// permission mode the session runs under whenever the prompt asks for
// something deploy-shaped.
type PromptContext struct{}

func (p *PromptContext) HookName() string { return "prompt-context" }

func (p *PromptContext) HandleUserPromptSubmit(in *event.UserPromptSubmitInput) (*event.Output, error) {
	prompt := strings.ToLower(in.Prompt)
	for _, keyword := range []string{"deploy", "release", "production", "rollback"} {
		if strings.Contains(prompt, keyword) {
			return event.NewAddContext(event.UserPromptSubmit,
				fmt.Sprintf("Reminder: session permission mode is %q; confirm with the user before any %s action.",
					in.PermissionMode, keyword)), nil
		}
	}
	return event.NewPassthrough(), nil
}
