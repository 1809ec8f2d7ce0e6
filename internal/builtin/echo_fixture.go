package builtin

import (
	"fmt"

	"github.com/hookline/hookline/internal/event"
)

// EchoFixture is a PreToolUse hook used for local verification. It lives
// under the testdata unit path, so production scans never register it; the
// test command's fixture-inclusive scan does.
type EchoFixture struct{}

func (e *EchoFixture) HookName() string { return "echo-fixture" }

func (e *EchoFixture) HandlePreToolUse(in *event.PreToolUseInput) (*event.Output, error) {
	return event.NewAllow(event.PreToolUse,
		fmt.Sprintf("echo: tool %s in session %s", in.ToolName, in.SessionID)), nil
}
