package builtin

import (
	"fmt"
	"regexp"

	"github.com/hookline/hookline/internal/event"
)

// Patterns a Bash command must never match. Kept deliberately narrow: this
// guard is a tripwire for obviously destructive commands, not a sandbox.
var denyPatterns = []struct {
	re     *regexp.Regexp
	reason string
}{
	{regexp.MustCompile(`\brm\s+(-[a-zA-Z]*[rf][a-zA-Z]*\s+)+(/|~|\$HOME)(\s|$)`), "recursive delete of a root directory"},
	{regexp.MustCompile(`\bmkfs(\.[a-z0-9]+)?\b`), "filesystem format command"},
	{regexp.MustCompile(`\bdd\b.*\bof=/dev/`), "raw write to a block device"},
	{regexp.MustCompile(`:\(\)\s*\{.*\};\s*:`), "fork bomb"},
	{regexp.MustCompile(`\bchmod\s+(-[a-zA-Z]+\s+)*777\s+/(\s|$)`), "world-writable root"},
}

var sudoPattern = regexp.MustCompile(`(^|\s|;|&&|\|\|)sudo\s`)

// BashGuard is a PreToolUse hook scoped to the Bash tool. It denies
// destructive commands, asks on privilege escalation, and allows the rest.
type BashGuard struct{}

func (g *BashGuard) HookName() string    { return "bash-guard" }
func (g *BashGuard) ToolMatcher() string { return "Bash" }
func (g *BashGuard) TimeoutSeconds() int { return 10 }

func (g *BashGuard) HandlePreToolUse(in *event.PreToolUseInput) (*event.Output, error) {
	command, _ := in.ToolInput["command"].(string)
	if command == "" {
		return event.NewAllow(event.PreToolUse, "no command to inspect"), nil
	}

	for _, p := range denyPatterns {
		if p.re.MatchString(command) {
			return event.NewDeny(event.PreToolUse,
				fmt.Sprintf("blocked: %s", p.reason)), nil
		}
	}

	if sudoPattern.MatchString(command) {
		return event.NewAsk(event.PreToolUse, "command uses sudo"), nil
	}

	return event.NewAllow(event.PreToolUse, "command passed inspection"), nil
}
