package builtin

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/hookline/hookline/internal/event"
)

var secretPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`AKIA[0-9A-Z]{16}`), "AWS access key"},
	{regexp.MustCompile(`-----BEGIN (RSA |EC |OPENSSH )?PRIVATE KEY-----`), "private key"},
	{regexp.MustCompile(`ghp_[A-Za-z0-9]{36}`), "GitHub token"},
	{regexp.MustCompile(`xox[baprs]-[A-Za-z0-9-]{10,}`), "Slack token"},
}

// SecretScan is a PostToolUse hook that inspects tool responses for
// credential-shaped strings and asks the agent to back off when one leaks.
type SecretScan struct{}

func (s *SecretScan) HookName() string    { return "secret-scan" }
func (s *SecretScan) TimeoutSeconds() int { return 15 }

func (s *SecretScan) HandlePostToolUse(in *event.PostToolUseInput) (*event.Output, error) {
	flat := flatten(in.ToolResponse)
	for _, p := range secretPatterns {
		if p.re.MatchString(flat) {
			return event.NewBlock(
				fmt.Sprintf("tool response from %s appears to contain a %s; do not repeat it in the transcript", in.ToolName, p.label)), nil
		}
	}
	return event.NewPassthrough(), nil
}

// flatten renders a response map to one string for pattern matching, with
// keys in stable order.
func flatten(m map[string]any) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for _, k := range keys {
		out += fmt.Sprintf("%s: %v\n", k, m[k])
	}
	return out
}
