// Package builtin ships the hook implementations bundled with hookline.
// They double as working examples of the capability interfaces: one Go value
// per hook, statically linked, exposed to the registry through a MapSource
// whose paths mirror where each definition lives.
package builtin

import "github.com/hookline/hookline/internal/registry"

// Source returns the candidate units for the bundled hooks. The
// testdata-scoped unit is only visible to fixture-inclusive scans.
func Source() registry.Source {
	return registry.MapSource{
		"bash_guard.go": func() []any {
			return []any{&BashGuard{}}
		},
		"secret_scan.go": func() []any {
			return []any{&SecretScan{}}
		},
		"prompt_context.go": func() []any {
			return []any{&PromptContext{}}
		},
		"session_audit.go": func() []any {
			return []any{&SessionAudit{}}
		},
		"testdata/echo_fixture.go": func() []any {
			return []any{&EchoFixture{}}
		},
	}
}
