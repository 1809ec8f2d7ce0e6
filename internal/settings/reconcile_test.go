package settings

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/internal/registry"
)

type testHook struct {
	name    string
	matcher string
	timeout int
}

func (h *testHook) HookName() string { return h.name }
func (h *testHook) ToolMatcher() string {
	if h.matcher == "" {
		return registry.DefaultMatcher
	}
	return h.matcher
}
func (h *testHook) TimeoutSeconds() int { return h.timeout }
func (h *testHook) HandlePreToolUse(in *event.PreToolUseInput) (*event.Output, error) {
	return event.NewAllow(event.PreToolUse, "ok"), nil
}

type sessionHook struct{ name string }

func (h *sessionHook) HookName() string { return h.name }
func (h *sessionHook) HandleSessionStart(in *event.SessionStartInput) (*event.Output, error) {
	return event.NewPassthrough(), nil
}

func buildRegistry(t *testing.T, defs ...any) *registry.Registry {
	t.Helper()
	reg := registry.New()
	for _, def := range defs {
		impl, _, ok := registry.Classify(def)
		if !ok {
			t.Fatalf("classification failed for %T", def)
		}
		if err := reg.Register(impl); err != nil {
			t.Fatal(err)
		}
	}
	return reg
}

func TestIsManaged(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   bool
	}{
		{"managed entry", Action{Type: "command", Command: "hookline execute bash-guard"}, true},
		{"foreign script", Action{Type: "command", Command: "/usr/local/bin/my-hook.sh"}, false},
		{"wrong type", Action{Type: "script", Command: "hookline execute bash-guard"}, false},
		{"trailing args", Action{Type: "command", Command: "hookline execute bash-guard --flag"}, false},
		{"other subcommand", Action{Type: "command", Command: "hookline list"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsManaged(tt.action); got != tt.want {
				t.Errorf("IsManaged(%q) = %v, want %v", tt.action.Command, got, tt.want)
			}
		})
	}
}

func TestManagedName(t *testing.T) {
	name, ok := ManagedName(Action{Type: "command", Command: "hookline execute secret-scan"})
	if !ok || name != "secret-scan" {
		t.Errorf("got (%q, %v), want (secret-scan, true)", name, ok)
	}
}

// Scenario: one PreToolUse hook with matcher "Bash" reconciled into an empty
// document, then reconciled away again.
func TestReconcile_EmptyDocument(t *testing.T) {
	reg := buildRegistry(t, &testHook{name: "X", matcher: "Bash", timeout: 30})
	rec := &Reconciler{Registry: reg}

	doc := rec.Apply(NewDocument())

	groups := doc.Hooks["PreToolUse"]
	if len(groups) != 1 {
		t.Fatalf("got %d PreToolUse groups, want 1", len(groups))
	}
	if groups[0].Matcher != "Bash" {
		t.Errorf("got matcher %q, want Bash", groups[0].Matcher)
	}
	if len(groups[0].Hooks) != 1 {
		t.Fatalf("got %d actions, want 1", len(groups[0].Hooks))
	}
	action := groups[0].Hooks[0]
	if action.Command != "hookline execute X" {
		t.Errorf("got command %q", action.Command)
	}
	if action.Timeout != 30 {
		t.Errorf("got timeout %d, want 30", action.Timeout)
	}

	// X deregistered: the group disappears.
	empty := &Reconciler{Registry: registry.New()}
	next := empty.Apply(doc)
	if len(next.Hooks["PreToolUse"]) != 0 {
		t.Errorf("group must be absent after deregistration, got %+v", next.Hooks["PreToolUse"])
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	reg := buildRegistry(t,
		&testHook{name: "guard", matcher: "Bash", timeout: 10},
		&testHook{name: "audit", matcher: "Bash", timeout: 20},
		&sessionHook{name: "greeter"},
	)
	rec := &Reconciler{Registry: reg}

	start := NewDocument()
	start.Hooks["PreToolUse"] = []MatcherGroup{
		{Matcher: "Write", Hooks: []Action{{Type: "command", Command: "./check-writes.sh", Timeout: 5}}},
	}
	start.Extra["model"] = json.RawMessage(`"opus"`)

	once := rec.Apply(start)
	twice := rec.Apply(once)

	a, err := Marshal(once)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(twice)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("reconciliation is not idempotent:\nfirst:\n%s\nsecond:\n%s", a, b)
	}
}

func TestReconcile_NonDestructive(t *testing.T) {
	foreign := Action{Type: "command", Command: "npx lint-hook --strict", Timeout: 45}
	start := NewDocument()
	start.Hooks["PreToolUse"] = []MatcherGroup{
		{Matcher: "Edit", Hooks: []Action{foreign}},
	}
	start.Extra["permissions"] = json.RawMessage(`{"allow":["Bash(ls:*)"]}`)

	reg := buildRegistry(t, &testHook{name: "guard", matcher: "Bash", timeout: 10})
	out := (&Reconciler{Registry: reg}).Apply(start)

	groups := out.Hooks["PreToolUse"]
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want foreign + managed", len(groups))
	}
	if groups[0].Matcher != "Edit" || len(groups[0].Hooks) != 1 {
		t.Fatalf("foreign group disturbed: %+v", groups[0])
	}
	got, err := json.Marshal(groups[0].Hooks[0])
	if err != nil {
		t.Fatal(err)
	}
	want, err := json.Marshal(foreign)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("foreign entry disturbed: got %s, want %s", got, want)
	}
	if string(out.Extra["permissions"]) != `{"allow":["Bash(ls:*)"]}` {
		t.Errorf("unrelated settings key disturbed: %s", out.Extra["permissions"])
	}
}

// Foreign actions may carry fields this tool has never heard of, and an
// explicit zero timeout is not the same as no timeout. Everything must come
// back from reconciliation intact.
func TestReconcile_KeepsUnknownForeignFields(t *testing.T) {
	raw := `{"hooks":{"PreToolUse":[{"matcher":"Edit","checksum":"abc123","hooks":[{"type":"command","command":"./my-hook.sh","timeout":0,"env":{"STRICT":"1"}}]}]}}`
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatal(err)
	}

	out := (&Reconciler{Registry: registry.New()}).Apply(&doc)

	groups := out.Hooks["PreToolUse"]
	if len(groups) != 1 || len(groups[0].Hooks) != 1 {
		t.Fatalf("foreign entry lost: %+v", out.Hooks)
	}
	got, err := json.Marshal(groups[0])
	if err != nil {
		t.Fatal(err)
	}
	want := `{"matcher":"Edit","hooks":[{"type":"command","command":"./my-hook.sh","timeout":0,"env":{"STRICT":"1"}}],"checksum":"abc123"}`
	if string(got) != want {
		t.Errorf("foreign fields not preserved:\ngot  %s\nwant %s", got, want)
	}
}

// Scenario: a foreign entry and a managed entry for a hook that no longer
// exists. The foreign entry stays, the stale managed entry goes.
func TestReconcile_RemovesStaleManagedEntries(t *testing.T) {
	start := NewDocument()
	start.Hooks["PreToolUse"] = []MatcherGroup{
		{Matcher: "Edit", Hooks: []Action{
			{Type: "command", Command: "./my-hook.sh"},
			{Type: "command", Command: "hookline execute gone", Timeout: 30},
		}},
		{Matcher: "Bash", Hooks: []Action{
			{Type: "command", Command: "hookline execute also-gone", Timeout: 30},
		}},
	}

	out := (&Reconciler{Registry: registry.New()}).Apply(start)

	groups := out.Hooks["PreToolUse"]
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1 (foreign survivor only)", len(groups))
	}
	if groups[0].Matcher != "Edit" {
		t.Errorf("got matcher %q", groups[0].Matcher)
	}
	if len(groups[0].Hooks) != 1 || groups[0].Hooks[0].Command != "./my-hook.sh" {
		t.Errorf("foreign action not preserved verbatim: %+v", groups[0].Hooks)
	}
}

func TestReconcile_CoalescesByMatcher(t *testing.T) {
	reg := buildRegistry(t,
		&testHook{name: "one", matcher: "Bash", timeout: 10},
		&testHook{name: "two", matcher: "Edit", timeout: 10},
		&testHook{name: "three", matcher: "Bash", timeout: 10},
	)
	out := (&Reconciler{Registry: reg}).Apply(NewDocument())

	groups := out.Hooks["PreToolUse"]
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2 (Bash, Edit)", len(groups))
	}
	if groups[0].Matcher != "Bash" || len(groups[0].Hooks) != 2 {
		t.Errorf("Bash group wrong: %+v", groups[0])
	}
	if groups[0].Hooks[0].Command != "hookline execute one" ||
		groups[0].Hooks[1].Command != "hookline execute three" {
		t.Errorf("registration order lost within group: %+v", groups[0].Hooks)
	}
	if groups[1].Matcher != "Edit" {
		t.Errorf("got second group matcher %q", groups[1].Matcher)
	}
}

func TestReconcile_SessionKindsUngrouped(t *testing.T) {
	reg := buildRegistry(t, &sessionHook{name: "greeter"})
	out := (&Reconciler{Registry: reg}).Apply(NewDocument())

	groups := out.Hooks["SessionStart"]
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Matcher != "" {
		t.Errorf("session events must not carry a matcher, got %q", groups[0].Matcher)
	}
}

func TestReconcile_Overrides(t *testing.T) {
	reg := buildRegistry(t,
		&testHook{name: "guard", matcher: "Bash", timeout: 10},
		&testHook{name: "muted", matcher: "Bash", timeout: 10},
	)
	rec := &Reconciler{
		Registry: reg,
		Overrides: map[string]Override{
			"guard": {Matcher: "Bash|Write", Timeout: 120},
			"muted": {Disabled: true},
		},
	}
	out := rec.Apply(NewDocument())

	groups := out.Hooks["PreToolUse"]
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Matcher != "Bash|Write" {
		t.Errorf("matcher override not applied: %q", groups[0].Matcher)
	}
	if groups[0].Hooks[0].Timeout != 120 {
		t.Errorf("timeout override not applied: %d", groups[0].Hooks[0].Timeout)
	}
	for _, a := range groups[0].Hooks {
		if a.Command == ManagedCommand("muted") {
			t.Error("disabled hook must not be advertised")
		}
	}
}
