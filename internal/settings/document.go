package settings

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/hookline/hookline/internal/event"
)

// Action is one hook action entry in the host settings file. Fields this
// framework does not know about are carried through as raw JSON: foreign
// entries must survive reconciliation with everything they declared, not
// just the fields the managed template uses.
type Action struct {
	Type    string
	Command string
	Timeout int

	// timeoutSet distinguishes an explicit "timeout": 0 from an absent key.
	timeoutSet bool
	extra      map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Action) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Action{}
	if v, ok := raw["type"]; ok {
		if err := json.Unmarshal(v, &a.Type); err != nil {
			return err
		}
		delete(raw, "type")
	}
	if v, ok := raw["command"]; ok {
		if err := json.Unmarshal(v, &a.Command); err != nil {
			return err
		}
		delete(raw, "command")
	}
	if v, ok := raw["timeout"]; ok {
		if err := json.Unmarshal(v, &a.Timeout); err != nil {
			return err
		}
		a.timeoutSet = true
		delete(raw, "timeout")
	}
	if len(raw) > 0 {
		a.extra = raw
	}
	return nil
}

// MarshalJSON emits the known fields in fixed order, then any carried-over
// fields sorted by key.
func (a Action) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	first := true
	buf.WriteByte('{')
	if err := writeField(&buf, &first, "type", a.Type); err != nil {
		return nil, err
	}
	if err := writeField(&buf, &first, "command", a.Command); err != nil {
		return nil, err
	}
	if a.timeoutSet || a.Timeout != 0 {
		if err := writeField(&buf, &first, "timeout", a.Timeout); err != nil {
			return nil, err
		}
	}
	if err := writeExtra(&buf, &first, a.extra); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MatcherGroup is an ordered list of actions selected by a tool-name
// matcher. Session and lifecycle events use a single group with no matcher.
// Unknown fields ride through raw, like on Action.
type MatcherGroup struct {
	Matcher string
	Hooks   []Action

	matcherSet bool
	extra      map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *MatcherGroup) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = MatcherGroup{}
	if v, ok := raw["matcher"]; ok {
		if err := json.Unmarshal(v, &g.Matcher); err != nil {
			return err
		}
		g.matcherSet = true
		delete(raw, "matcher")
	}
	if v, ok := raw["hooks"]; ok {
		if err := json.Unmarshal(v, &g.Hooks); err != nil {
			return err
		}
		delete(raw, "hooks")
	}
	if len(raw) > 0 {
		g.extra = raw
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (g MatcherGroup) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	first := true
	buf.WriteByte('{')
	if g.matcherSet || g.Matcher != "" {
		if err := writeField(&buf, &first, "matcher", g.Matcher); err != nil {
			return nil, err
		}
	}
	if err := writeField(&buf, &first, "hooks", g.Hooks); err != nil {
		return nil, err
	}
	if err := writeExtra(&buf, &first, g.extra); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, first *bool, key string, val any) error {
	if !*first {
		buf.WriteByte(',')
	}
	*first = false
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	v, err := json.Marshal(val)
	if err != nil {
		return err
	}
	buf.Write(v)
	return nil
}

func writeExtra(buf *bytes.Buffer, first *bool, extra map[string]json.RawMessage) error {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := writeField(buf, first, k, extra[k]); err != nil {
			return err
		}
	}
	return nil
}

// HookMap is the hooks section of the settings file: event name to ordered
// matcher-groups. It marshals with event keys in catalog order (unknown keys
// after, sorted) so reconciliation output is stable byte-for-byte.
type HookMap map[string][]MatcherGroup

// MarshalJSON implements deterministic key ordering.
func (h HookMap) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(h))
	seen := make(map[string]bool, len(h))
	for _, t := range event.AllTypes() {
		if _, ok := h[string(t)]; ok {
			keys = append(keys, string(t))
			seen[string(t)] = true
		}
	}
	var rest []string
	for k := range h {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		groups, err := json.Marshal(h[k])
		if err != nil {
			return nil, err
		}
		buf.Write(groups)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document models the host settings file. The hooks section is fully
// structured; every other top-level key is carried through as raw JSON so
// reconciliation never disturbs settings it does not own.
type Document struct {
	Hooks HookMap
	Extra map[string]json.RawMessage
}

// NewDocument returns an empty settings document.
func NewDocument() *Document {
	return &Document{Hooks: HookMap{}, Extra: map[string]json.RawMessage{}}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return err
	}
	d.Hooks = HookMap{}
	d.Extra = map[string]json.RawMessage{}
	for k, v := range top {
		if k == "hooks" {
			if err := json.Unmarshal(v, &d.Hooks); err != nil {
				return err
			}
			continue
		}
		d.Extra[k] = v
	}
	return nil
}

// MarshalJSON emits all top-level keys in sorted order, with hooks as a
// structured section.
func (d *Document) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(d.Extra)+1)
	for k := range d.Extra {
		keys = append(keys, k)
	}
	if len(d.Hooks) > 0 {
		keys = append(keys, "hooks")
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		var val []byte
		if k == "hooks" {
			val, err = json.Marshal(d.Hooks)
		} else {
			val, err = json.Marshal(d.Extra[k])
		}
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
