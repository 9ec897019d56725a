package yamlio

import (
	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
)

// MappingCursor is a Cursor known to hold a mapping node, with helpers
// for field lookup and strict/non-strict unknown-key handling.
type MappingCursor struct {
	node *yaml.Node
}

// Field returns a Cursor over the named field's value, or (nil, false)
// if the mapping has no such key.
func (m *MappingCursor) Field(name string) (*Cursor, bool) {
	if m == nil || m.node == nil {
		return nil, false
	}
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		key := resolveAlias(m.node.Content[i])
		if key.Kind == yaml.ScalarNode && key.Value == name {
			return NewCursor(m.node.Content[i+1]), true
		}
	}
	return nil, false
}

// Keys returns every key present in the mapping, in document order.
func (m *MappingCursor) Keys() []string {
	if m == nil || m.node == nil {
		return nil
	}
	keys := make([]string, 0, len(m.node.Content)/2)
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		key := resolveAlias(m.node.Content[i])
		keys = append(keys, key.Value)
	}
	return keys
}

// UnknownKeys returns the subset of the mapping's keys not present in
// known, used by variant parsers to raise UnknownAttribute under
// strict mode or to log-and-skip otherwise.
func (m *MappingCursor) UnknownKeys(known []string) []string {
	knownSet := make(map[string]struct{}, len(known))
	for _, k := range known {
		knownSet[k] = struct{}{}
	}
	var unknown []string
	for _, k := range m.Keys() {
		if _, ok := knownSet[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	return unknown
}

// CheckUnknownKeys enforces the schema's strict/non-strict contract
// for a mapping's keys against known (spec §4.1 skip_unknown): under
// strict=true an unrecognized key is a fatal UnknownAttribute error;
// under strict=false it is tolerated and reported through the
// installed DebugLogger instead of being silently dropped.
func (m *MappingCursor) CheckUnknownKeys(known []string, strict bool, doctype string) *modulemderrors.Error {
	unknown := m.UnknownKeys(known)
	if len(unknown) == 0 {
		return nil
	}
	if strict {
		return modulemderrors.New(modulemderrors.UnknownAttribute, "unknown key in "+doctype).
			WithDetail("keys", unknown).AtPosition(m.Line(), m.Column())
	}
	LogSkippedKeys(doctype, unknown)
	return nil
}

// Line reports the mapping node's starting line, for error reporting
// against the document as a whole rather than one field within it.
func (m *MappingCursor) Line() int {
	if m == nil || m.node == nil {
		return 0
	}
	return m.node.Line
}

// Column reports the mapping node's starting column.
func (m *MappingCursor) Column() int {
	if m == nil || m.node == nil {
		return 0
	}
	return m.node.Column
}
