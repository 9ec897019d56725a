// Package yamlio wraps gopkg.in/yaml.v3 with the schema-aware typed
// readers and writers every document variant parser/emitter shares:
// a document router that reads document/version/data headers without
// descending into the body, positioned cursors that fail with
// line/column-carrying errors on type mismatch, and an emitter that
// centralizes the string-quoting and key-ordering rules.
package yamlio

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/xmd"
)

// Cursor is a parser positioned at a single YAML value. Every read
// method leaves the underlying node untouched (reads are non-
// destructive) and returns a structured error carrying the node's
// line/column on a type mismatch, per the engine's typed-reader
// contract.
type Cursor struct {
	node *yaml.Node
}

// NewCursor wraps a node. Passing nil is valid and behaves as an
// absent value for every reader.
func NewCursor(node *yaml.Node) *Cursor {
	return &Cursor{node: resolveAlias(node)}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// Node returns the underlying node, or nil if the cursor is empty.
func (c *Cursor) Node() *yaml.Node {
	if c == nil {
		return nil
	}
	return c.node
}

// IsAbsent reports whether the cursor carries no value.
func (c *Cursor) IsAbsent() bool {
	return c == nil || c.node == nil || c.node.Kind == 0
}

func (c *Cursor) typeError(want string) *modulemderrors.Error {
	line, col := 0, 0
	got := "nothing"
	if c.node != nil {
		line, col = c.node.Line, c.node.Column
		switch c.node.Kind {
		case yaml.ScalarNode:
			got = fmt.Sprintf("scalar %q", c.node.Value)
		case yaml.SequenceNode:
			got = "sequence"
		case yaml.MappingNode:
			got = "mapping"
		default:
			got = "unknown node"
		}
	}
	return modulemderrors.Parse(fmt.Sprintf("expected %s, found %s", want, got), line, col)
}

// String reads a scalar as a string.
func (c *Cursor) String() (string, *modulemderrors.Error) {
	if c.IsAbsent() || c.node.Kind != yaml.ScalarNode {
		return "", c.typeError("string")
	}
	return c.node.Value, nil
}

// Bool reads a scalar as a boolean.
func (c *Cursor) Bool() (bool, *modulemderrors.Error) {
	if c.IsAbsent() || c.node.Kind != yaml.ScalarNode {
		return false, c.typeError("bool")
	}
	var v bool
	if err := c.node.Decode(&v); err != nil {
		return false, modulemderrors.Parse(fmt.Sprintf("invalid bool %q", c.node.Value), c.node.Line, c.node.Column)
	}
	return v, nil
}

// Int64 reads a scalar as a signed integer.
func (c *Cursor) Int64() (int64, *modulemderrors.Error) {
	if c.IsAbsent() || c.node.Kind != yaml.ScalarNode {
		return 0, c.typeError("int")
	}
	v, err := strconv.ParseInt(c.node.Value, 10, 64)
	if err != nil {
		return 0, modulemderrors.Parse(fmt.Sprintf("invalid integer %q", c.node.Value), c.node.Line, c.node.Column)
	}
	return v, nil
}

// Uint64 reads a scalar as an unsigned integer.
func (c *Cursor) Uint64() (uint64, *modulemderrors.Error) {
	if c.IsAbsent() || c.node.Kind != yaml.ScalarNode {
		return 0, c.typeError("uint")
	}
	v, err := strconv.ParseUint(c.node.Value, 10, 64)
	if err != nil {
		return 0, modulemderrors.Parse(fmt.Sprintf("invalid unsigned integer %q", c.node.Value), c.node.Line, c.node.Column)
	}
	return v, nil
}

// Date reads a scalar as a YYYY-MM-DD calendar date.
func (c *Cursor) Date() (primitives.GDate, *modulemderrors.Error) {
	if c.IsAbsent() || c.node.Kind != yaml.ScalarNode {
		return primitives.GDate{}, c.typeError("date")
	}
	d, err := primitives.ParseGDate(c.node.Value)
	if err != nil {
		return primitives.GDate{}, modulemderrors.Parse(err.Error(), c.node.Line, c.node.Column)
	}
	return d, nil
}

// StringSet reads a sequence of scalars into a deduplicated set.
func (c *Cursor) StringSet() (primitives.StringSet, *modulemderrors.Error) {
	if c.IsAbsent() || c.node.Kind != yaml.SequenceNode {
		return primitives.StringSet{}, c.typeError("sequence")
	}
	set := primitives.NewStringSet()
	for _, item := range c.node.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.ScalarNode {
			return primitives.StringSet{}, modulemderrors.Parse("string_set elements must be scalar", item.Line, item.Column)
		}
		set.Add(item.Value)
	}
	return set, nil
}

// StringStringMap reads a mapping with scalar keys and scalar values.
func (c *Cursor) StringStringMap() (map[string]string, *modulemderrors.Error) {
	if c.IsAbsent() || c.node.Kind != yaml.MappingNode {
		return nil, c.typeError("mapping")
	}
	out := make(map[string]string, len(c.node.Content)/2)
	for i := 0; i+1 < len(c.node.Content); i += 2 {
		key, val := resolveAlias(c.node.Content[i]), resolveAlias(c.node.Content[i+1])
		if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
			return nil, modulemderrors.Parse("string_string_map keys and values must be scalar", key.Line, key.Column)
		}
		out[key.Value] = val.Value
	}
	return out, nil
}

// NestedSet reads a mapping with scalar keys and string-set values.
func (c *Cursor) NestedSet() (map[string]primitives.StringSet, *modulemderrors.Error) {
	if c.IsAbsent() || c.node.Kind != yaml.MappingNode {
		return nil, c.typeError("mapping")
	}
	out := make(map[string]primitives.StringSet, len(c.node.Content)/2)
	for i := 0; i+1 < len(c.node.Content); i += 2 {
		key := resolveAlias(c.node.Content[i])
		if key.Kind != yaml.ScalarNode {
			return nil, modulemderrors.Parse("nested_set keys must be scalar", key.Line, key.Column)
		}
		set, err := NewCursor(c.node.Content[i+1]).StringSet()
		if err != nil {
			return nil, err
		}
		out[key.Value] = set
	}
	return out, nil
}

// Variant reads the recursive opaque XMD structure.
func (c *Cursor) Variant() (xmd.Variant, *modulemderrors.Error) {
	if c.IsAbsent() {
		return xmd.Null(), nil
	}
	return xmd.FromNode(c.node)
}

// AsMapping requires the cursor to hold a mapping and returns a
// MappingCursor over it.
func (c *Cursor) AsMapping() (*MappingCursor, *modulemderrors.Error) {
	if c.IsAbsent() || c.node.Kind != yaml.MappingNode {
		return nil, c.typeError("mapping")
	}
	return &MappingCursor{node: c.node}, nil
}
