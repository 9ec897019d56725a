// Package xmd implements the eXtensible MetaData value: an opaque,
// arbitrarily nested YAML structure carried verbatim for private consumer
// use. Validation never looks inside it, only at its shape.
package xmd

import (
	"fmt"
	"sort"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind identifies the shape of a Variant value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindStr
	KindSeq
	KindMap
)

// Variant is a recursive scalar/sequence/mapping value, mirroring the
// structures YAML itself can express. Map keys are always strings;
// non-string scalar keys in the source document are rejected during
// parsing.
type Variant struct {
	kind Kind
	b    bool
	i    int64
	s    string
	seq  []Variant
	m    map[string]Variant
}

// Null returns the null variant.
func Null() Variant { return Variant{kind: KindNull} }

// Bool wraps a boolean.
func Bool(v bool) Variant { return Variant{kind: KindBool, b: v} }

// Int wraps an integer.
func Int(v int64) Variant { return Variant{kind: KindInt, i: v} }

// Str wraps a string.
func Str(v string) Variant { return Variant{kind: KindStr, s: v} }

// Seq wraps a sequence of variants.
func Seq(v []Variant) Variant { return Variant{kind: KindSeq, seq: v} }

// Map wraps a string-keyed mapping of variants.
func Map(v map[string]Variant) Variant { return Variant{kind: KindMap, m: v} }

func (v Variant) Kind() Kind { return v.kind }
func (v Variant) IsNull() bool { return v.kind == KindNull }

func (v Variant) BoolValue() (bool, bool)          { return v.b, v.kind == KindBool }
func (v Variant) IntValue() (int64, bool)          { return v.i, v.kind == KindInt }
func (v Variant) StrValue() (string, bool)         { return v.s, v.kind == KindStr }
func (v Variant) SeqValue() ([]Variant, bool)      { return v.seq, v.kind == KindSeq }
func (v Variant) MapValue() (map[string]Variant, bool) { return v.m, v.kind == KindMap }

// Equal reports deep structural equality.
func Equal(a, b Variant) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindStr:
		return a.s == b.s
	case KindSeq:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.m) != len(b.m) {
			return false
		}
		for k, av := range a.m {
			bv, ok := b.m[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// DeepCopy returns an independent copy of v.
func (v Variant) DeepCopy() Variant {
	switch v.kind {
	case KindSeq:
		cp := make([]Variant, len(v.seq))
		for i, e := range v.seq {
			cp[i] = e.DeepCopy()
		}
		return Seq(cp)
	case KindMap:
		cp := make(map[string]Variant, len(v.m))
		for k, e := range v.m {
			cp[k] = e.DeepCopy()
		}
		return Map(cp)
	default:
		return v
	}
}

// FromNode converts a positioned yaml.Node into a Variant. It rejects
// non-scalar map keys; an alias node is converted as the value its
// anchor refers to.
func FromNode(node *yaml.Node) (Variant, *modulemderrors.Error) {
	if node == nil {
		return Null(), nil
	}
	switch node.Kind {
	case yaml.AliasNode:
		return FromNode(node.Alias)
	case yaml.ScalarNode:
		return scalarFromNode(node), nil
	case yaml.SequenceNode:
		seq := make([]Variant, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := FromNode(c)
			if err != nil {
				return Variant{}, err
			}
			seq = append(seq, v)
		}
		return Seq(seq), nil
	case yaml.MappingNode:
		m := make(map[string]Variant, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return Variant{}, modulemderrors.Parse("xmd map keys must be scalar", key.Line, key.Column)
			}
			val, err := FromNode(node.Content[i+1])
			if err != nil {
				return Variant{}, err
			}
			m[key.Value] = val
		}
		return Map(m), nil
	default:
		return Variant{}, modulemderrors.Parse(fmt.Sprintf("unsupported YAML node kind %v in xmd value", node.Kind), node.Line, node.Column)
	}
}

func scalarFromNode(node *yaml.Node) Variant {
	var i int64
	var b bool
	switch node.Tag {
	case "!!null":
		return Null()
	case "!!bool":
		if err := node.Decode(&b); err == nil {
			return Bool(b)
		}
	case "!!int":
		if err := node.Decode(&i); err == nil {
			return Int(i)
		}
	}
	return Str(node.Value)
}

// ToNode converts a Variant back into a *yaml.Node for emission. Map keys
// are emitted sorted for deterministic output (spec: "maps are emitted
// sorted by key").
func (v Variant) ToNode() *yaml.Node {
	switch v.kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}
	case KindBool:
		val := "false"
		if v.b {
			val = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}
	case KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", v.i)}
	case KindStr:
		node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
		if NeedsQuoting(v.s) {
			node.Style = yaml.DoubleQuotedStyle
		}
		return node
	case KindSeq:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range v.seq {
			n.Content = append(n.Content, e.ToNode())
		}
		return n
	case KindMap:
		n := &yaml.Node{Kind: yaml.MappingNode}
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, v.m[k].ToNode())
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}
}

// NeedsQuoting implements the spec's string-quoting rule: empty, numeric
// looking, or reserved-word scalars are emitted double-quoted.
func NeedsQuoting(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "true", "false", "null", "~":
		return true
	}
	return looksNumeric(s)
}

func looksNumeric(s string) bool {
	i := 0
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		i++
	}
	if i == len(s) {
		return false
	}
	sawDigit := false
	sawDot := false
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			sawDigit = true
		case c == '.' && !sawDot:
			sawDot = true
		default:
			return false
		}
	}
	return sawDigit
}
