package xmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestEqualAndDeepCopyIndependence(t *testing.T) {
	original := Map(map[string]Variant{
		"a": Seq([]Variant{Str("x"), Int(1)}),
		"b": Bool(true),
	})
	cp := original.DeepCopy()
	assert.True(t, Equal(original, cp))

	cpMap, _ := cp.MapValue()
	cpSeq, _ := cpMap["a"].SeqValue()
	cpSeq[0] = Str("mutated")

	origMap, _ := original.MapValue()
	origSeq, _ := origMap["a"].SeqValue()
	assert.Equal(t, "x", mustStr(origSeq[0]))
	assert.Equal(t, "mutated", mustStr(cpSeq[0]))
}

func mustStr(v Variant) string {
	s, _ := v.StrValue()
	return s
}

func TestFromNodeRoundTrip(t *testing.T) {
	var node yaml.Node
	err := yaml.Unmarshal([]byte("foo: [1, \"2\", true, ~]\n"), &node)
	assert.NoError(t, err)

	v, verr := FromNode(node.Content[0])
	assert.Nil(t, verr)

	m, ok := v.MapValue()
	assert.True(t, ok)
	seq, ok := m["foo"].SeqValue()
	assert.True(t, ok)
	assert.Equal(t, 4, len(seq))

	i, ok := seq[0].IntValue()
	assert.True(t, ok)
	assert.Equal(t, int64(1), i)

	s, ok := seq[1].StrValue()
	assert.True(t, ok)
	assert.Equal(t, "2", s)

	b, ok := seq[2].BoolValue()
	assert.True(t, ok)
	assert.True(t, b)

	assert.True(t, seq[3].IsNull())
}

func TestNeedsQuoting(t *testing.T) {
	assert.True(t, NeedsQuoting(""))
	assert.True(t, NeedsQuoting("true"))
	assert.True(t, NeedsQuoting("5.30"))
	assert.True(t, NeedsQuoting("-12"))
	assert.False(t, NeedsQuoting("hello"))
	assert.False(t, NeedsQuoting("1.0.0-beta"))
}

func TestRejectsNonScalarKey(t *testing.T) {
	var node yaml.Node
	err := yaml.Unmarshal([]byte("? [1,2]\n: 3\n"), &node)
	assert.NoError(t, err)

	_, verr := FromNode(node.Content[0])
	assert.NotNil(t, verr)
}
