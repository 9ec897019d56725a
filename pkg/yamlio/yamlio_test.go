package yamlio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/xmd"
)

func parseValue(t *testing.T, y string) *Cursor {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(y), &node))
	root := &node
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		root = node.Content[0]
	}
	return NewCursor(root)
}

func TestCursorTypedReaders(t *testing.T) {
	s, err := parseValue(t, `"hello"`).String()
	assert.Nil(t, err)
	assert.Equal(t, "hello", s)

	b, err := parseValue(t, `true`).Bool()
	assert.Nil(t, err)
	assert.True(t, b)

	i, err := parseValue(t, `-3`).Int64()
	assert.Nil(t, err)
	assert.Equal(t, int64(-3), i)

	u, err := parseValue(t, `42`).Uint64()
	assert.Nil(t, err)
	assert.Equal(t, uint64(42), u)

	d, err := parseValue(t, `2020-01-01`).Date()
	assert.Nil(t, err)
	assert.Equal(t, "2020-01-01", d.String())
}

func TestCursorTypeMismatchCarriesPosition(t *testing.T) {
	_, err := parseValue(t, "[1, 2]").String()
	require.Error(t, err)
	assert.Greater(t, err.Line, 0)
}

func TestCursorStringSet(t *testing.T) {
	set, err := parseValue(t, "[b, a, a]").StringSet()
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, set.Sorted())
}

func TestCursorStringStringMap(t *testing.T) {
	m, err := parseValue(t, "platform: f39\nruntime: f39").StringStringMap()
	assert.Nil(t, err)
	assert.Equal(t, map[string]string{"platform": "f39", "runtime": "f39"}, m)
}

func TestCursorNestedSet(t *testing.T) {
	m, err := parseValue(t, "platform: [f39, f40]").NestedSet()
	assert.Nil(t, err)
	assert.Equal(t, []string{"f39", "f40"}, m["platform"].Sorted())
}

func TestCursorVariant(t *testing.T) {
	v, err := parseValue(t, "foo: [1, true, ~]").Variant()
	assert.Nil(t, err)
	assert.Equal(t, xmd.KindMap, v.Kind())
}

func TestMappingCursorUnknownKeys(t *testing.T) {
	c := parseValue(t, "name: bash\nextra: yes")
	mc, err := c.AsMapping()
	require.Nil(t, err)
	assert.Equal(t, []string{"extra"}, mc.UnknownKeys([]string{"name"}))
}

func TestRouterContinuesPastBadHeader(t *testing.T) {
	stream := strings.Join([]string{
		"document: modulemd\nversion: 2\ndata: {}",
		"version: 2\ndata: {}", // missing document key
		"document: modulemd-defaults\nversion: 1\ndata: {}",
	}, "\n---\n")

	r := NewRouter()
	docs, err := r.ParseStream(strings.NewReader(stream))
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "modulemd", docs[0].Doctype)
	assert.True(t, docs[1].HasError())
	assert.Equal(t, "modulemd-defaults", docs[2].Doctype)
}

func TestEmitDocumentRoundTrip(t *testing.T) {
	data := &yaml.Node{Kind: yaml.MappingNode}
	data.Content = append(data.Content,
		plainScalar("name"), QuoteScalar("bash"),
		plainScalar("stream"), QuoteScalar("5.1"))

	out, err := EmitDocumentsToString([]Document{{Doctype: "modulemd", Version: 2, Data: data}})
	require.NoError(t, err)
	assert.Contains(t, out, "document: modulemd")
	assert.Contains(t, out, "version: 2")
	assert.Contains(t, out, "name: bash")
	assert.Contains(t, out, `stream: "5.1"`)
}

func TestQuoteScalarRules(t *testing.T) {
	assert.Equal(t, yaml.DoubleQuotedStyle, QuoteScalar("123").Style)
	assert.Equal(t, yaml.DoubleQuotedStyle, QuoteScalar("true").Style)
	assert.Equal(t, yaml.DoubleQuotedStyle, QuoteScalar("").Style)
	assert.NotEqual(t, yaml.DoubleQuotedStyle, QuoteScalar("bash").Style)
}

func TestWriteStringSetSorted(t *testing.T) {
	n := WriteStringSet(primitives.NewStringSet("z", "a"))
	assert.Equal(t, "a", n.Content[0].Value)
	assert.Equal(t, "z", n.Content[1].Value)
}
