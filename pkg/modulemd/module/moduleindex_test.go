package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFromStringWiresAllDoctypes(t *testing.T) {
	idx := NewIndex()
	doc := `
document: modulemd
version: 2
data:
  name: bash
  stream: rawhide
  version: 1
  summary: shell
---
document: modulemd-defaults
version: 1
data:
  module: bash
  stream: rawhide
---
document: modulemd-translations
version: 1
data:
  module: bash
  stream: rawhide
  modified: 20200101
  translations:
    en_US:
      summary: the shell
`
	failures, err := idx.UpdateFromString(doc, true)
	require.Nil(t, err)
	require.Empty(t, failures)

	m := idx.GetModule("bash")
	require.NotNil(t, m)
	assert.Len(t, m.Streams, 1)
	require.NotNil(t, m.Defaults)
	assert.Equal(t, "rawhide", m.Defaults.DefaultStream)
	assert.Equal(t, uint64(2), idx.StreamMDVersion())
}

func TestAddModuleStreamRaisesFloor(t *testing.T) {
	idx := NewIndex()
	v1 := parseStreamVersion(t, 1, "name: bash\nstream: rawhide\nversion: 1\n")
	require.Nil(t, idx.AddModuleStream("bash", v1))
	assert.Equal(t, uint64(1), idx.StreamMDVersion())

	v3 := parseStreamVersion(t, 3, "name: httpd\nstream: rawhide\nversion: 1\nplatform: f40\n")
	require.Nil(t, idx.AddModuleStream("httpd", v3))
	assert.Equal(t, uint64(3), idx.StreamMDVersion())

	bash := idx.GetModule("bash")
	for _, s := range bash.Streams {
		assert.Equal(t, uint64(3), s.MDVersion())
	}
}

func TestAddModuleStreamLowersIncomingStreamToFloor(t *testing.T) {
	idx := NewIndex()
	v3 := parseStreamVersion(t, 3, "name: httpd\nstream: rawhide\nversion: 1\nplatform: f40\n")
	require.Nil(t, idx.AddModuleStream("httpd", v3))

	v1 := parseStreamVersion(t, 1, "name: bash\nstream: rawhide\nversion: 1\n")
	require.Nil(t, idx.AddModuleStream("bash", v1))

	bash := idx.GetModule("bash")
	for _, s := range bash.Streams {
		assert.Equal(t, uint64(3), s.MDVersion())
	}
}

func TestSearchStreamsByGlob(t *testing.T) {
	idx := NewIndex()
	require.Nil(t, idx.AddModuleStream("bash", parseStreamVersion(t, 2, "name: bash\nstream: rawhide\nversion: 1\n")))
	require.Nil(t, idx.AddModuleStream("httpd", parseStreamVersion(t, 2, "name: httpd\nstream: rawhide\nversion: 1\n")))

	matches, err := idx.SearchStreamsByGlob("ba*")
	require.Nil(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "bash", matches[0].Name())
}

func TestSearchStreamsByGlobMatchesFullNSVCA(t *testing.T) {
	idx := NewIndex()
	require.Nil(t, idx.AddModuleStream("bash", parseStreamVersion(t, 2, "name: bash\nstream: rawhide\nversion: 1\narch: x86_64\n")))
	require.Nil(t, idx.AddModuleStream("bash", parseStreamVersion(t, 2, "name: bash\nstream: rawhide\nversion: 1\narch: aarch64\n")))
	require.Nil(t, idx.AddModuleStream("httpd", parseStreamVersion(t, 2, "name: httpd\nstream: rawhide\nversion: 1\narch: x86_64\n")))

	matches, err := idx.SearchStreamsByGlob("bash:*:*:*:x86_64")
	require.Nil(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "x86_64", matches[0].Arch())

	none, err := idx.SearchStreamsByGlob("bash:*:*:*:ppc64le")
	require.Nil(t, err)
	assert.Empty(t, none)
}

func TestDumpToStringRoundTrips(t *testing.T) {
	idx := NewIndex()
	require.Nil(t, idx.AddModuleStream("bash", parseStreamVersion(t, 2, "name: bash\nstream: rawhide\nversion: 1\nsummary: shell\n")))

	out, err := idx.DumpToString()
	require.Nil(t, err)
	assert.Contains(t, out, "document: modulemd")

	idx2 := NewIndex()
	failures, uerr := idx2.UpdateFromString(out, true)
	require.Nil(t, uerr)
	require.Empty(t, failures)
	assert.Len(t, idx2.GetModule("bash").Streams, 1)
}

func TestUpdateFromStringCollectsPartialFailures(t *testing.T) {
	idx := NewIndex()
	doc := `
document: modulemd
version: 2
data:
  name: bash
  stream: rawhide
  version: 1
---
document: modulemd
version: 99
data:
  name: broken
  stream: rawhide
  version: 1
`
	failures, err := idx.UpdateFromString(doc, true)
	require.Nil(t, err)
	require.Len(t, failures, 1)
	assert.NotNil(t, idx.GetModule("bash"))
}
