package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/defaults"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/translation"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
)

func parseStream(t *testing.T, raw string) stream.ModuleStream {
	t.Helper()
	return parseStreamVersion(t, 2, raw)
}

func parseStreamVersion(t *testing.T, mdVersion uint64, raw string) stream.ModuleStream {
	t.Helper()
	s, err := stream.Parse(types.SubdocumentInfo{Doctype: "modulemd", MDVersion: mdVersion, Raw: []byte(raw)}, true)
	require.Nil(t, err)
	return s
}

func TestAddStreamRejectsConflict(t *testing.T) {
	m := New("bash")
	s1 := parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: one\n")
	s2 := parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: two\n")

	require.Nil(t, m.AddStream(s1))
	err := m.AddStream(s2)
	require.NotNil(t, err)
}

func TestAddStreamAllowsIdenticalReinsert(t *testing.T) {
	m := New("bash")
	s1 := parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: one\n")
	s2 := parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: one\n")

	require.Nil(t, m.AddStream(s1))
	require.Nil(t, m.AddStream(s2))
	assert.Len(t, m.Streams, 1)
}

func TestAddDefaultsRejectsNameMismatch(t *testing.T) {
	m := New("bash")
	d := defaults.New("other")
	err := m.AddDefaults(d)
	require.NotNil(t, err)
}

func TestAddTranslationLastModifiedWins(t *testing.T) {
	m := New("bash")
	older := translation.New("bash", "rawhide")
	older.Modified = 1
	older.Entries["en_US"] = &types.TranslationEntry{Summary: "old"}
	newer := translation.New("bash", "rawhide")
	newer.Modified = 2
	newer.Entries["en_US"] = &types.TranslationEntry{Summary: "new"}

	require.Nil(t, m.AddTranslation(newer))
	require.Nil(t, m.AddTranslation(older))
	assert.Equal(t, "new", m.Translation("rawhide").LocalizedSummary("en_US", "fallback"))
}

func TestLocalizedSummaryFallsBackWithoutTranslation(t *testing.T) {
	m := New("bash")
	s := parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: shell\n")
	assert.Equal(t, "shell", m.LocalizedSummary(s, "en_US"))
}

func TestDeepCopyIndependence(t *testing.T) {
	m := New("bash")
	s := parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: shell\n")
	require.Nil(t, m.AddStream(s))

	cp := m.DeepCopy()
	k := keyOf(s)
	cp.Streams[k].SetStream("f40")
	assert.Equal(t, "rawhide", m.Streams[k].Stream())
	assert.Equal(t, "f40", cp.Streams[k].Stream())
}
