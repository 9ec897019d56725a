package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/defaults"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/module"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/obsoletes"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/translation"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
)

func parseStream(t *testing.T, raw string) stream.ModuleStream {
	t.Helper()
	s, err := stream.Parse(types.SubdocumentInfo{Doctype: "modulemd", MDVersion: 2, Raw: []byte(raw)}, true)
	require.Nil(t, err)
	return s
}

func TestResolveMergesIdenticalStreamsTrivially(t *testing.T) {
	idx1 := module.NewIndex()
	idx2 := module.NewIndex()
	s1 := parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: shell\n")
	s2 := parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: shell\n")
	require.Nil(t, idx1.AddModuleStream("bash", s1))
	require.Nil(t, idx2.AddModuleStream("bash", s2))

	m := New()
	m.AddIndex(idx1, 0)
	m.AddIndex(idx2, 0)
	out, err := m.Resolve(false, true)
	require.Nil(t, err)
	assert.Len(t, out.GetModule("bash").Streams, 1)
}

func TestResolveHigherPriorityWinsStreamConflict(t *testing.T) {
	idx1 := module.NewIndex()
	idx2 := module.NewIndex()
	require.Nil(t, idx1.AddModuleStream("bash", parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: low\n")))
	require.Nil(t, idx2.AddModuleStream("bash", parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: high\n")))

	m := New()
	m.AddIndex(idx1, 0)
	m.AddIndex(idx2, 1)
	out, err := m.Resolve(false, true)
	require.Nil(t, err)

	var got string
	for _, s := range out.GetModule("bash").Streams {
		got = s.Summary()
	}
	assert.Equal(t, "high", got)
}

func TestResolveEqualPriorityConflictWithoutOverrideFails(t *testing.T) {
	idx1 := module.NewIndex()
	idx2 := module.NewIndex()
	require.Nil(t, idx1.AddModuleStream("bash", parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: one\n")))
	require.Nil(t, idx2.AddModuleStream("bash", parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: two\n")))

	m := New()
	m.AddIndex(idx1, 0)
	m.AddIndex(idx2, 0)
	_, err := m.Resolve(false, true)
	require.NotNil(t, err)
}

func TestResolveEqualPriorityConflictWithOverridePicksLaterListed(t *testing.T) {
	idx1 := module.NewIndex()
	idx2 := module.NewIndex()
	require.Nil(t, idx1.AddModuleStream("bash", parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: one\n")))
	require.Nil(t, idx2.AddModuleStream("bash", parseStream(t, "name: bash\nstream: rawhide\nversion: 1\nsummary: two\n")))

	m := New()
	m.AddIndex(idx1, 0)
	m.AddIndex(idx2, 0)
	out, err := m.Resolve(true, true)
	require.Nil(t, err)

	var got string
	for _, s := range out.GetModule("bash").Streams {
		got = s.Summary()
	}
	assert.Equal(t, "two", got)
}

func TestResolveDefaultStreamConflictStrict(t *testing.T) {
	idx1 := module.NewIndex()
	idx2 := module.NewIndex()
	d1 := defaults.New("bash")
	d1.DefaultStream = "rawhide"
	d2 := defaults.New("bash")
	d2.DefaultStream = "f40"
	require.Nil(t, idx1.AddDefaults(d1))
	require.Nil(t, idx2.AddDefaults(d2))

	m := New()
	m.AddIndex(idx1, 0)
	m.AddIndex(idx2, 0)
	_, err := m.Resolve(false, true)
	require.NotNil(t, err)
}

func TestResolveDefaultStreamConflictRelaxedYieldsEmpty(t *testing.T) {
	idx1 := module.NewIndex()
	idx2 := module.NewIndex()
	d1 := defaults.New("bash")
	d1.DefaultStream = "rawhide"
	d2 := defaults.New("bash")
	d2.DefaultStream = "f40"
	require.Nil(t, idx1.AddDefaults(d1))
	require.Nil(t, idx2.AddDefaults(d2))

	m := New()
	m.AddIndex(idx1, 0)
	m.AddIndex(idx2, 0)
	out, err := m.Resolve(false, false)
	require.Nil(t, err)
	assert.Equal(t, "", out.GetModule("bash").Defaults.DefaultStream)
}

func TestResolveTranslationsIgnorePriorityUseModified(t *testing.T) {
	idx1 := module.NewIndex()
	idx2 := module.NewIndex()
	older := translation.New("bash", "rawhide")
	older.Modified = 1
	older.Entries["en_US"] = &types.TranslationEntry{Summary: "old"}
	newer := translation.New("bash", "rawhide")
	newer.Modified = 2
	newer.Entries["en_US"] = &types.TranslationEntry{Summary: "new"}
	require.Nil(t, idx1.AddTranslation(newer))
	require.Nil(t, idx2.AddTranslation(older))

	m := New()
	m.AddIndex(idx1, 0)
	m.AddIndex(idx2, 100)
	out, err := m.Resolve(false, true)
	require.Nil(t, err)
	assert.Equal(t, "new", out.GetModule("bash").Translation("rawhide").LocalizedSummary("en_US", ""))
}

func TestResolveObsoletesWithoutResetKeepsHistory(t *testing.T) {
	idx1 := module.NewIndex()
	idx2 := module.NewIndex()
	o1 := obsoletes.New("bash", "rawhide")
	o1.Modified = 1
	o1.Message = "old"
	o2 := obsoletes.New("bash", "rawhide")
	o2.Modified = 2
	o2.Message = "new"
	require.Nil(t, idx1.AddObsoletes(o1))
	require.Nil(t, idx2.AddObsoletes(o2))

	m := New()
	m.AddIndex(idx1, 0)
	m.AddIndex(idx2, 0)
	out, err := m.Resolve(false, true)
	require.Nil(t, err)
	merged := out.GetModule("bash").Obsoletes
	require.Len(t, merged, 2)
	assert.Equal(t, "old", merged[0].Message)
	assert.Equal(t, "new", merged[1].Message)
}

func TestResolveObsoletesResetErasesHistory(t *testing.T) {
	idx1 := module.NewIndex()
	idx2 := module.NewIndex()
	o1 := obsoletes.New("bash", "rawhide")
	o1.Modified = 1
	o1.Message = "old"
	o2 := obsoletes.New("bash", "rawhide")
	o2.Modified = 2
	o2.Message = "new"
	o2.Reset = true
	require.Nil(t, idx1.AddObsoletes(o1))
	require.Nil(t, idx2.AddObsoletes(o2))

	m := New()
	m.AddIndex(idx1, 0)
	m.AddIndex(idx2, 0)
	out, err := m.Resolve(false, true)
	require.Nil(t, err)
	merged := out.GetModule("bash").Obsoletes
	require.Len(t, merged, 1)
	assert.Equal(t, "new", merged[0].Message)
}
