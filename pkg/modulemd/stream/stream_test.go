package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

func TestParseEmitRoundTrip(t *testing.T) {
	raw := []byte(`
name: bash
stream: rawhide
version: 1
summary: shell
`)
	s, err := Parse(types.SubdocumentInfo{Doctype: "modulemd", MDVersion: 2, Raw: raw}, true)
	require.Nil(t, err)
	assert.Equal(t, "bash", s.Name())

	doc := Emit(s)
	assert.Equal(t, "modulemd", doc.Doctype)
	assert.Equal(t, uint64(2), doc.Version)

	out, emitErr := yamlio.EmitDocumentsToString([]yamlio.Document{doc})
	require.NoError(t, emitErr)
	assert.Contains(t, out, "name: bash")
}

func TestParseRejectsUnsupportedMDVersion(t *testing.T) {
	_, err := Parse(types.SubdocumentInfo{Doctype: "modulemd", MDVersion: 99, Raw: []byte("{}")}, true)
	require.NotNil(t, err)
}

func TestEqualAndDeepCopyIndependence(t *testing.T) {
	raw := []byte("name: bash\nstream: rawhide\nversion: 1\n")
	s, err := Parse(types.SubdocumentInfo{Doctype: "modulemd", MDVersion: 2, Raw: raw}, true)
	require.Nil(t, err)

	cp := s.DeepCopy()
	assert.True(t, Equal(s, cp))
	cp.SetStream("f40")
	assert.False(t, Equal(s, cp))
	assert.Equal(t, "rawhide", s.Stream())
}

func TestNSVCAFormatting(t *testing.T) {
	raw := []byte("name: bash\nstream: rawhide\nversion: 1\ncontext: abcdef\n")
	s, err := Parse(types.SubdocumentInfo{Doctype: "modulemd", MDVersion: 2, Raw: raw}, true)
	require.Nil(t, err)
	assert.Equal(t, "bash:rawhide:1:abcdef", s.NSVCA())
}
