package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleV1 = `
name: bash
stream: rawhide
version: 20240101000000
summary: "The GNU Bourne Again shell"
description: bash
license:
  module: [MIT]
  content: [GPLv3+]
rpm-artifacts: [bash-5.1-1.fc39.x86_64]
eol: 2030-01-01
buildrequires:
  platform: f39
requires:
  platform: f39
`

func TestParseV1RoundTrip(t *testing.T) {
	p := NewParser()
	w, err := p.ParseBytes([]byte(sampleV1), true)
	require.Nil(t, err)
	assert.Equal(t, "bash", w.Name)
	assert.Equal(t, "rawhide", w.Stream)
	assert.Equal(t, uint64(20240101000000), w.Version)
	assert.True(t, w.ModuleLicenses.Contains("MIT"))
	assert.NotNil(t, w.EOL)
	assert.Equal(t, "f39", w.FlatBuildRequires["platform"])

	e := NewEmitter()
	node := e.Emit(w)
	assert.NotNil(t, node)

	w2, err2 := p.parseNode(node, true)
	require.Nil(t, err2)
	assert.Equal(t, w.Name, w2.Name)
	assert.Equal(t, w.FlatBuildRequires, w2.FlatBuildRequires)
}

func TestParseV1RejectsUnknownKeyStrict(t *testing.T) {
	p := NewParser()
	_, err := p.ParseBytes([]byte("name: bash\nstream: rawhide\nbogus: 1"), true)
	require.NotNil(t, err)
}

func TestValidateV1RejectsUnresolvedBuildAfter(t *testing.T) {
	p := NewParser()
	w, perr := p.ParseBytes([]byte(`
name: bash
stream: rawhide
rpm-components:
  bash:
    rationale: core
    buildafter: [ghost]
`), true)
	require.Nil(t, perr)

	v := NewValidator()
	errs := v.Validate(w)
	require.NotEmpty(t, errs)
}

func TestValidateV1RejectsMalformedNEVRA(t *testing.T) {
	p := NewParser()
	w, perr := p.ParseBytes([]byte(`
name: bash
stream: rawhide
rpm-artifacts: [not-a-nevra]
`), true)
	require.Nil(t, perr)

	v := NewValidator()
	errs := v.Validate(w)
	require.NotEmpty(t, errs)
}
