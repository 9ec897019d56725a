package v2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleV2 = `
name: bash
stream: rawhide
version: 1
servicelevels:
  rawhide:
    eol: 2030-01-01
dependencies:
  - buildrequires:
      platform: [f39]
    requires:
      platform: [f39]
`

func TestParseV2RoundTrip(t *testing.T) {
	p := NewParser()
	w, err := p.ParseBytes([]byte(sampleV2), true)
	require.Nil(t, err)
	assert.Equal(t, "bash", w.Name)
	require.Len(t, w.DependenciesList, 1)
	assert.True(t, w.DependenciesList[0].BuildRequires["platform"].Contains("f39"))
	assert.NotNil(t, w.ServiceLevels["rawhide"].EOL)

	e := NewEmitter()
	node := e.Emit(w)
	w2, err2 := p.parseNode(node, true)
	require.Nil(t, err2)
	assert.Equal(t, w.Name, w2.Name)
	require.Len(t, w2.DependenciesList, 1)
}

func TestValidateV2RejectsMixedBuildOrder(t *testing.T) {
	p := NewParser()
	w, perr := p.ParseBytes([]byte(`
name: bash
stream: rawhide
rpm-components:
  bash:
    rationale: core
    buildorder: 1
  glibc:
    rationale: core
    buildafter: [bash]
`), true)
	require.Nil(t, perr)

	v := NewValidator()
	errs := v.Validate(w)
	require.NotEmpty(t, errs)
}
