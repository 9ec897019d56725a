package v3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleV3 = `
name: bash
stream: rawhide
version: 1
platform: el9
buildtime-deps:
  platform: el9
runtime-deps:
  platform: el9
`

func TestParseV3RoundTrip(t *testing.T) {
	p := NewParser()
	w, err := p.ParseBytes([]byte(sampleV3), true)
	require.Nil(t, err)
	assert.Equal(t, "el9", w.Platform)
	assert.Equal(t, "el9", w.BuildtimeDeps["platform"])

	e := NewEmitter()
	node := e.Emit(w)
	w2, err2 := p.parseNode(node, true)
	require.Nil(t, err2)
	assert.Equal(t, w.Platform, w2.Platform)
}

func TestValidateV3RequiresPlatform(t *testing.T) {
	p := NewParser()
	w, perr := p.ParseBytes([]byte("name: bash\nstream: rawhide\n"), true)
	require.Nil(t, perr)

	v := NewValidator()
	errs := v.Validate(w)
	require.NotEmpty(t, errs)
}
