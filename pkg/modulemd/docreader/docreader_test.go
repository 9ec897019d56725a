package docreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStringPlainStream(t *testing.T) {
	doc := `
document: modulemd
version: 2
data:
  name: bash
  stream: rawhide
  version: 1
`
	s, err := ReadString(doc, true, Overrides{})
	require.Nil(t, err)
	assert.Equal(t, "bash", s.Name())
	assert.Equal(t, "rawhide", s.Stream())
}

func TestReadStringAppliesOverrides(t *testing.T) {
	doc := `
document: modulemd
version: 2
data:
  name: bash
  stream: rawhide
  version: 1
`
	s, err := ReadString(doc, true, Overrides{ModuleName: "bash-fork", StreamName: "f40"})
	require.Nil(t, err)
	assert.Equal(t, "bash-fork", s.Name())
	assert.Equal(t, "f40", s.Stream())
}

func TestReadStringLowersPackagerFragment(t *testing.T) {
	doc := `
document: modulemd-packager
version: 3
data:
  name: bash
  stream: rawhide
  summary: shell
  configurations:
  - platform: f40
`
	s, err := ReadString(doc, true, Overrides{})
	require.Nil(t, err)
	assert.Equal(t, "bash", s.Name())
	assert.Equal(t, uint64(3), s.MDVersion())
}

func TestReadStringLowersNamelessPackagerFragmentWithOverrides(t *testing.T) {
	doc := `
document: modulemd-packager
version: 3
data:
  summary: shell
  configurations:
  - platform: f40
`
	s, err := ReadString(doc, true, Overrides{ModuleName: "bash", StreamName: "rawhide"})
	require.Nil(t, err)
	assert.Equal(t, "bash", s.Name())
	assert.Equal(t, "rawhide", s.Stream())
	assert.Equal(t, uint64(3), s.MDVersion())
}

func TestReadStringLowersNamelessPackagerFragmentWithoutOverrides(t *testing.T) {
	doc := `
document: modulemd-packager
version: 3
data:
  summary: shell
  configurations:
  - platform: f40
`
	s, err := ReadString(doc, true, Overrides{})
	require.Nil(t, err)
	assert.NotEmpty(t, s.Name())
	assert.NotEmpty(t, s.Stream())
}

func TestReadStringRejectsMultipleDocuments(t *testing.T) {
	doc := `
document: modulemd
version: 2
data:
  name: bash
  stream: rawhide
  version: 1
---
document: modulemd
version: 2
data:
  name: httpd
  stream: rawhide
  version: 1
`
	_, err := ReadString(doc, true, Overrides{})
	require.NotNil(t, err)
}
