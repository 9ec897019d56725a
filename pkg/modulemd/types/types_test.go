package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
)

func TestBuildoptsDeepCopyIndependence(t *testing.T) {
	b := &Buildopts{RPMMacros: "%x 1", Arches: primitives.NewStringSet("x86_64")}
	cp := b.DeepCopy()
	cp.Arches.Add("aarch64")
	assert.False(t, b.Arches.Contains("aarch64"))
	assert.True(t, BuildoptsEqual(b, b))
	assert.False(t, BuildoptsEqual(b, cp))
}

func TestComponentRpmDeepCopyAndEqual(t *testing.T) {
	c := &ComponentRpm{
		Component: Component{Name: "bash", BuildAfter: primitives.NewStringSet("glibc")},
		Ref:       "f39",
		Arches:    primitives.NewStringSet("x86_64"),
	}
	cp := c.DeepCopy()
	assert.True(t, ComponentRpmEqual(c, cp))
	cp.Ref = "f40"
	assert.False(t, ComponentRpmEqual(c, cp))
}

func TestProfileEqual(t *testing.T) {
	a := &Profile{Name: "minimal", RPMs: primitives.NewStringSet("bash")}
	b := &Profile{Name: "minimal", RPMs: primitives.NewStringSet("bash")}
	assert.True(t, ProfileEqual(a, b))
	b.Default = true
	assert.False(t, ProfileEqual(a, b))
}

func TestServiceLevelEqualAndDeepCopy(t *testing.T) {
	d, _ := primitives.ParseGDate("2030-01-01")
	other, _ := primitives.ParseGDate("2031-01-01")
	a := &ServiceLevel{Name: "rawhide", EOL: &d}
	b := &ServiceLevel{Name: "rawhide", EOL: &other}
	assert.False(t, ServiceLevelEqual(a, b))
	cp := a.DeepCopy()
	assert.True(t, ServiceLevelEqual(a, cp))
}

func TestDependenciesDeepCopyIndependence(t *testing.T) {
	d := &Dependencies{
		BuildRequires: map[string]primitives.StringSet{"platform": primitives.NewStringSet("f39")},
		Requires:      map[string]primitives.StringSet{"platform": primitives.NewStringSet("f39")},
	}
	cp := d.DeepCopy()
	cp.BuildRequires["platform"].Add("f40")
	assert.False(t, d.BuildRequires["platform"].Contains("f40"))
	assert.True(t, DependenciesEqual(d, d))
}

func TestTranslationEntryEqual(t *testing.T) {
	a := &TranslationEntry{Locale: "fr", Summary: "un resume",
		ProfileDescriptions: map[string]string{"minimal": "desc"}}
	b := a.DeepCopy()
	assert.True(t, TranslationEntryEqual(a, b))
	b.ProfileDescriptions["minimal"] = "autre"
	assert.False(t, TranslationEntryEqual(a, b))
}

func TestParseNEVRARoundTrip(t *testing.T) {
	e, err := ParseNEVRA("bash-5.1-1.fc39.x86_64")
	assert.NoError(t, err)
	assert.Equal(t, "bash", e.Name)
	assert.Nil(t, e.Epoch)
	assert.Equal(t, "bash-5.1-1.fc39.x86_64", e.String())

	e2, err := ParseNEVRA("bash-2:5.1-1.fc39.x86_64")
	assert.NoError(t, err)
	assert.NotNil(t, e2.Epoch)
	assert.Equal(t, uint64(2), *e2.Epoch)
	assert.Equal(t, "bash-2:5.1-1.fc39.x86_64", e2.String())
}

func TestParseNEVRARejectsMalformed(t *testing.T) {
	_, err := ParseNEVRA("not-a-nevra")
	assert.Error(t, err)
}

func TestSubdocumentInfoHasError(t *testing.T) {
	s := SubdocumentInfo{Doctype: "modulemd", MDVersion: 2}
	assert.False(t, s.HasError())
}
