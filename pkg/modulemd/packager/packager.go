// Package packager implements the Packager document variant: the
// multi-build-configuration authoring input consumed by a build
// service, which lowers to one or more ModuleStream documents rather
// than being emitted as a module stream itself (spec §3 Packager,
// §4.2 Packager v3 -> Stream v2/v3).
package packager

import (
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/xmd"
)

// BuildConfig is one build context: its own platform, buildrequires,
// requires, and optional buildopts. Packager v2 carries exactly one of
// these (inlined at the top level of its data section, no
// `configurations:` key); v3 carries a list.
type BuildConfig struct {
	Platform      string
	BuildRequires map[string]string
	Requires      map[string]string
	Buildopts     *types.Buildopts
}

// DeepCopy returns an independent copy.
func (b *BuildConfig) DeepCopy() *BuildConfig {
	if b == nil {
		return nil
	}
	cp := &BuildConfig{
		Platform:      b.Platform,
		BuildRequires: make(map[string]string, len(b.BuildRequires)),
		Requires:      make(map[string]string, len(b.Requires)),
		Buildopts:     b.Buildopts.DeepCopy(),
	}
	for k, v := range b.BuildRequires {
		cp.BuildRequires[k] = v
	}
	for k, v := range b.Requires {
		cp.Requires[k] = v
	}
	return cp
}

// Packager is the parsed body of a modulemd-packager document,
// normalized to its v3, multi-configuration shape regardless of
// whether it was parsed from a v2 or v3 subdocument (MDVersion records
// which it was, for round-tripping back to the same wire version).
type Packager struct {
	MDVersion uint64

	Name   string
	Stream string

	Summary       string
	Description   string
	Community     string
	Documentation string
	Tracker       string

	ModuleLicenses  primitives.StringSet
	ContentLicenses primitives.StringSet

	RpmAPI       primitives.StringSet
	RpmArtifacts primitives.StringSet
	RpmFilters   primitives.StringSet

	Profiles         map[string]*types.Profile
	ServiceLevels    map[string]*types.ServiceLevel
	RpmComponents    map[string]*types.ComponentRpm
	ModuleComponents map[string]*types.ComponentModule

	XMD xmd.Variant

	Configurations []*BuildConfig
}

// New returns an empty Packager with every map/set field initialized.
func New(mdVersion uint64) *Packager {
	return &Packager{
		MDVersion:        mdVersion,
		ModuleLicenses:   primitives.NewStringSet(),
		ContentLicenses:  primitives.NewStringSet(),
		RpmAPI:           primitives.NewStringSet(),
		RpmArtifacts:     primitives.NewStringSet(),
		RpmFilters:       primitives.NewStringSet(),
		Profiles:         make(map[string]*types.Profile),
		ServiceLevels:    make(map[string]*types.ServiceLevel),
		RpmComponents:    make(map[string]*types.ComponentRpm),
		ModuleComponents: make(map[string]*types.ComponentModule),
		XMD:              xmd.Null(),
	}
}

// DeepCopy returns an independent copy.
func (p *Packager) DeepCopy() *Packager {
	if p == nil {
		return nil
	}
	cp := &Packager{
		MDVersion:       p.MDVersion,
		Name:            p.Name,
		Stream:          p.Stream,
		Summary:         p.Summary,
		Description:     p.Description,
		Community:       p.Community,
		Documentation:   p.Documentation,
		Tracker:         p.Tracker,
		ModuleLicenses:  p.ModuleLicenses.DeepCopy(),
		ContentLicenses: p.ContentLicenses.DeepCopy(),
		RpmAPI:          p.RpmAPI.DeepCopy(),
		RpmArtifacts:    p.RpmArtifacts.DeepCopy(),
		RpmFilters:      p.RpmFilters.DeepCopy(),
		XMD:             p.XMD.DeepCopy(),
	}
	cp.Profiles = make(map[string]*types.Profile, len(p.Profiles))
	for k, v := range p.Profiles {
		cp.Profiles[k] = v.DeepCopy()
	}
	cp.ServiceLevels = make(map[string]*types.ServiceLevel, len(p.ServiceLevels))
	for k, v := range p.ServiceLevels {
		cp.ServiceLevels[k] = v.DeepCopy()
	}
	cp.RpmComponents = make(map[string]*types.ComponentRpm, len(p.RpmComponents))
	for k, v := range p.RpmComponents {
		cp.RpmComponents[k] = v.DeepCopy()
	}
	cp.ModuleComponents = make(map[string]*types.ComponentModule, len(p.ModuleComponents))
	for k, v := range p.ModuleComponents {
		cp.ModuleComponents[k] = v.DeepCopy()
	}
	for _, c := range p.Configurations {
		cp.Configurations = append(cp.Configurations, c.DeepCopy())
	}
	return cp
}
