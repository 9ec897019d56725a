// Package internal holds the canonical in-memory representation of a
// module stream, independent of which schema version it was parsed
// from or will be emitted as. Every version's transformer converts its
// wire struct into a StreamData; every version's Emit converts a
// StreamData back into its own wire shape.
package internal

import (
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/nsvca"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/xmd"
)

// StreamData is the canonical module stream body, covering every field
// any of v1/v2/v3 can carry. Fields meaningful to only one era of the
// schema (the v1 flat dependency maps, the v2 dependency list, the v3
// flattened deps+platform) are all present; a stream only populates the
// ones its mdversion uses, and upgrade/lowering rewrite between them.
type StreamData struct {
	MDVersion uint64

	Name    string
	Stream  string
	Version uint64
	Context string
	Arch    string

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
	Buildopts        *types.Buildopts
	RpmComponents    map[string]*types.ComponentRpm
	ModuleComponents map[string]*types.ComponentModule

	XMD xmd.Variant

	// v1 only: a single flat end-of-life date and unstructured
	// buildrequires/requires maps, both replaced by richer shapes in
	// v2 (upgrade synthesizes a ServiceLevels["rawhide"] entry and a
	// single Dependencies entry from these).
	EOL               *primitives.GDate
	FlatBuildRequires map[string]string
	FlatRequires      map[string]string

	// v2 only: one Dependencies entry per build context.
	DependenciesList []*types.Dependencies

	// v3 only: collapsed from DependenciesList[0], plus platform.
	BuildtimeDeps map[string]string
	RuntimeDeps   map[string]string
	Platform      string
}

// New returns a StreamData with every map/set field initialized, ready
// for a parser or setter-based builder to populate.
func New(mdVersion uint64) *StreamData {
	return &StreamData{
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

// DeepCopy returns an independent copy of the stream body.
func (s *StreamData) DeepCopy() *StreamData {
	if s == nil {
		return nil
	}
	cp := &StreamData{
		MDVersion:       s.MDVersion,
		Name:            s.Name,
		Stream:          s.Stream,
		Version:         s.Version,
		Context:         s.Context,
		Arch:            s.Arch,
		Summary:         s.Summary,
		Description:     s.Description,
		Community:       s.Community,
		Documentation:   s.Documentation,
		Tracker:         s.Tracker,
		ModuleLicenses:  s.ModuleLicenses.DeepCopy(),
		ContentLicenses: s.ContentLicenses.DeepCopy(),
		RpmAPI:          s.RpmAPI.DeepCopy(),
		RpmArtifacts:    s.RpmArtifacts.DeepCopy(),
		RpmFilters:      s.RpmFilters.DeepCopy(),
		Buildopts:       s.Buildopts.DeepCopy(),
		XMD:             s.XMD.DeepCopy(),
		Platform:        s.Platform,
	}

	cp.Profiles = make(map[string]*types.Profile, len(s.Profiles))
	for k, v := range s.Profiles {
		cp.Profiles[k] = v.DeepCopy()
	}
	cp.ServiceLevels = make(map[string]*types.ServiceLevel, len(s.ServiceLevels))
	for k, v := range s.ServiceLevels {
		cp.ServiceLevels[k] = v.DeepCopy()
	}
	cp.RpmComponents = make(map[string]*types.ComponentRpm, len(s.RpmComponents))
	for k, v := range s.RpmComponents {
		cp.RpmComponents[k] = v.DeepCopy()
	}
	cp.ModuleComponents = make(map[string]*types.ComponentModule, len(s.ModuleComponents))
	for k, v := range s.ModuleComponents {
		cp.ModuleComponents[k] = v.DeepCopy()
	}

	if s.EOL != nil {
		d := *s.EOL
		cp.EOL = &d
	}
	if s.FlatBuildRequires != nil {
		cp.FlatBuildRequires = make(map[string]string, len(s.FlatBuildRequires))
		for k, v := range s.FlatBuildRequires {
			cp.FlatBuildRequires[k] = v
		}
	}
	if s.FlatRequires != nil {
		cp.FlatRequires = make(map[string]string, len(s.FlatRequires))
		for k, v := range s.FlatRequires {
			cp.FlatRequires[k] = v
		}
	}
	for _, d := range s.DependenciesList {
		cp.DependenciesList = append(cp.DependenciesList, d.DeepCopy())
	}
	if s.BuildtimeDeps != nil {
		cp.BuildtimeDeps = make(map[string]string, len(s.BuildtimeDeps))
		for k, v := range s.BuildtimeDeps {
			cp.BuildtimeDeps[k] = v
		}
	}
	if s.RuntimeDeps != nil {
		cp.RuntimeDeps = make(map[string]string, len(s.RuntimeDeps))
		for k, v := range s.RuntimeDeps {
			cp.RuntimeDeps[k] = v
		}
	}
	return cp
}

// NSVCA formats the stream's canonical identifier.
func (s *StreamData) NSVCA() string {
	return nsvca.Format(s.Name, s.Stream, s.Version, s.Context, s.Arch)
}
