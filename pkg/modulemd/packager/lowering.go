package packager

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/defaults"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/internal"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// Lowered bundles the stream a Packager lowers to with the Defaults
// document synthesized from any profile marked default (spec §4.2:
// "In either target, profiles marked default in Packager additionally
// synthesize a Defaults document").
type Lowered struct {
	Stream   stream.ModuleStream
	Defaults *defaults.Defaults
}

func commonData(p *Packager, mdVersion uint64) *internal.StreamData {
	d := internal.New(mdVersion)
	d.Name = p.Name
	d.Stream = p.Stream
	d.Summary = p.Summary
	d.Description = p.Description
	d.Community = p.Community
	d.Documentation = p.Documentation
	d.Tracker = p.Tracker
	d.ModuleLicenses = p.ModuleLicenses.DeepCopy()
	d.ContentLicenses = p.ContentLicenses.DeepCopy()
	d.RpmAPI = p.RpmAPI.DeepCopy()
	d.RpmArtifacts = p.RpmArtifacts.DeepCopy()
	d.RpmFilters = p.RpmFilters.DeepCopy()
	for k, v := range p.Profiles {
		d.Profiles[k] = v.DeepCopy()
	}
	for k, v := range p.ServiceLevels {
		d.ServiceLevels[k] = v.DeepCopy()
	}
	for k, v := range p.RpmComponents {
		d.RpmComponents[k] = v.DeepCopy()
	}
	for k, v := range p.ModuleComponents {
		d.ModuleComponents[k] = v.DeepCopy()
	}
	d.XMD = p.XMD.DeepCopy()
	return d
}

func synthesizeDefaults(p *Packager) *defaults.Defaults {
	var defaultProfiles primitives.StringSet
	for name, prof := range p.Profiles {
		if prof.Default {
			if defaultProfiles.Len() == 0 {
				defaultProfiles = primitives.NewStringSet()
			}
			defaultProfiles.Add(name)
		}
	}
	if defaultProfiles.Len() == 0 {
		return nil
	}
	d := defaults.New(p.Name)
	d.ProfileDefaults[p.Stream] = defaultProfiles
	return d
}

// ToStreamV2 lowers a Packager to a single v2 ModuleStream whose
// dependencies list has one Dependencies entry per BuildConfig. Only
// the first BuildConfig's buildopts, if any, are applied to the
// resulting stream; a warning is logged when later configurations also
// carried buildopts that are therefore discarded.
func ToStreamV2(p *Packager) (*Lowered, *modulemderrors.Error) {
	d := commonData(p, 2)
	for _, cfg := range p.Configurations {
		d.DependenciesList = append(d.DependenciesList, dependenciesFromConfig(cfg))
	}
	for i, cfg := range p.Configurations {
		if i == 0 {
			d.Buildopts = cfg.Buildopts.DeepCopy()
			continue
		}
		if cfg.Buildopts != nil {
			yamlio.Warnf("packager %s:%s: discarding buildopts from non-first build configuration %d during stream v2 lowering",
				p.Name, p.Stream, i)
		}
	}
	return &Lowered{Stream: stream.New(d), Defaults: synthesizeDefaults(p)}, nil
}

// ToStreamV3 lowers a Packager to a single v3 ModuleStream, failing if
// more than one BuildConfig is present (v3 has no disjunctive
// dependency shape to hold more than one).
func ToStreamV3(p *Packager) (*Lowered, *modulemderrors.Error) {
	if len(p.Configurations) > 1 {
		return nil, modulemderrors.New(modulemderrors.Upgrade,
			"cannot lower packager to stream v3: more than one build configuration").
			WithDetail("count", len(p.Configurations))
	}
	d := commonData(p, 3)
	if len(p.Configurations) == 1 {
		cfg := p.Configurations[0]
		d.Platform = cfg.Platform
		d.BuildtimeDeps = copyStringMap(cfg.BuildRequires)
		d.RuntimeDeps = copyStringMap(cfg.Requires)
		d.Buildopts = cfg.Buildopts.DeepCopy()
	}
	return &Lowered{Stream: stream.New(d), Defaults: synthesizeDefaults(p)}, nil
}

func dependenciesFromConfig(cfg *BuildConfig) *types.Dependencies {
	dep := &types.Dependencies{
		BuildRequires: make(map[string]primitives.StringSet, len(cfg.BuildRequires)),
		Requires:      make(map[string]primitives.StringSet, len(cfg.Requires)),
	}
	for module, streamName := range cfg.BuildRequires {
		dep.BuildRequires[module] = primitives.NewStringSet(streamName)
	}
	for module, streamName := range cfg.Requires {
		dep.Requires[module] = primitives.NewStringSet(streamName)
	}
	if cfg.Platform != "" {
		dep.BuildRequires["platform"] = primitives.NewStringSet(cfg.Platform)
		dep.Requires["platform"] = primitives.NewStringSet(cfg.Platform)
	}
	return dep
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
