package upgrade

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/internal"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
)

var streamSteps = map[uint64]stepFunc[*internal.StreamData]{
	1: streamV1ToV2,
	2: streamV2ToV3,
}

// Stream upgrades s to target, applying v1->v2 then v2->v3 as needed.
// It never mutates s: the chain runs over a deep copy, matching the
// engine's copy-then-replace-on-success contract.
func Stream(s stream.ModuleStream, target uint64) (stream.ModuleStream, *modulemderrors.Error) {
	if target > stream.LatestMDVersion {
		return nil, modulemderrors.New(modulemderrors.Upgrade,
			"cannot upgrade module stream: unknown target version").WithDetail("target", target)
	}
	data := s.Internal().DeepCopy()
	result, err := chain("module stream", data, func(d *internal.StreamData) uint64 { return d.MDVersion }, streamSteps, target)
	if err != nil {
		return nil, err
	}
	return stream.New(result), nil
}

// streamV1ToV2 synthesizes a "rawhide" ServiceLevel from the flat eol
// scalar and collapses the flat buildrequires/requires maps into a
// single Dependencies entry (spec §4.2 ModuleStream v1 -> v2 upgrade).
func streamV1ToV2(d *internal.StreamData) (*internal.StreamData, *modulemderrors.Error) {
	if d.EOL != nil {
		eol := *d.EOL
		if d.ServiceLevels == nil {
			d.ServiceLevels = make(map[string]*types.ServiceLevel)
		}
		d.ServiceLevels["rawhide"] = &types.ServiceLevel{Name: "rawhide", EOL: &eol}
		d.EOL = nil
	}

	if len(d.FlatBuildRequires) > 0 || len(d.FlatRequires) > 0 {
		dep := &types.Dependencies{
			BuildRequires: make(map[string]primitives.StringSet, len(d.FlatBuildRequires)),
			Requires:      make(map[string]primitives.StringSet, len(d.FlatRequires)),
		}
		for module, streamName := range d.FlatBuildRequires {
			dep.BuildRequires[module] = primitives.NewStringSet(streamName)
		}
		for module, streamName := range d.FlatRequires {
			dep.Requires[module] = primitives.NewStringSet(streamName)
		}
		d.DependenciesList = []*types.Dependencies{dep}
	}
	d.FlatBuildRequires = nil
	d.FlatRequires = nil
	d.MDVersion = 2
	return d, nil
}

// streamV2ToV3 flattens v2's dependency list into v3's single
// buildtime_deps/runtime_deps maps plus a platform field, failing when
// more than one Dependencies entry exists (v3 has no room for a
// disjunctive dependency set; spec §4.2 ModuleStream v2 -> v3 upgrade).
func streamV2ToV3(d *internal.StreamData) (*internal.StreamData, *modulemderrors.Error) {
	if len(d.DependenciesList) > 1 {
		return nil, modulemderrors.New(modulemderrors.Upgrade,
			"cannot upgrade module stream to v3: more than one dependencies entry").
			WithDetail("count", len(d.DependenciesList))
	}
	if len(d.DependenciesList) == 1 {
		dep := d.DependenciesList[0]
		buildtime := make(map[string]string, len(dep.BuildRequires))
		runtime := make(map[string]string, len(dep.Requires))
		var platform string

		for module, streams := range dep.BuildRequires {
			v, err := singleStream(module, streams)
			if err != nil {
				return nil, err
			}
			if module == "platform" {
				platform = v
				continue
			}
			buildtime[module] = v
		}
		for module, streams := range dep.Requires {
			v, err := singleStream(module, streams)
			if err != nil {
				return nil, err
			}
			if module == "platform" {
				platform = v
				continue
			}
			runtime[module] = v
		}

		d.BuildtimeDeps = buildtime
		d.RuntimeDeps = runtime
		d.Platform = platform
		d.DependenciesList = nil
	}
	d.MDVersion = 3
	return d, nil
}

func singleStream(module string, streams primitives.StringSet) (string, *modulemderrors.Error) {
	if streams.Len() != 1 {
		return "", modulemderrors.New(modulemderrors.Upgrade,
			"cannot upgrade module stream to v3: dependency module does not have exactly one stream").
			WithDetail("module", module).WithDetail("count", streams.Len())
	}
	return streams.Sorted()[0], nil
}
