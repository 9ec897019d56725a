// Package stream implements the ModuleStream document variant: the
// per-stream metadata body shared (with version-specific shape) by
// schema v1, v2 and v3, plus the NSVCA identity and component-order
// validation every version needs.
package stream

import (
	"fmt"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/internal"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/xmd"
)

// ModuleStream is the public, version-agnostic view of a parsed module
// stream. Every mdversion implements this same capability surface;
// version-specific fields (flat deps, dependency lists, platform) are
// reached through Internal() by code that needs them, the same way the
// teacher's wrapper types expose Internal() for engine-level use.
type ModuleStream interface {
	MDVersion() uint64
	Name() string
	Stream() string
	Version() uint64
	Context() string
	Arch() string
	NSVCA() string

	Summary() string
	Description() string

	ModuleLicenses() primitives.StringSet
	ContentLicenses() primitives.StringSet

	RpmArtifacts() primitives.StringSet
	IncludesNEVRA(pattern string) bool

	Profiles() map[string]*types.Profile
	ServiceLevels() map[string]*types.ServiceLevel
	Buildopts() *types.Buildopts
	RpmComponents() map[string]*types.ComponentRpm
	ModuleComponents() map[string]*types.ComponentModule

	XMD() xmd.Variant

	SetName(string)
	SetStream(string)
	SetVersion(uint64)
	SetContext(string)
	SetArch(string)

	DeepCopy() ModuleStream
	Internal() *internal.StreamData
}

// New wraps a freshly constructed StreamData body.
func New(data *internal.StreamData) ModuleStream {
	return &streamWrapper{d: data}
}

// Equal reports deep equality between two streams, comparing every
// field including ones not part of the public interface's getters
// (used by the equality property tests and by merge conflict checks).
func Equal(a, b ModuleStream) bool {
	if a == nil || b == nil {
		return a == b
	}
	ad, bd := a.Internal(), b.Internal()
	if ad.MDVersion != bd.MDVersion ||
		ad.Name != bd.Name || ad.Stream != bd.Stream ||
		ad.Version != bd.Version || ad.Context != bd.Context || ad.Arch != bd.Arch ||
		ad.Summary != bd.Summary || ad.Description != bd.Description ||
		ad.Community != bd.Community || ad.Documentation != bd.Documentation || ad.Tracker != bd.Tracker {
		return false
	}
	if !primitives.Equal(ad.ModuleLicenses, bd.ModuleLicenses) ||
		!primitives.Equal(ad.ContentLicenses, bd.ContentLicenses) ||
		!primitives.Equal(ad.RpmAPI, bd.RpmAPI) ||
		!primitives.Equal(ad.RpmArtifacts, bd.RpmArtifacts) ||
		!primitives.Equal(ad.RpmFilters, bd.RpmFilters) {
		return false
	}
	if !xmd.Equal(ad.XMD, bd.XMD) {
		return false
	}
	if len(ad.Profiles) != len(bd.Profiles) {
		return false
	}
	for k, v := range ad.Profiles {
		if !types.ProfileEqual(v, bd.Profiles[k]) {
			return false
		}
	}
	if len(ad.ServiceLevels) != len(bd.ServiceLevels) {
		return false
	}
	for k, v := range ad.ServiceLevels {
		if !types.ServiceLevelEqual(v, bd.ServiceLevels[k]) {
			return false
		}
	}
	if len(ad.RpmComponents) != len(bd.RpmComponents) {
		return false
	}
	for k, v := range ad.RpmComponents {
		if !types.ComponentRpmEqual(v, bd.RpmComponents[k]) {
			return false
		}
	}
	if len(ad.ModuleComponents) != len(bd.ModuleComponents) {
		return false
	}
	for k, v := range ad.ModuleComponents {
		if !types.ComponentModuleEqual(v, bd.ModuleComponents[k]) {
			return false
		}
	}
	if !types.BuildoptsEqual(ad.Buildopts, bd.Buildopts) {
		return false
	}
	if ad.Platform != bd.Platform ||
		(ad.EOL == nil) != (bd.EOL == nil) || (ad.EOL != nil && !ad.EOL.Equal(*bd.EOL)) ||
		fmt.Sprint(ad.FlatBuildRequires, ad.FlatRequires, ad.BuildtimeDeps, ad.RuntimeDeps) !=
			fmt.Sprint(bd.FlatBuildRequires, bd.FlatRequires, bd.BuildtimeDeps, bd.RuntimeDeps) ||
		len(ad.DependenciesList) != len(bd.DependenciesList) {
		return false
	}
	for i, dep := range ad.DependenciesList {
		if !types.DependenciesEqual(dep, bd.DependenciesList[i]) {
			return false
		}
	}
	return true
}
