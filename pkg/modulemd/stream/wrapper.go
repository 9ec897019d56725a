package stream

import (
	"path/filepath"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/internal"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/xmd"
)

// streamWrapper implements ModuleStream over the canonical StreamData.
type streamWrapper struct {
	d *internal.StreamData
}

func (s *streamWrapper) MDVersion() uint64 { return s.d.MDVersion }
func (s *streamWrapper) Name() string      { return s.d.Name }
func (s *streamWrapper) Stream() string    { return s.d.Stream }
func (s *streamWrapper) Version() uint64   { return s.d.Version }
func (s *streamWrapper) Context() string   { return s.d.Context }
func (s *streamWrapper) Arch() string      { return s.d.Arch }
func (s *streamWrapper) NSVCA() string     { return s.d.NSVCA() }

func (s *streamWrapper) Summary() string     { return s.d.Summary }
func (s *streamWrapper) Description() string { return s.d.Description }

func (s *streamWrapper) ModuleLicenses() primitives.StringSet  { return s.d.ModuleLicenses }
func (s *streamWrapper) ContentLicenses() primitives.StringSet { return s.d.ContentLicenses }

func (s *streamWrapper) RpmArtifacts() primitives.StringSet { return s.d.RpmArtifacts }

// IncludesNEVRA reports whether any artifact in rpm_artifacts matches
// the given NEVRA glob pattern.
func (s *streamWrapper) IncludesNEVRA(pattern string) bool {
	for _, artifact := range s.d.RpmArtifacts.Sorted() {
		if ok, err := filepath.Match(pattern, artifact); err == nil && ok {
			return true
		}
	}
	return false
}

func (s *streamWrapper) Profiles() map[string]*types.Profile             { return s.d.Profiles }
func (s *streamWrapper) ServiceLevels() map[string]*types.ServiceLevel   { return s.d.ServiceLevels }
func (s *streamWrapper) Buildopts() *types.Buildopts                     { return s.d.Buildopts }
func (s *streamWrapper) RpmComponents() map[string]*types.ComponentRpm   { return s.d.RpmComponents }
func (s *streamWrapper) ModuleComponents() map[string]*types.ComponentModule {
	return s.d.ModuleComponents
}

func (s *streamWrapper) XMD() xmd.Variant { return s.d.XMD }

func (s *streamWrapper) SetName(v string)    { s.d.Name = v }
func (s *streamWrapper) SetStream(v string)  { s.d.Stream = v }
func (s *streamWrapper) SetVersion(v uint64) { s.d.Version = v }
func (s *streamWrapper) SetContext(v string) { s.d.Context = v }
func (s *streamWrapper) SetArch(v string)    { s.d.Arch = v }

func (s *streamWrapper) DeepCopy() ModuleStream {
	return &streamWrapper{d: s.d.DeepCopy()}
}

func (s *streamWrapper) Internal() *internal.StreamData { return s.d }
