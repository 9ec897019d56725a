// Package module implements the Module and ModuleIndex aggregates: the
// in-memory collection that holds every stream, the site-wide
// Defaults, the per-stream Translations, and the Obsoletes records for
// one module name, plus the whole-index operations layered on top
// (spec §3 Module/ModuleIndex, §4.3 Module Index).
package module

import (
	"fmt"
	"sort"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/defaults"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/obsoletes"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/translation"
)

// StreamKey is the 4-tuple invariant 1 keys a stream by within one
// module: stream name, version, context, and arch.
type StreamKey struct {
	Stream  string
	Version uint64
	Context string
	Arch    string
}

func keyOf(s stream.ModuleStream) StreamKey {
	return StreamKey{Stream: s.Stream(), Version: s.Version(), Context: s.Context(), Arch: s.Arch()}
}

// Module holds every document belonging to one module name: its
// streams (owned), its site-wide Defaults (owned, optional), its
// per-stream Translations (owned, keyed by stream name), and its
// Obsoletes records (owned).
type Module struct {
	Name         string
	Streams      map[StreamKey]stream.ModuleStream
	Defaults     *defaults.Defaults
	Translations map[string]*translation.Translation
	Obsoletes    []*obsoletes.Obsoletes
}

// New returns an empty Module for name.
func New(name string) *Module {
	return &Module{
		Name:         name,
		Streams:      make(map[StreamKey]stream.ModuleStream),
		Translations: make(map[string]*translation.Translation),
	}
}

// AddStream inserts s, keyed by its (stream, version, context, arch)
// tuple. An existing entry with equal content is replaced in place
// (harmless no-op); unequal content at the same key is an error
// (invariant 1/10) — reconciling conflicting streams is the merger's
// job, not a plain insert's.
func (m *Module) AddStream(s stream.ModuleStream) *modulemderrors.Error {
	k := keyOf(s)
	if existing, ok := m.Streams[k]; ok && !stream.Equal(existing, s) {
		return modulemderrors.New(modulemderrors.Validate,
			fmt.Sprintf("conflicting module stream %q already present with different content", s.NSVCA())).
			WithDetail("nsvca", s.NSVCA())
	}
	m.Streams[k] = s
	return nil
}

// RemoveStream deletes the stream at k if present, reporting whether
// anything was removed.
func (m *Module) RemoveStream(k StreamKey) bool {
	if _, ok := m.Streams[k]; !ok {
		return false
	}
	delete(m.Streams, k)
	return true
}

// SortedStreams returns every stream in NSVCA order, the order emit
// uses for a module's streams (spec §5 ordering guarantees).
func (m *Module) SortedStreams() []stream.ModuleStream {
	out := make([]stream.ModuleStream, 0, len(m.Streams))
	for _, s := range m.Streams {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NSVCA() < out[j].NSVCA() })
	return out
}

// AddDefaults attaches d to the module. A Defaults whose ModuleName
// disagrees with m.Name is rejected rather than silently dropped (spec
// §9 open question, resolved in favor of the stricter behavior: a
// library should surface bad input to its caller, not swallow it).
func (m *Module) AddDefaults(d *defaults.Defaults) *modulemderrors.Error {
	if d.ModuleName != "" && d.ModuleName != m.Name {
		return modulemderrors.ValidationError(
			"defaults module name does not match the module it is being attached to",
			map[string]interface{}{"defaults_module": d.ModuleName, "module": m.Name})
	}
	m.Defaults = d
	return nil
}

// AddTranslation associates t with the stream name it decorates,
// last-modified-wins (spec §4.3 add_translation). Lookups for that
// stream name are served from here on demand rather than through a
// weak back-reference from the stream itself (spec §9 design note).
func (m *Module) AddTranslation(t *translation.Translation) *modulemderrors.Error {
	if t.ModuleName != "" && t.ModuleName != m.Name {
		return modulemderrors.ValidationError(
			"translation module name does not match the module it is being attached to",
			map[string]interface{}{"translation_module": t.ModuleName, "module": m.Name})
	}
	if existing, ok := m.Translations[t.ModuleStream]; ok && existing.Modified >= t.Modified {
		return nil
	}
	m.Translations[t.ModuleStream] = t
	return nil
}

// AddObsoletes appends o to the module's obsoletes records.
func (m *Module) AddObsoletes(o *obsoletes.Obsoletes) {
	m.Obsoletes = append(m.Obsoletes, o)
}

// Translation returns the current translation for streamName, or nil
// if none has been associated.
func (m *Module) Translation(streamName string) *translation.Translation {
	return m.Translations[streamName]
}

// LocalizedSummary returns s's summary, localized to locale via this
// module's translation for s's stream name if one exists, falling back
// to s's own (untranslated) summary otherwise.
func (m *Module) LocalizedSummary(s stream.ModuleStream, locale string) string {
	return m.Translation(s.Stream()).LocalizedSummary(locale, s.Summary())
}

// LocalizedDescription is the description analogue of LocalizedSummary.
func (m *Module) LocalizedDescription(s stream.ModuleStream, locale string) string {
	return m.Translation(s.Stream()).LocalizedDescription(locale, s.Description())
}

// LocalizedProfileDescription returns profile's description on s,
// localized to locale if this module carries a translation entry for
// it, else profile's own description.
func (m *Module) LocalizedProfileDescription(s stream.ModuleStream, profile, locale string) string {
	fallback := ""
	if p, ok := s.Profiles()[profile]; ok {
		fallback = p.Description
	}
	return m.Translation(s.Stream()).LocalizedProfileDescription(locale, profile, fallback)
}

// DeepCopy returns an independent copy of the module and everything it owns.
func (m *Module) DeepCopy() *Module {
	if m == nil {
		return nil
	}
	cp := New(m.Name)
	for k, s := range m.Streams {
		cp.Streams[k] = s.DeepCopy()
	}
	cp.Defaults = m.Defaults.DeepCopy()
	for k, t := range m.Translations {
		cp.Translations[k] = t.DeepCopy()
	}
	for _, o := range m.Obsoletes {
		cp.Obsoletes = append(cp.Obsoletes, o.DeepCopy())
	}
	return cp
}

// MaxStreamMDVersion returns the highest mdversion among the module's
// streams, or 0 if it holds none.
func (m *Module) MaxStreamMDVersion() uint64 {
	var max uint64
	for _, s := range m.Streams {
		if s.MDVersion() > max {
			max = s.MDVersion()
		}
	}
	return max
}
