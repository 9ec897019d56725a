// Package translation implements the Translation document variant:
// locale-specific overrides of a stream's summary, description, and
// profile descriptions (spec §3 Translation/TranslationEntry, §4.2).
package translation

import (
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
)

// Translation holds every locale's override for one module stream.
type Translation struct {
	ModuleName   string
	ModuleStream string
	Modified     uint64
	Entries      map[string]*types.TranslationEntry
}

// New returns an empty Translation for the given module/stream.
func New(moduleName, moduleStream string) *Translation {
	return &Translation{
		ModuleName:   moduleName,
		ModuleStream: moduleStream,
		Entries:      make(map[string]*types.TranslationEntry),
	}
}

// DeepCopy returns an independent copy.
func (t *Translation) DeepCopy() *Translation {
	if t == nil {
		return nil
	}
	cp := &Translation{
		ModuleName:   t.ModuleName,
		ModuleStream: t.ModuleStream,
		Modified:     t.Modified,
		Entries:      make(map[string]*types.TranslationEntry, len(t.Entries)),
	}
	for k, v := range t.Entries {
		cp.Entries[k] = v.DeepCopy()
	}
	return cp
}

// Equal reports deep equality.
func Equal(a, b *Translation) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ModuleName != b.ModuleName || a.ModuleStream != b.ModuleStream || a.Modified != b.Modified {
		return false
	}
	if len(a.Entries) != len(b.Entries) {
		return false
	}
	for k, v := range a.Entries {
		bv, ok := b.Entries[k]
		if !ok || !types.TranslationEntryEqual(v, bv) {
			return false
		}
	}
	return true
}

// LocalizedSummary returns locale's summary override, or fallback if no
// entry exists for locale or the entry carries no summary override.
func (t *Translation) LocalizedSummary(locale, fallback string) string {
	if t == nil {
		return fallback
	}
	if e, ok := t.Entries[locale]; ok && e.Summary != "" {
		return e.Summary
	}
	return fallback
}

// LocalizedDescription returns locale's description override, or
// fallback if none exists.
func (t *Translation) LocalizedDescription(locale, fallback string) string {
	if t == nil {
		return fallback
	}
	if e, ok := t.Entries[locale]; ok && e.Description != "" {
		return e.Description
	}
	return fallback
}

// LocalizedProfileDescription returns locale's description for the
// named profile, or fallback if none exists.
func (t *Translation) LocalizedProfileDescription(locale, profile, fallback string) string {
	if t == nil {
		return fallback
	}
	e, ok := t.Entries[locale]
	if !ok {
		return fallback
	}
	if desc, ok := e.ProfileDescriptions[profile]; ok && desc != "" {
		return desc
	}
	return fallback
}
