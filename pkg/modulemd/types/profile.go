package types

import "github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"

// Profile names a set of RPMs installed together for one user-facing
// purpose (spec §3 Profile entity).
type Profile struct {
	Name        string
	Description string
	RPMs        primitives.StringSet
	Default     bool
}

// DeepCopy returns an independent copy.
func (p *Profile) DeepCopy() *Profile {
	if p == nil {
		return nil
	}
	return &Profile{
		Name:        p.Name,
		Description: p.Description,
		RPMs:        p.RPMs.DeepCopy(),
		Default:     p.Default,
	}
}

// ProfileEqual reports deep equality.
func ProfileEqual(a, b *Profile) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name == b.Name &&
		a.Description == b.Description &&
		primitives.Equal(a.RPMs, b.RPMs) &&
		a.Default == b.Default
}

// ServiceLevel names a support level and the date it ends. A v1
// stream's flat top-level `eol` scalar upgrades into a ServiceLevel
// named "rawhide" carrying that date (spec §F service-level mapping).
type ServiceLevel struct {
	Name string
	EOL  *primitives.GDate
}

// DeepCopy returns an independent copy.
func (s *ServiceLevel) DeepCopy() *ServiceLevel {
	if s == nil {
		return nil
	}
	out := &ServiceLevel{Name: s.Name}
	if s.EOL != nil {
		d := *s.EOL
		out.EOL = &d
	}
	return out
}

// ServiceLevelEqual reports deep equality.
func ServiceLevelEqual(a, b *ServiceLevel) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name {
		return false
	}
	if (a.EOL == nil) != (b.EOL == nil) {
		return false
	}
	if a.EOL != nil && !a.EOL.Equal(*b.EOL) {
		return false
	}
	return true
}

// Dependencies is one buildrequires/requires pairing. Module streams
// schema v1/v2 allow several of these per stream (one build context
// each); v3 collapses to exactly one (spec §D upgrade rules).
type Dependencies struct {
	BuildRequires map[string]primitives.StringSet
	Requires      map[string]primitives.StringSet
}

// DeepCopy returns an independent copy.
func (d *Dependencies) DeepCopy() *Dependencies {
	if d == nil {
		return nil
	}
	out := &Dependencies{
		BuildRequires: make(map[string]primitives.StringSet, len(d.BuildRequires)),
		Requires:      make(map[string]primitives.StringSet, len(d.Requires)),
	}
	for k, v := range d.BuildRequires {
		out.BuildRequires[k] = v.DeepCopy()
	}
	for k, v := range d.Requires {
		out.Requires[k] = v.DeepCopy()
	}
	return out
}

func stringSetMapEqual(a, b map[string]primitives.StringSet) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || !primitives.Equal(v, bv) {
			return false
		}
	}
	return true
}

// DependenciesEqual reports deep equality.
func DependenciesEqual(a, b *Dependencies) bool {
	if a == nil || b == nil {
		return a == b
	}
	return stringSetMapEqual(a.BuildRequires, b.BuildRequires) &&
		stringSetMapEqual(a.Requires, b.Requires)
}

// TranslationEntry holds one locale's localized summary, description,
// and per-profile descriptions for a translation document.
type TranslationEntry struct {
	Locale              string
	Summary             string
	Description         string
	ProfileDescriptions map[string]string
}

// DeepCopy returns an independent copy.
func (t *TranslationEntry) DeepCopy() *TranslationEntry {
	if t == nil {
		return nil
	}
	out := &TranslationEntry{
		Locale:              t.Locale,
		Summary:             t.Summary,
		Description:         t.Description,
		ProfileDescriptions: make(map[string]string, len(t.ProfileDescriptions)),
	}
	for k, v := range t.ProfileDescriptions {
		out.ProfileDescriptions[k] = v
	}
	return out
}

// TranslationEntryEqual reports deep equality.
func TranslationEntryEqual(a, b *TranslationEntry) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Locale != b.Locale || a.Summary != b.Summary || a.Description != b.Description {
		return false
	}
	if len(a.ProfileDescriptions) != len(b.ProfileDescriptions) {
		return false
	}
	for k, v := range a.ProfileDescriptions {
		if bv, ok := b.ProfileDescriptions[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
