// Package defaults implements the Defaults document variant: one
// module's site-policy defaults (default stream, per-stream profile
// defaults, and named intents overriding both).
package defaults

import (
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
)

// Intent overrides the default stream and profile defaults for one
// named deployment intent (e.g. "server", "workstation").
type Intent struct {
	DefaultStream   string
	ProfileDefaults map[string]primitives.StringSet
}

// DeepCopy returns an independent copy.
func (i Intent) DeepCopy() Intent {
	cp := Intent{DefaultStream: i.DefaultStream, ProfileDefaults: make(map[string]primitives.StringSet, len(i.ProfileDefaults))}
	for k, v := range i.ProfileDefaults {
		cp.ProfileDefaults[k] = v.DeepCopy()
	}
	return cp
}

func intentEqual(a, b Intent) bool {
	if a.DefaultStream != b.DefaultStream || len(a.ProfileDefaults) != len(b.ProfileDefaults) {
		return false
	}
	for k, v := range a.ProfileDefaults {
		if bv, ok := b.ProfileDefaults[k]; !ok || !primitives.Equal(v, bv) {
			return false
		}
	}
	return true
}

// Defaults is one module's default-stream and profile-default policy.
type Defaults struct {
	ModuleName      string
	DefaultStream   string
	ProfileDefaults map[string]primitives.StringSet
	Intents         map[string]Intent
}

// New returns an empty Defaults for module.
func New(moduleName string) *Defaults {
	return &Defaults{
		ModuleName:      moduleName,
		ProfileDefaults: make(map[string]primitives.StringSet),
		Intents:         make(map[string]Intent),
	}
}

// DeepCopy returns an independent copy.
func (d *Defaults) DeepCopy() *Defaults {
	if d == nil {
		return nil
	}
	cp := &Defaults{
		ModuleName:      d.ModuleName,
		DefaultStream:   d.DefaultStream,
		ProfileDefaults: make(map[string]primitives.StringSet, len(d.ProfileDefaults)),
		Intents:         make(map[string]Intent, len(d.Intents)),
	}
	for k, v := range d.ProfileDefaults {
		cp.ProfileDefaults[k] = v.DeepCopy()
	}
	for k, v := range d.Intents {
		cp.Intents[k] = v.DeepCopy()
	}
	return cp
}

// Equal reports deep equality.
func Equal(a, b *Defaults) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ModuleName != b.ModuleName || a.DefaultStream != b.DefaultStream {
		return false
	}
	if len(a.ProfileDefaults) != len(b.ProfileDefaults) {
		return false
	}
	for k, v := range a.ProfileDefaults {
		if bv, ok := b.ProfileDefaults[k]; !ok || !primitives.Equal(v, bv) {
			return false
		}
	}
	if len(a.Intents) != len(b.Intents) {
		return false
	}
	for k, v := range a.Intents {
		bv, ok := b.Intents[k]
		if !ok || !intentEqual(v, bv) {
			return false
		}
	}
	return true
}
