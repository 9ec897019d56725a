// Package types holds the leaf entities shared across module stream
// schema versions: pure data carriers with getters, setters, equality,
// and deep-copy, modeled the way the teacher's internal representation
// structs are (plain exported fields, no version-specific wire shape of
// their own).
package types

import "github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"

// Buildopts carries build-time options shared by a whole stream.
type Buildopts struct {
	RPMMacros    string
	RPMWhitelist primitives.StringSet
	Arches       primitives.StringSet
}

// DeepCopy returns an independent copy.
func (b *Buildopts) DeepCopy() *Buildopts {
	if b == nil {
		return nil
	}
	return &Buildopts{
		RPMMacros:    b.RPMMacros,
		RPMWhitelist: b.RPMWhitelist.DeepCopy(),
		Arches:       b.Arches.DeepCopy(),
	}
}

// BuildoptsEqual reports deep equality, treating nil and empty-and-unset the same.
func BuildoptsEqual(a, b *Buildopts) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.RPMMacros == b.RPMMacros &&
		primitives.Equal(a.RPMWhitelist, b.RPMWhitelist) &&
		primitives.Equal(a.Arches, b.Arches)
}
