// Package obsoletes implements the Obsoletes document variant: a
// deprecation record pointing users away from one stream, optionally
// toward a replacement (spec §3 Obsoletes entity).
package obsoletes

import "github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"

// ObsoletedBy names the module/stream users should move to instead.
type ObsoletedBy struct {
	ModuleName   string
	ModuleStream string
}

// Obsoletes is one deprecation record for a module stream.
type Obsoletes struct {
	Modified     uint64
	ModuleName   string
	ModuleStream string
	Message      string
	EOLDate      *primitives.GDate
	ObsoletedBy  *ObsoletedBy
	Reset        bool
}

// New returns an empty Obsoletes for the given module/stream.
func New(moduleName, moduleStream string) *Obsoletes {
	return &Obsoletes{ModuleName: moduleName, ModuleStream: moduleStream}
}

// DeepCopy returns an independent copy.
func (o *Obsoletes) DeepCopy() *Obsoletes {
	if o == nil {
		return nil
	}
	cp := &Obsoletes{
		Modified:     o.Modified,
		ModuleName:   o.ModuleName,
		ModuleStream: o.ModuleStream,
		Message:      o.Message,
		Reset:        o.Reset,
	}
	if o.EOLDate != nil {
		d := *o.EOLDate
		cp.EOLDate = &d
	}
	if o.ObsoletedBy != nil {
		ob := *o.ObsoletedBy
		cp.ObsoletedBy = &ob
	}
	return cp
}

// Equal reports deep equality.
func Equal(a, b *Obsoletes) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Modified != b.Modified || a.ModuleName != b.ModuleName || a.ModuleStream != b.ModuleStream ||
		a.Message != b.Message || a.Reset != b.Reset {
		return false
	}
	if (a.EOLDate == nil) != (b.EOLDate == nil) {
		return false
	}
	if a.EOLDate != nil && !a.EOLDate.Equal(*b.EOLDate) {
		return false
	}
	if (a.ObsoletedBy == nil) != (b.ObsoletedBy == nil) {
		return false
	}
	if a.ObsoletedBy != nil && *a.ObsoletedBy != *b.ObsoletedBy {
		return false
	}
	return true
}
