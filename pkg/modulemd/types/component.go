package types

import "github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"

// Component is the set of fields shared by every build component kind,
// embedded by ComponentRpm and ComponentModule (spec invariant 3/4:
// buildorder and buildafter are mutually exclusive, enforced by the
// owning stream via pkg/buildorder, not by Component itself).
type Component struct {
	Name       string
	Rationale  string
	HasOrder   bool
	Order      int64
	BuildAfter primitives.StringSet
	BuildOnly  bool
}

// DeepCopy returns an independent copy of the shared fields.
func (c Component) DeepCopy() Component {
	return Component{
		Name:       c.Name,
		Rationale:  c.Rationale,
		HasOrder:   c.HasOrder,
		Order:      c.Order,
		BuildAfter: c.BuildAfter.DeepCopy(),
		BuildOnly:  c.BuildOnly,
	}
}

func componentEqual(a, b Component) bool {
	return a.Name == b.Name &&
		a.Rationale == b.Rationale &&
		a.HasOrder == b.HasOrder &&
		a.Order == b.Order &&
		primitives.Equal(a.BuildAfter, b.BuildAfter) &&
		a.BuildOnly == b.BuildOnly
}

// ComponentRpm describes one SRPM-backed build component.
type ComponentRpm struct {
	Component
	Ref        string
	Repository string
	Cache      string
	Arches     primitives.StringSet
	Multilib   primitives.StringSet
}

// DeepCopy returns an independent copy.
func (c *ComponentRpm) DeepCopy() *ComponentRpm {
	if c == nil {
		return nil
	}
	return &ComponentRpm{
		Component:  c.Component.DeepCopy(),
		Ref:        c.Ref,
		Repository: c.Repository,
		Cache:      c.Cache,
		Arches:     c.Arches.DeepCopy(),
		Multilib:   c.Multilib.DeepCopy(),
	}
}

// ComponentRpmEqual reports deep equality.
func ComponentRpmEqual(a, b *ComponentRpm) bool {
	if a == nil || b == nil {
		return a == b
	}
	return componentEqual(a.Component, b.Component) &&
		a.Ref == b.Ref &&
		a.Repository == b.Repository &&
		a.Cache == b.Cache &&
		primitives.Equal(a.Arches, b.Arches) &&
		primitives.Equal(a.Multilib, b.Multilib)
}

// ComponentModule describes one nested-module build component.
type ComponentModule struct {
	Component
	Ref        string
	Repository string
}

// DeepCopy returns an independent copy.
func (c *ComponentModule) DeepCopy() *ComponentModule {
	if c == nil {
		return nil
	}
	return &ComponentModule{
		Component:  c.Component.DeepCopy(),
		Ref:        c.Ref,
		Repository: c.Repository,
	}
}

// ComponentModuleEqual reports deep equality.
func ComponentModuleEqual(a, b *ComponentModule) bool {
	if a == nil || b == nil {
		return a == b
	}
	return componentEqual(a.Component, b.Component) &&
		a.Ref == b.Ref &&
		a.Repository == b.Repository
}
