// Package shared holds the stream body field parsers/emitters common
// to every schema version (profiles, service levels, buildopts,
// components, licenses, the rpm sets, xmd) so v1/v2/v3 only implement
// the handful of fields that actually differ between them
// (dependencies, platform).
package shared

import (
	"fmt"

	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/xmd"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// ParseProfiles reads a `profiles: map<name, Profile>` field.
func ParseProfiles(c *yamlio.Cursor) (map[string]*types.Profile, *modulemderrors.Error) {
	out := make(map[string]*types.Profile)
	if c == nil || c.IsAbsent() {
		return out, nil
	}
	mc, err := c.AsMapping()
	if err != nil {
		return nil, err
	}
	for _, name := range mc.Keys() {
		fc, _ := mc.Field(name)
		pmc, err := fc.AsMapping()
		if err != nil {
			return nil, err
		}
		profile := &types.Profile{Name: name, RPMs: primitives.NewStringSet()}
		if desc, ok := pmc.Field("description"); ok {
			v, err := desc.String()
			if err != nil {
				return nil, err
			}
			profile.Description = v
		}
		if rpms, ok := pmc.Field("rpms"); ok {
			v, err := rpms.StringSet()
			if err != nil {
				return nil, err
			}
			profile.RPMs = v
		}
		out[name] = profile
	}
	return out, nil
}

// ParseServiceLevels reads a `servicelevels: map<name, ServiceLevel>` field.
func ParseServiceLevels(c *yamlio.Cursor) (map[string]*types.ServiceLevel, *modulemderrors.Error) {
	out := make(map[string]*types.ServiceLevel)
	if c == nil || c.IsAbsent() {
		return out, nil
	}
	mc, err := c.AsMapping()
	if err != nil {
		return nil, err
	}
	for _, name := range mc.Keys() {
		fc, _ := mc.Field(name)
		smc, err := fc.AsMapping()
		if err != nil {
			return nil, err
		}
		sl := &types.ServiceLevel{Name: name}
		if eol, ok := smc.Field("eol"); ok {
			d, derr := eol.Date()
			if derr != nil {
				return nil, derr
			}
			sl.EOL = &d
		}
		out[name] = sl
	}
	return out, nil
}

// ParseBuildopts reads an optional `buildopts:` field.
func ParseBuildopts(c *yamlio.Cursor) (*types.Buildopts, *modulemderrors.Error) {
	if c == nil || c.IsAbsent() {
		return nil, nil
	}
	mc, err := c.AsMapping()
	if err != nil {
		return nil, err
	}
	b := &types.Buildopts{Arches: primitives.NewStringSet(), RPMWhitelist: primitives.NewStringSet()}
	if rpm, ok := mc.Field("rpms"); ok {
		rmc, err := rpm.AsMapping()
		if err != nil {
			return nil, err
		}
		if macros, ok := rmc.Field("macros"); ok {
			v, err := macros.String()
			if err != nil {
				return nil, err
			}
			b.RPMMacros = v
		}
		if wl, ok := rmc.Field("whitelist"); ok {
			v, err := wl.StringSet()
			if err != nil {
				return nil, err
			}
			b.RPMWhitelist = v
		}
	}
	if arches, ok := mc.Field("arches"); ok {
		v, err := arches.StringSet()
		if err != nil {
			return nil, err
		}
		b.Arches = v
	}
	return b, nil
}

func parseComponentCommon(mc *yamlio.MappingCursor) (types.Component, *modulemderrors.Error) {
	c := types.Component{BuildAfter: primitives.NewStringSet()}
	if r, ok := mc.Field("rationale"); ok {
		v, err := r.String()
		if err != nil {
			return c, err
		}
		c.Rationale = v
	}
	if bo, ok := mc.Field("buildorder"); ok {
		v, err := bo.Int64()
		if err != nil {
			return c, err
		}
		c.HasOrder = true
		c.Order = v
	}
	if ba, ok := mc.Field("buildafter"); ok {
		v, err := ba.StringSet()
		if err != nil {
			return c, err
		}
		c.BuildAfter = v
	}
	if bonly, ok := mc.Field("buildonly"); ok {
		v, err := bonly.Bool()
		if err != nil {
			return c, err
		}
		c.BuildOnly = v
	}
	return c, nil
}

// ParseRpmComponents reads a `rpm_components: map<name, ComponentRpm>` field.
func ParseRpmComponents(c *yamlio.Cursor) (map[string]*types.ComponentRpm, *modulemderrors.Error) {
	out := make(map[string]*types.ComponentRpm)
	if c == nil || c.IsAbsent() {
		return out, nil
	}
	mc, err := c.AsMapping()
	if err != nil {
		return nil, err
	}
	for _, name := range mc.Keys() {
		fc, _ := mc.Field(name)
		cmc, err := fc.AsMapping()
		if err != nil {
			return nil, err
		}
		common, err := parseComponentCommon(cmc)
		if err != nil {
			return nil, err
		}
		common.Name = name
		c := ComponentRpmFrom(common)
		comp := &c
		if ref, ok := cmc.Field("ref"); ok {
			v, err := ref.String()
			if err != nil {
				return nil, err
			}
			comp.Ref = v
		}
		if repo, ok := cmc.Field("repository"); ok {
			v, err := repo.String()
			if err != nil {
				return nil, err
			}
			comp.Repository = v
		}
		if cache, ok := cmc.Field("cache"); ok {
			v, err := cache.String()
			if err != nil {
				return nil, err
			}
			comp.Cache = v
		}
		if arches, ok := cmc.Field("arches"); ok {
			v, err := arches.StringSet()
			if err != nil {
				return nil, err
			}
			comp.Arches = v
		} else {
			comp.Arches = primitives.NewStringSet()
		}
		if multilib, ok := cmc.Field("multilib"); ok {
			v, err := multilib.StringSet()
			if err != nil {
				return nil, err
			}
			comp.Multilib = v
		} else {
			comp.Multilib = primitives.NewStringSet()
		}
		out[name] = comp
	}
	return out, nil
}

// ComponentRpmFrom builds a *ComponentRpm from the shared fields. It is
// exported so v1/v2/v3 can share the common-field parse helper above.
func ComponentRpmFrom(common types.Component) types.ComponentRpm {
	return types.ComponentRpm{Component: common}
}

// ParseModuleComponents reads a `module_components: map<name, ComponentModule>` field.
func ParseModuleComponents(c *yamlio.Cursor) (map[string]*types.ComponentModule, *modulemderrors.Error) {
	out := make(map[string]*types.ComponentModule)
	if c == nil || c.IsAbsent() {
		return out, nil
	}
	mc, err := c.AsMapping()
	if err != nil {
		return nil, err
	}
	for _, name := range mc.Keys() {
		fc, _ := mc.Field(name)
		cmc, err := fc.AsMapping()
		if err != nil {
			return nil, err
		}
		common, err := parseComponentCommon(cmc)
		if err != nil {
			return nil, err
		}
		common.Name = name
		comp := &types.ComponentModule{Component: common}
		if ref, ok := cmc.Field("ref"); ok {
			v, err := ref.String()
			if err != nil {
				return nil, err
			}
			comp.Ref = v
		}
		if repo, ok := cmc.Field("repository"); ok {
			v, err := repo.String()
			if err != nil {
				return nil, err
			}
			comp.Repository = v
		}
		out[name] = comp
	}
	return out, nil
}

// EmitProfiles renders a profiles map in a stable, sorted-by-name order.
func EmitProfiles(profiles map[string]*types.Profile) *yaml.Node {
	if len(profiles) == 0 {
		return nil
	}
	names := sortedNames(profiles)
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		p := profiles[name]
		body := &yaml.Node{Kind: yaml.MappingNode}
		if p.Description != "" {
			body.Content = append(body.Content, key("description"), yamlio.QuoteScalar(p.Description))
		}
		body.Content = append(body.Content, key("rpms"), yamlio.WriteStringSet(p.RPMs))
		n.Content = append(n.Content, key(name), body)
	}
	return n
}

// EmitServiceLevels renders a servicelevels map sorted by name.
func EmitServiceLevels(levels map[string]*types.ServiceLevel) *yaml.Node {
	if len(levels) == 0 {
		return nil
	}
	names := make([]string, 0, len(levels))
	for k := range levels {
		names = append(names, k)
	}
	sortStrings(names)
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		sl := levels[name]
		body := &yaml.Node{Kind: yaml.MappingNode}
		if sl.EOL != nil {
			body.Content = append(body.Content, key("eol"), yamlio.QuoteScalar(sl.EOL.String()))
		}
		n.Content = append(n.Content, key(name), body)
	}
	return n
}

// EmitBuildopts renders an optional buildopts field.
func EmitBuildopts(b *types.Buildopts) *yaml.Node {
	if b == nil {
		return nil
	}
	n := &yaml.Node{Kind: yaml.MappingNode}
	if b.RPMMacros != "" || b.RPMWhitelist.Len() > 0 {
		rpms := &yaml.Node{Kind: yaml.MappingNode}
		if b.RPMMacros != "" {
			rpms.Content = append(rpms.Content, key("macros"), yamlio.QuoteScalar(b.RPMMacros))
		}
		if b.RPMWhitelist.Len() > 0 {
			rpms.Content = append(rpms.Content, key("whitelist"), yamlio.WriteStringSet(b.RPMWhitelist))
		}
		n.Content = append(n.Content, key("rpms"), rpms)
	}
	if b.Arches.Len() > 0 {
		n.Content = append(n.Content, key("arches"), yamlio.WriteStringSet(b.Arches))
	}
	if len(n.Content) == 0 {
		return nil
	}
	return n
}

func emitComponentCommon(body *yaml.Node, c types.Component) {
	if c.Rationale != "" {
		body.Content = append(body.Content, key("rationale"), yamlio.QuoteScalar(c.Rationale))
	}
	if c.HasOrder {
		body.Content = append(body.Content, key("buildorder"), intScalar(c.Order))
	}
	if c.BuildAfter.Len() > 0 {
		body.Content = append(body.Content, key("buildafter"), yamlio.WriteStringSet(c.BuildAfter))
	}
	if c.BuildOnly {
		body.Content = append(body.Content, key("buildonly"), boolScalar(true))
	}
}

func intScalar(v int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", v)}
}

func boolScalar(v bool) *yaml.Node {
	val := "false"
	if v {
		val = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}
}

// EmitRpmComponents renders rpm_components sorted by name.
func EmitRpmComponents(components map[string]*types.ComponentRpm) *yaml.Node {
	if len(components) == 0 {
		return nil
	}
	names := sortedRpmNames(components)
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		c := components[name]
		body := &yaml.Node{Kind: yaml.MappingNode}
		emitComponentCommon(body, c.Component)
		if c.Ref != "" {
			body.Content = append(body.Content, key("ref"), yamlio.QuoteScalar(c.Ref))
		}
		if c.Repository != "" {
			body.Content = append(body.Content, key("repository"), yamlio.QuoteScalar(c.Repository))
		}
		if c.Cache != "" {
			body.Content = append(body.Content, key("cache"), yamlio.QuoteScalar(c.Cache))
		}
		if c.Arches.Len() > 0 {
			body.Content = append(body.Content, key("arches"), yamlio.WriteStringSet(c.Arches))
		}
		if c.Multilib.Len() > 0 {
			body.Content = append(body.Content, key("multilib"), yamlio.WriteStringSet(c.Multilib))
		}
		n.Content = append(n.Content, key(name), body)
	}
	return n
}

// EmitModuleComponents renders module_components sorted by name.
func EmitModuleComponents(components map[string]*types.ComponentModule) *yaml.Node {
	if len(components) == 0 {
		return nil
	}
	names := sortedModuleNames(components)
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		c := components[name]
		body := &yaml.Node{Kind: yaml.MappingNode}
		emitComponentCommon(body, c.Component)
		if c.Ref != "" {
			body.Content = append(body.Content, key("ref"), yamlio.QuoteScalar(c.Ref))
		}
		if c.Repository != "" {
			body.Content = append(body.Content, key("repository"), yamlio.QuoteScalar(c.Repository))
		}
		n.Content = append(n.Content, key(name), body)
	}
	return n
}

// ParseDependenciesList reads a `dependencies: list<Dependencies>` field.
func ParseDependenciesList(c *yamlio.Cursor) ([]*types.Dependencies, *modulemderrors.Error) {
	if c == nil || c.IsAbsent() {
		return nil, nil
	}
	node := c.Node()
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil, modulemderrors.Parse("dependencies must be a sequence", nodeLine(node), nodeColumn(node))
	}
	out := make([]*types.Dependencies, 0, len(node.Content))
	for _, item := range node.Content {
		dmc, err := yamlio.NewCursor(item).AsMapping()
		if err != nil {
			return nil, err
		}
		d := &types.Dependencies{
			BuildRequires: map[string]primitives.StringSet{},
			Requires:      map[string]primitives.StringSet{},
		}
		if br, ok := dmc.Field("buildrequires"); ok {
			v, err := br.NestedSet()
			if err != nil {
				return nil, err
			}
			d.BuildRequires = v
		}
		if req, ok := dmc.Field("requires"); ok {
			v, err := req.NestedSet()
			if err != nil {
				return nil, err
			}
			d.Requires = v
		}
		out = append(out, d)
	}
	return out, nil
}

// EmitDependenciesList renders a dependencies list in declaration order.
func EmitDependenciesList(deps []*types.Dependencies) *yaml.Node {
	if len(deps) == 0 {
		return nil
	}
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, d := range deps {
		body := &yaml.Node{Kind: yaml.MappingNode}
		if len(d.BuildRequires) > 0 {
			body.Content = append(body.Content, key("buildrequires"), yamlio.WriteNestedSet(d.BuildRequires))
		}
		if len(d.Requires) > 0 {
			body.Content = append(body.Content, key("requires"), yamlio.WriteNestedSet(d.Requires))
		}
		n.Content = append(n.Content, body)
	}
	return n
}

func nodeLine(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	return n.Line
}

func nodeColumn(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	return n.Column
}

// ParseXMD reads an optional `xmd:` field.
func ParseXMD(c *yamlio.Cursor) (xmd.Variant, *modulemderrors.Error) {
	if c == nil || c.IsAbsent() {
		return xmd.Null(), nil
	}
	return c.Variant()
}

func key(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}

func sortedNames(m map[string]*types.Profile) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortStrings(out)
	return out
}

func sortedRpmNames(m map[string]*types.ComponentRpm) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortStrings(out)
	return out
}

func sortedModuleNames(m map[string]*types.ComponentModule) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortStrings(out)
	return out
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
