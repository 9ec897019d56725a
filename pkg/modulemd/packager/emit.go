package packager

import (
	"gopkg.in/yaml.v3"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/shared"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// Emitter renders a Packager back into its `data:` body node, in
// either v2 (single inlined configuration) or v3 (configurations list)
// shape according to p.MDVersion.
type Emitter struct{}

// NewEmitter returns a Packager Emitter.
func NewEmitter() *Emitter { return &Emitter{} }

// Emit builds the data-section node.
func (e *Emitter) Emit(p *Packager) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k string, v *yaml.Node) {
		if v == nil {
			return
		}
		n.Content = append(n.Content, key(k), v)
	}

	add("name", yamlio.QuoteStreamScalar(p.Name))
	add("stream", yamlio.QuoteStreamScalar(p.Stream))
	addIfSet(add, "summary", p.Summary)
	addIfSet(add, "description", p.Description)
	addIfSet(add, "community", p.Community)
	addIfSet(add, "documentation", p.Documentation)
	addIfSet(add, "tracker", p.Tracker)

	if p.ModuleLicenses.Len() > 0 || p.ContentLicenses.Len() > 0 {
		lic := &yaml.Node{Kind: yaml.MappingNode}
		if p.ModuleLicenses.Len() > 0 {
			lic.Content = append(lic.Content, key("module"), yamlio.WriteStringSet(p.ModuleLicenses))
		}
		if p.ContentLicenses.Len() > 0 {
			lic.Content = append(lic.Content, key("content"), yamlio.WriteStringSet(p.ContentLicenses))
		}
		add("license", lic)
	}

	if p.RpmAPI.Len() > 0 {
		add("rpm-api", yamlio.WriteStringSet(p.RpmAPI))
	}
	if p.RpmArtifacts.Len() > 0 {
		add("rpm-artifacts", yamlio.WriteStringSet(p.RpmArtifacts))
	}
	if p.RpmFilters.Len() > 0 {
		add("rpm-filters", yamlio.WriteStringSet(p.RpmFilters))
	}

	add("profiles", shared.EmitProfiles(p.Profiles))
	add("servicelevels", shared.EmitServiceLevels(p.ServiceLevels))
	add("rpm-components", shared.EmitRpmComponents(p.RpmComponents))
	add("module-components", shared.EmitModuleComponents(p.ModuleComponents))

	if !p.XMD.IsNull() {
		add("xmd", yamlio.WriteVariant(p.XMD))
	}

	if p.MDVersion == 2 {
		if len(p.Configurations) > 0 {
			emitBuildConfigFields(add, p.Configurations[0])
		}
		return n
	}

	if cfgs := emitConfigurations(p.Configurations); cfgs != nil {
		add("configurations", cfgs)
	}
	return n
}

func emitBuildConfigFields(add func(string, *yaml.Node), cfg *BuildConfig) {
	addIfSet(add, "platform", cfg.Platform)
	if len(cfg.BuildRequires) > 0 {
		add("buildrequires", yamlio.WriteStringStringMap(cfg.BuildRequires))
	}
	if len(cfg.Requires) > 0 {
		add("requires", yamlio.WriteStringStringMap(cfg.Requires))
	}
	if bo := shared.EmitBuildopts(cfg.Buildopts); bo != nil {
		add("buildopts", bo)
	}
}

func emitConfigurations(cfgs []*BuildConfig) *yaml.Node {
	if len(cfgs) == 0 {
		return nil
	}
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, cfg := range cfgs {
		body := &yaml.Node{Kind: yaml.MappingNode}
		add := func(k string, v *yaml.Node) {
			if v == nil {
				return
			}
			body.Content = append(body.Content, key(k), v)
		}
		emitBuildConfigFields(add, cfg)
		n.Content = append(n.Content, body)
	}
	return n
}

func addIfSet(add func(string, *yaml.Node), k, v string) {
	if v != "" {
		add(k, yamlio.QuoteScalar(v))
	}
}

func key(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}
