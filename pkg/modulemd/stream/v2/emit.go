package v2

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/shared"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// Emitter renders a v2 Wire back into its `data:` body node.
type Emitter struct{}

// NewEmitter returns a v2 Emitter.
func NewEmitter() *Emitter { return &Emitter{} }

// Emit builds the data-section node for w.
func (e *Emitter) Emit(w *Wire) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k string, v *yaml.Node) {
		if v == nil {
			return
		}
		n.Content = append(n.Content, key(k), v)
	}

	add("name", yamlio.QuoteStreamScalar(w.Name))
	add("stream", yamlio.QuoteStreamScalar(w.Stream))
	if w.Version != 0 {
		add("version", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", w.Version)})
	}
	addIfSet(add, "context", w.Context)
	addIfSet(add, "arch", w.Arch)
	addIfSet(add, "summary", w.Summary)
	addIfSet(add, "description", w.Description)
	addIfSet(add, "community", w.Community)
	addIfSet(add, "documentation", w.Documentation)
	addIfSet(add, "tracker", w.Tracker)

	if w.ModuleLicenses.Len() > 0 || w.ContentLicenses.Len() > 0 {
		lic := &yaml.Node{Kind: yaml.MappingNode}
		if w.ModuleLicenses.Len() > 0 {
			lic.Content = append(lic.Content, key("module"), yamlio.WriteStringSet(w.ModuleLicenses))
		}
		if w.ContentLicenses.Len() > 0 {
			lic.Content = append(lic.Content, key("content"), yamlio.WriteStringSet(w.ContentLicenses))
		}
		add("license", lic)
	}

	if w.RpmAPI.Len() > 0 {
		add("rpm-api", yamlio.WriteStringSet(w.RpmAPI))
	}
	if w.RpmArtifacts.Len() > 0 {
		add("rpm-artifacts", yamlio.WriteStringSet(w.RpmArtifacts))
	}
	if w.RpmFilters.Len() > 0 {
		add("rpm-filters", yamlio.WriteStringSet(w.RpmFilters))
	}

	add("profiles", shared.EmitProfiles(w.Profiles))
	add("servicelevels", shared.EmitServiceLevels(w.ServiceLevels))
	add("buildopts", shared.EmitBuildopts(w.Buildopts))
	add("rpm-components", shared.EmitRpmComponents(w.RpmComponents))
	add("module-components", shared.EmitModuleComponents(w.ModuleComponents))

	if !w.XMD.IsNull() {
		add("xmd", yamlio.WriteVariant(w.XMD))
	}

	add("dependencies", shared.EmitDependenciesList(w.DependenciesList))

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
