package translation

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// Emitter renders a Translation back into its `data:` body node.
type Emitter struct{}

// NewEmitter returns a Translation Emitter.
func NewEmitter() *Emitter { return &Emitter{} }

// Emit builds the data-section node, with locale entries sorted
// lexicographically and absent optionals omitted.
func (e *Emitter) Emit(t *Translation) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k string, v *yaml.Node) {
		if v == nil {
			return
		}
		n.Content = append(n.Content, key(k), v)
	}

	add("module", yamlio.QuoteScalar(t.ModuleName))
	add("stream", yamlio.QuoteStreamScalar(t.ModuleStream))
	add("modified", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", t.Modified)})
	if translations := emitEntries(t.Entries); translations != nil {
		add("translations", translations)
	}

	return n
}

func emitEntries(entries map[string]*types.TranslationEntry) *yaml.Node {
	if len(entries) == 0 {
		return nil
	}
	locales := make([]string, 0, len(entries))
	for k := range entries {
		locales = append(locales, k)
	}
	sort.Strings(locales)

	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, locale := range locales {
		e := entries[locale]
		body := &yaml.Node{Kind: yaml.MappingNode}
		if e.Summary != "" {
			body.Content = append(body.Content, key("summary"), yamlio.QuoteScalar(e.Summary))
		}
		if e.Description != "" {
			body.Content = append(body.Content, key("description"), yamlio.QuoteScalar(e.Description))
		}
		if len(e.ProfileDescriptions) > 0 {
			body.Content = append(body.Content, key("profiles"), yamlio.WriteStringStringMap(e.ProfileDescriptions))
		}
		n.Content = append(n.Content, key(locale), body)
	}
	return n
}

func key(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}
