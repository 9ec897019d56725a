package defaults

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// Emitter renders a Defaults back into its `data:` body node.
type Emitter struct{}

// NewEmitter returns a Defaults Emitter.
func NewEmitter() *Emitter { return &Emitter{} }

// Emit builds the data-section node, with keys written in the schema's
// order and absent optionals omitted, matching the engine's emission
// rule for every other document variant.
func (e *Emitter) Emit(d *Defaults) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k string, v *yaml.Node) {
		if v == nil {
			return
		}
		n.Content = append(n.Content, key(k), v)
	}

	add("module", yamlio.QuoteScalar(d.ModuleName))
	if d.DefaultStream != "" {
		add("stream", yamlio.QuoteStreamScalar(d.DefaultStream))
	}
	if len(d.ProfileDefaults) > 0 {
		add("profiles", yamlio.WriteNestedSet(d.ProfileDefaults))
	}
	if intents := emitIntents(d.Intents); intents != nil {
		add("intents", intents)
	}

	return n
}

func emitIntents(intents map[string]Intent) *yaml.Node {
	if len(intents) == 0 {
		return nil
	}
	names := make([]string, 0, len(intents))
	for k := range intents {
		names = append(names, k)
	}
	sort.Strings(names)

	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		intent := intents[name]
		body := &yaml.Node{Kind: yaml.MappingNode}
		if intent.DefaultStream != "" {
			body.Content = append(body.Content, key("stream"), yamlio.QuoteStreamScalar(intent.DefaultStream))
		}
		if len(intent.ProfileDefaults) > 0 {
			body.Content = append(body.Content, key("profiles"), yamlio.WriteNestedSet(intent.ProfileDefaults))
		}
		n.Content = append(n.Content, key(name), body)
	}
	return n
}

func key(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}
