package obsoletes

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// Emitter renders an Obsoletes back into its `data:` body node.
type Emitter struct{}

// NewEmitter returns an Obsoletes Emitter.
func NewEmitter() *Emitter { return &Emitter{} }

// Emit builds the data-section node, with absent optionals omitted.
func (e *Emitter) Emit(o *Obsoletes) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k string, v *yaml.Node) {
		if v == nil {
			return
		}
		n.Content = append(n.Content, key(k), v)
	}

	add("modified", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", o.Modified)})
	add("module", yamlio.QuoteScalar(o.ModuleName))
	add("stream", yamlio.QuoteStreamScalar(o.ModuleStream))
	if o.Message != "" {
		add("message", yamlio.QuoteScalar(o.Message))
	}
	if o.EOLDate != nil {
		add("eol_date", yamlio.QuoteScalar(o.EOLDate.String()))
	}
	if o.ObsoletedBy != nil {
		body := &yaml.Node{Kind: yaml.MappingNode}
		body.Content = append(body.Content,
			key("module"), yamlio.QuoteScalar(o.ObsoletedBy.ModuleName),
			key("stream"), yamlio.QuoteStreamScalar(o.ObsoletedBy.ModuleStream),
		)
		add("obsoleted_by", body)
	}
	if o.Reset {
		add("reset", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
	}

	return n
}

func key(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}
