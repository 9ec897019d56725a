package defaults

import (
	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

var knownKeys = []string{"module", "modified", "data"}
var dataKnownKeys = []string{"module", "stream", "profiles", "intents"}
var intentKnownKeys = []string{"stream", "profiles"}

// Parser parses a Defaults subdocument's `data:` section.
type Parser struct{}

// NewParser returns a Defaults Parser.
func NewParser() *Parser { return &Parser{} }

// ParseBytes parses the raw `data:` slice captured by the router for a
// doctype "modulemd-defaults" subdocument.
func (p *Parser) ParseBytes(raw []byte, strict bool) (*Defaults, *modulemderrors.Error) {
	node, err := yamlio.ParseDataNode(raw)
	if err != nil {
		if merr, ok := err.(*modulemderrors.Error); ok {
			return nil, merr
		}
		return nil, modulemderrors.Wrap(modulemderrors.YamlParse, "parsing defaults data", err)
	}
	return p.parseNode(node, strict)
}

func (p *Parser) parseNode(node *yaml.Node, strict bool) (*Defaults, *modulemderrors.Error) {
	mc, perr := yamlio.NewCursor(node).AsMapping()
	if perr != nil {
		return nil, perr
	}
	if err := mc.CheckUnknownKeys(dataKnownKeys, strict, "defaults data"); err != nil {
		return nil, err
	}

	d := New("")
	if c, ok := mc.Field("module"); ok {
		v, err := c.String()
		if err != nil {
			return nil, err
		}
		d.ModuleName = v
	}

	if pc, ok := mc.Field("profiles"); ok {
		profilesMap, err := parseStreamProfileMap(pc)
		if err != nil {
			return nil, err
		}
		d.ProfileDefaults = profilesMap
	}

	if sc, ok := mc.Field("stream"); ok {
		v, err := sc.String()
		if err != nil {
			return nil, err
		}
		d.DefaultStream = v
	}

	if ic, ok := mc.Field("intents"); ok {
		imc, err := ic.AsMapping()
		if err != nil {
			return nil, err
		}
		for _, name := range imc.Keys() {
			fc, _ := imc.Field(name)
			fmc, ferr := fc.AsMapping()
			if ferr != nil {
				return nil, ferr
			}
			if err := fmc.CheckUnknownKeys(intentKnownKeys, strict, "intent "+name); err != nil {
				return nil, err
			}
			var intent Intent
			intent.ProfileDefaults = make(map[string]primitives.StringSet)
			if sc, ok := fmc.Field("stream"); ok {
				v, err := sc.String()
				if err != nil {
					return nil, err
				}
				intent.DefaultStream = v
			}
			if pc, ok := fmc.Field("profiles"); ok {
				profilesMap, err := parseStreamProfileMap(pc)
				if err != nil {
					return nil, err
				}
				intent.ProfileDefaults = profilesMap
			}
			d.Intents[name] = intent
		}
	}

	return d, nil
}

func parseStreamProfileMap(c *yamlio.Cursor) (map[string]primitives.StringSet, *modulemderrors.Error) {
	if c.IsAbsent() {
		return make(map[string]primitives.StringSet), nil
	}
	return c.NestedSet()
}
