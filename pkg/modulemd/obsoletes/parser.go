package obsoletes

import (
	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

var dataKnownKeys = []string{"modified", "module", "stream", "message", "eol_date", "obsoleted_by", "reset"}
var obsoletedByKnownKeys = []string{"module", "stream"}

// Parser parses an Obsoletes subdocument's `data:` section.
type Parser struct{}

// NewParser returns an Obsoletes Parser.
func NewParser() *Parser { return &Parser{} }

// ParseBytes parses the raw `data:` slice captured by the router for a
// doctype "modulemd-obsoletes" subdocument.
func (p *Parser) ParseBytes(raw []byte, strict bool) (*Obsoletes, *modulemderrors.Error) {
	node, err := yamlio.ParseDataNode(raw)
	if err != nil {
		if merr, ok := err.(*modulemderrors.Error); ok {
			return nil, merr
		}
		return nil, modulemderrors.Wrap(modulemderrors.YamlParse, "parsing obsoletes data", err)
	}
	return p.parseNode(node, strict)
}

func (p *Parser) parseNode(node *yaml.Node, strict bool) (*Obsoletes, *modulemderrors.Error) {
	mc, perr := yamlio.NewCursor(node).AsMapping()
	if perr != nil {
		return nil, perr
	}
	if err := mc.CheckUnknownKeys(dataKnownKeys, strict, "obsoletes data"); err != nil {
		return nil, err
	}

	o := New("", "")
	if c, ok := mc.Field("modified"); ok {
		v, err := c.Uint64()
		if err != nil {
			return nil, err
		}
		o.Modified = v
	}
	if c, ok := mc.Field("module"); ok {
		v, err := c.String()
		if err != nil {
			return nil, err
		}
		o.ModuleName = v
	}
	if c, ok := mc.Field("stream"); ok {
		v, err := c.String()
		if err != nil {
			return nil, err
		}
		o.ModuleStream = v
	}
	if c, ok := mc.Field("message"); ok {
		v, err := c.String()
		if err != nil {
			return nil, err
		}
		o.Message = v
	}
	if c, ok := mc.Field("eol_date"); ok {
		d, err := c.Date()
		if err != nil {
			return nil, err
		}
		o.EOLDate = &d
	}
	if c, ok := mc.Field("reset"); ok {
		v, err := c.Bool()
		if err != nil {
			return nil, err
		}
		o.Reset = v
	}
	if c, ok := mc.Field("obsoleted_by"); ok {
		obmc, err := c.AsMapping()
		if err != nil {
			return nil, err
		}
		if err := obmc.CheckUnknownKeys(obsoletedByKnownKeys, strict, "obsoleted_by"); err != nil {
			return nil, err
		}
		ob := &ObsoletedBy{}
		if mc2, ok := obmc.Field("module"); ok {
			v, err := mc2.String()
			if err != nil {
				return nil, err
			}
			ob.ModuleName = v
		}
		if sc, ok := obmc.Field("stream"); ok {
			v, err := sc.String()
			if err != nil {
				return nil, err
			}
			ob.ModuleStream = v
		}
		o.ObsoletedBy = ob
	}

	return o, nil
}
