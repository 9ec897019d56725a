package translation

import (
	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

var dataKnownKeys = []string{"module", "stream", "modified", "translations"}
var entryKnownKeys = []string{"summary", "description", "profiles"}

// Parser parses a Translation subdocument's `data:` section.
type Parser struct{}

// NewParser returns a Translation Parser.
func NewParser() *Parser { return &Parser{} }

// ParseBytes parses the raw `data:` slice captured by the router for a
// doctype "modulemd-translations" subdocument.
func (p *Parser) ParseBytes(raw []byte, strict bool) (*Translation, *modulemderrors.Error) {
	node, err := yamlio.ParseDataNode(raw)
	if err != nil {
		if merr, ok := err.(*modulemderrors.Error); ok {
			return nil, merr
		}
		return nil, modulemderrors.Wrap(modulemderrors.YamlParse, "parsing translation data", err)
	}
	return p.parseNode(node, strict)
}

func (p *Parser) parseNode(node *yaml.Node, strict bool) (*Translation, *modulemderrors.Error) {
	mc, perr := yamlio.NewCursor(node).AsMapping()
	if perr != nil {
		return nil, perr
	}
	if err := mc.CheckUnknownKeys(dataKnownKeys, strict, "translation data"); err != nil {
		return nil, err
	}

	t := New("", "")
	if c, ok := mc.Field("module"); ok {
		v, err := c.String()
		if err != nil {
			return nil, err
		}
		t.ModuleName = v
	}
	if c, ok := mc.Field("stream"); ok {
		v, err := c.String()
		if err != nil {
			return nil, err
		}
		t.ModuleStream = v
	}
	if c, ok := mc.Field("modified"); ok {
		v, err := c.Uint64()
		if err != nil {
			return nil, err
		}
		t.Modified = v
	}

	if tc, ok := mc.Field("translations"); ok {
		tmc, err := tc.AsMapping()
		if err != nil {
			return nil, err
		}
		for _, locale := range tmc.Keys() {
			fc, _ := tmc.Field(locale)
			fmc, ferr := fc.AsMapping()
			if ferr != nil {
				return nil, ferr
			}
			if err := fmc.CheckUnknownKeys(entryKnownKeys, strict, "translation entry "+locale); err != nil {
				return nil, err
			}
			entry := &types.TranslationEntry{Locale: locale, ProfileDescriptions: make(map[string]string)}
			if sc, ok := fmc.Field("summary"); ok {
				v, err := sc.String()
				if err != nil {
					return nil, err
				}
				entry.Summary = v
			}
			if dc, ok := fmc.Field("description"); ok {
				v, err := dc.String()
				if err != nil {
					return nil, err
				}
				entry.Description = v
			}
			if pc, ok := fmc.Field("profiles"); ok {
				v, err := pc.StringStringMap()
				if err != nil {
					return nil, err
				}
				entry.ProfileDescriptions = v
			}
			if entry.Summary == "" && entry.Description == "" && len(entry.ProfileDescriptions) == 0 {
				return nil, modulemderrors.New(modulemderrors.Validate,
					"translation entry carries neither summary, description, nor profile descriptions").
					WithDetail("locale", locale).AtPosition(fmc.Line(), fmc.Column())
			}
			t.Entries[locale] = entry
		}
	}

	return t, nil
}
