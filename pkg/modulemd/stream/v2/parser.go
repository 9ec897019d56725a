package v2

import (
	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/internal"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/shared"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

var knownKeys = []string{
	"name", "stream", "version", "context", "arch",
	"summary", "description", "community", "documentation", "tracker",
	"license", "rpm-api", "rpm-artifacts", "rpm-filters",
	"profiles", "servicelevels", "buildopts",
	"rpm-components", "module-components",
	"xmd", "dependencies",
}

// Parser parses a v2 `data:` section into a Wire.
type Parser struct{}

// NewParser returns a v2 Parser.
func NewParser() *Parser { return &Parser{} }

// ParseBytes parses the raw `data:` slice captured by the router.
func (p *Parser) ParseBytes(raw []byte, strict bool) (*Wire, *modulemderrors.Error) {
	node, err := yamlio.ParseDataNode(raw)
	if err != nil {
		if merr, ok := err.(*modulemderrors.Error); ok {
			return nil, merr
		}
		return nil, modulemderrors.Wrap(modulemderrors.YamlParse, "parsing v2 stream data", err)
	}
	return p.parseNode(node, strict)
}

func (p *Parser) parseNode(node *yaml.Node, strict bool) (*Wire, *modulemderrors.Error) {
	mc, perr := yamlio.NewCursor(node).AsMapping()
	if perr != nil {
		return nil, perr
	}

	if err := mc.CheckUnknownKeys(knownKeys, strict, "v2 stream data"); err != nil {
		return nil, err
	}

	w := internal.New(2)

	if err := readString(mc, "name", &w.Name); err != nil {
		return nil, err
	}
	if err := readString(mc, "stream", &w.Stream); err != nil {
		return nil, err
	}
	if c, ok := mc.Field("version"); ok {
		v, err := c.Uint64()
		if err != nil {
			return nil, err
		}
		w.Version = v
	}
	if err := readString(mc, "context", &w.Context); err != nil {
		return nil, err
	}
	if err := readString(mc, "arch", &w.Arch); err != nil {
		return nil, err
	}
	if err := readString(mc, "summary", &w.Summary); err != nil {
		return nil, err
	}
	if err := readString(mc, "description", &w.Description); err != nil {
		return nil, err
	}
	if err := readString(mc, "community", &w.Community); err != nil {
		return nil, err
	}
	if err := readString(mc, "documentation", &w.Documentation); err != nil {
		return nil, err
	}
	if err := readString(mc, "tracker", &w.Tracker); err != nil {
		return nil, err
	}

	if lic, ok := mc.Field("license"); ok {
		lmc, err := lic.AsMapping()
		if err != nil {
			return nil, err
		}
		if m, ok := lmc.Field("module"); ok {
			v, err := m.StringSet()
			if err != nil {
				return nil, err
			}
			w.ModuleLicenses = v
		}
		if cc, ok := lmc.Field("content"); ok {
			v, err := cc.StringSet()
			if err != nil {
				return nil, err
			}
			w.ContentLicenses = v
		}
	}

	if err := readStringSet(mc, "rpm-api", &w.RpmAPI); err != nil {
		return nil, err
	}
	if err := readStringSet(mc, "rpm-artifacts", &w.RpmArtifacts); err != nil {
		return nil, err
	}
	if err := readStringSet(mc, "rpm-filters", &w.RpmFilters); err != nil {
		return nil, err
	}

	profilesC, _ := mc.Field("profiles")
	profiles, err := shared.ParseProfiles(profilesC)
	if err != nil {
		return nil, err
	}
	w.Profiles = profiles

	slC, _ := mc.Field("servicelevels")
	sl, err := shared.ParseServiceLevels(slC)
	if err != nil {
		return nil, err
	}
	w.ServiceLevels = sl

	boC, _ := mc.Field("buildopts")
	bo, err := shared.ParseBuildopts(boC)
	if err != nil {
		return nil, err
	}
	w.Buildopts = bo

	rcC, _ := mc.Field("rpm-components")
	rc, err := shared.ParseRpmComponents(rcC)
	if err != nil {
		return nil, err
	}
	w.RpmComponents = rc

	mcompC, _ := mc.Field("module-components")
	mcomp, err := shared.ParseModuleComponents(mcompC)
	if err != nil {
		return nil, err
	}
	w.ModuleComponents = mcomp

	xmdC, _ := mc.Field("xmd")
	xv, err := shared.ParseXMD(xmdC)
	if err != nil {
		return nil, err
	}
	w.XMD = xv

	depsC, _ := mc.Field("dependencies")
	deps, err := shared.ParseDependenciesList(depsC)
	if err != nil {
		return nil, err
	}
	w.DependenciesList = deps

	return w, nil
}

func readString(mc *yamlio.MappingCursor, field string, out *string) *modulemderrors.Error {
	c, ok := mc.Field(field)
	if !ok {
		return nil
	}
	v, err := c.String()
	if err != nil {
		return err
	}
	*out = v
	return nil
}

func readStringSet(mc *yamlio.MappingCursor, field string, out *primitives.StringSet) *modulemderrors.Error {
	c, ok := mc.Field(field)
	if !ok {
		return nil
	}
	v, err := c.StringSet()
	if err != nil {
		return err
	}
	*out = v
	return nil
}
