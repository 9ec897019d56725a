package packager

import (
	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/shared"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

var commonKnownKeys = []string{
	"name", "stream",
	"summary", "description", "community", "documentation", "tracker",
	"license", "rpm-api", "rpm-artifacts", "rpm-filters",
	"profiles", "servicelevels",
	"rpm-components", "module-components",
	"xmd",
}

var v2OnlyKeys = []string{"platform", "buildrequires", "requires", "buildopts"}
var v3OnlyKeys = []string{"configurations"}
var buildConfigKnownKeys = []string{"platform", "buildrequires", "requires", "buildopts"}

// Parser parses a Packager subdocument's `data:` section for either
// schema version.
type Parser struct{}

// NewParser returns a Packager Parser.
func NewParser() *Parser { return &Parser{} }

// ParseBytes parses the raw `data:` slice captured by the router.
// mdVersion selects whether a single inlined build configuration (v2)
// or a `configurations:` list (v3) is expected.
func (p *Parser) ParseBytes(raw []byte, mdVersion uint64, strict bool) (*Packager, *modulemderrors.Error) {
	node, err := yamlio.ParseDataNode(raw)
	if err != nil {
		if merr, ok := err.(*modulemderrors.Error); ok {
			return nil, merr
		}
		return nil, modulemderrors.Wrap(modulemderrors.YamlParse, "parsing packager data", err)
	}
	return p.parseNode(node, mdVersion, strict)
}

func (p *Parser) parseNode(node *yaml.Node, mdVersion uint64, strict bool) (*Packager, *modulemderrors.Error) {
	mc, perr := yamlio.NewCursor(node).AsMapping()
	if perr != nil {
		return nil, perr
	}

	known := append(append([]string{}, commonKnownKeys...), v3OnlyKeys...)
	if mdVersion == 2 {
		known = append(append([]string{}, commonKnownKeys...), v2OnlyKeys...)
	}
	if err := mc.CheckUnknownKeys(known, strict, "packager data"); err != nil {
		return nil, err
	}

	pkg := New(mdVersion)

	if err := readString(mc, "name", &pkg.Name); err != nil {
		return nil, err
	}
	if err := readString(mc, "stream", &pkg.Stream); err != nil {
		return nil, err
	}
	if err := readString(mc, "summary", &pkg.Summary); err != nil {
		return nil, err
	}
	if err := readString(mc, "description", &pkg.Description); err != nil {
		return nil, err
	}
	if err := readString(mc, "community", &pkg.Community); err != nil {
		return nil, err
	}
	if err := readString(mc, "documentation", &pkg.Documentation); err != nil {
		return nil, err
	}
	if err := readString(mc, "tracker", &pkg.Tracker); err != nil {
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
			pkg.ModuleLicenses = v
		}
		if c, ok := lmc.Field("content"); ok {
			v, err := c.StringSet()
			if err != nil {
				return nil, err
			}
			pkg.ContentLicenses = v
		}
	}

	if err := readStringSet(mc, "rpm-api", &pkg.RpmAPI); err != nil {
		return nil, err
	}
	if err := readStringSet(mc, "rpm-artifacts", &pkg.RpmArtifacts); err != nil {
		return nil, err
	}
	if err := readStringSet(mc, "rpm-filters", &pkg.RpmFilters); err != nil {
		return nil, err
	}

	profilesC, _ := mc.Field("profiles")
	profiles, perr2 := shared.ParseProfiles(profilesC)
	if perr2 != nil {
		return nil, perr2
	}
	pkg.Profiles = profiles

	slC, _ := mc.Field("servicelevels")
	sl, err := shared.ParseServiceLevels(slC)
	if err != nil {
		return nil, err
	}
	pkg.ServiceLevels = sl

	rcC, _ := mc.Field("rpm-components")
	rc, err := shared.ParseRpmComponents(rcC)
	if err != nil {
		return nil, err
	}
	pkg.RpmComponents = rc

	mcompC, _ := mc.Field("module-components")
	mcomp, err := shared.ParseModuleComponents(mcompC)
	if err != nil {
		return nil, err
	}
	pkg.ModuleComponents = mcomp

	xmdC, _ := mc.Field("xmd")
	xv, err := shared.ParseXMD(xmdC)
	if err != nil {
		return nil, err
	}
	pkg.XMD = xv

	if mdVersion == 2 {
		cfg, cerr := parseBuildConfigFields(mc, strict)
		if cerr != nil {
			return nil, cerr
		}
		pkg.Configurations = []*BuildConfig{cfg}
		return pkg, nil
	}

	if cc, ok := mc.Field("configurations"); ok {
		node := cc.Node()
		if node == nil || node.Kind != yaml.SequenceNode {
			return nil, modulemderrors.Parse("configurations must be a sequence", mc.Line(), mc.Column())
		}
		for _, item := range node.Content {
			cmc, err := yamlio.NewCursor(item).AsMapping()
			if err != nil {
				return nil, err
			}
			if err := cmc.CheckUnknownKeys(buildConfigKnownKeys, strict, "build configuration"); err != nil {
				return nil, err
			}
			cfg, cerr := parseBuildConfigFields(cmc, strict)
			if cerr != nil {
				return nil, cerr
			}
			pkg.Configurations = append(pkg.Configurations, cfg)
		}
	}

	return pkg, nil
}

func parseBuildConfigFields(mc *yamlio.MappingCursor, strict bool) (*BuildConfig, *modulemderrors.Error) {
	cfg := &BuildConfig{BuildRequires: map[string]string{}, Requires: map[string]string{}}
	if err := readString(mc, "platform", &cfg.Platform); err != nil {
		return nil, err
	}
	if c, ok := mc.Field("buildrequires"); ok {
		v, err := c.StringStringMap()
		if err != nil {
			return nil, err
		}
		cfg.BuildRequires = v
	}
	if c, ok := mc.Field("requires"); ok {
		v, err := c.StringStringMap()
		if err != nil {
			return nil, err
		}
		cfg.Requires = v
	}
	boC, _ := mc.Field("buildopts")
	bo, err := shared.ParseBuildopts(boC)
	if err != nil {
		return nil, err
	}
	cfg.Buildopts = bo
	return cfg, nil
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
