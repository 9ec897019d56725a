package packager

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/nsvca"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// Parse dispatches a SubdocumentInfo already identified as
// "modulemd-packager" to the v2/v3 parser and validator. moduleName
// and streamName, when non-empty, override whatever name/stream the
// document itself carries (or lack thereof) — used when the fragment
// is authored without either name and the caller supplies them out of
// band (spec §6.2). Overrides are applied, and an NSVCA placeholder is
// synthesized for whichever name is still empty afterward, before the
// validator's required-field check ever runs, so a nameless fragment
// read with an override (or with none at all) never fails on a field
// the override/placeholder was always going to fill in.
func Parse(info types.SubdocumentInfo, strict bool, moduleName, streamName string) (*Packager, *modulemderrors.Error) {
	if info.MDVersion != 2 && info.MDVersion != 3 {
		return nil, modulemderrors.New(modulemderrors.YamlParse, "unsupported packager mdversion").
			WithDetail("mdversion", info.MDVersion)
	}
	p, err := NewParser().ParseBytes(info.Raw, info.MDVersion, strict)
	if err != nil {
		return nil, err
	}
	if moduleName != "" {
		p.Name = moduleName
	}
	if streamName != "" {
		p.Stream = streamName
	}
	if p.Name == "" {
		p.Name = nsvca.Placeholder(string(info.Raw), "modulemd-packager", "name")
	}
	if p.Stream == "" {
		p.Stream = nsvca.Placeholder(string(info.Raw), "modulemd-packager", "stream")
	}
	if errs := NewValidator().Validate(p); len(errs) > 0 {
		return nil, errs[0]
	}
	return p, nil
}

// Emit wraps p's body in the document/version/data header.
func Emit(p *Packager) yamlio.Document {
	return yamlio.Document{Doctype: "modulemd-packager", Version: p.MDVersion, Data: NewEmitter().Emit(p)}
}
