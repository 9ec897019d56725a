package defaults

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// LatestMDVersion is the only schema version Defaults supports; the
// document family never grew a v2, so there is no upgrade chain here.
const LatestMDVersion = 1

// Parse dispatches a SubdocumentInfo already identified as
// "modulemd-defaults" to the v1 parser/validator.
func Parse(info types.SubdocumentInfo, strict bool) (*Defaults, *modulemderrors.Error) {
	if info.MDVersion != LatestMDVersion {
		return nil, modulemderrors.New(modulemderrors.YamlParse, "unsupported defaults mdversion").
			WithDetail("mdversion", info.MDVersion)
	}
	d, err := NewParser().ParseBytes(info.Raw, strict)
	if err != nil {
		return nil, err
	}
	if errs := NewValidator().Validate(d); len(errs) > 0 {
		return nil, errs[0]
	}
	return d, nil
}

// Emit wraps d's body in the document/version/data header.
func Emit(d *Defaults) yamlio.Document {
	return yamlio.Document{Doctype: "modulemd-defaults", Version: LatestMDVersion, Data: NewEmitter().Emit(d)}
}
