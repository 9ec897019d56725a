package obsoletes

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// LatestMDVersion is the only schema version Obsoletes supports.
const LatestMDVersion = 1

// Parse dispatches a SubdocumentInfo already identified as
// "modulemd-obsoletes" to the v1 parser/validator.
func Parse(info types.SubdocumentInfo, strict bool) (*Obsoletes, *modulemderrors.Error) {
	if info.MDVersion != LatestMDVersion {
		return nil, modulemderrors.New(modulemderrors.YamlParse, "unsupported obsoletes mdversion").
			WithDetail("mdversion", info.MDVersion)
	}
	o, err := NewParser().ParseBytes(info.Raw, strict)
	if err != nil {
		return nil, err
	}
	if errs := NewValidator().Validate(o); len(errs) > 0 {
		return nil, errs[0]
	}
	return o, nil
}

// Emit wraps o's body in the document/version/data header.
func Emit(o *Obsoletes) yamlio.Document {
	return yamlio.Document{Doctype: "modulemd-obsoletes", Version: LatestMDVersion, Data: NewEmitter().Emit(o)}
}
