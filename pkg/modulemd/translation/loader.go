package translation

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// LatestMDVersion is the only schema version Translation supports.
const LatestMDVersion = 1

// Parse dispatches a SubdocumentInfo already identified as
// "modulemd-translations" to the v1 parser/validator.
func Parse(info types.SubdocumentInfo, strict bool) (*Translation, *modulemderrors.Error) {
	if info.MDVersion != LatestMDVersion {
		return nil, modulemderrors.New(modulemderrors.YamlParse, "unsupported translation mdversion").
			WithDetail("mdversion", info.MDVersion)
	}
	t, err := NewParser().ParseBytes(info.Raw, strict)
	if err != nil {
		return nil, err
	}
	if errs := NewValidator().Validate(t); len(errs) > 0 {
		return nil, errs[0]
	}
	return t, nil
}

// Emit wraps t's body in the document/version/data header.
func Emit(t *Translation) yamlio.Document {
	return yamlio.Document{Doctype: "modulemd-translations", Version: LatestMDVersion, Data: NewEmitter().Emit(t)}
}
