package stream

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/v1"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/v2"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/v3"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// LatestMDVersion is the highest schema version this engine parses.
// A stream's mdversion greater than this is a parse error (invariant 2).
const LatestMDVersion = 3

// Parse dispatches a SubdocumentInfo already identified as "modulemd"
// to the parser/validator for its mdversion and returns a ModuleStream.
func Parse(info types.SubdocumentInfo, strict bool) (ModuleStream, *modulemderrors.Error) {
	if info.MDVersion < 1 || info.MDVersion > LatestMDVersion {
		return nil, modulemderrors.New(modulemderrors.YamlParse, "unsupported module stream mdversion").
			WithDetail("mdversion", info.MDVersion)
	}

	switch info.MDVersion {
	case 1:
		w, err := v1.NewParser().ParseBytes(info.Raw, strict)
		if err != nil {
			return nil, err
		}
		if errs := v1.NewValidator().Validate(w); len(errs) > 0 {
			return nil, errs[0]
		}
		return New(w), nil
	case 2:
		w, err := v2.NewParser().ParseBytes(info.Raw, strict)
		if err != nil {
			return nil, err
		}
		if errs := v2.NewValidator().Validate(w); len(errs) > 0 {
			return nil, errs[0]
		}
		return New(w), nil
	default:
		w, err := v3.NewParser().ParseBytes(info.Raw, strict)
		if err != nil {
			return nil, err
		}
		if errs := v3.NewValidator().Validate(w); len(errs) > 0 {
			return nil, errs[0]
		}
		return New(w), nil
	}
}

// Emit dispatches a stream to its mdversion's emitter and wraps the
// result in the document/version/data header.
func Emit(s ModuleStream) yamlio.Document {
	data := s.Internal()
	switch data.MDVersion {
	case 1:
		return yamlio.Document{Doctype: "modulemd", Version: 1, Data: v1.NewEmitter().Emit(data)}
	case 2:
		return yamlio.Document{Doctype: "modulemd", Version: 2, Data: v2.NewEmitter().Emit(data)}
	default:
		return yamlio.Document{Doctype: "modulemd", Version: 3, Data: v3.NewEmitter().Emit(data)}
	}
}
