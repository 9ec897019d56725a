// Package docreader implements the standalone single-document reader
// (spec §6.2 ModuleStream::read_{file,string,stream}): given exactly
// one subdocument — either a plain "modulemd" stream or a
// "modulemd-packager" fragment lowered on the spot — return the
// resulting ModuleStream, optionally overriding its module/stream name
// for fragments that were never given one.
package docreader

import (
	"fmt"
	"io"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/packager"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// Overrides carries the optional module_name/stream_name replacement
// values; an empty field leaves the parsed document's own value in
// place.
type Overrides struct {
	ModuleName string
	StreamName string
}

// ReadFile reads the single document at path.
func ReadFile(path string, strict bool, overrides Overrides) (stream.ModuleStream, *modulemderrors.Error) {
	infos, err := yamlio.NewRouter().ParseFile(path)
	if err != nil {
		return nil, wrapErr(err)
	}
	return fromInfos(infos, strict, overrides)
}

// ReadString reads the single document in s.
func ReadString(s string, strict bool, overrides Overrides) (stream.ModuleStream, *modulemderrors.Error) {
	infos, err := yamlio.NewRouter().ParseString(s)
	if err != nil {
		return nil, wrapErr(err)
	}
	return fromInfos(infos, strict, overrides)
}

// ReadStream reads the single document from r.
func ReadStream(r io.Reader, strict bool, overrides Overrides) (stream.ModuleStream, *modulemderrors.Error) {
	infos, err := yamlio.NewRouter().ParseStream(r)
	if err != nil {
		return nil, wrapErr(err)
	}
	return fromInfos(infos, strict, overrides)
}

func wrapErr(err error) *modulemderrors.Error {
	if merr, ok := err.(*modulemderrors.Error); ok {
		return merr
	}
	return modulemderrors.Wrap(modulemderrors.YamlUnparseable, "reading module stream document", err)
}

func fromInfos(infos []types.SubdocumentInfo, strict bool, overrides Overrides) (stream.ModuleStream, *modulemderrors.Error) {
	if len(infos) != 1 {
		return nil, modulemderrors.New(modulemderrors.YamlParse,
			fmt.Sprintf("expected exactly one subdocument, found %d", len(infos)))
	}
	info := infos[0]
	if info.HasError() {
		if merr, ok := info.Err.(*modulemderrors.Error); ok {
			return nil, merr
		}
		return nil, modulemderrors.Wrap(modulemderrors.YamlParse, "parsing subdocument header", info.Err)
	}

	var s stream.ModuleStream
	switch info.Doctype {
	case "modulemd":
		parsed, err := stream.Parse(info, strict)
		if err != nil {
			return nil, err
		}
		s = parsed
	case "modulemd-packager":
		p, err := packager.Parse(info, strict, overrides.ModuleName, overrides.StreamName)
		if err != nil {
			return nil, err
		}
		var lowered *packager.Lowered
		if p.MDVersion == 2 {
			lowered, err = packager.ToStreamV2(p)
		} else {
			lowered, err = packager.ToStreamV3(p)
		}
		if err != nil {
			return nil, err
		}
		s = lowered.Stream
	default:
		return nil, modulemderrors.New(modulemderrors.YamlParse, fmt.Sprintf("unsupported document type %q for single-document read", info.Doctype))
	}

	if overrides.ModuleName != "" {
		s.SetName(overrides.ModuleName)
	}
	if overrides.StreamName != "" {
		s.SetStream(overrides.StreamName)
	}
	return s, nil
}
