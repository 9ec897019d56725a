package module

import (
	"fmt"
	"io"
	"sort"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/defaults"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/obsoletes"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/packager"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/translation"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/upgrade"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/nsvca"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/yamlio"
)

// ModuleIndex is the top-level collection: every module, keyed by
// name, plus the stream-mdversion floor invariant (spec §4.3): every
// stream in the index is held at the same mdversion, the highest ever
// inserted. Inserting a lower-version stream upgrades it on the way
// in; inserting a higher-version stream upgrades everything already
// present.
type ModuleIndex struct {
	modules     map[string]*Module
	streamFloor uint64
}

// NewIndex returns an empty ModuleIndex.
func NewIndex() *ModuleIndex {
	return &ModuleIndex{modules: make(map[string]*Module)}
}

// GetModule returns the named module, or nil if the index holds none
// by that name.
func (idx *ModuleIndex) GetModule(name string) *Module {
	return idx.modules[name]
}

// ModuleNames returns every module name present, sorted.
func (idx *ModuleIndex) ModuleNames() []string {
	names := make([]string, 0, len(idx.modules))
	for name := range idx.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (idx *ModuleIndex) moduleFor(name string) *Module {
	m, ok := idx.modules[name]
	if !ok {
		m = New(name)
		idx.modules[name] = m
	}
	return m
}

// StreamMDVersion returns the floor every stream in the index is held
// at, or 0 if the index holds no streams yet.
func (idx *ModuleIndex) StreamMDVersion() uint64 {
	return idx.streamFloor
}

// AddModuleStream inserts s into the index under its module name,
// maintaining the stream-mdversion floor: s is upgraded to the current
// floor if it arrives below it, or every existing stream in the index
// is upgraded to s's version if it arrives above it.
func (idx *ModuleIndex) AddModuleStream(moduleName string, s stream.ModuleStream) *modulemderrors.Error {
	if s.MDVersion() > idx.streamFloor {
		if err := idx.raiseFloor(s.MDVersion()); err != nil {
			return err
		}
	} else if s.MDVersion() < idx.streamFloor {
		upgraded, err := upgrade.Stream(s, idx.streamFloor)
		if err != nil {
			return err
		}
		s = upgraded
	}
	return idx.moduleFor(moduleName).AddStream(s)
}

// raiseFloor upgrades every stream currently in the index to target
// and records target as the new floor.
func (idx *ModuleIndex) raiseFloor(target uint64) *modulemderrors.Error {
	for _, m := range idx.modules {
		for k, s := range m.Streams {
			upgraded, err := upgrade.Stream(s, target)
			if err != nil {
				return err
			}
			delete(m.Streams, k)
			m.Streams[keyOf(upgraded)] = upgraded
		}
	}
	idx.streamFloor = target
	return nil
}

// AddDefaults attaches d to its named module, creating the module if
// this is the first document seen for it.
func (idx *ModuleIndex) AddDefaults(d *defaults.Defaults) *modulemderrors.Error {
	return idx.moduleFor(d.ModuleName).AddDefaults(d)
}

// AddTranslation attaches t to its named module.
func (idx *ModuleIndex) AddTranslation(t *translation.Translation) *modulemderrors.Error {
	return idx.moduleFor(t.ModuleName).AddTranslation(t)
}

// AddObsoletes attaches o to its named module.
func (idx *ModuleIndex) AddObsoletes(o *obsoletes.Obsoletes) *modulemderrors.Error {
	idx.moduleFor(o.ModuleName).AddObsoletes(o)
	return nil
}

// AddPackager lowers p to a stream (and, if any profile is marked
// default, a synthesized Defaults) at targetMDVersion and adds both to
// the index.
func (idx *ModuleIndex) AddPackager(p *packager.Packager, targetMDVersion uint64) *modulemderrors.Error {
	var lowered *packager.Lowered
	var err *modulemderrors.Error
	switch targetMDVersion {
	case 2:
		lowered, err = packager.ToStreamV2(p)
	case 3:
		lowered, err = packager.ToStreamV3(p)
	default:
		return modulemderrors.New(modulemderrors.Upgrade, "unsupported packager lowering target").
			WithDetail("target", targetMDVersion)
	}
	if err != nil {
		return err
	}
	if aerr := idx.AddModuleStream(p.Name, lowered.Stream); aerr != nil {
		return aerr
	}
	if lowered.Defaults != nil {
		return idx.AddDefaults(lowered.Defaults)
	}
	return nil
}

// RemoveModule deletes the named module entirely, reporting whether
// anything was removed.
func (idx *ModuleIndex) RemoveModule(name string) bool {
	if _, ok := idx.modules[name]; !ok {
		return false
	}
	delete(idx.modules, name)
	return true
}

// UpgradeStreams upgrades every stream in the index to target and
// raises the floor to match. If any stream cannot make the jump it
// returns that error: streams already upgraded stay upgraded, the rest
// keep their old version, and the floor is left unchanged.
func (idx *ModuleIndex) UpgradeStreams(target uint64) *modulemderrors.Error {
	if target < idx.streamFloor {
		return modulemderrors.New(modulemderrors.Upgrade, "cannot downgrade module index stream version").
			WithDetail("target", target)
	}
	return idx.raiseFloor(target)
}

// UpgradeDefaults upgrades every module's Defaults document in the
// index to target.
func (idx *ModuleIndex) UpgradeDefaults(target uint64) *modulemderrors.Error {
	for _, m := range idx.modules {
		if m.Defaults == nil {
			continue
		}
		upgraded, err := upgrade.Defaults(m.Defaults, target)
		if err != nil {
			return err
		}
		m.Defaults = upgraded
	}
	return nil
}

// SearchStreamsByGlob returns every stream across the index whose
// computed NSVCA string (name:stream:version[:context[:arch]]) matches
// nsvcaGlob, a shell-style glob as accepted by nsvca.Match; empty
// matches everything.
func (idx *ModuleIndex) SearchStreamsByGlob(nsvcaGlob string) ([]stream.ModuleStream, *modulemderrors.Error) {
	var out []stream.ModuleStream
	for _, name := range idx.ModuleNames() {
		for _, s := range idx.modules[name].SortedStreams() {
			if nsvcaGlob == "" || nsvca.Match(s.NSVCA(), nsvcaGlob) {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// CustomReadFunc is a pull callback reader: it fills buf and reports
// how many bytes it wrote, returning io.EOF once exhausted, matching
// the `read_fn(buffer, size) -> bytes_read` shape spec §6.2 specifies
// for update_from_custom.
type CustomReadFunc func(buf []byte) (int, error)

// customReader adapts a CustomReadFunc to io.Reader so it can reuse
// the same Router used by the other Update* entry points.
type customReader struct{ read CustomReadFunc }

func (c customReader) Read(buf []byte) (int, error) { return c.read(buf) }

// Failure pairs one subdocument's header (doctype/version if readable)
// with the error encountered while routing, parsing, or merging it.
// Update* return a non-nil error only when the stream itself cannot be
// read; a failed subdocument is reported only through Failures, so the
// error stays nil even when every subdocument failed.
type Failure struct {
	Info types.SubdocumentInfo
	Err  *modulemderrors.Error
}

// UpdateFromFile reads every subdocument from path and merges it into
// the index (spec §6.2 read_* family, index variant).
func (idx *ModuleIndex) UpdateFromFile(filePath string, strict bool) ([]Failure, *modulemderrors.Error) {
	infos, err := yamlio.NewRouter().ParseFile(filePath)
	if err != nil {
		return nil, wrapRouterErr(err)
	}
	return idx.updateFromInfos(infos, strict), nil
}

// UpdateFromString reads every subdocument from s and merges it into the index.
func (idx *ModuleIndex) UpdateFromString(s string, strict bool) ([]Failure, *modulemderrors.Error) {
	infos, err := yamlio.NewRouter().ParseString(s)
	if err != nil {
		return nil, wrapRouterErr(err)
	}
	return idx.updateFromInfos(infos, strict), nil
}

// UpdateFromStream reads every subdocument from r and merges it into the index.
func (idx *ModuleIndex) UpdateFromStream(r io.Reader, strict bool) ([]Failure, *modulemderrors.Error) {
	infos, err := yamlio.NewRouter().ParseStream(r)
	if err != nil {
		return nil, wrapRouterErr(err)
	}
	return idx.updateFromInfos(infos, strict), nil
}

// UpdateFromCustom reads every subdocument pulled from readFn and
// merges it into the index.
func (idx *ModuleIndex) UpdateFromCustom(readFn CustomReadFunc, strict bool) ([]Failure, *modulemderrors.Error) {
	return idx.UpdateFromStream(customReader{read: readFn}, strict)
}

func wrapRouterErr(err error) *modulemderrors.Error {
	if merr, ok := err.(*modulemderrors.Error); ok {
		return merr
	}
	return modulemderrors.Wrap(modulemderrors.YamlUnparseable, "reading module stream document", err)
}

// updateFromInfos merges every readable subdocument into the index,
// collecting (never aborting on) per-subdocument failures: a bad
// header, a schema violation, or a conflicting insert each fail only
// their own subdocument. It has no overall error result, whether or
// not any subdocument made it into the index.
func (idx *ModuleIndex) updateFromInfos(infos []types.SubdocumentInfo, strict bool) []Failure {
	var failures []Failure
	for _, info := range infos {
		if info.HasError() {
			merr, ok := info.Err.(*modulemderrors.Error)
			if !ok {
				merr = modulemderrors.Wrap(modulemderrors.YamlParse, "parsing subdocument header", info.Err)
			}
			failures = append(failures, Failure{Info: info, Err: merr})
			continue
		}
		if err := idx.addSubdocument(info, strict); err != nil {
			failures = append(failures, Failure{Info: info, Err: err})
		}
	}
	return failures
}

func (idx *ModuleIndex) addSubdocument(info types.SubdocumentInfo, strict bool) *modulemderrors.Error {
	switch info.Doctype {
	case "modulemd":
		s, err := stream.Parse(info, strict)
		if err != nil {
			return err
		}
		return idx.AddModuleStream(s.Name(), s)
	case "modulemd-defaults":
		d, err := defaults.Parse(info, strict)
		if err != nil {
			return err
		}
		return idx.AddDefaults(d)
	case "modulemd-translations":
		t, err := translation.Parse(info, strict)
		if err != nil {
			return err
		}
		return idx.AddTranslation(t)
	case "modulemd-obsoletes":
		o, err := obsoletes.Parse(info, strict)
		if err != nil {
			return err
		}
		return idx.AddObsoletes(o)
	case "modulemd-packager":
		p, err := packager.Parse(info, strict, "", "")
		if err != nil {
			return err
		}
		return idx.AddPackager(p, p.MDVersion)
	default:
		return modulemderrors.New(modulemderrors.YamlParse, fmt.Sprintf("unknown document type %q", info.Doctype))
	}
}

// DumpToFile writes every document in the index to path.
func (idx *ModuleIndex) DumpToFile(filePath string) *modulemderrors.Error {
	if err := yamlio.EmitDocumentsToFile(filePath, idx.documents()); err != nil {
		return wrapEmitErr(err)
	}
	return nil
}

// DumpToString renders every document in the index to a string.
func (idx *ModuleIndex) DumpToString() (string, *modulemderrors.Error) {
	s, err := yamlio.EmitDocumentsToString(idx.documents())
	if err != nil {
		return "", wrapEmitErr(err)
	}
	return s, nil
}

// DumpToStream writes every document in the index to w.
func (idx *ModuleIndex) DumpToStream(w io.Writer) *modulemderrors.Error {
	if err := yamlio.EmitDocuments(w, idx.documents()); err != nil {
		return wrapEmitErr(err)
	}
	return nil
}

func wrapEmitErr(err error) *modulemderrors.Error {
	if merr, ok := err.(*modulemderrors.Error); ok {
		return merr
	}
	return modulemderrors.Wrap(modulemderrors.YamlEmit, "emitting module index", err)
}

func (idx *ModuleIndex) documents() []yamlio.Document {
	var docs []yamlio.Document
	for _, name := range idx.ModuleNames() {
		m := idx.modules[name]
		for _, s := range m.SortedStreams() {
			docs = append(docs, stream.Emit(s))
		}
		if m.Defaults != nil {
			docs = append(docs, defaults.Emit(m.Defaults))
		}
		localeNames := make([]string, 0, len(m.Translations))
		for streamName := range m.Translations {
			localeNames = append(localeNames, streamName)
		}
		sort.Strings(localeNames)
		for _, streamName := range localeNames {
			docs = append(docs, translation.Emit(m.Translations[streamName]))
		}
		for _, o := range m.Obsoletes {
			docs = append(docs, obsoletes.Emit(o))
		}
	}
	return docs
}
