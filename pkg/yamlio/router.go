package yamlio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
)

// Router implements the document-router algorithm: it walks a YAML
// stream one `---`/`...`-delimited subdocument at a time, reads the
// document/version header without descending into data, and continues
// past a subdocument whose header fails to parse rather than aborting
// the whole stream.
type Router struct{}

// NewRouter returns a Router. It carries no state of its own.
func NewRouter() *Router { return &Router{} }

// ParseFile reads and routes every subdocument in a file.
func (r *Router) ParseFile(path string) ([]types.SubdocumentInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, modulemderrors.Wrap(modulemderrors.FileAccess, fmt.Sprintf("opening %q", path), err)
	}
	defer f.Close()
	return r.ParseStream(f)
}

// ParseString routes every subdocument in s.
func (r *Router) ParseString(s string) ([]types.SubdocumentInfo, error) {
	return r.ParseStream(bytes.NewReader([]byte(s)))
}

// ParseStream routes every subdocument read from reader. The returned
// error is reserved for fatal conditions: I/O failure or YAML framing
// so broken the stream itself cannot be walked. A bad document/version
// header on one subdocument is recorded on that SubdocumentInfo and
// parsing continues with the next one.
func (r *Router) ParseStream(reader io.Reader) ([]types.SubdocumentInfo, error) {
	dec := yaml.NewDecoder(reader)
	sessionID := uuid.New().String()
	var out []types.SubdocumentInfo
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if err == io.EOF {
				break
			}
			return out, modulemderrors.Wrap(modulemderrors.YamlUnparseable, "malformed YAML stream", err)
		}
		out = append(out, r.routeSubdocument(&doc, sessionID))
	}
	return out, nil
}

func (r *Router) routeSubdocument(doc *yaml.Node, sessionID string) types.SubdocumentInfo {
	root := doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root = doc.Content[0]
	}

	mc, err := NewCursor(root).AsMapping()
	if err != nil {
		return types.SubdocumentInfo{Err: err, ParseSessionID: sessionID}
	}

	doctypeCursor, ok := mc.Field("document")
	if !ok {
		return types.SubdocumentInfo{Err: modulemderrors.MissingField("document").AtPosition(mc.Line(), mc.Column()), ParseSessionID: sessionID}
	}
	doctype, err := doctypeCursor.String()
	if err != nil {
		return types.SubdocumentInfo{Err: err, ParseSessionID: sessionID}
	}

	versionCursor, ok := mc.Field("version")
	if !ok {
		return types.SubdocumentInfo{Doctype: doctype, Err: modulemderrors.MissingField("version").AtPosition(mc.Line(), mc.Column()), ParseSessionID: sessionID}
	}
	version, err := versionCursor.Uint64()
	if err != nil {
		return types.SubdocumentInfo{Doctype: doctype, Err: err, ParseSessionID: sessionID}
	}

	info := types.SubdocumentInfo{Doctype: doctype, MDVersion: version, ParseSessionID: sessionID}
	if dataCursor, ok := mc.Field("data"); ok {
		raw, merr := yaml.Marshal(dataCursor.Node())
		if merr != nil {
			info.Err = modulemderrors.Wrap(modulemderrors.YamlParse, "re-serializing data section", merr)
			return info
		}
		info.Raw = raw
	}
	return info
}

// ParseDataNode parses the raw YAML slice captured on a SubdocumentInfo
// back into a node tree, for a variant parser to read with a Cursor.
func ParseDataNode(raw []byte) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, modulemderrors.Wrap(modulemderrors.YamlParse, "parsing data section", err)
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return node.Content[0], nil
	}
	return &node, nil
}
