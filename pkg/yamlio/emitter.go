package yamlio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/xmd"
)

// Document is one document/version/data triple ready for emission.
// Variant Emit methods build the Data node; Emitter wraps it with the
// header every subdocument carries.
type Document struct {
	Doctype string
	Version uint64
	Data    *yaml.Node
}

// Emitter wraps a yaml.Encoder, centralizing the header wrapping,
// string-quoting rule, and key ordering every variant's Emit relies on.
type Emitter struct {
	enc *yaml.Encoder
}

// NewEmitter returns an Emitter writing to w with two-space indent,
// matching the teacher's emitted-YAML style.
func NewEmitter(w io.Writer) *Emitter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &Emitter{enc: enc}
}

// Close flushes and releases the underlying encoder.
func (e *Emitter) Close() error {
	return e.enc.Close()
}

// EmitDocument writes one document/version/data subdocument.
func (e *Emitter) EmitDocument(doc Document) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		plainScalar("document"), QuoteScalar(doc.Doctype),
		plainScalar("version"), plainScalar(fmt.Sprintf("%d", doc.Version)),
	)
	if doc.Data != nil {
		root.Content = append(root.Content, plainScalar("data"), doc.Data)
	}
	if err := e.enc.Encode(root); err != nil {
		return modulemderrors.Wrap(modulemderrors.YamlEmit, "emitting document", err)
	}
	return nil
}

// EmitDocuments emits every document in order and closes the encoder.
func EmitDocuments(w io.Writer, docs []Document) error {
	e := NewEmitter(w)
	for _, doc := range docs {
		if err := e.EmitDocument(doc); err != nil {
			return err
		}
	}
	return e.Close()
}

// EmitDocumentsToFile emits every document to the named file.
func EmitDocumentsToFile(path string, docs []Document) error {
	f, err := os.Create(path)
	if err != nil {
		return modulemderrors.Wrap(modulemderrors.FileAccess, fmt.Sprintf("creating %q", path), err)
	}
	defer f.Close()
	return EmitDocuments(f, docs)
}

// EmitDocumentsToString renders every document to a string.
func EmitDocumentsToString(docs []Document) (string, error) {
	var buf bytes.Buffer
	if err := EmitDocuments(&buf, docs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func plainScalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// QuoteScalar applies the engine's string-quoting rule: empty,
// numeric-looking, or reserved-word scalars are emitted double-quoted.
func QuoteScalar(s string) *yaml.Node {
	n := plainScalar(s)
	if xmd.NeedsQuoting(s) {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

// QuoteStreamScalar always double-quotes, for the stream: key whose
// value must never be reinterpreted as a number by a downstream parser
// (losing trailing zero digits).
func QuoteStreamScalar(s string) *yaml.Node {
	n := plainScalar(s)
	n.Style = yaml.DoubleQuotedStyle
	return n
}

// WriteStringSet renders a set as a lexicographically sorted sequence.
func WriteStringSet(set primitives.StringSet) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, v := range set.Sorted() {
		n.Content = append(n.Content, QuoteScalar(v))
	}
	return n
}

// WriteStringStringMap renders a string->string map sorted by key.
func WriteStringStringMap(m map[string]string) *yaml.Node {
	keys := sortedKeys(m)
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		n.Content = append(n.Content, plainScalar(k), QuoteScalar(m[k]))
	}
	return n
}

// WriteNestedSet renders a string->set map sorted by key.
func WriteNestedSet(m map[string]primitives.StringSet) *yaml.Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		n.Content = append(n.Content, plainScalar(k), WriteStringSet(m[k]))
	}
	return n
}

// WriteVariant renders the recursive opaque XMD structure.
func WriteVariant(v xmd.Variant) *yaml.Node {
	return v.ToNode()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
