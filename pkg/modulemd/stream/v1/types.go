// Package v1 implements the original module stream schema: a single
// flat buildrequires/requires mapping and a scalar end-of-life date,
// both superseded by richer shapes in later versions.
package v1

import "github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/internal"

// Wire is v1's parsed body. v1's fields are a strict subset of the
// canonical StreamData shape, so Wire is that same struct rather than
// a parallel one; Parser only ever populates the v1-relevant fields
// and Validator only ever checks those.
type Wire = internal.StreamData
