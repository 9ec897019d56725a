// Package v2 implements the module stream schema version that
// replaced v1's flat buildrequires/requires mapping with a list of
// per-build-context Dependencies entries and the scalar eol with a
// full servicelevels map.
package v2

import "github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/internal"

// Wire is v2's parsed body, the canonical StreamData restricted to the
// fields v2 actually uses (no flat deps, no top-level eol).
type Wire = internal.StreamData
