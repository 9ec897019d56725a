// Package v3 implements the latest module stream schema: a single
// flattened buildtime/runtime dependency mapping plus a required
// platform stream, replacing v2's Dependencies list (which may only
// collapse cleanly when it holds at most one entry).
package v3

import "github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream/internal"

// Wire is v3's parsed body, the canonical StreamData restricted to the
// fields v3 actually uses (flattened deps, platform; no dependency
// list, no flat v1 maps).
type Wire = internal.StreamData
