// Package nsvca formats and matches the canonical module stream
// identifier (Name:Stream:Version[:Context[:Arch]]) and generates
// placeholder names for documents that don't carry one of their own.
package nsvca

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Format renders the canonical NSVCA string. Trailing empty optional
// segments (context, then arch) are omitted, matching the emission rule
// that absent/empty optional fields are never written out.
func Format(name, stream string, version uint64, context, arch string) string {
	parts := []string{name, stream, strconv.FormatUint(version, 10)}
	if arch != "" {
		parts = append(parts, context, arch)
	} else if context != "" {
		parts = append(parts, context)
	}
	return strings.Join(parts, ":")
}

// Match reports whether nsvca matches the given shell-style glob, using
// the same semantics as filepath.Match but operating over the whole
// colon-delimited identifier rather than path segments.
func Match(nsvcaStr, glob string) bool {
	ok, err := filepath.Match(glob, nsvcaStr)
	if err != nil {
		return false
	}
	return ok
}

// adjectives and nouns are a small, fixed word list; Placeholder only
// needs enough entropy to make collisions rare within one parse session,
// not to be globally unique (PlaceholderUnique handles true uniqueness).
var adjectives = []string{
	"amber", "brisk", "calm", "dusty", "eager", "faded", "gentle", "hollow",
	"icy", "jolly", "keen", "lively", "mellow", "noble", "opal", "plain",
	"quiet", "rustic", "sturdy", "tidy", "umber", "vivid", "warm", "young",
}

var nouns = []string{
	"anchor", "basin", "cedar", "delta", "ember", "fjord", "grove", "harbor",
	"island", "jasper", "kiln", "ledge", "meadow", "nectar", "orchard",
	"pebble", "quarry", "ridge", "summit", "thicket", "undertow", "valley",
	"willow", "zephyr",
}

// Placeholder deterministically derives an "adjective-noun" name from the
// given seed values, used whenever a document is parsed or constructed
// without a module_name/stream_name of its own.
func Placeholder(seed ...string) string {
	h := fnv.New64a()
	for _, s := range seed {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	sum := h.Sum64()
	adj := adjectives[sum%uint64(len(adjectives))]
	noun := nouns[(sum/uint64(len(adjectives)))%uint64(len(nouns))]
	return adj + "-" + noun
}

// PlaceholderUnique calls Placeholder and, if the result collides against
// existing, appends a short uuid-derived suffix until it no longer does.
func PlaceholderUnique(existing func(string) bool, seed ...string) string {
	name := Placeholder(seed...)
	if !existing(name) {
		return name
	}
	for i := 0; i < 8; i++ {
		candidate := fmt.Sprintf("%s-%s", name, uuid.New().String()[:8])
		if !existing(candidate) {
			return candidate
		}
	}
	return fmt.Sprintf("%s-%s", name, uuid.New().String())
}
