package types

import (
	"fmt"
	"strconv"
	"strings"
)

// RpmMapEntry is a parsed NEVRA (name-[epoch:]version-release.arch)
// string, used to validate the entries of a stream's rpm_artifacts
// set and to answer nevra-pattern lookups without re-parsing the raw
// string on every query.
type RpmMapEntry struct {
	Name    string
	Epoch   *uint64
	Version string
	Release string
	Arch    string
}

// ParseNEVRA decomposes a NEVRA string. The epoch prefix is optional;
// when absent Epoch is nil rather than defaulting to zero, so that
// "foo-1.0-1.x86_64" and "foo-0:1.0-1.x86_64" remain distinguishable.
func ParseNEVRA(s string) (RpmMapEntry, error) {
	dot := strings.LastIndex(s, ".")
	if dot < 0 || dot == len(s)-1 {
		return RpmMapEntry{}, fmt.Errorf("nevra %q: missing arch suffix", s)
	}
	arch := s[dot+1:]
	rest := s[:dot]

	dash := strings.LastIndex(rest, "-")
	if dash < 0 {
		return RpmMapEntry{}, fmt.Errorf("nevra %q: missing release", s)
	}
	release := rest[dash+1:]
	rest = rest[:dash]

	dash = strings.LastIndex(rest, "-")
	if dash < 0 {
		return RpmMapEntry{}, fmt.Errorf("nevra %q: missing version", s)
	}
	evr := rest[dash+1:]
	name := rest[:dash]
	if name == "" || release == "" || arch == "" {
		return RpmMapEntry{}, fmt.Errorf("nevra %q: empty component", s)
	}

	entry := RpmMapEntry{Name: name, Release: release, Arch: arch}
	if colon := strings.Index(evr, ":"); colon >= 0 {
		epochStr, version := evr[:colon], evr[colon+1:]
		epoch, err := strconv.ParseUint(epochStr, 10, 64)
		if err != nil {
			return RpmMapEntry{}, fmt.Errorf("nevra %q: invalid epoch %q", s, epochStr)
		}
		entry.Epoch = &epoch
		entry.Version = version
	} else {
		entry.Version = evr
	}
	if entry.Version == "" {
		return RpmMapEntry{}, fmt.Errorf("nevra %q: empty component", s)
	}
	return entry, nil
}

// String renders the entry back to NEVRA form.
func (e RpmMapEntry) String() string {
	version := e.Version
	if e.Epoch != nil {
		version = fmt.Sprintf("%d:%s", *e.Epoch, version)
	}
	return fmt.Sprintf("%s-%s-%s.%s", e.Name, version, e.Release, e.Arch)
}

// MatchesName reports whether the entry's name equals name, the
// predicate backing a stream's includes-nevra-by-name queries.
func (e RpmMapEntry) MatchesName(name string) bool {
	return e.Name == name
}
