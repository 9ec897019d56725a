// Package merge implements the Merger (spec §4.5): an ordered, N-way
// combination of several ModuleIndex inputs, each carrying a priority,
// into a single resulting index. Inputs are consumed read-only; the
// result is an independent index built from copies.
package merge

import (
	"fmt"
	"sort"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/module"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/stream"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/translation"
)

type input struct {
	index    *module.ModuleIndex
	priority int
	order    int
}

// Merger accumulates indexes to combine and produces the merged result
// on Resolve. It mirrors the teacher's two-way MergeDatacenters grown
// into an ordered N-way priority merge with an explicit conflict type
// instead of silent last-one-wins.
type Merger struct {
	inputs []input
}

// New returns an empty Merger.
func New() *Merger { return &Merger{} }

// AddIndex registers idx at priority; later calls at equal priority
// are the "later-listed index" Resolve's override rule favors.
func (mg *Merger) AddIndex(idx *module.ModuleIndex, priority int) {
	mg.inputs = append(mg.inputs, input{index: idx, priority: priority, order: len(mg.inputs)})
}

// Resolve merges every added index into one. override controls how an
// equal-priority content conflict on streams/profile-defaults is
// settled (later-listed wins) instead of failing with MergeConflict.
// strictDefaultStreams controls how an equal-priority default_stream
// disagreement is settled (conflict) versus relaxed (no default
// stream) in the same situation.
func (mg *Merger) Resolve(override, strictDefaultStreams bool) (*module.ModuleIndex, *modulemderrors.Error) {
	names := make(map[string]struct{})
	for _, in := range mg.inputs {
		for _, n := range in.index.ModuleNames() {
			names[n] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	out := module.NewIndex()
	for _, name := range sorted {
		merged, err := mg.mergeModule(name, override, strictDefaultStreams)
		if err != nil {
			return nil, err
		}
		for _, s := range merged.SortedStreams() {
			if err := out.AddModuleStream(name, s); err != nil {
				return nil, err
			}
		}
		if merged.Defaults != nil {
			if err := out.AddDefaults(merged.Defaults); err != nil {
				return nil, err
			}
		}
		for _, streamName := range sortedTranslationKeys(merged.Translations) {
			if err := out.AddTranslation(merged.Translations[streamName]); err != nil {
				return nil, err
			}
		}
		for _, o := range merged.Obsoletes {
			if err := out.AddObsoletes(o); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func sortedTranslationKeys(m map[string]*translation.Translation) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (mg *Merger) mergeModule(name string, override, strictDefaultStreams bool) (*module.Module, *modulemderrors.Error) {
	result := module.New(name)

	var sources []*sourceModule
	for _, in := range mg.inputs {
		if m := in.index.GetModule(name); m != nil {
			sources = append(sources, &sourceModule{m: m, priority: in.priority, order: in.order})
		}
	}

	streams, err := mergeStreams(name, sources, override)
	if err != nil {
		return nil, err
	}
	result.Streams = streams

	d, err := mergeDefaults(name, sources, override, strictDefaultStreams)
	if err != nil {
		return nil, err
	}
	result.Defaults = d

	result.Translations = mergeTranslations(sources)
	result.Obsoletes = mergeObsoletes(sources)

	return result, nil
}

type sourceModule struct {
	m        *module.Module
	priority int
	order    int
}

type streamCandidate struct {
	s        stream.ModuleStream
	priority int
	order    int
}

func mergeStreams(moduleName string, sources []*sourceModule, override bool) (map[module.StreamKey]stream.ModuleStream, *modulemderrors.Error) {
	byKey := make(map[module.StreamKey][]streamCandidate)
	for _, src := range sources {
		for k, s := range src.m.Streams {
			byKey[k] = append(byKey[k], streamCandidate{s: s, priority: src.priority, order: src.order})
		}
	}

	out := make(map[module.StreamKey]stream.ModuleStream, len(byKey))
	for k, candidates := range byKey {
		winner, err := resolveStreamConflict(moduleName, k, candidates, override)
		if err != nil {
			return nil, err
		}
		out[k] = winner
	}
	return out, nil
}

func resolveStreamConflict(moduleName string, key module.StreamKey, candidates []streamCandidate, override bool) (stream.ModuleStream, *modulemderrors.Error) {
	allEqual := true
	for _, c := range candidates[1:] {
		if !stream.Equal(c.s, candidates[0].s) {
			allEqual = false
			break
		}
	}
	if allEqual {
		return candidates[0].s, nil
	}

	top := topPriority(len(candidates), func(i int) int { return candidates[i].priority })
	if len(top) == 1 {
		return candidates[top[0]].s, nil
	}
	if override {
		return candidates[latestOrder(top, func(i int) int { return candidates[i].order })].s, nil
	}
	return nil, modulemderrors.New(modulemderrors.MergeConflict,
		fmt.Sprintf("conflicting content for module %q stream %s at equal priority", moduleName, key.Stream)).
		WithDetail("module", moduleName).WithDetail("stream", key.Stream).WithDetail("version", key.Version).
		WithDetail("context", key.Context).WithDetail("arch", key.Arch)
}

// topPriority returns the indices (0..n-1, via the priority(i) lookup)
// that share the maximum priority.
func topPriority(n int, priority func(int) int) []int {
	max := priority(0)
	for i := 1; i < n; i++ {
		if p := priority(i); p > max {
			max = p
		}
	}
	var out []int
	for i := 0; i < n; i++ {
		if priority(i) == max {
			out = append(out, i)
		}
	}
	return out
}

func latestOrder(indices []int, order func(int) int) int {
	best := indices[0]
	for _, i := range indices[1:] {
		if order(i) > order(best) {
			best = i
		}
	}
	return best
}
