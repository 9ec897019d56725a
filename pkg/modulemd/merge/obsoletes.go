package merge

import (
	"sort"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/obsoletes"
)

type obsoletesCandidate struct {
	o     *obsoletes.Obsoletes
	order int
}

// mergeObsoletes merges every source's obsoletes history per stream
// name (spec §4.5.4): the record with the largest Modified (the
// later-listed source breaking ties) is the winner for that stream. If the winner has
// reset=true, it alone survives — every other record for that stream,
// regardless of source, is discarded. Otherwise the full accumulated
// history for that stream survives, oldest first, so a reader can see
// how the deprecation evolved.
func mergeObsoletes(sources []*sourceModule) []*obsoletes.Obsoletes {
	byStream := make(map[string][]obsoletesCandidate)
	var streamOrder []string
	for _, src := range sources {
		for _, o := range src.m.Obsoletes {
			if _, ok := byStream[o.ModuleStream]; !ok {
				streamOrder = append(streamOrder, o.ModuleStream)
			}
			byStream[o.ModuleStream] = append(byStream[o.ModuleStream], obsoletesCandidate{o: o, order: src.order})
		}
	}

	out := make([]*obsoletes.Obsoletes, 0, len(streamOrder))
	for _, streamName := range streamOrder {
		candidates := byStream[streamName]
		winner := candidates[0]
		for _, c := range candidates[1:] {
			if c.o.Modified > winner.o.Modified || (c.o.Modified == winner.o.Modified && c.order > winner.order) {
				winner = c
			}
		}
		if winner.o.Reset {
			out = append(out, winner.o)
			continue
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].o.Modified < candidates[j].o.Modified
		})
		for _, c := range candidates {
			out = append(out, c.o)
		}
	}
	return out
}
