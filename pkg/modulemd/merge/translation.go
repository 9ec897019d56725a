package merge

import (
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/translation"
)

type translationCandidate struct {
	t     *translation.Translation
	order int
}

// mergeTranslations picks, per stream name, the translation with the
// largest Modified timestamp; priority is never consulted (spec
// §4.5.3). A tie on Modified is broken by insertion order (the
// later-added input wins), since the spec leaves simultaneous-modified
// ties unspecified and a deterministic result is still required.
func mergeTranslations(sources []*sourceModule) map[string]*translation.Translation {
	byStream := make(map[string][]translationCandidate)
	for _, src := range sources {
		for streamName, t := range src.m.Translations {
			byStream[streamName] = append(byStream[streamName], translationCandidate{t: t, order: src.order})
		}
	}

	out := make(map[string]*translation.Translation, len(byStream))
	for streamName, candidates := range byStream {
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.t.Modified > best.t.Modified || (c.t.Modified == best.t.Modified && c.order > best.order) {
				best = c
			}
		}
		out[streamName] = best.t
	}
	return out
}
