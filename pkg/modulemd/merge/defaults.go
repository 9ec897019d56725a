package merge

import (
	"fmt"
	"sort"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/defaults"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
)

type stringCandidate struct {
	value    string
	priority int
	order    int
}

type profileCandidate struct {
	set      primitives.StringSet
	priority int
	order    int
}

func mergeDefaults(moduleName string, sources []*sourceModule, override, strictDefaultStreams bool) (*defaults.Defaults, *modulemderrors.Error) {
	var present []*sourceModule
	for _, src := range sources {
		if src.m.Defaults != nil {
			present = append(present, src)
		}
	}
	if len(present) == 0 {
		return nil, nil
	}

	result := defaults.New(moduleName)

	defaultStream, err := mergeDefaultStream(moduleName, "", present, strictDefaultStreams)
	if err != nil {
		return nil, err
	}
	result.DefaultStream = defaultStream

	profileDefaults, err := mergeProfileDefaults(moduleName, present, override)
	if err != nil {
		return nil, err
	}
	result.ProfileDefaults = profileDefaults

	intents, err := mergeIntents(moduleName, present, override, strictDefaultStreams)
	if err != nil {
		return nil, err
	}
	result.Intents = intents

	return result, nil
}

func mergeDefaultStream(moduleName, intentName string, present []*sourceModule, strictDefaultStreams bool) (string, *modulemderrors.Error) {
	var candidates []stringCandidate
	for _, src := range present {
		v := defaultStreamValue(src.m.Defaults, intentName)
		if v == "" {
			continue
		}
		candidates = append(candidates, stringCandidate{value: v, priority: src.priority, order: src.order})
	}
	if len(candidates) == 0 {
		return "", nil
	}

	allEqual := true
	for _, c := range candidates[1:] {
		if c.value != candidates[0].value {
			allEqual = false
			break
		}
	}
	if allEqual {
		return candidates[0].value, nil
	}

	top := topPriority(len(candidates), func(i int) int { return candidates[i].priority })
	distinct := make(map[string]struct{})
	for _, i := range top {
		distinct[candidates[i].value] = struct{}{}
	}
	if len(distinct) == 1 {
		return candidates[top[0]].value, nil
	}
	if !strictDefaultStreams {
		return "", nil
	}
	label := moduleName
	if intentName != "" {
		label = fmt.Sprintf("%s intent %q", moduleName, intentName)
	}
	return "", modulemderrors.New(modulemderrors.MergeConflict,
		fmt.Sprintf("conflicting default stream for module %s at equal priority", label)).
		WithDetail("module", moduleName).WithDetail("intent", intentName)
}

func defaultStreamValue(d *defaults.Defaults, intentName string) string {
	if intentName == "" {
		return d.DefaultStream
	}
	if intent, ok := d.Intents[intentName]; ok {
		return intent.DefaultStream
	}
	return ""
}

func mergeProfileDefaults(moduleName string, present []*sourceModule, override bool) (map[string]primitives.StringSet, *modulemderrors.Error) {
	byStream := make(map[string][]profileCandidate)
	for _, src := range present {
		for streamName, set := range src.m.Defaults.ProfileDefaults {
			byStream[streamName] = append(byStream[streamName], profileCandidate{set: set, priority: src.priority, order: src.order})
		}
	}

	out := make(map[string]primitives.StringSet, len(byStream))
	for streamName, candidates := range byStream {
		winner, err := resolveProfileDefaultConflict(moduleName, streamName, candidates, override)
		if err != nil {
			return nil, err
		}
		out[streamName] = winner
	}
	return out, nil
}

func resolveProfileDefaultConflict(moduleName, streamName string, candidates []profileCandidate, override bool) (primitives.StringSet, *modulemderrors.Error) {
	allEqual := true
	for _, c := range candidates[1:] {
		if !primitives.Equal(c.set, candidates[0].set) {
			allEqual = false
			break
		}
	}
	if allEqual {
		return candidates[0].set, nil
	}

	top := topPriority(len(candidates), func(i int) int { return candidates[i].priority })
	if len(top) == 1 {
		return candidates[top[0]].set, nil
	}
	if override {
		return candidates[latestOrder(top, func(i int) int { return candidates[i].order })].set, nil
	}
	return primitives.StringSet{}, modulemderrors.New(modulemderrors.MergeConflict,
		fmt.Sprintf("conflicting profile defaults for module %q stream %q at equal priority", moduleName, streamName)).
		WithDetail("module", moduleName).WithDetail("stream", streamName)
}

func mergeIntents(moduleName string, present []*sourceModule, override, strictDefaultStreams bool) (map[string]defaults.Intent, *modulemderrors.Error) {
	names := make(map[string]struct{})
	for _, src := range present {
		for name := range src.m.Defaults.Intents {
			names[name] = struct{}{}
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	sortedNames := make([]string, 0, len(names))
	for n := range names {
		sortedNames = append(sortedNames, n)
	}
	sort.Strings(sortedNames)

	out := make(map[string]defaults.Intent, len(names))
	for _, intentName := range sortedNames {
		var withIntent []*sourceModule
		for _, src := range present {
			if _, ok := src.m.Defaults.Intents[intentName]; ok {
				withIntent = append(withIntent, src)
			}
		}

		defaultStream, err := mergeDefaultStream(moduleName, intentName, withIntent, strictDefaultStreams)
		if err != nil {
			return nil, err
		}

		byStream := make(map[string][]profileCandidate)
		for _, src := range withIntent {
			for streamName, set := range src.m.Defaults.Intents[intentName].ProfileDefaults {
				byStream[streamName] = append(byStream[streamName], profileCandidate{set: set, priority: src.priority, order: src.order})
			}
		}
		profileDefaults := make(map[string]primitives.StringSet, len(byStream))
		for streamName, candidates := range byStream {
			winner, err := resolveProfileDefaultConflict(moduleName, fmt.Sprintf("%s (intent %s)", streamName, intentName), candidates, override)
			if err != nil {
				return nil, err
			}
			profileDefaults[streamName] = winner
		}

		out[intentName] = defaults.Intent{DefaultStream: defaultStream, ProfileDefaults: profileDefaults}
	}
	return out, nil
}
