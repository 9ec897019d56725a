// Package upgrade implements the version upgrade engine: ordered,
// single-step transformers registered by (entity kind, from version),
// chained to reach any target at or above the entity's current
// version. Downgrades and unresolvable paths are rejected; a failed
// step never mutates the caller's object, since every step operates on
// a deep copy taken before the chain starts (spec §4.4).
package upgrade

import (
	"fmt"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
)

// stepFunc transforms one version step for a single entity kind. It
// receives and returns the same underlying data pointer type,
// parameterized per kind by the concrete Upgrade* functions below.
type stepFunc[T any] func(T) (T, *modulemderrors.Error)

// chain walks current->target one registered step at a time, starting
// from a caller-supplied copy of data so a mid-chain failure leaves
// the original untouched.
func chain[T any](kind string, data T, currentVersion func(T) uint64, steps map[uint64]stepFunc[T], target uint64) (T, *modulemderrors.Error) {
	current := currentVersion(data)
	if target < current {
		var zero T
		return zero, modulemderrors.New(modulemderrors.Upgrade,
			fmt.Sprintf("%s: cannot downgrade from version %d to %d", kind, current, target))
	}
	for currentVersion(data) < target {
		v := currentVersion(data)
		step, ok := steps[v]
		if !ok {
			var zero T
			return zero, modulemderrors.New(modulemderrors.Upgrade,
				fmt.Sprintf("%s: no upgrade step registered from version %d", kind, v))
		}
		next, err := step(data)
		if err != nil {
			var zero T
			return zero, err
		}
		data = next
	}
	return data, nil
}
