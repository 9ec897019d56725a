// Package buildorder validates and orders a stream's component build
// graph, expressed either via explicit buildorder integers or via
// buildafter name references (never both within the same stream).
package buildorder

import (
	"fmt"
	"sort"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
)

// Component is the minimal view buildorder needs of a stream component.
type Component struct {
	Name        string
	HasOrder    bool
	Order       int64
	BuildAfter  []string
}

// Validate enforces:
//   - buildorder and buildafter are mutually exclusive across all
//     components in one stream (spec invariant 3)
//   - every name in a buildafter set resolves to another component in
//     the same stream (spec invariant 4)
//   - the buildafter graph has no cycles
func Validate(components []Component) error {
	haveOrder, haveAfter := false, false
	byName := make(map[string]Component, len(components))
	for _, c := range components {
		byName[c.Name] = c
		if c.HasOrder {
			haveOrder = true
		}
		if len(c.BuildAfter) > 0 {
			haveAfter = true
		}
	}
	if haveOrder && haveAfter {
		return modulemderrors.New(modulemderrors.Validate,
			"components may use buildorder or buildafter, but not both within the same stream")
	}

	for _, c := range components {
		for _, target := range c.BuildAfter {
			if _, ok := byName[target]; !ok {
				return modulemderrors.New(modulemderrors.Validate,
					fmt.Sprintf("component %q has buildafter reference to unknown component %q", c.Name, target)).
					WithDetail("component", c.Name).WithDetail("target", target)
			}
		}
	}

	if haveAfter {
		if _, err := topoSort(components); err != nil {
			return err
		}
	}

	return nil
}

// TopoOrder returns component names in a stable dependency order
// (buildafter targets before their dependents; buildorder-sorted when
// buildorder is used instead). Used for deterministic emission.
func TopoOrder(components []Component) ([]string, error) {
	haveAfter := false
	for _, c := range components {
		if len(c.BuildAfter) > 0 {
			haveAfter = true
			break
		}
	}
	if !haveAfter {
		sorted := make([]Component, len(components))
		copy(sorted, components)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Order != sorted[j].Order {
				return sorted[i].Order < sorted[j].Order
			}
			return sorted[i].Name < sorted[j].Name
		})
		names := make([]string, len(sorted))
		for i, c := range sorted {
			names[i] = c.Name
		}
		return names, nil
	}
	return topoSort(components)
}

func topoSort(components []Component) ([]string, error) {
	byName := make(map[string]Component, len(components))
	names := make([]string, 0, len(components))
	for _, c := range components {
		byName[c.Name] = c
		names = append(names, c.Name)
	}
	sort.Strings(names)

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(names))
	var order []string

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch color[name] {
		case black:
			return nil
		case gray:
			return modulemderrors.New(modulemderrors.Validate,
				fmt.Sprintf("cycle detected in buildafter graph: %v", append(path, name)))
		}
		color[name] = gray
		deps := append([]string(nil), byName[name].BuildAfter...)
		sort.Strings(deps)
		for _, dep := range deps {
			if err := visit(dep, append(path, name)); err != nil {
				return err
			}
		}
		color[name] = black
		order = append(order, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}
