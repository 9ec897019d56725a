package v1

import (
	"fmt"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/buildorder"
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
)

// Validator enforces the invariants applicable to a v1 stream body.
type Validator struct{}

// NewValidator returns a v1 Validator.
func NewValidator() *Validator { return &Validator{} }

// Validate checks required fields and the shared component-graph,
// arch-subset, and NEVRA-format invariants.
func (v *Validator) Validate(w *Wire) []*modulemderrors.Error {
	var errs []*modulemderrors.Error

	if w.Name == "" {
		errs = append(errs, modulemderrors.MissingField("name"))
	}
	if w.Stream == "" {
		errs = append(errs, modulemderrors.MissingField("stream"))
	}

	if err := validateComponentGraph(w.RpmComponents, w.ModuleComponents); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, validateArchSubset(w)...)
	errs = append(errs, validateNEVRAFormat(w)...)

	return errs
}

func validateComponentGraph(rpmComponents map[string]*types.ComponentRpm, moduleComponents map[string]*types.ComponentModule) *modulemderrors.Error {
	components := make([]buildorder.Component, 0, len(rpmComponents)+len(moduleComponents))
	for name, c := range rpmComponents {
		components = append(components, buildorder.Component{
			Name: name, HasOrder: c.HasOrder, Order: c.Order, BuildAfter: c.BuildAfter.Sorted(),
		})
	}
	for name, c := range moduleComponents {
		components = append(components, buildorder.Component{
			Name: name, HasOrder: c.HasOrder, Order: c.Order, BuildAfter: c.BuildAfter.Sorted(),
		})
	}
	if err := buildorder.Validate(components); err != nil {
		if merr, ok := err.(*modulemderrors.Error); ok {
			return merr
		}
		return modulemderrors.Wrap(modulemderrors.Validate, "component build graph", err)
	}
	return nil
}

func validateArchSubset(w *Wire) []*modulemderrors.Error {
	var errs []*modulemderrors.Error
	if w.Buildopts == nil || w.Buildopts.Arches.Len() == 0 {
		return errs
	}
	for name, c := range w.RpmComponents {
		for _, arch := range c.Arches.Sorted() {
			if !w.Buildopts.Arches.Contains(arch) {
				errs = append(errs, modulemderrors.ValidationError(
					fmt.Sprintf("component %q lists arch %q not in buildopts.arches", name, arch),
					map[string]interface{}{"component": name, "arch": arch}))
			}
		}
	}
	return errs
}

func validateNEVRAFormat(w *Wire) []*modulemderrors.Error {
	var errs []*modulemderrors.Error
	for _, artifact := range w.RpmArtifacts.Sorted() {
		if _, err := types.ParseNEVRA(artifact); err != nil {
			errs = append(errs, modulemderrors.ValidationError(
				fmt.Sprintf("rpm artifact %q is not a valid NEVRA", artifact),
				map[string]interface{}{"artifact": artifact}))
		}
	}
	return errs
}
