package packager

import (
	"fmt"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/buildorder"
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/types"
)

// Validator enforces the invariants applicable to a Packager document
// in isolation: required fields and the same component-graph/NEVRA
// checks every ModuleStream version runs (§4.6).
type Validator struct{}

// NewValidator returns a Packager Validator.
func NewValidator() *Validator { return &Validator{} }

// Validate checks required fields and the shared component-graph and
// NEVRA-format invariants.
func (v *Validator) Validate(p *Packager) []*modulemderrors.Error {
	var errs []*modulemderrors.Error
	if p.Name == "" {
		errs = append(errs, modulemderrors.MissingField("name"))
	}
	if p.Stream == "" {
		errs = append(errs, modulemderrors.MissingField("stream"))
	}

	components := make([]buildorder.Component, 0, len(p.RpmComponents)+len(p.ModuleComponents))
	for name, c := range p.RpmComponents {
		components = append(components, buildorder.Component{
			Name: name, HasOrder: c.HasOrder, Order: c.Order, BuildAfter: c.BuildAfter.Sorted(),
		})
	}
	for name, c := range p.ModuleComponents {
		components = append(components, buildorder.Component{
			Name: name, HasOrder: c.HasOrder, Order: c.Order, BuildAfter: c.BuildAfter.Sorted(),
		})
	}
	if err := buildorder.Validate(components); err != nil {
		if merr, ok := err.(*modulemderrors.Error); ok {
			errs = append(errs, merr)
		} else {
			errs = append(errs, modulemderrors.Wrap(modulemderrors.Validate, "component build graph", err))
		}
	}

	for _, artifact := range p.RpmArtifacts.Sorted() {
		if _, err := types.ParseNEVRA(artifact); err != nil {
			errs = append(errs, modulemderrors.ValidationError(
				fmt.Sprintf("rpm artifact %q is not a valid NEVRA", artifact),
				map[string]interface{}{"artifact": artifact}))
		}
	}

	return errs
}
