package obsoletes

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
)

// Validator enforces the invariants applicable to an Obsoletes document
// in isolation.
type Validator struct{}

// NewValidator returns an Obsoletes Validator.
func NewValidator() *Validator { return &Validator{} }

// Validate checks required fields.
func (v *Validator) Validate(o *Obsoletes) []*modulemderrors.Error {
	var errs []*modulemderrors.Error
	if o.ModuleName == "" {
		errs = append(errs, modulemderrors.MissingField("module"))
	}
	if o.ModuleStream == "" {
		errs = append(errs, modulemderrors.MissingField("stream"))
	}
	return errs
}
