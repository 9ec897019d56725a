package defaults

import (
	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
)

// Validator enforces the invariants applicable to a Defaults document
// in isolation.
type Validator struct{}

// NewValidator returns a Defaults Validator.
func NewValidator() *Validator { return &Validator{} }

// Validate checks that the document names the module it describes,
// and that the top-level profile_defaults agree with every intent's
// profile_defaults for any stream they both name (spec §4.2): a
// stream may not appear under an intent's profile_defaults with a
// disjoint profile set from the top-level entry for that same stream.
func (v *Validator) Validate(d *Defaults) []*modulemderrors.Error {
	var errs []*modulemderrors.Error
	if d.ModuleName == "" {
		errs = append(errs, modulemderrors.MissingField("module"))
	}

	for streamName, topProfiles := range d.ProfileDefaults {
		for intentName, intent := range d.Intents {
			intentProfiles, ok := intent.ProfileDefaults[streamName]
			if !ok {
				continue
			}
			if !primitives.Intersects(topProfiles, intentProfiles) {
				errs = append(errs, modulemderrors.New(modulemderrors.Validate,
					"intent profile_defaults disjoint from top-level profile_defaults for stream").
					WithDetail("stream", streamName).WithDetail("intent", intentName))
			}
		}
	}

	return errs
}
