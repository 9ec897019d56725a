package translation

import (
	"regexp"

	modulemderrors "github.com/fedora-modularity/libmodulemd-sub004/pkg/errors"
)

// localePattern matches libc locale names: a language code, optionally
// followed by an underscore and territory, and optionally a dot-
// separated codeset (e.g. "cs", "cs_CZ", "en_US.UTF-8"), plus the
// special locale "C" every implementation recognizes.
var localePattern = regexp.MustCompile(`^(C|[a-z]{2,3}(_[A-Z]{2,3})?(\.[A-Za-z0-9-]+)?(@[a-z]+)?)$`)

// Validator enforces the invariants applicable to a Translation
// document in isolation.
type Validator struct{}

// NewValidator returns a Translation Validator.
func NewValidator() *Validator { return &Validator{} }

// Validate checks required fields and locale-name conformance
// (spec invariant 6).
func (v *Validator) Validate(t *Translation) []*modulemderrors.Error {
	var errs []*modulemderrors.Error
	if t.ModuleName == "" {
		errs = append(errs, modulemderrors.MissingField("module"))
	}
	if t.ModuleStream == "" {
		errs = append(errs, modulemderrors.MissingField("stream"))
	}
	for locale := range t.Entries {
		if !localePattern.MatchString(locale) {
			errs = append(errs, modulemderrors.ValidationError(
				"translation locale does not conform to libc locale naming",
				map[string]interface{}{"locale": locale}))
		}
	}
	return errs
}
