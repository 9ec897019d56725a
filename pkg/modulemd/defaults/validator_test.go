package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/primitives"
)

func TestValidateRequiresModuleName(t *testing.T) {
	d := New("")
	errs := NewValidator().Validate(d)
	require.Len(t, errs, 1)
}

func TestValidateRejectsDisjointIntentProfileDefaults(t *testing.T) {
	d := New("bash")
	d.ProfileDefaults["rawhide"] = primitives.NewStringSet("default")
	d.Intents["server"] = Intent{
		ProfileDefaults: map[string]primitives.StringSet{
			"rawhide": primitives.NewStringSet("minimal"),
		},
	}

	errs := NewValidator().Validate(d)
	require.Len(t, errs, 1)
}

func TestValidateAllowsOverlappingIntentProfileDefaults(t *testing.T) {
	d := New("bash")
	d.ProfileDefaults["rawhide"] = primitives.NewStringSet("default", "minimal")
	d.Intents["server"] = Intent{
		ProfileDefaults: map[string]primitives.StringSet{
			"rawhide": primitives.NewStringSet("minimal"),
		},
	}

	errs := NewValidator().Validate(d)
	assert.Empty(t, errs)
}

func TestValidateIgnoresIntentStreamsNotInTopLevel(t *testing.T) {
	d := New("bash")
	d.Intents["server"] = Intent{
		ProfileDefaults: map[string]primitives.StringSet{
			"rawhide": primitives.NewStringSet("minimal"),
		},
	}

	errs := NewValidator().Validate(d)
	assert.Empty(t, errs)
}
