package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	e := New(Validate, "bad buildorder")
	assert.Equal(t, "[VALIDATE] bad buildorder", e.Error())

	wrapped := Wrap(YamlParse, "failed to parse", fmt.Errorf("boom"))
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestParseCarriesPosition(t *testing.T) {
	e := Parse("unexpected scalar", 12, 4)
	assert.Equal(t, 12, e.Line)
	assert.Equal(t, 4, e.Column)
	assert.Contains(t, e.Error(), "line 12, column 4")
}

func TestIsUnwraps(t *testing.T) {
	inner := New(MergeConflict, "conflict")
	outer := fmt.Errorf("outer: %w", inner)
	assert.True(t, Is(outer, MergeConflict))
	assert.False(t, Is(outer, Upgrade))
}

func TestWithDetail(t *testing.T) {
	e := New(Validate, "x").WithDetail("field", "name").WithDetails(map[string]interface{}{"other": 1})
	assert.Equal(t, "name", e.Details["field"])
	assert.Equal(t, 1, e.Details["other"])
}
