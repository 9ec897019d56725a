package buildorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRejectsMixedOrderAndAfter(t *testing.T) {
	err := Validate([]Component{
		{Name: "a", HasOrder: true, Order: 1},
		{Name: "b", BuildAfter: []string{"a"}},
	})
	assert.Error(t, err)
}

func TestValidateRejectsUnknownBuildAfterTarget(t *testing.T) {
	err := Validate([]Component{
		{Name: "a", BuildAfter: []string{"ghost"}},
	})
	assert.Error(t, err)
}

func TestValidateRejectsCycle(t *testing.T) {
	err := Validate([]Component{
		{Name: "a", BuildAfter: []string{"b"}},
		{Name: "b", BuildAfter: []string{"a"}},
	})
	assert.Error(t, err)
}

func TestTopoOrderBuildAfter(t *testing.T) {
	order, err := TopoOrder([]Component{
		{Name: "c", BuildAfter: []string{"b"}},
		{Name: "b", BuildAfter: []string{"a"}},
		{Name: "a"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestTopoOrderBuildOrder(t *testing.T) {
	order, err := TopoOrder([]Component{
		{Name: "z", HasOrder: true, Order: 1},
		{Name: "a", HasOrder: true, Order: 0},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "z"}, order)
}
