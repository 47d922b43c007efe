package authz_test

import (
	"testing"

	"github.com/fathomcrm/fathom/internal/authz"
	"github.com/fathomcrm/fathom/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPlanLevel(t *testing.T) {
	assert.Equal(t, 0, authz.PlanLevel(model.PlanFree))
	assert.Equal(t, 1, authz.PlanLevel(model.PlanBasic))
	assert.Equal(t, 2, authz.PlanLevel(model.PlanPremium))
	assert.Equal(t, -1, authz.PlanLevel(model.PlanName("enterprise")))
}

func TestPlanMeets(t *testing.T) {
	tests := []struct {
		name string
		have model.PlanName
		want model.PlanName
		meet bool
	}{
		{"free meets free", model.PlanFree, model.PlanFree, true},
		{"free below basic", model.PlanFree, model.PlanBasic, false},
		{"basic meets free", model.PlanBasic, model.PlanFree, true},
		{"basic meets basic", model.PlanBasic, model.PlanBasic, true},
		{"basic below premium", model.PlanBasic, model.PlanPremium, false},
		{"premium meets everything", model.PlanPremium, model.PlanBasic, true},
		{"unknown held plan fails", model.PlanName("enterprise"), model.PlanFree, false},
		{"unknown required plan is never satisfied", model.PlanPremium, model.PlanName("enterprise"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.meet, authz.PlanMeets(tt.have, tt.want))
		})
	}
}

func TestIsDowngrade(t *testing.T) {
	tests := []struct {
		name      string
		current   model.PlanName
		target    model.PlanName
		downgrade bool
	}{
		{"premium to basic", model.PlanPremium, model.PlanBasic, true},
		{"premium to free", model.PlanPremium, model.PlanFree, true},
		{"basic to free", model.PlanBasic, model.PlanFree, true},
		{"free to basic is an upgrade", model.PlanFree, model.PlanBasic, false},
		{"basic to premium is an upgrade", model.PlanBasic, model.PlanPremium, false},
		{"same plan is not a downgrade", model.PlanBasic, model.PlanBasic, false},
		{"unknown target always analyzed", model.PlanFree, model.PlanName("enterprise"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.downgrade, authz.IsDowngrade(tt.current, tt.target))
		})
	}
}

func TestPlansAtLeast(t *testing.T) {
	assert.Equal(t,
		[]model.PlanName{model.PlanFree, model.PlanBasic, model.PlanPremium},
		authz.PlansAtLeast(model.PlanFree))

	assert.Equal(t,
		[]model.PlanName{model.PlanBasic, model.PlanPremium},
		authz.PlansAtLeast(model.PlanBasic))

	assert.Equal(t,
		[]model.PlanName{model.PlanPremium},
		authz.PlansAtLeast(model.PlanPremium))

	assert.Nil(t, authz.PlansAtLeast(model.PlanName("enterprise")))
}
