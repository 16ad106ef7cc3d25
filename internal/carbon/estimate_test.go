package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateEmissions_VehicleFactorWins(t *testing.T) {
	got := EstimateEmissions(50, f(118), f(0.2))
	if assert.NotNil(t, got) {
		assert.InDelta(t, 5.9, *got, 1e-9)
	}
}

func TestEstimateEmissions_GenericFallback(t *testing.T) {
	got := EstimateEmissions(50, nil, f(0.104))
	if assert.NotNil(t, got) {
		assert.InDelta(t, 5.2, *got, 1e-9)
	}
}

func TestEstimateEmissions_NoFactor(t *testing.T) {
	assert.Nil(t, EstimateEmissions(50, nil, nil))
}

func TestEstimateEmissions_NonPositiveDistance(t *testing.T) {
	assert.Nil(t, EstimateEmissions(0, f(118), f(0.104)))
	assert.Nil(t, EstimateEmissions(-10, f(118), f(0.104)))
}
