package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbyo/trip-carbon/internal/models"
)

func f(v float64) *float64 { return &v }

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, PeriodAggregate{}, Aggregate(nil))
	assert.Equal(t, PeriodAggregate{}, Aggregate([]models.Trip{}))
}

func TestAggregate_AbsentMetricsCountButSumZero(t *testing.T) {
	trips := []models.Trip{
		{DistanceKm: f(10), CO2EmissionsKg: f(1.2)},
		{DistanceKm: f(5), CO2EmissionsKg: f(0.5)},
		{}, // no completed calculation yet
	}

	agg := Aggregate(trips)

	assert.Equal(t, 3, agg.Count)
	assert.InDelta(t, 15.0, agg.TotalDistanceKm, 1e-9)
	assert.InDelta(t, 1.7, agg.TotalEmissionsKg, 1e-9)
}

func TestAggregate_PartiallyAbsent(t *testing.T) {
	trips := []models.Trip{
		{DistanceKm: f(12.5)},
		{CO2EmissionsKg: f(0.8)},
	}

	agg := Aggregate(trips)

	assert.Equal(t, 2, agg.Count)
	assert.InDelta(t, 12.5, agg.TotalDistanceKm, 1e-9)
	assert.InDelta(t, 0.8, agg.TotalEmissionsKg, 1e-9)
}

func TestAggregate_Additivity(t *testing.T) {
	trips := []models.Trip{
		{DistanceKm: f(3.2), CO2EmissionsKg: f(0.41)},
		{DistanceKm: f(18), CO2EmissionsKg: f(2.3)},
		{DistanceKm: f(0.9)},
		{CO2EmissionsKg: f(1.05)},
		{},
		{DistanceKm: f(250), CO2EmissionsKg: f(31.7)},
	}

	whole := Aggregate(trips)
	for cut := 0; cut <= len(trips); cut++ {
		left := Aggregate(trips[:cut])
		right := Aggregate(trips[cut:])

		assert.Equal(t, whole.Count, left.Count+right.Count)
		assert.InDelta(t, whole.TotalDistanceKm, left.TotalDistanceKm+right.TotalDistanceKm, 1e-9)
		assert.InDelta(t, whole.TotalEmissionsKg, left.TotalEmissionsKg+right.TotalEmissionsKg, 1e-9)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	trips := []models.Trip{
		{DistanceKm: f(1.1), CO2EmissionsKg: f(0.2)},
		{DistanceKm: f(2.2), CO2EmissionsKg: f(0.3)},
		{DistanceKm: f(3.3), CO2EmissionsKg: f(0.4)},
	}
	reversed := []models.Trip{trips[2], trips[1], trips[0]}

	a := Aggregate(trips)
	b := Aggregate(reversed)

	assert.Equal(t, a.Count, b.Count)
	assert.InDelta(t, a.TotalDistanceKm, b.TotalDistanceKm, 1e-9)
	assert.InDelta(t, a.TotalEmissionsKg, b.TotalEmissionsKg, 1e-9)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	d := 7.0
	trips := []models.Trip{{DistanceKm: &d, CO2EmissionsKg: f(0.9)}}

	_ = Aggregate(trips)

	assert.Equal(t, 7.0, *trips[0].DistanceKm)
	assert.Equal(t, 0.9, *trips[0].CO2EmissionsKg)
}

// Negative upstream values pass through arithmetically, they are not clamped.
func TestAggregate_NegativeValuesPassThrough(t *testing.T) {
	trips := []models.Trip{
		{DistanceKm: f(10), CO2EmissionsKg: f(1.0)},
		{DistanceKm: f(-4), CO2EmissionsKg: f(-0.25)},
	}

	agg := Aggregate(trips)

	assert.InDelta(t, 6.0, agg.TotalDistanceKm, 1e-9)
	assert.InDelta(t, 0.75, agg.TotalEmissionsKg, 1e-9)
}
