package carbon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carbyo/trip-carbon/internal/models"
)

func TestSortTrips_ByDateDescending(t *testing.T) {
	trips := []models.Trip{
		{TripDate: "2026-07-02"},
		{TripDate: "2026-08-15"},
		{TripDate: "2026-01-30"},
	}

	SortTrips(trips)

	assert.Equal(t, "2026-08-15", trips[0].TripDate)
	assert.Equal(t, "2026-07-02", trips[1].TripDate)
	assert.Equal(t, "2026-01-30", trips[2].TripDate)
}

func TestSortTrips_UndatedSortLast(t *testing.T) {
	now := time.Now()
	trips := []models.Trip{
		{CreatedAt: now},
		{TripDate: "2020-01-01"},
	}

	SortTrips(trips)

	assert.Equal(t, "2020-01-01", trips[0].TripDate, "a dated trip outranks any undated one")
	assert.Empty(t, trips[1].TripDate)
}

func TestSortTrips_CreatedAtFallback(t *testing.T) {
	older := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)
	trips := []models.Trip{
		{OriginAddress: "a", CreatedAt: older},
		{OriginAddress: "b", CreatedAt: newer},
	}

	SortTrips(trips)

	assert.Equal(t, "b", trips[0].OriginAddress)
	assert.Equal(t, "a", trips[1].OriginAddress)
}
