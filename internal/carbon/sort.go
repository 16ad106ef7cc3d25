package carbon

import (
	"sort"

	"github.com/carbyo/trip-carbon/internal/models"
)

// SortTrips orders trips by trip date descending. Trips without a trip date
// sort after dated ones and fall back to the record-creation timestamp,
// newest first. The sort is stable so equal trips keep their fetch order.
func SortTrips(trips []models.Trip) {
	sort.SliceStable(trips, func(i, j int) bool {
		a, b := trips[i], trips[j]
		if a.TripDate != "" && b.TripDate != "" {
			return a.TripDate > b.TripDate
		}
		if a.TripDate != "" {
			return true
		}
		if b.TripDate != "" {
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
