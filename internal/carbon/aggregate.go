package carbon

import (
	"github.com/carbyo/trip-carbon/internal/models"
)

// PeriodAggregate is the reduction of a set of trips for one
// (user, trip type, window) combination. It is computed on demand and never
// persisted.
type PeriodAggregate struct {
	Count            int     `json:"count"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalEmissionsKg float64 `json:"total_emissions_kg"`
}

// Aggregate reduces a list of trips into count, total distance and total
// emissions. Absent metrics contribute zero to the sums; the trip still
// counts. An empty or nil list yields the zero aggregate. The input is not
// modified and its order does not matter.
func Aggregate(trips []models.Trip) PeriodAggregate {
	agg := PeriodAggregate{Count: len(trips)}
	for _, trip := range trips {
		if trip.DistanceKm != nil {
			agg.TotalDistanceKm += *trip.DistanceKm
		}
		if trip.CO2EmissionsKg != nil {
			agg.TotalEmissionsKg += *trip.CO2EmissionsKg
		}
	}
	return agg
}
