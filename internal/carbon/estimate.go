package carbon

// EstimateEmissions computes the CO₂ (kg) for a trip of distanceKm using the
// vehicle's own reference factor (g/km) when it has one, falling back to the
// generic per-energy factor (kg/km). Returns nil when the distance is not
// positive or no factor is known; the trip is then stored without emissions
// rather than with a fabricated zero.
func EstimateEmissions(distanceKm float64, vehicleGPerKm, genericKgPerKm *float64) *float64 {
	if distanceKm <= 0 {
		return nil
	}
	if vehicleGPerKm != nil {
		kg := distanceKm * *vehicleGPerKm / 1000.0
		return &kg
	}
	if genericKgPerKm != nil {
		kg := distanceKm * *genericKgPerKm
		return &kg
	}
	return nil
}
