package carbon

// Intensity derives grams of CO₂ per kilometer from an emissions total (kg)
// and a distance (km). It is defined only when both inputs are present and
// the distance is strictly positive; anything else returns nil. Treating an
// absent distance as zero would either divide by zero or fabricate a "zero
// intensity", both of which are wrong.
func Intensity(emissionsKg, distanceKm *float64) *float64 {
	if emissionsKg == nil || distanceKm == nil || *distanceKm <= 0 {
		return nil
	}
	g := (*emissionsKg * 1000) / *distanceKm
	return &g
}

// Band is an intensity severity category, ordered from least to most severe.
type Band int

const (
	BandLow Band = iota
	BandModerate
	BandHigh
	BandSevere
)

// Scale classifies an intensity value against a set of ascending breakpoints
// (g/km). The default breakpoints are product-tuned, so they are carried as
// data rather than baked into the computation.
type Scale struct {
	Breakpoints []float64
}

// DefaultScale returns the gradient the mobile app ships with.
func DefaultScale() Scale {
	return Scale{Breakpoints: []float64{0, 80, 150, 220, 300}}
}

// Severity maps an intensity to [0, 1] by piecewise-linear interpolation
// across the breakpoints. Values below the first breakpoint clamp to 0,
// values above the last clamp to 1. Lower intensity always means lower
// severity.
func (s Scale) Severity(gPerKm float64) float64 {
	bps := s.Breakpoints
	if len(bps) < 2 {
		return 0
	}
	if gPerKm <= bps[0] {
		return 0
	}
	last := len(bps) - 1
	if gPerKm >= bps[last] {
		return 1
	}
	for i := 0; i < last; i++ {
		if gPerKm < bps[i+1] {
			t := (gPerKm - bps[i]) / (bps[i+1] - bps[i])
			return (float64(i) + t) / float64(last)
		}
	}
	return 1
}

// Band returns the severity category the value falls into: one category per
// breakpoint segment, clamped at both ends.
func (s Scale) Band(gPerKm float64) Band {
	bps := s.Breakpoints
	if len(bps) < 2 {
		return BandLow
	}
	last := len(bps) - 1
	if gPerKm >= bps[last] {
		return Band(last - 1)
	}
	for i := 0; i < last; i++ {
		if gPerKm < bps[i+1] {
			return Band(i)
		}
	}
	return BandLow
}
