package carbon

import (
	"fmt"
	"math"
)

// Trend classifies the direction of a period-over-period change.
//
// For distance and emissions a decrease is favorable and an increase is
// unfavorable. Trip count carries no judgment and is always neutral. This
// mapping is a business rule, not styling: the presentation layer only
// translates the trend into a color.
type Trend string

const (
	TrendGood    Trend = "good"
	TrendBad     Trend = "bad"
	TrendNeutral Trend = "neutral"
)

// Unavailable is the display marker for a change that cannot be computed,
// either because there is no previous-period data or because the previous
// value is zero and a percentage would be undefined.
const Unavailable = "—"

// MetricChange describes how one metric moved between two periods.
//
// Available is false when no previous aggregate exists at all; the delta is
// then meaningless and must not be read as zero. Percent is nil whenever the
// previous value is not strictly positive.
type MetricChange struct {
	Available bool     `json:"available"`
	Delta     float64  `json:"delta"`
	Percent   *int     `json:"percent,omitempty"`
	Display   string   `json:"display"`
	Trend     Trend    `json:"trend"`
}

// Comparison is the result of comparing a current-period aggregate against
// the previous period, one change per metric.
type Comparison struct {
	Count     MetricChange `json:"count"`
	Distance  MetricChange `json:"distance"`
	Emissions MetricChange `json:"emissions"`
}

// Compare computes absolute deltas and relative percentage changes between
// the current aggregate and the previous one. A nil previous aggregate (first
// month of usage, or the previous-period fetch failed) yields a comparison
// where every metric is unavailable: reporting zeros there would falsely
// claim "no change".
func Compare(current PeriodAggregate, previous *PeriodAggregate) Comparison {
	if previous == nil {
		return Comparison{
			Count:     unavailableChange(),
			Distance:  unavailableChange(),
			Emissions: unavailableChange(),
		}
	}
	return Comparison{
		Count:     compareMetric(float64(current.Count), float64(previous.Count), false),
		Distance:  compareMetric(current.TotalDistanceKm, previous.TotalDistanceKm, true),
		Emissions: compareMetric(current.TotalEmissionsKg, previous.TotalEmissionsKg, true),
	}
}

func unavailableChange() MetricChange {
	return MetricChange{Display: Unavailable, Trend: TrendNeutral}
}

// compareMetric compares a single metric. lowerIsBetter applies the
// favorable/unfavorable mapping used for distance and emissions; trip count
// passes false and stays neutral whatever the sign.
func compareMetric(current, previous float64, lowerIsBetter bool) MetricChange {
	change := MetricChange{
		Available: true,
		Delta:     current - previous,
		Trend:     TrendNeutral,
	}

	if lowerIsBetter {
		switch {
		case change.Delta < 0:
			change.Trend = TrendGood
		case change.Delta > 0:
			change.Trend = TrendBad
		}
	}

	// A zero baseline makes any percentage undefined or infinite; it is
	// reported as unavailable regardless of the current value.
	if previous <= 0 {
		change.Display = Unavailable
		return change
	}

	pct := int(math.Round(change.Delta / previous * 100))
	change.Percent = &pct
	change.Display = formatPercent(change.Delta, pct)
	return change
}

func formatPercent(delta float64, pct int) string {
	sign := ""
	if delta > 0 {
		sign = "+"
	} else if delta < 0 {
		sign = "-"
	}
	if pct < 0 {
		pct = -pct
	}
	return fmt.Sprintf("%s%d%%", sign, pct)
}
