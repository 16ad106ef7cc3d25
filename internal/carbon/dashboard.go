package carbon

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/carbyo/trip-carbon/internal/models"
)

// TripRepository is the fetch boundary the dashboard reads through. A nil
// window means no date filter (all-time). Implementations return trips
// already scoped to the user and trip type, sorted trip date descending.
type TripRepository interface {
	FetchTrips(ctx context.Context, userID, tripType string, window *Window) ([]models.Trip, error)
}

// KPIPeriod distinguishes the two tile variants on the cockpit.
type KPIPeriod string

const (
	PeriodMonth KPIPeriod = "month"
	PeriodTotal KPIPeriod = "total"
)

// KPIItem is one display-ready dashboard tile: an aggregate for a trip type
// and period, the previous-period aggregate when one exists, the
// per-metric changes, and the aggregate emission intensity.
//
// Unavailable is set when the fetch backing the tile itself failed; the
// presentation layer shows an explicit error state rather than zeros.
type KPIItem struct {
	TripType    string           `json:"trip_type"`
	Period      KPIPeriod        `json:"period"`
	Unavailable bool             `json:"unavailable,omitempty"`
	Current     PeriodAggregate  `json:"current"`
	Previous    *PeriodAggregate `json:"previous,omitempty"`
	Changes     Comparison       `json:"changes"`
	Intensity   *float64         `json:"intensity_g_per_km,omitempty"`
	Severity    *float64         `json:"intensity_severity,omitempty"`
}

// Dashboard assembles KPI tiles from trip data. The repository is injected
// so tests substitute an in-memory fake; the assembler itself holds no
// mutable state and only reads.
type Dashboard struct {
	repo  TripRepository
	scale Scale
}

// NewDashboard creates a dashboard assembler over a trip repository.
func NewDashboard(repo TripRepository, scale Scale) *Dashboard {
	return &Dashboard{repo: repo, scale: scale}
}

// tripTypes are the classifications the cockpit shows, in display order.
var tripTypes = []string{models.TripPersonal, models.TripProfessional}

// Build produces the full KPI set for a user: for each trip type, a
// current-month tile with previous-month comparison and an all-time tile.
// The three fetches behind a trip type run concurrently; trip types are
// built concurrently too and joined before returning. The only error Build
// returns is context cancellation — fetch failures degrade the affected
// tiles instead of blanking the dashboard.
func (d *Dashboard) Build(ctx context.Context, userID string, ref time.Time) ([]KPIItem, error) {
	items := make([][]KPIItem, len(tripTypes))

	var wg sync.WaitGroup
	for i, tripType := range tripTypes {
		wg.Add(1)
		go func(i int, tripType string) {
			defer wg.Done()
			items[i] = d.buildType(ctx, userID, tripType, ref)
		}(i, tripType)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]KPIItem, 0, 2*len(tripTypes))
	for _, pair := range items {
		out = append(out, pair...)
	}
	return out, nil
}

// BuildType produces the month and total tiles for a single trip type,
// letting callers refresh one classification without rebuilding the rest.
func (d *Dashboard) BuildType(ctx context.Context, userID, tripType string, ref time.Time) []KPIItem {
	return d.buildType(ctx, userID, tripType, ref)
}

type fetchResult struct {
	agg PeriodAggregate
	err error
}

func (d *Dashboard) buildType(ctx context.Context, userID, tripType string, ref time.Time) []KPIItem {
	currentWin := CurrentMonthWindow(ref)
	previousWin := PreviousMonthWindow(ref)

	var wg sync.WaitGroup
	var current, previous, total fetchResult

	fetch := func(dst *fetchResult, window *Window) {
		defer wg.Done()
		trips, err := d.repo.FetchTrips(ctx, userID, tripType, window)
		if err != nil {
			dst.err = err
			return
		}
		dst.agg = Aggregate(trips)
	}

	wg.Add(3)
	go fetch(&current, &currentWin)
	go fetch(&previous, &previousWin)
	go fetch(&total, nil)
	wg.Wait()

	// A previous-month failure only costs the deltas; the current tile
	// still renders.
	var prevAgg *PeriodAggregate
	if previous.err != nil {
		log.WithFields(log.Fields{
			"user_id":   userID,
			"trip_type": tripType,
		}).WithError(previous.err).Warn("previous-month fetch failed, deltas unavailable")
	} else {
		prevAgg = &previous.agg
	}

	monthItem := d.buildKPI(tripType, PeriodMonth, current.agg, prevAgg)
	if current.err != nil {
		log.WithFields(log.Fields{
			"user_id":   userID,
			"trip_type": tripType,
		}).WithError(current.err).Error("current-month fetch failed")
		monthItem = unavailableKPI(tripType, PeriodMonth)
	}

	totalItem := d.buildKPI(tripType, PeriodTotal, total.agg, nil)
	if total.err != nil {
		log.WithFields(log.Fields{
			"user_id":   userID,
			"trip_type": tripType,
		}).WithError(total.err).Error("all-time fetch failed")
		totalItem = unavailableKPI(tripType, PeriodTotal)
	}

	return []KPIItem{monthItem, totalItem}
}

// buildKPI is the pure transform from aggregates to one tile. Total tiles
// pass previous == nil: there is no "previous all-time", so every change is
// unavailable by construction, while intensity is still computed.
func (d *Dashboard) buildKPI(tripType string, period KPIPeriod, current PeriodAggregate, previous *PeriodAggregate) KPIItem {
	item := KPIItem{
		TripType: tripType,
		Period:   period,
		Current:  current,
		Previous: previous,
		Changes:  Compare(current, previous),
	}
	item.Intensity = Intensity(&current.TotalEmissionsKg, &current.TotalDistanceKm)
	if item.Intensity != nil {
		sev := d.scale.Severity(*item.Intensity)
		item.Severity = &sev
	}
	return item
}

func unavailableKPI(tripType string, period KPIPeriod) KPIItem {
	return KPIItem{
		TripType:    tripType,
		Period:      period,
		Unavailable: true,
		Changes:     Compare(PeriodAggregate{}, nil),
	}
}
