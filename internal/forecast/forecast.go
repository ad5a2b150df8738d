// Package forecast produces per-period demand forecasts with an upper
// confidence bound, the shape the planning formulas consume. The model is a
// weekday-seasonal naive forecaster: the point estimate for a future day is
// the historical mean for that weekday, and the interval is a symmetric
// normal band on the residual standard deviation. Callers with a real
// forecasting service can skip this package and supply their own
// []planning.ForecastPoint.
package forecast

import (
	"errors"
	"time"

	"github.com/andresuchdata/invplan/internal/planning"
	"github.com/andresuchdata/invplan/internal/stats"
)

// DefaultIntervalWidth is the two-sided confidence interval width of the
// forecast band.
const DefaultIntervalWidth = 0.95

var (
	ErrEmptyHistory         = errors.New("forecast: demand history is empty")
	ErrInvalidHorizon       = errors.New("forecast: horizon must be positive")
	ErrInvalidIntervalWidth = errors.New("forecast: interval width must be within (0, 1)")
)

// Observation is a single dated demand observation.
type Observation struct {
	Date  time.Time
	Value float64
}

// Forecaster builds naive seasonal forecasts from dated demand history.
type Forecaster struct {
	intervalWidth float64
}

// New creates a forecaster with the given interval width. A zero width
// falls back to DefaultIntervalWidth.
func New(intervalWidth float64) (*Forecaster, error) {
	if intervalWidth == 0 {
		intervalWidth = DefaultIntervalWidth
	}
	if intervalWidth < 0 || intervalWidth >= 1 {
		return nil, ErrInvalidIntervalWidth
	}

	return &Forecaster{intervalWidth: intervalWidth}, nil
}

// Forecast returns horizon daily forecast points starting the day after the
// last observation. History does not need to be dense, but must be in
// chronological order.
func (f *Forecaster) Forecast(history []Observation, horizon int) ([]planning.ForecastPoint, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}
	if horizon <= 0 {
		return nil, ErrInvalidHorizon
	}

	overall, weekday := seasonalMeans(history)

	// Residuals against the seasonal mean drive the band width.
	residuals := make([]float64, len(history))
	for i, obs := range history {
		residuals[i] = obs.Value - expectedFor(obs.Date, overall, weekday)
	}
	sigma := stats.StdDev(residuals)

	// Two-sided interval: 0.95 width puts the upper bound at the 0.975
	// quantile.
	z := stats.NormalQuantile(0.5 + f.intervalWidth/2)
	band := z * sigma

	start := history[len(history)-1].Date
	points := make([]planning.ForecastPoint, horizon)
	for i := range points {
		date := start.AddDate(0, 0, i+1)
		yhat := expectedFor(date, overall, weekday)

		lower := yhat - band
		if lower < 0 {
			lower = 0
		}

		points[i] = planning.ForecastPoint{
			Date:      date,
			Yhat:      yhat,
			YhatLower: lower,
			YhatUpper: yhat + band,
		}
	}

	return points, nil
}

func seasonalMeans(history []Observation) (overall float64, weekday map[time.Weekday]float64) {
	sums := make(map[time.Weekday]float64, 7)
	counts := make(map[time.Weekday]int, 7)

	var total float64
	for _, obs := range history {
		day := obs.Date.Weekday()
		sums[day] += obs.Value
		counts[day]++
		total += obs.Value
	}

	weekday = make(map[time.Weekday]float64, len(sums))
	for day, sum := range sums {
		weekday[day] = sum / float64(counts[day])
	}

	return total / float64(len(history)), weekday
}

// expectedFor returns the seasonal mean for a date, falling back to the
// overall mean for weekdays with no observations.
func expectedFor(date time.Time, overall float64, weekday map[time.Weekday]float64) float64 {
	if mean, ok := weekday[date.Weekday()]; ok {
		return mean
	}

	return overall
}
