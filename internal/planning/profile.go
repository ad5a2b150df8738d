package planning

import "github.com/andresuchdata/invplan/internal/stats"

// trendWindow is the number of trailing/leading observations compared to
// call a demand series growing or declining.
const trendWindow = 30

// DemandTrend is the direction of a demand series.
type DemandTrend string

const (
	TrendGrowing   DemandTrend = "growing"
	TrendDeclining DemandTrend = "declining"
	TrendFlat      DemandTrend = "flat"
)

// DemandProfile summarizes a historical demand sample.
type DemandProfile struct {
	Max        float64     `json:"max"`
	Min        float64     `json:"min"`
	Mean       float64     `json:"mean"`
	Volatility float64     `json:"volatility"`
	Trend      DemandTrend `json:"trend"`
}

// ProfileDemand computes summary statistics for a demand sample. Volatility
// is the population standard deviation. The trend compares the mean of the
// trailing window against the leading window; for short samples the window
// shrinks to half the sample. Returns an error for an empty sample.
func ProfileDemand(demand []float64) (DemandProfile, error) {
	if len(demand) == 0 {
		return DemandProfile{}, ErrEmptyDemandSample
	}

	mean, stddev := stats.MeanStdDev(demand)

	profile := DemandProfile{
		Max:        demand[0],
		Min:        demand[0],
		Mean:       mean,
		Volatility: stddev,
	}
	for _, v := range demand {
		if v > profile.Max {
			profile.Max = v
		}
		if v < profile.Min {
			profile.Min = v
		}
	}

	window := trendWindow
	if half := len(demand) / 2; window > half {
		window = half
	}
	if window == 0 {
		profile.Trend = TrendFlat
		return profile, nil
	}

	leading := stats.Mean(demand[:window])
	trailing := stats.Mean(demand[len(demand)-window:])
	switch {
	case trailing > leading:
		profile.Trend = TrendGrowing
	case trailing < leading:
		profile.Trend = TrendDeclining
	default:
		profile.Trend = TrendFlat
	}

	return profile, nil
}
