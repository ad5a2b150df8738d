package planning

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfileDemand(t *testing.T) {
	t.Run("empty sample", func(t *testing.T) {
		_, err := ProfileDemand(nil)
		require.ErrorIs(t, err, ErrEmptyDemandSample)
	})

	t.Run("basic statistics", func(t *testing.T) {
		profile, err := ProfileDemand([]float64{10, 20, 10, 20})
		require.NoError(t, err)
		require.Equal(t, 20.0, profile.Max)
		require.Equal(t, 10.0, profile.Min)
		require.InDelta(t, 15.0, profile.Mean, 1e-12)
		require.InDelta(t, 5.0, profile.Volatility, 1e-12)
	})

	t.Run("growing trend", func(t *testing.T) {
		demand := make([]float64, 120)
		for i := range demand {
			demand[i] = 10 + float64(i)*0.5
		}
		profile, err := ProfileDemand(demand)
		require.NoError(t, err)
		require.Equal(t, TrendGrowing, profile.Trend)
	})

	t.Run("declining trend", func(t *testing.T) {
		demand := make([]float64, 120)
		for i := range demand {
			demand[i] = 100 - float64(i)*0.5
		}
		profile, err := ProfileDemand(demand)
		require.NoError(t, err)
		require.Equal(t, TrendDeclining, profile.Trend)
	})

	t.Run("short sample shrinks the trend window", func(t *testing.T) {
		profile, err := ProfileDemand([]float64{5, 5, 9, 9})
		require.NoError(t, err)
		require.Equal(t, TrendGrowing, profile.Trend)
	})

	t.Run("single observation is flat", func(t *testing.T) {
		profile, err := ProfileDemand([]float64{7})
		require.NoError(t, err)
		require.Equal(t, TrendFlat, profile.Trend)
	})

	t.Run("constant series is flat", func(t *testing.T) {
		demand := make([]float64, 90)
		for i := range demand {
			demand[i] = 25
		}
		profile, err := ProfileDemand(demand)
		require.NoError(t, err)
		require.Equal(t, TrendFlat, profile.Trend)
		require.Equal(t, 0.0, profile.Volatility)
	})
}
