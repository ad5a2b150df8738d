package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestHistoryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "historical_data.csv")

	want := []DemandRecord{
		{ComponentID: "COMP-001", Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), UnitsUsed: 42},
		{ComponentID: "COMP-001", Date: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), UnitsUsed: 37.5},
		{ComponentID: "COMP-002", Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), UnitsUsed: 0},
	}

	require.NoError(t, WriteHistory(path, want))

	got, err := LoadHistory(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestStocksRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "current_stocks.csv")

	want := []ComponentStock{
		{ComponentID: "COMP-001", Category: "Sensors", CurrentStock: 1200, UnitCost: decimal.RequireFromString("12.50")},
		{ComponentID: "COMP-002", Category: "Resistors", CurrentStock: 0, UnitCost: decimal.RequireFromString("0.80")},
	}

	require.NoError(t, WriteStocks(path, want))

	got, err := LoadStocks(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		require.Equal(t, want[i].ComponentID, got[i].ComponentID)
		require.Equal(t, want[i].Category, got[i].Category)
		require.Equal(t, want[i].CurrentStock, got[i].CurrentStock)
		require.True(t, want[i].UnitCost.Equal(got[i].UnitCost))
	}
}

func TestLoadHistorySkipsBadRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "historical_data.csv")

	csv := "Component_ID,Date,Units_Used\n" +
		"COMP-001,2026-01-05,42\n" +
		"COMP-001,not-a-date,10\n" +
		"COMP-001,2026-01-07,not-a-number\n" +
		"COMP-001,2026-01-08,55\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	records, err := LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 42.0, records[0].UnitsUsed)
	require.Equal(t, 55.0, records[1].UnitsUsed)
}

func TestLoadHistoryMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "historical_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Component_ID,Units_Used\nCOMP-001,42\n"), 0644))

	_, err := LoadHistory(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Date")
}

func TestLoadHistoryMissingFile(t *testing.T) {
	_, err := LoadHistory(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestHistoryByComponent(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }

	grouped := HistoryByComponent([]DemandRecord{
		{ComponentID: "COMP-002", Date: day(7), UnitsUsed: 3},
		{ComponentID: "COMP-001", Date: day(6), UnitsUsed: 2},
		{ComponentID: "COMP-001", Date: day(5), UnitsUsed: 1},
		{ComponentID: "COMP-002", Date: day(5), UnitsUsed: 4},
	})

	require.Len(t, grouped, 2)
	require.Equal(t, []float64{1, 2}, unitsOf(grouped["COMP-001"]))
	require.Equal(t, []float64{4, 3}, unitsOf(grouped["COMP-002"]))
}

func unitsOf(records []DemandRecord) []float64 {
	units := make([]float64, len(records))
	for i, r := range records {
		units[i] = r.UnitsUsed
	}
	return units
}

func TestGenerate(t *testing.T) {
	cfg := GeneratorConfig{Components: 3, Days: 30, Seed: 7}

	history, stocks, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, history, 3*30)
	require.Len(t, stocks, 3)

	for _, r := range history {
		require.GreaterOrEqual(t, r.UnitsUsed, 0.0)
	}
	for _, s := range stocks {
		require.NotEmpty(t, s.Category)
		require.Greater(t, s.CurrentStock, 0)
		require.True(t, s.UnitCost.IsPositive())
	}

	// Same seed, same dataset.
	again, _, err := Generate(cfg)
	require.NoError(t, err)
	require.Equal(t, history, again)

	// Different seed, different demand somewhere.
	other, _, err := Generate(GeneratorConfig{Components: 3, Days: 30, Seed: 8})
	require.NoError(t, err)
	require.NotEqual(t, unitsOf(history), unitsOf(other))
}

func TestGenerateValidation(t *testing.T) {
	_, _, err := Generate(GeneratorConfig{Components: 0, Days: 10})
	require.Error(t, err)

	_, _, err = Generate(GeneratorConfig{Components: 1, Days: 0})
	require.Error(t, err)
}
