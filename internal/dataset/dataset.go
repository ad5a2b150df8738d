// Package dataset reads and writes the planning dataset: a demand history
// CSV (Component_ID, Date, Units_Used) and a stock snapshot CSV
// (Component_ID, Category, Current_Stock, Unit_Cost).
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DemandRecord is one day of demand for one component.
type DemandRecord struct {
	ComponentID string
	Date        time.Time
	UnitsUsed   float64
}

// ComponentStock is the current stock snapshot for one component.
type ComponentStock struct {
	ComponentID  string
	Category     string
	CurrentStock int
	UnitCost     decimal.Decimal
}

// LoadHistory reads a demand history CSV. Rows that fail to parse are logged
// and skipped rather than failing the whole load.
func LoadHistory(path string) ([]DemandRecord, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idCol, err := columnIndex(header, "Component_ID")
	if err != nil {
		return nil, err
	}
	dateCol, err := columnIndex(header, "Date")
	if err != nil {
		return nil, err
	}
	unitsCol, err := columnIndex(header, "Units_Used")
	if err != nil {
		return nil, err
	}

	records := make([]DemandRecord, 0, len(rows))
	for i, row := range rows {
		date, err := time.Parse(dateLayout, strings.TrimSpace(row[dateCol]))
		if err != nil {
			log.Warn().Str("path", path).Int("row", i+2).Err(err).Msg("skipping row with bad date")
			continue
		}

		units, err := strconv.ParseFloat(strings.TrimSpace(row[unitsCol]), 64)
		if err != nil {
			log.Warn().Str("path", path).Int("row", i+2).Err(err).Msg("skipping row with bad units")
			continue
		}

		records = append(records, DemandRecord{
			ComponentID: strings.TrimSpace(row[idCol]),
			Date:        date,
			UnitsUsed:   units,
		})
	}

	return records, nil
}

// LoadStocks reads a stock snapshot CSV.
func LoadStocks(path string) ([]ComponentStock, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idCol, err := columnIndex(header, "Component_ID")
	if err != nil {
		return nil, err
	}
	categoryCol, err := columnIndex(header, "Category")
	if err != nil {
		return nil, err
	}
	stockCol, err := columnIndex(header, "Current_Stock")
	if err != nil {
		return nil, err
	}
	costCol, err := columnIndex(header, "Unit_Cost")
	if err != nil {
		return nil, err
	}

	stocks := make([]ComponentStock, 0, len(rows))
	for i, row := range rows {
		stock, err := strconv.Atoi(strings.TrimSpace(row[stockCol]))
		if err != nil {
			log.Warn().Str("path", path).Int("row", i+2).Err(err).Msg("skipping row with bad stock")
			continue
		}

		cost, err := decimal.NewFromString(strings.TrimSpace(row[costCol]))
		if err != nil {
			log.Warn().Str("path", path).Int("row", i+2).Err(err).Msg("skipping row with bad unit cost")
			continue
		}

		stocks = append(stocks, ComponentStock{
			ComponentID:  strings.TrimSpace(row[idCol]),
			Category:     strings.TrimSpace(row[categoryCol]),
			CurrentStock: stock,
			UnitCost:     cost,
		})
	}

	return stocks, nil
}

// WriteHistory writes a demand history CSV.
func WriteHistory(path string, records []DemandRecord) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"Component_ID", "Date", "Units_Used"})
	for _, r := range records {
		rows = append(rows, []string{
			r.ComponentID,
			r.Date.Format(dateLayout),
			strconv.FormatFloat(r.UnitsUsed, 'f', -1, 64),
		})
	}

	return writeCSV(path, rows)
}

// WriteStocks writes a stock snapshot CSV.
func WriteStocks(path string, stocks []ComponentStock) error {
	rows := make([][]string, 0, len(stocks)+1)
	rows = append(rows, []string{"Component_ID", "Category", "Current_Stock", "Unit_Cost"})
	for _, s := range stocks {
		rows = append(rows, []string{
			s.ComponentID,
			s.Category,
			strconv.Itoa(s.CurrentStock),
			s.UnitCost.StringFixed(2),
		})
	}

	return writeCSV(path, rows)
}

// HistoryByComponent groups demand records by component, each series in
// chronological order.
func HistoryByComponent(records []DemandRecord) map[string][]DemandRecord {
	grouped := make(map[string][]DemandRecord)
	for _, r := range records {
		grouped[r.ComponentID] = append(grouped[r.ComponentID], r)
	}

	for _, series := range grouped {
		sort.Slice(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})
	}

	return grouped
}

func readCSV(path string) (rows [][]string, header []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}

	return all[1:], all[0], nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("missing column %q in header %v", name, header)
}
