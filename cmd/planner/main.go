package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/invplan/internal/config"
	"github.com/andresuchdata/invplan/internal/dataset"
	"github.com/andresuchdata/invplan/internal/planning"
	"github.com/andresuchdata/invplan/internal/portfolio"
	"github.com/andresuchdata/invplan/pkg/logger"
)

const (
	historyFile = "historical_data.csv"
	stocksFile  = "current_stocks.csv"
)

func newDataDirFlag(cfg *config.Config) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Usage:   "Directory holding the planning dataset CSVs",
		Value:   cfg.App.DataDir,
		EnvVars: []string{"APP_DATA_DIR"},
	}
}

func newPlanningFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "lead-time",
			Usage:   "Supplier lead time in days",
			Value:   cfg.Planning.LeadTimeDays,
			EnvVars: []string{"PLAN_LEAD_TIME_DAYS"},
		},
		&cli.Float64Flag{
			Name:    "service-level",
			Usage:   "Target service level in (0, 1)",
			Value:   cfg.Planning.ServiceLevel,
			EnvVars: []string{"PLAN_SERVICE_LEVEL"},
		},
		&cli.IntFlag{
			Name:    "days-of-stock",
			Usage:   "Horizon of the legacy stocking rule, in days",
			Value:   cfg.Planning.DaysOfStock,
			EnvVars: []string{"PLAN_DAYS_OF_STOCK"},
		},
		&cli.Float64Flag{
			Name:    "holding-cost-rate",
			Usage:   "Annual holding cost as a fraction of inventory value",
			Value:   cfg.Planning.HoldingCostRate,
			EnvVars: []string{"PLAN_HOLDING_COST_RATE"},
		},
		&cli.Float64Flag{
			Name:    "interval-width",
			Usage:   "Confidence interval width of the forecast band",
			Value:   cfg.Planning.IntervalWidth,
			EnvVars: []string{"PLAN_INTERVAL_WIDTH"},
		},
	}
}

func paramsFromFlags(c *cli.Context, cfg *config.Config) portfolio.Params {
	return portfolio.Params{
		LeadTime:        c.Int("lead-time"),
		ServiceLevel:    c.Float64("service-level"),
		DaysOfStock:     c.Int("days-of-stock"),
		HoldingCostRate: c.Float64("holding-cost-rate"),
		IntervalWidth:   c.Float64("interval-width"),
		WorkerCount:     cfg.Planning.WorkerCount,
	}
}

func loadDataset(c *cli.Context) ([]dataset.ComponentStock, []dataset.DemandRecord, error) {
	dataDir := c.String("data-dir")

	stocks, err := dataset.LoadStocks(filepath.Join(dataDir, stocksFile))
	if err != nil {
		return nil, nil, err
	}

	history, err := dataset.LoadHistory(filepath.Join(dataDir, historyFile))
	if err != nil {
		return nil, nil, err
	}

	return stocks, history, nil
}

func runGenerate(c *cli.Context) error {
	cfg := dataset.GeneratorConfig{
		Components: c.Int("components"),
		Days:       c.Int("days"),
		Seed:       c.Uint64("seed"),
	}

	history, stocks, err := dataset.Generate(cfg)
	if err != nil {
		return err
	}

	dataDir := c.String("data-dir")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	if err := dataset.WriteHistory(filepath.Join(dataDir, historyFile), history); err != nil {
		return err
	}
	if err := dataset.WriteStocks(filepath.Join(dataDir, stocksFile), stocks); err != nil {
		return err
	}

	log.Info().
		Str("data_dir", dataDir).
		Int("components", len(stocks)).
		Int("demand_rows", len(history)).
		Msg("dataset generated")

	return nil
}

func runAnalyze(c *cli.Context) error {
	cfg := config.Load()

	stocks, history, err := loadDataset(c)
	if err != nil {
		return err
	}

	componentID := c.String("component")
	var stock *dataset.ComponentStock
	for i := range stocks {
		if stocks[i].ComponentID == componentID {
			stock = &stocks[i]
			break
		}
	}
	if stock == nil {
		return fmt.Errorf("component %s not found in %s", componentID, stocksFile)
	}

	analyzer, err := portfolio.NewAnalyzer(paramsFromFlags(c, cfg))
	if err != nil {
		return err
	}

	series := dataset.HistoryByComponent(history)[componentID]
	result, err := analyzer.AnalyzeComponent(*stock, series)
	if err != nil {
		return err
	}

	plan := result.Plan
	log.Info().
		Str("component", result.ComponentID).
		Str("category", result.Category).
		Int("current_stock", result.CurrentStock).
		Str("unit_cost", result.UnitCost.StringFixed(2)).
		Int("safety_stock", plan.SafetyStock).
		Int("optimal_inventory", plan.OptimalInventory).
		Int("order_quantity", plan.OrderQuantity).
		Int("legacy_inventory", plan.LegacyInventory).
		Int("annual_savings", plan.Savings.Annual).
		Int("inventory_reduction", plan.Savings.UnitsReduced).
		Float64("capital_released", plan.Savings.CapitalReleased).
		Float64("first_year_roi_pct", plan.Savings.FirstYearROI()).
		Str("condition", plan.Condition.Label()).
		Msg("component plan")

	log.Info().
		Float64("avg_daily_demand", result.Profile.Mean).
		Float64("max_daily_demand", result.Profile.Max).
		Float64("min_daily_demand", result.Profile.Min).
		Float64("volatility", result.Profile.Volatility).
		Str("trend", string(result.Profile.Trend)).
		Msg("demand profile")

	return nil
}

func runPortfolio(c *cli.Context) error {
	cfg := config.Load()

	stocks, history, err := loadDataset(c)
	if err != nil {
		return err
	}

	analyzer, err := portfolio.NewAnalyzer(paramsFromFlags(c, cfg))
	if err != nil {
		return err
	}

	results, summary, err := analyzer.Analyze(c.Context, stocks, history)
	if err != nil {
		return err
	}

	for _, r := range results {
		log.Info().
			Str("component", r.ComponentID).
			Str("category", r.Category).
			Int("order_quantity", r.Plan.OrderQuantity).
			Int("annual_savings", r.Plan.Savings.Annual).
			Str("condition", r.Plan.Condition.Label()).
			Msg("component analyzed")
	}

	log.Info().
		Int("components", summary.Components).
		Str("total_inventory_value", summary.TotalInventoryValue.StringFixed(2)).
		Str("total_annual_savings", summary.TotalAnnualSavings.StringFixed(2)).
		Str("total_capital_released", summary.TotalCapitalReleased.StringFixed(2)).
		Int("critical", summary.Conditions[planning.ConditionCritical]).
		Int("warning", summary.Conditions[planning.ConditionWarning]).
		Int("healthy", summary.Conditions[planning.ConditionHealthy]).
		Msg("portfolio impact")

	return nil
}

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.App.LogLevel)

	app := &cli.App{
		Name:  "planner",
		Usage: "Inventory planning from demand history and forecasts",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate a synthetic planning dataset",
				Flags: []cli.Flag{
					newDataDirFlag(cfg),
					&cli.IntFlag{
						Name:  "components",
						Usage: "Number of components to generate",
						Value: dataset.DefaultGeneratorConfig().Components,
					},
					&cli.IntFlag{
						Name:  "days",
						Usage: "Days of demand history per component",
						Value: dataset.DefaultGeneratorConfig().Days,
					},
					&cli.Uint64Flag{
						Name:  "seed",
						Usage: "Random seed",
						Value: dataset.DefaultGeneratorConfig().Seed,
					},
				},
				Action: runGenerate,
			},
			{
				Name:  "analyze",
				Usage: "Plan a single component",
				Flags: append([]cli.Flag{
					newDataDirFlag(cfg),
					&cli.StringFlag{
						Name:     "component",
						Usage:    "Component ID to analyze",
						Required: true,
					},
				}, newPlanningFlags(cfg)...),
				Action: runAnalyze,
			},
			{
				Name:   "portfolio",
				Usage:  "Plan every component and roll up the savings",
				Flags:  append([]cli.Flag{newDataDirFlag(cfg)}, newPlanningFlags(cfg)...),
				Action: runPortfolio,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("planner failed")
	}
}
