// internal/config/config.go
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Planning PlanningConfig
	App      AppConfig
}

// PlanningConfig carries the business defaults for the planning formulas.
// Every value can be overridden per call; these are the fallbacks the CLI
// uses when a flag is not set.
type PlanningConfig struct {
	ServiceLevel    float64
	LeadTimeDays    int
	DaysOfStock     int
	HoldingCostRate float64
	IntervalWidth   float64
	WorkerCount     int
}

type AppConfig struct {
	DataDir  string
	LogLevel string
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("PLAN_SERVICE_LEVEL", 0.95)
		viper.SetDefault("PLAN_LEAD_TIME_DAYS", 30)
		viper.SetDefault("PLAN_DAYS_OF_STOCK", 60)
		viper.SetDefault("PLAN_HOLDING_COST_RATE", 0.20)
		viper.SetDefault("PLAN_INTERVAL_WIDTH", 0.95)
		viper.SetDefault("PLAN_WORKER_COUNT", 4)
		viper.SetDefault("APP_DATA_DIR", "./data")
		viper.SetDefault("LOG_LEVEL", "info")

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure the data directory exists
		ensureDir(viper.GetString("APP_DATA_DIR"))

		instance = &Config{
			Planning: PlanningConfig{
				ServiceLevel:    viper.GetFloat64("PLAN_SERVICE_LEVEL"),
				LeadTimeDays:    viper.GetInt("PLAN_LEAD_TIME_DAYS"),
				DaysOfStock:     viper.GetInt("PLAN_DAYS_OF_STOCK"),
				HoldingCostRate: viper.GetFloat64("PLAN_HOLDING_COST_RATE"),
				IntervalWidth:   viper.GetFloat64("PLAN_INTERVAL_WIDTH"),
				WorkerCount:     viper.GetInt("PLAN_WORKER_COUNT"),
			},
			App: AppConfig{
				DataDir:  viper.GetString("APP_DATA_DIR"),
				LogLevel: viper.GetString("LOG_LEVEL"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
