package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable of the simulator. The probabilistic rules
// (signal chance, settlement chance, win rate) are deliberately named
// fields instead of constants buried in the loops, so tests can
// substitute deterministic values.
type Config struct {
	// Logging
	LogFile       string
	MaxLogSizeMB  int64
	MaxLogBackups int
	LogLevel      string

	// Loop periods
	RefreshPeriodMs    int
	SignalPeriodMs     int
	SettlementPeriodMs int

	// Probabilistic rules
	SignalChancePerTick     float64
	SettlementChancePerTick float64
	WinProbability          float64

	// Trading behavior
	AutoTradeConfidence int
	SignalListCap       int
	StandardLotSize     float64

	// Feed and refresh behavior
	LiveFeedIntervalMs int
	RefreshDelayMs     int

	// RandomSeed seeds the simulator RNG; 0 means seed from the clock.
	RandomSeed int64

	// StatusReportMins is the cadence of the console account report.
	StatusReportMins int
}

// Load initializes the configuration. It tries to read a .env file and
// falls back to process environment variables, applying defaults for
// anything unset.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	return &Config{
		LogFile:       getEnvAsString("PULSE_LOG_FILE", "tradepulse.log"),
		MaxLogSizeMB:  getEnvAsInt64("PULSE_MAX_LOG_SIZE_MB", 5),
		MaxLogBackups: getEnvAsInt("PULSE_MAX_LOG_BACKUPS", 3),
		LogLevel:      getEnvAsString("PULSE_LOG_LEVEL", "INFO"),

		RefreshPeriodMs:    getEnvAsInt("PULSE_REFRESH_PERIOD_MS", 3000),
		SignalPeriodMs:     getEnvAsInt("PULSE_SIGNAL_PERIOD_MS", 10000),
		SettlementPeriodMs: getEnvAsInt("PULSE_SETTLEMENT_PERIOD_MS", 5000),

		SignalChancePerTick:     getEnvAsFloat64("PULSE_SIGNAL_CHANCE", 0.10),
		SettlementChancePerTick: getEnvAsFloat64("PULSE_SETTLEMENT_CHANCE", 0.20),
		WinProbability:          getEnvAsFloat64("PULSE_WIN_PROBABILITY", 0.70),

		AutoTradeConfidence: getEnvAsInt("PULSE_AUTO_TRADE_CONFIDENCE", 85),
		SignalListCap:       getEnvAsInt("PULSE_SIGNAL_LIST_CAP", 10),
		StandardLotSize:     getEnvAsFloat64("PULSE_STANDARD_LOT_SIZE", 100000),

		LiveFeedIntervalMs: getEnvAsInt("PULSE_LIVE_FEED_INTERVAL_MS", 5000),
		RefreshDelayMs:     getEnvAsInt("PULSE_REFRESH_DELAY_MS", 1000),

		RandomSeed: getEnvAsInt64("PULSE_RANDOM_SEED", 0),

		StatusReportMins: getEnvAsInt("PULSE_STATUS_REPORT_MINS", 5),
	}
}

// Duration views over the millisecond fields.

func (c *Config) RefreshPeriod() time.Duration {
	return time.Duration(c.RefreshPeriodMs) * time.Millisecond
}

func (c *Config) SignalPeriod() time.Duration {
	return time.Duration(c.SignalPeriodMs) * time.Millisecond
}

func (c *Config) SettlementPeriod() time.Duration {
	return time.Duration(c.SettlementPeriodMs) * time.Millisecond
}

func (c *Config) LiveFeedInterval() time.Duration {
	return time.Duration(c.LiveFeedIntervalMs) * time.Millisecond
}

func (c *Config) RefreshDelay() time.Duration {
	return time.Duration(c.RefreshDelayMs) * time.Millisecond
}
