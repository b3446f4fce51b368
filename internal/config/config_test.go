package config

import (
	"os"
	"testing"
	"time"
)

var pulseEnvs = []string{
	"PULSE_LOG_FILE",
	"PULSE_MAX_LOG_SIZE_MB",
	"PULSE_MAX_LOG_BACKUPS",
	"PULSE_LOG_LEVEL",
	"PULSE_REFRESH_PERIOD_MS",
	"PULSE_SIGNAL_PERIOD_MS",
	"PULSE_SETTLEMENT_PERIOD_MS",
	"PULSE_SIGNAL_CHANCE",
	"PULSE_SETTLEMENT_CHANCE",
	"PULSE_WIN_PROBABILITY",
	"PULSE_AUTO_TRADE_CONFIDENCE",
	"PULSE_SIGNAL_LIST_CAP",
	"PULSE_STANDARD_LOT_SIZE",
	"PULSE_LIVE_FEED_INTERVAL_MS",
	"PULSE_REFRESH_DELAY_MS",
	"PULSE_RANDOM_SEED",
	"PULSE_STATUS_REPORT_MINS",
}

func TestLoadConfig_Defaults(t *testing.T) {
	// 1. Ensure every tunable is unset
	for _, k := range pulseEnvs {
		os.Unsetenv(k)
	}

	// 2. Load Config
	cfg := Load()

	// 3. Verify Defaults
	if cfg.LogFile != "tradepulse.log" {
		t.Errorf("Expected LogFile 'tradepulse.log', got '%s'", cfg.LogFile)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("Expected LogLevel 'INFO', got '%s'", cfg.LogLevel)
	}
	if cfg.MaxLogSizeMB != 5 {
		t.Errorf("Expected MaxLogSizeMB 5, got %d", cfg.MaxLogSizeMB)
	}
	if cfg.MaxLogBackups != 3 {
		t.Errorf("Expected MaxLogBackups 3, got %d", cfg.MaxLogBackups)
	}

	if cfg.RefreshPeriodMs != 3000 {
		t.Errorf("Expected RefreshPeriodMs 3000, got %d", cfg.RefreshPeriodMs)
	}
	if cfg.SignalPeriodMs != 10000 {
		t.Errorf("Expected SignalPeriodMs 10000, got %d", cfg.SignalPeriodMs)
	}
	if cfg.SettlementPeriodMs != 5000 {
		t.Errorf("Expected SettlementPeriodMs 5000, got %d", cfg.SettlementPeriodMs)
	}

	if cfg.SignalChancePerTick != 0.10 {
		t.Errorf("Expected SignalChancePerTick 0.10, got %f", cfg.SignalChancePerTick)
	}
	if cfg.SettlementChancePerTick != 0.20 {
		t.Errorf("Expected SettlementChancePerTick 0.20, got %f", cfg.SettlementChancePerTick)
	}
	if cfg.WinProbability != 0.70 {
		t.Errorf("Expected WinProbability 0.70, got %f", cfg.WinProbability)
	}

	if cfg.AutoTradeConfidence != 85 {
		t.Errorf("Expected AutoTradeConfidence 85, got %d", cfg.AutoTradeConfidence)
	}
	if cfg.SignalListCap != 10 {
		t.Errorf("Expected SignalListCap 10, got %d", cfg.SignalListCap)
	}
	if cfg.StandardLotSize != 100000.0 {
		t.Errorf("Expected StandardLotSize 100000, got %f", cfg.StandardLotSize)
	}

	if cfg.LiveFeedIntervalMs != 5000 {
		t.Errorf("Expected LiveFeedIntervalMs 5000, got %d", cfg.LiveFeedIntervalMs)
	}
	if cfg.RefreshDelayMs != 1000 {
		t.Errorf("Expected RefreshDelayMs 1000, got %d", cfg.RefreshDelayMs)
	}
	if cfg.RandomSeed != 0 {
		t.Errorf("Expected RandomSeed 0, got %d", cfg.RandomSeed)
	}
	if cfg.StatusReportMins != 5 {
		t.Errorf("Expected StatusReportMins 5, got %d", cfg.StatusReportMins)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	// 1. Setup overrides
	overrides := map[string]string{
		"PULSE_REFRESH_PERIOD_MS":     "1500",
		"PULSE_SIGNAL_CHANCE":         "0.5",
		"PULSE_WIN_PROBABILITY":       "0.9",
		"PULSE_AUTO_TRADE_CONFIDENCE": "90",
		"PULSE_SIGNAL_LIST_CAP":       "25",
		"PULSE_RANDOM_SEED":           "42",
		"PULSE_LOG_LEVEL":             "DEBUG",
	}
	for k, v := range overrides {
		os.Setenv(k, v)
		defer os.Unsetenv(k) // Clean up
	}

	// 2. Load Config
	cfg := Load()

	// 3. Verify
	if cfg.RefreshPeriodMs != 1500 {
		t.Errorf("Expected RefreshPeriodMs 1500, got %d", cfg.RefreshPeriodMs)
	}
	if cfg.SignalChancePerTick != 0.5 {
		t.Errorf("Expected SignalChancePerTick 0.5, got %f", cfg.SignalChancePerTick)
	}
	if cfg.WinProbability != 0.9 {
		t.Errorf("Expected WinProbability 0.9, got %f", cfg.WinProbability)
	}
	if cfg.AutoTradeConfidence != 90 {
		t.Errorf("Expected AutoTradeConfidence 90, got %d", cfg.AutoTradeConfidence)
	}
	if cfg.SignalListCap != 25 {
		t.Errorf("Expected SignalListCap 25, got %d", cfg.SignalListCap)
	}
	if cfg.RandomSeed != 42 {
		t.Errorf("Expected RandomSeed 42, got %d", cfg.RandomSeed)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("Expected LogLevel 'DEBUG', got '%s'", cfg.LogLevel)
	}
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	invalid := map[string]string{
		"PULSE_REFRESH_PERIOD_MS": "not-a-number",
		"PULSE_SIGNAL_CHANCE":     "often",
		"PULSE_RANDOM_SEED":       "3.14",
	}
	for k, v := range invalid {
		os.Setenv(k, v)
		defer os.Unsetenv(k)
	}

	cfg := Load()

	if cfg.RefreshPeriodMs != 3000 {
		t.Errorf("Expected fallback RefreshPeriodMs 3000, got %d", cfg.RefreshPeriodMs)
	}
	if cfg.SignalChancePerTick != 0.10 {
		t.Errorf("Expected fallback SignalChancePerTick 0.10, got %f", cfg.SignalChancePerTick)
	}
	if cfg.RandomSeed != 0 {
		t.Errorf("Expected fallback RandomSeed 0, got %d", cfg.RandomSeed)
	}
}

func TestDurationViews(t *testing.T) {
	cfg := &Config{
		RefreshPeriodMs:    3000,
		SignalPeriodMs:     10000,
		SettlementPeriodMs: 5000,
		LiveFeedIntervalMs: 5000,
		RefreshDelayMs:     1000,
	}

	if cfg.RefreshPeriod() != 3*time.Second {
		t.Errorf("Expected RefreshPeriod 3s, got %v", cfg.RefreshPeriod())
	}
	if cfg.SignalPeriod() != 10*time.Second {
		t.Errorf("Expected SignalPeriod 10s, got %v", cfg.SignalPeriod())
	}
	if cfg.SettlementPeriod() != 5*time.Second {
		t.Errorf("Expected SettlementPeriod 5s, got %v", cfg.SettlementPeriod())
	}
	if cfg.LiveFeedInterval() != 5*time.Second {
		t.Errorf("Expected LiveFeedInterval 5s, got %v", cfg.LiveFeedInterval())
	}
	if cfg.RefreshDelay() != time.Second {
		t.Errorf("Expected RefreshDelay 1s, got %v", cfg.RefreshDelay())
	}
}
