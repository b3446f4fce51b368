// Package fixtures supplies the initial datasets the store is seeded
// with: baseline snapshots, a couple of worked example signals and
// trades, the news calendar and the strategy presets. The built-in
// defaults can be overridden by a JSON fixture file, which is read once
// at startup and never written back.
package fixtures

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"tradepulse/internal/models"

	"github.com/shopspring/decimal"
)

// Dataset is everything the store consumes at construction time.
type Dataset struct {
	Snapshots  []models.MarketSnapshot    `json:"snapshots"`
	Signals    []models.TradingSignal     `json:"signals"`
	Trades     []models.TradeRecord       `json:"trades"`
	News       []models.NewsEvent         `json:"news"`
	Strategies []models.TradingStrategy   `json:"strategies"`
	Indicators models.TechnicalIndicators `json:"indicators"`
	Account    models.AccountInfo         `json:"account"`
	Risk       models.RiskSettings        `json:"risk"`
	App        models.AppSettings         `json:"app"`
}

// Load reads a fixture file if it exists, otherwise returns the built-in
// defaults. A malformed file is reported and skipped rather than
// aborting startup.
func Load(path string, now time.Time) Dataset {
	if path == "" {
		return Default(now)
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(now)
	}
	if err != nil {
		log.Printf("ERROR: Could not open fixture file %s: %v", path, err)
		return Default(now)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		log.Printf("ERROR: Could not read fixture file %s: %v", path, err)
		return Default(now)
	}

	var d Dataset
	if err := json.Unmarshal(b, &d); err != nil {
		log.Printf("ERROR: Malformed fixture file %s: %v", path, err)
		return Default(now)
	}

	log.Printf("Loaded fixture dataset from %s", path)
	return d
}

// Default returns the built-in dataset, timestamped relative to now.
func Default(now time.Time) Dataset {
	return Dataset{
		Snapshots:  DefaultSnapshots(now),
		Signals:    defaultSignals(now),
		Trades:     defaultTrades(now),
		News:       defaultNews(now),
		Strategies: defaultStrategies(),
		Indicators: defaultIndicators(),
		Account:    DefaultAccount(),
		Risk:       DefaultRisk(),
		App:        DefaultApp(),
	}
}

// DefaultSnapshots is the baseline market overview.
func DefaultSnapshots(now time.Time) []models.MarketSnapshot {
	return []models.MarketSnapshot{
		{
			Symbol:        "EURUSD",
			Price:         decimal.NewFromFloat(1.0845),
			Change:        decimal.NewFromFloat(0.0012),
			ChangePercent: decimal.NewFromFloat(0.11),
			Volume:        1250000,
			High24h:       decimal.NewFromFloat(1.0867),
			Low24h:        decimal.NewFromFloat(1.0823),
			Timestamp:     now,
		},
		{
			Symbol:        "GBPUSD",
			Price:         decimal.NewFromFloat(1.2634),
			Change:        decimal.NewFromFloat(-0.0023),
			ChangePercent: decimal.NewFromFloat(-0.18),
			Volume:        980000,
			High24h:       decimal.NewFromFloat(1.2678),
			Low24h:        decimal.NewFromFloat(1.2612),
			Timestamp:     now,
		},
		{
			Symbol:        "BTCUSD",
			Price:         decimal.NewFromFloat(43250.50),
			Change:        decimal.NewFromFloat(1250.30),
			ChangePercent: decimal.NewFromFloat(2.98),
			Volume:        2500000,
			High24h:       decimal.NewFromFloat(43890.00),
			Low24h:        decimal.NewFromFloat(41980.00),
			Timestamp:     now,
		},
		{
			Symbol:        "ETHUSD",
			Price:         decimal.NewFromFloat(2634.75),
			Change:        decimal.NewFromFloat(-45.25),
			ChangePercent: decimal.NewFromFloat(-1.69),
			Volume:        1800000,
			High24h:       decimal.NewFromFloat(2698.50),
			Low24h:        decimal.NewFromFloat(2598.30),
			Timestamp:     now,
		},
	}
}

func defaultSignals(now time.Time) []models.TradingSignal {
	return []models.TradingSignal{
		{
			ID:         "1",
			Type:       models.SignalBuy,
			Asset:      "EURUSD",
			EntryPrice: decimal.NewFromFloat(1.0845),
			StopLoss:   decimal.NewFromFloat(1.0820),
			TakeProfit: decimal.NewFromFloat(1.0890),
			Confidence: 85,
			Timeframe:  models.TF1h,
			Mode:       models.ModeDayTrading,
			Timestamp:  now,
			Reasoning:  "RSI oversold, MACD bullish crossover, price above EMA20",
			Status:     models.SignalActive,
		},
		{
			ID:         "2",
			Type:       models.SignalSell,
			Asset:      "GBPUSD",
			EntryPrice: decimal.NewFromFloat(1.2634),
			StopLoss:   decimal.NewFromFloat(1.2665),
			TakeProfit: decimal.NewFromFloat(1.2580),
			Confidence: 72,
			Timeframe:  models.TF4h,
			Mode:       models.ModeSwingTrading,
			Timestamp:  now.Add(-30 * time.Minute),
			Reasoning:  "Resistance at 1.2670, bearish divergence on RSI",
			Status:     models.SignalActive,
		},
	}
}

func defaultTrades(now time.Time) []models.TradeRecord {
	return []models.TradeRecord{
		{
			ID:            "1",
			Asset:         "EURUSD",
			Type:          models.SignalBuy,
			EntryPrice:    decimal.NewFromFloat(1.0798),
			ExitPrice:     decimal.NewFromFloat(1.0834),
			Quantity:      decimal.NewFromInt(100000),
			Profit:        decimal.NewFromInt(360),
			ProfitPercent: decimal.NewFromFloat(3.3),
			Timestamp:     now.Add(-2 * 24 * time.Hour),
			Duration:      180,
			Status:        models.TradeClosed,
		},
		{
			ID:            "2",
			Asset:         "BTCUSD",
			Type:          models.SignalSell,
			EntryPrice:    decimal.NewFromInt(44200),
			ExitPrice:     decimal.NewFromInt(43800),
			Quantity:      decimal.NewFromFloat(0.1),
			Profit:        decimal.NewFromInt(40),
			ProfitPercent: decimal.NewFromFloat(0.9),
			Timestamp:     now.Add(-24 * time.Hour),
			Duration:      45,
			Status:        models.TradeClosed,
		},
		{
			ID:            "3",
			Asset:         "GBPUSD",
			Type:          models.SignalBuy,
			EntryPrice:    decimal.NewFromFloat(1.2580),
			ExitPrice:     decimal.NewFromFloat(1.2545),
			Quantity:      decimal.NewFromInt(50000),
			Profit:        decimal.NewFromInt(-175),
			ProfitPercent: decimal.NewFromFloat(-2.8),
			Timestamp:     now.Add(-3 * 24 * time.Hour),
			Duration:      120,
			Status:        models.TradeClosed,
		},
	}
}

func defaultNews(now time.Time) []models.NewsEvent {
	return []models.NewsEvent{
		{
			ID:          "1",
			Title:       "Federal Reserve Interest Rate Decision",
			Impact:      "HIGH",
			Currency:    "USD",
			Timestamp:   now.Add(2 * time.Hour),
			Description: "FOMC meeting expected to maintain current rates",
		},
		{
			ID:          "2",
			Title:       "ECB Monetary Policy Statement",
			Impact:      "HIGH",
			Currency:    "EUR",
			Timestamp:   now.Add(24 * time.Hour),
			Description: "European Central Bank policy announcement",
		},
		{
			ID:          "3",
			Title:       "Non-Farm Payrolls",
			Impact:      "HIGH",
			Currency:    "USD",
			Timestamp:   now.Add(3 * 24 * time.Hour),
			Description: "US employment data release",
		},
	}
}

func defaultStrategies() []models.TradingStrategy {
	return []models.TradingStrategy{
		{
			ID:          "1",
			Name:        "Scalping Pro",
			Description: "Quick trades on 1-5 minute timeframes",
			Timeframes:  []models.TimeFrame{models.TF1m, models.TF5m},
			RiskLevel:   "AGGRESSIVE",
			WinRate:     68,
			AvgProfit:   0.8,
		},
		{
			ID:          "2",
			Name:        "Day Trader",
			Description: "Intraday trades on 15m-1h timeframes",
			Timeframes:  []models.TimeFrame{models.TF15m, models.TF30m, models.TF1h},
			RiskLevel:   "MODERATE",
			WinRate:     72,
			AvgProfit:   1.5,
		},
		{
			ID:          "3",
			Name:        "Swing Master",
			Description: "Multi-day trades on 4h-daily timeframes",
			Timeframes:  []models.TimeFrame{models.TF4h, models.TF1d},
			RiskLevel:   "CONSERVATIVE",
			WinRate:     78,
			AvgProfit:   3.2,
		},
	}
}

func defaultIndicators() models.TechnicalIndicators {
	return models.TechnicalIndicators{
		RSI:              68.5,
		MACD:             0.0012,
		MACDSignal:       0.0008,
		MACDHistogram:    0.0004,
		SMA20:            1.0832,
		SMA50:            1.0798,
		EMA12:            1.0841,
		EMA26:            1.0825,
		SupportLevels:    []float64{1.0820, 1.0795, 1.0765},
		ResistanceLevels: []float64{1.0865, 1.0890, 1.0920},
	}
}

// DefaultAccount is the starting account view.
func DefaultAccount() models.AccountInfo {
	return models.AccountInfo{
		Balance:     decimal.NewFromInt(10000),
		Equity:      decimal.NewFromInt(10225),
		Margin:      decimal.NewFromInt(500),
		FreeMargin:  decimal.NewFromInt(9725),
		MarginLevel: decimal.NewFromInt(2045),
		TotalProfit: decimal.NewFromInt(225),
		TotalTrades: 15,
		WinRate:     73.3,
	}
}

// DefaultRisk is the starting risk configuration.
func DefaultRisk() models.RiskSettings {
	return models.RiskSettings{
		MaxRiskPerTrade:     2,
		DailyLossLimit:      5,
		WeeklyLossLimit:     10,
		PositionSizePercent: 1,
		StopLossPercent:     2,
		TakeProfitPercent:   4,
	}
}

// DefaultApp is the starting dashboard configuration. Forex and crypto
// are enabled out of the box; notifications on, auto-trading off.
func DefaultApp() models.AppSettings {
	return models.AppSettings{
		Notifications:       true,
		AutoTrading:         false,
		SelectedTimeframe:   models.TF1h,
		TradingMode:         models.ModeDayTrading,
		EnabledAssetClasses: []models.AssetClass{models.AssetForex, models.AssetCrypto},
	}
}
