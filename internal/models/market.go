package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketSnapshot is the latest synthetic quote for a tracked symbol.
// The store keeps exactly one per symbol and replaces it in place on
// every refresh tick; no history is retained.
type MarketSnapshot struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	Volume        int64           `json:"volume"`
	High24h       decimal.Decimal `json:"high_24h"`
	Low24h        decimal.Decimal `json:"low_24h"`
	Timestamp     time.Time       `json:"timestamp"`
}

// SessionStatus is the open/closed trading-hours state for a symbol at a
// given instant. It is derived on demand from the clock, never stored.
type SessionStatus struct {
	IsOpen    bool       `json:"is_open"`
	NextOpen  *time.Time `json:"next_open,omitempty"`
	NextClose *time.Time `json:"next_close,omitempty"`
	Timezone  string     `json:"timezone"`
	Reason    string     `json:"reason,omitempty"`
}

// NewsEvent is a calendar item rendered by the dashboard. Read-only state;
// the simulator never generates new ones.
type NewsEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Impact      string    `json:"impact"` // LOW, MEDIUM, HIGH
	Currency    string    `json:"currency"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// TradingStrategy describes a preset strategy shown in the settings sheet.
type TradingStrategy struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Timeframes  []TimeFrame `json:"timeframes"`
	RiskLevel   string      `json:"risk_level"` // CONSERVATIVE, MODERATE, AGGRESSIVE
	WinRate     float64     `json:"win_rate"`
	AvgProfit   float64     `json:"avg_profit"`
}

// TechnicalIndicators is a canned indicator snapshot for the chart screen.
type TechnicalIndicators struct {
	RSI              float64   `json:"rsi"`
	MACD             float64   `json:"macd"`
	MACDSignal       float64   `json:"macd_signal"`
	MACDHistogram    float64   `json:"macd_histogram"`
	SMA20            float64   `json:"sma_20"`
	SMA50            float64   `json:"sma_50"`
	EMA12            float64   `json:"ema_12"`
	EMA26            float64   `json:"ema_26"`
	SupportLevels    []float64 `json:"support_levels"`
	ResistanceLevels []float64 `json:"resistance_levels"`
}
