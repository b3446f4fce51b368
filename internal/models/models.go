package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SignalType is the direction of a proposed trade.
type SignalType string

const (
	SignalBuy  SignalType = "BUY"
	SignalSell SignalType = "SELL"
)

// SignalStatus tracks the lifecycle of a TradingSignal.
// ACTIVE -> EXECUTED happens at most once; EXECUTED and CANCELLED are terminal.
type SignalStatus string

const (
	SignalActive    SignalStatus = "ACTIVE"
	SignalExecuted  SignalStatus = "EXECUTED"
	SignalCancelled SignalStatus = "CANCELLED"
)

// TradeStatus tracks the lifecycle of a TradeRecord.
// OPEN -> CLOSED happens exactly once and is never reversed.
type TradeStatus string

const (
	TradeOpen   TradeStatus = "OPEN"
	TradeClosed TradeStatus = "CLOSED"
)

// AssetClass groups symbols for signal-generation filtering.
type AssetClass string

const (
	AssetForex       AssetClass = "FOREX"
	AssetCrypto      AssetClass = "CRYPTO"
	AssetStocks      AssetClass = "STOCKS"
	AssetIndices     AssetClass = "INDICES"
	AssetCommodities AssetClass = "COMMODITIES"
)

// TradingMode selects which timeframes the signal generator draws from.
type TradingMode string

const (
	ModeScalping     TradingMode = "SCALPING"
	ModeDayTrading   TradingMode = "DAY_TRADING"
	ModeSwingTrading TradingMode = "SWING_TRADING"
)

// TimeFrame is a chart timeframe label.
type TimeFrame string

const (
	TF1m  TimeFrame = "1m"
	TF5m  TimeFrame = "5m"
	TF15m TimeFrame = "15m"
	TF30m TimeFrame = "30m"
	TF1h  TimeFrame = "1h"
	TF4h  TimeFrame = "4h"
	TF1d  TimeFrame = "1d"
	TF1w  TimeFrame = "1w"
)

// TradingSignal is a proposed trade recommendation with entry, stop and
// target prices plus a confidence score.
type TradingSignal struct {
	ID         string          `json:"id"`
	Type       SignalType      `json:"type"`
	Asset      string          `json:"asset"`
	EntryPrice decimal.Decimal `json:"entry_price"`
	StopLoss   decimal.Decimal `json:"stop_loss"`
	TakeProfit decimal.Decimal `json:"take_profit"`
	Confidence int             `json:"confidence"` // 0-100
	Timeframe  TimeFrame       `json:"timeframe"`
	Mode       TradingMode     `json:"mode"`
	Timestamp  time.Time       `json:"timestamp"`
	Reasoning  string          `json:"reasoning"`
	Status     SignalStatus    `json:"status"`
}

// TradeRecord is a position opened from an executed signal. StopLoss and
// TakeProfit are copied from the originating signal at execution time so
// settlement does not depend on the signal still being in the (capped)
// signal list.
type TradeRecord struct {
	ID            string          `json:"id"`
	SignalID      string          `json:"signal_id"`
	Asset         string          `json:"asset"`
	Type          SignalType      `json:"type"`
	EntryPrice    decimal.Decimal `json:"entry_price"`
	ExitPrice     decimal.Decimal `json:"exit_price"`
	StopLoss      decimal.Decimal `json:"stop_loss"`
	TakeProfit    decimal.Decimal `json:"take_profit"`
	Quantity      decimal.Decimal `json:"quantity"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
	Timestamp     time.Time       `json:"timestamp"`
	Duration      int             `json:"duration"` // minutes, fixed at close
	Status        TradeStatus     `json:"status"`
}

// AccountInfo is the aggregate view over all CLOSED trades. It is always
// recomputed wholesale when a trade closes, never drifted incrementally.
type AccountInfo struct {
	Balance     decimal.Decimal `json:"balance"`
	Equity      decimal.Decimal `json:"equity"`
	Margin      decimal.Decimal `json:"margin"`
	FreeMargin  decimal.Decimal `json:"free_margin"`
	MarginLevel decimal.Decimal `json:"margin_level"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	TotalTrades int             `json:"total_trades"`
	WinRate     float64         `json:"win_rate"` // percent
}

// RiskSettings is user-editable risk configuration. Partial updates are
// shallow-merged into the current value.
type RiskSettings struct {
	MaxRiskPerTrade     float64 `json:"max_risk_per_trade"`
	DailyLossLimit      float64 `json:"daily_loss_limit"`
	WeeklyLossLimit     float64 `json:"weekly_loss_limit"`
	PositionSizePercent float64 `json:"position_size_percent"`
	StopLossPercent     float64 `json:"stop_loss_percent"`
	TakeProfitPercent   float64 `json:"take_profit_percent"`
}

// AppSettings is the dashboard-level configuration: notification and
// auto-trading toggles, the selected timeframe/mode, and which asset
// classes participate in signal generation.
type AppSettings struct {
	Notifications       bool         `json:"notifications"`
	AutoTrading         bool         `json:"auto_trading"`
	SelectedTimeframe   TimeFrame    `json:"selected_timeframe"`
	TradingMode         TradingMode  `json:"trading_mode"`
	EnabledAssetClasses []AssetClass `json:"enabled_asset_classes"`
}

// AssetClassEnabled reports whether the given class is in the enabled set.
func (a AppSettings) AssetClassEnabled(class AssetClass) bool {
	for _, c := range a.EnabledAssetClasses {
		if c == class {
			return true
		}
	}
	return false
}
