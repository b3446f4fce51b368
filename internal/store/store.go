// Package store owns the mutable application state: market snapshots,
// the signal list, the trade history and the account/risk/app settings.
// All mutation goes through the exported operations; consumers only ever
// see copies. Three periodic loops (refresh, signal generation,
// settlement) run on top of the same state, driven by an injected clock.
package store

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"tradepulse/internal/clock"
	"tradepulse/internal/config"
	"tradepulse/internal/feed"
	"tradepulse/internal/fixtures"
	"tradepulse/internal/models"
	"tradepulse/internal/notify"
	"tradepulse/internal/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the trading state store.
type Store struct {
	cfg      *config.Config
	provider feed.Provider
	registry *feed.Registry
	clk      clock.Clock
	notifier notify.Notifier

	rngMu sync.Mutex
	rng   *rand.Rand

	mu         sync.RWMutex
	snapshots  []models.MarketSnapshot
	signals    []models.TradingSignal
	trades     []models.TradeRecord
	news       []models.NewsEvent
	strategies []models.TradingStrategy
	indicators models.TechnicalIndicators
	account    models.AccountInfo
	risk       models.RiskSettings
	app        models.AppSettings
	loading    bool

	// baseBalance is the account balance net of closed-trade profit, so
	// the wholesale account fold stays consistent with the fixture data.
	baseBalance decimal.Decimal
	baseline    fixtures.Dataset

	stop   chan struct{}
	wg     sync.WaitGroup
	subIDs map[string]int
}

// New builds a Store seeded from the fixture dataset. registry and
// notifier may be nil; the loops then run without live subscriptions or
// outbound notifications.
func New(cfg *config.Config, provider feed.Provider, registry *feed.Registry, clk clock.Clock, rng *rand.Rand, notifier notify.Notifier, data fixtures.Dataset) *Store {
	s := &Store{
		cfg:        cfg,
		provider:   provider,
		registry:   registry,
		clk:        clk,
		rng:        rng,
		notifier:   notifier,
		snapshots:  append([]models.MarketSnapshot(nil), data.Snapshots...),
		signals:    append([]models.TradingSignal(nil), data.Signals...),
		trades:     append([]models.TradeRecord(nil), data.Trades...),
		news:       append([]models.NewsEvent(nil), data.News...),
		strategies: append([]models.TradingStrategy(nil), data.Strategies...),
		indicators: data.Indicators,
		account:    data.Account,
		risk:       data.Risk,
		app:        data.App,
		baseline:   data,
		subIDs:     make(map[string]int),
	}

	// Anchor the balance so balance = baseBalance + sum(closed profit)
	// reproduces the fixture's numbers, then fold once so the account is
	// consistent with the closed-trade subset from the start.
	closedProfit := decimal.Zero
	for _, t := range s.trades {
		if t.Status == models.TradeClosed {
			closedProfit = closedProfit.Add(t.Profit)
		}
	}
	s.baseBalance = data.Account.Balance.Sub(closedProfit)
	s.recomputeAccountLocked()

	return s
}

// ExecuteTrade promotes an ACTIVE signal to EXECUTED and opens a trade
// for it at the configured standard lot size. It reports false when the
// signal does not exist, is not ACTIVE, or its market session is closed
// (crypto is always open); state is left untouched in every failure
// case.
func (s *Store) ExecuteTrade(signalID string) bool {
	now := s.clk.Now()

	s.mu.Lock()
	ok := s.executeTradeLocked(signalID, now)
	s.mu.Unlock()

	return ok
}

func (s *Store) executeTradeLocked(signalID string, now time.Time) bool {
	idx := -1
	for i := range s.signals {
		if s.signals[i].ID == signalID {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Printf("ExecuteTrade rejected: signal %s not found", signalID)
		return false
	}

	sig := s.signals[idx]
	if sig.Status != models.SignalActive {
		log.Printf("ExecuteTrade rejected: signal %s is %s, not ACTIVE", signalID, sig.Status)
		return false
	}
	if !session.Status(sig.Asset, now).IsOpen {
		log.Printf("ExecuteTrade rejected: market closed for %s", sig.Asset)
		return false
	}

	s.signals[idx].Status = models.SignalExecuted

	trade := models.TradeRecord{
		ID:            uuid.NewString(),
		SignalID:      sig.ID,
		Asset:         sig.Asset,
		Type:          sig.Type,
		EntryPrice:    sig.EntryPrice,
		ExitPrice:     decimal.Zero,
		StopLoss:      sig.StopLoss,
		TakeProfit:    sig.TakeProfit,
		Quantity:      decimal.NewFromFloat(s.cfg.StandardLotSize),
		Profit:        decimal.Zero,
		ProfitPercent: decimal.Zero,
		Timestamp:     now,
		Duration:      0,
		Status:        models.TradeOpen,
	}
	s.trades = append(s.trades, trade)

	log.Printf("Trade executed for signal %s: %s %s @ %s", sig.ID, sig.Type, sig.Asset, sig.EntryPrice.String())
	return true
}

// AddSignal assigns an id and timestamp to the signal and prepends it to
// the list. It reports false when the target market session is closed
// (crypto exempt).
func (s *Store) AddSignal(sig models.TradingSignal) bool {
	now := s.clk.Now()
	if !session.Status(sig.Asset, now).IsOpen {
		log.Printf("AddSignal rejected: market closed for %s", sig.Asset)
		return false
	}

	sig.ID = uuid.NewString()
	sig.Timestamp = now
	if sig.Status == "" {
		sig.Status = models.SignalActive
	}

	s.mu.Lock()
	s.signals = append([]models.TradingSignal{sig}, s.signals...)
	s.mu.Unlock()

	log.Printf("New trading signal added: %s %s %s", sig.ID, sig.Type, sig.Asset)
	return true
}

// Refresh recomputes the snapshots and resets the signal list to
// baseline data, after an artificial delay standing in for a backend
// call. While it runs IsLoading reports true. A cancelled context clears
// the flag and applies nothing.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	log.Println("Refreshing trading data...")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clk.After(s.cfg.RefreshDelay()):
	}

	now := s.clk.Now()

	snaps := make([]models.MarketSnapshot, 0, len(s.baseline.Snapshots))
	for _, base := range s.baseline.Snapshots {
		snaps = append(snaps, s.provider.Tick(base.Symbol, now))
	}
	sigs := make([]models.TradingSignal, 0, len(s.baseline.Signals))
	for _, sig := range s.baseline.Signals {
		sig.Timestamp = now
		sigs = append(sigs, sig)
	}

	s.mu.Lock()
	s.snapshots = snaps
	s.signals = sigs
	s.mu.Unlock()

	log.Println("Trading data refreshed")
	return nil
}

// UpdateRiskSettings shallow-merges the set fields into the current risk
// settings.
func (s *Store) UpdateRiskSettings(u RiskSettingsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.MaxRiskPerTrade != nil {
		s.risk.MaxRiskPerTrade = *u.MaxRiskPerTrade
	}
	if u.DailyLossLimit != nil {
		s.risk.DailyLossLimit = *u.DailyLossLimit
	}
	if u.WeeklyLossLimit != nil {
		s.risk.WeeklyLossLimit = *u.WeeklyLossLimit
	}
	if u.PositionSizePercent != nil {
		s.risk.PositionSizePercent = *u.PositionSizePercent
	}
	if u.StopLossPercent != nil {
		s.risk.StopLossPercent = *u.StopLossPercent
	}
	if u.TakeProfitPercent != nil {
		s.risk.TakeProfitPercent = *u.TakeProfitPercent
	}

	log.Println("Risk settings updated")
}

// UpdateAppSettings shallow-merges the set fields into the current app
// settings. A nil EnabledAssetClasses leaves the current set unchanged.
func (s *Store) UpdateAppSettings(u AppSettingsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Notifications != nil {
		s.app.Notifications = *u.Notifications
	}
	if u.AutoTrading != nil {
		s.app.AutoTrading = *u.AutoTrading
	}
	if u.SelectedTimeframe != nil {
		s.app.SelectedTimeframe = *u.SelectedTimeframe
	}
	if u.TradingMode != nil {
		s.app.TradingMode = *u.TradingMode
	}
	if u.EnabledAssetClasses != nil {
		s.app.EnabledAssetClasses = append([]models.AssetClass(nil), u.EnabledAssetClasses...)
	}

	log.Println("App settings updated")
}

// RiskSettingsUpdate is a partial update; nil fields are left unchanged.
type RiskSettingsUpdate struct {
	MaxRiskPerTrade     *float64
	DailyLossLimit      *float64
	WeeklyLossLimit     *float64
	PositionSizePercent *float64
	StopLossPercent     *float64
	TakeProfitPercent   *float64
}

// AppSettingsUpdate is a partial update; nil fields are left unchanged.
type AppSettingsUpdate struct {
	Notifications       *bool
	AutoTrading         *bool
	SelectedTimeframe   *models.TimeFrame
	TradingMode         *models.TradingMode
	EnabledAssetClasses []models.AssetClass
}

// roll draws a uniform float in [0,1) from the store RNG.
func (s *Store) roll() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64()
}

// intn draws a uniform int in [0,n) from the store RNG.
func (s *Store) intn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

// notifyAll delivers messages outside any lock.
func (s *Store) notifyAll(msgs []string) {
	if s.notifier == nil {
		return
	}
	for _, m := range msgs {
		s.notifier.Notify(m)
	}
}
