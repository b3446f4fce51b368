package store

import (
	"fmt"
	"log"
	"time"

	"tradepulse/internal/models"
	"tradepulse/internal/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// modeTimeframes keys the signal generator's timeframe choice off the
// current trading mode.
var modeTimeframes = map[models.TradingMode][]models.TimeFrame{
	models.ModeScalping:     {models.TF1m, models.TF5m},
	models.ModeDayTrading:   {models.TF15m, models.TF30m, models.TF1h},
	models.ModeSwingTrading: {models.TF4h, models.TF1d, models.TF1w},
}

var signalReasonings = []string{
	"RSI oversold, MACD bullish crossover, price above EMA20",
	"Break of resistance with rising volume",
	"Bearish divergence on RSI at key resistance",
	"Price rejected the 50-period SMA, momentum fading",
	"Support retest holding, higher lows forming",
	"MACD histogram flip with widening Bollinger bands",
}

// Start launches the refresh, signal-generation and settlement loops and
// subscribes the store to live updates for every tracked symbol.
func (s *Store) Start() {
	s.stop = make(chan struct{})

	s.wg.Add(3)
	go s.loop(s.cfg.RefreshPeriod(), s.refreshTick)
	go s.loop(s.cfg.SignalPeriod(), s.signalTick)
	go s.loop(s.cfg.SettlementPeriod(), s.settlementTick)

	if s.registry != nil {
		s.mu.RLock()
		symbols := make([]string, 0, len(s.snapshots))
		for _, snap := range s.snapshots {
			symbols = append(symbols, snap.Symbol)
		}
		s.mu.RUnlock()

		for _, symbol := range symbols {
			id := s.registry.Subscribe(symbol, s.cfg.LiveFeedInterval(), s.applySnapshot)
			s.subIDs[symbol] = id
		}
	}
}

// Stop tears the loops down and drops the live subscriptions.
func (s *Store) Stop() {
	close(s.stop)
	s.wg.Wait()

	if s.registry != nil {
		for symbol, id := range s.subIDs {
			s.registry.Unsubscribe(symbol, id)
			delete(s.subIDs, symbol)
		}
	}
}

func (s *Store) loop(period time.Duration, tick func()) {
	defer s.wg.Done()

	ticker := s.clk.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C():
			tick()
		}
	}
}

// refreshTick recomputes every tracked snapshot in place. The provider
// applies the wider open-market noise band or the reduced closed-market
// band per symbol.
func (s *Store) refreshTick() {
	now := s.clk.Now()

	s.mu.Lock()
	for i := range s.snapshots {
		s.snapshots[i] = s.provider.Tick(s.snapshots[i].Symbol, now)
	}
	s.mu.Unlock()
}

// applySnapshot replaces one symbol's snapshot with a live update pushed
// by the subscription registry.
func (s *Store) applySnapshot(snap models.MarketSnapshot) {
	s.mu.Lock()
	for i := range s.snapshots {
		if s.snapshots[i].Symbol == snap.Symbol {
			s.snapshots[i] = snap
			break
		}
	}
	s.mu.Unlock()
}

// signalTick is one pass of the signal generator: with the configured
// chance, pick an open-market symbol from an enabled asset class and
// prepend a fresh ACTIVE signal, capping the list. With auto-trading on,
// high-confidence signals are executed immediately.
func (s *Store) signalTick() {
	now := s.clk.Now()
	var msgs []string

	s.mu.Lock()
	if s.roll() < s.cfg.SignalChancePerTick {
		var candidates []models.MarketSnapshot
		for _, snap := range s.snapshots {
			if !session.Status(snap.Symbol, now).IsOpen {
				continue
			}
			if !s.app.AssetClassEnabled(session.AssetClassOf(snap.Symbol)) {
				continue
			}
			candidates = append(candidates, snap)
		}

		if len(candidates) > 0 {
			sig := s.buildSignal(candidates[s.intn(len(candidates))], now)
			s.signals = append([]models.TradingSignal{sig}, s.signals...)
			if len(s.signals) > s.cfg.SignalListCap {
				s.signals = s.signals[:s.cfg.SignalListCap]
			}
			log.Printf("Signal generated: %s %s %s (confidence %d)", sig.ID, sig.Type, sig.Asset, sig.Confidence)

			if s.app.Notifications {
				msgs = append(msgs, fmt.Sprintf("📈 *NEW SIGNAL*: %s %s @ %s (confidence %d%%)",
					sig.Type, sig.Asset, sig.EntryPrice.StringFixed(4), sig.Confidence))
			}

			if s.app.AutoTrading && sig.Confidence > s.cfg.AutoTradeConfidence {
				if s.executeTradeLocked(sig.ID, now) {
					log.Printf("Auto-trading executed signal %s", sig.ID)
				}
			}
		}
	}
	s.mu.Unlock()

	s.notifyAll(msgs)
}

// buildSignal derives a signal from the current snapshot: BUY/SELL
// uniformly, stop at ∓2% and target at ±4% of entry depending on
// direction, confidence uniform in [70,100], timeframe drawn from the
// current trading mode's set.
func (s *Store) buildSignal(snap models.MarketSnapshot, now time.Time) models.TradingSignal {
	side := models.SignalBuy
	if s.roll() < 0.5 {
		side = models.SignalSell
	}

	entry := snap.Price
	var stop, target decimal.Decimal
	if side == models.SignalBuy {
		stop = entry.Mul(decimal.NewFromFloat(0.98))
		target = entry.Mul(decimal.NewFromFloat(1.04))
	} else {
		stop = entry.Mul(decimal.NewFromFloat(1.02))
		target = entry.Mul(decimal.NewFromFloat(0.96))
	}

	mode := s.app.TradingMode
	frames := modeTimeframes[mode]
	if len(frames) == 0 {
		frames = modeTimeframes[models.ModeDayTrading]
	}

	return models.TradingSignal{
		ID:         uuid.NewString(),
		Type:       side,
		Asset:      snap.Symbol,
		EntryPrice: entry,
		StopLoss:   stop,
		TakeProfit: target,
		Confidence: 70 + s.intn(31),
		Timeframe:  frames[s.intn(len(frames))],
		Mode:       mode,
		Timestamp:  now,
		Reasoning:  signalReasonings[s.intn(len(signalReasonings))],
		Status:     models.SignalActive,
	}
}

// settlementTick closes each OPEN trade with the configured chance,
// resolving win/loss at the configured win probability, then refolds the
// account over the CLOSED subset.
func (s *Store) settlementTick() {
	now := s.clk.Now()
	var msgs []string

	s.mu.Lock()
	closedAny := false
	for i := range s.trades {
		if s.trades[i].Status != models.TradeOpen {
			continue
		}
		if s.roll() >= s.cfg.SettlementChancePerTick {
			continue
		}

		win := s.roll() < s.cfg.WinProbability
		s.closeTradeLocked(i, win, now)
		closedAny = true

		t := s.trades[i]
		log.Printf("Trade %s settled: %s %s profit %s", t.ID, t.Type, t.Asset, t.Profit.StringFixed(2))
		if s.app.Notifications {
			msgs = append(msgs, fmt.Sprintf("💰 *TRADE CLOSED*: %s %s P/L $%s (%s%%)",
				t.Type, t.Asset, t.Profit.StringFixed(2), t.ProfitPercent.StringFixed(2)))
		}
	}
	if closedAny {
		s.recomputeAccountLocked()
	}
	s.mu.Unlock()

	s.notifyAll(msgs)
}

// closeTradeLocked settles one trade exactly once: exit at the take
// profit on a win, the stop loss on a loss; profit is signed by
// direction; duration is wall-clock minutes since the trade opened.
// Already-CLOSED trades are never touched again.
func (s *Store) closeTradeLocked(i int, win bool, now time.Time) {
	t := &s.trades[i]
	if t.Status != models.TradeOpen {
		return
	}

	exit := t.TakeProfit
	if !win {
		exit = t.StopLoss
	}

	profit := exit.Sub(t.EntryPrice).Mul(t.Quantity)
	if t.Type == models.SignalSell {
		profit = profit.Neg()
	}

	notional := t.EntryPrice.Mul(t.Quantity)
	profitPct := decimal.Zero
	if !notional.IsZero() {
		profitPct = profit.Div(notional).Mul(decimal.NewFromInt(100))
	}

	t.ExitPrice = exit
	t.Profit = profit
	t.ProfitPercent = profitPct
	t.Duration = int(now.Sub(t.Timestamp).Minutes())
	t.Status = models.TradeClosed
}

// recomputeAccountLocked refolds the account over all CLOSED trades.
// Never incremental: total profit, balance, trade count and win rate are
// derived from scratch so they cannot drift.
func (s *Store) recomputeAccountLocked() {
	closed := 0
	wins := 0
	total := decimal.Zero

	for _, t := range s.trades {
		if t.Status != models.TradeClosed {
			continue
		}
		closed++
		total = total.Add(t.Profit)
		if t.Profit.IsPositive() {
			wins++
		}
	}

	s.account.TotalTrades = closed
	s.account.TotalProfit = total
	s.account.Balance = s.baseBalance.Add(total)
	// The dashboard carries running profit on top of the balance as
	// equity; margin stays at its fixture value.
	s.account.Equity = s.account.Balance.Add(total)
	s.account.FreeMargin = s.account.Equity.Sub(s.account.Margin)
	if !s.account.Margin.IsZero() {
		s.account.MarginLevel = s.account.Equity.Div(s.account.Margin).Mul(decimal.NewFromInt(100))
	}
	if closed > 0 {
		s.account.WinRate = 100 * float64(wins) / float64(closed)
	} else {
		s.account.WinRate = 0
	}
}
