package store

import (
	"tradepulse/internal/models"
	"tradepulse/internal/session"
)

// SignalFilter selects signals by a conjunction of criteria. Zero-valued
// fields match everything, so the zero filter returns the whole list.
type SignalFilter struct {
	Status    models.SignalStatus
	Timeframe models.TimeFrame
	Mode      models.TradingMode
	Asset     string
}

func (f SignalFilter) matches(sig models.TradingSignal) bool {
	if f.Status != "" && sig.Status != f.Status {
		return false
	}
	if f.Timeframe != "" && sig.Timeframe != f.Timeframe {
		return false
	}
	if f.Mode != "" && sig.Mode != f.Mode {
		return false
	}
	if f.Asset != "" && sig.Asset != f.Asset {
		return false
	}
	return true
}

// Snapshots returns a copy of the current market snapshots.
func (s *Store) Snapshots() []models.MarketSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MarketSnapshot(nil), s.snapshots...)
}

// Snapshot returns the current snapshot for one symbol.
func (s *Store) Snapshot(symbol string) (models.MarketSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, snap := range s.snapshots {
		if snap.Symbol == symbol {
			return snap, true
		}
	}
	return models.MarketSnapshot{}, false
}

// Signals returns the signals matching the filter, newest first.
func (s *Store) Signals(f SignalFilter) []models.TradingSignal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TradingSignal, 0, len(s.signals))
	for _, sig := range s.signals {
		if f.matches(sig) {
			out = append(out, sig)
		}
	}
	return out
}

// Trades returns a copy of the trade history.
func (s *Store) Trades() []models.TradeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TradeRecord(nil), s.trades...)
}

// Account returns the current account aggregates.
func (s *Store) Account() models.AccountInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

// RiskSettings returns the current risk configuration.
func (s *Store) RiskSettings() models.RiskSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.risk
}

// AppSettings returns the current app configuration.
func (s *Store) AppSettings() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app := s.app
	app.EnabledAssetClasses = append([]models.AssetClass(nil), s.app.EnabledAssetClasses...)
	return app
}

// News returns the news calendar.
func (s *Store) News() []models.NewsEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.NewsEvent(nil), s.news...)
}

// Strategies returns the strategy presets.
func (s *Store) Strategies() []models.TradingStrategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TradingStrategy(nil), s.strategies...)
}

// Indicators returns the canned indicator snapshot.
func (s *Store) Indicators() models.TechnicalIndicators {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indicators
}

// IsLoading reports whether a Refresh is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SessionStatus reports the session state for a symbol at the store's
// current clock time.
func (s *Store) SessionStatus(symbol string) models.SessionStatus {
	return session.Status(symbol, s.clk.Now())
}
