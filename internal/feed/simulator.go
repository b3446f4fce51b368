package feed

import (
	"math/rand"
	"sync"
	"time"

	"tradepulse/internal/models"
	"tradepulse/internal/session"

	"github.com/shopspring/decimal"
)

// Provider is the interface the store and registry consume. Any struct
// implementing these methods satisfies it, so tests can swap in a stub
// without touching the consumers.
type Provider interface {
	// Tick produces a fresh snapshot using the regime appropriate for
	// the symbol's session state at the given instant.
	Tick(symbol string, now time.Time) models.MarketSnapshot
	// HistoricalTick produces a snapshot with the reduced closed-market
	// noise band regardless of session state.
	HistoricalTick(symbol string, now time.Time) models.MarketSnapshot
}

// Volatility bands: symmetric uniform noise widths applied to the base
// price. The historical band is roughly a quarter of the live forex band.
const (
	forexBand      = 0.0002
	cryptoBand     = 0.002
	historicalBand = 0.0001
)

// basePrices anchors every known symbol; unknown symbols default to 1.0.
var basePrices = map[string]decimal.Decimal{
	"EURUSD": decimal.NewFromFloat(1.0845),
	"GBPUSD": decimal.NewFromFloat(1.2634),
	"BTCUSD": decimal.NewFromFloat(43250.50),
	"ETHUSD": decimal.NewFromFloat(2634.75),
	"USDJPY": decimal.NewFromFloat(149.85),
	"AUDUSD": decimal.NewFromFloat(0.6523),
}

// Symbols returns the known symbol universe in a stable order.
func Symbols() []string {
	return []string{"EURUSD", "GBPUSD", "BTCUSD", "ETHUSD", "USDJPY", "AUDUSD"}
}

// BasePrice returns the anchor price for a symbol, or 1.0 if unknown.
func BasePrice(symbol string) decimal.Decimal {
	if p, ok := basePrices[symbol]; ok {
		return p
	}
	return decimal.NewFromInt(1)
}

// Simulator generates synthetic ticks around fixed base prices. Each tick
// is independent of the previous one; there is deliberately no
// autocorrelation between successive samples.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator builds a Simulator around the given source of randomness.
// Tests pass a seeded rand.Rand for reproducible ticks.
func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng}
}

// Tick generates a live snapshot for the symbol. A closed session on a
// non-crypto symbol falls back to the reduced historical band.
func (s *Simulator) Tick(symbol string, now time.Time) models.MarketSnapshot {
	if !session.Status(symbol, now).IsOpen && !session.IsCrypto(symbol) {
		return s.HistoricalTick(symbol, now)
	}

	band := forexBand
	if session.IsCrypto(symbol) {
		band = cryptoBand
	}
	return s.generate(symbol, now, band, 0.01, 500_000, 1_000_000)
}

// HistoricalTick generates a snapshot with much smaller movements, used
// while the market is closed.
func (s *Simulator) HistoricalTick(symbol string, now time.Time) models.MarketSnapshot {
	return s.generate(symbol, now, historicalBand, 0.005, 100_000, 500_000)
}

// generate builds a snapshot from a single uniform noise draw U in
// [-band/2, band/2): price = base*(1+U), change = U*base,
// changePercent = U*100. High/low are the new price inflated/deflated by
// an independent small factor.
func (s *Simulator) generate(symbol string, now time.Time, band, rangeFactor float64, volumeFloor, volumeSpread int64) models.MarketSnapshot {
	s.mu.Lock()
	u := (s.rng.Float64() - 0.5) * band
	highFactor := s.rng.Float64() * rangeFactor
	lowFactor := s.rng.Float64() * rangeFactor
	volume := s.rng.Int63n(volumeSpread) + volumeFloor
	s.mu.Unlock()

	base := BasePrice(symbol)
	noise := decimal.NewFromFloat(u)
	price := base.Mul(decimal.NewFromInt(1).Add(noise))

	return models.MarketSnapshot{
		Symbol:        symbol,
		Price:         price,
		Change:        noise.Mul(base),
		ChangePercent: noise.Mul(decimal.NewFromInt(100)),
		Volume:        volume,
		High24h:       price.Mul(decimal.NewFromFloat(1 + highFactor)),
		Low24h:        price.Mul(decimal.NewFromFloat(1 - lowFactor)),
		Timestamp:     now,
	}
}
