package feed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// Fixed instants in January 2026: the 7th is a Wednesday (forex open),
// the 3rd a Saturday (forex closed).
var (
	openNow   = time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	closedNow = time.Date(2026, time.January, 3, 12, 0, 0, 0, time.UTC)
)

func maxNoise(snap, base decimal.Decimal) float64 {
	diff, _ := snap.Sub(base).Div(base).Abs().Float64()
	return diff
}

func TestTickForexLiveBand(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(1)))
	base := BasePrice("EURUSD")

	for i := 0; i < 50; i++ {
		snap := sim.Tick("EURUSD", openNow)

		if got := maxNoise(snap.Price, base); got > 0.0001 {
			t.Fatalf("Tick %d: forex noise %.6f outside live band", i, got)
		}
		if snap.Volume < 500_000 || snap.Volume >= 1_500_000 {
			t.Fatalf("Tick %d: live volume %d out of range", i, snap.Volume)
		}
		if snap.High24h.LessThan(snap.Price) || snap.Low24h.GreaterThan(snap.Price) {
			t.Fatalf("Tick %d: price %s outside high/low %s/%s", i, snap.Price, snap.High24h, snap.Low24h)
		}
		if !snap.Timestamp.Equal(openNow) {
			t.Fatalf("Tick %d: wrong timestamp %v", i, snap.Timestamp)
		}
	}
}

func TestTickCryptoBand(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(2)))
	base := BasePrice("BTCUSD")

	// Crypto uses the wider band even while forex is closed.
	for i := 0; i < 50; i++ {
		snap := sim.Tick("BTCUSD", closedNow)
		if got := maxNoise(snap.Price, base); got > 0.001 {
			t.Fatalf("Tick %d: crypto noise %.6f outside band", i, got)
		}
	}
}

func TestTickClosedSessionUsesHistoricalBand(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(3)))
	base := BasePrice("EURUSD")

	for i := 0; i < 50; i++ {
		snap := sim.Tick("EURUSD", closedNow)

		if got := maxNoise(snap.Price, base); got > 0.00005 {
			t.Fatalf("Tick %d: closed-session noise %.7f outside reduced band", i, got)
		}
		if snap.Volume < 100_000 || snap.Volume >= 600_000 {
			t.Fatalf("Tick %d: historical volume %d out of range", i, snap.Volume)
		}
	}
}

func TestTickUnknownSymbolDefaultsToOne(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(4)))

	snap := sim.Tick("XAUUSD", openNow)
	if got := maxNoise(snap.Price, decimal.NewFromInt(1)); got > 0.0001 {
		t.Errorf("Unknown symbol should orbit base price 1.0, noise %.6f", got)
	}
}

func TestChangeFieldsDeriveFromTheSameDraw(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(5)))
	base := BasePrice("EURUSD")

	snap := sim.Tick("EURUSD", openNow)

	// price = base*(1+U), change = U*base, changePercent = U*100 for one
	// draw U, so price-base == change and change*100 == changePercent*base.
	if !snap.Price.Sub(base).Equal(snap.Change) {
		t.Errorf("price %s inconsistent with change %s", snap.Price, snap.Change)
	}
	left := snap.Change.Mul(decimal.NewFromInt(100))
	right := snap.ChangePercent.Mul(base)
	if !left.Equal(right) {
		t.Errorf("changePercent %s inconsistent with change %s", snap.ChangePercent, snap.Change)
	}
}

func TestSeededSimulatorsAreReproducible(t *testing.T) {
	a := NewSimulator(rand.New(rand.NewSource(99)))
	b := NewSimulator(rand.New(rand.NewSource(99)))

	for i := 0; i < 10; i++ {
		sa := a.Tick("GBPUSD", openNow)
		sb := b.Tick("GBPUSD", openNow)
		if !sa.Price.Equal(sb.Price) || sa.Volume != sb.Volume {
			t.Fatalf("Tick %d diverged: %s/%d vs %s/%d", i, sa.Price, sa.Volume, sb.Price, sb.Volume)
		}
	}
}
