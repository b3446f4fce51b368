package fixtures

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tradepulse/internal/models"

	"github.com/shopspring/decimal"
)

var anchor = time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)

func TestDefaultDataset(t *testing.T) {
	d := Default(anchor)

	if len(d.Snapshots) != 4 {
		t.Errorf("Expected 4 baseline snapshots, got %d", len(d.Snapshots))
	}
	if len(d.Signals) != 2 {
		t.Errorf("Expected 2 baseline signals, got %d", len(d.Signals))
	}
	if len(d.Trades) != 3 {
		t.Errorf("Expected 3 baseline trades, got %d", len(d.Trades))
	}
	if len(d.News) != 3 {
		t.Errorf("Expected 3 news events, got %d", len(d.News))
	}
	if len(d.Strategies) != 3 {
		t.Errorf("Expected 3 strategy presets, got %d", len(d.Strategies))
	}

	for _, tr := range d.Trades {
		if tr.Status != models.TradeClosed {
			t.Errorf("Baseline trade %s should be CLOSED, got %s", tr.ID, tr.Status)
		}
	}

	// The closed profits must sum to the account's total profit, so the
	// store's fold reproduces the fixture numbers exactly.
	total := decimal.Zero
	for _, tr := range d.Trades {
		total = total.Add(tr.Profit)
	}
	if !total.Equal(d.Account.TotalProfit) {
		t.Errorf("Baseline trade profits sum to %s, account says %s", total, d.Account.TotalProfit)
	}

	if !d.Account.Balance.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("Expected balance 10000, got %s", d.Account.Balance)
	}
	if !d.Account.Equity.Equal(decimal.NewFromInt(10225)) {
		t.Errorf("Expected equity 10225, got %s", d.Account.Equity)
	}
}

func TestDefaultSignalsAreActive(t *testing.T) {
	d := Default(anchor)

	for _, sig := range d.Signals {
		if sig.Status != models.SignalActive {
			t.Errorf("Baseline signal %s should be ACTIVE, got %s", sig.ID, sig.Status)
		}
		if sig.Timestamp.After(anchor) {
			t.Errorf("Baseline signal %s stamped in the future", sig.ID)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	d := Load(filepath.Join(t.TempDir(), "absent.json"), anchor)

	if len(d.Snapshots) != 4 || len(d.Signals) != 2 {
		t.Error("Missing fixture file must fall back to the built-in dataset")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	d := Load("", anchor)

	if len(d.Snapshots) != 4 {
		t.Error("Empty path must fall back to the built-in dataset")
	}
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := Load(path, anchor)

	if len(d.Snapshots) != 4 {
		t.Error("Malformed fixture file must fall back to the built-in dataset")
	}
}

func TestLoadFixtureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	body := `{
		"snapshots": [
			{"symbol": "EURUSD", "price": "1.1000", "volume": 42}
		],
		"account": {"balance": "5000", "total_trades": 1}
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	d := Load(path, anchor)

	if len(d.Snapshots) != 1 || d.Snapshots[0].Symbol != "EURUSD" {
		t.Fatalf("Expected the file's snapshot list, got %d entries", len(d.Snapshots))
	}
	if !d.Snapshots[0].Price.Equal(decimal.NewFromFloat(1.1)) {
		t.Errorf("Expected price 1.1000, got %s", d.Snapshots[0].Price)
	}
	if !d.Account.Balance.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Expected balance 5000, got %s", d.Account.Balance)
	}
	if d.Account.TotalTrades != 1 {
		t.Errorf("Expected 1 total trade, got %d", d.Account.TotalTrades)
	}
}
