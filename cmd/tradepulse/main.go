package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tradepulse/internal/clock"
	"tradepulse/internal/config"
	"tradepulse/internal/feed"
	"tradepulse/internal/fixtures"
	"tradepulse/internal/logger"
	"tradepulse/internal/models"
	"tradepulse/internal/notify"
	"tradepulse/internal/store"
)

const FixtureFile = "fixtures.json"

// main is the entry point of the application.
func main() {
	// 1. Initialization
	cfg := config.Load()
	logger.Setup(cfg.LogFile, cfg.MaxLogSizeMB, cfg.MaxLogBackups)

	// 2. Setup Dependencies
	clk := clock.New()

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = clk.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	simulator := feed.NewSimulator(rng)
	registry := feed.NewRegistry(simulator, clk)

	var notifier notify.Notifier = notify.NewLog()
	if os.Getenv("TELEGRAM_BOT_TOKEN") != "" {
		notifier = notify.NewTelegram()
	}

	data := fixtures.Load(FixtureFile, clk.Now())
	s := store.New(cfg, simulator, registry, clk, rng, notifier, data)

	// 3. Start the periodic loops
	s.Start()
	log.Printf("TradePulse initialized (refresh %dms, signals %dms, settlement %dms)",
		cfg.RefreshPeriodMs, cfg.SignalPeriodMs, cfg.SettlementPeriodMs)

	// 4. Setup Signal Handling (Graceful Shutdown)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// 5. Main Loop: periodic console status report
	ticker := time.NewTicker(time.Duration(cfg.StatusReportMins) * time.Minute)
	defer ticker.Stop()

	reportStatus(s)

	for {
		select {
		case <-c:
			log.Println("Shutting down: system signal received.")
			s.Stop()
			registry.Cleanup()
			return
		case <-ticker.C:
			reportStatus(s)
		}
	}
}

// reportStatus logs a one-screen account and market summary.
func reportStatus(s *store.Store) {
	acct := s.Account()

	var sb strings.Builder
	sb.WriteString("--- STATUS ---\n")
	for _, snap := range s.Snapshots() {
		status := "CLOSED"
		if s.SessionStatus(snap.Symbol).IsOpen {
			status = "OPEN"
		}
		sb.WriteString(fmt.Sprintf("  %s %s [%s]\n", snap.Symbol, snap.Price.StringFixed(4), status))
	}

	active := s.Signals(store.SignalFilter{Status: models.SignalActive})
	open := 0
	for _, t := range s.Trades() {
		if t.Status == models.TradeOpen {
			open++
		}
	}

	sb.WriteString(fmt.Sprintf("  Active signals: %d | Open trades: %d\n", len(active), open))
	sb.WriteString(fmt.Sprintf("  Balance: $%s | Total P/L: $%s (win rate %.1f%%)",
		acct.Balance.StringFixed(2), acct.TotalProfit.StringFixed(2), acct.WinRate))
	log.Println(sb.String())
}
