package session

import (
	"time"

	"tradepulse/internal/models"
)

// The single global forex schedule: open continuously from Sunday 22:00
// UTC through Friday 22:00 UTC, closed otherwise. Crypto trades 24/7.
const (
	openDay   = time.Sunday
	openHour  = 22
	closeDay  = time.Friday
	closeHour = 22
)

// cryptoMarkets is the allow-list of always-open symbols.
var cryptoMarkets = map[string]bool{
	"BTCUSD": true,
	"ETHUSD": true,
	"ADAUSD": true,
	"DOTUSD": true,
}

// IsCrypto reports whether the symbol is on the 24/7 crypto allow-list.
func IsCrypto(symbol string) bool {
	return cryptoMarkets[symbol]
}

// AssetClassOf maps a symbol to its asset class. Everything not on the
// crypto allow-list follows the forex schedule and is classed as FOREX.
func AssetClassOf(symbol string) models.AssetClass {
	if IsCrypto(symbol) {
		return models.AssetCrypto
	}
	return models.AssetForex
}

// Status computes the session state for symbol at the given instant.
// Pure function of now; repeated calls with the same now yield the same
// result.
func Status(symbol string, now time.Time) models.SessionStatus {
	utc := now.UTC()

	if IsCrypto(symbol) {
		return models.SessionStatus{
			IsOpen:   true,
			Timezone: "UTC",
		}
	}

	day := utc.Weekday()
	hour := utc.Hour()

	isWeekend := day == time.Saturday || (day == time.Sunday && hour < openHour)
	isFridayAfterClose := day == closeDay && hour >= closeHour

	if isWeekend || isFridayAfterClose {
		next := nextOpen(utc)
		return models.SessionStatus{
			IsOpen:   false,
			NextOpen: &next,
			Timezone: "UTC",
			Reason:   "Forex markets are closed on weekends",
		}
	}

	next := nextClose(utc)
	return models.SessionStatus{
		IsOpen:    true,
		NextClose: &next,
		Timezone:  "UTC",
	}
}

// nextOpen returns the next Sunday 22:00 UTC strictly after now.
// On Sunday before 22:00 that is the same day's boundary, not the one a
// week out.
func nextOpen(utc time.Time) time.Time {
	days := (7 + int(openDay) - int(utc.Weekday())) % 7
	open := time.Date(utc.Year(), utc.Month(), utc.Day(), openHour, 0, 0, 0, time.UTC).
		AddDate(0, 0, days)
	if !open.After(utc) {
		open = open.AddDate(0, 0, 7)
	}
	return open
}

// nextClose returns the upcoming Friday 22:00 UTC.
func nextClose(utc time.Time) time.Time {
	days := (7 + int(closeDay) - int(utc.Weekday())) % 7
	close := time.Date(utc.Year(), utc.Month(), utc.Day(), closeHour, 0, 0, 0, time.UTC).
		AddDate(0, 0, days)
	if !close.After(utc) {
		close = close.AddDate(0, 0, 7)
	}
	return close
}
