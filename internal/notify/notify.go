package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// Notifier delivers user-facing event messages (new signal, trade
// closed). The store only depends on this interface; tests substitute a
// recording fake.
type Notifier interface {
	Notify(text string)
}

// Telegram sends messages to a Telegram chat. Credentials come from the
// TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID environment variables; when
// they are missing every Notify is a logged no-op instead of a crash.
type Telegram struct{}

func NewTelegram() *Telegram { return &Telegram{} }

func (t *Telegram) Notify(text string) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")

	if token == "" || chatID == "" {
		log.Println("Warning: Telegram credentials missing, skipping notification")
		return
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)

	payload := map[string]string{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}

	if os.Getenv("PULSE_LOG_LEVEL") == "DEBUG" {
		log.Printf("[DEBUG] Telegram Notify: %s", text)
	}

	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Telegram Alert Failed: %v", err)
		return
	}
	resp.Body.Close()
}

// Log writes notifications to the process log. Used when Telegram is not
// configured.
type Log struct{}

func NewLog() *Log { return &Log{} }

func (l *Log) Notify(text string) {
	log.Printf("NOTIFY: %s", text)
}
