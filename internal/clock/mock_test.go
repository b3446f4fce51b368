package clock

import (
	"testing"
	"time"
)

func TestMockAdvanceFiresTickers(t *testing.T) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	mock := NewMock(start)

	ticker := mock.NewTicker(time.Second)

	mock.Advance(500 * time.Millisecond)
	select {
	case <-ticker.C():
		t.Fatal("Ticker fired before its period elapsed")
	default:
	}

	mock.Advance(500 * time.Millisecond)
	select {
	case at := <-ticker.C():
		if !at.Equal(start.Add(time.Second)) {
			t.Errorf("Expected tick at %v, got %v", start.Add(time.Second), at)
		}
	default:
		t.Fatal("Ticker did not fire after its period elapsed")
	}

	if got := mock.Now(); !got.Equal(start.Add(time.Second)) {
		t.Errorf("Expected now %v, got %v", start.Add(time.Second), got)
	}
}

func TestMockStoppedTickerStaysQuiet(t *testing.T) {
	mock := NewMock(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	ticker := mock.NewTicker(time.Second)
	ticker.Stop()

	mock.Advance(5 * time.Second)
	select {
	case <-ticker.C():
		t.Fatal("Stopped ticker fired")
	default:
	}
}

func TestMockAfter(t *testing.T) {
	mock := NewMock(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	ch := mock.After(2 * time.Second)

	mock.Advance(time.Second)
	select {
	case <-ch:
		t.Fatal("After fired early")
	default:
	}

	mock.Advance(time.Second)
	select {
	case <-ch:
	default:
		t.Fatal("After did not fire at its deadline")
	}
}
