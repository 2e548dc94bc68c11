package livecalls

import (
	"errors"
	"testing"
	"time"
)

func TestDemoBoard(t *testing.T) {
	now := time.Date(2024, 9, 19, 10, 0, 0, 0, time.UTC)
	b := NewDemo(now)

	calls := b.List()
	if len(calls) != 2 {
		t.Fatalf("expected 2 demo calls, got %d", len(calls))
	}
	if calls[0].Duration != 120 || calls[1].Duration != 300 {
		t.Errorf("unexpected durations %d, %d", calls[0].Duration, calls[1].Duration)
	}
}

func TestEnd(t *testing.T) {
	b := NewDemo(time.Now())

	ended, err := b.End("call_active_001")
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if ended.Status != "ended" {
		t.Errorf("expected ended status, got %s", ended.Status)
	}
	if n := len(b.List()); n != 1 {
		t.Errorf("expected 1 remaining call, got %d", n)
	}
	if _, err := b.Get("call_active_001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after end, got %v", err)
	}
	if _, err := b.End("call_active_001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second end, got %v", err)
	}
}

func TestListIsSnapshot(t *testing.T) {
	b := NewDemo(time.Now())
	calls := b.List()
	calls[0].Status = "on_hold"

	got, _ := b.Get(calls[0].ID)
	if got.Status != "active" {
		t.Errorf("mutating a snapshot leaked into the board: %s", got.Status)
	}
}
