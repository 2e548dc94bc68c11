// Package livecalls backs the mid-call monitoring view. Calls are mocked; the
// voice platform does not stream live state to this service.
package livecalls

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"intake-insights-go/internal/types"
)

var ErrNotFound = errors.New("active call not found")

type Board struct {
	mu    sync.RWMutex
	calls []types.ActiveCall
	now   func() time.Time
}

func New(calls []types.ActiveCall) *Board {
	return &Board{calls: calls, now: time.Now}
}

// NewDemo seeds the board with two in-progress calls relative to now.
func NewDemo(now time.Time) *Board {
	b := New(demoCalls(now))
	b.now = func() time.Time { return now }
	return b
}

// List returns a snapshot with durations refreshed against the board clock.
func (b *Board) List() []types.ActiveCall {
	b.mu.RLock()
	defer b.mu.RUnlock()
	now := b.now()
	out := make([]types.ActiveCall, len(b.calls))
	for i, c := range b.calls {
		out[i] = withDuration(c, now)
	}
	return out
}

func (b *Board) Get(id string) (types.ActiveCall, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, c := range b.calls {
		if c.ID == id {
			return withDuration(c, b.now()), nil
		}
	}
	return types.ActiveCall{}, fmt.Errorf("call %s: %w", id, ErrNotFound)
}

// End removes the call from the board and returns its final state.
func (b *Board) End(id string) (types.ActiveCall, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, c := range b.calls {
		if c.ID == id {
			b.calls = append(b.calls[:i:i], b.calls[i+1:]...)
			ended := withDuration(c, b.now())
			ended.Status = "ended"
			return ended, nil
		}
	}
	return types.ActiveCall{}, fmt.Errorf("call %s: %w", id, ErrNotFound)
}

func withDuration(c types.ActiveCall, now time.Time) types.ActiveCall {
	if !c.StartTime.IsZero() && now.After(c.StartTime) {
		c.Duration = int(now.Sub(c.StartTime).Seconds())
	}
	return c
}

func demoCalls(now time.Time) []types.ActiveCall {
	return []types.ActiveCall{
		{
			ID:           "call_active_001",
			BotID:        "bot_med_001",
			PatientID:    "MED001",
			PatientName:  "John Smith",
			StartTime:    now.Add(-2 * time.Minute),
			Status:       "active",
			Duration:     120,
			PhoneNumber:  "+1-555-0123",
			CurrentStep:  "Gathering medical history",
			UrgencyLevel: types.UrgencyMedium,
			CollectedInfo: map[string]any{
				"reason_for_call": "Routine checkup",
				"pain_level":      3,
				"symptoms":        []string{"mild headache", "fatigue"},
				"medications":     []string{"Lisinopril", "Metformin"},
			},
			FunctionCalls: []types.LiveFunctionCall{
				{FunctionName: "get_patient_info", Timestamp: now.Add(-90 * time.Second), Status: "completed", Response: map[string]any{"patient_found": true, "last_visit": "2024-08-15"}},
				{FunctionName: "check_appointment_slots", Timestamp: now.Add(-30 * time.Second), Status: "pending"},
			},
			LiveTranscript: []string{
				"Bot: Hello, thank you for calling. I'm your medical intake assistant.",
				"Patient: Hi, I'd like to schedule a routine checkup.",
				"Bot: I'd be happy to help you with that. Can you please provide your medical ID?",
				"Patient: Yes, it's MED001.",
				"Bot: Thank you, John. I see you're in our system. How are you feeling today?",
				"Patient: I've been having some mild headaches and feeling a bit tired lately.",
			},
		},
		{
			ID:           "call_active_002",
			BotID:        "bot_med_001",
			PatientID:    "MED002",
			PatientName:  "Maria Rodriguez",
			StartTime:    now.Add(-5 * time.Minute),
			Status:       "active",
			Duration:     300,
			PhoneNumber:  "+1-555-0125",
			CurrentStep:  "Scheduling appointment",
			UrgencyLevel: types.UrgencyHigh,
			CollectedInfo: map[string]any{
				"reason_for_call": "Asthma emergency",
				"pain_level":      8,
				"symptoms":        []string{"severe breathing difficulty", "chest tightness"},
				"emergency":       true,
			},
			FunctionCalls: []types.LiveFunctionCall{
				{FunctionName: "get_patient_info", Timestamp: now.Add(-270 * time.Second), Status: "completed", Response: map[string]any{"patient_found": true, "allergies": []string{"Shellfish"}}},
				{FunctionName: "check_emergency_protocols", Timestamp: now.Add(-240 * time.Second), Status: "completed", Response: map[string]any{"emergency_level": "high", "recommend_911": true}},
			},
			LiveTranscript: []string{
				"Bot: Hello, this is your medical intake assistant. How can I help you today?",
				"Patient: I'm having trouble breathing, it's really bad.",
				"Bot: I understand this is urgent. Can you tell me your medical ID so I can access your information quickly?",
				"Patient: MED002, Maria Rodriguez.",
				"Bot: Maria, I see you have asthma. On a scale of 1-10, how would you rate your breathing difficulty?",
				"Patient: It's an 8, maybe 9. I can barely breathe.",
			},
		},
	}
}
