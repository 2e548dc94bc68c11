package events

import (
	"encoding/json"
	"sync"
)

type Recorded struct {
	Subject string
	Data    []byte
}

// Recorder keeps published events in memory. Handlers under test use it in
// place of NATS.
type Recorder struct {
	mu     sync.Mutex
	events []Recorded
	Err    error
}

func (r *Recorder) Publish(subject string, data any) error {
	if r.Err != nil {
		return r.Err
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Recorded{Subject: subject, Data: b})
	return nil
}

func (r *Recorder) Events() []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Recorded(nil), r.events...)
}

func (r *Recorder) Close() {}
