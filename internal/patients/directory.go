// Package patients is the lookup table behind the pre-call and function-call
// webhooks.
package patients

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"intake-insights-go/internal/types"
)

var ErrNotFound = errors.New("patient not found")

type Directory struct {
	mu      sync.RWMutex
	byID    map[string]types.Patient
	idOrder []string
}

func New(records []types.Patient) *Directory {
	d := &Directory{byID: make(map[string]types.Patient, len(records))}
	for _, p := range records {
		d.put(p)
	}
	return d
}

// Default returns a directory holding the built-in demo patients.
func Default() *Directory {
	return New(Seed())
}

func (d *Directory) put(p types.Patient) {
	if _, exists := d.byID[p.ID]; !exists {
		d.idOrder = append(d.idOrder, p.ID)
	}
	d.byID[p.ID] = p
}

// Upsert adds or replaces records, e.g. after importing a spreadsheet.
func (d *Directory) Upsert(records ...types.Patient) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range records {
		d.put(p)
	}
}

func (d *Directory) ByID(id string) (types.Patient, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.byID[strings.TrimSpace(id)]
	if !ok {
		return types.Patient{}, fmt.Errorf("medical id %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// ByPhone matches the caller number exactly; the first inserted match wins.
func (d *Directory) ByPhone(phone string) (types.Patient, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if phone != "" {
		for _, id := range d.idOrder {
			if p := d.byID[id]; p.Phone == phone {
				return p, nil
			}
		}
	}
	return types.Patient{}, fmt.Errorf("phone %q: %w", phone, ErrNotFound)
}

func (d *Directory) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]string, 0, len(d.byID))
	for id := range d.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (d *Directory) All() []types.Patient {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]types.Patient, 0, len(d.idOrder))
	for _, id := range d.idOrder {
		out = append(out, d.byID[id])
	}
	return out
}

// Summary is the sentence handed back to the voice agent after a lookup.
func Summary(p types.Patient) string {
	return fmt.Sprintf("Patient %s found. DOB: %s. Known allergies: %s. Current conditions: %s. Last visit: %s. Insurance: %s.",
		p.Name, p.DOB, strings.Join(p.Allergies, ", "), strings.Join(p.Conditions, ", "), p.LastVisit, p.Insurance.Provider)
}

// Instructions is the pre-call briefing for the voice agent.
func Instructions(p types.Patient) string {
	return fmt.Sprintf("Patient %s found. Last visit: %s. Known allergies: %s",
		p.Name, p.LastVisit, strings.Join(p.Allergies, ", "))
}

const NewPatientInstructions = "New patient intake required. Please collect full medical history."
