package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"

	"intake-insights-go/internal/types"
)

type MemoryStore struct {
	mu   sync.RWMutex
	logs []types.CallLog
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Append(_ context.Context, log types.CallLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, cloneLog(log))
	return nil
}

func (m *MemoryStore) List(_ context.Context, f Filter) ([]types.CallLog, error) {
	m.mu.RLock()
	out := make([]types.CallLog, 0, len(m.logs))
	for _, l := range m.logs {
		if f.BotID != "" && l.BotID != f.BotID {
			continue
		}
		out = append(out, cloneLog(l))
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (types.CallLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.logs {
		if l.ID == id {
			return cloneLog(l), nil
		}
	}
	return types.CallLog{}, fmt.Errorf("call log %s: %w", id, ErrNotFound)
}

func (m *MemoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.logs), nil
}

func (m *MemoryStore) Close() {}

// cloneLog detaches the slices so callers never share backing arrays with
// stored logs.
func cloneLog(l types.CallLog) types.CallLog {
	l.NextSteps = slices.Clone(l.NextSteps)
	l.Analysis.InformationCollected = slices.Clone(l.Analysis.InformationCollected)
	if l.FunctionCalls != nil {
		calls := make([]types.FunctionCallRecord, len(l.FunctionCalls))
		for i, fc := range l.FunctionCalls {
			fc.Parameters = maps.Clone(fc.Parameters)
			fc.Response = maps.Clone(fc.Response)
			calls[i] = fc
		}
		l.FunctionCalls = calls
	}
	return l
}
