package main

import (
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"

	"listing-view/models"
	"listing-view/utils"
)

type memoryStore struct {
	runs     map[uuid.UUID][]*models.Summary
	writeErr error
	fetchErr error
}

func (m *memoryStore) WriteRun(runID uuid.UUID, summaries []*models.Summary) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	stored := make([]*models.Summary, len(summaries))
	for i, s := range summaries {
		cp := *s
		stored[i] = &cp
	}
	m.runs[runID] = stored
	return nil
}

func (m *memoryStore) FetchRun(runID uuid.UUID) ([]*models.Summary, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.runs[runID], nil
}

func (m *memoryStore) Close() error { return nil }

func TestPersist(t *testing.T) {
	logger := utils.NewLoggerTo(io.Discard, io.Discard, utils.LevelError)
	summaries := []*models.Summary{{ID: "a"}, {ID: "b"}}
	broken := errors.New("connection reset")

	tests := []struct {
		name       string
		store      *memoryStore
		fromMemory bool
	}{
		{"read back", &memoryStore{runs: map[uuid.UUID][]*models.Summary{}}, false},
		{"write fails", &memoryStore{writeErr: broken}, true},
		{"fetch fails", &memoryStore{runs: map[uuid.UUID][]*models.Summary{}, fetchErr: broken}, true},
	}

	for _, tt := range tests {
		got := persist(tt.store, logger, uuid.New(), summaries)
		if len(got) != 2 || got[1].ID != "b" {
			t.Errorf("%s: got %+v", tt.name, got)
			continue
		}
		if fromMemory := got[0] == summaries[0]; fromMemory != tt.fromMemory {
			t.Errorf("%s: in-memory rows reported = %v, want %v", tt.name, fromMemory, tt.fromMemory)
		}
	}
}
