package repository

import (
	"errors"
	"sync"

	"rental-sim/domain"
)

// DefaultMaxStoredRuns bounds the in-memory store; each run holds up to
// 1200 projection rows and 1200 table rows.
const DefaultMaxStoredRuns = 500

// SimulationRepositoryMemory is an in-memory implementation of SimulationRepository.
// Once maxRuns runs are stored, saving a new one evicts the oldest.
type SimulationRepositoryMemory struct {
	mu      sync.RWMutex
	data    map[string]domain.SimulationRun
	order   []string
	maxRuns int
}

// NewSimulationRepositoryMemory creates a new in-memory simulation repository
// holding at most DefaultMaxStoredRuns runs.
func NewSimulationRepositoryMemory() *SimulationRepositoryMemory {
	return NewSimulationRepositoryMemoryWithLimit(DefaultMaxStoredRuns)
}

// NewSimulationRepositoryMemoryWithLimit creates a store holding at most
// maxRuns runs. A non-positive limit falls back to DefaultMaxStoredRuns.
func NewSimulationRepositoryMemoryWithLimit(maxRuns int) *SimulationRepositoryMemory {
	if maxRuns < 1 {
		maxRuns = DefaultMaxStoredRuns
	}
	return &SimulationRepositoryMemory{
		data:    map[string]domain.SimulationRun{},
		maxRuns: maxRuns,
	}
}

// Save stores the simulation run in memory.
func (r *SimulationRepositoryMemory) Save(run domain.SimulationRun) error {
	if run.ID == "" {
		return errors.New("simulation run has no id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[run.ID]; !exists {
		r.order = append(r.order, run.ID)
		// Descartar las corridas más antiguas
		for len(r.order) > r.maxRuns {
			delete(r.data, r.order[0])
			r.order = r.order[1:]
		}
	}
	r.data[run.ID] = run
	return nil
}

func (r *SimulationRepositoryMemory) Get(id string) (domain.SimulationRun, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.data[id]
	return run, ok
}

// Len returns the number of stored runs.
func (r *SimulationRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
