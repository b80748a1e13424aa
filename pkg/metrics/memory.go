package metrics

import (
	"sync"
	"time"
)

// InMemoryMetrics implements VerificationMetrics with counters
// held in memory. It is safe for concurrent use, which the
// parallel suite runner relies on.
type InMemoryMetrics struct {
	mu        sync.Mutex
	probes    map[string]int
	contracts map[string]int
	durations map[string][]time.Duration
	runTotal  int
}

// NewInMemoryMetrics creates an empty InMemoryMetrics.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		probes:    make(map[string]int),
		contracts: make(map[string]int),
		durations: make(map[string][]time.Duration),
	}
}

func outcome(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}

func (m *InMemoryMetrics) RecordProbe(assertion string, passed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probes[assertion+":"+outcome(passed)]++
}

func (m *InMemoryMetrics) RecordContract(
	contractID, status string, duration time.Duration,
) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contracts[contractID+":"+status]++
	m.durations[contractID] = append(m.durations[contractID], duration)
}

func (m *InMemoryMetrics) IncrementRunTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runTotal++
}

// ProbeCount returns how many probes of assertion ended with
// the given outcome.
func (m *InMemoryMetrics) ProbeCount(assertion string, passed bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.probes[assertion+":"+outcome(passed)]
}

// ContractCount returns the count for a contract+status pair.
func (m *InMemoryMetrics) ContractCount(contractID, status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contracts[contractID+":"+status]
}

// RunTotal returns the total number of runs.
func (m *InMemoryMetrics) RunTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runTotal
}

// AverageDuration returns the mean duration recorded for a
// contract, or zero if none were recorded.
func (m *InMemoryMetrics) AverageDuration(contractID string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	ds := m.durations[contractID]
	if len(ds) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total / time.Duration(len(ds))
}
