package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Requests               uint64
	RequestsNotFound       uint64
	RequestsServerError    uint64
	RequestDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	requests               atomic.Uint64
	requestsNotFound       atomic.Uint64
	requestsServerError    atomic.Uint64
	requestDurationTotalNs atomic.Int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		Requests:               m.requests.Load(),
		RequestsNotFound:       m.requestsNotFound.Load(),
		RequestsServerError:    m.requestsServerError.Load(),
		RequestDurationTotalNs: m.requestDurationTotalNs.Load(),
	}
}

// ObserveRequest increments the request counters.
func (m *InMemoryRecorder) ObserveRequest(status int, duration time.Duration) {
	m.requests.Add(1)
	m.requestDurationTotalNs.Add(duration.Nanoseconds())

	switch {
	case status == 404:
		m.requestsNotFound.Add(1)
	case status >= 500:
		m.requestsServerError.Add(1)
	}
}
