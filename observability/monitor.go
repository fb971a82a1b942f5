// Package observability aggregates session counters and process telemetry.
package observability

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Stats is a point-in-time view of the session counters.
type Stats struct {
	Accepted         uint64  `json:"accepted"`
	Rejected         uint64  `json:"rejected"`
	DeliveryFailures uint64  `json:"delivery_failures"`
	ProtocolErrors   uint64  `json:"protocol_errors"`
	Quits            uint64  `json:"quits"`
	RSSBytes         uint64  `json:"rss_bytes"`
	CPUPercent       float64 `json:"cpu_percent"`
}

// Monitor counts session outcomes. Counters are atomic so both
// connection workers can report without contending on a lock; the
// telemetry snapshot is mutex-guarded.
type Monitor struct {
	log *slog.Logger

	accepted         uint64
	rejected         uint64
	deliveryFailures uint64
	protocolErrors   uint64
	quits            uint64

	mu         sync.Mutex
	rssBytes   uint64
	cpuPercent float64
}

func NewMonitor(log *slog.Logger) *Monitor {
	return &Monitor{log: log}
}

func (m *Monitor) IncrAccepted()         { atomic.AddUint64(&m.accepted, 1) }
func (m *Monitor) IncrRejected()         { atomic.AddUint64(&m.rejected, 1) }
func (m *Monitor) IncrDeliveryFailures() { atomic.AddUint64(&m.deliveryFailures, 1) }
func (m *Monitor) IncrProtocolErrors()   { atomic.AddUint64(&m.protocolErrors, 1) }
func (m *Monitor) IncrQuits()            { atomic.AddUint64(&m.quits, 1) }

// SetProcStats merges the latest process telemetry.
func (m *Monitor) SetProcStats(rssBytes uint64, cpuPercent float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rssBytes = rssBytes
	m.cpuPercent = cpuPercent
}

// Report returns a consistent snapshot of all counters.
func (m *Monitor) Report() Stats {
	m.mu.Lock()
	rss, cpu := m.rssBytes, m.cpuPercent
	m.mu.Unlock()

	return Stats{
		Accepted:         atomic.LoadUint64(&m.accepted),
		Rejected:         atomic.LoadUint64(&m.rejected),
		DeliveryFailures: atomic.LoadUint64(&m.deliveryFailures),
		ProtocolErrors:   atomic.LoadUint64(&m.protocolErrors),
		Quits:            atomic.LoadUint64(&m.quits),
		RSSBytes:         rss,
		CPUPercent:       cpu,
	}
}

// LogReport emits the final counters at session close.
func (m *Monitor) LogReport() {
	s := m.Report()
	m.log.Info("Session counters",
		"accepted", s.Accepted,
		"rejected", s.Rejected,
		"delivery_failures", s.DeliveryFailures,
		"protocol_errors", s.ProtocolErrors,
		"quits", s.Quits,
	)
}
