package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"turn-chat/observability"
)

// Telemetry periodically samples the server's own process stats
// (RSS, CPU) into the monitor while a session is running.
type Telemetry struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	interval time.Duration
}

func NewTelemetry(log *slog.Logger, monitor *observability.Monitor, interval time.Duration) *Telemetry {
	return &Telemetry{log: log, monitor: monitor, interval: interval}
}

func (w *Telemetry) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			memInfo, err := p.MemoryInfo()
			if err != nil {
				w.log.Debug("Failed to collect memory stats", "error", err)
				continue
			}
			cpuPercent, err := p.CPUPercent()
			if err != nil {
				w.log.Debug("Failed to collect cpu stats", "error", err)
				continue
			}
			w.monitor.SetProcStats(memInfo.RSS, cpuPercent)
			w.log.Debug("Telemetry sample", "rss_bytes", memInfo.RSS, "cpu_percent", cpuPercent)
		}
	}
}
