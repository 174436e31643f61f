package metrics

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const collectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationHeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marketplace_heap_alloc_bytes",
			Help: "Go heap allocation of the marketplace process",
		},
	)

	SystemLoad1 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_load1",
			Help: "One minute load average",
		},
	)

	ProcessRSS = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marketplace_process_rss_bytes",
			Help: "Resident set size of the marketplace process",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marketplace_goroutines",
			Help: "Number of goroutines of the marketplace process",
		},
	)
)

// StartSystemMetricsCollector снимает метрики хоста и процесса до отмены ctx.
func StartSystemMetricsCollector(ctx context.Context) {
	// без процесса (например, нет /proc) собираем только метрики хоста и рантайма
	self, _ := process.NewProcessWithContext(ctx, int32(os.Getpid())) //nolint:gosec // pid помещается в int32

	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collect(ctx, self)
			}
		}
	}()
}

func collect(ctx context.Context, self *process.Process) {
	if cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false); err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	if vmStat, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		SystemLoad1.Set(avg.Load1)
	}

	if self != nil {
		if info, err := self.MemoryInfoWithContext(ctx); err == nil {
			ProcessRSS.Set(float64(info.RSS))
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationHeapAlloc.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
