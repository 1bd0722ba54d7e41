package status

import (
	"log/slog"
	"sync/atomic"
)

// Metric names shared by the source and the frame loop
const (
	PageLoads     = "source.page_loads"
	PageHits      = "source.page_hits"
	PageEvictions = "source.page_evictions"
	PagesCached   = "source.pages_cached"
	LoadErrors    = "source.load_errors"
	Frames        = "frame.count"
	FrameCells    = "frame.cells"
	FrameMillis   = "frame.draw_ms"
	FrameMaxMs    = "frame.draw_max_ms"
)

// Registry groups counters and gauges
// A nil *Registry is valid and records nothing
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter returns the named counter, a throwaway one for a nil registry
func (r *Registry) Counter(name string) *atomic.Int64 {
	if r == nil {
		return new(atomic.Int64)
	}
	return r.Counters.Get(name)
}

// Gauge returns the named gauge, a throwaway one for a nil registry
func (r *Registry) Gauge(name string) *Gauge {
	if r == nil {
		return new(Gauge)
	}
	return r.Gauges.Get(name)
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	return r.Counters.Count() + r.Gauges.Count()
}

// LogValue renders every metric as a log group
func (r *Registry) LogValue() slog.Value {
	if r == nil {
		return slog.GroupValue()
	}
	attrs := make([]slog.Attr, 0, r.Count())
	for name, c := range r.Counters.All() {
		attrs = append(attrs, slog.Int64(name, c.Load()))
	}
	for name, g := range r.Gauges.All() {
		attrs = append(attrs, slog.Float64(name, g.Get()))
	}
	return slog.GroupValue(attrs...)
}
