package status

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestMetricMapStablePointers(t *testing.T) {
	m := NewMetricMap[Gauge]()
	a := m.Get("a")
	a.Set(2.5)
	if m.Get("a") != a {
		t.Fatal("Expected the same pointer for a repeated key")
	}
	if got := m.Get("a").Get(); got != 2.5 {
		t.Errorf("Expected 2.5, got %v", got)
	}

	m.Get("c")
	m.Get("b")
	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("Expected sorted keys a,b,c, got %v", keys)
	}
}

func TestRegistryConcurrentCounters(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				r.Counter(PageLoads).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Counter(PageLoads).Load(); got != 8000 {
		t.Errorf("Expected 8000, got %d", got)
	}
}

func TestGaugeMax(t *testing.T) {
	var g Gauge
	g.Max(3)
	g.Max(1)
	if g.Get() != 3 {
		t.Errorf("Expected 3, got %v", g.Get())
	}
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	r.Counter(Frames).Add(1)
	r.Gauge(FrameMillis).Set(1)
	if r.Count() != 0 {
		t.Errorf("Expected 0 metrics, got %d", r.Count())
	}
}

func TestRegistryLogValue(t *testing.T) {
	r := NewRegistry()
	r.Counter(Frames).Add(3)
	r.Gauge(FrameMillis).Set(1.5)

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("metrics", "m", r)
	out := buf.String()
	if !strings.Contains(out, "m.frame.count=3") || !strings.Contains(out, "m.frame.draw_ms=1.5") {
		t.Errorf("Unexpected log output: %s", out)
	}
}
