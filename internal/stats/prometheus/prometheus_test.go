package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %q not found", name)
	return 0
}

func TestCollector_IncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter("test_total", 1)
	c.IncCounter("test_total", 2)

	if got := counterValue(t, reg, "test_total"); got != 3 {
		t.Errorf("counter = %v, want 3", got)
	}
}

func TestCollector_SetGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge("test_gauge", 42)
	c.SetGauge("test_gauge", 7)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == "test_gauge" {
			if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 7 {
				t.Errorf("gauge = %v, want 7", got)
			}
			return
		}
	}
	t.Fatal("gauge not registered")
}

func TestCollector_ObserveHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveHistogram("test_seconds", 0.2)
	c.ObserveHistogram("test_seconds", 0.4)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == "test_seconds" {
			h := mf.GetMetric()[0].GetHistogram()
			if h.GetSampleCount() != 2 {
				t.Errorf("sample count = %d, want 2", h.GetSampleCount())
			}
			return
		}
	}
	t.Fatal("histogram not registered")
}

func TestCollector_SharedRegistry(t *testing.T) {
	// Two collectors on one registry must converge on the same metric
	// rather than fail on duplicate registration.
	reg := prometheus.NewRegistry()
	a := New(reg)
	b := New(reg)

	a.IncCounter("shared_total", 1)
	b.IncCounter("shared_total", 1)

	if got := counterValue(t, reg, "shared_total"); got != 2 {
		t.Errorf("counter = %v, want 2", got)
	}
}
