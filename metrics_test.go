package region

import (
	"testing"
)

func TestRegionMetrics(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	// Test initial state
	if r.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", r.SizeInUse())
	}
	if r.NumPages() != 0 {
		t.Errorf("Initial NumPages = %d, want 0", r.NumPages())
	}
	if r.Capacity() != 0 {
		t.Errorf("Initial Capacity = %d, want 0", r.Capacity())
	}
	if r.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", r.Utilization())
	}

	// Carve some blocks
	if _, err := r.Alloc(100, 4); err != nil {
		t.Fatalf("Alloc error: %v", err)
	}
	if _, err := r.Alloc(200, 8); err != nil {
		t.Fatalf("Alloc error: %v", err)
	}

	// 100 bytes, then 4 padding bytes up to the next 8-aligned offset,
	// then 200 bytes.
	if r.SizeInUse() != 304 {
		t.Errorf("SizeInUse = %d, want 304 (padding included)", r.SizeInUse())
	}
	if r.Capacity() != PageSize {
		t.Errorf("Capacity = %d, want %d", r.Capacity(), PageSize)
	}

	utilization := r.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", utilization)
	}
}

func TestRegionMetricsSnapshot(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	if _, err := r.Alloc(1000, 8); err != nil {
		t.Fatalf("Alloc error: %v", err)
	}

	m := r.Metrics()
	if m.SizeInUse != r.SizeInUse() {
		t.Errorf("Metrics.SizeInUse = %d, want %d", m.SizeInUse, r.SizeInUse())
	}
	if m.Capacity != r.Capacity() {
		t.Errorf("Metrics.Capacity = %d, want %d", m.Capacity, r.Capacity())
	}
	if m.NumPages != r.NumPages() {
		t.Errorf("Metrics.NumPages = %d, want %d", m.NumPages, r.NumPages())
	}
	if m.PageSize != PageSize {
		t.Errorf("Metrics.PageSize = %d, want %d", m.PageSize, PageSize)
	}
	if m.Wasted != r.Wasted() {
		t.Errorf("Metrics.Wasted = %d, want %d", m.Wasted, r.Wasted())
	}
	if m.Utilization != r.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", m.Utilization, r.Utilization())
	}
}
