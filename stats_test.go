package region

import (
	"testing"
)

func TestStatsCountsPages(t *testing.T) {
	var st Stats
	r := NewRegion(WithStats(&st))

	// Force three pages.
	for i := 0; i < 3*16; i++ {
		if _, err := r.Alloc(MaxSmallBlock, 8); err != nil {
			t.Fatalf("Alloc error: %v", err)
		}
	}
	if r.NumPages() != 3 {
		t.Fatalf("NumPages = %d, want 3", r.NumPages())
	}

	if st.Allocs != 3 {
		t.Errorf("Stats.Allocs = %d, want 3 (one per page)", st.Allocs)
	}
	if st.Frees != 0 {
		t.Errorf("Stats.Frees before Release = %d, want 0", st.Frees)
	}
	// Each page is over-allocated by the page alignment.
	wantBytes := int64(3 * (PageSize + pageAlign))
	if st.Bytes != wantBytes {
		t.Errorf("Stats.Bytes = %d, want %d", st.Bytes, wantBytes)
	}

	r.Release()
	if st.Frees != 3 {
		t.Errorf("Stats.Frees after Release = %d, want 3", st.Frees)
	}
}

func TestStatsReset(t *testing.T) {
	st := Stats{Allocs: 5, Frees: 2, Bytes: 1024}
	st.Reset()
	if st != (Stats{}) {
		t.Errorf("Stats after Reset = %+v, want zero", st)
	}
}

func TestStatsNilSafe(t *testing.T) {
	var st *Stats
	st.CountAlloc(100)
	st.CountFree()
	st.Reset()

	// A region without a sink works the same.
	r := NewRegion()
	defer r.Release()
	if _, err := r.Alloc(64, 8); err != nil {
		t.Errorf("Alloc without stats sink error: %v", err)
	}
}
