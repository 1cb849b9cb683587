package region

// SizeInUse returns the total number of bytes carved from the region,
// including internal fragmentation due to alignment padding.
func (r *Region) SizeInUse() int {
	return int(r.carved)
}

// NumPages returns the number of pages acquired so far.
func (r *Region) NumPages() int {
	return len(r.store.pages)
}

// Capacity returns the total capacity (in bytes) of all acquired pages.
func (r *Region) Capacity() int {
	return len(r.store.pages) * PageSize
}

// Wasted returns the bytes permanently lost as abandoned tails of
// exhausted pages. This is the slack a bump allocator trades for O(1)
// allocation with no bookkeeping.
func (r *Region) Wasted() int {
	return int(r.wasted)
}

// Utilization returns the ratio of carved bytes to total capacity
// (0.0 to 1.0). Returns 0.0 before the first page is acquired.
func (r *Region) Utilization() float64 {
	capacity := r.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(r.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of region statistics.
func (r *Region) Metrics() RegionMetrics {
	return RegionMetrics{
		SizeInUse:   r.SizeInUse(),
		Capacity:    r.Capacity(),
		NumPages:    r.NumPages(),
		PageSize:    PageSize,
		Wasted:      r.Wasted(),
		Utilization: r.Utilization(),
	}
}

// RegionMetrics contains statistical information about a Region.
type RegionMetrics struct {
	SizeInUse   int     // bytes carved, alignment padding included
	Capacity    int     // total capacity of acquired pages in bytes
	NumPages    int     // number of pages acquired
	PageSize    int     // fixed page size
	Wasted      int     // abandoned tail bytes of exhausted pages
	Utilization float64 // ratio of carved to total capacity (0.0-1.0)
}
