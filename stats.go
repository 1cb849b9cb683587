package region

// Stats counts the system allocation traffic performed on behalf of one
// benchmark run. It is caller-supplied rather than ambient global state,
// so two allocation strategies measured in the same process cannot
// interfere with each other's numbers.
//
// Like the Region that reports into it, a Stats is not goroutine-safe.
type Stats struct {
	Allocs int64 // system allocations performed
	Frees  int64 // system deallocations reported
	Bytes  int64 // total bytes requested from the system
}

// Reset zeroes all counters. Called once per benchmark run.
func (s *Stats) Reset() {
	if s == nil {
		return
	}
	*s = Stats{}
}

// CountAlloc records one system allocation of n bytes. Nil-safe so a
// Region can run without a sink attached.
func (s *Stats) CountAlloc(n int64) {
	if s == nil {
		return
	}
	s.Allocs++
	s.Bytes += n
}

// CountFree records one system deallocation.
func (s *Stats) CountFree() {
	if s == nil {
		return
	}
	s.Frees++
}
