package region

import "unsafe"

const (
	// PageSize is the fixed size of every page a Region carves blocks from
	// (64 KiB).
	PageSize = 1 << 16

	// pageAlign is the guaranteed alignment of every page's first byte.
	// It is also the largest alignment Alloc accepts.
	pageAlign = 1024
)

// page is a single fixed-size block of raw memory. data always starts on a
// pageAlign boundary and its backing array never moves, so addresses handed
// out from it stay valid until the page itself becomes unreachable.
type page struct {
	raw  []byte // over-allocated buffer keeping data alive
	data []byte // aligned window of exactly PageSize bytes
}

// pageStore owns an append-only list of pages. There is no per-page
// release; the whole list dies with the store.
type pageStore struct {
	pages []*page
	stats *Stats
}

// acquire appends a fresh page and returns it. Addresses of previously
// returned pages are unaffected. If the runtime cannot obtain memory the
// resulting panic is not recovered; there is no degraded mode.
func (s *pageStore) acquire() *page {
	raw := make([]byte, PageSize+pageAlign)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := (pageAlign - base%pageAlign) % pageAlign
	p := &page{raw: raw, data: raw[off : off+PageSize]}
	s.pages = append(s.pages, p)
	s.stats.CountAlloc(int64(len(raw)))
	return p
}

// release drops every page at once and reports the frees to the stats
// sink. Individual pages are never released.
func (s *pageStore) release() {
	for range s.pages {
		s.stats.CountFree()
	}
	s.pages = nil
}
