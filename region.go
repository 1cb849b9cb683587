// Package region implements a page-based bump allocator (memory region).
// Everything carved from a Region stays alive, untouched, until the Region
// itself is released in one step; nothing is ever freed individually.
package region

import (
	"errors"
	"fmt"
	"unsafe"
)

// MaxSmallBlock is the largest single request Alloc will serve (4 KiB).
// A Region only deals in small blocks; large-object support is
// deliberately out of scope.
const MaxSmallBlock = 4096

// ErrBlockTooLarge is returned by Alloc when a request exceeds
// MaxSmallBlock. It is distinct from the capacity panics of FixedSeq:
// an oversized request is a usage error the caller may want to detect,
// not a corruption of an existing container.
var ErrBlockTooLarge = errors.New("region: block exceeds small-object limit")

// Region is a bump allocator over fixed-size pages. Alloc carves blocks
// out of the active page and acquires a new page when the active one
// cannot satisfy a request; the abandoned tail of an exhausted page is
// never reused. All pages are released together by Release.
//
// A Region is not goroutine-safe: it is meant to be owned by exactly one
// logical caller at a time, and sharing one across goroutines requires
// external synchronization.
type Region struct {
	store    pageStore
	active   *page
	cursor   uintptr // offset of the first free byte in active.data
	left     uintptr // free bytes remaining in the active page
	carved   uintptr // bytes consumed by Alloc, alignment padding included
	wasted   uintptr // abandoned tail bytes of exhausted pages
	released bool
}

// Option configures a Region at construction.
type Option func(*Region)

// WithStats attaches a sink that counts the system allocations the Region
// performs on the caller's behalf (one per page) and the frees reported by
// Release.
func WithStats(st *Stats) Option {
	return func(r *Region) {
		r.store.stats = st
	}
}

// NewRegion creates an empty Region. No page is acquired until the first
// allocation.
func NewRegion(opts ...Option) *Region {
	r := &Region{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Alloc carves size bytes aligned to align out of the Region and returns
// their address. Valid for 0 < size <= MaxSmallBlock and any power-of-two
// alignment up to the page alignment; oversized requests return
// ErrBlockTooLarge. The returned memory is not zeroed.
//
// The block stays valid exactly as long as the Region does.
func (r *Region) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	r.panicIfReleased()
	if size == 0 || align == 0 || align&(align-1) != 0 || align > pageAlign {
		panic(fmt.Sprintf("region: bad Alloc arguments (size=%d, align=%d)", size, align))
	}
	if size > MaxSmallBlock {
		return nil, fmt.Errorf("%w: requested %d bytes, limit is %d", ErrBlockTooLarge, size, MaxSmallBlock)
	}
	for {
		if r.active == nil {
			r.active = r.store.acquire()
			r.cursor = 0
			r.left = PageSize
		}
		base := uintptr(unsafe.Pointer(&r.active.data[0]))
		var pad uintptr
		if mis := (base + r.cursor) & (align - 1); mis != 0 {
			pad = align - mis
		}
		if pad+size <= r.left {
			p := unsafe.Pointer(&r.active.data[r.cursor+pad])
			r.cursor += pad + size
			r.left -= pad + size
			r.carved += pad + size
			return p, nil
		}
		// No room in the active page: abandon its tail and retry from a
		// fresh one. A small block always fits an empty page.
		r.wasted += r.left
		r.active = nil
		r.cursor, r.left = 0, 0
	}
}

// Release drops every page at once and makes the Region unusable. Objects
// carved from the Region receive no individual cleanup; they simply stop
// existing. Subsequent allocations panic.
func (r *Region) Release() {
	if r.released {
		return
	}
	r.store.release()
	r.active = nil
	r.cursor, r.left = 0, 0
	r.released = true
}

func (r *Region) panicIfReleased() {
	if r.released {
		panic("region: use after Release()")
	}
}
