// Package region implements a page-based bump allocator (memory region)
// together with a fixed-capacity sequence container built on top of it.
//
// # Overview
//
// A region allocator serves many small allocation requests by carving them
// out of large fixed-size pages, and releases every page together in one
// step when the region goes out of use. Nothing is ever freed
// individually. This is the classic trade of arena allocation: O(1)
// allocation with zero per-object bookkeeping, paid for with some wasted
// slack at page boundaries and an all-or-nothing lifetime.
//
// It suits workloads that build a large, short-lived object graph — a
// parse tree, a request scope, a benchmark tree — use it, and drop it
// whole.
//
// # Basic Usage
//
//	r := region.NewRegion()
//	defer r.Release() // every page returned at once
//
//	// Allocate typed values
//	n, err := region.New[MyStruct](r)
//
//	// Allocate a typed block
//	s, err := region.NewSlice[int64](r, 100)
//
//	// A bounded, append-only sequence backed by one region block
//	seq, err := region.MakeFixedSeq[*MyStruct](r, 8)
//	seq.Append(n)
//
// # Memory Layout
//
// Pages are 64 KiB, aligned to 1024 bytes, acquired on demand, and their
// addresses never change once acquired. Blocks are carved sequentially
// from the active page with the requested alignment; when a request does
// not fit, the page's remaining tail is abandoned and a fresh page is
// acquired. Single requests are capped at MaxSmallBlock (4 KiB); larger
// requests return ErrBlockTooLarge.
//
// # Lifetime and Cleanup
//
// Objects carved from a Region receive no individual destruction, ever.
// Release drops all pages at once; everything built from the region
// becomes invalid at that same moment. Do not store externally-owned
// resources (file handles, sockets) in region-allocated objects — nothing
// will close them.
//
// # Thread Safety
//
// A Region is not goroutine-safe. It is designed for exactly one logical
// owner; concurrent use requires external synchronization and is outside
// the allocator's contract.
//
// # Instrumentation
//
// An optional Stats sink, attached with WithStats, counts the underlying
// system allocations (one per page) and the bulk frees reported by
// Release. Metrics() exposes per-region figures: pages acquired, bytes
// carved, wasted tail bytes and utilization.
package region
