package region

// FixedSeq is an append-only sequence whose capacity is fixed at
// construction. Its backing block is carved from a Region in a single
// allocation and is never resized, moved or freed; elements are written in
// place, in order, and never destroyed individually. Cleanup happens only
// when the owning Region is released.
//
// FixedSeq is a value type so it can live inside another region-allocated
// object without a separate descriptor allocation.
type FixedSeq[T any] struct {
	items []T // full backing block, length == capacity
	n     int
}

// MakeFixedSeq carves a maxSize-element backing block from r and returns
// an empty sequence over it. A sequence of element type larger than the
// small-object budget returns ErrBlockTooLarge.
func MakeFixedSeq[T any](r *Region, maxSize int) (FixedSeq[T], error) {
	if maxSize < 0 {
		panic("region: FixedSeq with negative capacity")
	}
	items, err := NewSlice[T](r, maxSize)
	if err != nil {
		return FixedSeq[T]{}, err
	}
	return FixedSeq[T]{items: items}, nil
}

// Append writes v into the next slot. Appending past the declared capacity
// is a programming error and panics; the sequence never grows.
func (s *FixedSeq[T]) Append(v T) {
	if s.n == len(s.items) {
		panic("region: FixedSeq append past capacity")
	}
	s.items[s.n] = v
	s.n++
}

// Len returns the number of elements appended so far.
func (s *FixedSeq[T]) Len() int { return s.n }

// Cap returns the fixed capacity declared at construction.
func (s *FixedSeq[T]) Cap() int { return len(s.items) }

// At returns the i-th appended element. Indexes outside [0, Len()) panic.
func (s *FixedSeq[T]) At(i int) T {
	if i < 0 || i >= s.n {
		panic("region: FixedSeq index out of range")
	}
	return s.items[i]
}

// Slice returns the appended elements in append order. The result aliases
// region memory: it is valid only while the owning Region is, and its
// capacity is clipped so it cannot be appended to.
func (s *FixedSeq[T]) Slice() []T { return s.items[:s.n:s.n] }
