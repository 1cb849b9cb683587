package region

import "unsafe"

// New carves sizeof(T) bytes aligned to alignof(T) from the region, zeroes
// them and returns a typed pointer. The only possible error is
// ErrBlockTooLarge for a T bigger than MaxSmallBlock.
//
// The returned object must not hold externally-owned resources (open
// files, sockets): nothing carved from a Region is ever cleaned up
// individually.
func New[T any](r *Region) (*T, error) {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		// Zero-size types still get a unique, aligned address.
		size = 1
	}
	p, err := r.Alloc(size, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	clear(unsafe.Slice((*byte)(p), size))
	return (*T)(p), nil
}

// NewSlice carves a single block of n elements of type T, zeroed, aligned
// to alignof(T). The whole block is one Alloc call, so n*sizeof(T) must
// not exceed MaxSmallBlock. Returns nil for n == 0.
func NewSlice[T any](r *Region, n int) ([]T, error) {
	if n < 0 {
		panic("region: NewSlice with negative length")
	}
	if n == 0 {
		return nil, nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return make([]T, n), nil
	}
	total := elemSize * uintptr(n)
	p, err := r.Alloc(total, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	clear(unsafe.Slice((*byte)(p), total))
	return unsafe.Slice((*T)(p), n), nil
}
