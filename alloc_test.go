package region

import (
	"errors"
	"testing"
	"unsafe"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestNew(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	ptr, err := New[int](r)
	if err != nil {
		t.Fatalf("New[int] error: %v", err)
	}
	if ptr == nil {
		t.Fatal("New[int] returned nil")
	}
	if *ptr != 0 {
		t.Errorf("New[int] value = %d, want 0 (zeroed)", *ptr)
	}

	s, err := New[testStruct](r)
	if err != nil {
		t.Fatalf("New[testStruct] error: %v", err)
	}
	if s.a != 0 || s.b != 0 || s.c != 0 || s.d != 0 {
		t.Errorf("New[testStruct] not properly zeroed: %+v", *s)
	}
	if uintptr(unsafe.Pointer(s))%unsafe.Alignof(testStruct{}) != 0 {
		t.Errorf("New[testStruct] pointer %p not aligned to %d", s, unsafe.Alignof(testStruct{}))
	}

	// Verify we can write to allocated memory
	*ptr = 42
	s.a = 100
	if *ptr != 42 || s.a != 100 {
		t.Error("Could not write to allocated memory")
	}
}

func TestNewZeroSizeType(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	p, err := New[struct{}](r)
	if err != nil {
		t.Fatalf("New[struct{}] error: %v", err)
	}
	if p == nil {
		t.Error("New[struct{}] returned nil")
	}
}

func TestNewOversizedType(t *testing.T) {
	type big [MaxSmallBlock + 1]byte

	r := NewRegion()
	defer r.Release()

	p, err := New[big](r)
	if !errors.Is(err, ErrBlockTooLarge) {
		t.Fatalf("New[big] error = %v, want ErrBlockTooLarge", err)
	}
	if p != nil {
		t.Errorf("New[big] pointer = %p, want nil", p)
	}
}

func TestNewSlice(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	s, err := NewSlice[int64](r, 10)
	if err != nil {
		t.Fatalf("NewSlice error: %v", err)
	}
	if len(s) != 10 {
		t.Fatalf("NewSlice length = %d, want 10", len(s))
	}
	for i, v := range s {
		if v != 0 {
			t.Errorf("s[%d] = %d, want 0 (zeroed)", i, v)
		}
	}
	for i := range s {
		s[i] = int64(i * 2)
	}
	for i, v := range s {
		if v != int64(i*2) {
			t.Errorf("s[%d] = %d after write, want %d", i, v, i*2)
		}
	}
}

func TestNewSliceEmpty(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	s, err := NewSlice[int](r, 0)
	if err != nil {
		t.Fatalf("NewSlice(0) error: %v", err)
	}
	if s != nil {
		t.Errorf("NewSlice(0) = %v, want nil", s)
	}
	if r.NumPages() != 0 {
		t.Errorf("NewSlice(0) acquired a page")
	}
}

func TestNewSliceNegative(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	defer func() {
		if recover() == nil {
			t.Error("NewSlice(-1) did not panic")
		}
	}()
	NewSlice[int](r, -1)
}

func TestNewSliceOversized(t *testing.T) {
	r := NewRegion()
	defer r.Release()

	// 1000 * 8 bytes exceeds the small-object limit for a single block.
	s, err := NewSlice[int64](r, 1000)
	if !errors.Is(err, ErrBlockTooLarge) {
		t.Fatalf("NewSlice error = %v, want ErrBlockTooLarge", err)
	}
	if s != nil {
		t.Errorf("NewSlice pointer = %v, want nil", s)
	}
}
