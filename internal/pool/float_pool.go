package pool

import "sync"

// float64SlicePool holds scratch slices used to assemble design matrices.
// A design matrix is rebuilt for every candidate fit, so the backing arrays
// are recycled across fits instead of being reallocated each time.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// maxPooledFloats caps the capacity of slices returned to the pool (4M values, 32MiB).
const maxPooledFloats = 4 << 20

// GetFloat64Slice retrieves a float64 slice of exactly size elements from the pool.
//
// The contents of the returned slice are unspecified; callers must overwrite
// every element they read. The caller must call the returned cleanup function
// (typically with defer) once the slice is no longer referenced.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float64: A slice with length equal to size
//   - func(): Cleanup function returning the slice to the pool
//
// Example:
//
//	data, release := pool.GetFloat64Slice(rows * cols)
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	if ptr == nil {
		ptr = &[]float64{}
	}

	slice := *ptr
	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() {
		if cap(*ptr) > maxPooledFloats {
			return
		}
		float64SlicePool.Put(ptr)
	}
}
