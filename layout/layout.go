// Package layout computes strides, contiguity and byte extents of strided
// arrays.
package layout

import (
	"fmt"

	"ctypemap/dtype"
	"ctypemap/errors"
)

// View is a strided array: Offset is the byte address of element zero.
type View struct {
	Type    dtype.Scalar
	Shape   []int
	Strides []int // in bytes
	Offset  int
}

// FContiguousStrides returns column-major strides. Axes of length zero are
// treated as length one so no stride collapses to zero.
func FContiguousStrides(itemSize int, shape []int) []int {
	if len(shape) == 0 {
		return []int{}
	}
	strides := make([]int, len(shape))
	strides[0] = itemSize
	for i := 1; i < len(shape); i++ {
		strides[i] = strides[i-1] * max(1, shape[i-1])
	}
	return strides
}

// CContiguousStrides returns row-major strides.
func CContiguousStrides(itemSize int, shape []int) []int {
	if len(shape) == 0 {
		return []int{}
	}
	strides := make([]int, len(shape))
	last := len(shape) - 1
	strides[last] = itemSize
	for i := last - 1; i >= 0; i-- {
		strides[i] = strides[i+1] * max(1, shape[i+1])
	}
	return strides
}

// EqualStrides compares strides, ignoring axes of length one whose stride
// never matters.
func EqualStrides(a, b, shape []int) bool {
	if len(a) != len(b) || len(b) != len(shape) {
		return false
	}
	for i, n := range shape {
		if n != 1 && a[i] != b[i] {
			return false
		}
	}
	return true
}

func size(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// IsFContiguous reports whether strides describe a dense column-major
// layout. Empty arrays are contiguous.
func IsFContiguous(strides []int, itemSize int, shape []int) bool {
	return EqualStrides(strides, FContiguousStrides(itemSize, shape), shape) || size(shape) == 0
}

// IsCContiguous reports whether strides describe a dense row-major layout.
func IsCContiguous(strides []int, itemSize int, shape []int) bool {
	return EqualStrides(strides, CContiguousStrides(itemSize, shape), shape) || size(shape) == 0
}

// Flags summarizes the contiguity of a view.
type Flags struct {
	CContiguous bool
	FContiguous bool
	Forc        bool // either of the above
}

// FlagsOf computes the contiguity flags of v.
func FlagsOf(v View) Flags {
	itemSize := v.Type.ItemSize()
	f := Flags{
		CContiguous: IsCContiguous(v.Strides, itemSize, v.Shape),
		FContiguous: IsFContiguous(v.Strides, itemSize, v.Shape),
	}
	f.Forc = f.CContiguous || f.FContiguous
	return f
}

func (f Flags) String() string {
	return fmt.Sprintf("  C_CONTIGUOUS : %t\n  F_CONTIGUOUS : %t", f.CContiguous, f.FContiguous)
}

// Extent returns the half-open byte range [low, high) touched by v.
// v must carry one stride per axis.
func Extent(v View) (low, high int, err error) {
	if len(v.Strides) != len(v.Shape) {
		return 0, 0, errors.New(errors.ShapeMismatch, "view has %d axes but %d strides",
			len(v.Shape), len(v.Strides)).Build()
	}

	low = v.Offset
	high = v.Offset
	if size(v.Shape) == 0 {
		return low, high, nil
	}
	for i, n := range v.Shape {
		if v.Strides[i] < 0 {
			low += v.Strides[i] * (n - 1)
		} else {
			high += v.Strides[i] * (n - 1)
		}
	}
	return low, high + v.Type.ItemSize(), nil
}

// MayShareMemory reports whether the byte extents of a and b overlap.
// It is conservative: interleaved views that never touch the same byte
// still report true.
func MayShareMemory(a, b View) (bool, error) {
	aLow, aHigh, err := Extent(a)
	if err != nil {
		return false, err
	}
	bLow, bHigh, err := Extent(b)
	if err != nil {
		return false, err
	}
	if aLow == aHigh || bLow == bHigh {
		return false, nil
	}
	return bLow < aHigh && aLow < bHigh, nil
}
