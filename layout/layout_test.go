package layout

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctypemap/dtype"
	"ctypemap/errors"
)

func TestContiguousStrides(t *testing.T) {
	tests := []struct {
		name     string
		itemSize int
		shape    []int
		c, f     []int
	}{
		{"scalar", 8, []int{}, []int{}, []int{}},
		{"vector", 4, []int{5}, []int{4}, []int{4}},
		{"matrix", 8, []int{2, 3}, []int{24, 8}, []int{8, 16}},
		{"cube", 1, []int{2, 3, 4}, []int{12, 4, 1}, []int{1, 2, 6}},
		{"zero axis", 4, []int{0, 3}, []int{12, 4}, []int{4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.c, CContiguousStrides(tt.itemSize, tt.shape))
			assert.Equal(t, tt.f, FContiguousStrides(tt.itemSize, tt.shape))
		})
	}
}

func TestEqualStridesIgnoresUnitAxes(t *testing.T) {
	assert.True(t, EqualStrides([]int{99, 8}, []int{24, 8}, []int{1, 3}))
	assert.False(t, EqualStrides([]int{16, 8}, []int{24, 8}, []int{2, 3}))
	assert.False(t, EqualStrides([]int{8}, []int{8, 8}, []int{1, 1}))
}

func TestFlagsOf(t *testing.T) {
	c := View{Type: dtype.Float64, Shape: []int{2, 3}, Strides: []int{24, 8}}
	f := FlagsOf(c)
	assert.True(t, f.CContiguous)
	assert.False(t, f.FContiguous)
	assert.True(t, f.Forc)
	assert.Equal(t, "  C_CONTIGUOUS : true\n  F_CONTIGUOUS : false", f.String())

	fortran := View{Type: dtype.Float64, Shape: []int{2, 3}, Strides: []int{8, 16}}
	assert.Equal(t, Flags{CContiguous: false, FContiguous: true, Forc: true}, FlagsOf(fortran))

	strided := View{Type: dtype.Float32, Shape: []int{4}, Strides: []int{8}}
	assert.Equal(t, Flags{}, FlagsOf(strided))

	row := View{Type: dtype.Int32, Shape: []int{1, 5}, Strides: []int{0, 4}}
	assert.Equal(t, Flags{CContiguous: true, FContiguous: true, Forc: true}, FlagsOf(row))

	empty := View{Type: dtype.Int32, Shape: []int{0, 5}, Strides: []int{7, 3}}
	assert.True(t, FlagsOf(empty).Forc)
}

func TestExtent(t *testing.T) {
	v := View{Type: dtype.Float32, Shape: []int{3, 4}, Strides: []int{16, 4}, Offset: 100}
	low, high, err := Extent(v)
	require.NoError(t, err)
	assert.Equal(t, 100, low)
	assert.Equal(t, 148, high)

	reversed := View{Type: dtype.Float32, Shape: []int{4}, Strides: []int{-4}, Offset: 112}
	low, high, err = Extent(reversed)
	require.NoError(t, err)
	assert.Equal(t, 100, low)
	assert.Equal(t, 116, high)
}

func TestExtentShapeMismatch(t *testing.T) {
	short := View{Type: dtype.Float32, Shape: []int{3, 4}, Strides: []int{16}}
	_, _, err := Extent(short)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrShapeMismatch))

	base := View{Type: dtype.Float32, Shape: []int{12}, Strides: []int{4}}
	_, err = MayShareMemory(base, short)
	assert.True(t, stderrors.Is(err, errors.ErrShapeMismatch))
	_, err = MayShareMemory(short, base)
	assert.True(t, stderrors.Is(err, errors.ErrShapeMismatch))
}

func TestMayShareMemory(t *testing.T) {
	base := View{Type: dtype.Uint8, Shape: []int{16}, Strides: []int{1}, Offset: 0}
	head := View{Type: dtype.Uint8, Shape: []int{8}, Strides: []int{1}, Offset: 0}
	tail := View{Type: dtype.Uint8, Shape: []int{8}, Strides: []int{1}, Offset: 8}
	empty := View{Type: dtype.Uint8, Shape: []int{0}, Strides: []int{1}, Offset: 4}

	tests := []struct {
		name string
		a, b View
		want bool
	}{
		{"base head", base, head, true},
		{"base tail", base, tail, true},
		{"head tail", head, tail, false},
		{"base empty", base, empty, false},
		{"self", base, base, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MayShareMemory(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
