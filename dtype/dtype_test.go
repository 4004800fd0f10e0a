package dtype

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctypemap/errors"
)

func TestScalarString(t *testing.T) {
	tests := []struct {
		s    Scalar
		want string
	}{
		{Bool8, "bool"},
		{Int8, "int8"},
		{Uint16, "uint16"},
		{Int32, "int32"},
		{Uint64, "uint64"},
		{Float32, "float32"},
		{Float64, "float64"},
		{Complex64, "complex64"},
		{Complex128, "complex128"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.String())
		})
	}
}

func TestScalarEqualIgnoresByteOrder(t *testing.T) {
	le := Scalar{Kind: Int, Width: 4, Order: LittleEndian}
	be := Scalar{Kind: Int, Width: 4, Order: BigEndian}

	assert.True(t, le.Equal(be))
	assert.Equal(t, le.Key(), be.Key())
	assert.False(t, Int32.Equal(Uint32))
	assert.False(t, Int32.Equal(Int64))
}

func TestScalarSizes(t *testing.T) {
	assert.Equal(t, 8, Float64.ItemSize())
	assert.Equal(t, 64, Float64.Bits())
	assert.Equal(t, 16, Complex128.ItemSize())
	assert.Equal(t, NativeOrder, Int8.Order)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Scalar
	}{
		{"bool", Bool8},
		{"int8", Int8},
		{"uint8", Uint8},
		{"int64", Int64},
		{" float32 ", Float32},
		{"float16", Float16},
		{"complex128", Complex128},
		{"complex256", New(Complex, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s", got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("double")
	assert.True(t, stderrors.Is(err, errors.ErrUnknownTypeName))

	_, err = Parse("int")
	assert.True(t, stderrors.Is(err, errors.ErrUnknownTypeName))

	_, err = Parse("int24")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidScalar))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Int16.Validate())
	assert.NoError(t, New(Float, 16).Validate())
	assert.Error(t, New(Bool, 4).Validate())
	assert.Error(t, New(Int, 3).Validate())
	assert.Error(t, Scalar{Kind: Kind(9), Width: 4}.Validate())
}
