package registry

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctypemap/dtype"
	"ctypemap/errors"
)

func TestLoadAliases(t *testing.T) {
	r := New()
	require.NoError(t, FillCTypes(r, host64Linux, false, true))

	data := []byte(`
types:
  - names: [real_t, real]
    type: float64
  - names: [index_t]
    type: intp
  - names: [my_uint]
    type: "unsigned   int"
  - names: [half]
    type: float16
`)
	require.NoError(t, LoadAliases(r, host64Linux, data))

	assert.Equal(t, dtype.Float64.Key(), resolveKey(t, r, "real"))
	assert.Equal(t, dtype.Int64.Key(), resolveKey(t, r, "index_t"))
	assert.Equal(t, dtype.Uint32.Key(), resolveKey(t, r, "my_uint"))
	assert.Equal(t, dtype.Float16.Key(), resolveKey(t, r, "half"))

	// aliases never displace canonical names
	name, err := r.TypeToName(&dtype.Float64)
	require.NoError(t, err)
	assert.Equal(t, "double", name)

	name, err = r.TypeToName(&dtype.Float16)
	require.NoError(t, err)
	assert.Equal(t, "half", name)
}

func TestLoadAliasesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"malformed", "types: [", errors.ErrInvalidAliasFile},
		{"invalid width", "types:\n  - names: [int24_t]\n    type: int24\n", errors.ErrInvalidScalar},
		{"no names", "types:\n  - type: float32\n", errors.ErrEmptyNameSet},
		{"unknown type", "types:\n  - names: [x]\n    type: quux\n", errors.ErrUnknownTypeName},
		{"conflict", "types:\n  - names: [int]\n    type: int64\n", errors.ErrConflictingRegistration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			require.NoError(t, FillCTypes(r, host64Linux, false, true))
			err := LoadAliases(r, host64Linux, []byte(tt.data))
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.want), "got %v", err)
		})
	}
}
