package declarator

import (
	stderrors "errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctypemap/dtype"
	"ctypemap/errors"
)

func TestParseArguments(t *testing.T) {
	r := newTestRegistry(t)

	args, err := ParseArguments("const float *restrict a,\n  unsigned int n, /* scratch */ unsigned char buf [ 16 ], double alpha", r.Resolve)
	require.NoError(t, err)
	require.Len(t, args, 4)

	assert.Equal(t, "a", args[0].Name)
	assert.Equal(t, Vector, args[0].Class)
	assert.True(t, args[0].Type.Equal(dtype.Float32))

	assert.Equal(t, "n", args[1].Name)
	assert.Equal(t, Scalar, args[1].Class)
	assert.True(t, args[1].Type.Equal(dtype.Uint32))

	assert.Equal(t, "buf", args[2].Name)
	assert.Equal(t, Vector, args[2].Class)

	assert.Equal(t, "alpha", args[3].Name)
	assert.True(t, args[3].Type.Equal(dtype.Float64))
}

func TestParseArgumentsPointerToPointer(t *testing.T) {
	r := newTestRegistry(t)

	args, err := ParseArguments("float **a, int * * p, double*** q, int n", r.Resolve)
	require.NoError(t, err)
	require.Len(t, args, 4)

	assert.Equal(t, "a", args[0].Name)
	assert.Equal(t, Vector, args[0].Class)
	assert.True(t, args[0].Type.Equal(dtype.Float32))

	assert.Equal(t, "p", args[1].Name)
	assert.Equal(t, Vector, args[1].Class)
	assert.True(t, args[1].Type.Equal(dtype.Int32))

	assert.Equal(t, "q", args[2].Name)
	assert.True(t, args[2].Type.Equal(dtype.Float64))

	assert.Equal(t, "n", args[3].Name)
	assert.Equal(t, Scalar, args[3].Class)
}

func TestParseArgumentsEmpty(t *testing.T) {
	r := newTestRegistry(t)

	for _, sig := range []string{"", "   ", "void", " void "} {
		args, err := ParseArguments(sig, r.Resolve)
		require.NoError(t, err, sig)
		assert.Empty(t, args, sig)
	}
}

func TestParseArgumentsSyntaxError(t *testing.T) {
	r := newTestRegistry(t)

	for _, sig := range []string{"float a,", ", int b", "int a,, int b", "int (*fn)(int)"} {
		t.Run(sig, func(t *testing.T) {
			_, err := ParseArguments(sig, r.Resolve)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrArgListSyntax), "got %v", err)
		})
	}
}

func TestParseArgumentsDeclarationErrorPosition(t *testing.T) {
	color.NoColor = true
	r := newTestRegistry(t)

	sig := "float *a, quux b"
	_, err := ParseArguments(sig, r.Resolve)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrUnknownTypeName))

	var typed *errors.Error
	require.True(t, stderrors.As(err, &typed))
	require.NotNil(t, typed.Position)
	assert.Equal(t, 1, typed.Position.Line)
	assert.Equal(t, 11, typed.Position.Column)
	assert.Equal(t, sig, typed.Source)

	formatted := errors.NewReporter("saxpy").Format(typed)
	assert.Contains(t, formatted, "saxpy:1:11")
	assert.Contains(t, formatted, "unknown type 'quux'")
}

func TestParseArgumentsBadDeclarator(t *testing.T) {
	r := newTestRegistry(t)

	_, err := ParseArguments("int a, double", r.Resolve)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrDeclaratorSyntax))
}
