// Package declarator classifies C kernel argument declarations such as
// "const float *restrict x" or "unsigned char buf[16]".
//
// Only the trailing declarator is recognized: pointer stars, an identifier
// and optional array suffixes. Everything in front of it is the type
// spelling, resolved through a caller-supplied lookup.
package declarator

import (
	"regexp"
	"strings"

	"ctypemap/dtype"
	"ctypemap/errors"
)

// Class is the argument shape.
type Class uint8

const (
	// Scalar is a bare value parameter.
	Scalar Class = iota
	// Vector is a pointer or fixed-size array parameter.
	Vector
)

func (c Class) String() string {
	if c == Vector {
		return "vector"
	}
	return "scalar"
}

// Argument is the default argument descriptor.
type Argument struct {
	Type  *dtype.Scalar
	Name  string
	Class Class
}

// NewScalar builds a scalar Argument.
func NewScalar(t *dtype.Scalar, name string) Argument {
	return Argument{Type: t, Name: name, Class: Scalar}
}

// NewVector builds a vector Argument.
func NewVector(t *dtype.Scalar, name string) Argument {
	return Argument{Type: t, Name: name, Class: Vector}
}

// Factory builds the caller's argument object from a resolved type and name.
type Factory[A any] func(t *dtype.Scalar, name string) A

// Resolver maps a whitespace-normalized C spelling to its type.
// (*registry.Registry).Resolve satisfies it.
type Resolver func(name string) (*dtype.Scalar, bool)

// MapResolver resolves against a fixed mapping.
func MapResolver(m map[string]dtype.Scalar) Resolver {
	return func(name string) (*dtype.Scalar, bool) {
		t, ok := m[name]
		if !ok {
			return nil, false
		}
		return &t, true
	}
}

var (
	qualifierRe  = regexp.MustCompile(`\b(?:const|volatile|__restrict__|restrict)\b`)
	declaratorRe = regexp.MustCompile(`((?:\*\s*)*)([_a-zA-Z0-9]+)(\s*\[[ 0-9]*\])*\s*$`)
)

// Parse classifies one declaration and builds the result with scalar or
// vector. It never mutates shared state and is safe for concurrent use.
func Parse[A any](decl string, scalar, vector Factory[A], resolve Resolver) (A, error) {
	var zero A

	stripped := qualifierRe.ReplaceAllString(decl, "")

	m := declaratorRe.FindStringSubmatchIndex(stripped)
	if m == nil {
		return zero, errors.New(errors.DeclaratorSyntax, "couldn't parse C declarator '%s'", decl).
			WithSource(decl, 0, len(decl)).
			Build()
	}

	name := stripped[m[4]:m[5]]
	typeName := strings.Join(strings.Fields(stripped[:m[0]]), " ")
	if typeName == "" {
		return zero, errors.New(errors.DeclaratorSyntax, "C declarator '%s' has no type or no name", decl).
			WithSource(decl, 0, len(decl)).
			Build()
	}

	t, ok := resolve(typeName)
	if !ok {
		return zero, errors.New(errors.UnknownTypeName, "unknown type '%s'", typeName).
			WithNames(typeName).
			WithSource(decl, typeOffset(decl), len(typeName)).
			Build()
	}

	// group 1 is the stars with any spacing between them, group 3 the last
	// array suffix
	if m[3] > m[2] || m[6] >= 0 {
		return vector(t, name), nil
	}
	return scalar(t, name), nil
}

// ParseArgument parses decl into the default Argument type.
func ParseArgument(decl string, resolve Resolver) (Argument, error) {
	return Parse[Argument](decl, NewScalar, NewVector, resolve)
}

// typeOffset finds where the type spelling starts in the unstripped text,
// for error positions.
func typeOffset(decl string) int {
	rest := decl
	offset := 0
	for {
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		offset += len(rest) - len(trimmed)
		rest = trimmed
		loc := qualifierRe.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			return offset
		}
		offset += loc[1]
		rest = rest[loc[1]:]
	}
}
