// Package dtype describes the fixed-width scalar element types of the host
// array runtime.
package dtype

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"

	"ctypemap/errors"
)

// Kind represents scalar type kinds.
type Kind uint8

const (
	Bool    Kind = iota // Boolean
	Int                 // Signed integer
	Uint                // Unsigned integer
	Float               // Floating point
	Complex             // Complex floating point, Width covers both parts
)

// String returns the runtime prefix for the kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case Complex:
		return "complex"
	default:
		return "unknown"
	}
}

// ByteOrder is the in-memory byte order of a scalar.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big"
	}
	return "little"
}

// NativeOrder is the byte order of the running host.
var NativeOrder = nativeOrder()

func nativeOrder() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}

// Key identifies a scalar by kind and width; it is the map key the registry
// uses, so byte order never splits one type into two entries.
type Key struct {
	Kind  Kind
	Width uint8
}

// Scalar describes a fixed-width scalar type.
type Scalar struct {
	Kind  Kind
	Width uint8 // in bytes
	Order ByteOrder
}

// New returns a scalar in native byte order.
func New(kind Kind, width uint8) Scalar {
	return Scalar{Kind: kind, Width: width, Order: NativeOrder}
}

// Predefined scalars.
var (
	Bool8      = New(Bool, 1)
	Int8       = New(Int, 1)
	Int16      = New(Int, 2)
	Int32      = New(Int, 4)
	Int64      = New(Int, 8)
	Uint8      = New(Uint, 1)
	Uint16     = New(Uint, 2)
	Uint32     = New(Uint, 4)
	Uint64     = New(Uint, 8)
	Float16    = New(Float, 2)
	Float32    = New(Float, 4)
	Float64    = New(Float, 8)
	Complex64  = New(Complex, 8)
	Complex128 = New(Complex, 16)
)

// Key returns the identity of s used for equality and hashing.
func (s Scalar) Key() Key {
	return Key{Kind: s.Kind, Width: s.Width}
}

// Equal reports whether s and o have the same kind and width.
func (s Scalar) Equal(o Scalar) bool {
	return s.Key() == o.Key()
}

// Bits returns the width in bits.
func (s Scalar) Bits() int {
	return int(s.Width) * 8
}

// ItemSize returns the width in bytes.
func (s Scalar) ItemSize() int {
	return int(s.Width)
}

// String returns the runtime spelling, e.g. "int32" or "complex128".
func (s Scalar) String() string {
	if s.Kind == Bool {
		return "bool"
	}
	return s.Kind.String() + strconv.Itoa(s.Bits())
}

// Validate checks that the width is one the kind can take.
func (s Scalar) Validate() error {
	ok := false
	switch s.Kind {
	case Bool:
		ok = s.Width == 1
	case Int, Uint:
		ok = s.Width == 1 || s.Width == 2 || s.Width == 4 || s.Width == 8
	case Float:
		ok = s.Width == 2 || s.Width == 4 || s.Width == 8 || s.Width == 10 || s.Width == 12 || s.Width == 16
	case Complex:
		ok = s.Width == 8 || s.Width == 16 || s.Width == 20 || s.Width == 24 || s.Width == 32
	}
	if !ok {
		return errors.New(errors.InvalidScalar, "invalid width %d for kind %s", s.Width, s.Kind).Build()
	}
	return nil
}

// Parse parses a runtime spelling such as "uint8", "float64" or "bool".
func Parse(name string) (Scalar, error) {
	name = strings.TrimSpace(name)
	if name == "bool" {
		return Bool8, nil
	}

	for _, kind := range []Kind{Uint, Int, Float, Complex} {
		prefix := kind.String()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		bits, err := strconv.Atoi(name[len(prefix):])
		if err != nil || bits <= 0 || bits%8 != 0 || bits > 255*8 {
			break
		}
		s := New(kind, uint8(bits/8))
		if err := s.Validate(); err != nil {
			return Scalar{}, fmt.Errorf("parse %q: %w", name, err)
		}
		return s, nil
	}

	return Scalar{}, errors.UnknownType(name)
}
