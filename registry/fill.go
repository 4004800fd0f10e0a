package registry

import (
	"fmt"

	"ctypemap/dtype"
	"ctypemap/platform"
)

// binding is one registration step of a filler.
type binding struct {
	names Names
	t     dtype.Scalar
}

func (r *Registry) apply(filler string, steps []binding) error {
	for _, step := range steps {
		if _, err := r.Register(step.names, step.t); err != nil {
			return fmt.Errorf("fill %s types: %w", filler, err)
		}
	}
	log.Infof("filled %s types (%d names registered)", filler, r.Len())
	return nil
}

// FillCTypes registers the C ABI primitive types of host.
//
// On 64-bit hosts the 64-bit integer is spelled "long", or "long long" on
// Windows when respectWindows is set. bool has no fixed size in OpenCL
// (it may be 4 bytes), so includeBool lets callers leave it out.
func FillCTypes(r *Registry, host platform.Host, respectWindows, includeBool bool) error {
	var steps []binding

	if includeBool {
		steps = append(steps, binding{Name("bool"), dtype.Bool8})
	}

	steps = append(steps,
		binding{Aliases("signed char", "char"), dtype.Int8},
		binding{Name("unsigned char"), dtype.Uint8},
		binding{Aliases("short", "signed short", "signed short int", "short signed int"), dtype.Int16},
		binding{Aliases("unsigned short", "unsigned short int", "short unsigned int"), dtype.Uint16},
		binding{Aliases("int", "signed int"), dtype.Int32},
		binding{Aliases("unsigned", "unsigned int"), dtype.Uint32},
	)

	if host.Is64Bit() {
		i64 := "long"
		if host.IsWindows() && respectWindows {
			i64 = "long long"
		}
		steps = append(steps,
			binding{Aliases(i64, i64+" int", "signed "+i64+" int", i64+" signed int"), dtype.Int64},
			binding{Aliases("unsigned "+i64, "unsigned "+i64+" int", i64+" unsigned int"), dtype.Uint64},
			binding{Name("unsigned " + i64), host.Uintp()},
		)
	} else {
		steps = append(steps, binding{Name("unsigned"), host.Uintp()})
	}

	steps = append(steps,
		binding{Name("float"), dtype.Float32},
		binding{Name("double"), dtype.Float64},
	)

	return r.apply("C", steps)
}

// FillOpenCLTypes registers the OpenCL C scalar types. Their widths are fixed
// by OpenCL; only intptr_t and uintptr_t follow the host pointer width.
func FillOpenCLTypes(r *Registry, host platform.Host) error {
	return r.apply("OpenCL", []binding{
		{Aliases("char", "signed char"), dtype.Int8},
		{Aliases("uchar", "unsigned char"), dtype.Uint8},
		{Aliases("short", "signed short", "signed short int", "short signed int"), dtype.Int16},
		{Aliases("ushort", "unsigned short", "unsigned short int", "short unsigned int"), dtype.Uint16},
		{Aliases("int", "signed int"), dtype.Int32},
		{Aliases("uint", "unsigned", "unsigned int"), dtype.Uint32},
		{Aliases("long", "long int", "signed long int", "long signed int"), dtype.Int64},
		{Aliases("ulong", "unsigned long", "unsigned long int", "long unsigned int"), dtype.Uint64},
		{Name("intptr_t"), host.Intp()},
		{Name("uintptr_t"), host.Uintp()},
		{Name("float"), dtype.Float32},
		{Name("double"), dtype.Float64},
	})
}

// FillStdintTypes registers the C99 <stdint.h> exact-width types.
func FillStdintTypes(r *Registry, host platform.Host) error {
	return r.apply("stdint", []binding{
		{Name("bool"), dtype.Bool8},
		{Name("int8_t"), dtype.Int8},
		{Name("uint8_t"), dtype.Uint8},
		{Name("int16_t"), dtype.Int16},
		{Name("uint16_t"), dtype.Uint16},
		{Name("int32_t"), dtype.Int32},
		{Name("uint32_t"), dtype.Uint32},
		{Name("int64_t"), dtype.Int64},
		{Name("uint64_t"), dtype.Uint64},
		{Name("uintptr_t"), host.Uintp()},
		{Name("float"), dtype.Float32},
		{Name("double"), dtype.Float64},
	})
}

// FillC99ComplexTypes registers the C99 _Complex types.
func FillC99ComplexTypes(r *Registry, host platform.Host) error {
	return r.apply("C99 complex", []binding{
		{Name("float complex"), dtype.Complex64},
		{Name("double complex"), dtype.Complex128},
		{Name("long double complex"), host.CLongDouble()},
	})
}

// NewDefault builds the registry most C kernel generators want: C, stdint
// and C99 complex types for host, frozen. Construct it once at the
// composition root and pass it down.
func NewDefault(host platform.Host, respectWindows bool) (*Registry, error) {
	r := New()
	if err := FillCTypes(r, host, respectWindows, true); err != nil {
		return nil, err
	}
	if err := FillStdintTypes(r, host); err != nil {
		return nil, err
	}
	if err := FillC99ComplexTypes(r, host); err != nil {
		return nil, err
	}
	r.Freeze()
	return r, nil
}
