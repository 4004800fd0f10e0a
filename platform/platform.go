// Package platform answers the host questions the C type fillers need:
// native pointer width, OS family and byte order.
package platform

import (
	"runtime"
	"strconv"
	"sync"

	"github.com/xyproto/env/v2"

	"ctypemap/dtype"
)

// Environment variables that retarget the probe, e.g. when generating
// kernels for a 32-bit device from a 64-bit build host.
const (
	EnvPointerBits = "CTYPEMAP_POINTER_BITS"
	EnvGOOS        = "CTYPEMAP_GOOS"
	EnvGOARCH      = "CTYPEMAP_GOARCH"
)

// Host describes the platform whose C ABI the registry follows.
type Host struct {
	PointerBits int
	GOOS        string
	GOARCH      string
	Order       dtype.ByteOrder
}

var (
	nativeOnce sync.Once
	native     Host
)

// Native returns the probed host. The probe runs once per process.
func Native() Host {
	nativeOnce.Do(func() {
		native = Probe()
	})
	return native
}

// Probe inspects the running process and applies environment overrides.
func Probe() Host {
	bits := env.Int(EnvPointerBits, strconv.IntSize)
	if bits != 32 && bits != 64 {
		bits = strconv.IntSize
	}
	return Host{
		PointerBits: bits,
		GOOS:        env.Str(EnvGOOS, runtime.GOOS),
		GOARCH:      env.Str(EnvGOARCH, runtime.GOARCH),
		Order:       dtype.NativeOrder,
	}
}

// Is64Bit reports whether pointers are 64 bits wide.
func (h Host) Is64Bit() bool {
	return h.PointerBits == 64
}

// IsWindows reports whether the host follows the LLP64 model.
func (h Host) IsWindows() bool {
	return h.GOOS == "windows"
}

func (h Host) scalar(kind dtype.Kind, width uint8) dtype.Scalar {
	return dtype.Scalar{Kind: kind, Width: width, Order: h.Order}
}

// Intp is the signed integer type as wide as a pointer.
func (h Host) Intp() dtype.Scalar {
	return h.scalar(dtype.Int, uint8(h.PointerBits/8))
}

// Uintp is the unsigned integer type as wide as a pointer.
func (h Host) Uintp() dtype.Scalar {
	return h.scalar(dtype.Uint, uint8(h.PointerBits/8))
}

// CLongDouble is the complex type built from two C long doubles.
func (h Host) CLongDouble() dtype.Scalar {
	switch {
	case h.IsWindows(), h.GOOS == "darwin" && h.GOARCH == "arm64":
		// long double is plain double
		return h.scalar(dtype.Complex, 16)
	case !h.Is64Bit():
		return h.scalar(dtype.Complex, 24)
	default:
		return h.scalar(dtype.Complex, 32)
	}
}
