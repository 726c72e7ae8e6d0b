package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents an instruction set used by the word kernels.
type ISA uint8

const (
	// Generic represents pure Go implementation (no hardware popcount).
	Generic ISA = iota
	// NEON represents ARM64 ASIMD (CNT instruction).
	NEON
	// POPCNT represents x86-64 POPCNT.
	POPCNT
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case POPCNT:
		return "popcnt"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "popcnt":
		return POPCNT, true
	default:
		return Generic, false
	}
}

// EnvISA names the environment variable that overrides kernel selection.
const EnvISA = "BITARRAY_ISA"

// Package-level state - initialized once at package init.
var (
	// activeISA is the selected implementation.
	activeISA ISA

	// hasOverride is true if BITARRAY_ISA was set to a valid name.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasASIMD  bool // ARM64 NEON
	hasPOPCNT bool // x86-64 POPCNT
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA = selectISA(os.Getenv(EnvISA))
	applyKernels(activeISA)
}

// selectISA honors a valid, available override and falls back to
// auto-detection otherwise.
func selectISA(override string) ISA {
	hasOverride = false
	if override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				return isa
			}
			// Unavailable override - fall through to auto-detection
		}
	}
	return selectBestISA()
}

// applyKernels wires the kernel function pointers for isa.
func applyKernels(isa ISA) {
	switch isa {
	case NEON, POPCNT:
		kernelPopcountWords = popcountWordsHardware
	default:
		kernelPopcountWords = popcountWordsSparse
	}
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case POPCNT:
		return hasPOPCNT
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasPOPCNT {
			return POPCNT
		}
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if BITARRAY_ISA was set.
func IsOverridden() bool {
	return hasOverride
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}

// HasPOPCNT returns true if x86-64 POPCNT is available.
func HasPOPCNT() bool {
	return hasPOPCNT
}
