package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain runs before all tests and prints ISA diagnostic information.
// This helps CI identify which kernel is actually being used.
func TestMain(m *testing.M) {
	fmt.Printf("=== Kernel ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvISA, os.Getenv(EnvISA))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("CPU Features:\n")

	switch runtime.GOARCH {
	case "arm64":
		fmt.Printf("  ASIMD (NEON): %v\n", HasASIMD())
	case "amd64":
		fmt.Printf("  POPCNT: %v\n", HasPOPCNT())
	}

	fmt.Printf("==============================\n\n")

	os.Exit(m.Run())
}
