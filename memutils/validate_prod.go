//go:build !debug_mem_utils

package memutils

const (
	// GuardChecks is true when memutils is built with the debug_mem_utils build tag. Pools
	// consult it before paying for guard word checks on frame reuse.
	GuardChecks bool = false
)

// WriteMagicValue writes an easy-to-identify marker across every word of the provided slice.
// This method no-ops unless the debug_mem_utils build tag is present.
func WriteMagicValue(words []uint64) {
}

// ValidateMagicValue verifies that the easy-to-identify marker written by WriteMagicValue is still present.
// It returns true if the value is still present and false otherwise.
// This method no-ops unless the debug_mem_utils build tag is present.
func ValidateMagicValue(words []uint64) bool {
	return true
}

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_mem_utils build tag is present
func DebugValidate(validatable Validatable) {
}
