//go:build debug_mem_utils

package memutils

const (
	// GuardChecks is true when memutils is built with the debug_mem_utils build tag. Pools
	// consult it before paying for guard word checks on frame reuse.
	GuardChecks bool = true
	// corruptionDetectionMagicValue is an 8-byte pattern written across the padding of frames
	// that have been returned to a pool
	corruptionDetectionMagicValue uint64 = 0x7F84E6667F84E666
)

// WriteMagicValue writes an easy-to-identify marker across every word of the provided slice.
// This method no-ops unless the debug_mem_utils build tag is present.
func WriteMagicValue(words []uint64) {
	for i := range words {
		words[i] = corruptionDetectionMagicValue
	}
}

// ValidateMagicValue verifies that the easy-to-identify marker written by WriteMagicValue is still present.
// It returns true if the value is still present and false otherwise.
// This method no-ops unless the debug_mem_utils build tag is present.
func ValidateMagicValue(words []uint64) bool {
	for _, word := range words {
		if word != corruptionDetectionMagicValue {
			return false
		}
	}

	return true
}

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_mem_utils build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}
