package validator

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsBetween reports whether floor <= input <= ceil.
//
// A zero argument counts as not supplied and fails the check, so IsBetween(0, 0, 10)
// is false. Callers that need zero as a real bound must compare directly.
func IsBetween[T Numeric](input, floor, ceil T) bool {
	var zero T
	if input == zero || floor == zero || ceil == zero {
		return false
	}

	return input >= floor && input <= ceil
}
