package validator

import (
	"strings"
	"unicode/utf8"
)

// IsEmailAddress is a lenient check: a non-empty string with at least one "@".
// The domain part is not inspected.
func IsEmailAddress(input string) bool {
	if input == "" {
		return false
	}

	return len(strings.Split(input, "@")) >= 2
}

// IsPhoneNumber checks for the US layout NNN-NNN-NNNN. Only segment lengths are checked.
func IsPhoneNumber(input string) bool {
	if input == "" {
		return false
	}

	segments := strings.Split(input, "-")
	if len(segments) != 3 {
		return false
	}

	return utf8.RuneCountInString(segments[0]) == 3 &&
		utf8.RuneCountInString(segments[1]) == 3 &&
		utf8.RuneCountInString(segments[2]) == 4
}

// IsCreditCard accepts 16 alphanumeric characters, or 19 characters grouped in
// fours with hyphens at positions 4, 9 and 14.
func IsCreditCard(input string) bool {
	switch utf8.RuneCountInString(input) {
	case 16:
		return IsAlphanumeric(input)
	case 19:
	default:
		return false
	}

	if input[4] != '-' || input[9] != '-' || input[14] != '-' {
		return false
	}

	groups := strings.Split(input, "-")
	if len(groups) != 4 {
		return false
	}

	for _, group := range groups {
		if !IsAlphanumeric(group) {
			return false
		}
	}

	return true
}
