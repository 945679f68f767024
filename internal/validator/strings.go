package validator

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// IsEmpty reports whether input holds nothing but whitespace.
func IsEmpty(input string) bool {
	trimmed := strings.TrimSpace(input)

	// An inner space means there is content around it.
	if strings.Index(trimmed, " ") > 0 {
		return false
	}

	return len(trimmed) == 0
}

// IsLength reports whether the trimmed input is at most length characters long.
// An empty input or a zero length fails the check.
func IsLength(input string, length int) bool {
	if input == "" || length == 0 {
		return false
	}

	return utf8.RuneCountInString(strings.TrimSpace(input)) <= length
}

// IsOfLength reports whether the trimmed input is at least length characters long.
// An empty input or a zero length fails the check.
func IsOfLength(input string, length int) bool {
	if input == "" || length == 0 {
		return false
	}

	return utf8.RuneCountInString(strings.TrimSpace(input)) >= length
}

// IsTrimmed reports whether input has no leading, trailing or doubled spaces.
func IsTrimmed(input string) bool {
	if input == "" {
		return false
	}

	for _, segment := range strings.Split(input, " ") {
		if segment == "" {
			return false
		}
	}

	return true
}

// IsAlphanumeric reports whether every character of input is an ASCII letter or digit.
// The empty string is alphanumeric.
func IsAlphanumeric(input string) bool {
	for i := 0; i < len(input); i++ {
		if !isAlphanumeric(input[i]) {
			return false
		}
	}

	return true
}

// WithoutSymbols returns input with everything except ASCII letters and digits removed.
// Spaces are kept unless removeSpaces is set.
func WithoutSymbols(input string, removeSpaces bool) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}

	return stripSymbols(input, removeSpaces), nil
}

// IsComposedOf reports whether input, once symbols and spaces are removed and it is
// lower-cased, can be read left to right as a run of the given tokens.
//
// The scan is greedy: a character equal to the first token counts on its own,
// otherwise characters accumulate until they spell one of the tokens. Matching
// the first token restarts accumulation at index 1, not at the current index.
func IsComposedOf(input string, tokens []string) bool {
	if input == "" || len(tokens) == 0 {
		return false
	}

	s := normalize(input)

	clean := make([]string, len(tokens))
	for i, token := range tokens {
		clean[i] = normalize(token)
	}

	matched, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i:i+1] == clean[0]:
			start = 1
			matched++
		case slices.Contains(clean, s[start:i+1]):
			matched += i - start + 1
			start = i + 1
		}
	}

	return matched == len(s)
}

func normalize(s string) string {
	return strings.ToLower(stripSymbols(s, true))
}

func stripSymbols(s string, removeSpaces bool) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlphanumeric(c) || (c == ' ' && !removeSpaces) {
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isAlphanumeric(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
