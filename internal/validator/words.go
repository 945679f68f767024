package validator

import "strings"

// CountWords returns the number of runs of ASCII letters and digits in input.
func CountWords(input string) int {
	count := 0
	inWord := false

	for i := 0; i < len(input); i++ {
		if !isAlphanumeric(input[i]) {
			inWord = false
			continue
		}

		if !inWord {
			count++
			inWord = true
		}
	}

	return count
}

// LessWordsThan reports whether input has at most count words.
func LessWordsThan(input string, count int) bool {
	if input == "" || count == 0 {
		return false
	}

	return CountWords(input) <= count
}

// MoreWordsThan reports whether input has at least count words.
func MoreWordsThan(input string, count int) bool {
	if input == "" || count == 0 {
		return false
	}

	return CountWords(input) >= count
}

// Contains reports whether every one of words appears in input as a whole word,
// ignoring case. A match must not have a letter or digit directly before or after it.
func Contains(input string, words []string) bool {
	if input == "" || len(words) == 0 {
		return false
	}

	return containsAll(strings.ToLower(input), words)
}

// Lacks reports whether at least one of words is missing from input, using the same
// matching rule as Contains. It is not "none of the words": Lacks is true as soon
// as a single word is absent.
func Lacks(input string, words []string) bool {
	if input == "" || len(words) == 0 {
		return false
	}

	return !containsAll(strings.ToLower(input), words)
}

func containsAll(haystack string, words []string) bool {
	for _, word := range words {
		if !containsWord(haystack, strings.ToLower(word)) {
			return false
		}
	}

	return true
}

func containsWord(s, word string) bool {
	if word == "" {
		return false
	}

	for offset := 0; offset+len(word) <= len(s); {
		i := strings.Index(s[offset:], word)
		if i < 0 {
			return false
		}

		start := offset + i
		end := start + len(word)

		before := start == 0 || !isAlphanumeric(s[start-1])
		after := end == len(s) || !isAlphanumeric(s[end])
		if before && after {
			return true
		}

		offset = start + 1
	}

	return false
}
