package validator

import (
	"strconv"
	"strings"
)

// IsHex checks for #rgb or #rrggbb.
func IsHex(input string) bool {
	clean := strings.TrimSpace(input)
	if clean == "" || clean[0] != '#' {
		return false
	}

	if len(clean) != 4 && len(clean) != 7 {
		return false
	}

	for i := 1; i < len(clean); i++ {
		if !isHexDigit(clean[i]) {
			return false
		}
	}

	return true
}

// IsRGB checks for rgb(r,g,b) with integer channels in [0,255]. Spaces inside
// the parentheses are ignored.
func IsRGB(input string) bool {
	segments, ok := colorSegments(input, "rgb")
	if !ok {
		return false
	}

	for _, segment := range segments {
		n, err := strconv.Atoi(segment)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}

	return true
}

// IsHSL checks for hsl(h,s,l) with h in [0,360] and s, l in [0,1]. Spaces inside
// the parentheses are ignored.
func IsHSL(input string) bool {
	segments, ok := colorSegments(input, "hsl")
	if !ok {
		return false
	}

	return inRange(segments[0], 0, 360) && inRange(segments[1], 0, 1) && inRange(segments[2], 0, 1)
}

// IsColor reports whether input is a hex, rgb() or hsl() colour.
func IsColor(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}

	return IsHex(input) || IsRGB(input) || IsHSL(input)
}

// colorSegments unwraps fn(a,b,c) into its three space-free arguments.
func colorSegments(input, fn string) ([]string, bool) {
	clean := strings.TrimSpace(input)
	if len(clean) < len(fn)+2 || !strings.HasPrefix(clean, fn+"(") || !strings.HasSuffix(clean, ")") {
		return nil, false
	}

	inner := strings.ReplaceAll(clean[len(fn)+1:len(clean)-1], " ", "")

	segments := strings.Split(inner, ",")
	if len(segments) != 3 {
		return nil, false
	}

	return segments, true
}

func inRange(segment string, lo, hi float64) bool {
	v, err := strconv.ParseFloat(segment, 64)
	if err != nil {
		return false
	}

	// Written this way round so NaN fails.
	return v >= lo && v <= hi
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
