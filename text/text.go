package text

import (
	"strconv"
	"strings"
)

// Contains reports whether sub occurs anywhere in s. This is the text arm
// of the membership predicate.
func Contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// ContainsRune reports whether the character r occurs in s.
func ContainsRune(s string, r rune) bool {
	return strings.ContainsRune(s, r)
}

// Find returns the byte index of the first occurrence of sub, or -1.
func Find(s, sub string) int {
	return strings.Index(s, sub)
}

// Substr extracts the byte range [start, end), with negative offsets
// counting from the end and out-of-range offsets clamped. An inverted
// range is empty.
func Substr(s string, start, end int) string {
	n := len(s)
	lo := clampOffset(start, n)
	hi := clampOffset(end, n)
	if lo >= hi {
		return ""
	}
	return s[lo:hi]
}

func clampOffset(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// CharAt returns the character at rune index i as a one-character string,
// with negative indices counting from the end. Out of range yields the
// empty string.
func CharAt(s string, i int) string {
	runes := []rune(s)
	n := len(runes)
	j := i
	if j < 0 {
		j += n
		if j < 0 {
			j = 0
		}
	}
	if j >= n {
		return ""
	}
	return string(runes[j])
}

// Chars splits s into one-character strings.
func Chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Repeat returns s repeated n times, or the empty string when n <= 0.
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// PadCenter centers s within a field of width characters, padding with
// spaces. When the total padding is odd the extra space goes on the right.
// A string already at least width characters wide is returned unchanged.
func PadCenter(s string, width int) string {
	n := len([]rune(s))
	if width <= 0 || n >= width {
		return s
	}
	total := width - n
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// PadLeft pads s on the left with fill up to width characters.
func PadLeft(s string, width int, fill string) string {
	return pad(s, width, fill) + s
}

// PadRight pads s on the right with fill up to width characters.
func PadRight(s string, width int, fill string) string {
	return s + pad(s, width, fill)
}

func pad(s string, width int, fill string) string {
	n := len([]rune(s))
	if width <= n || fill == "" {
		return ""
	}
	need := width - n
	reps := need/len([]rune(fill)) + 1
	padding := []rune(strings.Repeat(fill, reps))
	return string(padding[:need])
}

// Split divides s around each occurrence of sep.
func Split(s, sep string) []string {
	return strings.Split(s, sep)
}

// Join concatenates elems with sep between them.
func Join(elems []string, sep string) string {
	return strings.Join(elems, sep)
}

// Lines splits s into its lines, without trailing newlines.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	out := strings.Split(s, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for i, line := range out {
		out[i] = strings.TrimSuffix(line, "\r")
	}
	return out
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string { return strings.TrimSpace(s) }

// TrimStart removes leading whitespace.
func TrimStart(s string) string { return strings.TrimLeft(s, " \t\n\r\v\f") }

// TrimEnd removes trailing whitespace.
func TrimEnd(s string) string { return strings.TrimRight(s, " \t\n\r\v\f") }

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool { return strings.HasPrefix(s, prefix) }

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool { return strings.HasSuffix(s, suffix) }

// StripPrefix removes prefix from the front of s if present.
func StripPrefix(s, prefix string) string { return strings.TrimPrefix(s, prefix) }

// StripSuffix removes suffix from the end of s if present.
func StripSuffix(s, suffix string) string { return strings.TrimSuffix(s, suffix) }

// Replace substitutes every occurrence of from with to.
func Replace(s, from, to string) string { return strings.ReplaceAll(s, from, to) }

// ToUpper returns s with all letters uppercased.
func ToUpper(s string) string { return strings.ToUpper(s) }

// ToLower returns s with all letters lowercased.
func ToLower(s string) string { return strings.ToLower(s) }

// IsEmpty reports whether s has no bytes.
func IsEmpty(s string) bool { return s == "" }

// ParseInt converts s to an integer, tolerating surrounding whitespace.
// Unparseable input yields 0.
func ParseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// ParseFloat converts s to a float, tolerating surrounding whitespace.
// Unparseable input yields 0.
func ParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
