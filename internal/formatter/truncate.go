package formatter

import "unicode/utf8"

// TruncateString truncates a string to maxLen characters, counting runes
func TruncateString(s string, maxLen int) string {
	if maxLen < 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLen])
}

// TruncateWithEllipsis shortens a string to maxLen runes, ending in "..." when cut
func TruncateWithEllipsis(s string, maxLen int) string {
	if maxLen < 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return TruncateString(s, maxLen)
	}

	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
