package utils

// Truncate cuts text down to at most limit characters, counted in runes so a
// multi-byte character is never split in half.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
