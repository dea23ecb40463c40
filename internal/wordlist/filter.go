package wordlist

// FilterFunc reports whether a token from the word list should be kept.
type FilterFunc func(string) bool

// IsLowerASCII keeps tokens made only of the letters a to z. It backs --clean,
// which drops capitalized names, hyphenated forms and accented spellings.
func IsLowerASCII(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < 'a' || token[i] > 'z' {
			return false
		}
	}
	return true
}
