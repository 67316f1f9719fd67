// Package strutil contains the string predicates used to validate grammar alphabets.
package strutil

// LowerOnly returns true if s consists only of the letters a-z.
func LowerOnly(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// UpperOnly returns true if s consists only of the letters A-Z.
func UpperOnly(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Unique returns true if no rune occurs in s more than once.
func Unique(s string) bool {
	seen := map[rune]bool{}
	for _, r := range s {
		if seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}

// ContainsAny returns true if any rune of s is in set.
func ContainsAny(s string, set map[rune]bool) bool {
	for _, r := range s {
		if set[r] {
			return true
		}
	}
	return false
}
