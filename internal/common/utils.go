package common

// Prefix returns the first n bytes of s, or s itself when it is shorter.
func Prefix(s string, n int) string {
	if n < 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n]
}
