package util

import "strings"

// StringTakeUntil returns the string up to and excluding sep as well as the
// remainder excluding sep.
//
// found reports whether sep occurred at all; when it did not, head is the
// whole string and tail is empty.
func StringTakeUntil(s string, sep string) (head string, tail string, found bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
