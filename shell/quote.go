// Package shell renders words for a POSIX shell command line, the form both
// plugin execute lines and printed ssh commands take.
package shell

import "strings"

// plain is the punctuation that never needs quoting.
const plain = "-_./@:,+="

// Quote returns s as a single shell word. Words made only of letters,
// digits and plain punctuation come back unchanged; everything else is
// wrapped in single quotes.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, needsQuoting) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Join quotes every word and joins them with spaces.
func Join(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = Quote(w)
	}
	return strings.Join(quoted, " ")
}

func needsQuoting(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return false
	}
	return !strings.ContainsRune(plain, r)
}
