package citation

import "regexp"

var (
	markerRe = regexp.MustCompile(`\[([^\]]+)\]`)
	digitsRe = regexp.MustCompile(`\d+`)
)

// NormalizeMarkers rewrites malformed citation markers in generated report
// text. Each bracketed token is handled in place:
//
//   - all digits ("[12]")        -> kept as-is
//   - contains digits ("[ref 3]") -> rewritten to the first digit run ("[3]")
//   - no digits ("[source]")      -> left untouched
//
// Report writers reference sources as [1], [2], ... but language models
// occasionally emit decorated variants; this restores the canonical form
// without ever destroying a token it cannot repair.
func NormalizeMarkers(text string) string {
	return markerRe.ReplaceAllStringFunc(text, func(match string) string {
		token := match[1 : len(match)-1]
		if isDigits(token) {
			return match
		}
		if num := digitsRe.FindString(token); num != "" {
			return "[" + num + "]"
		}
		return match
	})
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
