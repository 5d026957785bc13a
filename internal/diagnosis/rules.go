package diagnosis

import "strings"

// keywordRule maps free-text answers to a closed value. A rule matches when
// the lowercased text contains any of its keywords.
type keywordRule[T any] struct {
	value    T
	keywords []string
}

func (r keywordRule[T]) matches(lowered string) bool {
	for _, k := range r.keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}

// firstMatch returns the value of the first matching rule in priority order.
func firstMatch[T any](rules []keywordRule[T], text string) (T, bool) {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(lowered) {
			return r.value, true
		}
	}
	var zero T
	return zero, false
}

// allMatches returns the values of every matching rule, in rule order.
func allMatches[T any](rules []keywordRule[T], text string) []T {
	lowered := strings.ToLower(text)
	var out []T
	for _, r := range rules {
		if r.matches(lowered) {
			out = append(out, r.value)
		}
	}
	return out
}
