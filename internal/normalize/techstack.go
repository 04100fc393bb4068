package normalize

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// columnDelimiters split a dedicated skills column into tokens.
var columnDelimiters = map[rune]bool{',': true, ';': true, '|': true}

// TechStackFromColumn splits a dedicated skills cell on commas, semicolons
// and pipes. Tokens keep their original casing; duplicates collapse
// case-insensitively, first occurrence wins.
func TechStackFromColumn(raw string) []string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return columnDelimiters[r]
	})

	out := make([]string, 0, len(tokens))
	seen := map[string]bool{}
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		key := strings.ToLower(tok)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tok)
	}
	return out
}

// TechStackFromText scans cleaned description text for known vocabulary
// terms and returns them in order of first appearance, cased as they appear
// in the text. Matches are whole-word: "Go" does not fire inside "Google".
// Longer terms claim their span first so "C++" wins over "C".
func TechStackFromText(text string, vocabulary []string) []string {
	if text == "" || len(vocabulary) == 0 {
		return []string{}
	}

	lower := lowerSameWidth(text)

	type match struct {
		index int
		term  string
	}

	terms := make([]string, len(vocabulary))
	copy(terms, vocabulary)
	sort.SliceStable(terms, func(i, j int) bool {
		return len(terms[i]) > len(terms[j])
	})

	var matches []match
	claimed := make([]bool, len(lower))
	for _, term := range terms {
		needle := strings.ToLower(term)
		idx, from := -1, 0
		for {
			i := indexOfWord(lower, needle, from)
			if i < 0 {
				break
			}
			if !claimed[i] {
				idx = i
				break
			}
			from = i + 1
		}
		// lowerSameWidth keeps byte offsets aligned with text, so the
		// match span can be sliced out of the original directly.
		if idx < 0 {
			continue
		}
		for i := idx; i < idx+len(needle); i++ {
			claimed[i] = true
		}
		matches = append(matches, match{index: idx, term: text[idx : idx+len(needle)]})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].index < matches[j].index
	})

	out := make([]string, 0, len(matches))
	seen := map[string]bool{}
	for _, m := range matches {
		key := strings.ToLower(m.term)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m.term)
	}
	return out
}

// indexOfWord finds the first occurrence of term in text at or after from
// that sits on word boundaries. Both strings must already be lowercased.
func indexOfWord(text, term string, from int) int {
	if term == "" || from < 0 {
		return -1
	}
	for start := from; start <= len(text)-len(term); {
		i := strings.Index(text[start:], term)
		if i < 0 {
			return -1
		}
		i += start
		if wordBoundary(text, i, len(term)) {
			return i
		}
		start = i + 1
	}
	return -1
}

func wordBoundary(text string, idx, length int) bool {
	first := rune(text[idx])
	last := rune(text[idx+length-1])

	if idx > 0 && isWordRune(first) && isWordRune(rune(text[idx-1])) {
		return false
	}
	if end := idx + length; end < len(text) && isWordRune(last) && isWordRune(rune(text[end])) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// lowerSameWidth lowercases s rune by rune, skipping any rune whose
// lowercase form encodes to a different number of bytes (such as U+0130).
// The result is always the same byte length as s, so indices found in it
// map one-to-one back onto s.
func lowerSameWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		l := unicode.ToLower(r)
		if utf8.RuneLen(l) != utf8.RuneLen(r) {
			l = r
		}
		b.WriteRune(l)
	}
	return b.String()
}
