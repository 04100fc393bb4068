package normalize

import "strings"

// builtinPlaceholders are raw strings that conventionally mean "no data".
// Compared after trimming, lowercasing and dropping a trailing period, so
// "See Job Desc." and "see job desc" are the same entry.
var builtinPlaceholders = map[string]struct{}{
	"see job desc":        {},
	"see job description": {},
	"n/a":                 {},
	"na":                  {},
}

// Locations filters placeholder values out of raw location strings. Extra
// placeholders can come from configuration.
type Locations struct {
	placeholders map[string]struct{}
}

// NewLocations builds the filter from the built-in placeholder set plus any
// configured extras.
func NewLocations(extra []string) *Locations {
	placeholders := make(map[string]struct{}, len(builtinPlaceholders)+len(extra))
	for p := range builtinPlaceholders {
		placeholders[p] = struct{}{}
	}
	for _, p := range extra {
		if key := placeholderKey(p); key != "" {
			placeholders[key] = struct{}{}
		}
	}
	return &Locations{placeholders: placeholders}
}

// Normalize trims the raw value and reports false for empty strings and
// placeholders. Real location names pass through unchanged; no case
// normalization is applied to them.
func (l *Locations) Normalize(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if _, isPlaceholder := l.placeholders[placeholderKey(trimmed)]; isPlaceholder {
		return "", false
	}
	return trimmed, true
}

func placeholderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".")
	return strings.Join(strings.Fields(s), " ")
}
