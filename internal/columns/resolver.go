// Package columns maps the many header spellings found in real-world job
// exports onto the fixed set of canonical fields.
package columns

import (
	"strings"

	"github.com/jobsift/jobsift/internal/jobs"
)

// Canonical field names. These are the only keys the resolver understands;
// raw columns that match none of them survive only inside original_row.
const (
	FieldTitle       = "job_title"
	FieldURL         = "job_url"
	FieldLocation    = "location"
	FieldPostedDate  = "posted_date"
	FieldSalary      = "salary"
	FieldTechStack   = "tech_stack"
	FieldDescription = "job_description"
)

// Fields lists every canonical field the resolver knows about.
var Fields = []string{
	FieldTitle,
	FieldURL,
	FieldLocation,
	FieldPostedDate,
	FieldSalary,
	FieldTechStack,
	FieldDescription,
}

// variants lists the accepted header spellings per canonical field, highest
// priority first. Matching is done on normalized headers (lowercased,
// underscores treated as spaces), so "Job_Title" and "job title" are the
// same entry.
var variants = map[string][]string{
	FieldTitle:       {"job title", "title", "position", "role", "job name"},
	FieldURL:         {"job url", "url", "job link", "link", "apply url", "posting url"},
	FieldLocation:    {"location", "job location", "city", "place"},
	FieldPostedDate:  {"posted date", "date posted", "posted", "published", "publication date", "date"},
	FieldSalary:      {"salary", "salary range", "pay", "pay rate", "compensation", "rate"},
	FieldTechStack:   {"tech stack", "skills", "technologies", "tech", "stack", "key skills"},
	FieldDescription: {"job description html", "description html", "job description", "description", "details"},
}

// Resolver binds one header row to the canonical fields. Built once per
// run and read-only afterwards.
type Resolver struct {
	// mapping holds canonical field -> original header, as spelled in the
	// input file, picked by variant priority.
	mapping map[string]string
}

// New resolves the header row against the variant tables. Unrecognized
// headers are simply ignored here; their cells stay available through
// original_row.
func New(headers []string) *Resolver {
	normalized := make(map[string]string, len(headers))
	for _, h := range headers {
		key := normalizeHeader(h)
		if _, taken := normalized[key]; !taken {
			normalized[key] = h
		}
	}

	mapping := make(map[string]string)
	for field, names := range variants {
		for _, name := range names {
			if original, found := normalized[name]; found {
				mapping[field] = original
				break
			}
		}
	}

	return &Resolver{mapping: mapping}
}

// Resolve returns the raw cell for the given canonical field. The second
// return is false when the input has no matching column or the cell is
// blank; that is a normal outcome, not an error.
func (r *Resolver) Resolve(row jobs.RawRow, field string) (string, bool) {
	header, ok := r.mapping[field]
	if !ok {
		return "", false
	}
	value, found := row[header]
	if !found || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}
