package jobs

import (
	"encoding/json"
	"os"
	"strings"
)

// RawRow is one row of the input file: header name to raw cell value,
// exactly as read. It is copied verbatim into the record that it produced
// and never mutated afterwards.
type RawRow map[string]string

// SalaryInfo holds the structured salary fields parsed out of a listing.
// Nil fields mean the information was not present or not parseable and
// serialize as JSON null.
type SalaryInfo struct {
	Display        *string  `json:"display"`
	MinAmount      *float64 `json:"min_amount"`
	MaxAmount      *float64 `json:"max_amount"`
	CurrencyCode   *string  `json:"currency_code"`
	CurrencySymbol *string  `json:"currency_symbol"`
	Period         *string  `json:"period"`
}

// JobRecord is the canonical form of one listing.
type JobRecord struct {
	JobTitle       *string    `json:"job_title"`
	JobURL         *string    `json:"job_url"`
	Location       *string    `json:"location"`
	PostedDate     *string    `json:"posted_date"`
	JobDescription *string    `json:"job_description"`
	TechStack      []string   `json:"tech_stack"`
	Salary         SalaryInfo `json:"salary"`
	OriginalRow    RawRow     `json:"original_row"`
}

// Records is an ordered list of job records, in first-seen input order.
type Records struct {
	Items []*JobRecord
}

func (r *Records) Len() int {
	return len(r.Items)
}

// DedupKey returns the value used to recognize a listing that was already
// emitted: the trimmed, lowercased URL. Empty means the record has no URL
// and never participates in deduplication.
func (j *JobRecord) DedupKey() string {
	if j.JobURL == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*j.JobURL))
}

// ToFile writes the records as an indented JSON array.
func (r *Records) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(r.items())
}

// items never returns nil so an empty run still serializes as [].
func (r *Records) items() []*JobRecord {
	if r.Items == nil {
		return []*JobRecord{}
	}
	return r.Items
}
