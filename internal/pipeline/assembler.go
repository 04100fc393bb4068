package pipeline

import (
	"regexp"
	"strings"
	"time"

	"github.com/jobsift/jobsift/internal/columns"
	"github.com/jobsift/jobsift/internal/jobs"
	"github.com/jobsift/jobsift/internal/normalize"
	"github.com/jobsift/jobsift/internal/vocab"
)

// A salary column that only says "Competitive" carries no numbers; the
// description is the better source then.
var competitiveRe = regexp.MustCompile(`(?i)\bcompetitive\b`)

// Assembler turns one raw row into one JobRecord. It never looks at other
// rows; cross-row policy (deduplication) lives elsewhere.
type Assembler struct {
	resolver   *columns.Resolver
	locations  *normalize.Locations
	vocabulary *vocab.Set
	refDate    time.Time
}

func NewAssembler(resolver *columns.Resolver, locations *normalize.Locations, vocabulary *vocab.Set, refDate time.Time) *Assembler {
	return &Assembler{
		resolver:   resolver,
		locations:  locations,
		vocabulary: vocabulary,
		refDate:    refDate,
	}
}

// Assemble normalizes every canonical field of the row. Fields that fail to
// parse come out absent; a bad cell never discards the record.
func (a *Assembler) Assemble(row jobs.RawRow) *jobs.JobRecord {
	record := &jobs.JobRecord{
		TechStack:   []string{},
		OriginalRow: row,
	}

	if raw, ok := a.resolver.Resolve(row, columns.FieldTitle); ok {
		record.JobTitle = optional(raw)
	}
	if raw, ok := a.resolver.Resolve(row, columns.FieldURL); ok {
		record.JobURL = optional(raw)
	}

	if raw, ok := a.resolver.Resolve(row, columns.FieldPostedDate); ok {
		if iso, parsed := normalize.Date(raw, a.refDate); parsed {
			record.PostedDate = &iso
		}
	}

	if raw, ok := a.resolver.Resolve(row, columns.FieldLocation); ok {
		if loc, real := a.locations.Normalize(raw); real {
			record.Location = &loc
		}
	}

	description := ""
	if raw, ok := a.resolver.Resolve(row, columns.FieldDescription); ok {
		description = normalize.Description(raw)
		record.JobDescription = optional(description)
	}

	record.Salary = normalize.Salary(a.salarySource(row, description))

	if raw, ok := a.resolver.Resolve(row, columns.FieldTechStack); ok {
		record.TechStack = normalize.TechStackFromColumn(raw)
	} else {
		record.TechStack = normalize.TechStackFromText(description, a.vocabulary.Terms())
	}

	return record
}

// salarySource prefers the dedicated salary column unless it is empty or
// merely "Competitive"; the cleaned description is the fallback.
func (a *Assembler) salarySource(row jobs.RawRow, description string) string {
	if raw, ok := a.resolver.Resolve(row, columns.FieldSalary); ok {
		if !competitiveRe.MatchString(raw) {
			return raw
		}
	}
	return description
}

// optional trims the value and returns nil for the empty result, so blank
// cells serialize as null instead of "".
func optional(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
