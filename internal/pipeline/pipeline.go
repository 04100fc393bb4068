// Package pipeline composes the per-field normalizers into the row-by-row
// conversion: resolve columns, normalize fields, drop duplicate URLs.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/columns"
	"github.com/jobsift/jobsift/internal/jobs"
	"github.com/jobsift/jobsift/internal/logger"
	"github.com/jobsift/jobsift/internal/normalize"
	"github.com/jobsift/jobsift/internal/vocab"
)

// Options configures one pipeline run.
type Options struct {
	// ReferenceDate is the date relative phrases resolve against.
	ReferenceDate time.Time
	// Vocabulary backs the description tech-stack scan.
	Vocabulary *vocab.Set
	// ExtraPlaceholders extends the built-in location placeholder set.
	ExtraPlaceholders []string
	// Logger may be nil.
	Logger *zap.Logger
}

// Pipeline is built once per run and processes rows strictly in input
// order. Output order equals first-seen order of unique URLs.
type Pipeline struct {
	opts Options
}

func New(opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Vocabulary == nil {
		// Built-ins only; Load cannot fail without a file path.
		opts.Vocabulary, _ = vocab.Load("", nil)
	}
	return &Pipeline{opts: opts}
}

// Run converts the rows into deduplicated records. It is deterministic:
// the same rows and reference date produce byte-identical output.
func (p *Pipeline) Run(headers []string, rows []jobs.RawRow) *jobs.Records {
	resolver := columns.New(headers)
	assembler := NewAssembler(
		resolver,
		normalize.NewLocations(p.opts.ExtraPlaceholders),
		p.opts.Vocabulary,
		p.opts.ReferenceDate,
	)
	dedup := NewDeduplicator()

	records := &jobs.Records{Items: make([]*jobs.JobRecord, 0, len(rows))}
	duplicates := 0
	for _, row := range rows {
		record := assembler.Assemble(row)
		if !dedup.Admit(record.DedupKey()) {
			duplicates++
			p.opts.Logger.Debug("dropping duplicate listing", zap.String("url", record.DedupKey()))
			continue
		}

		description := ""
		if record.JobDescription != nil {
			description = *record.JobDescription
		}
		p.opts.Logger.Debug("assembled record",
			zap.Stringp("title", record.JobTitle),
			zap.Stringp("url", record.JobURL),
			zap.String("description", logger.TruncateForLog(description, 120)),
			zap.Strings("tech_stack", record.TechStack),
		)

		records.Items = append(records.Items, record)
	}

	p.opts.Logger.Info("conversion finished",
		zap.Int("rows", len(rows)),
		zap.Int("duplicates_dropped", duplicates),
		zap.Int("records", records.Len()),
	)

	return records
}
