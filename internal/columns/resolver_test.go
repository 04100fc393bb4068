package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsift/jobsift/internal/jobs"
)

func TestResolverMapsHeaderVariants(t *testing.T) {
	headers := []string{"Job_Title", "URL", "City", "Posted", "Pay Rate", "Skills", "Job_Description_HTML"}
	row := jobs.RawRow{
		"Job_Title":            "Backend Engineer",
		"URL":                  "https://example.com/1",
		"City":                 "Berlin",
		"Posted":               "2 days ago",
		"Pay Rate":             "$500 per day",
		"Skills":               "Go, Docker",
		"Job_Description_HTML": "<p>stuff</p>",
	}

	resolver := New(headers)

	tests := []struct {
		field string
		want  string
	}{
		{FieldTitle, "Backend Engineer"},
		{FieldURL, "https://example.com/1"},
		{FieldLocation, "Berlin"},
		{FieldPostedDate, "2 days ago"},
		{FieldSalary, "$500 per day"},
		{FieldTechStack, "Go, Docker"},
		{FieldDescription, "<p>stuff</p>"},
	}

	for _, tt := range tests {
		got, ok := resolver.Resolve(row, tt.field)
		require.True(t, ok, "field %s", tt.field)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolverVariantPriority(t *testing.T) {
	// "Job Title" outranks "Position" regardless of column order.
	resolver := New([]string{"Position", "Job Title"})
	row := jobs.RawRow{"Position": "from position", "Job Title": "from job title"}

	got, ok := resolver.Resolve(row, FieldTitle)
	require.True(t, ok)
	assert.Equal(t, "from job title", got)
}

func TestResolverPrefersHTMLDescription(t *testing.T) {
	resolver := New([]string{"Description", "Job Description HTML"})
	row := jobs.RawRow{"Description": "plain", "Job Description HTML": "<p>html</p>"}

	got, ok := resolver.Resolve(row, FieldDescription)
	require.True(t, ok)
	assert.Equal(t, "<p>html</p>", got)
}

func TestResolverAbsence(t *testing.T) {
	resolver := New([]string{"Title", "Location"})

	// Blank cells resolve to absent.
	_, ok := resolver.Resolve(jobs.RawRow{"Title": "   ", "Location": "Berlin"}, FieldTitle)
	assert.False(t, ok)

	// Columns the input never had.
	_, ok = resolver.Resolve(jobs.RawRow{"Title": "x"}, FieldSalary)
	assert.False(t, ok)

	// Fields the resolver does not know.
	_, ok = resolver.Resolve(jobs.RawRow{"Title": "x"}, "no_such_field")
	assert.False(t, ok)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "job title", normalizeHeader("  Job_Title "))
	assert.Equal(t, "posted date", normalizeHeader("POSTED   DATE"))
}
