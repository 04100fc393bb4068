package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsift/jobsift/internal/jobs"
)

func TestSalary(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   jobs.SalaryInfo
	}{
		{
			name:   "symbol range with period",
			source: "$500 - $650 per day",
			want: jobs.SalaryInfo{
				Display:        ptr("$500 - $650"),
				MinAmount:      ptr(500.0),
				MaxAmount:      ptr(650.0),
				CurrencyCode:   ptr("USD"),
				CurrencySymbol: ptr("$"),
				Period:         ptr("Day"),
			},
		},
		{
			name:   "k suffix implies yearly",
			source: "£45k",
			want: jobs.SalaryInfo{
				Display:        ptr("£45k"),
				MinAmount:      ptr(45000.0),
				MaxAmount:      ptr(45000.0),
				CurrencyCode:   ptr("GBP"),
				CurrencySymbol: ptr("£"),
				Period:         ptr("Year"),
			},
		},
		{
			name:   "k range",
			source: "$80k-$100k",
			want: jobs.SalaryInfo{
				Display:        ptr("$80k-$100k"),
				MinAmount:      ptr(80000.0),
				MaxAmount:      ptr(100000.0),
				CurrencyCode:   ptr("USD"),
				CurrencySymbol: ptr("$"),
				Period:         ptr("Year"),
			},
		},
		{
			name:   "code currency and annum",
			source: "60000 EUR per annum",
			want: jobs.SalaryInfo{
				Display:        ptr("60000 EUR"),
				MinAmount:      ptr(60000.0),
				MaxAmount:      ptr(60000.0),
				CurrencyCode:   ptr("EUR"),
				CurrencySymbol: ptr("€"),
				Period:         ptr("Year"),
			},
		},
		{
			name:   "textual range separator",
			source: "500 to 650 per week",
			want: jobs.SalaryInfo{
				Display:   ptr("500 to 650"),
				MinAmount: ptr(500.0),
				MaxAmount: ptr(650.0),
				Period:    ptr("Week"),
			},
		},
		{
			name:   "inverted range is stored low to high",
			source: "$650 - $500 per day",
			want: jobs.SalaryInfo{
				Display:        ptr("$650 - $500"),
				MinAmount:      ptr(500.0),
				MaxAmount:      ptr(650.0),
				CurrencyCode:   ptr("USD"),
				CurrencySymbol: ptr("$"),
				Period:         ptr("Day"),
			},
		},
		{
			name:   "hourly shorthand",
			source: "$25/hr",
			want: jobs.SalaryInfo{
				Display:        ptr("$25"),
				MinAmount:      ptr(25.0),
				MaxAmount:      ptr(25.0),
				CurrencyCode:   ptr("USD"),
				CurrencySymbol: ptr("$"),
				Period:         ptr("Hour"),
			},
		},
		{
			name:   "first range wins",
			source: "$40,000 - $50,000 or $60,000 - $70,000 per year",
			want: jobs.SalaryInfo{
				Display:        ptr("$40,000 - $50,000"),
				MinAmount:      ptr(40000.0),
				MaxAmount:      ptr(50000.0),
				CurrencyCode:   ptr("USD"),
				CurrencySymbol: ptr("$"),
				Period:         ptr("Year"),
			},
		},
		{
			name:   "bare currency marker is not displayable",
			source: "$ negotiable",
			want: jobs.SalaryInfo{
				CurrencyCode:   ptr("USD"),
				CurrencySymbol: ptr("$"),
			},
		},
		{
			name:   "competitive only",
			source: "Competitive",
			want:   jobs.SalaryInfo{},
		},
		{
			name:   "numbers in tech names are not money",
			source: "Java 8, Spring 5, and Hibernate experience required",
			want:   jobs.SalaryInfo{},
		},
		{
			name:   "empty",
			source: "",
			want:   jobs.SalaryInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Salary(tt.source))
		})
	}
}

func TestSalaryFromLongDescription(t *testing.T) {
	text := "We're hiring across the board. You will join a fast moving team " +
		"and ship production systems every single week of the year. " +
		"Salary range is $90,000 - $120,000 per year plus equity and benefits."

	got := Salary(text)

	require.NotNil(t, got.MinAmount)
	require.NotNil(t, got.MaxAmount)
	assert.Equal(t, 90000.0, *got.MinAmount)
	assert.Equal(t, 120000.0, *got.MaxAmount)
	assert.Equal(t, ptr("USD"), got.CurrencyCode)
	assert.Equal(t, ptr("Year"), got.Period)
	assert.Equal(t, ptr("$90,000 - $120,000"), got.Display)
}

func TestSalaryPhraseFromMoneyPattern(t *testing.T) {
	text := "You will be working with a modern stack and shipping features " +
		"continuously together with a friendly, senior team of engineers. " +
		"£400 - £500 per day (outside IR35)."

	got := Salary(text)

	assert.Equal(t, ptr("£400 - £500"), got.Display)
	assert.Equal(t, ptr(400.0), got.MinAmount)
	assert.Equal(t, ptr(500.0), got.MaxAmount)
	assert.Equal(t, ptr("GBP"), got.CurrencyCode)
	assert.Equal(t, ptr("Day"), got.Period)
}

func TestSalaryMinNeverExceedsMax(t *testing.T) {
	for _, source := range []string{
		"$500 - $650 per day",
		"$650 - $500 per day",
		"£45k",
		"100 to 90 per hour",
	} {
		got := Salary(source)
		if got.MinAmount != nil && got.MaxAmount != nil {
			assert.LessOrEqual(t, *got.MinAmount, *got.MaxAmount, "source %q", source)
		}
	}
}
