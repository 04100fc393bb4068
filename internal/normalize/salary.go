package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jobsift/jobsift/internal/jobs"
)

// Salary text arrives in every notation humans invent: "£500-£650 per day",
// "USD 90k", "Salary: competitive", or buried in a paragraph of description.
// Parsing is an ordered rule table evaluated top-down, first match wins, so
// tie-breaks stay reproducible.

const num = `\d[\d,]*(?:\.\d+)?[kK]?`

// shortSourceLimit: anything at most this long is assumed to already be the
// salary blob; longer text goes through phrase extraction first.
const shortSourceLimit = 120

var (
	// phraseRules pull a salary-looking fragment out of long text,
	// tried in order.
	phraseRules = []*regexp.Regexp{
		// A fragment led by a salary keyword, up to a sentence boundary.
		regexp.MustCompile(`(?i)\b(?:salary|compensation|package|rate|pay|wage|remuneration)\b[^.!\n]*:?\s*[^.!\n]+`),
		// A currency-marked amount or range.
		regexp.MustCompile(`(?i)[$€£]\s?` + num + `(?:\s*[-–]\s*[$€£]?\s?` + num + `)?(?:\s*(?:USD|GBP|EUR))?(?:\s*(?:per\s*(?:hour|day|week|month|year)|/hr|/hour|/day|/week|/month|/year|hr\b|hourly))?`),
		// A bare number with an explicit pay period.
		regexp.MustCompile(`(?i)` + num + `\s*(?:per\s*(?:hour|day|week|month|year)|/hr|/hour|/day|/week|/month|/year|\bhr\b|hourly|daily|weekly|monthly|yearly)`),
		// Textual descriptors.
		regexp.MustCompile(`(?i)\b(?:competitive|doe)\b`),
	}

	currencyRe  = regexp.MustCompile(`(?i)[$€£]|\b(?:usd|gbp|eur)\b`)
	keywordRe   = regexp.MustCompile(`(?i)\b(?:salary|compensation|package|rate|pay|wage|remuneration|base|bonus)\b`)
	anyPeriodRe = regexp.MustCompile(`(?i)per\s*(?:hour|day|week|month|year)|/hr|/hour|/day|/week|/month|/year|\bhr\b|hourly|daily|weekly|monthly|yearly|annum|annual|\byr\b|\bpa\b|p\.a\.`)

	// periodRules map synonyms to the canonical period, tried in order.
	periodRules = []struct {
		re     *regexp.Regexp
		period string
	}{
		{regexp.MustCompile(`(?i)per\s*hour|/hour|/hr|\bhr\b|hourly`), "Hour"},
		{regexp.MustCompile(`(?i)per\s*day|/day|daily|day rate`), "Day"},
		{regexp.MustCompile(`(?i)per\s*week|/week|weekly`), "Week"},
		{regexp.MustCompile(`(?i)per\s*month|/month|monthly|/mo\b`), "Month"},
		{regexp.MustCompile(`(?i)per\s*year|/year|per\s*annum|annum|annual|yearly|\byr\b|\bpa\b|p\.a\.|\bsalary\b|\bbase\b`), "Year"},
	}

	// kAmountRe backs the heuristic that thousands-suffixed amounts with no
	// explicit period are yearly.
	kAmountRe = regexp.MustCompile(`(?i)\d+\s*k\b`)

	rangeRe  = regexp.MustCompile(`(` + num + `)\s*(?:-|–|to)\s*(?:[$€£]\s?)?(` + num + `)`)
	numberRe = regexp.MustCompile(num)

	// displayRe captures the minimal verbatim span holding the currency
	// marker and the amount or range.
	displayRe = regexp.MustCompile(`(?i)(?:(?:usd|gbp|eur)\s*)?[$€£]?\s?` + num + `(?:\s*(?:-|–|to)\s*[$€£]?\s?` + num + `)?(?:\s*(?:usd|gbp|eur))?`)
)

// symbol <-> code, fixed bidirectional table.
var currencyTable = []struct {
	symbol string
	code   string
}{
	{"$", "USD"},
	{"£", "GBP"},
	{"€", "EUR"},
}

// Salary parses a raw salary cell (or, as fallback, description text) into
// structured fields. It is pure and deterministic; unparseable input yields
// a SalaryInfo with every field absent.
func Salary(source string) jobs.SalaryInfo {
	var out jobs.SalaryInfo

	snippet := extractPhrase(strings.TrimSpace(source))
	if snippet == "" {
		return out
	}

	// Require at least one clear salary indicator before treating any
	// numbers as money. This keeps version numbers in tech names out of
	// the salary fields.
	hasCurrency := currencyRe.MatchString(snippet)
	hasPeriod := anyPeriodRe.MatchString(snippet)
	hasKeyword := keywordRe.MatchString(snippet)
	if !hasCurrency && !hasPeriod && !hasKeyword {
		return out
	}

	if marker := currencyRe.FindString(snippet); marker != "" {
		for _, entry := range currencyTable {
			if marker == entry.symbol || strings.EqualFold(marker, entry.code) {
				out.CurrencySymbol = ptr(entry.symbol)
				out.CurrencyCode = ptr(entry.code)
				break
			}
		}
	}

	for _, rule := range periodRules {
		if rule.re.MatchString(snippet) {
			out.Period = ptr(rule.period)
			break
		}
	}
	if out.Period == nil && kAmountRe.MatchString(snippet) {
		out.Period = ptr("Year")
	}

	if m := rangeRe.FindStringSubmatch(snippet); m != nil {
		low, okLow := amount(m[1])
		high, okHigh := amount(m[2])
		if okLow && okHigh {
			if low > high {
				low, high = high, low
			}
			out.MinAmount = ptr(low)
			out.MaxAmount = ptr(high)
		}
	}
	if out.MinAmount == nil {
		if v, ok := amount(numberRe.FindString(snippet)); ok {
			out.MinAmount = ptr(v)
			out.MaxAmount = ptr(v)
		}
	}

	// A bare currency marker with no amount is not worth displaying.
	if out.MinAmount != nil {
		if span := strings.TrimSpace(displayRe.FindString(snippet)); span != "" {
			out.Display = ptr(span)
		}
	}

	return out
}

// extractPhrase narrows long text down to its salary-bearing fragment.
// Short input is taken whole. No rule matching means no salary is present.
func extractPhrase(text string) string {
	if text == "" {
		return ""
	}
	if len(text) <= shortSourceLimit {
		return text
	}
	for _, rule := range phraseRules {
		if m := rule.FindString(text); m != "" {
			return strings.Trim(m, " .")
		}
	}
	return ""
}

// amount parses one numeric token: thousands separators stripped, a
// trailing k multiplies by 1000.
func amount(token string) (float64, bool) {
	token = strings.TrimSpace(strings.ReplaceAll(token, ",", ""))
	if token == "" {
		return 0, false
	}
	multiplier := 1.0
	if strings.HasSuffix(token, "k") || strings.HasSuffix(token, "K") {
		multiplier = 1000
		token = token[:len(token)-1]
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v * multiplier, true
}

func ptr[T any](v T) *T {
	return &v
}
