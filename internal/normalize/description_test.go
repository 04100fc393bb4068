package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "tags stripped and entities decoded",
			raw:  "<p>Build &amp; ship <b>Go</b> services</p>",
			want: "Build & ship Go services",
		},
		{
			name: "nested markup",
			raw:  "<div><ul><li>Python</li><li>Django</li></ul></div>",
			want: "Python Django",
		},
		{
			name: "block elements separate words",
			raw:  "<h2>Stack</h2><p>Go</p><p>Kafka</p>",
			want: "Stack Go Kafka",
		},
		{
			name: "plain text passes through",
			raw:  "  plain   text ",
			want: "plain text",
		},
		{
			name: "angle brackets that are not markup",
			raw:  "5 < 10 and x > 3",
			want: "5 < 10 and x > 3",
		},
		{
			name: "non breaking spaces",
			raw:  "per\u00a0day",
			want: "per day",
		},
		{
			name: "newlines collapse",
			raw:  "first line\n\n second\tline",
			want: "first line second line",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace only",
			raw:  "  \n ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Description(tt.raw))
		})
	}
}

func TestDescriptionListItemsStayScannable(t *testing.T) {
	text := Description("<ul><li>Python</li><li>Docker</li></ul>")

	assert.Equal(t, "Python Docker", text)
	assert.Equal(t, []string{"Python", "Docker"}, TechStackFromText(text, []string{"Python", "Docker"}))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText(" a b \n c "))
	assert.Equal(t, "", CleanText("   "))
}
