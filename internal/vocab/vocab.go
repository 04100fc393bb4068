// Package vocab holds the technology vocabulary the description scanner
// matches against. The built-in set covers the usual suspects; a YAML file
// can extend it per run.
package vocab

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// builtin is the default vocabulary. Order matters: it is the tie-break for
// terms first appearing at the same spot in a description.
var builtin = []string{
	"Go", "Golang", "Python", "Java", "JavaScript", "TypeScript", "C++", "C#",
	"Ruby", "Rust", "PHP", "Kotlin", "Swift", "Scala", "SQL", "NoSQL",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka",
	"RabbitMQ", "GraphQL", "REST", "gRPC", "React", "Angular", "Vue",
	"Node.js", "Django", "Flask", "Spring", "Rails", ".NET", "AWS", "Azure",
	"GCP", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "Git",
	"CI/CD", "Linux", "Agile", "Scrum", "Machine Learning", "TensorFlow",
	"PyTorch", "Spark", "Hadoop", "Airflow", "Snowflake", "Tableau",
}

// file is the YAML shape of a vocabulary extension file.
type file struct {
	Terms []string `yaml:"terms"`
}

// Set is an immutable, ordered technology vocabulary. Built once per run.
type Set struct {
	terms []string
}

// FromConfig decodes the loosely typed `vocabulary` config section (as
// handed back by viper) into extension terms.
func FromConfig(raw any) ([]string, error) {
	if raw == nil {
		return nil, nil
	}

	var section file
	cfg := &mapstructure.DecoderConfig{
		Result:  &section,
		TagName: "yaml",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding vocabulary config: %w", err)
	}
	return section.Terms, nil
}

// Load builds the vocabulary from the built-in terms, the optional
// extension file, and any inline extra terms. An empty path means no file.
// Terms that duplicate earlier ones (case-insensitively) are dropped.
func Load(path string, extra []string) (*Set, error) {
	terms := make([]string, 0, len(builtin))
	seen := make(map[string]bool, len(builtin))
	add := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" {
			return
		}
		key := strings.ToLower(term)
		if seen[key] {
			return
		}
		seen[key] = true
		terms = append(terms, term)
	}

	for _, term := range builtin {
		add(term)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading vocabulary file %q: %w", path, err)
		}
		var parsed file
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parsing vocabulary file %q: %w", path, err)
		}
		for _, term := range parsed.Terms {
			add(term)
		}
	}

	for _, term := range extra {
		add(term)
	}

	return &Set{terms: terms}, nil
}

// Terms returns the vocabulary in order. Callers must not mutate the
// returned slice.
func (s *Set) Terms() []string {
	return s.terms
}

func (s *Set) Len() int {
	return len(s.terms)
}
