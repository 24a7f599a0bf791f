package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/KirkDiggler/crocodile/internal/models"
	"gopkg.in/yaml.v3"
)

// Rules are the optional game tables loaded from RULES_FILE
type Rules struct {
	// Achievements replace the built-in milestone table when not empty
	Achievements []models.Achievement `yaml:"achievements"`

	// FallbackWords replace the built-in fallback list when not empty
	FallbackWords []string `yaml:"fallback_words"`
}

// LoadRules reads a YAML rules file. An empty path yields empty rules.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return &Rules{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var rules Rules
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rules); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return &rules, nil
}

// Validate rejects empty titles, non-positive and duplicate thresholds
func (r *Rules) Validate() error {
	seen := make(map[int]bool, len(r.Achievements))
	for _, a := range r.Achievements {
		if a.Threshold <= 0 {
			return fmt.Errorf("achievement %q: threshold must be positive", a.Title)
		}
		if strings.TrimSpace(a.Title) == "" {
			return fmt.Errorf("achievement at %d: title cannot be empty", a.Threshold)
		}
		if seen[a.Threshold] {
			return fmt.Errorf("achievement threshold %d is duplicated", a.Threshold)
		}
		seen[a.Threshold] = true
	}
	return nil
}

// LoadWords reads one word per line, skipping blank lines and # comments
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words file: %w", err)
	}

	return words, nil
}
