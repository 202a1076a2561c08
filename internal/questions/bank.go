// Package questions holds the per-category question templates used to build
// an interview.
package questions

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/iammorganparry/interview-coach/internal/models"
)

//go:embed default_bank.yaml
var defaultBankYAML []byte

// Document is the on-disk shape of a question bank.
type Document struct {
	Categories []CategoryTemplate `yaml:"categories"`
}

// CategoryTemplate is the template set of one category.
type CategoryTemplate struct {
	ID          models.Category `yaml:"id"`
	DisplayName string          `yaml:"display_name"`
	Keywords    []string        `yaml:"keywords"`
	Questions   []string        `yaml:"questions"`
}

// Bank is an immutable, validated question bank. It is safe for concurrent use.
type Bank struct {
	templates map[models.Category]CategoryTemplate
}

// Default returns the bank compiled into the binary.
func Default() (*Bank, error) {
	return Parse(defaultBankYAML)
}

// Load reads a bank from a YAML file. An empty path yields the default bank.
func Load(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", path, err)
	}
	bank, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	return bank, nil
}

// Parse validates and decodes a YAML bank document.
func Parse(data []byte) (*Bank, error) {
	if errs := Validate(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid question bank: %s", strings.Join(errs, "; "))
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	b := &Bank{templates: make(map[models.Category]CategoryTemplate, len(doc.Categories))}
	for _, tmpl := range doc.Categories {
		if _, dup := b.templates[tmpl.ID]; dup {
			return nil, fmt.Errorf("invalid question bank: category %q defined twice", tmpl.ID)
		}
		tmpl.Questions = dedupe(tmpl.Questions)
		tmpl.Keywords = normalizeKeywords(tmpl.Keywords)
		b.templates[tmpl.ID] = tmpl
	}
	return b, nil
}

// QuestionsFor returns up to count questions for category in bank order.
// When the template set is smaller than count the result is truncated rather
// than padded with repeats. Unknown categories yield an empty result.
func (b *Bank) QuestionsFor(category models.Category, count int) []string {
	tmpl, ok := b.templates[category]
	if !ok || count <= 0 {
		return []string{}
	}
	n := min(count, len(tmpl.Questions))
	out := make([]string, n)
	copy(out, tmpl.Questions[:n])
	return out
}

// Keywords returns the lower-cased key terms configured for category.
func (b *Bank) Keywords(category models.Category) []string {
	return append([]string(nil), b.templates[category].Keywords...)
}

// Categories returns every category in presentation order with its display name.
func (b *Bank) Categories() []models.CategoryInfo {
	out := make([]models.CategoryInfo, 0, len(models.Categories))
	for _, c := range models.Categories {
		out = append(out, models.CategoryInfo{ID: c, Name: b.DisplayName(c)})
	}
	return out
}

// DisplayName returns the configured display name, falling back to the
// title-cased id.
func (b *Bank) DisplayName(category models.Category) string {
	if tmpl, ok := b.templates[category]; ok && tmpl.DisplayName != "" {
		return tmpl.DisplayName
	}
	return cases.Title(language.English).String(string(category)) + " Interview"
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, strings.ToLower(strings.TrimSpace(k)))
	}
	return dedupe(out)
}
