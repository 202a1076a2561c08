// Package scoring evaluates a single interview answer with shallow text
// heuristics: word-count bands for completeness, key-term overlap for
// relevance and sentence shape plus filler words for clarity.
package scoring

import (
	"math"
	"slices"
	"strings"
	"unicode"

	"github.com/iammorganparry/interview-coach/internal/models"
)

// KeywordSource supplies per-category key terms.
type KeywordSource interface {
	Keywords(category models.Category) []string
}

const (
	relevanceWeight    = 0.40
	completenessWeight = 0.35
	clarityWeight      = 0.25

	maxScore = 10.0
)

// Scorer is stateless apart from its immutable keyword source, so Score is a
// pure function of its arguments and safe for concurrent use.
type Scorer struct {
	keywords KeywordSource
}

func New(keywords KeywordSource) *Scorer {
	return &Scorer{keywords: keywords}
}

// Score analyzes response as an answer to question. It never fails: empty or
// junk input produces a valid, low-scoring analysis.
func (s *Scorer) Score(question, response string, category models.Category) models.Analysis {
	t := newText(response)
	if t.words() == 0 {
		return models.Analysis{
			Feedback:         "No answer was provided for this question.",
			Strengths:        []string{},
			ImprovementAreas: []string{"Provide an answer to the question"},
		}
	}

	var categoryTerms []string
	if s.keywords != nil {
		categoryTerms = s.keywords.Keywords(category)
	}

	relevance := round1(relevanceScore(t, keyTerms(question), categoryTerms))
	completeness := round1(completenessScore(t))
	clarity := round1(clarityScore(t))
	overall := round1(relevanceWeight*relevance + completenessWeight*completeness + clarityWeight*clarity)

	strengths, improvements := observations(t, category, relevance, completeness, clarity)

	return models.Analysis{
		OverallScore:      overall,
		RelevanceScore:    relevance,
		CompletenessScore: completeness,
		ClarityScore:      clarity,
		Feedback:          feedback(overall, improvements),
		Strengths:         strengths,
		ImprovementAreas:  improvements,
	}
}

// text is a tokenized answer.
type text struct {
	raw       string
	tokens    []string
	stems     map[string]bool
	joined    string // " tok tok tok " for phrase matching
	sentences int
}

func newText(raw string) *text {
	tokens := tokenize(raw)
	stems := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		stems[stem(tok)] = true
	}
	return &text{
		raw:       raw,
		tokens:    tokens,
		stems:     stems,
		joined:    " " + strings.Join(tokens, " ") + " ",
		sentences: countSentences(raw),
	}
}

func (t *text) words() int { return len(t.tokens) }

func (t *text) hasPhrase(phrase string) bool {
	return strings.Contains(t.joined, " "+phrase+" ")
}

func (t *text) countPhrase(phrase string) int {
	words := strings.Fields(phrase)
	n := 0
	for i := 0; i+len(words) <= len(t.tokens); i++ {
		if slices.Equal(t.tokens[i:i+len(words)], words) {
			n++
		}
	}
	return n
}

func (t *text) hasTerm(term string) bool {
	if strings.Contains(term, " ") {
		return t.hasPhrase(term)
	}
	return t.stems[stem(term)]
}

func (t *text) hasExample() bool {
	for _, p := range examplePhrases {
		if t.hasPhrase(p) {
			return true
		}
	}
	return strings.ContainsFunc(t.raw, unicode.IsDigit)
}

func (t *text) fillerCount() int {
	n := 0
	for _, f := range fillerWords {
		n += t.countPhrase(f)
	}
	return n
}

func (t *text) hasStructure() bool {
	for _, m := range structureMarkers {
		if t.hasPhrase(m) {
			return true
		}
	}
	return false
}

// completenessScore maps word count onto bands, with a bonus for concrete
// examples or figures.
func completenessScore(t *text) float64 {
	var s float64
	switch n := t.words(); {
	case n < 10:
		s = 1.5
	case n < 25:
		s = 3.5
	case n < 50:
		s = 5.5
	case n < 100:
		s = 7.5
	default:
		s = 9.0
	}
	if t.hasExample() {
		s += 1.0
	}
	return math.Min(s, maxScore)
}

// relevanceScore counts distinct question and category key terms present in
// the answer. Terms shared by both sets count once, as question terms.
func relevanceScore(t *text, questionTerms, categoryTerms []string) float64 {
	seen := make(map[string]bool, len(questionTerms))
	questionHits := 0
	for _, term := range questionTerms {
		seen[stem(term)] = true
		if t.hasTerm(term) {
			questionHits++
		}
	}
	categoryHits := 0
	for _, term := range categoryTerms {
		if seen[stem(term)] {
			continue
		}
		seen[stem(term)] = true
		if t.hasTerm(term) {
			categoryHits++
		}
	}
	return math.Min(1+1.5*float64(questionHits)+1.0*float64(categoryHits), maxScore)
}

func clarityScore(t *text) float64 {
	n := t.words()
	if n < 5 {
		return 3
	}

	s := 6.0
	avg := float64(n) / float64(max(t.sentences, 1))
	switch {
	case avg >= 8 && avg <= 25:
		s += 2
	case avg > 35:
		s -= 2
	}
	if t.hasStructure() {
		s++
	}
	ratio := float64(t.fillerCount()) / float64(n)
	s -= math.Min(4, 40*ratio)

	return clamp(s)
}

func observations(t *text, category models.Category, relevance, completeness, clarity float64) (strengths, improvements []string) {
	strengths = []string{}
	improvements = []string{}

	if relevance >= 7 {
		strengths = append(strengths, "Stays focused on the question")
	}
	if completeness >= 7 {
		strengths = append(strengths, "Gives a thorough, detailed answer")
	}
	if clarity >= 7 {
		strengths = append(strengths, "Communicates clearly")
	}
	if t.hasExample() {
		strengths = append(strengths, "Backs points with concrete examples")
	}

	if relevance < 5 {
		improvements = append(improvements, "Address the question more directly")
	}
	if completeness < 5 {
		improvements = append(improvements, "Expand the answer with more detail")
	}
	if clarity < 5 {
		improvements = append(improvements, "Organize the answer into clear, complete sentences")
	}
	if float64(t.fillerCount())/float64(t.words()) > 0.05 {
		improvements = append(improvements, "Reduce filler words")
	}
	if !t.hasExample() {
		improvements = append(improvements, "Support the answer with a concrete example")
	}

	if category == models.CategoryBehavioral {
		hits := 0
		for _, term := range starTerms {
			if t.hasTerm(term) {
				hits++
			}
		}
		switch {
		case hits >= 3:
			strengths = append(strengths, "Uses a structured STAR narrative")
		case t.words() >= 10:
			improvements = append(improvements, "Frame the story with situation, task, action and result")
		}
	}

	return strengths, improvements
}

func feedback(overall float64, improvements []string) string {
	var band string
	switch {
	case overall >= 8:
		band = "Excellent answer."
	case overall >= 6:
		band = "Good answer."
	case overall >= 4:
		band = "Fair answer with room to grow."
	default:
		band = "This answer needs significant work."
	}
	if len(improvements) == 0 {
		return band + " Keep it up."
	}
	first := improvements[0]
	return band + " Next time, focus on this: " + strings.ToLower(first[:1]) + first[1:] + "."
}

// keyTerms extracts the content words of a question.
func keyTerms(question string) []string {
	var terms []string
	seen := map[string]bool{}
	for _, tok := range tokenize(question) {
		if len(tok) < 4 || stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		terms = append(terms, tok)
	}
	return terms
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func countSentences(s string) int {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	n := 0
	for _, p := range parts {
		if len(tokenize(p)) > 0 {
			n++
		}
	}
	return n
}

// stem strips a few common English suffixes so "designed" matches "design".
func stem(w string) string {
	for _, suffix := range []string{"ing", "ed", "es", "s"} {
		if strings.HasSuffix(w, suffix) && len(w)-len(suffix) >= 4 {
			return strings.TrimSuffix(w, suffix)
		}
	}
	return w
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(maxScore, v))
}
