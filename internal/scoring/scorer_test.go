package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iammorganparry/interview-coach/internal/models"
)

type staticKeywords map[models.Category][]string

func (s staticKeywords) Keywords(c models.Category) []string { return s[c] }

const clearAnswer = "First I measured the slow query with the profiler. Then I added an index and the latency dropped sharply."

func TestScore_EmptyAnswer(t *testing.T) {
	s := New(nil)

	for _, resp := range []string{"", "   ", "\n\t", "..."} {
		a := s.Score("Tell me about yourself.", resp, models.CategoryBehavioral)
		assert.Zero(t, a.OverallScore, "response %q", resp)
		assert.Zero(t, a.RelevanceScore)
		assert.Zero(t, a.CompletenessScore)
		assert.Zero(t, a.ClarityScore)
		assert.Empty(t, a.Strengths)
		assert.NotNil(t, a.Strengths)
		assert.Equal(t, []string{"Provide an answer to the question"}, a.ImprovementAreas)
		assert.NotEmpty(t, a.Feedback)
	}
}

func TestScore_SkippedAnswerScoresLow(t *testing.T) {
	a := New(nil).Score("Tell me about yourself.", "(skipped)", models.CategoryBehavioral)

	assert.Less(t, a.OverallScore, 3.0)
	assert.Equal(t, 1.0, a.RelevanceScore)
	assert.Equal(t, 1.5, a.CompletenessScore)
	assert.Equal(t, 3.0, a.ClarityScore)
	assert.Contains(t, a.ImprovementAreas, "Expand the answer with more detail")
}

func TestScore_Deterministic(t *testing.T) {
	s := New(staticKeywords{models.CategoryTechnical: {"index", "latency"}})

	a := s.Score("How did you fix the slow query?", clearAnswer, models.CategoryTechnical)
	b := s.Score("How did you fix the slow query?", clearAnswer, models.CategoryTechnical)
	assert.Equal(t, a, b)
}

func TestScore_WeightedOverall(t *testing.T) {
	a := New(nil).Score("How did you fix the slow query?", clearAnswer, models.CategoryTechnical)

	assert.Equal(t, 4.0, a.RelevanceScore)
	assert.Equal(t, 3.5, a.CompletenessScore)
	assert.Equal(t, 9.0, a.ClarityScore)
	assert.InDelta(t, 5.1, a.OverallScore, 0.11)
	assert.Contains(t, a.Strengths, "Communicates clearly")
	assert.Contains(t, a.ImprovementAreas, "Support the answer with a concrete example")
}

func TestScore_BoundsHold(t *testing.T) {
	s := New(staticKeywords{models.CategorySales: {"customer", "pipeline", "quota"}})
	inputs := []string{
		"x",
		"um uh um uh um uh like basically literally",
		strings.Repeat("customer pipeline quota revenue ", 200),
		strings.Repeat("a ", 500) + ".",
		"12345 67890",
		clearAnswer,
	}

	for _, in := range inputs {
		a := s.Score("How do you build a sales pipeline for a new customer segment?", in, models.CategorySales)
		for _, d := range models.Dimensions {
			assert.GreaterOrEqual(t, a.Score(d), 0.0, "%s on %q", d, in)
			assert.LessOrEqual(t, a.Score(d), 10.0, "%s on %q", d, in)
		}
		assert.GreaterOrEqual(t, a.OverallScore, 0.0)
		assert.LessOrEqual(t, a.OverallScore, 10.0)
	}
}

func TestScore_DetailedAnswerBeatsShortOne(t *testing.T) {
	s := New(staticKeywords{models.CategoryBehavioral: {"team", "conflict"}})
	q := "Describe a conflict you resolved within your team."

	weak := s.Score(q, "It went fine.", models.CategoryBehavioral)
	strong := s.Score(q, "The situation was a conflict in my team about release scope. "+
		"My task was to get both engineers aligned before the deadline. "+
		"First I met each of them to understand their concerns, for example the risk of skipping load tests. "+
		"Then I proposed a staged rollout so we could ship the core feature while testing the rest. "+
		"As a result we released on time and the team resolved the conflict without escalation. "+
		"We also cut incidents by 30 percent over the next quarter.", models.CategoryBehavioral)

	assert.Greater(t, strong.OverallScore, weak.OverallScore)
	assert.Contains(t, strong.Strengths, "Uses a structured STAR narrative")
	assert.Contains(t, strong.Strengths, "Backs points with concrete examples")
	assert.NotContains(t, weak.Strengths, "Uses a structured STAR narrative")
}

func TestCompletenessBands(t *testing.T) {
	words := func(n int) string { return strings.Repeat("word ", n) }

	tests := []struct {
		text string
		want float64
	}{
		{words(5), 1.5},
		{words(10), 3.5},
		{words(24), 3.5},
		{words(25), 5.5},
		{words(49), 5.5},
		{words(50), 7.5},
		{words(100), 9.0},
		{"I shipped 3 releases", 2.5},
		{words(98) + "for example", 10.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, completenessScore(newText(tt.text)), "%d words", len(tokenize(tt.text)))
	}
}

func TestRelevanceCountsQuestionAndCategoryTerms(t *testing.T) {
	q := keyTerms("How would you design a caching layer?")
	require.Equal(t, []string{"design", "caching", "layer"}, q)

	assert.Equal(t, 1.0, relevanceScore(newText("no idea honestly"), q, nil))
	assert.Equal(t, 5.5, relevanceScore(newText("I would design the caching layer"), q, nil))
	assert.Equal(t, 5.5, relevanceScore(newText("I would design the caching layer"), q, []string{"design", "latency"}))
	assert.Equal(t, 6.5, relevanceScore(newText("I would design the caching layer for latency"), q, []string{"design", "latency"}))
	assert.Equal(t, 2.5, relevanceScore(newText("we designed it carefully"), q, nil))

	many := []string{"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1", "i1", "j1"}
	assert.Equal(t, 10.0, relevanceScore(newText(strings.Join(many, " ")), nil, many))
}

func TestClarity(t *testing.T) {
	assert.Equal(t, 3.0, clarityScore(newText("short answer here")))
	assert.Equal(t, 2.0, clarityScore(newText("um um um um um")))
	assert.Equal(t, 9.0, clarityScore(newText(clearAnswer)))
	assert.Equal(t, 4.0, clarityScore(newText(strings.Repeat("word ", 40))))
}

func TestFeedbackBands(t *testing.T) {
	assert.Equal(t, "Excellent answer. Keep it up.", feedback(8.5, nil))
	assert.Equal(t, "Good answer. Keep it up.", feedback(6, nil))
	assert.Equal(t, "Fair answer with room to grow. Keep it up.", feedback(4, nil))
	assert.Equal(t,
		"This answer needs significant work. Next time, focus on this: reduce filler words.",
		feedback(3, []string{"Reduce filler words"}))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "design", stem("designed"))
	assert.Equal(t, "design", stem("designs"))
	assert.Equal(t, "cach", stem("caching"))
	assert.Equal(t, "task", stem("tasks"))
	assert.Equal(t, "bus", stem("bus"))
}
