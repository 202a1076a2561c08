package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iammorganparry/interview-coach/internal/models"
)

func analysis(overall float64) models.Analysis {
	return models.Analysis{
		OverallScore:      overall,
		RelevanceScore:    overall,
		CompletenessScore: overall,
		ClarityScore:      overall,
	}
}

func TestAggregate_Empty(t *testing.T) {
	r, err := Aggregate(nil)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrEmptyAnalysisSet)

	_, err = Aggregate([]models.Analysis{})
	assert.ErrorIs(t, err, ErrEmptyAnalysisSet)
}

func TestAggregate_MeanOfOverallScores(t *testing.T) {
	r, err := Aggregate([]models.Analysis{analysis(8), analysis(6), analysis(10), analysis(4)})
	require.NoError(t, err)
	assert.Equal(t, 7.0, r.OverallScore)
}

func TestAggregate_BreakdownPerDimension(t *testing.T) {
	r, err := Aggregate([]models.Analysis{
		{OverallScore: 5, RelevanceScore: 9, CompletenessScore: 2, ClarityScore: 7},
		{OverallScore: 6, RelevanceScore: 8, CompletenessScore: 3, ClarityScore: 7},
		{OverallScore: 6, RelevanceScore: 8, CompletenessScore: 3, ClarityScore: 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 5.7, r.OverallScore)
	assert.Equal(t, map[models.Dimension]float64{
		models.DimensionRelevance:    8.3,
		models.DimensionCompleteness: 2.7,
		models.DimensionClarity:      6.7,
	}, r.CategoryBreakdown)
	assert.Contains(t, r.DetailedFeedback, "Adequate performance")
	assert.Contains(t, r.DetailedFeedback, "3 answered questions")
	assert.Contains(t, r.DetailedFeedback, "strongest dimension was relevance (8.3)")
	assert.Contains(t, r.DetailedFeedback, "room to grow was completeness (2.7)")
}

func TestAggregate_OrderDoesNotChangeScores(t *testing.T) {
	in := []models.Analysis{analysis(3.3), analysis(9.1), analysis(6.4), analysis(7.7)}
	rev := []models.Analysis{in[3], in[2], in[1], in[0]}

	a, err := Aggregate(in)
	require.NoError(t, err)
	b, err := Aggregate(rev)
	require.NoError(t, err)

	assert.Equal(t, a.OverallScore, b.OverallScore)
	assert.Equal(t, a.CategoryBreakdown, b.CategoryBreakdown)
}

func TestAggregate_ListsDedupedInFirstOccurrenceOrder(t *testing.T) {
	r, err := Aggregate([]models.Analysis{
		{Strengths: []string{"A", "B"}, ImprovementAreas: []string{"x"}},
		{Strengths: []string{"B", "C"}, ImprovementAreas: []string{"x", "y"}},
		{Strengths: []string{"D", "A", "E", "F", "G"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, r.StrengthAnalysis)
	assert.Equal(t, []string{"x", "y"}, r.AreasForImprovement)
}

func TestAggregate_EmptyListsAreNotNil(t *testing.T) {
	r, err := Aggregate([]models.Analysis{analysis(5)})
	require.NoError(t, err)
	assert.NotNil(t, r.StrengthAnalysis)
	assert.NotNil(t, r.AreasForImprovement)
	assert.Contains(t, r.DetailedFeedback, "balanced across all dimensions")
}

func TestBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{10, "Strong performance"},
		{7.5, "Strong performance"},
		{7.4, "Adequate performance"},
		{5, "Adequate performance"},
		{4.9, "Needs improvement"},
		{0, "Needs improvement"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, Band(tt.score))
		})
	}
}

func completedSnapshot(t *testing.T) models.SessionSnapshot {
	t.Helper()
	scores := []models.Analysis{
		{OverallScore: 8, RelevanceScore: 8, CompletenessScore: 8, ClarityScore: 8, Feedback: "Excellent answer. Keep it up.", Strengths: []string{"Communicates clearly"}},
		{OverallScore: 4, RelevanceScore: 4, CompletenessScore: 4, ClarityScore: 4, Feedback: "Fair answer.", ImprovementAreas: []string{"Reduce filler words"}},
	}
	final, err := Aggregate(scores)
	require.NoError(t, err)

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	done := started.Add(20 * time.Minute)
	return models.SessionSnapshot{
		InterviewID:     "abc",
		UserID:          "jane",
		Category:        models.CategoryTechnical,
		CurrentQuestion: 2,
		TotalQuestions:  2,
		Questions:       []string{"What is a mutex?", "How do you test code?"},
		Responses:       []string{"It guards shared state. Mail me at jane@example.com", "<script>alert(1)</script> with unit tests"},
		Scores:          scores,
		Status:          models.StatusCompleted,
		StartTime:       started,
		CompletedAt:     &done,
		FinalResult:     final,
	}
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown(completedSnapshot(t), "Technical Interview")
	require.NoError(t, err)

	assert.Contains(t, md, "# Interview Report: Technical Interview")
	assert.Contains(t, md, "- **Overall score:** 6.0 / 10")
	assert.Contains(t, md, "- **Completed:** 2026-03-01T10:20:00Z")
	assert.Contains(t, md, "| Relevance | 6.0 |")
	assert.Contains(t, md, "### 2. How do you test code?")
	assert.Contains(t, md, "> It guards shared state. Mail me at [email]")
	assert.NotContains(t, md, "jane@example.com")
	assert.Contains(t, md, "- Communicates clearly")
	assert.Contains(t, md, "- Reduce filler words")
}

func TestMarkdown_IncompleteSession(t *testing.T) {
	s := completedSnapshot(t)
	s.Status = models.StatusActive
	s.FinalResult = nil

	_, err := Markdown(s, "Technical Interview")
	assert.ErrorIs(t, err, ErrSessionIncomplete)
}

func TestRenderHTML(t *testing.T) {
	out, err := Render(completedSnapshot(t), "Technical <Interview>", FormatHTML)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<title>Technical &lt;Interview&gt;</title>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<blockquote>")
	assert.NotContains(t, html, "<script>")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	f, err = ParseFormat("HTML")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)
	assert.Equal(t, "text/html; charset=utf-8", f.ContentType())

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}
