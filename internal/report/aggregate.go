// Package report rolls per-answer analyses up into a final report and renders
// completed sessions as Markdown or HTML.
package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/iammorganparry/interview-coach/internal/models"
)

var ErrEmptyAnalysisSet = errors.New("cannot aggregate an empty analysis set")

// maxListItems caps the strength and improvement lists of a final report.
const maxListItems = 5

const (
	strongThreshold   = 7.5
	adequateThreshold = 5.0
)

// Aggregate computes the final report over the ordered analyses of a session.
func Aggregate(analyses []models.Analysis) (*models.FinalReport, error) {
	if len(analyses) == 0 {
		return nil, ErrEmptyAnalysisSet
	}

	n := float64(len(analyses))
	var overall float64
	sums := make(map[models.Dimension]float64, len(models.Dimensions))
	var strengths, improvements [][]string
	for _, a := range analyses {
		overall += a.OverallScore
		for _, d := range models.Dimensions {
			sums[d] += a.Score(d)
		}
		strengths = append(strengths, a.Strengths)
		improvements = append(improvements, a.ImprovementAreas)
	}

	breakdown := make(map[models.Dimension]float64, len(models.Dimensions))
	for _, d := range models.Dimensions {
		breakdown[d] = round1(sums[d] / n)
	}

	r := &models.FinalReport{
		OverallScore:        round1(overall / n),
		AreasForImprovement: mergeUnique(improvements, maxListItems),
		StrengthAnalysis:    mergeUnique(strengths, maxListItems),
		CategoryBreakdown:   breakdown,
	}
	r.DetailedFeedback = detailedFeedback(r.OverallScore, breakdown, len(analyses))
	return r, nil
}

// Band names the performance tier of an overall score.
func Band(score float64) string {
	switch {
	case score >= strongThreshold:
		return "Strong performance"
	case score >= adequateThreshold:
		return "Adequate performance"
	default:
		return "Needs improvement"
	}
}

func detailedFeedback(overall float64, breakdown map[models.Dimension]float64, answered int) string {
	msg := fmt.Sprintf("%s overall with a score of %.1f/10 across %d answered questions.", Band(overall), overall, answered)

	best, worst := models.Dimensions[0], models.Dimensions[0]
	for _, d := range models.Dimensions[1:] {
		if breakdown[d] > breakdown[best] {
			best = d
		}
		if breakdown[d] < breakdown[worst] {
			worst = d
		}
	}
	if breakdown[best] == breakdown[worst] {
		return msg + " Scores were balanced across all dimensions."
	}
	return msg + fmt.Sprintf(" Your strongest dimension was %s (%.1f) and the one with the most room to grow was %s (%.1f).",
		best, breakdown[best], worst, breakdown[worst])
}

// mergeUnique concatenates lists, keeping the first occurrence of each item,
// and stops after limit items.
func mergeUnique(lists [][]string, limit int) []string {
	out := make([]string, 0, limit)
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, item := range list {
			if seen[item] {
				continue
			}
			if len(out) == limit {
				return out
			}
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
