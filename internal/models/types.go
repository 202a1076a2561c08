package models

import "time"

// Category is the fixed interview topic that governs question selection.
type Category string

const (
	CategoryTechnical  Category = "technical"
	CategoryBehavioral Category = "behavioral"
	CategoryManagement Category = "management"
	CategorySales      Category = "sales"
)

// Categories lists every category in presentation order.
var Categories = []Category{
	CategoryTechnical,
	CategoryBehavioral,
	CategoryManagement,
	CategorySales,
}

var ValidCategories = map[Category]bool{
	CategoryTechnical:  true,
	CategoryBehavioral: true,
	CategoryManagement: true,
	CategorySales:      true,
}

func (c Category) IsValid() bool {
	return ValidCategories[c]
}

// CategoryInfo is one entry of GET /categories.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// SessionStatus is the life-cycle state of an interview session.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
)

// Dimension is one of the sub-scores rolled up into the final breakdown.
type Dimension string

const (
	DimensionRelevance    Dimension = "relevance"
	DimensionCompleteness Dimension = "completeness"
	DimensionClarity      Dimension = "clarity"
)

// Dimensions lists the breakdown dimensions in reporting order.
var Dimensions = []Dimension{
	DimensionRelevance,
	DimensionCompleteness,
	DimensionClarity,
}

// Analysis is the scored evaluation of a single answer. Scores are in [0, 10].
type Analysis struct {
	OverallScore      float64  `json:"overall_score"`
	RelevanceScore    float64  `json:"relevance_score"`
	CompletenessScore float64  `json:"completeness_score"`
	ClarityScore      float64  `json:"clarity_score"`
	Feedback          string   `json:"feedback"`
	Strengths         []string `json:"strengths"`
	ImprovementAreas  []string `json:"improvement_areas"`
}

// Score returns the analysis score for a breakdown dimension.
func (a Analysis) Score(d Dimension) float64 {
	switch d {
	case DimensionRelevance:
		return a.RelevanceScore
	case DimensionCompleteness:
		return a.CompletenessScore
	case DimensionClarity:
		return a.ClarityScore
	}
	return 0
}

// Clone returns a copy that shares no slices with a.
func (a Analysis) Clone() Analysis {
	a.Strengths = append([]string(nil), a.Strengths...)
	a.ImprovementAreas = append([]string(nil), a.ImprovementAreas...)
	return a
}

// FinalReport is the aggregated evaluation of a completed session.
type FinalReport struct {
	OverallScore        float64               `json:"overall_score"`
	DetailedFeedback    string                `json:"detailed_feedback"`
	AreasForImprovement []string              `json:"areas_for_improvement"`
	StrengthAnalysis    []string              `json:"strength_analysis"`
	CategoryBreakdown   map[Dimension]float64 `json:"category_breakdown"`
}

// Clone returns a deep copy of r.
func (r *FinalReport) Clone() *FinalReport {
	if r == nil {
		return nil
	}
	out := *r
	out.AreasForImprovement = append([]string(nil), r.AreasForImprovement...)
	out.StrengthAnalysis = append([]string(nil), r.StrengthAnalysis...)
	out.CategoryBreakdown = make(map[Dimension]float64, len(r.CategoryBreakdown))
	for k, v := range r.CategoryBreakdown {
		out.CategoryBreakdown[k] = v
	}
	return &out
}

// Turn is one answered question of a session.
type Turn struct {
	Question   string    `json:"question"`
	Response   string    `json:"response"`
	Analysis   Analysis  `json:"analysis"`
	AnsweredAt time.Time `json:"answered_at"`
}

// SessionSnapshot is a point-in-time copy of a session, safe to hand to
// readers outside the session store.
type SessionSnapshot struct {
	InterviewID     string        `json:"interview_id"`
	UserID          string        `json:"user_id"`
	Category        Category      `json:"category"`
	CurrentQuestion int           `json:"current_question"`
	TotalQuestions  int           `json:"total_questions"`
	Questions       []string      `json:"questions"`
	Responses       []string      `json:"responses"`
	Scores          []Analysis    `json:"scores"`
	Status          SessionStatus `json:"status"`
	StartTime       time.Time     `json:"start_time"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
	FinalResult     *FinalReport  `json:"final_result"`
}
