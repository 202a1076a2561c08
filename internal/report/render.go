package report

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iammorganparry/interview-coach/internal/models"
	"github.com/iammorganparry/interview-coach/internal/privacy"
)

var ErrSessionIncomplete = errors.New("session has no final report yet")

// Format selects the rendering of a session report.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat maps a query value onto a Format. Empty means Markdown.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unsupported report format %q", s)
}

// ContentType returns the MIME type of the rendering.
func (f Format) ContentType() string {
	if f == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "text/markdown; charset=utf-8"
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Render renders a completed session. Answers are passed through
// privacy.Redact; raw HTML in answers is dropped by the HTML renderer.
func Render(s models.SessionSnapshot, title string, f Format) ([]byte, error) {
	md, err := Markdown(s, title)
	if err != nil {
		return nil, err
	}
	if f != FormatHTML {
		return []byte(md), nil
	}

	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		html.EscapeString(title))
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.Bytes(), nil
}

// Markdown renders a completed session as a Markdown document.
func Markdown(s models.SessionSnapshot, title string) (string, error) {
	r := s.FinalResult
	if r == nil || s.Status != models.StatusCompleted {
		return "", ErrSessionIncomplete
	}

	titler := cases.Title(language.English)
	var b strings.Builder

	fmt.Fprintf(&b, "# Interview Report: %s\n\n", title)
	fmt.Fprintf(&b, "- **Interview ID:** %s\n", s.InterviewID)
	fmt.Fprintf(&b, "- **Candidate:** %s\n", s.UserID)
	fmt.Fprintf(&b, "- **Started:** %s\n", s.StartTime.UTC().Format(time.RFC3339))
	if s.CompletedAt != nil {
		fmt.Fprintf(&b, "- **Completed:** %s\n", s.CompletedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(&b, "- **Overall score:** %.1f / 10\n\n", r.OverallScore)

	fmt.Fprintf(&b, "## Summary\n\n%s\n\n", r.DetailedFeedback)

	b.WriteString("## Score breakdown\n\n| Dimension | Score |\n|---|---|\n")
	for _, d := range models.Dimensions {
		fmt.Fprintf(&b, "| %s | %.1f |\n", titler.String(string(d)), r.CategoryBreakdown[d])
	}
	b.WriteString("\n")

	writeList(&b, "Strengths", r.StrengthAnalysis)
	writeList(&b, "Areas for improvement", r.AreasForImprovement)

	b.WriteString("## Questions\n\n")
	for i, q := range s.Questions {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, q)
		if i >= len(s.Responses) || i >= len(s.Scores) {
			continue
		}
		b.WriteString(quote(privacy.Redact(s.Responses[i])))
		a := s.Scores[i]
		fmt.Fprintf(&b, "**Score:** %.1f / 10 (relevance %.1f, completeness %.1f, clarity %.1f)\n\n",
			a.OverallScore, a.RelevanceScore, a.CompletenessScore, a.ClarityScore)
		if a.Feedback != "" {
			fmt.Fprintf(&b, "%s\n\n", a.Feedback)
		}
	}

	return b.String(), nil
}

func writeList(b *strings.Builder, heading string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	if len(items) == 0 {
		b.WriteString("_None noted._\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func quote(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "> _(no answer)_\n\n"
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n") + "\n\n"
}
