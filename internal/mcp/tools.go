package mcp

import (
	"context"
	"net/url"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/iammorganparry/interview-coach/internal/models"
)

func categoryIDs() []string {
	ids := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		ids = append(ids, string(c))
	}
	return ids
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcpgo.NewTool("list_categories",
		mcpgo.WithDescription("List the interview categories with their display names."),
	), s.listCategories)

	s.mcp.AddTool(mcpgo.NewTool("start_interview",
		mcpgo.WithDescription("Start a mock interview. Returns the interview id and the first question."),
		mcpgo.WithString("category",
			mcpgo.Required(),
			mcpgo.Description("Interview category"),
			mcpgo.Enum(categoryIDs()...),
		),
		mcpgo.WithString("user_id",
			mcpgo.Description("Candidate identifier (defaults to default_user)"),
		),
	), s.startInterview)

	s.mcp.AddTool(mcpgo.NewTool("submit_response",
		mcpgo.WithDescription("Answer the current question. Returns the analysis and either the next question or the final report."),
		mcpgo.WithString("interview_id", mcpgo.Required(), mcpgo.Description("Interview id from start_interview")),
		mcpgo.WithString("response_text", mcpgo.Required(), mcpgo.Description("The candidate's answer")),
	), s.submitResponse)

	s.mcp.AddTool(mcpgo.NewTool("get_interview",
		mcpgo.WithDescription("Show the full state of an interview: questions, answers, scores and final result."),
		mcpgo.WithString("interview_id", mcpgo.Required(), mcpgo.Description("Interview id")),
	), s.getInterview)

	s.mcp.AddTool(mcpgo.NewTool("get_report",
		mcpgo.WithDescription("Render the report of a completed interview."),
		mcpgo.WithString("interview_id", mcpgo.Required(), mcpgo.Description("Interview id")),
		mcpgo.WithString("format",
			mcpgo.Description("Report format"),
			mcpgo.Enum("markdown", "html"),
		),
	), s.getReport)
}

func (s *Server) listCategories(ctx context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.httpGet(ctx, "/categories"), nil
}

func (s *Server) startInterview(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	category, err := req.RequireString("category")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	return s.httpPost(ctx, "/start-interview", models.StartInterviewRequest{
		Category: category,
		UserID:   req.GetString("user_id", ""),
	}), nil
}

func (s *Server) submitResponse(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	id, err := req.RequireString("interview_id")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	text, err := req.RequireString("response_text")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	return s.httpPost(ctx, "/submit-response", models.SubmitResponseRequest{
		InterviewID:  id,
		ResponseText: text,
	}), nil
}

func (s *Server) getInterview(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	id, err := req.RequireString("interview_id")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	return s.httpGet(ctx, "/debug-interview/"+pathEscape(id)), nil
}

func (s *Server) getReport(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	id, err := req.RequireString("interview_id")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	q := url.Values{"format": {req.GetString("format", "markdown")}}
	return s.httpGet(ctx, "/interviews/"+pathEscape(id)+"/report?"+q.Encode()), nil
}
