// Package mcp exposes the interview API as MCP tools over stdio. Every tool
// call is forwarded to a running interview server.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server implements an MCP stdio server that delegates to the HTTP interview server.
type Server struct {
	serverURL string
	client    *http.Client
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server with all tools registered.
func NewServer(serverURL, version string) *Server {
	s := &Server{
		serverURL: strings.TrimRight(serverURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		mcp: server.NewMCPServer("interview-coach", version, server.WithToolCapabilities(false)),
	}
	s.registerTools()
	return s
}

// Run serves MCP on stdin/stdout. Blocks until stdin is closed.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) httpGet(ctx context.Context, path string) *mcpgo.CallToolResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.serverURL+path, nil)
	if err != nil {
		return mcpgo.NewToolResultError(fmt.Sprintf("request error: %s", err))
	}
	return s.do(req)
}

func (s *Server) httpPost(ctx context.Context, path string, body any) *mcpgo.CallToolResult {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return mcpgo.NewToolResultError(fmt.Sprintf("marshal error: %s", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.serverURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return mcpgo.NewToolResultError(fmt.Sprintf("request error: %s", err))
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

// do returns the response body as tool text; HTTP errors become tool errors.
func (s *Server) do(req *http.Request) *mcpgo.CallToolResult {
	resp, err := s.client.Do(req)
	if err != nil {
		return mcpgo.NewToolResultError(fmt.Sprintf("HTTP error: %s", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return mcpgo.NewToolResultError(fmt.Sprintf("read error: %s", err))
	}

	if resp.StatusCode >= 400 {
		return mcpgo.NewToolResultError(strings.TrimSpace(string(respBody)))
	}
	return mcpgo.NewToolResultText(strings.TrimSpace(string(respBody)))
}

func pathEscape(id string) string {
	return url.PathEscape(id)
}
