// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shipshapehq/shipshape/core"
)

// NewMCPServer initializes and configures the Shipshape MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(analyzer *core.Analyzer) *server.MCPServer {
	s := server.NewMCPServer(
		"Shipshape Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		analyzer: analyzer,
	}

	// --- 1. Tool: get_cluster_analysis ---
	s.AddTool(mcp.NewTool("get_cluster_analysis",
		mcp.WithDescription("Cluster the whole population into whales, shippers and newbies with data-derived thresholds."),
	), h.handleGetClusterAnalysis)

	// --- 2. Tool: classify_user ---
	s.AddTool(mcp.NewTool("classify_user",
		mcp.WithDescription("Classify one user into a behavioral cluster with their metrics and coarse percentiles."),
		mcp.WithString("user_id", mcp.Description("The user to classify."), mcp.Required()),
	), h.handleClassifyUser)

	// --- 3. Tool: get_user_progress ---
	s.AddTool(mcp.NewTool("get_user_progress",
		mcp.WithDescription("Compute the capped progress score and clamshell currency for one user."),
		mcp.WithString("user_id", mcp.Description("The user to score."), mcp.Required()),
	), h.handleGetUserProgress)

	// --- 4. Tool: classify_hours ---
	s.AddTool(mcp.NewTool("classify_hours",
		mcp.WithDescription("Band a raw hour value against the population's per-project hour histogram."),
		mcp.WithNumber("hours", mcp.Description("The hour value to band. Must be non-negative."), mcp.Required()),
	), h.handleClassifyHours)

	return s
}

// StartMCPServer starts the Shipshape MCP server.
func StartMCPServer(_ context.Context, analyzer *core.Analyzer) error {
	s := NewMCPServer(analyzer)
	return server.ServeStdio(s)
}
