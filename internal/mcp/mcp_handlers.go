package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/shipshapehq/shipshape/core"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	analyzer *core.Analyzer
}

func (h *toolHandler) handleGetClusterAnalysis(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analysis, err := h.analyzer.GetClusterAnalysis(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cluster analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(analysis, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleClassifyUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := strings.TrimSpace(request.GetString("user_id", ""))
	if userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	c, err := h.analyzer.ClassifyUser(ctx, userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(c, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetUserProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := strings.TrimSpace(request.GetString("user_id", ""))
	if userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	m, err := h.analyzer.UserProgress(ctx, userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("progress calculation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(struct {
		UserID   string `json:"user_id"`
		Progress any    `json:"progress"`
	}{UserID: userID, Progress: m}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleClassifyHours(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hours := request.GetFloat("hours", -1)

	c, err := h.analyzer.ClassifyHours(ctx, hours)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hour banding failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(c, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
