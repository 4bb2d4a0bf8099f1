// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// modelNames is the enum offered to clients for the model argument.
var modelNames = []string{
	"first_touch", "last_touch", "last_non_direct", "linear",
	"time_decay", "position_based", "u_shaped", "w_shaped",
}

// NewMCPServer initializes and configures the Attribution MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Attribution Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_attribution ---
	s.AddTool(mcp.NewTool("get_attribution",
		mcp.WithDescription("Attribute conversion revenue to marketing channels with one attribution model."),
		mcp.WithString("model", mcp.Description("Attribution model. Defaults to 'linear'."), mcp.Enum(modelNames...)),
		mcp.WithNumber("limit", mcp.Description("Limit the number of channels returned.")),
	), h.handleGetAttribution)

	// --- 2. Tool: compare_models ---
	s.AddTool(mcp.NewTool("compare_models",
		mcp.WithDescription("Run all seven attribution models over the same journeys and return them side by side."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of channels per model.")),
	), h.handleCompareModels)

	// --- 3. Tool: attribution_variance ---
	s.AddTool(mcp.NewTool("attribution_variance",
		mcp.WithDescription("Measure how much each channel's attributed revenue varies across models."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of channels returned.")),
	), h.handleAttributionVariance)

	// --- 4. Tool: top_performers ---
	s.AddTool(mcp.NewTool("top_performers",
		mcp.WithDescription("List the five best and five worst channels by linear attributed revenue."),
	), h.handleTopPerformers)

	// --- 5. Tool: journey_stats ---
	s.AddTool(mcp.NewTool("journey_stats",
		mcp.WithDescription("Summarize the stored journeys: conversions, revenue, spend and overall ROAS."),
	), h.handleJourneyStats)

	// --- 6. Tool: get_journey ---
	s.AddTool(mcp.NewTool("get_journey",
		mcp.WithDescription("Fetch one customer journey with every touchpoint."),
		mcp.WithString("journey_id", mcp.Description("The journey identifier, e.g. J001."), mcp.Required()),
	), h.handleGetJourney)

	return s
}

// StartMCPServer starts the Attribution MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
