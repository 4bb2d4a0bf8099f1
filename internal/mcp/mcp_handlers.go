package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huangsam/attribution/core"
	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// configFor clones the base config and applies the optional limit argument.
func (h *toolHandler) configFor(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l != 0 {
		if l < 1 || l > contract.MaxResultLimit {
			return nil, fmt.Errorf("limit must be between 1 and %d", contract.MaxResultLimit)
		}
		cfg.ResultLimit = l
	}
	return cfg, nil
}

// jsonResult marshals data into a text result.
func jsonResult(data any) *mcp.CallToolResult {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleGetAttribution(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if m := request.GetString("model", ""); m != "" {
		model, err := contract.NormalizeModel(m)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
		}
		cfg.Model = model
	}

	results, _, err := core.GetAttributionResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("attribution failed: %v", err)), nil
	}
	return jsonResult(schema.EnrichResults(results)), nil
}

func (h *toolHandler) handleCompareModels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	comparisons, _, err := core.GetComparisonResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	return jsonResult(comparisons), nil
}

func (h *toolHandler) handleAttributionVariance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	records, _, err := core.GetVarianceResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("variance analysis failed: %v", err)), nil
	}
	return jsonResult(records), nil
}

func (h *toolHandler) handleTopPerformers(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	journeys, err := core.LoadJourneys(ctx, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load journeys: %v", err)), nil
	}
	performers, err := core.ComputeTopPerformers(journeys)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}
	return jsonResult(performers), nil
}

func (h *toolHandler) handleJourneyStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	journeys, err := core.LoadJourneys(ctx, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load journeys: %v", err)), nil
	}
	return jsonResult(core.ComputeStats(journeys)), nil
}

func (h *toolHandler) handleGetJourney(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	journeyID := request.GetString("journey_id", "")
	if journeyID == "" {
		return mcp.NewToolResultError("journey_id is required"), nil
	}
	if h.mgr == nil || h.mgr.GetJourneyStore() == nil {
		return mcp.NewToolResultError("journey store is not initialized"), nil
	}

	journey, err := h.mgr.GetJourneyStore().GetJourney(ctx, journeyID)
	if errors.Is(err, contract.ErrJourneyNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("journey %s not found", journeyID)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get journey: %v", err)), nil
	}
	return jsonResult(journey), nil
}
