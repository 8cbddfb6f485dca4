package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls and formats the results.
// Failures become IsError results, never protocol errors.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

type UsernameInput struct {
	Username string `json:"username" jsonschema:"Username of the athlete"`
}

type HistoryInput struct {
	Username string `json:"username" jsonschema:"Username of the athlete"`
	Limit    *int   `json:"limit,omitempty" jsonschema:"Return only the newest N sets, all sets when omitted"`
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

func (h *Handler) ListExerciseNamesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		names, err := h.service.ListNames(ctx)
		if err != nil {
			return errorResult("Error listing exercise names: " + err.Error()), nil, nil
		}
		return jsonResult(names), nil, nil
	}
}

func (h *Handler) GetExerciseHistoryTool() func(context.Context, *mcp.CallToolRequest, HistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in HistoryInput) (*mcp.CallToolResult, any, error) {
		if in.Limit != nil && *in.Limit < 0 {
			return errorResult("Invalid limit: must not be negative"), nil, nil
		}
		history, err := h.service.History(ctx, in.Username, in.Limit)
		if err != nil {
			return errorResult("Error fetching exercise history: " + err.Error()), nil, nil
		}
		return jsonResult(history), nil, nil
	}
}

func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, UsernameInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput) (*mcp.CallToolResult, any, error) {
		prs, err := h.service.PersonalRecords(ctx, in.Username)
		if err != nil {
			return errorResult("Error fetching personal records: " + err.Error()), nil, nil
		}
		return jsonResult(prs), nil, nil
	}
}

func (h *Handler) GetWeightedGraphTool() func(context.Context, *mcp.CallToolRequest, UsernameInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput) (*mcp.CallToolResult, any, error) {
		graph, err := h.service.WeightedGraph(ctx, in.Username)
		if err != nil {
			return errorResult("Error fetching weighted graph: " + err.Error()), nil, nil
		}
		return jsonResult(graph), nil, nil
	}
}

func (h *Handler) GetBodyStatsTool() func(context.Context, *mcp.CallToolRequest, UsernameInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput) (*mcp.CallToolResult, any, error) {
		latest, err := h.service.BodyStats(ctx, in.Username)
		if err != nil {
			return errorResult("Error fetching body stats: " + err.Error()), nil, nil
		}
		return jsonResult(latest), nil, nil
	}
}
