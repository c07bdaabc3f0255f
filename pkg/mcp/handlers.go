package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/uipatterns/pkg/patterns"
)

// componentArg extracts and checks the required "component" argument.
func componentArg(req mcp.CallToolRequest) (patterns.ComponentName, error) {
	args := req.GetArguments()
	name, ok := args["component"].(string)
	if !ok || name == "" {
		return "", fmt.Errorf("component is required")
	}
	return patterns.ComponentName(name), nil
}

// jsonResult marshals v as indented JSON into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleListComponentPatterns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	keyword, _ := args["keyword"].(string)

	type summary struct {
		Name        patterns.ComponentName `json:"name"`
		Description string                 `json:"description"`
		Parts       int                    `json:"parts"`
		Variants    int                    `json:"variants"`
	}

	list := s.query().ListPatterns(keyword)
	out := make([]summary, 0, len(list))
	for _, p := range list {
		out = append(out, summary{
			Name:        p.Name,
			Description: p.Description,
			Parts:       len(p.Anatomy.Structure),
			Variants:    len(p.Variants),
		})
	}
	return jsonResult(out)
}

func (s *Server) handleGetComponentPattern(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	component, err := componentArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.query().GetComponentPattern(component)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(p)
}

func (s *Server) handleGetComponentStateStyles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	component, err := componentArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	state, ok := args["state"].(string)
	if !ok || state == "" {
		return mcp.NewToolResultError("state is required"), nil
	}

	ss, err := s.query().GetStateStyle(component, patterns.ComponentState(state))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(ss)
}

func (s *Server) handleGetAccessibilityRequirements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	component, err := componentArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a11y, err := s.query().GetAccessibility(component)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(a11y)
}

func (s *Server) handleGetUsageGuidance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	component, err := componentArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	usage, err := s.query().GetUsage(component)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(usage)
}

func (s *Server) handleSearchPatterns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	type match struct {
		Name        patterns.ComponentName `json:"name"`
		Description string                 `json:"description"`
		MatchReason string                 `json:"match_reason"`
	}

	results := s.query().SearchPatterns(query)
	out := make([]match, 0, len(results))
	for _, r := range results {
		out = append(out, match{
			Name:        r.Pattern.Name,
			Description: r.Pattern.Description,
			MatchReason: r.MatchReason,
		})
	}
	return jsonResult(out)
}

func (s *Server) handleGetPatternDoc(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	component, err := componentArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	docs, err := s.docsFor(s.query())
	if err != nil {
		return nil, err
	}

	doc, err := docs.Render(component)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(doc), nil
}
