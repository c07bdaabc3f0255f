package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/uipatterns/pkg/patterns"
)

func componentNames() []string {
	names := make([]string, 0, len(patterns.CanonicalNames))
	for _, n := range patterns.CanonicalNames {
		names = append(names, string(n))
	}
	return names
}

func stateNames() []string {
	states := make([]string, 0, len(patterns.AllStates))
	for _, s := range patterns.AllStates {
		states = append(states, string(s))
	}
	return states
}

func listComponentPatternsTool() mcp.Tool {
	return mcp.NewTool(
		"list_component_patterns",
		mcp.WithDescription("List the component design patterns in the catalog, optionally filtered by keyword."),
		mcp.WithString("keyword",
			mcp.Description("Case-insensitive filter against pattern name and description"),
		),
	)
}

func getComponentPatternTool() mcp.Tool {
	return mcp.NewTool(
		"get_component_pattern",
		mcp.WithDescription("Get the full design pattern for one component: anatomy, variants, sizes, states, accessibility, and usage."),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name"),
			mcp.Enum(componentNames()...),
		),
	)
}

func getComponentStateStylesTool() mcp.Tool {
	return mcp.NewTool(
		"get_component_state_styles",
		mcp.WithDescription("Get the style properties a component takes on in one interaction state."),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name"),
			mcp.Enum(componentNames()...),
		),
		mcp.WithString("state",
			mcp.Required(),
			mcp.Description("Interaction state"),
			mcp.Enum(stateNames()...),
		),
	)
}

func getAccessibilityRequirementsTool() mcp.Tool {
	return mcp.NewTool(
		"get_accessibility_requirements",
		mcp.WithDescription("Get the keyboard, screen-reader, focus, and ARIA requirements for one component."),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name"),
			mcp.Enum(componentNames()...),
		),
	)
}

func getUsageGuidanceTool() mcp.Tool {
	return mcp.NewTool(
		"get_usage_guidance",
		mcp.WithDescription("Get when-to-use and when-not-to-use guidance for one component, with examples."),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name"),
			mcp.Enum(componentNames()...),
		),
	)
}

func searchPatternsTool() mcp.Tool {
	return mcp.NewTool(
		"search_patterns",
		mcp.WithDescription("Search patterns by name, description, anatomy part, or usage guidance."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search text"),
		),
	)
}

func getPatternDocTool() mcp.Tool {
	return mcp.NewTool(
		"get_pattern_doc",
		mcp.WithDescription("Get a rendered Markdown reference document for one component pattern."),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name"),
			mcp.Enum(componentNames()...),
		),
	)
}
