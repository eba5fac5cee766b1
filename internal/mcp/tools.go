package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listLanguagesTool defines the list_languages MCP tool.
var listLanguagesTool = mcp.NewTool("list_languages",
	mcp.WithDescription("List the programming languages and language pairs that have comparison data."),
)

// getComparisonTool defines the get_comparison MCP tool.
var getComparisonTool = mcp.NewTool("get_comparison",
	mcp.WithDescription("Get the side-by-side comparison for moving from one programming language to another: syntax examples, common pitfalls, key differences, and framework equivalents."),
	mcp.WithString("source",
		mcp.Required(),
		mcp.Description("Language the developer is coming from (e.g. java)"),
	),
	mcp.WithString("target",
		mcp.Required(),
		mcp.Description("Language the developer is moving to (e.g. python)"),
	),
	mcp.WithString("section",
		mcp.Description("Limit the answer to one section"),
		mcp.Enum("syntax", "pitfalls", "differences", "frameworks"),
	),
)
