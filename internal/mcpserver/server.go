// Package mcpserver exposes name resolution as MCP tools.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolSolveSymbol = "solve-symbol"
	ToolCheckTree   = "check-tree"
)

// New creates the MCP server with both tools registered. Protocol handling
// stays here; the work is done by the handler.
func New(handler *Handler, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"symsolve",
		version,
		server.WithToolCapabilities(false),
	)

	solveTool := mcp.NewTool(ToolSolveSymbol,
		mcp.WithDescription("Resolve the name used at a source offset of a Java-like syntax tree to its declaration."),
		mcp.WithString("tree",
			mcp.Required(),
			mcp.Description("Syntax tree in YAML form"),
		),
		mcp.WithNumber("offset",
			mcp.Required(),
			mcp.Description("Source offset covered by the name use"),
		),
		mcp.WithString("types",
			mcp.Description("External type descriptors in YAML form"),
		),
	)

	checkTool := mcp.NewTool(ToolCheckTree,
		mcp.WithDescription("Report unresolved names and shadowing local declarations of a Java-like syntax tree."),
		mcp.WithString("tree",
			mcp.Required(),
			mcp.Description("Syntax tree in YAML form"),
		),
		mcp.WithString("types",
			mcp.Description("External type descriptors in YAML form"),
		),
	)

	s.AddTool(solveTool, handler.SolveSymbol)
	s.AddTool(checkTool, handler.CheckTree)

	return s
}

// ServeStdio serves s over standard input and output until the input is closed.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
