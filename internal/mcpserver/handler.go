package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sirkon/symsolve/internal/config"
	"github.com/sirkon/symsolve/internal/session"
)

// Handler turns tool calls into sessions and queries.
type Handler struct {
	cfg *config.Config
	log *slog.Logger
}

func NewHandler(cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		cfg: cfg,
		log: log,
	}
}

// SolveSymbol serves the solve-symbol tool.
func (h *Handler) SolveSymbol(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, errResult := h.session(req)
	if errResult != nil {
		return errResult, nil
	}

	offset, err := req.RequireInt("offset")
	if err != nil {
		return mcp.NewToolResultError("offset is required"), nil
	}

	res, err := s.Resolve(offset)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("resolve: %v", err)), nil
	}

	var out bytes.Buffer
	if err := res.Write(&out, h.cfg.Output); err != nil {
		return nil, fmt.Errorf("render resolution: %w", err)
	}

	return mcp.NewToolResultText(out.String()), nil
}

// CheckTree serves the check-tree tool.
func (h *Handler) CheckTree(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, errResult := h.session(req)
	if errResult != nil {
		return errResult, nil
	}

	rep, err := s.Check()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check: %v", err)), nil
	}

	var out bytes.Buffer
	if h.cfg.Output == config.OutputYAML {
		err = rep.WriteYAML(&out)
	} else {
		err = rep.PrintSummary(&out)
	}
	if err != nil {
		return nil, fmt.Errorf("render reports: %w", err)
	}
	if out.Len() == 0 {
		return mcp.NewToolResultText("no issues found"), nil
	}

	return mcp.NewToolResultText(out.String()), nil
}

// session builds a session from the tool arguments. Bad input is a tool error
// result, not a protocol error.
func (h *Handler) session(req mcp.CallToolRequest) (*session.Session, *mcp.CallToolResult) {
	tree, err := req.RequireString("tree")
	if err != nil {
		return nil, mcp.NewToolResultError("tree is required")
	}
	types := req.GetString("types", "")

	s, err := session.New(h.cfg, []byte(tree), []byte(types), h.log)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("load input: %v", err))
	}

	return s, nil
}
