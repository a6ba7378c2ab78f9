package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/teamtree"
	"github.com/aretw0/teamtree/internal/presentation/tui"
	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the chart service and exposes it as an MCP Server.
type Server struct {
	charts    ports.Charts
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(charts ports.Charts) *Server {
	s := &Server{
		charts:    charts,
		mcpServer: server.NewMCPServer("teamtree-mcp", strings.TrimSpace(teamtree.Version)),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying server, mainly for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_charts",
		mcp.WithDescription("List the IDs of all stored team charts."),
	), s.handleList)

	s.mcpServer.AddTool(mcp.NewTool("create_chart",
		mcp.WithDescription("Create a team chart with the given team lead as root."),
		mcp.WithString("chart", mcp.Required(), mcp.Description("Chart ID")),
		mcp.WithString("root", mcp.Required(), mcp.Description("Name of the team lead")),
	), s.handleCreate)

	s.mcpServer.AddTool(mcp.NewTool("add_report",
		mcp.WithDescription("Attach an employee as the left or right report of the first manager with the given name."),
		mcp.WithString("chart", mcp.Required(), mcp.Description("Chart ID")),
		mcp.WithString("manager", mcp.Required(), mcp.Description("Manager name (exact match)")),
		mcp.WithString("employee", mcp.Required(), mcp.Description("New employee name")),
		mcp.WithString("side", mcp.Required(), mcp.Description("Report slot"), mcp.Enum("left", "right")),
	), s.handleAddReport)

	s.mcpServer.AddTool(mcp.NewTool("render_chart",
		mcp.WithDescription("Render the chart as an indented list, one employee per line."),
		mcp.WithString("chart", mcp.Required(), mcp.Description("Chart ID")),
	), s.handleRender)
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := s.charts.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	if ids == nil {
		ids = []string{}
	}
	data, _ := json.Marshal(ids)
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleCreate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("chart")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	root, err := request.RequireString("root")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := s.charts.Create(ctx, id, root); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("create failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Chart %q created with %s as team lead.", id, root)), nil
}

func (s *Server) handleAddReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := make(map[string]string, 4)
	for _, key := range []string{"chart", "manager", "employee", "side"} {
		v, err := request.RequireString(key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		args[key] = v
	}

	out, err := s.charts.Insert(ctx, args["chart"], args["manager"], args["employee"], domain.ParseSide(args["side"]))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("insert failed: %v", err)), nil
	}
	if !out.Inserted() {
		return mcp.NewToolResultError(tui.Message(out)), nil
	}
	return mcp.NewToolResultText(tui.Message(out)), nil
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("chart")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tree, err := s.charts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrChartNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("chart %q not found", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	var sb strings.Builder
	if err := tui.WriteTree(&sb, tree); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(sb.String()), nil
}
