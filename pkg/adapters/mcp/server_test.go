package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/teamtree/pkg/adapters/memory"
	"github.com/aretw0/teamtree/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text, res.IsError
}

func TestServer_Tools(t *testing.T) {
	s := NewServer(registry.New(memory.NewStore()))

	text, isErr := call(t, s.handleAddReport, map[string]any{"chart": "team", "manager": "A", "employee": "B", "side": "left"})
	assert.True(t, isErr)
	assert.Equal(t, "⚠️ No team lead found. Add a root first.", text)

	_, isErr = call(t, s.handleCreate, map[string]any{"chart": "team", "root": "A"})
	assert.False(t, isErr)

	text, isErr = call(t, s.handleAddReport, map[string]any{"chart": "team", "manager": "A", "employee": "B", "side": "left"})
	assert.False(t, isErr)
	assert.Equal(t, "✅ B added to LEFT of A.", text)

	text, isErr = call(t, s.handleAddReport, map[string]any{"chart": "team", "manager": "A", "employee": "C", "side": "left"})
	assert.True(t, isErr)
	assert.Equal(t, "⚠️ A already has a LEFT report.", text)

	text, isErr = call(t, s.handleRender, map[string]any{"chart": "team"})
	assert.False(t, isErr)
	assert.Equal(t, "- A\n   - B\n", text)

	text, _ = call(t, s.handleList, nil)
	assert.Equal(t, `["team"]`, text)
}

func TestServer_MissingArguments(t *testing.T) {
	s := NewServer(registry.New(memory.NewStore()))

	_, isErr := call(t, s.handleCreate, map[string]any{"chart": "team"})
	assert.True(t, isErr)

	text, isErr := call(t, s.handleRender, map[string]any{"chart": "ghost"})
	assert.True(t, isErr)
	assert.Contains(t, text, "not found")
}
