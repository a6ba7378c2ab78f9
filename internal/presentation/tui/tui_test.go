package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/teamtree/internal/presentation/tui"
	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *hierarchy.Tree {
	tree := hierarchy.NewWithRoot("A")
	tree.Insert("A", "B", domain.SideLeft)
	tree.Insert("A", "C", domain.SideRight)
	tree.Insert("B", "D", domain.SideLeft)
	return tree
}

func TestWriteTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tui.WriteTree(&buf, sampleTree()))

	want := strings.Join([]string{
		"- A",
		"   - B",
		"      - D",
		"   - C",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteTree_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tui.WriteTree(&buf, hierarchy.New()))
	assert.Equal(t, tui.NoStructure+"\n", buf.String())
}

func TestMarkdown(t *testing.T) {
	md := tui.Markdown("Team", sampleTree())
	assert.Equal(t, "# Team\n\n- **A**\n  - B\n    - D\n  - C\n", md)

	assert.Contains(t, tui.Markdown("", hierarchy.New()), "No team structure")
}

func TestMessage(t *testing.T) {
	tests := []struct {
		out  domain.Outcome
		want string
	}{
		{
			domain.Outcome{Kind: domain.OutcomeInserted, Manager: "A", Employee: "B", Side: domain.SideLeft},
			"✅ B added to LEFT of A.",
		},
		{
			domain.Outcome{Kind: domain.OutcomeSlotOccupied, Manager: "A", Employee: "C", Side: domain.SideRight},
			"⚠️ A already has a RIGHT report.",
		},
		{
			domain.Outcome{Kind: domain.OutcomeInvalidSide, Manager: "A", Employee: "C", Side: "up"},
			"❌ Side must be 'left' or 'right'.",
		},
		{
			domain.Outcome{Kind: domain.OutcomeManagerNotFound, Manager: "Z", Employee: "D", Side: domain.SideLeft},
			"❌ Manager 'Z' not found in the team.",
		},
		{
			domain.Outcome{Kind: domain.OutcomeEmptyTree, Manager: "A", Employee: "B", Side: domain.SideLeft},
			"⚠️ No team lead found. Add a root first.",
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.out.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tui.Message(tt.out))
		})
	}
}

func TestPrinter_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	tui.NewPrinter(&buf).Outcome(domain.Outcome{Kind: domain.OutcomeInserted, Manager: "A", Employee: "B", Side: domain.SideLeft})
	assert.Equal(t, "✅ B added to LEFT of A.\n", buf.String())
}

func TestRenderer(t *testing.T) {
	render, err := tui.NewRenderer()
	require.NoError(t, err)

	out, err := render(tui.Markdown("Team", sampleTree()))
	require.NoError(t, err)
	assert.Contains(t, out, "Team")
	assert.Contains(t, out, "D")
}
