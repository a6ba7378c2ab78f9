package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/teamtree/pkg/hierarchy"
	"golang.org/x/term"
)

// Indent is the per-level indentation of the plain text rendering.
const Indent = "   "

// NoStructure is printed in place of an empty chart.
const NoStructure = "⚠️ No team structure to display."

// WriteTree prints the hierarchy one employee per line, indented by depth.
func WriteTree(w io.Writer, tree *hierarchy.Tree) error {
	if tree.Empty() {
		_, err := fmt.Fprintln(w, NoStructure)
		return err
	}
	for depth, name := range tree.Render() {
		if _, err := fmt.Fprintf(w, "%s- %s\n", strings.Repeat(Indent, depth), name); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders the hierarchy as a nested markdown list under a heading.
func Markdown(title string, tree *hierarchy.Tree) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString("# " + title + "\n\n")
	}
	if tree.Empty() {
		sb.WriteString("_No team structure to display._\n")
		return sb.String()
	}
	for depth, name := range tree.Render() {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("- ")
		if depth == 0 {
			sb.WriteString("**" + name + "**")
		} else {
			sb.WriteString(name)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
