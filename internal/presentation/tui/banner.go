package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the TeamTree banner to w, colored when w is a terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"  _____                    _____              ", "#34d399"},
		{" |_   _|__  __ _ _ __ ___ |_   _| __ ___  ___ ", "#10b981"},
		{"   | |/ _ \\/ _` | '_ ` _ \\  | || '__/ _ \\/ _ \\", "#059669"},
		{"   | |  __/ (_| | | | | | | | || | |  __/  __/", "#047857"},
		{"   |_|\\___|\\__,_|_| |_| |_| |_||_|  \\___|\\___|", "#065f46"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
