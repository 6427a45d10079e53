package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the blanket banner to w, coloured for the detected terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	// Warm gradient from the plasma side outwards.
	lines := []struct {
		text  string
		color string
	}{
		{" _     _             _        _   ", "#fde047"},
		{"| |__ | | __ _ _ __ | | _____| |_ ", "#fbbf24"},
		{"| '_ \\| |/ _` | '_ \\| |/ / _ \\ __|", "#f97316"},
		{"| |_) | | (_| | | | |   <  __/ |_ ", "#ef4444"},
		{"|_.__/|_|\\__,_|_| |_|_|\\_\\___|\\__|", "#b91c1c"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
