package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`                 _         _     `, "#7aa2f7"},
	{`  ___  ___  _ __| |___   _(_)___ `, "#8aa6f5"},
	{` / __|/ _ \| '__| __\ \ / / / __|`, "#a48cf0"},
	{` \__ \ (_) | |  | |_ \ V /| \__ \`, "#d58cff"},
	{` |___/\___/|_|   \__| \_/ |_|___/`, "#7affc6"},
}

// PrintBanner writes the sortvis banner with a blue to mint gradient.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version = strings.TrimSpace(version); version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Foreground(out.Color(ColorMuted)))
	}
	fmt.Fprintln(w)
}
