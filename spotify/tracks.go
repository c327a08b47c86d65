//
// Date: 2025-12-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Track listing display functions.
//

package spotify

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/cloudmanic/spotify-randomizer/randomize"
)

// PrintTracksTable displays a randomized track order in a formatted table.
func PrintTracksTable(w io.Writer, result *randomize.Result) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	cyan.Fprintln(w, "🔀 New Playlist Order")
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "Artists", "Length", "Track ID"})

	for i, track := range result.Tracks {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(track.Name),
			strings.Join(track.Artists, ", "),
			formatDuration(track.DurationMs),
			color.HiBlackString(track.ID),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Fprintln(w)
	green.Fprintf(w, "%s (%d tracks)\n", result.Message, len(result.Tracks))
	if result.Skipped > 0 {
		color.New(color.FgYellow).Fprintf(w, "Skipped %d unavailable entries\n", result.Skipped)
	}
}

// formatDuration renders milliseconds as m:ss.
func formatDuration(ms int) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
