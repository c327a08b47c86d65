//
// Date: 2025-12-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Playlist resolution, listing, creation and display functions.
//

package spotify

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/spotify-randomizer/randomize"
)

const (
	playlistPageSize = 50

	DefaultPlaylistName        = "My Generated Playlist"
	DefaultPlaylistDescription = "Generated via API"
)

// ExtractPlaylistID extracts the playlist ID from a Spotify URL or URI, or
// returns the input as-is if it's already just an ID.
func ExtractPlaylistID(input string) string {
	input = strings.TrimSpace(input)

	// If it's a full URL like https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=xxx
	if strings.Contains(input, "spotify.com/playlist/") {
		parts := strings.Split(input, "/playlist/")
		if len(parts) > 1 {
			// Remove any query parameters
			return strings.Split(parts[1], "?")[0]
		}
	}

	if id, ok := strings.CutPrefix(input, "spotify:playlist:"); ok {
		return id
	}

	// Already just an ID
	return input
}

// ResolvePlaylistID resolves a playlist input (URL, URI, name, or ID) to a
// playlist ID. Names are matched case-insensitively against the user's
// playlists; anything else is assumed to be an ID.
func ResolvePlaylistID(ctx context.Context, client Client, input string) (string, error) {
	if strings.Contains(input, "spotify.com/playlist/") || strings.HasPrefix(input, "spotify:playlist:") {
		return ExtractPlaylistID(input), nil
	}

	// Check if it looks like a Spotify ID (22 alphanumeric characters)
	if len(input) == 22 && !strings.Contains(input, " ") {
		return input, nil
	}

	playlists, err := AllPlaylists(ctx, client)
	if err != nil {
		return "", err
	}

	for _, playlist := range playlists {
		if strings.EqualFold(playlist.Name, input) || string(playlist.ID) == input {
			return string(playlist.ID), nil
		}
	}

	// Assume it's an ID
	return input, nil
}

// AllPlaylists returns every playlist in the current user's library.
func AllPlaylists(ctx context.Context, client Client) ([]spotifyLib.SimplePlaylist, error) {
	var all []spotifyLib.SimplePlaylist
	offset := 0

	for {
		page, err := client.CurrentUsersPlaylists(ctx, spotifyLib.Limit(playlistPageSize), spotifyLib.Offset(offset))
		if err != nil {
			return nil, fmt.Errorf("failed to get playlists: %w", err)
		}

		if len(page.Playlists) == 0 {
			break
		}
		all = append(all, page.Playlists...)

		offset += playlistPageSize
		if offset >= int(page.Total) {
			break
		}
	}

	return all, nil
}

// OwnedPlaylists returns the playlists owned by the current user, sorted by
// name ignoring case and surrounding whitespace.
func OwnedPlaylists(ctx context.Context, client Client) ([]spotifyLib.SimplePlaylist, error) {
	user, err := client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	all, err := AllPlaylists(ctx, client)
	if err != nil {
		return nil, err
	}

	owned := make([]spotifyLib.SimplePlaylist, 0, len(all))
	for _, playlist := range all {
		if playlist.Owner.ID == user.ID {
			owned = append(owned, playlist)
		}
	}

	sort.SliceStable(owned, func(i, j int) bool {
		return playlistSortKey(owned[i]) < playlistSortKey(owned[j])
	})

	return owned, nil
}

func playlistSortKey(p spotifyLib.SimplePlaylist) string {
	return strings.ToLower(strings.TrimSpace(p.Name))
}

// CreatePlaylist creates a playlist for the current user and fills it with
// req.URIs, batchSize tracks per call.
func CreatePlaylist(ctx context.Context, client Client, req CreatePlaylistRequest, batchSize int) (*spotifyLib.FullPlaylist, error) {
	if req.Name == "" {
		req.Name = DefaultPlaylistName
	}
	if req.Description == "" {
		req.Description = DefaultPlaylistDescription
	}

	if _, err := TrackIDs(req.URIs); err != nil {
		return nil, err
	}

	user, err := client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	playlist, err := client.CreatePlaylistForUser(ctx, user.ID, req.Name, req.Description, req.Public, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	if err := randomize.AppendBatches(ctx, NewRemote(client), string(playlist.ID), req.URIs, batchSize); err != nil {
		return playlist, err
	}

	return playlist, nil
}

// PrintPlaylistsTable displays the user's Spotify playlists in a formatted table.
func PrintPlaylistsTable(w io.Writer, playlists []spotifyLib.SimplePlaylist) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	cyan.Fprintln(w, "🎵 Your Spotify Playlists")
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "Tracks", "Owner", "Playlist ID"})

	for i, playlist := range playlists {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(playlist.Name),
			playlist.Tracks.Total,
			playlist.Owner.DisplayName,
			color.HiBlackString(string(playlist.ID)),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Fprintln(w)
	green.Fprintf(w, "Total playlists: %d\n", len(playlists))
}
