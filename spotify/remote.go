//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Adapter exposing a Spotify client as the randomizer's remote
// playlist client.
//

package spotify

import (
	"context"
	"fmt"
	"strings"

	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/spotify-randomizer/randomize"
)

// Remote implements randomize.RemoteClient on top of a Client.
type Remote struct {
	client Client
}

// compile-time interface assertion
var _ randomize.RemoteClient = (*Remote)(nil)

// NewRemote wraps client.
func NewRemote(client Client) *Remote {
	return &Remote{client: client}
}

// ListTracksPage returns one page of playlist items.
func (r *Remote) ListTracksPage(ctx context.Context, playlistID string, offset, limit int) (*randomize.Page, error) {
	page, err := r.client.GetPlaylistItems(ctx, spotifyLib.ID(playlistID), spotifyLib.Limit(limit), spotifyLib.Offset(offset))
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	return &randomize.Page{
		Items:  page.Items,
		Total:  int(page.Total),
		Offset: int(page.Offset),
	}, nil
}

// ReplaceTracks overwrites the playlist with uris. An empty list clears it.
func (r *Remote) ReplaceTracks(ctx context.Context, playlistID string, uris []string) error {
	ids, err := TrackIDs(uris)
	if err != nil {
		return err
	}

	if err := r.client.ReplacePlaylistTracks(ctx, spotifyLib.ID(playlistID), ids...); err != nil {
		return fmt.Errorf("failed to replace playlist tracks: %w", err)
	}
	return nil
}

// AddTracks appends uris to the playlist.
func (r *Remote) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	ids, err := TrackIDs(uris)
	if err != nil {
		return err
	}

	if _, err := r.client.AddTracksToPlaylist(ctx, spotifyLib.ID(playlistID), ids...); err != nil {
		return fmt.Errorf("failed to add tracks to playlist: %w", err)
	}
	return nil
}

// TrackIDs converts spotify:track: URIs to track IDs.
func TrackIDs(uris []string) ([]spotifyLib.ID, error) {
	ids := make([]spotifyLib.ID, 0, len(uris))
	for _, uri := range uris {
		id, ok := strings.CutPrefix(uri, randomize.TrackURIPrefix)
		if !ok || id == "" {
			return nil, fmt.Errorf("not a spotify track uri: %q", uri)
		}
		ids = append(ids, spotifyLib.ID(id))
	}
	return ids, nil
}
