//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Types and the remote client port used by the playlist
// randomizer.
//

// Package randomize fetches a playlist's full track listing, shuffles it and
// writes the new order back within the Spotify Web API's per-request limits.
package randomize

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// Spotify Web API ceilings for one request.
const (
	MaxPageSize   = 100
	MaxWriteBatch = 100
)

// TrackURIPrefix prefixes every URI the tracks endpoints accept.
const TrackURIPrefix = "spotify:track:"

// SuccessMessage is returned with every completed randomization.
const SuccessMessage = "Playlist randomized and updated successfully"

// RemoteClient is the subset of playlist operations the randomizer needs.
// Implementations are bound to one caller's credential.
type RemoteClient interface {
	ListTracksPage(ctx context.Context, playlistID string, offset, limit int) (*Page, error)
	ReplaceTracks(ctx context.Context, playlistID string, uris []string) error
	AddTracks(ctx context.Context, playlistID string, uris []string) error
}

// ClientFactory builds a RemoteClient authorized by a bearer token.
type ClientFactory func(ctx context.Context, token string) RemoteClient

// Page is one slice of a playlist's items as returned by the remote service.
type Page struct {
	Items  []spotifyLib.PlaylistItem
	Total  int
	Offset int
}

// Track is the normalized form of a playlist entry.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URI        string   `json:"uri"`
	Artists    []string `json:"artists"`
	DurationMs int      `json:"duration_ms"`
}

// Result is the outcome of a randomization. Tracks is in the new order.
type Result struct {
	Message string  `json:"message"`
	Tracks  []Track `json:"tracks"`
	Skipped int     `json:"skipped"`
}

// URIs returns the track URIs in order.
func URIs(tracks []Track) []string {
	uris := make([]string, len(tracks))
	for i, t := range tracks {
		uris[i] = t.URI
	}
	return uris
}
