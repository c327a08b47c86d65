//
// Date: 2025-12-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Type definitions and interfaces for the Spotify adapter and API.
//

package spotify

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/spotify-randomizer/randomize"
)

// Client defines the interface for Spotify API operations.
// This allows for mocking in tests.
type Client interface {
	CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error)
	CurrentUsersPlaylists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error)
	GetPlaylist(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.FullPlaylist, error)
	GetPlaylistItems(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistItemPage, error)
	ReplacePlaylistTracks(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) error
	AddTracksToPlaylist(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) (string, error)
	CreatePlaylistForUser(ctx context.Context, userID, playlistName, description string, public bool, collaborative bool) (*spotifyLib.FullPlaylist, error)
}

// ClientFunc builds a Client authorized by the caller's bearer token.
type ClientFunc func(ctx context.Context, token string) Client

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatePlaylistRequest is the JSON body accepted by the create playlist endpoint.
type CreatePlaylistRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Public      bool     `json:"public"`
	URIs        []string `json:"uris"`
}

// CreatePlaylistResponse is returned after a playlist is created.
type CreatePlaylistResponse struct {
	Message  string                   `json:"message"`
	Playlist *spotifyLib.FullPlaylist `json:"playlist"`
}

// RandomizeResponse is returned after a playlist is randomized.
type RandomizeResponse = randomize.Result
