//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Client wrapper recording a metric for every Spotify call.
//

package spotify

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/spotify-randomizer/metrics"
)

// instrumentedClient decorates a Client with per-call metrics.
type instrumentedClient struct {
	next Client
}

// Instrument wraps c so that each call is counted in metrics.RemoteCallsTotal.
func Instrument(c Client) Client {
	return &instrumentedClient{next: c}
}

// CurrentUser returns the current user.
func (c *instrumentedClient) CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error) {
	user, err := c.next.CurrentUser(ctx)
	metrics.ObserveRemoteCall("current_user", err)
	return user, err
}

// CurrentUsersPlaylists returns a page of the user's playlists.
func (c *instrumentedClient) CurrentUsersPlaylists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error) {
	page, err := c.next.CurrentUsersPlaylists(ctx, opts...)
	metrics.ObserveRemoteCall("list_playlists", err)
	return page, err
}

// GetPlaylist returns a playlist by ID.
func (c *instrumentedClient) GetPlaylist(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.FullPlaylist, error) {
	playlist, err := c.next.GetPlaylist(ctx, playlistID, opts...)
	metrics.ObserveRemoteCall("get_playlist", err)
	return playlist, err
}

// GetPlaylistItems returns a page of playlist items.
func (c *instrumentedClient) GetPlaylistItems(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistItemPage, error) {
	page, err := c.next.GetPlaylistItems(ctx, playlistID, opts...)
	metrics.ObserveRemoteCall("list_tracks", err)
	return page, err
}

// ReplacePlaylistTracks replaces the tracks of a playlist.
func (c *instrumentedClient) ReplacePlaylistTracks(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) error {
	err := c.next.ReplacePlaylistTracks(ctx, playlistID, trackIDs...)
	metrics.ObserveRemoteCall("replace_tracks", err)
	return err
}

// AddTracksToPlaylist appends tracks to a playlist.
func (c *instrumentedClient) AddTracksToPlaylist(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) (string, error) {
	snapshot, err := c.next.AddTracksToPlaylist(ctx, playlistID, trackIDs...)
	metrics.ObserveRemoteCall("add_tracks", err)
	return snapshot, err
}

// CreatePlaylistForUser creates a playlist.
func (c *instrumentedClient) CreatePlaylistForUser(ctx context.Context, userID, playlistName, description string, public bool, collaborative bool) (*spotifyLib.FullPlaylist, error) {
	playlist, err := c.next.CreatePlaylistForUser(ctx, userID, playlistName, description, public, collaborative)
	metrics.ObserveRemoteCall("create_playlist", err)
	return playlist, err
}
