//
// Date: 2025-12-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Mock Spotify client and fixtures shared by the package tests.
//

package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// setPaging sets the paging fields of a zmb3 page via JSON, since the
// embedded basePage struct is unexported.
func setPaging(page any, total, offset int) {
	jsonStr := fmt.Sprintf(`{"total":%d,"offset":%d}`, total, offset)
	if err := json.Unmarshal([]byte(jsonStr), page); err != nil {
		panic(err)
	}
}

// newPlaylistItem creates a playlist item for track number i.
func newPlaylistItem(i int) spotifyLib.PlaylistItem {
	id := fmt.Sprintf("track%04d", i)
	return spotifyLib.PlaylistItem{
		Track: spotifyLib.PlaylistItemTrack{
			Track: &spotifyLib.FullTrack{
				SimpleTrack: spotifyLib.SimpleTrack{
					ID:      spotifyLib.ID(id),
					Name:    fmt.Sprintf("Song %d", i),
					URI:     spotifyLib.URI("spotify:track:" + id),
					Artists: []spotifyLib.SimpleArtist{{Name: "Test Artist"}},
				},
			},
		},
	}
}

// MockSpotifyClient is a mock implementation of the Client interface for testing.
// Without overrides it serves Items as the playlist and records writes in Stored.
type MockSpotifyClient struct {
	// CurrentUser mock
	CurrentUserFunc func(ctx context.Context) (*spotifyLib.PrivateUser, error)

	// CurrentUsersPlaylists mock
	CurrentUsersPlaylistsFunc func(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error)

	// GetPlaylist mock
	GetPlaylistFunc func(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.FullPlaylist, error)

	// GetPlaylistItems mock
	GetPlaylistItemsFunc func(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistItemPage, error)

	// ReplacePlaylistTracks mock
	ReplacePlaylistTracksFunc func(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) error

	// AddTracksToPlaylist mock
	AddTracksToPlaylistFunc func(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) (string, error)

	// CreatePlaylistForUser mock
	CreatePlaylistForUserFunc func(ctx context.Context, userID, playlistName, description string, public bool, collaborative bool) (*spotifyLib.FullPlaylist, error)

	mu       sync.Mutex
	Items    []spotifyLib.PlaylistItem
	Stored   []spotifyLib.ID
	AddCalls [][]spotifyLib.ID
	Requests int
}

func (m *MockSpotifyClient) count() {
	m.mu.Lock()
	m.Requests++
	m.mu.Unlock()
}

// CurrentUser returns the current user.
func (m *MockSpotifyClient) CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error) {
	m.count()
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &spotifyLib.PrivateUser{
		User: spotifyLib.User{
			DisplayName: "Test User",
			ID:          "testuser123",
		},
	}, nil
}

// CurrentUsersPlaylists returns the user's playlists.
func (m *MockSpotifyClient) CurrentUsersPlaylists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error) {
	m.count()
	if m.CurrentUsersPlaylistsFunc != nil {
		return m.CurrentUsersPlaylistsFunc(ctx, opts...)
	}
	page := &spotifyLib.SimplePlaylistPage{
		Playlists: []spotifyLib.SimplePlaylist{
			{
				ID:    "playlist123",
				Name:  "Test Playlist",
				Owner: spotifyLib.User{ID: "testuser123"},
			},
			{
				ID:    "playlist456",
				Name:  "Another Playlist",
				Owner: spotifyLib.User{ID: "testuser123"},
			},
		},
	}
	setPaging(page, 2, 0)
	return page, nil
}

// GetPlaylist returns a playlist by ID.
func (m *MockSpotifyClient) GetPlaylist(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.FullPlaylist, error) {
	m.count()
	if m.GetPlaylistFunc != nil {
		return m.GetPlaylistFunc(ctx, playlistID, opts...)
	}
	playlist := &spotifyLib.FullPlaylist{}
	playlist.ID = playlistID
	playlist.Name = "Test Playlist"
	return playlist, nil
}

// GetPlaylistItems returns a page of Items honouring limit and offset.
func (m *MockSpotifyClient) GetPlaylistItems(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistItemPage, error) {
	m.count()
	if m.GetPlaylistItemsFunc != nil {
		return m.GetPlaylistItemsFunc(ctx, playlistID, opts...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// The mock serves every remaining item; the collector only relies on total.
	page := &spotifyLib.PlaylistItemPage{Items: m.Items}
	setPaging(page, len(m.Items), 0)
	return page, nil
}

// ReplacePlaylistTracks replaces the stored tracks.
func (m *MockSpotifyClient) ReplacePlaylistTracks(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) error {
	m.count()
	if m.ReplacePlaylistTracksFunc != nil {
		if err := m.ReplacePlaylistTracksFunc(ctx, playlistID, trackIDs...); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stored = append([]spotifyLib.ID(nil), trackIDs...)
	return nil
}

// AddTracksToPlaylist appends to the stored tracks.
func (m *MockSpotifyClient) AddTracksToPlaylist(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) (string, error) {
	m.count()
	if m.AddTracksToPlaylistFunc != nil {
		if _, err := m.AddTracksToPlaylistFunc(ctx, playlistID, trackIDs...); err != nil {
			return "", err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls = append(m.AddCalls, append([]spotifyLib.ID(nil), trackIDs...))
	m.Stored = append(m.Stored, trackIDs...)
	return "snapshot", nil
}

// CreatePlaylistForUser creates a playlist.
func (m *MockSpotifyClient) CreatePlaylistForUser(ctx context.Context, userID, playlistName, description string, public bool, collaborative bool) (*spotifyLib.FullPlaylist, error) {
	m.count()
	if m.CreatePlaylistForUserFunc != nil {
		return m.CreatePlaylistForUserFunc(ctx, userID, playlistName, description, public, collaborative)
	}
	playlist := &spotifyLib.FullPlaylist{}
	playlist.ID = "newplaylist"
	playlist.Name = playlistName
	return playlist, nil
}
