//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Mock remote client and fixtures for randomizer tests.
//

package randomize

import (
	"context"
	"fmt"
	"sync"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// MockRemoteClient is a mock implementation of the RemoteClient interface.
// With no funcs set it behaves like an in-memory playlist holding Items.
type MockRemoteClient struct {
	ListTracksPageFunc func(ctx context.Context, playlistID string, offset, limit int) (*Page, error)
	ReplaceTracksFunc  func(ctx context.Context, playlistID string, uris []string) error
	AddTracksFunc      func(ctx context.Context, playlistID string, uris []string) error

	mu     sync.Mutex
	Items  []spotifyLib.PlaylistItem
	Stored []string
	Calls  []string
	Adds   [][]string
}

func (m *MockRemoteClient) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// ListTracksPage returns a page of Items.
func (m *MockRemoteClient) ListTracksPage(ctx context.Context, playlistID string, offset, limit int) (*Page, error) {
	m.record(fmt.Sprintf("list:%d:%d", offset, limit))
	if m.ListTracksPageFunc != nil {
		return m.ListTracksPageFunc(ctx, playlistID, offset, limit)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	page := &Page{Total: len(m.Items), Offset: offset}
	if offset < len(m.Items) {
		end := min(offset+limit, len(m.Items))
		page.Items = append(page.Items, m.Items[offset:end]...)
	}
	return page, nil
}

// ReplaceTracks replaces the stored URIs.
func (m *MockRemoteClient) ReplaceTracks(ctx context.Context, playlistID string, uris []string) error {
	m.record(fmt.Sprintf("replace:%d", len(uris)))
	if m.ReplaceTracksFunc != nil {
		if err := m.ReplaceTracksFunc(ctx, playlistID, uris); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stored = append([]string(nil), uris...)
	return nil
}

// AddTracks appends to the stored URIs.
func (m *MockRemoteClient) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	m.record(fmt.Sprintf("add:%d", len(uris)))
	if m.AddTracksFunc != nil {
		if err := m.AddTracksFunc(ctx, playlistID, uris); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Adds = append(m.Adds, append([]string(nil), uris...))
	m.Stored = append(m.Stored, uris...)
	return nil
}

// countCalls returns how many recorded calls start with prefix.
func (m *MockRemoteClient) countCalls(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.Calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// newPlaylistItem creates a playlist item for track number i.
func newPlaylistItem(i int) spotifyLib.PlaylistItem {
	id := fmt.Sprintf("track%04d", i)
	return spotifyLib.PlaylistItem{
		Track: spotifyLib.PlaylistItemTrack{
			Track: &spotifyLib.FullTrack{
				SimpleTrack: spotifyLib.SimpleTrack{
					ID:   spotifyLib.ID(id),
					Name: fmt.Sprintf("Song %d", i),
					URI:  spotifyLib.URI("spotify:track:" + id),
					Artists: []spotifyLib.SimpleArtist{
						{Name: "First Artist"},
						{Name: "Second Artist"},
					},
					Duration: 180000,
				},
			},
		},
	}
}

// newPlaylistItems creates n playlist items.
func newPlaylistItems(n int) []spotifyLib.PlaylistItem {
	items := make([]spotifyLib.PlaylistItem, n)
	for i := range items {
		items[i] = newPlaylistItem(i)
	}
	return items
}

// itemURIs returns the URIs of items in order.
func itemURIs(items []spotifyLib.PlaylistItem) []string {
	uris := make([]string, len(items))
	for i, item := range items {
		uris[i] = string(item.Track.Track.URI)
	}
	return uris
}

// sameMultiset reports whether a and b hold the same elements with the same counts.
func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
		if counts[s] < 0 {
			return false
		}
	}
	return true
}
