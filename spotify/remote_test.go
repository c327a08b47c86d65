//
// Date: 2025-12-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Unit tests for the randomizer remote adapter.
//

package spotify

import (
	"context"
	"errors"
	"testing"

	spotifyLib "github.com/zmb3/spotify/v2"
)

func TestRemote(t *testing.T) {
	ctx := context.Background()

	t.Run("ListTracksPage", func(t *testing.T) {
		mock := &MockSpotifyClient{
			GetPlaylistItemsFunc: func(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistItemPage, error) {
				if playlistID != "pl" {
					t.Errorf("expected playlist pl, got %s", playlistID)
				}
				if len(opts) != 2 {
					t.Errorf("expected limit and offset options, got %d", len(opts))
				}
				page := &spotifyLib.PlaylistItemPage{Items: []spotifyLib.PlaylistItem{newPlaylistItem(0), newPlaylistItem(1)}}
				setPaging(page, 102, 100)
				return page, nil
			},
		}

		page, err := NewRemote(mock).ListTracksPage(ctx, "pl", 100, 100)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if page.Total != 102 || page.Offset != 100 || len(page.Items) != 2 {
			t.Errorf("unexpected page: total %d offset %d items %d", page.Total, page.Offset, len(page.Items))
		}
	})

	t.Run("ListTracksPage Error", func(t *testing.T) {
		remoteErr := spotifyLib.Error{Message: "Not found", Status: 404}
		mock := &MockSpotifyClient{
			GetPlaylistItemsFunc: func(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistItemPage, error) {
				return nil, remoteErr
			},
		}

		_, err := NewRemote(mock).ListTracksPage(ctx, "pl", 0, 100)
		var serr spotifyLib.Error
		if !errors.As(err, &serr) || serr.Status != 404 {
			t.Errorf("expected wrapped spotify error, got %v", err)
		}
	})

	t.Run("ReplaceTracks Clear", func(t *testing.T) {
		mock := &MockSpotifyClient{Stored: []spotifyLib.ID{"old"}}

		if err := NewRemote(mock).ReplaceTracks(ctx, "pl", nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(mock.Stored) != 0 {
			t.Errorf("expected playlist cleared, got %v", mock.Stored)
		}
	})

	t.Run("AddTracks Converts URIs", func(t *testing.T) {
		mock := &MockSpotifyClient{}

		err := NewRemote(mock).AddTracks(ctx, "pl", []string{"spotify:track:a", "spotify:track:b"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(mock.AddCalls) != 1 || len(mock.AddCalls[0]) != 2 || mock.AddCalls[0][0] != "a" || mock.AddCalls[0][1] != "b" {
			t.Errorf("expected ids [a b], got %v", mock.AddCalls)
		}
	})

	t.Run("AddTracks Rejects Non-Track URI", func(t *testing.T) {
		mock := &MockSpotifyClient{}

		err := NewRemote(mock).AddTracks(ctx, "pl", []string{"spotify:local:artist:album:song:120"})
		if err == nil {
			t.Fatal("expected error for local file uri")
		}
		if mock.Requests != 0 {
			t.Errorf("expected no remote call, got %d", mock.Requests)
		}
	})

	t.Run("AddTracks Error", func(t *testing.T) {
		mock := &MockSpotifyClient{
			AddTracksToPlaylistFunc: func(ctx context.Context, playlistID spotifyLib.ID, trackIDs ...spotifyLib.ID) (string, error) {
				return "", errors.New("boom")
			},
		}

		if err := NewRemote(mock).AddTracks(ctx, "pl", []string{"spotify:track:a"}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestTrackIDs(t *testing.T) {
	ids, err := TrackIDs([]string{"spotify:track:4uLU6hMCjMI75M1A2tKUQC", "spotify:track:1301WleyT98MSxVHPZCA6M"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 2 || ids[0] != "4uLU6hMCjMI75M1A2tKUQC" || ids[1] != "1301WleyT98MSxVHPZCA6M" {
		t.Errorf("unexpected ids: %v", ids)
	}

	for _, bad := range []string{"", "spotify:track:", "spotify:episode:abc", "4uLU6hMCjMI75M1A2tKUQC"} {
		if _, err := TrackIDs([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
