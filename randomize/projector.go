//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Projection of raw playlist items into Track values.
//

package randomize

import (
	"strings"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// Project maps one playlist item to a Track. It reports false for items that
// cannot be written back: removed tracks and episodes (no inner track) and
// entries whose URI is not a catalog track, such as local files.
func Project(item spotifyLib.PlaylistItem) (Track, bool) {
	track := item.Track.Track
	if track == nil || !strings.HasPrefix(string(track.URI), TrackURIPrefix) {
		return Track{}, false
	}

	artists := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}

	return Track{
		ID:         string(track.ID),
		Name:       track.Name,
		URI:        string(track.URI),
		Artists:    artists,
		DurationMs: int(track.Duration),
	}, true
}

// ProjectAll projects items in order and returns how many were skipped.
func ProjectAll(items []spotifyLib.PlaylistItem) (tracks []Track, skipped int) {
	tracks = make([]Track, 0, len(items))
	for _, item := range items {
		track, ok := Project(item)
		if !ok {
			skipped++
			continue
		}
		tracks = append(tracks, track)
	}
	return tracks, skipped
}
