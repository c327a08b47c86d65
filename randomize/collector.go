//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Pagination over a playlist's items.
//

package randomize

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// CollectItems reads every item of a playlist in order, limit items per call.
// It stops on the first empty page or once the offset reaches the total
// reported by the most recent page, so a shrinking playlist or a stale total
// cannot loop forever. firstTotal is the total reported by the first page.
func CollectItems(ctx context.Context, client RemoteClient, playlistID string, limit int) (items []spotifyLib.PlaylistItem, firstTotal int, err error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	offset := 0
	for {
		page, err := client.ListTracksPage(ctx, playlistID, offset, limit)
		if err != nil {
			return nil, 0, &RemoteFetchError{PlaylistID: playlistID, Offset: offset, Err: err}
		}

		if offset == 0 {
			firstTotal = page.Total
		}

		if len(page.Items) == 0 {
			break
		}

		items = append(items, page.Items...)

		offset += limit
		if offset >= page.Total {
			break
		}
	}

	return items, firstTotal, nil
}
