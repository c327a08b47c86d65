//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Batched playlist rewriting.
//

package randomize

import (
	"context"
)

// Rewrite replaces the contents of a playlist with uris, in order. The
// playlist is cleared with one replace call and refilled with one add call per
// batch. A failed add is not rolled back: the returned *RemoteWriteError says
// how many tracks made it in.
func Rewrite(ctx context.Context, client RemoteClient, playlistID string, uris []string, batchSize int) error {
	if err := client.ReplaceTracks(ctx, playlistID, nil); err != nil {
		return &RemoteWriteError{PlaylistID: playlistID, Stage: StageClear, Err: err}
	}

	return AppendBatches(ctx, client, playlistID, uris, batchSize)
}

// AppendBatches adds uris to the end of a playlist, batchSize at a time.
func AppendBatches(ctx context.Context, client RemoteClient, playlistID string, uris []string, batchSize int) error {
	batches := Batches(uris, batchSize)

	written := 0
	for i, batch := range batches {
		if err := client.AddTracks(ctx, playlistID, batch); err != nil {
			return &RemoteWriteError{
				PlaylistID: playlistID,
				Stage:      StageAdd,
				Batch:      i + 1,
				Batches:    len(batches),
				Written:    written,
				Err:        err,
			}
		}
		written += len(batch)
	}

	return nil
}

// Batches splits uris into consecutive chunks of at most size elements.
// size is clamped to 1..MaxWriteBatch.
func Batches(uris []string, size int) [][]string {
	if size <= 0 || size > MaxWriteBatch {
		size = MaxWriteBatch
	}

	batches := make([][]string, 0, (len(uris)+size-1)/size)
	for start := 0; start < len(uris); start += size {
		end := min(start+size, len(uris))
		batches = append(batches, uris[start:end])
	}

	return batches
}
