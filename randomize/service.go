//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: The randomize operation: collect, project, shuffle, rewrite.
//

package randomize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cloudmanic/spotify-randomizer/metrics"
)

// Options configures a Service.
type Options struct {
	// PageSize is the number of items requested per read, at most MaxPageSize.
	PageSize int
	// WriteBatchSize is the number of URIs sent per add call, at most MaxWriteBatch.
	WriteBatchSize int
	// SerializePerPlaylist makes concurrent randomizations of the same
	// playlist id run one at a time.
	SerializePerPlaylist bool
	Logger               *log.Logger
}

// Service runs playlist randomizations. It holds no credentials; every call
// builds its own RemoteClient from the caller's token.
type Service struct {
	newClient ClientFactory
	pageSize  int
	batchSize int
	locks     *playlistLocks
	logger    *log.Logger
}

// NewService creates a Service that builds remote clients with newClient.
func NewService(newClient ClientFactory, opts Options) *Service {
	if opts.PageSize <= 0 || opts.PageSize > MaxPageSize {
		opts.PageSize = MaxPageSize
	}
	if opts.WriteBatchSize <= 0 || opts.WriteBatchSize > MaxWriteBatch {
		opts.WriteBatchSize = MaxWriteBatch
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Service{
		newClient: newClient,
		pageSize:  opts.PageSize,
		batchSize: opts.WriteBatchSize,
		logger:    opts.Logger,
	}
	if opts.SerializePerPlaylist {
		s.locks = newPlaylistLocks()
	}

	return s
}

// ValidateCredential checks that token looks like a bearer token.
func ValidateCredential(token string) error {
	if token == "" {
		return &AuthError{}
	}
	if strings.ContainsAny(token, " \t\r\n") {
		return &AuthError{Reason: "malformed token"}
	}
	return nil
}

// Randomize shuffles the tracks of playlistID and writes the new order back.
//
// On a write failure the Result is still returned with the error; the remote
// playlist may then hold only part of the new order.
func (s *Service) Randomize(ctx context.Context, playlistID, token string) (*Result, error) {
	if err := ValidateCredential(token); err != nil {
		metrics.RandomizeRunsTotal.WithLabelValues("auth_error").Inc()
		return nil, err
	}
	if strings.TrimSpace(playlistID) == "" {
		metrics.RandomizeRunsTotal.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidPlaylistID
	}

	logger := s.logger.With("playlist", playlistID)

	if s.locks != nil {
		unlock, err := s.locks.Lock(ctx, playlistID)
		if err != nil {
			metrics.RandomizeRunsTotal.WithLabelValues("canceled").Inc()
			logger.Warn("gave up waiting for playlist", "err", err)
			return nil, err
		}
		defer unlock()
	}

	// The wait may have outlived the caller.
	if err := ctx.Err(); err != nil {
		metrics.RandomizeRunsTotal.WithLabelValues("canceled").Inc()
		return nil, fmt.Errorf("randomize playlist %s: %w", playlistID, err)
	}

	start := time.Now()
	client := s.newClient(ctx, token)

	logger.Debug("fetching tracks", "page_size", s.pageSize)
	items, firstTotal, err := CollectItems(ctx, client, playlistID, s.pageSize)
	if err != nil {
		metrics.RandomizeRunsTotal.WithLabelValues("fetch_error").Inc()
		logger.Error("fetch failed", "err", err)
		return nil, err
	}
	if len(items) != firstTotal {
		logger.Warn("playlist changed while reading", "expected", firstTotal, "read", len(items))
	}

	tracks, skipped := ProjectAll(items)
	if skipped > 0 {
		metrics.RandomizeSkippedTracks.Add(float64(skipped))
		logger.Warn("skipped unusable playlist entries", "skipped", skipped)
	}

	shuffled := Shuffle(tracks)
	result := &Result{Message: SuccessMessage, Tracks: shuffled, Skipped: skipped}

	logger.Debug("rewriting playlist", "tracks", len(shuffled), "batch_size", s.batchSize)
	if err := Rewrite(ctx, client, playlistID, URIs(shuffled), s.batchSize); err != nil {
		metrics.RandomizeRunsTotal.WithLabelValues("write_error").Inc()

		var werr *RemoteWriteError
		if errors.As(err, &werr) && werr.Partial() {
			logger.Error("playlist left partially rewritten", "written", werr.Written, "tracks", len(shuffled), "err", err)
		} else {
			logger.Error("rewrite failed", "err", err)
		}
		return result, err
	}

	metrics.RandomizeRunsTotal.WithLabelValues("ok").Inc()
	metrics.RandomizeTracks.Observe(float64(len(shuffled)))
	logger.Info("playlist randomized", "tracks", len(shuffled), "skipped", skipped, "duration", time.Since(start))

	return result, nil
}
