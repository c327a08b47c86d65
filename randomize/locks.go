//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Per-playlist mutual exclusion within one process.
//

package randomize

import (
	"context"
	"fmt"
	"sync"
)

// playlistLocks hands out one lock per playlist id. Entries are dropped when
// the last holder or waiter lets go of them.
type playlistLocks struct {
	mu    sync.Mutex
	locks map[string]*playlistLock
}

// playlistLock is held while its one-slot channel is full.
type playlistLock struct {
	held chan struct{}
	refs int
}

func newPlaylistLocks() *playlistLocks {
	return &playlistLocks{locks: make(map[string]*playlistLock)}
}

// Lock waits until playlistID is free or ctx is done. On success it returns
// the release func; otherwise it returns the context error.
func (p *playlistLocks) Lock(ctx context.Context, playlistID string) (func(), error) {
	p.mu.Lock()
	l, ok := p.locks[playlistID]
	if !ok {
		l = &playlistLock{held: make(chan struct{}, 1)}
		p.locks[playlistID] = l
	}
	l.refs++
	p.mu.Unlock()

	select {
	case l.held <- struct{}{}:
	case <-ctx.Done():
		p.unref(playlistID, l)
		return nil, fmt.Errorf("waiting for playlist %s: %w", playlistID, ctx.Err())
	}

	return func() {
		<-l.held
		p.unref(playlistID, l)
	}, nil
}

func (p *playlistLocks) unref(playlistID string, l *playlistLock) {
	p.mu.Lock()
	defer p.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(p.locks, playlistID)
	}
}

// size returns the number of playlist ids currently tracked.
func (p *playlistLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
