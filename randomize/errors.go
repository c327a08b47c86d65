//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Error kinds surfaced by the randomizer.
//

package randomize

import (
	"errors"
	"fmt"
)

var (
	// ErrAuth matches every AuthError.
	ErrAuth = errors.New("no token provided")
	// ErrInvalidPlaylistID is returned for an empty playlist id.
	ErrInvalidPlaylistID = errors.New("playlist id is required")
	// ErrRemoteFetch matches every RemoteFetchError.
	ErrRemoteFetch = errors.New("failed to fetch playlist tracks")
	// ErrRemoteWrite matches every RemoteWriteError.
	ErrRemoteWrite = errors.New("failed to update playlist")
)

// Write stages reported by RemoteWriteError.
const (
	StageClear = "clear"
	StageAdd   = "add"
)

// AuthError reports a missing or malformed bearer credential. No remote call
// has been made when it is returned.
type AuthError struct {
	Reason string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Reason == "" {
		return ErrAuth.Error()
	}
	return fmt.Sprintf("%s: %s", ErrAuth, e.Reason)
}

// Is reports whether target is ErrAuth.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

// RemoteFetchError reports a failed page read. The playlist is unchanged.
type RemoteFetchError struct {
	PlaylistID string
	Offset     int
	Err        error
}

// Error implements the error interface.
func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("%s %s at offset %d: %v", ErrRemoteFetch, e.PlaylistID, e.Offset, e.Err)
}

// Unwrap returns the underlying remote error.
func (e *RemoteFetchError) Unwrap() error { return e.Err }

// Is reports whether target is ErrRemoteFetch.
func (e *RemoteFetchError) Is(target error) bool {
	return target == ErrRemoteFetch
}

// RemoteWriteError reports a failed clear or add call. When Stage is
// StageAdd the playlist holds only the first Written tracks of the new order.
type RemoteWriteError struct {
	PlaylistID string
	Stage      string
	Batch      int
	Batches    int
	Written    int
	Err        error
}

// Error implements the error interface.
func (e *RemoteWriteError) Error() string {
	if e.Stage == StageClear {
		return fmt.Sprintf("%s %s: clearing playlist: %v", ErrRemoteWrite, e.PlaylistID, e.Err)
	}
	return fmt.Sprintf("%s %s: adding batch %d of %d (%d tracks written): %v",
		ErrRemoteWrite, e.PlaylistID, e.Batch, e.Batches, e.Written, e.Err)
}

// Unwrap returns the underlying remote error.
func (e *RemoteWriteError) Unwrap() error { return e.Err }

// Is reports whether target is ErrRemoteWrite.
func (e *RemoteWriteError) Is(target error) bool {
	return target == ErrRemoteWrite
}

// Partial reports whether the remote playlist was left partially rewritten.
func (e *RemoteWriteError) Partial() bool {
	return e.Stage == StageAdd
}
