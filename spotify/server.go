//
// Date: 2025-12-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: HTTP API server and request handlers.
//

package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/spotify-randomizer/randomize"
)

const maxRequestBody = 1 << 20

// ServerOptions configures a Server.
type ServerOptions struct {
	NewClient      ClientFunc
	Randomize      randomize.Options
	RequestTimeout time.Duration
	Logger         *log.Logger
}

// Server serves the playlist API. It keeps no Spotify credentials; each
// request authenticates with its own bearer token.
type Server struct {
	newClient      ClientFunc
	randomizer     *randomize.Service
	batchSize      int
	requestTimeout time.Duration
	logger         *log.Logger
}

// NewServer creates a Server.
func NewServer(opts ServerOptions) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	opts.Randomize.Logger = opts.Logger

	s := &Server{
		newClient:      opts.NewClient,
		batchSize:      opts.Randomize.WriteBatchSize,
		requestTimeout: opts.RequestTimeout,
		logger:         opts.Logger,
	}

	s.randomizer = randomize.NewService(func(ctx context.Context, token string) randomize.RemoteClient {
		return NewRemote(s.client(ctx, token))
	}, opts.Randomize)

	return s
}

func (s *Server) client(ctx context.Context, token string) Client {
	return Instrument(s.newClient(ctx, token))
}

// Handler returns the routed HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(metricsMiddleware)

	r.HandleFunc("/healthz", HandleHealthRequest).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/user", s.HandleUserRequest).Methods(http.MethodGet)
	r.HandleFunc("/api/user/playlists", s.HandleListPlaylistsRequest).Methods(http.MethodGet)
	r.HandleFunc("/api/user/playlists", s.HandleCreatePlaylistRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/user/playlists/{id}", s.HandleGetPlaylistRequest).Methods(http.MethodGet)
	r.HandleFunc("/api/user/playlist/randomize/{id}", s.HandleRandomizeRequest).Methods(http.MethodGet, http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return chain(r,
		recoverMiddleware(s.logger),
		requestIDMiddleware,
		loggingMiddleware(s.logger),
		timeoutMiddleware(s.requestTimeout),
	)
}

// ListenAndServe runs the server on addr until ctx is cancelled, then shuts
// down gracefully within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start API server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// HandleHealthRequest reports liveness.
func HandleHealthRequest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleRandomizeRequest shuffles the playlist named in the path and writes
// the new order back to Spotify.
func (s *Server) HandleRandomizeRequest(w http.ResponseWriter, r *http.Request) {
	token, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	playlistID := ExtractPlaylistID(mux.Vars(r)["id"])

	result, err := s.randomizer.Randomize(r.Context(), playlistID, token)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleUserRequest returns the current user's profile.
func (s *Server) HandleUserRequest(w http.ResponseWriter, r *http.Request) {
	token, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	user, err := s.client(r.Context(), token).CurrentUser(r.Context())
	if err != nil {
		writeError(w, statusForError(err), fmt.Sprintf("failed to get current user: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleListPlaylistsRequest returns the playlists the current user owns.
func (s *Server) HandleListPlaylistsRequest(w http.ResponseWriter, r *http.Request) {
	token, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	playlists, err := OwnedPlaylists(r.Context(), s.client(r.Context(), token))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}

// HandleGetPlaylistRequest returns a single playlist.
func (s *Server) HandleGetPlaylistRequest(w http.ResponseWriter, r *http.Request) {
	token, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	playlistID := ExtractPlaylistID(mux.Vars(r)["id"])

	playlist, err := s.client(r.Context(), token).GetPlaylist(r.Context(), spotifyLib.ID(playlistID))
	if err != nil {
		writeError(w, statusForError(err), fmt.Sprintf("failed to get playlist: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

// HandleCreatePlaylistRequest creates a playlist for the current user.
func (s *Server) HandleCreatePlaylistRequest(w http.ResponseWriter, r *http.Request) {
	token, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req CreatePlaylistRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
			return
		}
	}

	if _, err := TrackIDs(req.URIs); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	playlist, err := CreatePlaylist(r.Context(), s.client(r.Context(), token), req, s.batchSize)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, CreatePlaylistResponse{
		Message:  "Playlist created successfully",
		Playlist: playlist,
	})
}

// authenticate extracts the bearer token or writes a 401 response.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	token, err := BearerToken(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return "", false
	}
	return token, true
}

// statusForError maps an error to the HTTP status returned to the caller.
func statusForError(err error) int {
	switch {
	case errors.Is(err, randomize.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, randomize.ErrInvalidPlaylistID):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}

	var serr spotifyLib.Error
	if errors.As(err, &serr) {
		switch serr.Status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return serr.Status
		}
	}

	return http.StatusBadGateway
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
