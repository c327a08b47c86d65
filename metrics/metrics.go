//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Prometheus metrics for the HTTP layer, the randomizer and
// outbound Spotify calls.
//

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotify_randomizer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spotify_randomizer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Randomizer metrics
var (
	RandomizeRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotify_randomizer_randomize_runs_total",
			Help: "Total number of playlist randomizations by outcome",
		},
		[]string{"outcome"}, // "ok", "auth_error", "invalid", "canceled", "fetch_error", "write_error"
	)

	RandomizeSkippedTracks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spotify_randomizer_randomize_skipped_tracks_total",
			Help: "Playlist entries skipped because the track record was unusable",
		},
	)

	RandomizeTracks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "spotify_randomizer_randomize_tracks",
			Help:    "Number of tracks written back per randomization",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
	)
)

// Remote metrics
var (
	RemoteCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotify_randomizer_remote_calls_total",
			Help: "Total number of Spotify Web API calls",
		},
		[]string{"op", "status"}, // status: "ok", "error"
	)
)

// ObserveRemoteCall records the result of one Spotify Web API call.
func ObserveRemoteCall(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	RemoteCallsTotal.WithLabelValues(op, status).Inc()
}
