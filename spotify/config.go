//
// Date: 2025-12-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Construction of per-request Spotify clients.
//

package spotify

import (
	"context"
	"net/http"

	spotifyLib "github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	DefaultAPIBaseURL = "https://api.spotify.com/v1/"
)

// Factory builds Spotify clients for individual bearer tokens. All clients
// built by one Factory share its rate limiter.
type Factory struct {
	baseURL   string
	transport http.RoundTripper
}

// NewFactory creates a Factory talking to baseURL. A zero requestsPerSecond
// disables rate limiting.
func NewFactory(baseURL string, requestsPerSecond float64, burst int) *Factory {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}

	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	if burst <= 0 {
		burst = 1
	}

	return &Factory{
		baseURL: baseURL,
		transport: &rateLimitedTransport{
			base:    http.DefaultTransport,
			limiter: rate.NewLimiter(limit, burst),
		},
	}
}

// Client returns a Spotify client that sends token as its bearer credential.
func (f *Factory) Client(ctx context.Context, token string) Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: f.transport})
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))

	return spotifyLib.New(httpClient, spotifyLib.WithBaseURL(f.baseURL))
}

// rateLimitedTransport waits on a shared limiter before each request.
type rateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// RoundTrip implements http.RoundTripper.
func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
