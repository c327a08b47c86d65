//
// Date: 2025-12-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Bearer credential extraction for incoming API requests.
//

package spotify

import (
	"net/http"
	"strings"

	"github.com/cloudmanic/spotify-randomizer/randomize"
)

const bearerPrefix = "Bearer "

// BearerToken returns the access token from the Authorization header. The
// header must be "Bearer <token>" with a single token and nothing else.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", &randomize.AuthError{}
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return "", &randomize.AuthError{Reason: "authorization header is not a bearer token"}
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if err := randomize.ValidateCredential(token); err != nil {
		return "", err
	}

	return token, nil
}
