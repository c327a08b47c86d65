//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Uniform track shuffling.
//

package randomize

import (
	"math/rand/v2"
)

// Shuffle returns a uniformly random permutation of tracks as a new slice.
// The input is not modified.
func Shuffle(tracks []Track) []Track {
	shuffled := make([]Track, len(tracks))
	copy(shuffled, tracks)

	if len(shuffled) <= 1 {
		return shuffled
	}

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}
