// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedsplit

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// maxShares is the largest usable share count: x-coordinates are field
// elements 1..255, with x=0 reserved for the secret point.
const maxShares = 255

// ErrInvalidParams reports an unusable threshold/share-count combination.
var ErrInvalidParams = errors.New("invalid sharing parameters")

// share is one point set on the per-byte sharing polynomials: a common
// x-coordinate and one y-byte per byte of the secret.
type share struct {
	index   int
	entropy []byte
}

// splitEntropy splits a secret into n share entropies such that any k of
// them reconstruct it. For every byte offset an independent polynomial of
// degree k-1 is drawn: the constant term is the secret byte, the remaining
// coefficients come from crypto/rand. Share i holds the evaluations at x=i.
func splitEntropy(secret []byte, needed, shares int) ([]share, error) {
	if needed < 2 {
		return nil, fmt.Errorf("%w: at least 2 shares must be needed, got %d", ErrInvalidParams, needed)
	}
	if shares < needed {
		return nil, fmt.Errorf("%w: %d shares is fewer than the %d needed to recover", ErrInvalidParams, shares, needed)
	}
	if shares > maxShares {
		return nil, fmt.Errorf("%w: at most %d shares, got %d", ErrInvalidParams, maxShares, shares)
	}

	// One block of k-1 random coefficients per secret byte, highest degree
	// first. A failure to read randomness is fatal, never retried.
	coeffs := make([]byte, len(secret)*(needed-1))
	if _, err := rand.Read(coeffs); err != nil {
		return nil, fmt.Errorf("could not read random coefficients: %w", err)
	}

	out := make([]share, shares)
	for i := range out {
		out[i] = share{index: i + 1, entropy: make([]byte, len(secret))}
	}
	for j := range secret {
		block := coeffs[j*(needed-1) : (j+1)*(needed-1)]
		for i := 1; i <= shares; i++ {
			x := byte(i)
			acc := byte(0)
			for _, c := range block {
				acc = gfAdd(gfMul(acc, x), c)
			}
			out[i-1].entropy[j] = gfAdd(gfMul(acc, x), secret[j])
		}
	}
	return out, nil
}

// interpolate evaluates at x the unique polynomial through the given points
// at byte offset j, by Lagrange interpolation over GF(2^8). The share
// indices must be distinct.
func interpolate(points []share, j int, x byte) byte {
	var value byte
	for i, a := range points {
		weight := byte(1)
		for k, b := range points {
			if i == k {
				continue
			}
			top := gfAdd(x, byte(b.index))
			bottom := gfAdd(byte(a.index), byte(b.index))
			weight = gfMul(weight, gfDiv(top, bottom))
		}
		value = gfAdd(value, gfMul(weight, a.entropy[j]))
	}
	return value
}

// recoverEntropy reconstructs the secret from exactly k shares with distinct
// indices: each byte is the interpolation of its polynomial at x=0.
func recoverEntropy(points []share) []byte {
	secret := make([]byte, len(points[0].entropy))
	for j := range secret {
		secret[j] = interpolate(points, j, 0)
	}
	return secret
}
