// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedsplit

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func randomEntropy(t *testing.T, size int) []byte {
	t.Helper()
	entropy := make([]byte, size)
	if _, err := rand.Read(entropy); err != nil {
		t.Fatal(err)
	}
	return entropy
}

// subsets returns all size-k subsets of points.
func subsets(points []share, k int) [][]share {
	if k == 0 {
		return [][]share{{}}
	}
	if len(points) < k {
		return nil
	}
	var out [][]share
	for _, rest := range subsets(points[1:], k-1) {
		out = append(out, append([]share{points[0]}, rest...))
	}
	out = append(out, subsets(points[1:], k)...)
	return out
}

// TestSplitEntropy_InvalidParams rejects unusable threshold/share-count
// combinations.
func TestSplitEntropy_InvalidParams(t *testing.T) {
	is := is.New(t)

	secret := randomEntropy(t, 16)

	_, err := splitEntropy(secret, 1, 5)
	is.True(errors.Is(err, ErrInvalidParams))

	_, err = splitEntropy(secret, 0, 5)
	is.True(errors.Is(err, ErrInvalidParams))

	_, err = splitEntropy(secret, 5, 4)
	is.True(errors.Is(err, ErrInvalidParams))

	_, err = splitEntropy(secret, 2, 256)
	is.True(errors.Is(err, ErrInvalidParams))
}

// TestSplitEntropy_Shape checks share count, indices and entropy lengths.
func TestSplitEntropy_Shape(t *testing.T) {
	is := is.New(t)

	secret := randomEntropy(t, 32)
	points, err := splitEntropy(secret, 3, 7)
	is.NoErr(err)
	is.Equal(len(points), 7)
	for i, p := range points {
		is.Equal(p.index, i+1)
		is.Equal(len(p.entropy), len(secret))
	}
}

// TestRecoverEntropy_EverySubset verifies threshold correctness for every
// k-subset of the shares, not just one, across entropy lengths.
func TestRecoverEntropy_EverySubset(t *testing.T) {
	is := is.New(t)

	for _, size := range []int{16, 24, 32} {
		secret := randomEntropy(t, size)
		points, err := splitEntropy(secret, 3, 5)
		is.NoErr(err)

		for _, subset := range subsets(points, 3) {
			is.Equal(recoverEntropy(subset), secret)
		}
	}
}

// TestRecoverEntropy_LargerThresholds sweeps thresholds and share counts the
// way the reference test suite does, recovering from the first k and the
// last k shares.
func TestRecoverEntropy_LargerThresholds(t *testing.T) {
	is := is.New(t)

	for k := 2; k <= 8; k++ {
		for n := k; n <= 24; n += 4 {
			secret := randomEntropy(t, 16)
			points, err := splitEntropy(secret, k, n)
			is.NoErr(err)
			is.Equal(recoverEntropy(points[:k]), secret)
			is.Equal(recoverEntropy(points[n-k:]), secret)
		}
	}
}

// TestInterpolate_ReproducesShares checks that the interpolated polynomial
// passes through every original share point, not just x=0.
func TestInterpolate_ReproducesShares(t *testing.T) {
	is := is.New(t)

	secret := randomEntropy(t, 16)
	points, err := splitEntropy(secret, 4, 8)
	is.NoErr(err)

	chosen := points[:4]
	for _, p := range points {
		for j := range secret {
			is.Equal(interpolate(chosen, j, byte(p.index)), p.entropy[j])
		}
	}
}

// TestSplitEntropy_SharesDifferFromSecret makes sure no share leaks the
// secret verbatim (possible only with astronomically small probability).
func TestSplitEntropy_SharesDifferFromSecret(t *testing.T) {
	is := is.New(t)

	secret := randomEntropy(t, 32)
	points, err := splitEntropy(secret, 2, 5)
	is.NoErr(err)
	for _, p := range points {
		is.True(!bytes.Equal(p.entropy, secret))
	}
}

// TestSplitEntropy_FreshRandomness verifies that two splits of the same
// secret produce different shares.
func TestSplitEntropy_FreshRandomness(t *testing.T) {
	is := is.New(t)

	secret := randomEntropy(t, 16)
	a, err := splitEntropy(secret, 2, 3)
	is.NoErr(err)
	b, err := splitEntropy(secret, 2, 3)
	is.NoErr(err)
	is.True(!bytes.Equal(a[0].entropy, b[0].entropy))
}
