// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedsplit

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
)

// TestCommitShare_Deterministic checks that the digest is a pure function of
// salt, index and entropy.
func TestCommitShare_Deterministic(t *testing.T) {
	is := is.New(t)

	entropy := randomEntropy(t, 16)
	is.Equal(commitShare("x", 1, entropy), commitShare("x", 1, entropy))
	is.Equal(len(commitShare("x", 1, entropy)), digestLen)
}

// TestCommitShare_DomainSeparation checks that changing any input changes
// the digest: salt, index, entropy, and share-vs-secret domain.
func TestCommitShare_DomainSeparation(t *testing.T) {
	is := is.New(t)

	entropy := randomEntropy(t, 16)
	base := commitShare("x", 1, entropy)

	is.True(!bytes.Equal(base, commitShare("y", 1, entropy)))
	is.True(!bytes.Equal(base, commitShare("x", 2, entropy)))

	other := randomEntropy(t, 16)
	is.True(!bytes.Equal(base, commitShare("x", 1, other)))

	// A share digest never collides with a secret commitment chunk over
	// the same inputs.
	is.True(!bytes.Equal(base, commitSecret("x", entropy, 1)[0]))
}

// TestCommitShare_SaltCannotBleed checks that moving bytes between the salt
// and the payload changes the digest: the inputs are unambiguously framed.
func TestCommitShare_SaltCannotBleed(t *testing.T) {
	is := is.New(t)

	entropy := randomEntropy(t, 16)
	a := commitShare("ab", 1, entropy)
	b := commitShare("a", 1, append([]byte{'b'}, entropy...))
	is.True(!bytes.Equal(a, b))
}

// TestCommitSecret_Chunks checks chunk count, length and that chunks within
// one commitment are distinct stream segments.
func TestCommitSecret_Chunks(t *testing.T) {
	is := is.New(t)

	entropy := randomEntropy(t, 32)
	chunks := commitSecret("x", entropy, 3)
	is.Equal(len(chunks), 3)
	for _, c := range chunks {
		is.Equal(len(c), digestLen)
	}
	is.True(!bytes.Equal(chunks[0], chunks[1]))
	is.True(!bytes.Equal(chunks[1], chunks[2]))
}
