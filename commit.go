// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedsplit

import (
	"crypto/subtle"

	"golang.org/x/crypto/sha3"
)

// Commitment digests are SHAKE-256 with ASCII domain-separation prefixes, so
// share digests, secret digests and any future uses can never collide. The
// 0xff byte terminates the salt, which is free-form text; 0xff cannot occur
// in UTF-8 text, so salt and payload cannot bleed into each other.
//
// These constants are fixed for all builds: metadata written under one
// construction is never compatible with another.
const (
	digestLen = 16

	shareCommitPrefix  = "seedsplit/share/"
	secretCommitPrefix = "seedsplit/secret/"
)

// commitShare derives the public digest binding share entropy to its index
// under the given salt. Stored as v[index-1] in the metadata at split time.
func commitShare(salt string, index int, entropy []byte) []byte {
	h := sha3.NewShake256()
	h.Write([]byte(shareCommitPrefix))
	h.Write([]byte(salt))
	h.Write([]byte{0xff, byte(index)})
	h.Write(entropy)
	digest := make([]byte, digestLen)
	h.Read(digest)
	return digest
}

// commitSecret derives the public commitment to the secret itself, as
// `needed` consecutive digest chunks read from one SHAKE stream. Recovery
// recomputes it from the reconstructed entropy to catch consistent-but-wrong
// share combinations.
func commitSecret(salt string, entropy []byte, needed int) [][]byte {
	h := sha3.NewShake256()
	h.Write([]byte(secretCommitPrefix))
	h.Write([]byte(salt))
	h.Write([]byte{0xff})
	h.Write(entropy)
	chunks := make([][]byte, needed)
	for i := range chunks {
		chunks[i] = make([]byte, digestLen)
		h.Read(chunks[i])
	}
	return chunks
}

func digestEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
