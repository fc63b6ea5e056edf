// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package seedsplit splits a BIP-0039 mnemonic into threshold shares: any
// `needed` of the produced shares recover the original mnemonic, while fewer
// reveal nothing about it.
//
// Each share is itself a standalone, checksum-valid BIP-0039 mnemonic of the
// same length as the secret. Alongside the shares, Split produces a public
// metadata record of salted commitment digests; Verify checks a single share
// against it and Recover uses it to reject forged or mismatched shares (and
// to discover each share's index) before interpolating.
//
// Share words may be transcribed abbreviated: any case-insensitive prefix
// that is unique within the word list is accepted wherever a mnemonic is
// read.
package seedsplit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrReconstructionMismatch reports that interpolation produced a secret
// whose commitment disagrees with the metadata: the supplied shares are
// individually genuine-looking but do not belong to the same split.
var ErrReconstructionMismatch = errors.New("reconstructed secret does not match its commitment")

// RecoverError reports that fewer valid shares were supplied than the
// threshold requires. Invalid holds the literal text of every rejected
// share, in input order; it is empty when all supplied shares were valid but
// too few.
type RecoverError struct {
	Invalid []string
}

func (e *RecoverError) Error() string {
	if len(e.Invalid) == 0 {
		return "too few valid shares"
	}
	return fmt.Sprintf("too few valid shares (%d invalid)", len(e.Invalid))
}

// Split splits a secret mnemonic into `shares` share mnemonics, any `needed`
// of which recover it, plus the public verification metadata. The secret may
// use abbreviated words. The salt distinguishes independent splits of the
// same secret; reusing a salt across splits of one secret makes their
// metadata records mutually confusable, so pick a fresh one each time.
func Split(secret string, needed, shares int, salt string) ([]string, *Metadata, error) {
	resolved, err := ResolveMnemonic(secret)
	if err != nil {
		return nil, nil, err
	}
	entropy, err := DecodeMnemonic(resolved)
	if err != nil {
		return nil, nil, err
	}

	points, err := splitEntropy(entropy, needed, shares)
	if err != nil {
		return nil, nil, err
	}

	meta := &Metadata{
		Needed: needed,
		Salt:   salt,
		V:      make([][]byte, shares),
		C:      commitSecret(salt, entropy, needed),
	}
	mnemonics := make([]string, shares)
	for i, p := range points {
		meta.V[i] = commitShare(salt, p.index, p.entropy)
		mnemonics[i], err = EncodeMnemonic(p.entropy)
		if err != nil {
			return nil, nil, err
		}
	}
	return mnemonics, meta, nil
}

// findShareIndex searches the candidate indices 1..N for one whose published
// digest matches the share entropy. It returns 0 when the entropy matches no
// published commitment. This is how Recover learns share indices: they are
// never supplied by the caller.
func findShareIndex(entropy []byte, meta *Metadata) int {
	for i := 1; i <= len(meta.V); i++ {
		if digestEqual(commitShare(meta.Salt, i, entropy), meta.V[i-1]) {
			return i
		}
	}
	return 0
}

// Verify reports whether the share mnemonic (possibly abbreviated) matches
// one of the commitments published in the metadata. Resolution and checksum
// failures are argument errors, distinct from a genuine mismatch.
func Verify(shareMnemonic string, meta *Metadata) (bool, error) {
	resolved, err := ResolveMnemonic(shareMnemonic)
	if err != nil {
		return false, err
	}
	entropy, err := DecodeMnemonic(resolved)
	if err != nil {
		return false, err
	}
	return findShareIndex(entropy, meta) != 0, nil
}

// Recover reconstructs the secret mnemonic from the given share mnemonics.
//
// Every share is first resolved and checksum-decoded; any failures there are
// reported together as argument errors before cryptography runs. Decoded
// shares that match no published commitment are set aside as invalid. If the
// distinct genuine shares number fewer than the threshold, Recover fails
// with a *RecoverError listing the invalid shares' literal text. Otherwise
// the `needed` genuine shares with the lowest indices are interpolated (a
// fixed choice, so recovery is reproducible), and the result is checked
// against the secret commitment before being re-encoded.
func Recover(shareMnemonics []string, meta *Metadata) (string, error) {
	entropies := make([][]byte, len(shareMnemonics))
	var argErrs []error
	for i, s := range shareMnemonics {
		resolved, err := ResolveMnemonic(s)
		if err != nil {
			argErrs = append(argErrs, fmt.Errorf("share %d: %w", i+1, err))
			continue
		}
		entropy, err := DecodeMnemonic(resolved)
		if err != nil {
			argErrs = append(argErrs, fmt.Errorf("share %d: %w", i+1, err))
			continue
		}
		entropies[i] = entropy
	}
	if len(argErrs) > 0 {
		return "", errors.Join(argErrs...)
	}

	// Discover each share's index from the metadata. Duplicates of an
	// already-seen index are redundant, not invalid; shares matching no
	// commitment at all are collected for the error report.
	valid := make(map[int][]byte)
	var invalid []string
	for i, entropy := range entropies {
		idx := findShareIndex(entropy, meta)
		if idx == 0 {
			invalid = append(invalid, strings.TrimSpace(shareMnemonics[i]))
			continue
		}
		if _, seen := valid[idx]; !seen {
			valid[idx] = entropy
		}
	}
	if len(valid) < meta.Needed {
		return "", &RecoverError{Invalid: invalid}
	}

	indices := make([]int, 0, len(valid))
	for idx := range valid {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	points := make([]share, meta.Needed)
	for i, idx := range indices[:meta.Needed] {
		points[i] = share{index: idx, entropy: valid[idx]}
	}
	secret := recoverEntropy(points)

	for i, chunk := range commitSecret(meta.Salt, secret, meta.Needed) {
		if !digestEqual(chunk, meta.C[i]) {
			return "", ErrReconstructionMismatch
		}
	}
	return EncodeMnemonic(secret)
}
