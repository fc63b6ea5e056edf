// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedsplit

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

const wordListSize = 2048

var (
	// ErrInvalidLength reports a mnemonic whose word count is not one of
	// the BIP-0039 sizes (12, 15, 18, 21 or 24 words).
	ErrInvalidLength = errors.New("invalid mnemonic length")

	// ErrInvalidChecksum reports a mnemonic whose trailing checksum bits do
	// not match its entropy.
	ErrInvalidChecksum = errors.New("invalid mnemonic checksum")

	// ErrInvalidEntropy reports an entropy length outside the BIP-0039
	// strength levels (16, 20, 24, 28 or 32 bytes).
	ErrInvalidEntropy = errors.New("invalid entropy length")
)

// The active word list and its reverse lookup table. Both are process-wide
// state: set (at most once) before first use, never mutated afterwards, so
// concurrent readers need no locking.
var (
	wordList  []string
	wordIndex map[string]int
)

func init() {
	if err := SetWordList(wordlists.English); err != nil {
		panic(err)
	}
}

// SetWordList replaces the active 2048-word list. The default is the English
// BIP-0039 list; CLI callers switch it once at startup for other languages.
func SetWordList(list []string) error {
	if len(list) != wordListSize {
		return fmt.Errorf("word list has %d words, need %d", len(list), wordListSize)
	}
	index := make(map[string]int, wordListSize)
	for i, w := range list {
		index[w] = i
	}
	if len(index) != wordListSize {
		return fmt.Errorf("word list contains duplicate words")
	}
	wordList = list
	wordIndex = index
	return nil
}

// checksumBits computes the leading len(entropy)/4 bits of SHA-256 over the
// entropy. For all supported lengths the checksum fits in the first digest
// byte.
func checksumBits(entropy []byte) int {
	bits := len(entropy) / 4
	h := sha256.Sum256(entropy)
	return int(h[0] >> (8 - bits))
}

// EncodeMnemonic converts entropy to its BIP-0039 mnemonic: the entropy bits
// followed by the checksum bits, sliced into 11-bit indices into the active
// word list.
func EncodeMnemonic(entropy []byte) (string, error) {
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidEntropy, len(entropy))
	}
	numWords := len(entropy) * 3 / 4
	csBits := uint(len(entropy) / 4)

	x := new(big.Int).SetBytes(entropy)
	x.Lsh(x, csBits)
	x.Or(x, big.NewInt(int64(checksumBits(entropy))))

	words := make([]string, numWords)
	mask := big.NewInt(wordListSize - 1)
	w := new(big.Int)
	for i := numWords - 1; i >= 0; i-- {
		w.And(x, mask)
		words[i] = wordList[w.Int64()]
		x.Rsh(x, 11)
	}
	return strings.Join(words, " "), nil
}

// DecodeMnemonic converts a mnemonic of exact word-list words back to its
// entropy, validating the checksum. Abbreviated input must be expanded with
// ResolveMnemonic first.
func DecodeMnemonic(mnemonic string) ([]byte, error) {
	words := strings.Fields(mnemonic)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, fmt.Errorf("%w: %d words", ErrInvalidLength, len(words))
	}
	entropyLen := len(words) * 4 / 3
	csBits := uint(len(words) / 3)

	x := new(big.Int)
	idx := new(big.Int)
	for _, word := range words {
		i, ok := wordIndex[word]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, word)
		}
		x.Lsh(x, 11)
		x.Or(x, idx.SetInt64(int64(i)))
	}

	got := new(big.Int).And(x, big.NewInt(int64(1)<<csBits-1))
	x.Rsh(x, csBits)
	entropy := x.FillBytes(make([]byte, entropyLen))
	if int(got.Int64()) != checksumBits(entropy) {
		return nil, ErrInvalidChecksum
	}
	return entropy, nil
}
