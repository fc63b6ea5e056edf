// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedsplit

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrUnknownWord reports a token that is not a prefix of any word in
	// the active word list.
	ErrUnknownWord = errors.New("unknown mnemonic word")

	// ErrAmbiguousWord reports a token that is a prefix of two or more
	// words in the active word list.
	ErrAmbiguousWord = errors.New("ambiguous mnemonic word")
)

// ResolveWord expands a possibly abbreviated, case-insensitive token to its
// full word-list spelling. A token that is itself a complete word resolves to
// that word even when it also prefixes others ("act" is a word as well as a
// prefix of "action"). Otherwise the token must prefix exactly one word.
func ResolveWord(token string) (string, error) {
	t := norm.NFKD.String(strings.ToLower(strings.TrimSpace(token)))
	if t == "" {
		return "", fmt.Errorf("%w: empty token", ErrUnknownWord)
	}
	if _, ok := wordIndex[t]; ok {
		return t, nil
	}
	match := ""
	count := 0
	for _, w := range wordList {
		if strings.HasPrefix(w, t) {
			count++
			if count > 1 {
				return "", fmt.Errorf("%w: %q", ErrAmbiguousWord, token)
			}
			match = w
		}
	}
	if count == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownWord, token)
	}
	return match, nil
}

// ResolveMnemonic resolves every whitespace-separated token of a mnemonic
// string. All unresolvable tokens are reported together rather than stopping
// at the first, so an operator sees every problem word at once.
func ResolveMnemonic(mnemonic string) (string, error) {
	tokens := strings.Fields(mnemonic)
	resolved := make([]string, len(tokens))
	var errs []error
	for i, token := range tokens {
		word, err := ResolveWord(token)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		resolved[i] = word
	}
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	return strings.Join(resolved, " "), nil
}
