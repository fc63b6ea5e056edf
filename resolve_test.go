// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedsplit

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// TestResolveWord_FullSpelling verifies that every word in the list resolves
// to itself, including words that are prefixes of other words ("act" is a
// word and a prefix of "action").
func TestResolveWord_FullSpelling(t *testing.T) {
	is := is.New(t)

	for _, w := range wordList {
		got, err := ResolveWord(w)
		is.NoErr(err)
		is.Equal(got, w)
	}
}

// TestResolveWord_FourLetterPrefix verifies the designed property of the
// English list that the first four letters of every word are unique, by
// resolving each word from its 4-letter abbreviation.
func TestResolveWord_FourLetterPrefix(t *testing.T) {
	is := is.New(t)

	for _, w := range wordList {
		prefix := w
		if len(prefix) > 4 {
			prefix = prefix[:4]
		}
		got, err := ResolveWord(prefix)
		is.NoErr(err)
		is.Equal(got, w)
	}
}

// TestResolveWord_UniquePrefix resolves abbreviations shared by exactly one
// word.
func TestResolveWord_UniquePrefix(t *testing.T) {
	is := is.New(t)

	got, err := ResolveWord("zeb")
	is.NoErr(err)
	is.Equal(got, "zebra")

	got, err = ResolveWord("acti")
	is.NoErr(err)
	is.Equal(got, "action")
}

// TestResolveWord_CaseInsensitive accepts any casing of the input token.
func TestResolveWord_CaseInsensitive(t *testing.T) {
	is := is.New(t)

	got, err := ResolveWord("ZEBRA")
	is.NoErr(err)
	is.Equal(got, "zebra")

	got, err = ResolveWord("Zeb")
	is.NoErr(err)
	is.Equal(got, "zebra")
}

// TestResolveWord_Ambiguous rejects prefixes shared by two or more words.
func TestResolveWord_Ambiguous(t *testing.T) {
	is := is.New(t)

	_, err := ResolveWord("ac")
	is.True(errors.Is(err, ErrAmbiguousWord))
}

// TestResolveWord_NoMatch rejects tokens that prefix nothing in the list.
func TestResolveWord_NoMatch(t *testing.T) {
	is := is.New(t)

	_, err := ResolveWord("qqq")
	is.True(errors.Is(err, ErrUnknownWord))

	_, err = ResolveWord("")
	is.True(errors.Is(err, ErrUnknownWord))
}

// TestResolveMnemonic_ExpandsAbbreviations resolves a whole mnemonic typed
// with 4-letter abbreviations back to its full spelling.
func TestResolveMnemonic_ExpandsAbbreviations(t *testing.T) {
	is := is.New(t)

	full := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	var abbr []string
	for _, w := range strings.Fields(full) {
		if len(w) > 4 {
			w = w[:4]
		}
		abbr = append(abbr, w)
	}

	got, err := ResolveMnemonic(strings.Join(abbr, " "))
	is.NoErr(err)
	is.Equal(got, full)
}

// TestResolveMnemonic_ReportsEveryBadWord collects all unresolvable tokens
// instead of stopping at the first.
func TestResolveMnemonic_ReportsEveryBadWord(t *testing.T) {
	is := is.New(t)

	_, err := ResolveMnemonic("legal qqq thank ac wave")
	is.True(err != nil)
	is.True(errors.Is(err, ErrUnknownWord))
	is.True(errors.Is(err, ErrAmbiguousWord))
	is.True(strings.Contains(err.Error(), `"qqq"`))
	is.True(strings.Contains(err.Error(), `"ac"`))
}
