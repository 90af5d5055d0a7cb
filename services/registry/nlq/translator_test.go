// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the natural-language query translator

package nlq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/stringvault/services/registry/query"
)

func TestTranslate_SingleWord(t *testing.T) {
	for _, q := range []string{
		"all single word strings",
		"show me one word entries",
		"Single Word please",
	} {
		pred, err := Translate(q)
		require.NoError(t, err, "query %q", q)
		require.NotNil(t, pred.WordCount)
		assert.Equal(t, 1, *pred.WordCount)
	}
}

func TestTranslate_Palindrome(t *testing.T) {
	for _, q := range []string{
		"give me all palindromic strings",
		"which strings are a palindrome",
		"PALINDROMES only",
	} {
		pred, err := Translate(q)
		require.NoError(t, err, "query %q", q)
		require.NotNil(t, pred.IsPalindrome)
		assert.True(t, *pred.IsPalindrome)
	}
}

func TestTranslate_LongerThan(t *testing.T) {
	pred, err := Translate("strings longer than 3")
	require.NoError(t, err)
	require.NotNil(t, pred.MinLength)
	assert.Equal(t, 4, *pred.MinLength, "strictly longer than 3 means length >= 4")
}

func TestTranslate_ShorterThan(t *testing.T) {
	pred, err := Translate("strings shorter than 10")
	require.NoError(t, err)
	require.NotNil(t, pred.MaxLength)
	assert.Equal(t, 9, *pred.MaxLength)

	// N < 1 could only describe the empty string, which is never
	// stored, so the rule does not fire.
	_, err = Translate("strings shorter than 0")
	assert.ErrorIs(t, err, ErrUnparseableQuery)
}

func TestTranslate_ContainingLetter(t *testing.T) {
	pred, err := Translate("strings containing the letter z")
	require.NoError(t, err)
	require.NotNil(t, pred.ContainsCharacter)
	assert.Equal(t, "z", *pred.ContainsCharacter)

	// Input is lowercased before matching.
	pred, err = Translate("Containing The Letter Q")
	require.NoError(t, err)
	require.NotNil(t, pred.ContainsCharacter)
	assert.Equal(t, "q", *pred.ContainsCharacter)
}

func TestTranslate_PatternsCompose(t *testing.T) {
	pred, err := Translate("single word palindromic strings longer than 3 containing the letter a")
	require.NoError(t, err)

	require.NotNil(t, pred.WordCount)
	require.NotNil(t, pred.IsPalindrome)
	require.NotNil(t, pred.MinLength)
	require.NotNil(t, pred.ContainsCharacter)
	assert.Equal(t, 1, *pred.WordCount)
	assert.True(t, *pred.IsPalindrome)
	assert.Equal(t, 4, *pred.MinLength)
	assert.Equal(t, "a", *pred.ContainsCharacter)
}

func TestTranslate_Unparseable(t *testing.T) {
	for _, q := range []string{
		"xyz",
		"",
		"give me everything",
		"strings longer than", // number missing, rule cannot fire
	} {
		pred, err := Translate(q)
		assert.ErrorIs(t, err, ErrUnparseableQuery, "query %q", q)
		assert.Equal(t, query.FilterPredicate{}, pred)
	}
}

func TestTranslate_ConflictingFilters(t *testing.T) {
	// min_length = 11, max_length = 5: impossible.
	pred, err := Translate("strings longer than 10 and strings shorter than 6")
	assert.ErrorIs(t, err, ErrConflictingFilters)
	assert.Equal(t, query.FilterPredicate{}, pred)

	// Touching bounds are fine: longer than 3 and shorter than 5
	// leaves exactly length 4.
	pred, err = Translate("strings longer than 3 but strings shorter than 5")
	require.NoError(t, err)
	require.NotNil(t, pred.MinLength)
	require.NotNil(t, pred.MaxLength)
	assert.Equal(t, 4, *pred.MinLength)
	assert.Equal(t, 4, *pred.MaxLength)
}
