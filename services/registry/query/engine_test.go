// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the query engine

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/stringvault/services/registry/datatypes"
)

func TestRun_EmptyPredicateReturnsEverything(t *testing.T) {
	records := []*datatypes.StringRecord{record("one"), record("two"), record("three")}

	result := Run(records, FilterPredicate{})

	assert.Equal(t, 3, result.Count)
	assert.Equal(t, records, result.Matches)
	assert.Empty(t, result.FiltersApplied)
}

func TestRun_FiltersAndPreservesOrder(t *testing.T) {
	records := []*datatypes.StringRecord{
		record("level"),   // palindrome
		record("hello"),   // not
		record("racecar"), // palindrome
		record("noon"),    // palindrome
	}

	result := Run(records, FilterPredicate{IsPalindrome: boolPtr(true)})

	require.Equal(t, 3, result.Count)
	require.Len(t, result.Matches, result.Count)
	assert.Equal(t, "level", result.Matches[0].Value)
	assert.Equal(t, "racecar", result.Matches[1].Value)
	assert.Equal(t, "noon", result.Matches[2].Value)
	assert.Equal(t, map[string]any{"is_palindrome": true}, result.FiltersApplied)
}

func TestRun_NoMatchesIsValid(t *testing.T) {
	records := []*datatypes.StringRecord{record("hello")}

	result := Run(records, FilterPredicate{MinLength: intPtr(100)})

	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Matches)
	assert.Equal(t, map[string]any{"min_length": 100}, result.FiltersApplied)
}

func TestRun_EmptySnapshot(t *testing.T) {
	result := Run(nil, FilterPredicate{WordCount: intPtr(1)})
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Matches)
}
