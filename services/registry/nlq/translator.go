// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package nlq translates a small fixed vocabulary of natural-language
// phrases into filter predicates.
//
// This is intentionally not a general language parser: matching is
// exact substring/regex over the lowercased input, for determinism and
// testability. The translator is an ordered list of (pattern, effect)
// rules; rules are independent, several may fire on one query, and each
// contributes fields to a single accumulating predicate. New phrases
// are added by appending a rule, not by touching the matching loop.
//
// Recognized phrases:
//
//   - "single word" / "one word"        -> word_count = 1
//   - "palindrome" / "palindromic"      -> is_palindrome = true
//   - "strings longer than N"           -> min_length = N + 1
//   - "strings shorter than N" (N >= 1) -> max_length = N - 1
//   - "containing the letter C"         -> contains_character = C
package nlq

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/AleutianAI/stringvault/services/registry/query"
)

var (
	// ErrUnparseableQuery is returned when no recognized phrase pattern
	// matched the input. No predicate is produced and no scan runs.
	ErrUnparseableQuery = errors.New("unable to parse natural language query")

	// ErrConflictingFilters is returned when the derived predicate can
	// never match anything (min_length > max_length). Rejected up front
	// rather than silently returning empty results.
	ErrConflictingFilters = errors.New("conflicting length filters in query")
)

// rule pairs a lowercased-input pattern with the predicate fields it
// contributes when the pattern matches.
type rule struct {
	pattern *regexp.Regexp
	apply   func(match []string, pred *query.FilterPredicate)
}

// rules are evaluated in order against every query. They are not
// mutually exclusive.
var rules = []rule{
	{
		pattern: regexp.MustCompile(`(?:single|one) word`),
		apply: func(_ []string, pred *query.FilterPredicate) {
			one := 1
			pred.WordCount = &one
		},
	},
	{
		// Covers "palindrome", "palindromes" and "palindromic".
		pattern: regexp.MustCompile(`palindrom`),
		apply: func(_ []string, pred *query.FilterPredicate) {
			yes := true
			pred.IsPalindrome = &yes
		},
	},
	{
		// "strictly longer than N" means length >= N+1.
		pattern: regexp.MustCompile(`strings longer than (\d+)`),
		apply: func(match []string, pred *query.FilterPredicate) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				min := n + 1
				pred.MinLength = &min
			}
		},
	},
	{
		// "strictly shorter than N" means length <= N-1. Values are
		// never empty, so "shorter than 0" and "shorter than 1" can
		// match nothing and the rule does not fire for N < 1.
		pattern: regexp.MustCompile(`strings shorter than (\d+)`),
		apply: func(match []string, pred *query.FilterPredicate) {
			if n, err := strconv.Atoi(match[1]); err == nil && n >= 1 {
				max := n - 1
				pred.MaxLength = &max
			}
		},
	},
	{
		pattern: regexp.MustCompile(`containing the letter (\w)`),
		apply: func(match []string, pred *query.FilterPredicate) {
			ch := match[1]
			pred.ContainsCharacter = &ch
		},
	},
}

// Translate converts free text into a filter predicate.
//
// Matching is case-insensitive: the input is lowercased before the
// rules run, so "containing the letter X" yields "x". Returns
// ErrUnparseableQuery when no rule fires and ErrConflictingFilters
// when the accumulated predicate is contradictory.
func Translate(freeText string) (query.FilterPredicate, error) {
	lower := strings.ToLower(freeText)

	var pred query.FilterPredicate
	for _, r := range rules {
		if match := r.pattern.FindStringSubmatch(lower); match != nil {
			r.apply(match, &pred)
		}
	}

	if pred.Empty() {
		return query.FilterPredicate{}, ErrUnparseableQuery
	}
	if pred.MinLength != nil && pred.MaxLength != nil && *pred.MinLength > *pred.MaxLength {
		return query.FilterPredicate{}, ErrConflictingFilters
	}
	return pred, nil
}
