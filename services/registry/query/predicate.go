// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package query implements filter predicates and the scan engine that
// applies them to record snapshots.
//
// A FilterPredicate is a conjunction of independently-optional
// constraints: a record matches iff it satisfies every non-nil field,
// and the all-nil predicate matches everything. Both the structured
// list endpoint and the natural-language route evaluate records through
// the same Matches method, so matching semantics cannot drift between
// the two paths.
package query

import (
	"github.com/AleutianAI/stringvault/services/registry/datatypes"
)

// FilterPredicate holds the optional constraints a record is tested
// against. Nil fields impose no restriction.
//
// ContainsCharacter is matched against the keys of the derived
// character-frequency map, which is case-sensitive by construction.
// The map keys are exactly the distinct runes of the raw value, so the
// outcome equals raw-text membership today; pinning the check to the
// derived map keeps any future extension on one path visible on both
// routes.
type FilterPredicate struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// Matches reports whether rec satisfies every present constraint.
func (p FilterPredicate) Matches(rec *datatypes.StringRecord) bool {
	props := rec.Properties

	if p.IsPalindrome != nil && props.IsPalindrome != *p.IsPalindrome {
		return false
	}
	if p.MinLength != nil && props.Length < *p.MinLength {
		return false
	}
	if p.MaxLength != nil && props.Length > *p.MaxLength {
		return false
	}
	if p.WordCount != nil && props.WordCount != *p.WordCount {
		return false
	}
	if p.ContainsCharacter != nil {
		if _, ok := props.CharacterFrequency[*p.ContainsCharacter]; !ok {
			return false
		}
	}
	return true
}

// Empty reports whether no constraint is set. An empty predicate
// matches every record.
func (p FilterPredicate) Empty() bool {
	return p.IsPalindrome == nil &&
		p.MinLength == nil &&
		p.MaxLength == nil &&
		p.WordCount == nil &&
		p.ContainsCharacter == nil
}

// Applied echoes the non-nil constraints as a map, for the
// filters_applied field of list responses.
func (p FilterPredicate) Applied() map[string]any {
	applied := make(map[string]any)
	if p.IsPalindrome != nil {
		applied["is_palindrome"] = *p.IsPalindrome
	}
	if p.MinLength != nil {
		applied["min_length"] = *p.MinLength
	}
	if p.MaxLength != nil {
		applied["max_length"] = *p.MaxLength
	}
	if p.WordCount != nil {
		applied["word_count"] = *p.WordCount
	}
	if p.ContainsCharacter != nil {
		applied["contains_character"] = *p.ContainsCharacter
	}
	return applied
}
