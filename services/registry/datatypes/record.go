// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes defines the record model and request/response types
// for the string registry service.
//
// A StringRecord is immutable after creation: its properties are a pure
// function of its value, and its ID is the hex SHA-256 of the raw value
// bytes. Two records with equal values can never coexist in a store.
package datatypes

import "time"

// DerivedProperties holds every property the analysis package computes
// from a submitted value. Computed once at creation time and never
// recomputed or mutated afterwards.
//
// # Fields
//
//   - Length: rune count of the value.
//   - IsPalindrome: true iff the lowercased value reads the same
//     forwards and backwards. Whitespace and punctuation are kept.
//   - UniqueCharacters: count of distinct runes, case-sensitive.
//   - WordCount: whitespace-delimited token count.
//   - ContentHash: hex SHA-256 of the raw value bytes; doubles as the
//     record ID. Sensitive to casing, punctuation and whitespace.
//   - CharacterFrequency: occurrence count per distinct rune,
//     case-sensitive, keyed by the rune's string form.
type DerivedProperties struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"is_palindrome"`
	UniqueCharacters   int            `json:"unique_characters"`
	WordCount          int            `json:"word_count"`
	ContentHash        string         `json:"sha256_hash"`
	CharacterFrequency map[string]int `json:"character_frequency_map"`
}

// StringRecord is the stored unit: the raw submitted value, its derived
// properties, and creation metadata.
//
// ID always equals Properties.ContentHash. CreatedAt is UTC with
// second resolution.
type StringRecord struct {
	ID         string            `json:"id"`
	Value      string            `json:"value"`
	Properties DerivedProperties `json:"properties"`
	CreatedAt  time.Time         `json:"created_at"`
}
