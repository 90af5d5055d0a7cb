// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package analysis derives string properties for the registry.
//
// Analyze is a pure function: no I/O, no side effects, identical output
// for identical input. The content hash is taken over the raw value
// bytes, never a normalized form, so casing, punctuation and whitespace
// all affect record identity.
//
// # Thread Safety
//
// Stateless and safe for concurrent use.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/AleutianAI/stringvault/services/registry/datatypes"
)

// Analyze computes the full derived property set for a value.
//
// Callers must validate the value first (non-empty, size cap); Analyze
// assumes a non-empty string and has no failure conditions of its own.
//
// The palindrome check is case-insensitive but does not strip
// whitespace or punctuation: "Racecar" is a palindrome, "race car"
// is not. Length and uniqueness are counted in runes, so multi-byte
// characters count once.
func Analyze(value string) datatypes.DerivedProperties {
	freq := make(map[string]int)
	for _, r := range value {
		freq[string(r)]++
	}

	return datatypes.DerivedProperties{
		Length:             utf8.RuneCountInString(value),
		IsPalindrome:       isPalindrome(strings.ToLower(value)),
		UniqueCharacters:   len(freq),
		WordCount:          len(strings.Fields(value)),
		ContentHash:        Hash(value),
		CharacterFrequency: freq,
	}
}

// Hash returns the hex SHA-256 digest of the raw value bytes.
//
// This is the registry's identity function: stores look records up by
// Hash(value), so it must stay in lockstep with the ContentHash field
// Analyze produces.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// isPalindrome reports whether s reads the same forwards and backwards,
// compared rune by rune.
func isPalindrome(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
