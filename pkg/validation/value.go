// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides explicit precondition checks for
// registry inputs.
//
// These run before the analyzer or store are invoked, so a rejected
// input is always a no-op on the store. Transport-level binding tags
// cover request shape; the functions here carry the registry's own
// preconditions (non-empty value, size cap, single-character filter)
// as named, testable checks.
package validation

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// DefaultMaxValueBytes caps submitted values at 64 KiB unless the
// service is configured otherwise.
const DefaultMaxValueBytes = 64 * 1024

// ErrEmptyValue is returned for empty submissions. Empty strings are
// rejected before any record is created.
var ErrEmptyValue = errors.New("value cannot be empty")

// ValidateValue checks a value submitted for registration.
//
// maxBytes <= 0 disables the size cap. The cap is counted in bytes of
// the raw encoding, matching how the content hash is computed.
func ValidateValue(value string, maxBytes int) error {
	if value == "" {
		return ErrEmptyValue
	}
	if maxBytes > 0 && len(value) > maxBytes {
		return fmt.Errorf("value of %d bytes exceeds the %d byte limit", len(value), maxBytes)
	}
	return nil
}

// ValidateFilterCharacter checks a contains_character filter value:
// exactly one character, counted in runes so multi-byte characters
// are accepted.
func ValidateFilterCharacter(ch string) error {
	if n := utf8.RuneCountInString(ch); n != 1 {
		return fmt.Errorf("contains_character must be exactly one character, got %d", n)
	}
	return nil
}
