// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// CreateStringRequest is the body of POST /v1/strings.
//
// Value is deliberately not tagged binding:"required": an empty value
// must surface as the registry's own empty-value rejection, not as a
// generic binding failure.
type CreateStringRequest struct {
	Value string `json:"value"`
}

// ListStringsRequest carries the optional query-string filters of
// GET /v1/strings. Pointer fields distinguish "absent" from zero
// values; absent constraints impose no restriction.
type ListStringsRequest struct {
	IsPalindrome      *bool   `form:"is_palindrome"`
	MinLength         *int    `form:"min_length" binding:"omitempty,gte=0"`
	MaxLength         *int    `form:"max_length" binding:"omitempty,gte=0"`
	WordCount         *int    `form:"word_count" binding:"omitempty,gte=0"`
	ContainsCharacter *string `form:"contains_character" binding:"omitempty,len=1"`
}
