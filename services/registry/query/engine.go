// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package query

import (
	"github.com/AleutianAI/stringvault/services/registry/datatypes"
)

// Result is the outcome of applying a predicate to a record snapshot.
//
// Count always equals len(Matches). FiltersApplied echoes exactly the
// constraints that were non-nil in the evaluated predicate.
type Result struct {
	Matches        []*datatypes.StringRecord
	Count          int
	FiltersApplied map[string]any
}

// Run scans every record exactly once, in the order given, and collects
// those matching the predicate. The snapshot order is preserved in
// Matches.
func Run(records []*datatypes.StringRecord, pred FilterPredicate) Result {
	matches := make([]*datatypes.StringRecord, 0, len(records))
	for _, rec := range records {
		if pred.Matches(rec) {
			matches = append(matches, rec)
		}
	}
	return Result{
		Matches:        matches,
		Count:          len(matches),
		FiltersApplied: pred.Applied(),
	}
}
