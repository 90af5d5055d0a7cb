// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package store holds string records in memory, keyed by content hash.
//
// The store lives for the process lifetime only; there is no
// persistence. Lookups and deletes are keyed by the raw string value
// itself (the store hashes it), not by a separate ID parameter.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Writes are mutually
// exclusive; reads are shared and never observe a partially-inserted
// or partially-deleted record. Records are immutable after creation,
// so snapshots may share record pointers with the store.
package store

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/AleutianAI/stringvault/services/registry/analysis"
	"github.com/AleutianAI/stringvault/services/registry/datatypes"
)

var (
	// ErrDuplicateContent is returned by Create when a record with the
	// same content hash already exists. The existing record is left
	// untouched; callers surface this as a conflict.
	ErrDuplicateContent = errors.New("string content already exists")

	// ErrNotFound is returned by FindByValue and Delete when no record
	// with the given content exists.
	ErrNotFound = errors.New("string record not found")
)

// RecordStore is the in-memory mapping from content hash to record.
//
// Construct with NewRecordStore. The zero value is not usable.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]*datatypes.StringRecord

	// order keeps insertion order so scans are stable. Callers get no
	// ordering guarantee; this only makes behavior reproducible.
	order []string
}

// NewRecordStore creates an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]*datatypes.StringRecord),
	}
}

// Create analyzes value, rejects duplicates, and inserts a new record.
//
// The caller is responsible for validating value first (non-empty,
// size cap). When a record with the same content hash already exists,
// Create returns ErrDuplicateContent and leaves the store unchanged.
//
// The returned record is immutable; CreatedAt is UTC truncated to
// second resolution.
func (s *RecordStore) Create(value string) (*datatypes.StringRecord, error) {
	props := analysis.Analyze(value)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[props.ContentHash]; exists {
		return nil, ErrDuplicateContent
	}

	rec := &datatypes.StringRecord{
		ID:         props.ContentHash,
		Value:      value,
		Properties: props,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)

	slog.Debug("stored string record", "id", rec.ID, "length", props.Length)
	return rec, nil
}

// FindByValue hashes the given raw text and looks the record up by that
// hash. Returns ErrNotFound when absent.
func (s *RecordStore) FindByValue(value string) (*datatypes.StringRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[analysis.Hash(value)]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Delete removes the record whose content equals value. Returns
// ErrNotFound when absent; a failed delete is a no-op on the store.
func (s *RecordStore) Delete(value string) error {
	hash := analysis.Hash(value)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[hash]; !ok {
		return ErrNotFound
	}
	delete(s.records, hash)
	for i, id := range s.order {
		if id == hash {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	slog.Debug("deleted string record", "id", hash)
	return nil
}

// All returns a snapshot of the current records in insertion order.
// The slice is a copy; the records it points to are immutable.
func (s *RecordStore) All() []*datatypes.StringRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*datatypes.StringRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Len returns the number of stored records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
