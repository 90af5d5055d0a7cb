// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the in-memory record store

package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/stringvault/services/registry/analysis"
)

func TestCreate_RoundTrip(t *testing.T) {
	s := NewRecordStore()

	created, err := s.Create("level")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "level", created.Value)
	assert.Equal(t, analysis.Analyze("level"), created.Properties)
	assert.Equal(t, created.Properties.ContentHash, created.ID)
	assert.Equal(t, time.UTC, created.CreatedAt.Location())
	assert.Zero(t, created.CreatedAt.Nanosecond(), "second resolution")

	found, err := s.FindByValue("level")
	require.NoError(t, err)
	assert.Same(t, created, found)
}

func TestCreate_RejectsDuplicates(t *testing.T) {
	s := NewRecordStore()

	first, err := s.Create("hello")
	require.NoError(t, err)

	second, err := s.Create("hello")
	assert.ErrorIs(t, err, ErrDuplicateContent)
	assert.Nil(t, second)
	assert.Equal(t, 1, s.Len(), "failed create must not change the store")

	// The original record is untouched.
	found, err := s.FindByValue("hello")
	require.NoError(t, err)
	assert.Same(t, first, found)
}

func TestCreate_IdentityIsCaseSensitive(t *testing.T) {
	s := NewRecordStore()

	_, err := s.Create("hello")
	require.NoError(t, err)
	_, err = s.Create("Hello")
	require.NoError(t, err, "different casing is different content")

	assert.Equal(t, 2, s.Len())
}

func TestFindByValue_NotFound(t *testing.T) {
	s := NewRecordStore()
	rec, err := s.FindByValue("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, rec)
}

func TestDelete_RemovesRecord(t *testing.T) {
	s := NewRecordStore()
	_, err := s.Create("ephemeral")
	require.NoError(t, err)

	require.NoError(t, s.Delete("ephemeral"))

	_, err = s.FindByValue("ephemeral")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestDelete_NotFound(t *testing.T) {
	s := NewRecordStore()
	_, err := s.Create("kept")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete("missing"), ErrNotFound)
	assert.Equal(t, 1, s.Len(), "failed delete must not change the store")
}

func TestAll_SnapshotInsertionOrder(t *testing.T) {
	s := NewRecordStore()
	for _, v := range []string{"first", "second", "third"} {
		_, err := s.Create(v)
		require.NoError(t, err)
	}
	require.NoError(t, s.Delete("second"))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Value)
	assert.Equal(t, "third", all[1].Value)
}

func TestCreate_ConcurrentSameContent(t *testing.T) {
	s := NewRecordStore()

	const workers = 32
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Create("contended value")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateContent)
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent create wins")
	assert.Equal(t, 1, s.Len())
}

func TestStore_ConcurrentMixedOperations(t *testing.T) {
	s := NewRecordStore()
	_, err := s.Create("stable")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.Create("churn")
				_, _ = s.FindByValue("stable")
				_ = s.Delete("churn")
				for _, rec := range s.All() {
					assert.NotEmpty(t, rec.Value)
					assert.Equal(t, rec.Properties.ContentHash, rec.ID)
				}
			}
		}()
	}
	wg.Wait()

	found, err := s.FindByValue("stable")
	require.NoError(t, err)
	assert.Equal(t, "stable", found.Value)
}
