// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the string registry handlers

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/stringvault/pkg/validation"
	"github.com/AleutianAI/stringvault/services/registry/datatypes"
	"github.com/AleutianAI/stringvault/services/registry/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter wires the handlers the way routes.SetupRoutes does, but
// against a fresh store per test.
func testRouter(s *store.RecordStore) *gin.Engine {
	router := gin.New()
	v1 := router.Group("/v1")
	v1.POST("/strings", CreateString(s, validation.DefaultMaxValueBytes))
	v1.GET("/strings", ListStrings(s))
	v1.GET("/strings/filter-by-natural-language", FilterByNaturalLanguage(s))
	v1.GET("/strings/:value", GetString(s))
	v1.DELETE("/strings/:value", DeleteString(s))
	return router
}

func createString(t *testing.T, router *gin.Engine, value string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"value": value})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/strings", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Create
// =============================================================================

func TestCreateString_Success(t *testing.T) {
	router := testRouter(store.NewRecordStore())

	w := createString(t, router, "level")
	require.Equal(t, http.StatusCreated, w.Code)

	var rec datatypes.StringRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

	assert.Equal(t, "level", rec.Value)
	assert.Equal(t, rec.Properties.ContentHash, rec.ID)
	assert.Len(t, rec.ID, 64)
	assert.Equal(t, 5, rec.Properties.Length)
	assert.True(t, rec.Properties.IsPalindrome)
	assert.Equal(t, 1, rec.Properties.WordCount)
	assert.Equal(t, 3, rec.Properties.UniqueCharacters)
	assert.Equal(t, map[string]int{"l": 2, "e": 2, "v": 1}, rec.Properties.CharacterFrequency)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestCreateString_EmptyValueRejected(t *testing.T) {
	s := store.NewRecordStore()
	router := testRouter(s)

	w := createString(t, router, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty")
	assert.Equal(t, 0, s.Len(), "no record created")
}

func TestCreateString_MalformedBodyRejected(t *testing.T) {
	router := testRouter(store.NewRecordStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/strings", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateString_DuplicateConflict(t *testing.T) {
	s := store.NewRecordStore()
	router := testRouter(s)

	require.Equal(t, http.StatusCreated, createString(t, router, "hello").Code)

	w := createString(t, router, "hello")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
	assert.Equal(t, 1, s.Len(), "store unchanged by failed create")
}

// =============================================================================
// Get
// =============================================================================

func TestGetString_RoundTrip(t *testing.T) {
	router := testRouter(store.NewRecordStore())
	createString(t, router, "racecar")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/strings/racecar", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rec datatypes.StringRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "racecar", rec.Value)
	assert.True(t, rec.Properties.IsPalindrome)
}

func TestGetString_ValueWithSpaces(t *testing.T) {
	router := testRouter(store.NewRecordStore())
	createString(t, router, "two words")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/strings/"+url.PathEscape("two words"), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rec datatypes.StringRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "two words", rec.Value)
	assert.Equal(t, 2, rec.Properties.WordCount)
}

func TestGetString_NotFound(t *testing.T) {
	router := testRouter(store.NewRecordStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/strings/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =============================================================================
// List
// =============================================================================

type listResponse struct {
	Data           []datatypes.StringRecord `json:"data"`
	Count          int                      `json:"count"`
	FiltersApplied map[string]any           `json:"filters_applied"`
}

func list(t *testing.T, router *gin.Engine, rawQuery string) listResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/strings?"+rawQuery, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListStrings_NoFiltersReturnsEverything(t *testing.T) {
	router := testRouter(store.NewRecordStore())
	for _, v := range []string{"level", "hello", "noon"} {
		createString(t, router, v)
	}

	resp := list(t, router, "")
	assert.Equal(t, 3, resp.Count)
	assert.Len(t, resp.Data, 3)
	assert.Empty(t, resp.FiltersApplied)
}

func TestListStrings_Filters(t *testing.T) {
	router := testRouter(store.NewRecordStore())
	for _, v := range []string{"level", "hello world", "noon", "abc"} {
		createString(t, router, v)
	}

	tests := []struct {
		name       string
		query      string
		wantValues []string
	}{
		{"palindromes", "is_palindrome=true", []string{"level", "noon"}},
		{"non-palindromes", "is_palindrome=false", []string{"hello world", "abc"}},
		{"min length", "min_length=5", []string{"level", "hello world"}},
		{"max length", "max_length=4", []string{"noon", "abc"}},
		{"word count", "word_count=2", []string{"hello world"}},
		{"contains character", "contains_character=l", []string{"level", "hello world"}},
		{"combined", "is_palindrome=true&min_length=5", []string{"level"}},
		{"no matches is valid", "min_length=100", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := list(t, router, tt.query)
			var values []string
			for _, rec := range resp.Data {
				values = append(values, rec.Value)
			}
			assert.Equal(t, tt.wantValues, values)
			assert.Equal(t, len(tt.wantValues), resp.Count)
		})
	}
}

func TestListStrings_FiltersAppliedEcho(t *testing.T) {
	router := testRouter(store.NewRecordStore())
	createString(t, router, "level")

	resp := list(t, router, "is_palindrome=true&min_length=2")
	assert.Equal(t, map[string]any{
		"is_palindrome": true,
		"min_length":    float64(2),
	}, resp.FiltersApplied)
}

func TestListStrings_InvalidParamsRejected(t *testing.T) {
	router := testRouter(store.NewRecordStore())

	for _, q := range []string{
		"min_length=-1",
		"word_count=-3",
		"min_length=abc",
		"contains_character=ab",
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/v1/strings?"+q, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", q)
	}
}

// =============================================================================
// Delete
// =============================================================================

func TestDeleteString_RemovesRecord(t *testing.T) {
	s := store.NewRecordStore()
	router := testRouter(s)
	createString(t, router, "ephemeral")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/v1/strings/ephemeral", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/v1/strings/ephemeral", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, s.Len())
}

func TestDeleteString_NotFound(t *testing.T) {
	router := testRouter(store.NewRecordStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/v1/strings/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =============================================================================
// End to end
// =============================================================================

func TestRegistry_EndToEnd(t *testing.T) {
	router := testRouter(store.NewRecordStore())

	w := createString(t, router, "level")
	require.Equal(t, http.StatusCreated, w.Code)

	var rec datatypes.StringRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, 5, rec.Properties.Length)
	assert.True(t, rec.Properties.IsPalindrome)
	assert.Equal(t, 1, rec.Properties.WordCount)
	assert.Equal(t, 3, rec.Properties.UniqueCharacters)

	included := list(t, router, "is_palindrome=true")
	require.Equal(t, 1, included.Count)
	assert.Equal(t, "level", included.Data[0].Value)

	excluded := list(t, router, "min_length=6")
	assert.Equal(t, 0, excluded.Count)
}
