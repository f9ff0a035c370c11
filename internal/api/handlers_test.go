package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/frankasd12/NibbleCheck/internal/api"
	"github.com/frankasd12/NibbleCheck/internal/catalog"
	"github.com/frankasd12/NibbleCheck/internal/mocks"
	"github.com/frankasd12/NibbleCheck/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// helpers

func newTestCandidate(id int64, name string, status catalog.Severity, score float64) catalog.Candidate {
	return catalog.Candidate{
		FoodID:        id,
		CanonicalName: name,
		GroupName:     "test",
		Status:        status,
		Matched:       name,
		MatchedFrom:   catalog.FromCanonical,
		Score:         score,
	}
}

func setupRouter(t *testing.T) (*mocks.MockCatalog, http.Handler) {
	t.Helper()
	mockCat := mocks.NewMockCatalog(t)
	svc := service.New(mockCat, service.Config{Floor: 0.30, QueryTimeout: time.Second})
	router := api.NewRouter(svc, nil)
	return mockCat, router
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	return got["error"]
}

// ---------------------------------------------------------------------------
// GET /health
// ---------------------------------------------------------------------------

func TestHealth(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Ping(mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHealth_CatalogDown(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Ping(mock.Anything).Return(fmt.Errorf("%w: ping", catalog.ErrUnavailable))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "catalog unavailable", decodeError(t, rec))
}

// ---------------------------------------------------------------------------
// POST /ingredients/resolve
// ---------------------------------------------------------------------------

func TestResolve_Success(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Search(mock.Anything, "sugar", service.CandidateLimit).
		Return([]catalog.Candidate{newTestCandidate(1, "sugar", catalog.Safe, 1)}, nil)
	mockCat.EXPECT().Search(mock.Anything, "msg", service.CandidateLimit).
		Return([]catalog.Candidate{{
			FoodID: 2, CanonicalName: "monosodium glutamate", Status: catalog.Unsafe,
			Matched: "msg", MatchedFrom: catalog.FromSynonym, Score: 1,
		}}, nil)
	mockCat.EXPECT().Search(mock.Anything, "salt", service.CandidateLimit).
		Return([]catalog.Candidate{newTestCandidate(3, "salt", catalog.Safe, 0.9)}, nil)

	body := jsonBody(t, map[string]any{"text": "sugar, msg, salt"})
	req := httptest.NewRequest(http.MethodPost, "/ingredients/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got struct {
		Hits []struct {
			Token       string  `json:"token"`
			FoodID      int64   `json:"food_id"`
			Name        string  `json:"name"`
			Status      string  `json:"status"`
			MatchedFrom string  `json:"matched_from"`
			Score       float64 `json:"score"`
		} `json:"hits"`
		OverallStatus string `json:"overall_status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "UNSAFE", got.OverallStatus)
	require.Len(t, got.Hits, 3)
	assert.Equal(t, "msg", got.Hits[1].Token)
	assert.Equal(t, int64(2), got.Hits[1].FoodID)
	assert.Equal(t, "monosodium glutamate", got.Hits[1].Name)
	assert.Equal(t, "synonym", got.Hits[1].MatchedFrom)
	assert.Equal(t, 0.9, got.Hits[2].Score)
}

func TestResolve_LegacyFieldName(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Search(mock.Anything, "raisins", service.CandidateLimit).
		Return([]catalog.Candidate{newTestCandidate(4, "raisins", catalog.Unsafe, 1)}, nil)

	body := jsonBody(t, map[string]any{"ingredients_text": "Raisins"})
	req := httptest.NewRequest(http.MethodPost, "/ingredients/resolve", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"overall_status":"UNSAFE"`)
}

func TestResolve_NoMatchesReturnsEmptyHits(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Search(mock.Anything, "water", service.CandidateLimit).Return(nil, nil)

	body := jsonBody(t, map[string]any{"text": "water"})
	req := httptest.NewRequest(http.MethodPost, "/ingredients/resolve", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hits":[],"overall_status":"SAFE"}`, rec.Body.String())
}

func TestResolve_EmptyText(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	for _, text := range []string{"", "   "} {
		body := jsonBody(t, map[string]any{"text": text})
		req := httptest.NewRequest(http.MethodPost, "/ingredients/resolve", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "ingredients text is required")
	}
}

func TestResolve_InvalidBody(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/ingredients/resolve", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeError(t, rec))
}

func TestResolve_CatalogUnavailable(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Search(mock.Anything, mock.Anything, service.CandidateLimit).
		Return(nil, fmt.Errorf("%w: connection refused", catalog.ErrUnavailable))

	body := jsonBody(t, map[string]any{"text": "sugar, salt"})
	req := httptest.NewRequest(http.MethodPost, "/ingredients/resolve", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "resolve failed", decodeError(t, rec))
}

// ---------------------------------------------------------------------------
// GET /search
// ---------------------------------------------------------------------------

func TestSearch_Success(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Search(mock.Anything, "grape", 3).Return([]catalog.Candidate{
		newTestCandidate(5, "grapes", catalog.Unsafe, 0.8),
		newTestCandidate(6, "grapefruit", catalog.Caution, 0.1),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/search?q=grape&limit=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got service.SearchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "grape", got.Query)
	assert.Equal(t, 1, got.Count)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "grapes", got.Results[0].CanonicalName)
	assert.Equal(t, catalog.Unsafe, got.Results[0].Status)
}

func TestSearch_DefaultLimit(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Search(mock.Anything, "salt", service.DefaultSearchLimit).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/search?q=salt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"query":"salt","count":0,"results":[]}`, rec.Body.String())
}

func TestSearch_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
	}{
		{name: "missing q", url: "/search"},
		{name: "non-numeric limit", url: "/search?q=salt&limit=ten"},
		{name: "limit too small", url: "/search?q=salt&limit=0"},
		{name: "limit too large", url: "/search?q=salt&limit=51"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, router := setupRouter(t)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// ---------------------------------------------------------------------------
// GET /foods/{id}
// ---------------------------------------------------------------------------

func TestGetFood_Success(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	notes := "theobromine"
	mockCat.EXPECT().Food(mock.Anything, int64(7)).Return(catalog.Food{
		ID:            7,
		CanonicalName: "chocolate",
		GroupName:     "sweets",
		DefaultStatus: catalog.Unsafe,
		Notes:         &notes,
		Synonyms:      []string{"cocoa"},
		Rules:         []catalog.Rule{{ID: 1, FoodID: 7, RuleType: "dose", Details: map[string]any{"mg_per_kg": 20.0}}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/foods/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "chocolate", got["canonical_name"])
	assert.Equal(t, "UNSAFE", got["default_status"])
	assert.Equal(t, "theobromine", got["notes"])
	assert.Nil(t, got["sources"])
	assert.Equal(t, []any{"cocoa"}, got["synonyms"])
	assert.Len(t, got["rules"], 1)
}

func TestGetFood_NotFound(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Food(mock.Anything, int64(404)).
		Return(catalog.Food{}, fmt.Errorf("%w: id 404", catalog.ErrNotFound))

	req := httptest.NewRequest(http.MethodGet, "/foods/404", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "food not found", decodeError(t, rec))
}

func TestGetFood_InvalidID(t *testing.T) {
	t.Parallel()
	_, router := setupRouter(t)

	for _, id := range []string{"abc", "0", "-2"} {
		req := httptest.NewRequest(http.MethodGet, "/foods/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
	}
}

func TestGetFood_CatalogError(t *testing.T) {
	t.Parallel()
	mockCat, router := setupRouter(t)

	mockCat.EXPECT().Food(mock.Anything, int64(1)).Return(catalog.Food{}, errors.New("boom"))

	req := httptest.NewRequest(http.MethodGet, "/foods/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ---------------------------------------------------------------------------
// CORS
// ---------------------------------------------------------------------------

func TestCORSPreflight(t *testing.T) {
	t.Parallel()
	mockCat := mocks.NewMockCatalog(t)
	router := api.NewRouter(service.New(mockCat, service.Config{Floor: 0.3}), []string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/ingredients/resolve", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/ingredients/resolve", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
