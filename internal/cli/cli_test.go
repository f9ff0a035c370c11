package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/frankasd12/NibbleCheck/internal/api"
	"github.com/frankasd12/NibbleCheck/internal/catalog"
	"github.com/frankasd12/NibbleCheck/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useFileCatalog(t *testing.T) {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	t.Setenv("CATALOG_FILE", path)
	t.Setenv("REDIS_URL", "")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("SIMILARITY_FLOOR", "0.5")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "search", "sugar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestResolveText(t *testing.T) {
	useFileCatalog(t)

	out, err := execute(t, "resolve", "Sugar, SALT; xylitol 2%")
	require.NoError(t, err)
	assert.Contains(t, out, "overall: ")
	assert.Contains(t, out, "UNSAFE")
	assert.Contains(t, out, "sugar")
	assert.Contains(t, out, "xylitol")
}

func TestResolveJSON(t *testing.T) {
	useFileCatalog(t)

	out, err := execute(t, "--format", "json", "resolve", "sucrose, salt")
	require.NoError(t, err)

	var res service.Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Hits, 2)
	assert.Equal(t, "sucrose", res.Hits[0].Token)
	assert.Equal(t, int64(1), res.Hits[0].FoodID)
	assert.Equal(t, catalog.FromSynonym, res.Hits[0].MatchedFrom)
	assert.Equal(t, catalog.Caution, res.OverallStatus)
}

func TestResolveBlankInput(t *testing.T) {
	useFileCatalog(t)

	_, err := execute(t, "resolve", "   ")
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestSearchJSON(t *testing.T) {
	useFileCatalog(t)

	out, err := execute(t, "--format", "json", "search", "--limit", "1", "sugar")
	require.NoError(t, err)

	var res service.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "sugar", res.Results[0].CanonicalName)
	assert.InDelta(t, 1.0, res.Results[0].Score, 1e-9)
}

func TestSearchInvalidLimit(t *testing.T) {
	useFileCatalog(t)

	_, err := execute(t, "search", "--limit", "99", "sugar")
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestFoodText(t *testing.T) {
	useFileCatalog(t)

	out, err := execute(t, "food", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "xylitol")
	assert.Contains(t, out, "birch sugar")
	assert.Contains(t, out, "ASPCA")
	assert.Contains(t, out, "any_amount")
}

func TestFoodNotFound(t *testing.T) {
	useFileCatalog(t)

	_, err := execute(t, "food", "404")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestFoodInvalidID(t *testing.T) {
	_, err := execute(t, "food", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}

func TestResolveAgainstServer(t *testing.T) {
	mem, err := catalog.LoadFile(filepath.Join("testdata", "catalog.yaml"), 0.5)
	require.NoError(t, err)
	svc := service.New(mem, service.Config{Floor: 0.5})
	srv := httptest.NewServer(api.NewRouter(svc, nil))
	t.Cleanup(srv.Close)

	out, err := execute(t, "--server", srv.URL, "--format", "json", "resolve", "birch sugar")
	require.NoError(t, err)

	var res service.Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Hits, 1)
	assert.Equal(t, int64(3), res.Hits[0].FoodID)
	assert.Equal(t, catalog.Unsafe, res.OverallStatus)
}
