package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pokedex/internal/handler"
	"github.com/pkordes/pokedex/internal/repo"
	"github.com/pkordes/pokedex/internal/service"
)

// newMemoryHandler wires the full stack over a fresh in-memory store.
func newMemoryHandler(opts ...repo.MemoryOption) http.Handler {
	svc := service.NewPokemonService(repo.NewMemoryPokemonRepo(opts...))
	return handler.Handler(handler.NewServer(svc))
}

func TestPokedexLifecycle(t *testing.T) {
	h := newMemoryHandler()
	pikachu := map[string]any{"number": 25, "name": "Pikachu", "types": []string{"Electric"}}

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/25", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "fetch before insert")

	rec = serve(h, httptest.NewRequest(http.MethodPost, "/", jsonBody(t, pikachu)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"number":25,"name":"Pikachu","types":["Electric"]}`, rec.Body.String())

	rec = serve(h, httptest.NewRequest(http.MethodPost, "/",
		jsonBody(t, map[string]any{"number": 25, "name": "Raichu", "types": []string{"Electric"}})))
	assert.Equal(t, http.StatusConflict, rec.Code, "second insert with the same number")

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var all []handler.Pokemon
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	assert.Len(t, all, 1)

	rec = serve(h, httptest.NewRequest(http.MethodDelete, "/25", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/25", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "fetch after delete")

	rec = serve(h, httptest.NewRequest(http.MethodDelete, "/25", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "delete twice")
}

func TestCreatePokemon_400_NumberZero(t *testing.T) {
	h := newMemoryHandler()

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/",
		jsonBody(t, map[string]any{"number": 0, "name": "X", "types": []string{"Fire"}})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForcedFailure_500Everywhere(t *testing.T) {
	h := newMemoryHandler(repo.WithForcedFailure())

	requests := []*http.Request{
		httptest.NewRequest(http.MethodPost, "/",
			jsonBody(t, map[string]any{"number": 25, "name": "Pikachu", "types": []string{"Electric"}})),
		httptest.NewRequest(http.MethodGet, "/", nil),
		httptest.NewRequest(http.MethodGet, "/25", nil),
		httptest.NewRequest(http.MethodDelete, "/25", nil),
	}

	for _, req := range requests {
		rec := serve(h, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, "%s %s", req.Method, req.URL.Path)
	}
}
