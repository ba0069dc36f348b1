package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/pokedex/internal/service"
)

// Pokemon is the JSON representation of a Pokédex entry, used for both
// the create request body and every response.
type Pokemon struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
}

// CreatePokemon handles POST /.
func (s *Server) CreatePokemon(w http.ResponseWriter, r *http.Request) {
	var body Pokemon
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorBody(w, http.StatusRequestEntityTooLarge, "too_large", "request body too large")
			return
		}
		badRequest(w)
		return
	}

	created, err := s.pokemons.Create(r.Context(), service.CreateRequest{
		Number: body.Number,
		Name:   body.Name,
		Types:  body.Types,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, responseToPokemon(created))
}

// FetchAllPokemons handles GET /.
func (s *Server) FetchAllPokemons(w http.ResponseWriter, r *http.Request) {
	all, err := s.pokemons.FetchAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := make([]Pokemon, len(all))
	for i, p := range all {
		data[i] = responseToPokemon(p)
	}
	writeJSON(w, http.StatusOK, data)
}

// FetchPokemon handles GET /{number}.
func (s *Server) FetchPokemon(w http.ResponseWriter, r *http.Request) {
	number, err := numberParam(r)
	if err != nil {
		badRequest(w)
		return
	}

	p, err := s.pokemons.Fetch(r.Context(), service.FetchRequest{Number: number})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, responseToPokemon(p))
}

// DeletePokemon handles DELETE /{number}.
// Success is a 200 with an empty body.
func (s *Server) DeletePokemon(w http.ResponseWriter, r *http.Request) {
	number, err := numberParam(r)
	if err != nil {
		badRequest(w)
		return
	}

	if err := s.pokemons.Delete(r.Context(), service.DeleteRequest{Number: number}); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// --- mapping helpers --------------------------------------------------------

// numberParam binds the {number} path segment as a simple-style integer.
func numberParam(r *http.Request) (int, error) {
	var number int
	err := runtime.BindStyledParameterWithOptions("simple", "number", chi.URLParam(r, "number"), &number,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return number, err
}

// responseToPokemon converts a service.Response into its JSON form.
// Types is never null in the output.
func responseToPokemon(p service.Response) Pokemon {
	types := p.Types
	if types == nil {
		types = []string{}
	}
	return Pokemon{Number: p.Number, Name: p.Name, Types: types}
}
