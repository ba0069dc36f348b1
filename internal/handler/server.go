// Package handler implements the HTTP transport for the Pokédex API.
// All handlers are methods on Server. Methods are split into files by concern
// (health.go, pokemon.go, openapi.go) but share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/pokedex/internal/service"
)

// PokemonServicer defines the use cases the Pokémon handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the store or the service layer.
type PokemonServicer interface {
	Create(ctx context.Context, req service.CreateRequest) (service.Response, error)
	Fetch(ctx context.Context, req service.FetchRequest) (service.Response, error)
	FetchAll(ctx context.Context) ([]service.Response, error)
	Delete(ctx context.Context, req service.DeleteRequest) error
}

// Server serves every API endpoint.
// Wire it in main.go via Handler(server).
type Server struct {
	pokemons PokemonServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(pokemons PokemonServicer) *Server {
	return &Server{pokemons: pokemons}
}

// Handler registers every route of s on a fresh chi router.
func Handler(s *Server) http.Handler {
	return HandlerFromMux(s, chi.NewRouter())
}

// HandlerFromMux registers every route of s on r and returns it.
// Use this when the caller has already installed middleware on r.
func HandlerFromMux(s *Server, r chi.Router) http.Handler {
	r.Get("/health", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Post("/", s.CreatePokemon)
	r.Get("/", s.FetchAllPokemons)
	r.Get("/{number}", s.FetchPokemon)
	r.Delete("/{number}", s.DeletePokemon)
	return r
}
