// Package repo contains the storage layer for the Pokédex API.
// Each resource has an interface that the service layer depends on and at
// least one implementation. No business rules live here, only storage and
// error mapping.
package repo

import (
	"context"

	"github.com/pkordes/pokedex/internal/domain"
)

// PokemonRepo defines the persistence operations for Pokémon.
// The service layer depends on this interface, not a concrete store,
// which allows the service to be unit-tested with a mock.
//
// Any error that is not domain.ErrConflict or domain.ErrNotFound wraps
// domain.ErrUnknown.
type PokemonRepo interface {
	// Insert stores a new Pokemon and returns it.
	// Returns domain.ErrConflict if a Pokemon with that number already exists.
	Insert(ctx context.Context, number domain.PokemonNumber, name domain.PokemonName, types domain.PokemonTypes) (domain.Pokemon, error)

	// FetchOne retrieves a Pokemon by number.
	// Returns domain.ErrNotFound if no Pokemon with that number exists.
	FetchOne(ctx context.Context, number domain.PokemonNumber) (domain.Pokemon, error)

	// FetchAll returns every stored Pokemon in insertion order.
	// The result is never nil.
	FetchAll(ctx context.Context) ([]domain.Pokemon, error)

	// Delete removes a Pokemon by number. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, number domain.PokemonNumber) error
}
