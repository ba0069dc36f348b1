// Package service contains the use cases of the Pokédex API.
// Services turn raw input into domain values, call the repo exactly once,
// and hand back a raw view of the result. No storage details live here;
// services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/pkordes/pokedex/internal/domain"
	"github.com/pkordes/pokedex/internal/repo"
)

// CreateRequest is the raw input of Create.
type CreateRequest struct {
	Number int
	Name   string
	Types  []string
}

// FetchRequest is the raw input of Fetch.
type FetchRequest struct {
	Number int
}

// DeleteRequest is the raw input of Delete.
type DeleteRequest struct {
	Number int
}

// Response is the raw view of a stored Pokemon.
type Response struct {
	Number int
	Name   string
	Types  []string
}

// PokemonService implements the create, fetch, fetch-all and delete use cases.
type PokemonService struct {
	repo repo.PokemonRepo
}

// NewPokemonService constructs a PokemonService backed by the provided PokemonRepo.
func NewPokemonService(r repo.PokemonRepo) *PokemonService {
	return &PokemonService{repo: r}
}

// Create validates every field of req and stores the new Pokemon.
// All fields are checked before deciding; any failure yields domain.ErrValidation.
// Errors: domain.ErrValidation, domain.ErrConflict, domain.ErrUnknown.
func (s *PokemonService) Create(ctx context.Context, req CreateRequest) (Response, error) {
	var result *multierror.Error

	number, err := domain.NewPokemonNumber(req.Number)
	if err != nil {
		result = multierror.Append(result, err)
	}
	name, err := domain.NewPokemonName(req.Name)
	if err != nil {
		result = multierror.Append(result, err)
	}
	types, err := domain.NewPokemonTypes(req.Types)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if result != nil {
		result.ErrorFormat = joinErrors
		return Response{}, fmt.Errorf("service.PokemonService.Create: %w", result.ErrorOrNil())
	}

	created, err := s.repo.Insert(ctx, number, name, types)
	if err != nil {
		return Response{}, fmt.Errorf("service.PokemonService.Create: %w", classify(err, domain.ErrConflict))
	}
	return toResponse(created), nil
}

// Fetch returns a single Pokemon by number.
// Errors: domain.ErrValidation, domain.ErrNotFound, domain.ErrUnknown.
func (s *PokemonService) Fetch(ctx context.Context, req FetchRequest) (Response, error) {
	number, err := domain.NewPokemonNumber(req.Number)
	if err != nil {
		return Response{}, fmt.Errorf("service.PokemonService.Fetch: %w", err)
	}

	p, err := s.repo.FetchOne(ctx, number)
	if err != nil {
		return Response{}, fmt.Errorf("service.PokemonService.Fetch: %w", classify(err, domain.ErrNotFound))
	}
	return toResponse(p), nil
}

// FetchAll returns every stored Pokemon in insertion order.
// The result is never nil. Errors: domain.ErrUnknown.
func (s *PokemonService) FetchAll(ctx context.Context) ([]Response, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PokemonService.FetchAll: %w", classify(err))
	}

	out := make([]Response, len(all))
	for i, p := range all {
		out[i] = toResponse(p)
	}
	return out, nil
}

// Delete removes a Pokemon by number.
// Errors: domain.ErrValidation, domain.ErrNotFound, domain.ErrUnknown.
func (s *PokemonService) Delete(ctx context.Context, req DeleteRequest) error {
	number, err := domain.NewPokemonNumber(req.Number)
	if err != nil {
		return fmt.Errorf("service.PokemonService.Delete: %w", err)
	}

	if err := s.repo.Delete(ctx, number); err != nil {
		return fmt.Errorf("service.PokemonService.Delete: %w", classify(err, domain.ErrNotFound))
	}
	return nil
}

// classify keeps err as is when it already carries domain.ErrUnknown or one of
// the expected kinds; anything else is reported as domain.ErrUnknown.
func classify(err error, expected ...error) error {
	if errors.Is(err, domain.ErrUnknown) {
		return err
	}
	for _, kind := range expected {
		if errors.Is(err, kind) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrUnknown, err)
}

// joinErrors renders aggregated validation failures on one line.
func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// toResponse converts a stored Pokemon into its raw view.
func toResponse(p domain.Pokemon) Response {
	return Response{
		Number: p.Number.Int(),
		Name:   p.Name.String(),
		Types:  p.Types.Strings(),
	}
}
