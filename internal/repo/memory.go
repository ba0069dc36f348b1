package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkordes/pokedex/internal/domain"
)

// errPoisoned is returned by every operation after a critical section panicked.
var errPoisoned = fmt.Errorf("%w: store poisoned by an earlier panic", domain.ErrUnknown)

// errForced is returned by every operation of a repo built WithForcedFailure.
var errForced = fmt.Errorf("%w: forced failure", domain.ErrUnknown)

// MemoryOption configures a memory-backed PokemonRepo.
type MemoryOption func(*memPokemonRepo)

// WithForcedFailure makes every operation fail with domain.ErrUnknown
// without touching storage. Used to exercise failure paths in tests.
func WithForcedFailure() MemoryOption {
	return func(r *memPokemonRepo) { r.failing = true }
}

// memPokemonRepo is the in-memory implementation of PokemonRepo.
// A single mutex guards the map and the insertion-order index; every
// operation holds it for its whole check-then-act sequence.
type memPokemonRepo struct {
	failing bool

	mu       sync.Mutex
	poisoned bool
	byNumber map[domain.PokemonNumber]domain.Pokemon
	order    []domain.PokemonNumber
}

// NewMemoryPokemonRepo constructs an empty PokemonRepo that lives for the
// lifetime of the process. It is safe for concurrent use.
func NewMemoryPokemonRepo(opts ...MemoryOption) PokemonRepo {
	r := &memPokemonRepo{
		byNumber: make(map[domain.PokemonNumber]domain.Pokemon),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Insert stores a new Pokemon unless its number is already taken.
func (r *memPokemonRepo) Insert(_ context.Context, number domain.PokemonNumber, name domain.PokemonName, types domain.PokemonTypes) (domain.Pokemon, error) {
	if r.failing {
		return domain.Pokemon{}, fmt.Errorf("repo.PokemonRepo.Insert: %w", errForced)
	}

	var created domain.Pokemon
	err := r.withLock(func() error {
		if _, exists := r.byNumber[number]; exists {
			return fmt.Errorf("%w: number %d is already registered", domain.ErrConflict, number.Int())
		}
		created = domain.NewPokemon(number, name, types)
		r.byNumber[number] = created
		r.order = append(r.order, number)
		return nil
	})
	if err != nil {
		return domain.Pokemon{}, fmt.Errorf("repo.PokemonRepo.Insert: %w", err)
	}
	return created, nil
}

// FetchOne looks up a Pokemon by number.
func (r *memPokemonRepo) FetchOne(_ context.Context, number domain.PokemonNumber) (domain.Pokemon, error) {
	if r.failing {
		return domain.Pokemon{}, fmt.Errorf("repo.PokemonRepo.FetchOne: %w", errForced)
	}

	var found domain.Pokemon
	err := r.withLock(func() error {
		p, ok := r.byNumber[number]
		if !ok {
			return domain.ErrNotFound
		}
		found = p
		return nil
	})
	if err != nil {
		return domain.Pokemon{}, fmt.Errorf("repo.PokemonRepo.FetchOne: %w", err)
	}
	return found, nil
}

// FetchAll returns a snapshot of the store in insertion order.
func (r *memPokemonRepo) FetchAll(_ context.Context) ([]domain.Pokemon, error) {
	if r.failing {
		return nil, fmt.Errorf("repo.PokemonRepo.FetchAll: %w", errForced)
	}

	var all []domain.Pokemon
	err := r.withLock(func() error {
		all = make([]domain.Pokemon, 0, len(r.order))
		for _, n := range r.order {
			all = append(all, r.byNumber[n])
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repo.PokemonRepo.FetchAll: %w", err)
	}
	return all, nil
}

// Delete removes a Pokemon by number.
func (r *memPokemonRepo) Delete(_ context.Context, number domain.PokemonNumber) error {
	if r.failing {
		return fmt.Errorf("repo.PokemonRepo.Delete: %w", errForced)
	}

	err := r.withLock(func() error {
		if _, ok := r.byNumber[number]; !ok {
			return domain.ErrNotFound
		}
		delete(r.byNumber, number)
		if i := slices.Index(r.order, number); i >= 0 {
			r.order = slices.Delete(r.order, i, i+1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.PokemonRepo.Delete: %w", err)
	}
	return nil
}

// withLock runs fn while holding the mutex.
// A panic inside fn poisons the store before it propagates.
func (r *memPokemonRepo) withLock(fn func() error) error {
	r.mu.Lock()
	defer r.unlock()

	if r.poisoned {
		return errPoisoned
	}
	return fn()
}

func (r *memPokemonRepo) unlock() {
	if p := recover(); p != nil {
		r.poisoned = true
		r.mu.Unlock()
		panic(p)
	}
	r.mu.Unlock()
}
