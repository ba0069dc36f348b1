// Package domain contains the core value types for the Pokédex API.
// Every type here is built through a constructor that validates raw input,
// so a value that exists is always valid. This package has no dependencies
// on the rest of the application.
package domain

import "fmt"

// Numbers are valid strictly between these bounds.
const (
	minPokemonNumber = 0
	maxPokemonNumber = 899
)

// PokemonNumber is the national Pokédex number and the identity of a Pokemon.
type PokemonNumber struct {
	n int
}

// NewPokemonNumber validates n and returns it as a PokemonNumber.
// Returns an error wrapping ErrValidation unless 0 < n < 899.
func NewPokemonNumber(n int) (PokemonNumber, error) {
	if n <= minPokemonNumber || n >= maxPokemonNumber {
		return PokemonNumber{}, fmt.Errorf("%w: number %d is out of range (%d, %d)",
			ErrValidation, n, minPokemonNumber, maxPokemonNumber)
	}
	return PokemonNumber{n: n}, nil
}

// Int returns the raw number.
func (n PokemonNumber) Int() int {
	return n.n
}

// PokemonName is a non-empty display name. It is stored exactly as given.
type PokemonName struct {
	s string
}

// NewPokemonName returns an error wrapping ErrValidation when s is empty.
func NewPokemonName(s string) (PokemonName, error) {
	if s == "" {
		return PokemonName{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	return PokemonName{s: s}, nil
}

func (n PokemonName) String() string {
	return n.s
}

// PokemonTypes is the ordered, non-empty list of a Pokemon's types.
// Duplicates are kept as given.
type PokemonTypes struct {
	ts []PokemonType
}

// NewPokemonTypes parses every label in ts, in order.
// The first unknown label aborts construction; an empty ts is rejected.
func NewPokemonTypes(ts []string) (PokemonTypes, error) {
	if len(ts) == 0 {
		return PokemonTypes{}, fmt.Errorf("%w: at least one type is required", ErrValidation)
	}

	parsed := make([]PokemonType, 0, len(ts))
	for _, raw := range ts {
		t, err := ParsePokemonType(raw)
		if err != nil {
			return PokemonTypes{}, err
		}
		parsed = append(parsed, t)
	}
	return PokemonTypes{ts: parsed}, nil
}

// Types returns a copy of the parsed types.
func (p PokemonTypes) Types() []PokemonType {
	out := make([]PokemonType, len(p.ts))
	copy(out, p.ts)
	return out
}

// Strings returns the canonical labels in their original order.
func (p PokemonTypes) Strings() []string {
	out := make([]string, len(p.ts))
	for i, t := range p.ts {
		out[i] = t.String()
	}
	return out
}

// Pokemon is a single Pokédex entry.
// Number is its identity and never changes once the entry is stored.
type Pokemon struct {
	Number PokemonNumber
	Name   PokemonName
	Types  PokemonTypes
}

// NewPokemon assembles a Pokemon from already validated values.
func NewPokemon(number PokemonNumber, name PokemonName, types PokemonTypes) Pokemon {
	return Pokemon{
		Number: number,
		Name:   name,
		Types:  PokemonTypes{ts: types.Types()},
	}
}
