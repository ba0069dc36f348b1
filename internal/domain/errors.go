package domain

import "errors"

// ErrValidation is returned when raw input fails to construct a domain value
// (number out of range, empty name, unknown type).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrNotFound is returned by repo and service functions when no Pokémon with
// the requested number is stored.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when inserting a Pokémon whose number is already taken.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnknown is an opaque storage failure unrelated to the input.
// It is never retried. Handlers should map this to HTTP 500.
var ErrUnknown = errors.New("unknown error")
