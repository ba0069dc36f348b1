package domain

import "fmt"

// PokemonType is one of the closed set of elemental types.
// The zero value is not a valid type; values only come from ParsePokemonType
// or the constants below.
type PokemonType int

const (
	TypeNormal PokemonType = iota + 1
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
)

// typeLabels maps every PokemonType to its canonical label.
// Adding a type means adding a constant above and an entry here.
var typeLabels = map[PokemonType]string{
	TypeNormal:   "Normal",
	TypeFire:     "Fire",
	TypeWater:    "Water",
	TypeElectric: "Electric",
	TypeGrass:    "Grass",
	TypeIce:      "Ice",
	TypeFighting: "Fighting",
	TypePoison:   "Poison",
	TypeGround:   "Ground",
	TypeFlying:   "Flying",
	TypePsychic:  "Psychic",
	TypeBug:      "Bug",
	TypeRock:     "Rock",
	TypeGhost:    "Ghost",
	TypeDragon:   "Dragon",
	TypeDark:     "Dark",
	TypeSteel:    "Steel",
	TypeFairy:    "Fairy",
}

// typesByLabel is the reverse of typeLabels, built once at init.
var typesByLabel = func() map[string]PokemonType {
	m := make(map[string]PokemonType, len(typeLabels))
	for t, label := range typeLabels {
		m[label] = t
	}
	return m
}()

// ParsePokemonType matches s against the canonical labels, case-sensitively.
func ParsePokemonType(s string) (PokemonType, error) {
	t, ok := typesByLabel[s]
	if !ok {
		return 0, fmt.Errorf("%w: unknown type %q", ErrValidation, s)
	}
	return t, nil
}

// String returns the canonical label, or "PokemonType(n)" for values outside the set.
func (t PokemonType) String() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("PokemonType(%d)", int(t))
}
