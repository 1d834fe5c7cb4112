// Package board defines occupants, immutable configurations and moves
// for the board subpackage of github.com/katalvlaran/burrow.
package board

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/burrow/diagram"
)

// Sentinel errors for configurations and parsing.
var (
	// ErrSharedLocation indicates two occupants placed on the same cell.
	ErrSharedLocation = errors.New("board: two occupants share a location")
	// ErrOccupantCount indicates a kind whose occupant count differs from the room depth.
	ErrOccupantCount = errors.New("board: occupant count does not match room depth")
	// ErrOffFloor indicates an occupant placed on a wall or outside the diagram.
	ErrOffFloor = errors.New("board: occupant is not on a floor cell")
)

// Occupant is one amphipod: its kind and where it stands.
type Occupant struct {
	Kind diagram.Kind
	Loc  diagram.Coordinate
}

// String formats o as "A(row,col)".
func (o Occupant) String() string {
	return fmt.Sprintf("%c%s", o.Kind.Glyph(), o.Loc)
}

func compareOccupants(a, b Occupant) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	if a.Loc.Row != b.Loc.Row {
		return a.Loc.Row - b.Loc.Row
	}
	return a.Loc.Col - b.Loc.Col
}

// Configuration is an immutable snapshot of every occupant. Occupants are
// kept sorted by kind, row and column, so two configurations holding the
// same set have the same Key.
type Configuration struct {
	occupants []Occupant
	key       string
}

// NewConfiguration builds a configuration from occupants in any order.
// Returns ErrSharedLocation if two occupants stand on the same cell.
func NewConfiguration(occupants ...Occupant) (Configuration, error) {
	occ := slices.Clone(occupants)
	slices.SortFunc(occ, compareOccupants)
	seen := make(map[diagram.Coordinate]struct{}, len(occ))
	for _, o := range occ {
		if _, dup := seen[o.Loc]; dup {
			return Configuration{}, fmt.Errorf("%w: %s", ErrSharedLocation, o.Loc)
		}
		seen[o.Loc] = struct{}{}
	}
	return newSorted(occ), nil
}

// newSorted wraps an already sorted, collision-free slice it takes ownership of.
func newSorted(occ []Occupant) Configuration {
	return Configuration{occupants: occ, key: encodeKey(occ)}
}

// encodeKey packs each occupant into three bytes: kind, row, column.
// Burrow coordinates always fit in a byte.
func encodeKey(occ []Occupant) string {
	buf := make([]byte, 0, 3*len(occ))
	for _, o := range occ {
		buf = append(buf, byte(o.Kind), byte(o.Loc.Row), byte(o.Loc.Col))
	}
	return string(buf)
}

// Occupants returns a copy of the occupants in canonical order.
func (c Configuration) Occupants() []Occupant {
	return slices.Clone(c.occupants)
}

// Len returns the number of occupants.
func (c Configuration) Len() int { return len(c.occupants) }

// Key returns the canonical encoding of the occupant set. Equal sets have
// equal keys; it is the search's visited-map key.
func (c Configuration) Key() string { return c.key }

// Hash returns a stable 64-bit hash of Key.
func (c Configuration) Hash() uint64 { return xxhash.Sum64String(c.key) }

// Equal reports set equality of the two configurations' occupants.
func (c Configuration) Equal(o Configuration) bool { return c.key == o.key }

// Contains reports whether o is one of c's occupants.
func (c Configuration) Contains(o Occupant) bool {
	_, found := slices.BinarySearchFunc(c.occupants, o, compareOccupants)
	return found
}

// Move returns a new configuration with o relocated to dst. c is unchanged.
// The caller guarantees o is in c and dst is free.
func (c Configuration) Move(o Occupant, dst diagram.Coordinate) Configuration {
	occ := make([]Occupant, 0, len(c.occupants))
	moved := Occupant{Kind: o.Kind, Loc: dst}
	for _, x := range c.occupants {
		if x != o {
			occ = append(occ, x)
		}
	}
	i, _ := slices.BinarySearchFunc(occ, moved, compareOccupants)
	occ = slices.Insert(occ, i, moved)
	return newSorted(occ)
}

// String lists the occupants in canonical order.
func (c Configuration) String() string {
	parts := make([]string, len(c.occupants))
	for i, o := range c.occupants {
		parts[i] = o.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Move records one occupant's transition and the energy it cost.
type Move struct {
	Kind     diagram.Kind
	From, To diagram.Coordinate
	Energy   int64
}

// Steps returns the number of cells walked.
func (m Move) Steps() int { return m.From.Manhattan(m.To) }

// String formats m as "B (2,7)->(1,4) 40".
func (m Move) String() string {
	return fmt.Sprintf("%c %s->%s %d", m.Kind.Glyph(), m.From, m.To, m.Energy)
}

// EnergyOf returns the energy an occupant of kind k spends going from
// from to to. Every legal move is a door-to-hallway-to-door path, so its
// length is the Manhattan distance.
func EnergyOf(k diagram.Kind, from, to diagram.Coordinate) int64 {
	return k.Cost() * int64(from.Manhattan(to))
}

// Successor is a configuration reachable in one legal move.
type Successor struct {
	Config Configuration
	Move   Move
}
