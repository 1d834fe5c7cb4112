// Package diagram defines core types, the fixed kind table, and sentinel
// errors for the diagram subpackage of github.com/katalvlaran/burrow.
package diagram

import (
	"errors"
	"fmt"
)

// Sentinel errors for diagram construction.
var (
	// ErrEmptyDiagram indicates the input has no rows or an empty first row.
	ErrEmptyDiagram = errors.New("diagram: input must have at least one row and one column")
	// ErrNonRectangular indicates a row wider than the first row.
	ErrNonRectangular = errors.New("diagram: row is wider than the first row")
	// ErrRoomCount indicates that the first room row does not hold exactly NumKinds side rooms.
	ErrRoomCount = errors.New("diagram: wrong number of side rooms")
	// ErrUnevenRooms indicates side rooms of differing depth.
	ErrUnevenRooms = errors.New("diagram: side rooms must all have the same depth")
	// ErrStrayRoomCell indicates a side-room cell that belongs to no discovered room.
	ErrStrayRoomCell = errors.New("diagram: side-room cell outside any room")
	// ErrNoHallway indicates the diagram has no hallway cells.
	ErrNoHallway = errors.New("diagram: no hallway cells")
)

// Glyphs used by the burrow template.
const (
	GlyphBlank = ' '
	GlyphOpen  = '.'
	GlyphWall  = '#'
)

// Kind is one of the four occupant types. The set is closed; every
// per-kind table below is indexed by Kind.
type Kind uint8

const (
	// Amber occupants belong in the leftmost room and cost 1 per step.
	Amber Kind = iota
	// Bronze occupants belong in the second room and cost 10 per step.
	Bronze
	// Copper occupants belong in the third room and cost 100 per step.
	Copper
	// Desert occupants belong in the rightmost room and cost 1000 per step.
	Desert
)

// NumKinds is the number of occupant kinds, and so the number of side rooms.
const NumKinds = 4

var (
	kindCost  = [NumKinds]int64{1, 10, 100, 1000}
	kindGlyph = [NumKinds]byte{'A', 'B', 'C', 'D'}
	kindName  = [NumKinds]string{"Amber", "Bronze", "Copper", "Desert"}
)

// Kinds returns every kind in canonical room order.
func Kinds() []Kind {
	return []Kind{Amber, Bronze, Copper, Desert}
}

// Valid reports whether k is one of the four kinds.
func (k Kind) Valid() bool { return k < NumKinds }

// Cost returns the energy spent per step by an occupant of kind k.
func (k Kind) Cost() int64 { return kindCost[k] }

// Glyph returns the diagram character for kind k, or '?' for an invalid kind.
func (k Kind) Glyph() byte {
	if !k.Valid() {
		return '?'
	}
	return kindGlyph[k]
}

// String returns the kind's name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindName[k]
}

// KindFromGlyph maps a diagram character to its kind.
func KindFromGlyph(g byte) (Kind, bool) {
	for k, kg := range kindGlyph {
		if kg == g {
			return Kind(k), true
		}
	}
	return 0, false
}

// Coordinate addresses a cell by row (top to bottom) and column (left to right).
type Coordinate struct {
	Row, Col int
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String formats c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Tile is one cell of the fixed geometry.
type Tile struct {
	Passable bool
}

// tileFromGlyph treats blanks and walls as impassable and everything
// else (floor and occupant glyphs) as floor.
func tileFromGlyph(g byte) Tile {
	return Tile{Passable: g != GlyphBlank && g != GlyphWall}
}

// Diagram is the static burrow geometry. It is immutable once built.
// tiles[row][col] holds the classified cells; rooms[k] lists the cells of
// kind k's side room from doorway to back wall; hallway lists hallway
// cells ordered by column.
type Diagram struct {
	rows, cols int
	tiles      [][]Tile
	rooms      [NumKinds][]Coordinate
	hallway    []Coordinate
	stops      map[Coordinate]struct{}
	roomOf     map[Coordinate]Kind
	roomIndex  map[Coordinate]int
}
