package board

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/burrow/diagram"
)

// Board pairs a Diagram with one Configuration and answers move
// queries for it. It is built per configuration and never mutated.
type Board struct {
	d   *diagram.Diagram
	cfg Configuration
	at  map[diagram.Coordinate]diagram.Kind
}

// New builds the board view of cfg on d.
// Complexity: O(N) for N occupants.
func New(d *diagram.Diagram, cfg Configuration) *Board {
	at := make(map[diagram.Coordinate]diagram.Kind, cfg.Len())
	for _, o := range cfg.occupants {
		at[o.Loc] = o.Kind
	}
	return &Board{d: d, cfg: cfg, at: at}
}

// Diagram returns the geometry the board is laid on.
func (b *Board) Diagram() *diagram.Diagram { return b.d }

// Config returns the configuration the board shows.
func (b *Board) Config() Configuration { return b.cfg }

// Occupied reports whether an occupant stands on c.
func (b *Board) Occupied(c diagram.Coordinate) bool {
	_, ok := b.at[c]
	return ok
}

// holds reports whether o is exactly one of the board's occupants.
func (b *Board) holds(o Occupant) bool {
	k, ok := b.at[o.Loc]
	return ok && k == o.Kind
}

// Moves returns every cell o may reach in one turn, in a fixed order:
//
//   - in its own room with no foreign kind below it: nothing;
//   - in the hallway: the deepest free cell of its room, if the room holds
//     no foreign kind and the hallway between is clear;
//   - in a room otherwise: every valid hallway stop reachable from the
//     doorway, scanning left then right and stopping at the first
//     occupied cell in each direction, provided the cells above it are clear.
//
// The returned slice is fresh; callers may keep or modify it.
func (b *Board) Moves(o Occupant) []diagram.Coordinate {
	if !b.holds(o) {
		return nil
	}
	if b.d.IsHallway(o.Loc) {
		if !b.SideRoomReady(o.Kind) || b.HallwayPathBlocked(o) {
			return nil
		}
		if dst, ok := b.deepestFree(o.Kind); ok {
			return []diagram.Coordinate{dst}
		}
		return nil
	}

	if b.AtDestination(o) || b.RoomExitBlocked(o) {
		return nil
	}
	return b.hallwayStopsFrom(o.Loc.Col)
}

// AtDestination reports whether o is in its own room with no occupant of
// another kind below it. Such an occupant never has to move again.
func (b *Board) AtDestination(o Occupant) bool {
	k, ok := b.d.RoomKind(o.Loc)
	if !ok || k != o.Kind {
		return false
	}
	room := b.d.RoomCells(k)
	for _, c := range room[b.d.RoomIndex(o.Loc)+1:] {
		if other, ok := b.at[c]; ok && other != k {
			return false
		}
	}
	return true
}

// SideRoomReady reports whether kind k's room holds only occupants of kind k.
func (b *Board) SideRoomReady(k diagram.Kind) bool {
	for _, c := range b.d.RoomCells(k) {
		if other, ok := b.at[c]; ok && other != k {
			return false
		}
	}
	return true
}

// HallwayPathBlocked reports whether any hallway cell strictly between
// o's column and its room's door column is occupied.
func (b *Board) HallwayPathBlocked(o Occupant) bool {
	door := b.d.DoorColumn(o.Kind)
	lo, hi := o.Loc.Col, door
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, h := range b.d.HallwayCells() {
		if h.Col > lo && h.Col < hi && b.Occupied(h) {
			return true
		}
	}
	return false
}

// RoomExitBlocked reports whether an occupant stands between o and the
// doorway of the room o is in.
func (b *Board) RoomExitBlocked(o Occupant) bool {
	k, ok := b.d.RoomKind(o.Loc)
	if !ok {
		return false
	}
	room := b.d.RoomCells(k)
	for _, c := range room[:b.d.RoomIndex(o.Loc)] {
		if b.Occupied(c) {
			return true
		}
	}
	return false
}

// deepestFree returns the free room cell of kind k furthest from the doorway.
func (b *Board) deepestFree(k diagram.Kind) (diagram.Coordinate, bool) {
	room := b.d.RoomCells(k)
	for i := len(room) - 1; i >= 0; i-- {
		if !b.Occupied(room[i]) {
			return room[i], true
		}
	}
	return diagram.Coordinate{}, false
}

// hallwayStopsFrom scans the hallway outward from door, left first.
func (b *Board) hallwayStopsFrom(door int) []diagram.Coordinate {
	hall := b.d.HallwayCells()
	split := len(hall)
	for i, h := range hall {
		if h.Col >= door {
			split = i
			break
		}
	}
	var out []diagram.Coordinate
	for i := split - 1; i >= 0; i-- {
		if b.Occupied(hall[i]) {
			break
		}
		if b.d.IsValidStop(hall[i]) {
			out = append(out, hall[i])
		}
	}
	for i := split; i < len(hall); i++ {
		if hall[i].Col == door {
			continue
		}
		if b.Occupied(hall[i]) {
			break
		}
		if b.d.IsValidStop(hall[i]) {
			out = append(out, hall[i])
		}
	}
	return out
}

// IsOrganized reports whether every occupant stands in its own room.
func (b *Board) IsOrganized() bool {
	for _, o := range b.cfg.occupants {
		if k, ok := b.d.RoomKind(o.Loc); !ok || k != o.Kind {
			return false
		}
	}
	return true
}

// Successors returns every configuration one legal move away, ordered
// by occupant (canonical order) and then by destination.
func (b *Board) Successors() []Successor {
	var out []Successor
	for _, o := range b.cfg.occupants {
		for _, dst := range b.Moves(o) {
			out = append(out, Successor{
				Config: b.cfg.Move(o, dst),
				Move: Move{
					Kind:   o.Kind,
					From:   o.Loc,
					To:     dst,
					Energy: EnergyOf(o.Kind, o.Loc, dst),
				},
			})
		}
	}
	return out
}

// String renders the diagram with occupant glyphs on their cells.
func (b *Board) String() string {
	lines := strings.Split(b.d.String(), "\n")
	grid := make([][]byte, len(lines))
	for i, l := range lines {
		grid[i] = []byte(l)
	}
	for _, o := range b.cfg.occupants {
		grid[o.Loc.Row][o.Loc.Col] = o.Kind.Glyph()
	}
	var sb strings.Builder
	for i, row := range grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}

// Parse builds the diagram from rows and collects the occupants drawn on it.
// Returns any diagram.New error, or ErrOccupantCount if a kind does not
// have exactly one occupant per room cell.
func Parse(rows []string) (*diagram.Diagram, Configuration, error) {
	d, err := diagram.New(rows)
	if err != nil {
		return nil, Configuration{}, err
	}
	var occ []Occupant
	var count [diagram.NumKinds]int
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			k, ok := diagram.KindFromGlyph(line[c])
			if !ok {
				continue
			}
			occ = append(occ, Occupant{Kind: k, Loc: diagram.Coordinate{Row: r, Col: c}})
			count[k]++
		}
	}
	for _, k := range diagram.Kinds() {
		if count[k] != d.Depth() {
			return nil, Configuration{}, fmt.Errorf("%w: %d %s, room depth %d",
				ErrOccupantCount, count[k], k, d.Depth())
		}
	}
	cfg, err := NewConfiguration(occ...)
	if err != nil {
		return nil, Configuration{}, err
	}
	return d, cfg, nil
}

// Place builds a configuration on d, checking that every occupant stands
// on a floor cell and no two share one.
func Place(d *diagram.Diagram, occupants ...Occupant) (Configuration, error) {
	for _, o := range occupants {
		if !o.Kind.Valid() || !d.Tile(o.Loc).Passable {
			return Configuration{}, fmt.Errorf("%w: %s", ErrOffFloor, o)
		}
	}
	return NewConfiguration(occupants...)
}

// Organized returns the final layout of d: every room full of its own kind.
func Organized(d *diagram.Diagram) Configuration {
	occ := make([]Occupant, 0, diagram.NumKinds*d.Depth())
	for _, k := range diagram.Kinds() {
		for _, c := range d.SideRoom(k) {
			occ = append(occ, Occupant{Kind: k, Loc: c})
		}
	}
	// Rooms are walked in kind order, rows ascending, one column per room.
	return newSorted(occ)
}
