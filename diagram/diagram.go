package diagram

import (
	"fmt"
	"slices"
	"strings"
)

// New constructs a Diagram from the burrow template rows.
// Rows shorter than the first row are padded with blanks; puzzle inputs
// usually drop trailing blanks. Returns ErrEmptyDiagram for an empty
// template, ErrNonRectangular if a row is wider than the first,
// ErrRoomCount, ErrUnevenRooms, ErrStrayRoomCell or ErrNoHallway if the
// geometry is not a burrow.
// Complexity: O(R×C) time and memory.
func New(rows []string) (*Diagram, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyDiagram
	}
	h, w := len(rows), len(rows[0])
	tiles := make([][]Tile, h)
	for r, line := range rows {
		if len(line) > w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want at most %d", ErrNonRectangular, r, len(line), w)
		}
		tiles[r] = make([]Tile, w)
		for c := 0; c < w; c++ {
			g := byte(GlyphBlank)
			if c < len(line) {
				g = line[c]
			}
			tiles[r][c] = tileFromGlyph(g)
		}
	}

	d := &Diagram{
		rows:      h,
		cols:      w,
		tiles:     tiles,
		stops:     make(map[Coordinate]struct{}),
		roomOf:    make(map[Coordinate]Kind),
		roomIndex: make(map[Coordinate]int),
	}
	if err := d.discoverRooms(); err != nil {
		return nil, err
	}
	if err := d.collectHallway(); err != nil {
		return nil, err
	}

	return d, nil
}

// discoverRooms finds the first row holding side-room cells and assigns
// its rooms, left to right, to the kinds in canonical order.
func (d *Diagram) discoverRooms() error {
	var heads []Coordinate
	for r := 0; r < d.rows && len(heads) == 0; r++ {
		for c := 0; c < d.cols; c++ {
			if d.IsSideRoom(Coordinate{r, c}) {
				heads = append(heads, Coordinate{r, c})
			}
		}
	}
	if len(heads) != NumKinds {
		return fmt.Errorf("%w: found %d, want %d", ErrRoomCount, len(heads), NumKinds)
	}

	for k, head := range heads {
		var cells []Coordinate
		for at := head; d.InBounds(at) && d.tiles[at.Row][at.Col].Passable; at.Row++ {
			d.roomOf[at] = Kind(k)
			d.roomIndex[at] = len(cells)
			cells = append(cells, at)
		}
		if k > 0 && len(cells) != len(d.rooms[Amber]) {
			return fmt.Errorf("%w: %s room has depth %d, %s room has depth %d",
				ErrUnevenRooms, Kind(k), len(cells), Amber, len(d.rooms[Amber]))
		}
		d.rooms[k] = cells
	}

	for r := 0; r < d.rows; r++ {
		for c := 0; c < d.cols; c++ {
			at := Coordinate{r, c}
			if _, ok := d.roomOf[at]; !ok && d.IsSideRoom(at) {
				return fmt.Errorf("%w: %s", ErrStrayRoomCell, at)
			}
		}
	}

	return nil
}

// collectHallway records hallway cells ordered by column and marks the
// ones an occupant may stop on.
func (d *Diagram) collectHallway() error {
	for r := 0; r < d.rows; r++ {
		for c := 0; c < d.cols; c++ {
			at := Coordinate{r, c}
			if !d.IsHallway(at) {
				continue
			}
			d.hallway = append(d.hallway, at)
			// Never stop directly above a room entrance.
			if _, below := d.roomOf[Coordinate{r + 1, c}]; !below {
				d.stops[at] = struct{}{}
			}
		}
	}
	if len(d.hallway) == 0 {
		return ErrNoHallway
	}
	slices.SortStableFunc(d.hallway, func(a, b Coordinate) int { return a.Col - b.Col })

	return nil
}

// InBounds reports whether c lies within the diagram.
// Complexity: O(1).
func (d *Diagram) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < d.rows && c.Col >= 0 && c.Col < d.cols
}

// Rows returns the number of rows.
func (d *Diagram) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Diagram) Cols() int { return d.cols }

// Tile returns the tile at c; cells outside the diagram are walls.
func (d *Diagram) Tile(c Coordinate) Tile {
	if !d.InBounds(c) {
		return Tile{}
	}
	return d.tiles[c.Row][c.Col]
}

func (d *Diagram) passable(c Coordinate) bool {
	return d.Tile(c).Passable
}

// IsSideRoom reports whether c is a floor cell walled in on both sides.
func (d *Diagram) IsSideRoom(c Coordinate) bool {
	return d.passable(c) &&
		!d.passable(Coordinate{c.Row, c.Col - 1}) &&
		!d.passable(Coordinate{c.Row, c.Col + 1})
}

// IsHallway reports whether c is a floor cell with a floor neighbour on
// at least one side.
func (d *Diagram) IsHallway(c Coordinate) bool {
	return d.passable(c) &&
		(d.passable(Coordinate{c.Row, c.Col - 1}) || d.passable(Coordinate{c.Row, c.Col + 1}))
}

// Depth returns the number of cells in every side room.
func (d *Diagram) Depth() int { return len(d.rooms[Amber]) }

// SideRoom returns a copy of kind k's room cells, doorway first.
func (d *Diagram) SideRoom(k Kind) []Coordinate {
	return slices.Clone(d.rooms[k])
}

// RoomCells returns kind k's room cells, doorway first. The slice is
// shared with the diagram and must not be modified.
func (d *Diagram) RoomCells(k Kind) []Coordinate { return d.rooms[k] }

// DoorColumn returns the column of kind k's room.
func (d *Diagram) DoorColumn(k Kind) int { return d.rooms[k][0].Col }

// RoomKind returns the kind whose room contains c.
func (d *Diagram) RoomKind(c Coordinate) (Kind, bool) {
	k, ok := d.roomOf[c]
	return k, ok
}

// RoomIndex returns c's position in its room (0 at the doorway), or -1
// if c is not a room cell.
func (d *Diagram) RoomIndex(c Coordinate) int {
	i, ok := d.roomIndex[c]
	if !ok {
		return -1
	}
	return i
}

// Hallway returns a copy of all hallway cells ordered by column.
func (d *Diagram) Hallway() []Coordinate {
	return slices.Clone(d.hallway)
}

// HallwayCells returns the hallway cells ordered by column. The slice is
// shared with the diagram and must not be modified.
func (d *Diagram) HallwayCells() []Coordinate { return d.hallway }

// ValidStops returns the hallway cells an occupant may stop on, ordered by column.
func (d *Diagram) ValidStops() []Coordinate {
	out := make([]Coordinate, 0, len(d.stops))
	for _, h := range d.hallway {
		if _, ok := d.stops[h]; ok {
			out = append(out, h)
		}
	}
	return out
}

// IsValidStop reports whether an occupant may stop on c.
func (d *Diagram) IsValidStop(c Coordinate) bool {
	_, ok := d.stops[c]
	return ok
}

// String renders the geometry with '#' for walls and '.' for floor.
func (d *Diagram) String() string {
	var sb strings.Builder
	for r, row := range d.tiles {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			if t.Passable {
				sb.WriteByte(GlyphOpen)
			} else {
				sb.WriteByte(GlyphWall)
			}
		}
	}
	return sb.String()
}
