package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/diagram"
)

var example = []string{
	"#############",
	"#...........#",
	"###B#C#B#D###",
	"  #A#D#C#A#",
	"  #########",
}

var folded = []string{
	"#############",
	"#...........#",
	"###B#C#B#D###",
	"  #D#C#B#A#",
	"  #D#B#A#C#",
	"  #A#D#C#A#",
	"  #########",
}

//----------------------------------------------------------------------------//
// Construction errors
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects templates that are not burrows.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, diagram.ErrEmptyDiagram},
		{"EmptyFirstRow", []string{""}, diagram.ErrEmptyDiagram},
		{"WideRow", []string{"#####", "#...#", "#######"}, diagram.ErrNonRectangular},
		{"NoRooms", []string{"#####", "#...#", "#####"}, diagram.ErrRoomCount},
		{"ThreeRooms", []string{
			"#########",
			"#.......#",
			"###.#.#.#",
			"  #######",
		}, diagram.ErrRoomCount},
		{"FiveRooms", []string{
			"#############",
			"#...........#",
			"###.#.#.#.#.#",
			"  ###########",
		}, diagram.ErrRoomCount},
		{"Uneven", []string{
			"#############",
			"#...........#",
			"###.#.#.#.###",
			"  #.#.#.###",
			"  #########",
		}, diagram.ErrUnevenRooms},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := diagram.New(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Geometry
//----------------------------------------------------------------------------//

// TestNew_Example checks rooms, hallway and stops on the 4-row example.
func TestNew_Example(t *testing.T) {
	d, err := diagram.New(example)
	require.NoError(t, err)

	assert.Equal(t, 5, d.Rows())
	assert.Equal(t, 13, d.Cols())
	assert.Equal(t, 2, d.Depth())

	wantCols := map[diagram.Kind]int{diagram.Amber: 3, diagram.Bronze: 5, diagram.Copper: 7, diagram.Desert: 9}
	for k, col := range wantCols {
		assert.Equal(t, []diagram.Coordinate{{2, col}, {3, col}}, d.SideRoom(k), "room %s", k)
		assert.Equal(t, col, d.DoorColumn(k))
	}

	hall := d.Hallway()
	require.Len(t, hall, 11)
	for i, h := range hall {
		assert.Equal(t, diagram.Coordinate{1, i + 1}, h)
	}

	stops := d.ValidStops()
	assert.Equal(t, []diagram.Coordinate{{1, 1}, {1, 2}, {1, 4}, {1, 6}, {1, 8}, {1, 10}, {1, 11}}, stops)
	for _, k := range diagram.Kinds() {
		assert.False(t, d.IsValidStop(diagram.Coordinate{1, d.DoorColumn(k)}), "door of %s", k)
	}
}

// TestNew_Folded checks that the folded template yields depth-4 rooms.
func TestNew_Folded(t *testing.T) {
	d, err := diagram.New(folded)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Depth())
	for _, k := range diagram.Kinds() {
		room := d.SideRoom(k)
		require.Len(t, room, 4)
		for i, c := range room {
			assert.Equal(t, 2+i, c.Row)
			assert.Equal(t, i, d.RoomIndex(c))
		}
	}
}

// TestRoomsPartition verifies that rooms and hallway never share a cell
// and every floor cell is in exactly one of them.
func TestRoomsPartition(t *testing.T) {
	for name, rows := range map[string][]string{"example": example, "folded": folded} {
		t.Run(name, func(t *testing.T) {
			d, err := diagram.New(rows)
			require.NoError(t, err)

			owner := make(map[diagram.Coordinate]string)
			for _, k := range diagram.Kinds() {
				room := d.SideRoom(k)
				assert.Len(t, room, d.Depth())
				for _, c := range room {
					_, dup := owner[c]
					assert.False(t, dup, "cell %s claimed twice", c)
					owner[c] = k.String()
					got, ok := d.RoomKind(c)
					assert.True(t, ok)
					assert.Equal(t, k, got)
				}
			}
			for _, h := range d.Hallway() {
				_, dup := owner[h]
				assert.False(t, dup, "hallway cell %s is also a room cell", h)
				owner[h] = "hallway"
			}
			for r := 0; r < d.Rows(); r++ {
				for c := 0; c < d.Cols(); c++ {
					at := diagram.Coordinate{r, c}
					_, claimed := owner[at]
					assert.Equal(t, d.Tile(at).Passable, claimed, "cell %s", at)
				}
			}
		})
	}
}

// TestClassification spot-checks tile classification helpers.
func TestClassification(t *testing.T) {
	d, err := diagram.New(example)
	require.NoError(t, err)

	assert.True(t, d.IsHallway(diagram.Coordinate{1, 1}))
	assert.False(t, d.IsSideRoom(diagram.Coordinate{1, 3}))
	assert.True(t, d.IsSideRoom(diagram.Coordinate{3, 9}))
	assert.False(t, d.IsHallway(diagram.Coordinate{0, 0}))
	assert.False(t, d.Tile(diagram.Coordinate{-1, 4}).Passable)
	assert.False(t, d.InBounds(diagram.Coordinate{5, 0}))
	assert.Equal(t, -1, d.RoomIndex(diagram.Coordinate{1, 3}))
	_, ok := d.RoomKind(diagram.Coordinate{1, 3})
	assert.False(t, ok)
}

// TestString renders walls and floor, padding trimmed rows.
func TestString(t *testing.T) {
	d, err := diagram.New(example)
	require.NoError(t, err)
	want := "#############\n" +
		"#...........#\n" +
		"###.#.#.#.###\n" +
		"###.#.#.#.###\n" +
		"#############"
	assert.Equal(t, want, d.String())
}

//----------------------------------------------------------------------------//
// Kind table
//----------------------------------------------------------------------------//

// TestKinds checks the fixed cost and glyph tables.
func TestKinds(t *testing.T) {
	wantCost := []int64{1, 10, 100, 1000}
	for i, k := range diagram.Kinds() {
		assert.Equal(t, wantCost[i], k.Cost())
		got, ok := diagram.KindFromGlyph(k.Glyph())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := diagram.KindFromGlyph('E')
	assert.False(t, ok)
	assert.Equal(t, "Desert", diagram.Desert.String())
	assert.Equal(t, "Kind(7)", diagram.Kind(7).String())
}

// TestManhattan checks the step distance used for move costs.
func TestManhattan(t *testing.T) {
	a := diagram.Coordinate{Row: 3, Col: 3}
	b := diagram.Coordinate{Row: 1, Col: 10}
	assert.Equal(t, 9, a.Manhattan(b))
	assert.Equal(t, 9, b.Manhattan(a))
	assert.Equal(t, 0, a.Manhattan(a))
}
