// Package dijkstra_test contains unit tests for the burrow search.
// These tests validate the worked examples, option handling, path
// reconstruction, determinism and monotonicity under restricted moves.
package dijkstra_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/diagram"
	"github.com/katalvlaran/burrow/dijkstra"
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

func parse(t testing.TB, rows []string) (*diagram.Diagram, board.Configuration) {
	t.Helper()
	d, cfg, err := board.Parse(rows)
	require.NoError(t, err)
	return d, cfg
}

// replay applies path to initial, checking each move is legal and charged correctly.
func replay(t *testing.T, d *diagram.Diagram, initial board.Configuration, path []board.Move) (board.Configuration, int64) {
	t.Helper()
	cfg := initial
	var total int64
	for i, m := range path {
		o := board.Occupant{Kind: m.Kind, Loc: m.From}
		require.Contains(t, board.New(d, cfg).Moves(o), m.To, "move %d (%s) is not legal", i, m)
		assert.Equal(t, board.EnergyOf(m.Kind, m.From, m.To), m.Energy, "move %d", i)
		total += m.Energy
		cfg = cfg.Move(o, m.To)
	}
	return cfg, total
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestSearch_NilDiagram(t *testing.T) {
	_, err := dijkstra.LowestEnergy(nil, board.Configuration{})
	assert.ErrorIs(t, err, dijkstra.ErrNilDiagram)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxEnergy(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithProgressEvery(0)(&dijkstra.Options{}) })
}

func TestSearch_BadOptionsBypassingConstructors(t *testing.T) {
	d, cfg := parse(t, example)

	_, err := dijkstra.Search(d, cfg, func(o *dijkstra.Options) { o.MaxEnergy = -5 })
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxEnergy)

	_, err = dijkstra.Search(d, cfg, func(o *dijkstra.Options) { o.ProgressEvery = 0 })
	assert.ErrorIs(t, err, dijkstra.ErrBadProgress)
}

// ------------------------------------------------------------------------
// 2. Worked examples
// ------------------------------------------------------------------------

func TestLowestEnergy_Example(t *testing.T) {
	d, cfg := parse(t, example)
	got, err := dijkstra.LowestEnergy(d, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(12521), got)
}

func TestLowestEnergy_Folded(t *testing.T) {
	if testing.Short() {
		t.Skip("folded example explores a large state space")
	}
	d, cfg := parse(t, folded)
	got, err := dijkstra.LowestEnergy(d, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(44169), got)
}

// ------------------------------------------------------------------------
// 3. Small hand-built searches
// ------------------------------------------------------------------------

func TestSearch_AlreadyOrganized(t *testing.T) {
	d, _ := parse(t, example)
	res, err := dijkstra.Search(d, board.Organized(d), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Energy)
	assert.Equal(t, 0, res.Expanded)
	assert.Equal(t, 1, res.Pushed)
	assert.Empty(t, res.Path)
}

func TestSearch_OneStepHome(t *testing.T) {
	d, _ := parse(t, example)
	goal := board.Organized(d)

	cases := []struct {
		name string
		from board.Occupant
		to   diagram.Coordinate
		want int64
	}{
		{"BronzeFromDoorSide", board.Occupant{Kind: diagram.Bronze, Loc: diagram.Coordinate{Row: 2, Col: 5}}, diagram.Coordinate{Row: 1, Col: 4}, 20},
		{"AmberFromCorner", board.Occupant{Kind: diagram.Amber, Loc: diagram.Coordinate{Row: 2, Col: 3}}, diagram.Coordinate{Row: 1, Col: 1}, 3},
		{"DesertFromFarEnd", board.Occupant{Kind: diagram.Desert, Loc: diagram.Coordinate{Row: 2, Col: 9}}, diagram.Coordinate{Row: 1, Col: 11}, 3000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := goal.Move(tc.from, tc.to)
			res, err := dijkstra.Search(d, start, dijkstra.WithReturnPath())
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Energy)
			require.Len(t, res.Path, 1)
			assert.Equal(t, tc.to, res.Path[0].From)
			assert.Equal(t, tc.from.Loc, res.Path[0].To)
			assert.True(t, res.Final.Equal(goal))
		})
	}
}

// ------------------------------------------------------------------------
// 4. Path reconstruction and determinism
// ------------------------------------------------------------------------

func TestSearch_PathReplaysToAnswer(t *testing.T) {
	d, cfg := parse(t, example)
	res, err := dijkstra.Search(d, cfg, dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)

	final, total := replay(t, d, cfg, res.Path)
	assert.Equal(t, res.Energy, total)
	assert.True(t, final.Equal(res.Final))
	assert.True(t, board.New(d, final).IsOrganized())
	assert.Greater(t, res.Expanded, 0)
	assert.GreaterOrEqual(t, res.Pushed, res.Expanded)
}

func TestSearch_Deterministic(t *testing.T) {
	d, cfg := parse(t, example)
	first, err := dijkstra.Search(d, cfg, dijkstra.WithReturnPath())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := dijkstra.Search(d, cfg, dijkstra.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, first.Energy, again.Energy)
		assert.Equal(t, first.Path, again.Path)
		assert.Equal(t, first.Expanded, again.Expanded)
	}
}

// ------------------------------------------------------------------------
// 5. Restricted searches
// ------------------------------------------------------------------------

func TestSearch_MonotoneUnderMoveFilter(t *testing.T) {
	d, cfg := parse(t, example)
	base, err := dijkstra.LowestEnergy(d, cfg)
	require.NoError(t, err)

	filters := map[string]dijkstra.MoveFilter{
		// Desert never benefits from the far-left end of the hallway.
		"DesertAvoidsLeftEnd": func(_ *board.Board, m board.Move) bool {
			return !(m.Kind == diagram.Desert && m.To.Row == 1 && m.To.Col <= 2)
		},
		// Forces Amber out of the Desert room towards the left.
		"AmberAvoidsRightEnd": func(_ *board.Board, m board.Move) bool {
			return !(m.Kind == diagram.Amber && m.To.Row == 1 && m.To.Col >= 10)
		},
	}
	for name, fn := range filters {
		t.Run(name, func(t *testing.T) {
			got, err := dijkstra.LowestEnergy(d, cfg, dijkstra.WithMoveFilter(fn))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, base)
		})
	}
}

func TestSearch_NoSolution(t *testing.T) {
	d, cfg := parse(t, example)

	_, err := dijkstra.LowestEnergy(d, cfg, dijkstra.WithMoveFilter(func(*board.Board, board.Move) bool { return false }))
	assert.ErrorIs(t, err, dijkstra.ErrNoSolution)

	_, err = dijkstra.LowestEnergy(d, cfg, dijkstra.WithMaxEnergy(12520))
	assert.ErrorIs(t, err, dijkstra.ErrNoSolution)

	got, err := dijkstra.LowestEnergy(d, cfg, dijkstra.WithMaxEnergy(12521))
	require.NoError(t, err)
	assert.Equal(t, int64(12521), got)
}

func TestSearch_ContextCanceled(t *testing.T) {
	d, cfg := parse(t, example)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.Search(d, cfg, dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 6. Logging
// ------------------------------------------------------------------------

func TestSearch_LogsProgress(t *testing.T) {
	d, _ := parse(t, example)
	goal := board.Organized(d)
	start := goal.Move(board.Occupant{Kind: diagram.Bronze, Loc: diagram.Coordinate{Row: 2, Col: 5}}, diagram.Coordinate{Row: 1, Col: 4})

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := dijkstra.Search(d, start, dijkstra.WithLogger(logger), dijkstra.WithProgressEvery(1))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"searching"`)
	assert.Contains(t, buf.String(), `"message":"burrow organized"`)
	assert.Contains(t, buf.String(), `"energy":20`)
}
