// Package puzzle turns raw puzzle input into both answers: the burrow as
// given (part 1) and the burrow unfolded with two extra rows (part 2).
package puzzle

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/dijkstra"
)

// FoldIndex is the row before which the hidden rows are spliced.
const FoldIndex = 3

// FoldRows are the two rows hidden in the folded part of the diagram.
var FoldRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// ErrFoldIndex indicates a fold index outside the diagram.
var ErrFoldIndex = errors.New("puzzle: fold index out of range")

// Answers holds the result of both parts.
type Answers struct {
	Part1, Part2 *dijkstra.Result
}

// SplitLines splits input text into rows, dropping carriage returns and
// the trailing empty line. Leading blanks are kept; they are part of the
// diagram.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Unfold returns a new slice with extra inserted before rows[index].
// rows is never modified.
func Unfold(rows []string, index int, extra []string) ([]string, error) {
	if index < 0 || index > len(rows) {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrFoldIndex, index, len(rows))
	}
	out := make([]string, 0, len(rows)+len(extra))
	out = append(out, rows[:index]...)
	out = append(out, extra...)
	out = append(out, rows[index:]...)
	return out, nil
}

// Solver solves both parts with the same fold settings and search options.
type Solver struct {
	FoldIndex int
	FoldRows  []string
	Options   []dijkstra.Option
}

// NewSolver returns a Solver with the puzzle's fold rows and the given options.
func NewSolver(opts ...dijkstra.Option) *Solver {
	return &Solver{
		FoldIndex: FoldIndex,
		FoldRows:  slices.Clone(FoldRows),
		Options:   opts,
	}
}

// Part1 organizes the burrow exactly as drawn.
func (s *Solver) Part1(rows []string) (*dijkstra.Result, error) {
	d, cfg, err := board.Parse(rows)
	if err != nil {
		return nil, fmt.Errorf("part 1: %w", err)
	}
	res, err := dijkstra.Search(d, cfg, s.Options...)
	if err != nil {
		return nil, fmt.Errorf("part 1: %w", err)
	}
	return res, nil
}

// Part2 unfolds the burrow and organizes the deeper rooms.
func (s *Solver) Part2(rows []string) (*dijkstra.Result, error) {
	unfolded, err := Unfold(rows, s.FoldIndex, s.FoldRows)
	if err != nil {
		return nil, fmt.Errorf("part 2: %w", err)
	}
	d, cfg, err := board.Parse(unfolded)
	if err != nil {
		return nil, fmt.Errorf("part 2: %w", err)
	}
	res, err := dijkstra.Search(d, cfg, s.Options...)
	if err != nil {
		return nil, fmt.Errorf("part 2: %w", err)
	}
	return res, nil
}

// Solve runs both parts.
func (s *Solver) Solve(rows []string) (*Answers, error) {
	p1, err := s.Part1(rows)
	if err != nil {
		return nil, err
	}
	p2, err := s.Part2(rows)
	if err != nil {
		return nil, err
	}
	return &Answers{Part1: p1, Part2: p2}, nil
}
