// Package dijkstra defines result types and configuration options
// for the uniform-cost search over burrow configurations.
//
// Nodes are board.Configurations; an edge is one legal single-occupant
// move weighted by its energy. Weights are positive integers, so the first
// organized configuration popped from the frontier is optimal.
//
// Options:
//
//	– ReturnPath:    if true, Result.Path holds the moves of one optimal solution.
//	– MaxEnergy:     cap on energies to explore; configurations beyond it are skipped.
//	– MoveFilter:    predicate that can forbid individual moves.
//	– Context:       cancellation or deadline checked between expansions.
//	– Logger:        zerolog logger for Debug progress lines.
//	– ProgressEvery: expansions between progress lines.
//
// Errors (sentinel):
//
//	– ErrNilDiagram    if the provided diagram pointer is nil.
//	– ErrNoSolution    if the frontier drains without reaching an organized configuration.
//	– ErrBadMaxEnergy  if MaxEnergy < 0.
//	– ErrBadProgress   if ProgressEvery <= 0.
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/burrow/board"
)

// Sentinel errors returned by the search.
var (
	// ErrNilDiagram indicates that a nil *diagram.Diagram was passed in.
	ErrNilDiagram = errors.New("dijkstra: diagram is nil")

	// ErrNoSolution indicates the frontier emptied without reaching an
	// organized configuration. On puzzle input this means a modelling bug.
	ErrNoSolution = errors.New("dijkstra: no organized configuration reachable")

	// ErrBadMaxEnergy indicates that MaxEnergy was set to a negative value.
	ErrBadMaxEnergy = errors.New("dijkstra: MaxEnergy must be non-negative")

	// ErrBadProgress indicates that ProgressEvery was set to zero or a negative value.
	ErrBadProgress = errors.New("dijkstra: ProgressEvery must be positive")
)

// DefaultProgressEvery is the default number of expansions between progress lines.
const DefaultProgressEvery = 50000

// MoveFilter reports whether move m, played from board b, may be used.
// Returning false removes that edge from the search graph.
type MoveFilter func(b *board.Board, m board.Move) bool

// Options configures the search.
//
// ReturnPath    – if true, reconstruct the move sequence of the answer.
// MaxEnergy     – explore only configurations reached with energy ≤ MaxEnergy.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// MoveFilter    – optional edge predicate; nil allows every legal move.
// Context       – checked between expansions; nil means context.Background().
// Logger        – receives Debug progress and a summary; default is zerolog.Nop().
// ProgressEvery – expansions between progress lines. Must be > 0.
type Options struct {
	ReturnPath    bool
	MaxEnergy     int64
	MoveFilter    MoveFilter
	Context       context.Context
	Logger        zerolog.Logger
	ProgressEvery int
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithReturnPath enables reconstruction of Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxEnergy sets a maximum energy threshold.
// Configurations whose energy would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxEnergy.
func WithMaxEnergy(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxEnergy.Error())
		}
		o.MaxEnergy = max
	}
}

// WithMoveFilter installs an edge predicate. Moves for which fn returns
// false are never played.
func WithMoveFilter(fn MoveFilter) Option {
	return func(o *Options) {
		o.MoveFilter = fn
	}
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithLogger sets the logger used for progress lines.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithProgressEvery sets how many expansions pass between progress lines.
// Must pass a positive value; otherwise it panics with ErrBadProgress.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadProgress.Error())
		}
		o.ProgressEvery = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - ReturnPath:    false.
//   - MaxEnergy:     math.MaxInt64 (no cap).
//   - MoveFilter:    nil (every legal move).
//   - Context:       context.Background().
//   - Logger:        zerolog.Nop().
//   - ProgressEvery: DefaultProgressEvery.
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		MaxEnergy:     math.MaxInt64,
		Context:       context.Background(),
		Logger:        zerolog.Nop(),
		ProgressEvery: DefaultProgressEvery,
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Energy is the minimum total energy to organize the burrow.
	Energy int64
	// Final is the organized configuration that was reached.
	Final board.Configuration
	// Path lists the moves from the initial configuration to Final.
	// Nil unless ReturnPath was requested.
	Path []board.Move
	// Expanded counts configurations popped and expanded.
	Expanded int
	// Pushed counts frontier insertions, including the initial one.
	Pushed int
}
