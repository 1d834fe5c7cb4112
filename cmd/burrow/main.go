// Command burrow reads an amphipod burrow diagram and prints the least
// energy needed to organize it, both as drawn and unfolded.
//
// Usage:
//
//	burrow [-input file] [-config burrow.yaml] [-path] [-cpuprofile dir]
//
// Without -input the diagram is read from standard input. Without -config
// the settings come from $BURROW_CONFIG (optionally set in .env).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/config"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/puzzle"
)

var (
	inputFile  = flag.String("input", "", "path to the puzzle input (default: stdin)")
	configFile = flag.String("config", "", "path to a YAML config file (default: $BURROW_CONFIG)")
	showPath   = flag.Bool("path", false, "print the moves behind each answer")
	cpuProfile = flag.String("cpuprofile", "", "write a CPU profile into this directory")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "burrow:", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.LogLevel, os.Stderr)

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("burrow failed")
	}
}

func loadConfig() (*config.Config, error) {
	if *configFile != "" {
		return config.Load(*configFile)
	}
	return config.LoadEnv()
}

func run(cfg *config.Config, logger zerolog.Logger, out io.Writer) error {
	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
	}

	text, err := readInput(*inputFile)
	if err != nil {
		return err
	}
	rows := puzzle.SplitLines(text)
	logger.Debug().Int("rows", len(rows)).Str("input", *inputFile).Msg("read diagram")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []dijkstra.Option{
		dijkstra.WithContext(ctx),
		dijkstra.WithLogger(logger),
	}
	if cfg.MaxEnergy > 0 {
		opts = append(opts, dijkstra.WithMaxEnergy(cfg.MaxEnergy))
	}
	withPath := cfg.ShowPath || *showPath
	if withPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	solver := puzzle.NewSolver(opts...)
	solver.FoldIndex = cfg.Fold.Index
	solver.FoldRows = cfg.Fold.Rows

	p1, err := solver.Part1(rows)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Part 1:", p1.Energy)
	if withPath {
		if err := printPath(out, rows, p1); err != nil {
			return err
		}
	}

	p2, err := solver.Part2(rows)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Part 2:", p2.Energy)
	if withPath {
		unfolded, err := puzzle.Unfold(rows, solver.FoldIndex, solver.FoldRows)
		if err != nil {
			return err
		}
		if err := printPath(out, unfolded, p2); err != nil {
			return err
		}
	}

	return nil
}

func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// printPath replays res.Path from the diagram in rows, drawing the board
// after every move.
func printPath(out io.Writer, rows []string, res *dijkstra.Result) error {
	d, cfg, err := board.Parse(rows)
	if err != nil {
		return err
	}
	var spent int64
	for i, m := range res.Path {
		cfg = cfg.Move(board.Occupant{Kind: m.Kind, Loc: m.From}, m.To)
		spent += m.Energy
		fmt.Fprintf(out, "\n%d. %s (total %d)\n%s\n", i+1, m, spent, board.New(d, cfg))
	}
	fmt.Fprintln(out)
	return nil
}
