// Package burrow organizes amphipods: given a burrow diagram, it finds the
// least energy needed to move every amphipod into its own side room.
//
// 🚀 What is burrow?
//
//	A small, dependency-light solver built in four layers:
//		• Geometry: walls, hallway, side rooms and valid stops (diagram)
//		• Rules: occupants, immutable configurations, legal moves (board)
//		• Search: uniform-cost search over configurations (dijkstra)
//		• Driver: unfolding part 2, config, logging, the burrow command
//
// Under the hood, everything is organized under these subpackages:
//
//	diagram/     static geometry, Kind table (cost, glyph), sentinel errors
//	board/       Occupant, Configuration, Move, Board move legality, Parse
//	dijkstra/    LowestEnergy and Search with functional options
//	puzzle/      SplitLines, Unfold, Solver for both parts
//	config/      YAML/.env settings and the zerolog logger
//	cmd/burrow/  command-line driver
//
// Quick ASCII example:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// organizes with 12521 energy; unfolded with the two hidden rows it takes 44169.
//
//	go run ./cmd/burrow -input input.txt
package burrow
