// Package diagram models the static geometry of an amphipod burrow: a
// hallway along the top and four single-column side rooms hanging below it.
//
// What:
//
//   - New classifies every template character as wall (' ', '#') or floor
//     (anything else, including occupant glyphs).
//   - A floor cell walled in on both sides is a side-room cell; a floor cell
//     with a floor neighbour on either side is a hallway cell.
//   - The first row holding side-room cells yields the four rooms, assigned
//     left to right to Amber, Bronze, Copper and Desert. Each room runs from
//     its doorway down to the back wall.
//   - Hallway cells directly above a room entrance are not valid stops.
//
// Kinds:
//
//	Kind    Glyph  Cost/step
//	Amber   A      1
//	Bronze  B      10
//	Copper  C      100
//	Desert  D      1000
//
// Complexity:
//
//   - New:            O(R×C) time and memory.
//   - Lookups:        O(1) (IsSideRoom, IsHallway, RoomKind, IsValidStop).
//   - SideRoom, Hallway, ValidStops copy their slices: O(len).
//
// Errors:
//
//   - ErrEmptyDiagram:   no rows, or an empty first row.
//   - ErrNonRectangular: a row wider than the first row.
//   - ErrRoomCount:      the room row does not hold exactly four rooms.
//   - ErrUnevenRooms:    rooms of differing depth.
//   - ErrStrayRoomCell:  a walled-in floor cell outside every room.
//   - ErrNoHallway:      no hallway cells at all.
//
// Example template (part 1 of the worked example):
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
package diagram
