package gridmap

import "errors"

var (
	// ErrInvalidCoord is returned for coordinates outside the grid bounds.
	ErrInvalidCoord = errors.New("gridmap: coordinate out of bounds")
	// ErrAnchorCell is returned when a mutation targets the start or end cell.
	ErrAnchorCell = errors.New("gridmap: cell is a start/end anchor")
	// ErrOccupied is returned when the cell already holds a tower or decoration.
	ErrOccupied = errors.New("gridmap: cell is occupied")
	// ErrWouldBlockPath is returned when occupying the cell would disconnect start from end.
	ErrWouldBlockPath = errors.New("gridmap: placement would block the path")
	// ErrNoTower is returned when removing from a cell that holds no tower.
	ErrNoTower = errors.New("gridmap: no tower at cell")
	// ErrInvalidGrid is returned by NewGrid for unusable dimensions or anchors.
	ErrInvalidGrid = errors.New("gridmap: invalid grid options")
)
