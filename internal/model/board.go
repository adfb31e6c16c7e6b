package model

// Board is one player's half of a game: where their ships are (occupied)
// and which coordinates they have fired at on the opponent's board
// (shotsFired). Per spec.md §9, occupied does not hold owning references to
// ships directly - it maps a coordinate code to an index resolved through
// the player's own FleetTree, which breaks the ownership cycle between the
// two structures.
type Board struct {
	size       int
	occupied   *CoordTree[int]        // coordinate code -> index into fleet.Ships()
	shotsFired *CoordTree[ShotResult] // coordinate code -> result of this player's own shot there
	fleet      *FleetTree
}

// NewBoard creates an empty board of the given size.
func NewBoard(size int) *Board {
	return &Board{
		size:       size,
		occupied:   NewCoordTree[int](),
		shotsFired: NewCoordTree[ShotResult](),
		fleet:      NewFleetTree(),
	}
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.size
}

// Fleet returns the board's fleet tree.
func (b *Board) Fleet() *FleetTree {
	return b.fleet
}

// Segments computes the coordinates a ship of the given size would occupy
// starting at start in the given orientation, without placing it.
func (b *Board) Segments(start Coordinate, size int, o Orientation) []Coordinate {
	return calculateSegments(start, size, o)
}

// CanPlace validates a candidate placement: every segment must be in bounds
// and none may already be occupied.
func (b *Board) CanPlace(segments []Coordinate) error {
	codes := make([]int, len(segments))
	for i, c := range segments {
		code, err := Encode(c.Row, c.Col, b.size)
		if err != nil {
			return ErrOutOfBounds
		}
		codes[i] = code
	}

	for _, code := range codes {
		if b.occupied.Contains(code) {
			return ErrOverlap
		}
	}

	return nil
}

// PlaceShip records a new ship's segments in the fleet tree and rebuilds the
// occupied index (recursive-middle bulk load) to include them. Callers must
// have already validated the placement with CanPlace.
func (b *Board) PlaceShip(spec ShipSpec, placementIndex int, segments []Coordinate) *ShipNode {
	codes := make([]int, len(segments))
	for i, c := range segments {
		codes[i], _ = Encode(c.Row, c.Col, b.size) // pre-validated by CanPlace
	}

	ship := b.fleet.AddShip(spec, placementIndex, codes)

	additions := make([]Entry[int], len(codes))
	for i, code := range codes {
		additions[i] = Entry[int]{Code: code, Value: ship.index}
	}
	b.occupied = b.occupied.Rebuild(additions)

	return ship
}

// OccupiedSize returns the number of cells currently occupied by ships.
func (b *Board) OccupiedSize() int {
	return b.occupied.Size()
}

// HasShotAt reports whether this board's owner has already fired at code.
func (b *Board) HasShotAt(code int) bool {
	return b.shotsFired.Contains(code)
}

// RecordShot records that this board's owner fired at code with the given result.
func (b *Board) RecordShot(code int, result ShotResult) {
	b.shotsFired.Insert(code, result)
}

// ResolveShot looks up whether code is occupied and, if so, marks the hit on
// the owning ship. It returns the result and the name of the ship involved
// (empty on a miss).
func (b *Board) ResolveShot(code int) (result ShotResult, shipName string) {
	shipIndex, ok := b.occupied.Get(code)
	if !ok {
		return ShotWater, ""
	}

	_, sunk := b.fleet.MarkHit(code)
	ship := b.fleet.ShipAt(shipIndex)
	name := ""
	if ship != nil {
		name = ship.Name
	}

	if sunk {
		return ShotSunk, name
	}
	return ShotHit, name
}

// AllSunk reports whether every ship on this board has been destroyed.
func (b *Board) AllSunk() bool {
	return b.fleet.AllSunk()
}
