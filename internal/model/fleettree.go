package model

// SegmentNode is one cell of a placed ship. Hit state is authoritative here;
// "sunk" is always derived from segment state, never stored independently
// (spec.md §4.3).
type SegmentNode struct {
	Code  int
	IsHit bool
	next  *SegmentNode
}

// ShipNode is a placed ship: ship-level metadata plus a chain of segment
// children, in coordinate order.
type ShipNode struct {
	TemplateID     string
	Name           string
	Size           int
	PlacementIndex int

	index        int // position in the fleet's ship chain; see Board.occupied
	firstSegment *SegmentNode
	nextShip     *ShipNode
}

// Segments returns the ship's segments in coordinate order.
func (s *ShipNode) Segments() []SegmentNode {
	out := make([]SegmentNode, 0, s.Size)
	for seg := s.firstSegment; seg != nil; seg = seg.next {
		out = append(out, *seg)
	}
	return out
}

// IsSunk reports whether every segment of the ship has been hit.
func (s *ShipNode) IsSunk() bool {
	for seg := s.firstSegment; seg != nil; seg = seg.next {
		if !seg.IsHit {
			return false
		}
	}
	return true
}

// FleetTree is a first-child/next-sibling tree rooted at an implicit player
// node: the player branches into ships (siblings of one another), each ship
// branches into its segments (spec.md §4.3).
type FleetTree struct {
	firstShip *ShipNode
	lastShip  *ShipNode
	shipCount int
}

// NewFleetTree returns an empty fleet.
func NewFleetTree() *FleetTree {
	return &FleetTree{}
}

// AddShip appends a new ship as the last sibling in the ship chain and
// creates its segment children in coordinate order.
func (f *FleetTree) AddShip(spec ShipSpec, placementIndex int, segmentCodes []int) *ShipNode {
	ship := &ShipNode{
		TemplateID:     spec.TemplateID,
		Name:           spec.Name,
		Size:           spec.Size,
		PlacementIndex: placementIndex,
		index:          f.shipCount,
	}

	var tail *SegmentNode
	for _, code := range segmentCodes {
		seg := &SegmentNode{Code: code}
		if tail == nil {
			ship.firstSegment = seg
		} else {
			tail.next = seg
		}
		tail = seg
	}

	if f.firstShip == nil {
		f.firstShip = ship
	} else {
		f.lastShip.nextShip = ship
	}
	f.lastShip = ship
	f.shipCount++

	return ship
}

// ShipAt resolves the ship index recorded in a Board's occupied CoordTree
// back to its ShipNode, without the tree holding an owning pointer into the
// fleet (spec.md §9).
func (f *FleetTree) ShipAt(index int) *ShipNode {
	for ship := f.firstShip; ship != nil; ship = ship.nextShip {
		if ship.index == index {
			return ship
		}
	}
	return nil
}

// MarkHit finds the segment with the given code across all ships, sets its
// hit flag (idempotent - a repeated call is a no-op), and reports whether a
// ship owned the code and whether that ship is now fully sunk.
func (f *FleetTree) MarkHit(code int) (shipFound, shipNowSunk bool) {
	for ship := f.firstShip; ship != nil; ship = ship.nextShip {
		for seg := ship.firstSegment; seg != nil; seg = seg.next {
			if seg.Code == code {
				seg.IsHit = true
				return true, ship.IsSunk()
			}
		}
	}
	return false, false
}

// Ships returns the ships in insertion order.
func (f *FleetTree) Ships() []*ShipNode {
	out := make([]*ShipNode, 0, f.shipCount)
	for ship := f.firstShip; ship != nil; ship = ship.nextShip {
		out = append(out, ship)
	}
	return out
}

// AliveShipCount returns the number of ships with at least one unhit segment.
func (f *FleetTree) AliveShipCount() int {
	n := 0
	for ship := f.firstShip; ship != nil; ship = ship.nextShip {
		if !ship.IsSunk() {
			n++
		}
	}
	return n
}

// SunkShipCount returns the number of ships whose every segment is hit.
func (f *FleetTree) SunkShipCount() int {
	return f.shipCount - f.AliveShipCount()
}

// AllSunk reports whether every ship in the fleet is sunk. An empty fleet
// (no ships added yet) is never considered sunk.
func (f *FleetTree) AllSunk() bool {
	return f.shipCount > 0 && f.AliveShipCount() == 0
}
