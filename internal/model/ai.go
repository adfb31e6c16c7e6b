package model

// aiMode is the AI opponent's current shot-selection strategy (spec.md §4.4.4).
type aiMode int

const (
	aiHunt aiMode = iota
	aiTarget
)

// axis is the orientation the AI has inferred for a ship it is currently
// targeting, once two hits on that ship share a row or column.
type axis int

const (
	axisNone axis = iota
	axisRow
	axisCol
)

// aiState tracks the AI's hunt/target heuristic across shots within a
// single-player game. lastHits accumulates in the order hits land and is
// cleared whenever the ship they belong to is sunk.
type aiState struct {
	mode       aiMode
	lastHits   []int
	lockedAxis axis
}

// lockAxis inspects the two most recent hits and, if they share a row or
// column, locks targeting to extend along that line rather than probing
// all four neighbors of every hit.
func (a *aiState) lockAxis() {
	if len(a.lastHits) < 2 {
		return
	}
	r1, c1 := Decode(a.lastHits[len(a.lastHits)-2])
	r2, c2 := Decode(a.lastHits[len(a.lastHits)-1])
	switch {
	case r1 == r2:
		a.lockedAxis = axisRow
	case c1 == c2:
		a.lockedAxis = axisCol
	}
}

// autoPlaceFleet places every ship in p's required list at random legal
// positions, used to set up the AI's own board in single-player mode
// (spec.md §4.4.4). It retries a fresh random placement for each ship up
// to a fixed budget before giving up, since a bad sequence of earlier
// placements can occasionally paint a later, larger ship into a corner
// with no legal spot left.
func (g *Game) autoPlaceFleet(p *player) error {
	const maxAttemptsPerShip = 1000

	for _, req := range p.required {
		placed := false
		for attempt := 0; attempt < maxAttemptsPerShip; attempt++ {
			o := Horizontal
			if g.rng.Intn(2) == 1 {
				o = Vertical
			}
			row := g.rng.Intn(p.board.Size()) + 1
			col := g.rng.Intn(p.board.Size()) + 1

			segments := p.board.Segments(Coordinate{Row: row, Col: col}, req.spec.Size, o)
			if p.board.CanPlace(segments) != nil {
				continue
			}

			p.board.PlaceShip(req.spec, req.placementIndex, segments)
			p.placedCount++
			placed = true
			break
		}
		if !placed {
			return ErrPlacementImpossible
		}
	}

	return nil
}

// selectAIShot picks the AI's next shot against the human's board. In hunt
// mode it picks a random coordinate not yet fired at. In target mode it
// extends from the most recent hit: along the locked axis if one has been
// inferred, or across all four neighbors of every accumulated hit
// otherwise, skipping any candidate already fired at or out of bounds.
// aiBoard is the AI's own board: its shotsFired index is what "already
// fired at" means here, not the human's.
func (g *Game) selectAIShot(aiBoard *Board) string {
	size := aiBoard.Size()

	if g.ai.mode == aiTarget {
		if coord, ok := g.nextTargetShot(aiBoard, size); ok {
			return coord
		}
		// No viable neighbor remains (e.g. the rest of the ship was already
		// hit via the other end); fall back to hunting.
		g.ai.mode = aiHunt
		g.ai.lastHits = nil
		g.ai.lockedAxis = axisNone
	}

	return g.nextHuntShot(aiBoard, size)
}

func (g *Game) nextTargetShot(aiBoard *Board, size int) (string, bool) {
	type delta struct{ dRow, dCol int }
	var deltas []delta

	switch g.ai.lockedAxis {
	case axisRow:
		deltas = []delta{{0, 1}, {0, -1}}
	case axisCol:
		deltas = []delta{{1, 0}, {-1, 0}}
	default:
		deltas = []delta{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	}

	for i := len(g.ai.lastHits) - 1; i >= 0; i-- {
		row, col := Decode(g.ai.lastHits[i])
		for _, d := range deltas {
			r, c := row+d.dRow, col+d.dCol
			if r < 1 || r > size || c < 1 || c > size {
				continue
			}
			code, err := Encode(r, c, size)
			if err != nil || aiBoard.HasShotAt(code) {
				continue
			}
			return Format(r, c), true
		}
	}

	return "", false
}

func (g *Game) nextHuntShot(aiBoard *Board, size int) string {
	for {
		row := g.rng.Intn(size) + 1
		col := g.rng.Intn(size) + 1
		code, err := Encode(row, col, size)
		if err != nil || aiBoard.HasShotAt(code) {
			continue
		}
		return Format(row, col)
	}
}
