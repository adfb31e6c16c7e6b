package model

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// requiredShip is one entry of a player's placement queue: the ship spec
// plus the placementIndex a client must echo back to disambiguate
// duplicates of the same template (spec.md §4.4.1).
type requiredShip struct {
	spec           ShipSpec
	placementIndex int
}

// player is the engine's private view of one side of a Game.
type player struct {
	id          string
	board       *Board
	required    []requiredShip
	placedCount int
}

func newPlayer(id string, boardSize int, fleet []ShipSpec) *player {
	seen := make(map[string]int, len(fleet))
	required := make([]requiredShip, len(fleet))
	for i, spec := range fleet {
		idx := seen[spec.TemplateID]
		seen[spec.TemplateID] = idx + 1
		required[i] = requiredShip{spec: spec, placementIndex: idx}
	}
	return &player{id: id, board: NewBoard(boardSize), required: required}
}

func (p *player) nextRequired() (requiredShip, bool) {
	if p.placedCount >= len(p.required) {
		return requiredShip{}, false
	}
	return p.required[p.placedCount], true
}

func (p *player) allPlaced() bool {
	return p.placedCount >= len(p.required)
}

// Game is the referee for one match: it owns both players' boards and
// fleet trees, the shot history, and the state machine from spec.md
// §4.4.2. Every exported method that touches state acquires mu for its
// entire duration, including the AI follow-up shot in single-player mode
// (spec.md §4.4.3) - mu is the game's per-game concurrency gate.
type Game struct {
	mu sync.Mutex

	id          string
	boardSize   int
	baseFleetID string
	mode        Mode
	fleet       []ShipSpec

	status  Status
	player1 *player
	player2 *player

	currentTurnPlayerID string
	winnerID             string

	shotsHistory []Shot

	createdAt  time.Time
	updatedAt  time.Time
	startedAt  time.Time
	finishedAt time.Time

	ai  *aiState
	rng *rand.Rand
}

// NewGame creates a game in its initial state. fleet is the already
// resolved, ordered list of ships the BaseFleet names; it is snapshotted
// so later catalog edits never affect this game (spec.md §3, Ownership).
// In single-player mode the AI's board is auto-placed immediately.
func NewGame(
	id string,
	boardSize int,
	baseFleetID string,
	mode Mode,
	player1ID string,
	fleet []ShipSpec,
	now time.Time,
) (*Game, error) {
	if boardSize < 5 || boardSize > 20 {
		return nil, ErrInvalidDimensions
	}
	if err := validateFleet(fleet, boardSize); err != nil {
		return nil, err
	}

	g := &Game{
		id:          id,
		boardSize:   boardSize,
		baseFleetID: baseFleetID,
		mode:        mode,
		fleet:       fleet,
		player1:     newPlayer(player1ID, boardSize, fleet),
		createdAt:   now,
		updatedAt:   now,
		rng:         rand.New(rand.NewSource(now.UnixNano())), //nolint:gosec
	}

	switch mode {
	case ModeSinglePlayer:
		g.player2 = newPlayer("ai", boardSize, fleet)
		if err := g.autoPlaceFleet(g.player2); err != nil {
			return nil, err
		}
		g.ai = &aiState{mode: aiHunt}
		g.status = StatusWaitingForPlacement
	case ModeMultiplayer:
		g.status = StatusWaitingForPlayer2
	}

	return g, nil
}

func validateFleet(fleet []ShipSpec, boardSize int) error {
	if len(fleet) == 0 {
		return ErrInvalidFleet
	}

	sum := 0
	for _, s := range fleet {
		if s.Size <= 0 || s.TemplateID == "" {
			return ErrInvalidFleet
		}
		sum += s.Size
	}

	maxOccupancy := int(float64(boardSize*boardSize) * 0.8)
	if sum > maxOccupancy {
		return ErrInvalidFleet
	}

	return nil
}

// ID returns the game's identifier.
func (g *Game) ID() string { return g.id }

// BoardSize returns the shared board size for this game.
func (g *Game) BoardSize() int { return g.boardSize }

// BaseFleetID returns the fleet the game was created with.
func (g *Game) BaseFleetID() string { return g.baseFleetID }

// Player1ID returns the creator's id. It never changes after creation.
func (g *Game) Player1ID() string { return g.player1.id }

// CreatedAt returns the creation timestamp.
func (g *Game) CreatedAt() time.Time { return g.createdAt }

// Mode returns the game's mode.
func (g *Game) Mode() Mode {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mode
}

// Status returns the game's current status.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Player2ID returns the second player's id, or "" if no one has joined yet.
func (g *Game) Player2ID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.player2 == nil {
		return ""
	}
	return g.player2.id
}

// IsFinished reports whether the game has reached a terminal state.
func (g *Game) IsFinished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status == StatusFinished
}

// WinnerID returns the id of the winning player, or "" if undecided.
func (g *Game) WinnerID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.winnerID
}

// UpdatedAt returns the timestamp of the most recent state-changing
// operation, used by the store for staleness-based garbage collection.
func (g *Game) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}

// CanDelete reports whether requesterID is allowed to delete the game now:
// a participant may always delete a finished game, but only the creator
// may delete one still in progress (spec.md §4.4.1).
func (g *Game) CanDelete(requesterID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	isParticipant := requesterID == g.player1.id || (g.player2 != nil && requesterID == g.player2.id)
	if !isParticipant {
		return false
	}
	if g.status == StatusFinished {
		return true
	}
	return requesterID == g.player1.id
}

// JoinGame assigns playerID as player2 of a multiplayer game waiting for an
// opponent and moves the game into the placement phase.
func (g *Game) JoinGame(playerID string, now time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.status != StatusWaitingForPlayer2:
		return ErrWrongPhase
	case playerID == g.player1.id:
		return ErrCannotJoinOwn
	}

	g.player2 = newPlayer(playerID, g.boardSize, g.fleet)
	g.status = StatusBothPlayersPlacing
	g.updatedAt = now

	return nil
}

func (g *Game) resolvePlayer(playerID string) (self, opponent *player, err error) {
	switch {
	case g.player1 != nil && g.player1.id == playerID:
		return g.player1, g.player2, nil
	case g.player2 != nil && g.player2.id == playerID:
		return g.player2, g.player1, nil
	default:
		return nil, nil, ErrUnknownPlayer
	}
}

func (g *Game) isPlacementPhaseFor(p *player) bool {
	switch g.status {
	case StatusWaitingForPlacement:
		return g.mode == ModeSinglePlayer && p == g.player1
	case StatusBothPlayersPlacing:
		return true
	case StatusPlayer1Placing:
		return p == g.player1
	case StatusPlayer2Placing:
		return p == g.player2
	default:
		return false
	}
}

// PlaceShip places the next required ship for playerID. templateID and
// placementIndex must name that exact next ship (spec.md §4.4.1): ships
// are placed strictly in the order the base fleet lists them.
func (g *Game) PlaceShip(
	playerID, templateID string,
	placementIndex int,
	startCoord string,
	o Orientation,
	now time.Time,
) (*ShipNode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, _, err := g.resolvePlayer(playerID)
	if err != nil {
		return nil, err
	}

	if !g.isPlacementPhaseFor(p) {
		return nil, ErrWrongPhase
	}

	next, ok := p.nextRequired()
	if !ok {
		return nil, ErrWrongPhase
	}
	if next.spec.TemplateID != templateID || next.placementIndex != placementIndex {
		return nil, ErrWrongShip
	}

	row, col, err := Parse(startCoord)
	if err != nil {
		return nil, err
	}

	segments := p.board.Segments(Coordinate{Row: row, Col: col}, next.spec.Size, o)
	if err := p.board.CanPlace(segments); err != nil {
		return nil, err
	}

	ship := p.board.PlaceShip(next.spec, next.placementIndex, segments)
	p.placedCount++
	g.updatedAt = now

	g.advancePlacementPhase(now)

	return ship, nil
}

func (g *Game) advancePlacementPhase(now time.Time) {
	switch g.mode {
	case ModeSinglePlayer:
		if g.player1.allPlaced() {
			g.startPlay(now)
		}
	case ModeMultiplayer:
		p1Done, p2Done := g.player1.allPlaced(), g.player2.allPlaced()
		switch {
		case p1Done && p2Done:
			g.startPlay(now)
		case p1Done:
			g.status = StatusPlayer2Placing
		case p2Done:
			g.status = StatusPlayer1Placing
		}
	}
}

func (g *Game) startPlay(now time.Time) {
	g.status = StatusInProgress
	g.currentTurnPlayerID = g.player1.id
	g.startedAt = now
}

// ShotOutcome is the result of a shoot operation, including the AI's
// immediate follow-up shot in single-player mode.
type ShotOutcome struct {
	Result       ShotResult
	ShipName     string
	GameFinished bool
	WinnerID     string
	AIShot       *Shot
}

// Shoot resolves a shot by shooterID at coordinate coordStr, advances the
// turn, checks for a win, and - in single-player mode, if the game did not
// just finish - immediately computes the AI's reply shot within the same
// lock (spec.md §4.4.1 step 5, §4.4.3).
func (g *Game) Shoot(shooterID, coordStr string, now time.Time) (ShotOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusInProgress {
		return ShotOutcome{}, ErrWrongPhase
	}

	shooter, target, err := g.resolvePlayer(shooterID)
	if err != nil {
		return ShotOutcome{}, err
	}
	if g.currentTurnPlayerID != shooterID {
		return ShotOutcome{}, ErrNotYourTurn
	}

	outcome, err := g.resolveShot(shooter, target, coordStr, now)
	if err != nil {
		return ShotOutcome{}, err
	}

	if !outcome.GameFinished && g.mode == ModeSinglePlayer {
		outcome.AIShot = g.performAITurn(now)
		if g.status == StatusFinished {
			outcome.GameFinished = true
			outcome.WinnerID = g.winnerID
		}
	}

	return outcome, nil
}

func (g *Game) resolveShot(shooter, target *player, coordStr string, now time.Time) (ShotOutcome, error) {
	row, col, err := Parse(coordStr)
	if err != nil {
		return ShotOutcome{}, err
	}

	code, err := Encode(row, col, g.boardSize)
	if err != nil {
		return ShotOutcome{}, ErrOutOfBounds
	}

	if shooter.board.HasShotAt(code) {
		return ShotOutcome{}, ErrAlreadyShot
	}

	result, shipName := target.board.ResolveShot(code)
	shooter.board.RecordShot(code, result)

	shot := Shot{
		Coordinate: Coordinate{Row: row, Col: col},
		Code:       code,
		Result:     result,
		ShipName:   shipName,
		ShooterID:  shooter.id,
		Timestamp:  now,
		Index:      len(g.shotsHistory),
	}
	g.shotsHistory = append(g.shotsHistory, shot)
	g.updatedAt = now

	outcome := ShotOutcome{Result: result, ShipName: shipName}

	if target.board.AllSunk() {
		g.status = StatusFinished
		g.winnerID = shooter.id
		g.finishedAt = now
		outcome.GameFinished = true
		outcome.WinnerID = shooter.id
		return outcome, nil
	}

	g.passTurn()

	return outcome, nil
}

// passTurn implements the engine's chosen turn rule: the turn changes on
// every non-terminal shot, regardless of result (spec.md §4.4.1 step 4).
func (g *Game) passTurn() {
	switch g.currentTurnPlayerID {
	case g.player1.id:
		g.currentTurnPlayerID = g.player2.id
	case g.player2.id:
		g.currentTurnPlayerID = g.player1.id
	}
}

func (g *Game) performAITurn(now time.Time) *Shot {
	ai, human := g.player2, g.player1

	coordStr := g.selectAIShot(ai.board)

	outcome, err := g.resolveShot(ai, human, coordStr, now)
	if err != nil {
		// The AI only ever selects in-bounds, not-yet-shot coordinates;
		// reaching this means the hunt/target heuristic itself is broken.
		panic(fmt.Sprintf("ai produced invalid shot %q: %v", coordStr, err))
	}

	g.updateAIState(outcome)

	shot := g.shotsHistory[len(g.shotsHistory)-1]
	return &shot
}

func (g *Game) updateAIState(outcome ShotOutcome) {
	last := g.shotsHistory[len(g.shotsHistory)-1]

	switch {
	case outcome.GameFinished:
		g.ai.mode = aiHunt
		g.ai.lastHits = nil
		g.ai.lockedAxis = axisNone
	case outcome.Result == ShotSunk:
		g.ai.mode = aiHunt
		g.ai.lastHits = nil
		g.ai.lockedAxis = axisNone
	case outcome.Result == ShotHit:
		g.ai.mode = aiTarget
		g.ai.lastHits = append(g.ai.lastHits, last.Code)
		if len(g.ai.lastHits) >= 2 {
			g.ai.lockAxis()
		}
	}
}

// GetView renders the state of the game as seen by observerID: the
// observer's own board is shown in full, the opponent's only through the
// shots fired at it (spec.md §4.4.1 getGameState, §9 fog-of-war).
func (g *Game) GetView(observerID string) (View, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	self, opponent, err := g.resolvePlayer(observerID)
	if err != nil {
		return View{}, err
	}

	view := View{
		GameID:      g.id,
		Mode:        g.mode,
		Status:      g.status,
		CurrentTurn: g.currentTurnPlayerID,
		WinnerID:    g.winnerID,
		Self:        summarizePlayer(self, true),
	}

	if opponent != nil {
		view.Opponent = summarizePlayer(opponent, false)
	}

	return view, nil
}

func summarizePlayer(p *player, revealShips bool) PlayerSummary {
	summary := PlayerSummary{
		PlayerID: p.id,
		Ships:    make([]ShipView, 0, len(p.board.Fleet().Ships())),
	}

	for _, ship := range p.board.Fleet().Ships() {
		sv := ShipView{
			TemplateID:     ship.TemplateID,
			Name:           ship.Name,
			Size:           ship.Size,
			PlacementIndex: ship.PlacementIndex,
			IsSunk:         ship.IsSunk(),
		}
		if revealShips || sv.IsSunk {
			for _, seg := range ship.Segments() {
				row, col := Decode(seg.Code)
				sv.Segments = append(sv.Segments, SegmentView{
					Coordinate: Format(row, col),
					IsHit:      seg.IsHit,
				})
			}
		}
		summary.Ships = append(summary.Ships, sv)
	}

	for _, e := range p.board.shotsFired.InOrder() {
		row, col := Decode(e.Code)
		summary.ShotsTaken = append(summary.ShotsTaken, ShotView{
			Coordinate: Format(row, col),
			Result:     e.Value,
		})
	}

	return summary
}

// View is the fog-of-war-respecting snapshot returned by GetView.
type View struct {
	GameID      string
	Mode        Mode
	Status      Status
	CurrentTurn string
	WinnerID    string
	Self        PlayerSummary
	Opponent    PlayerSummary
}

// PlayerSummary describes one side of a View.
type PlayerSummary struct {
	PlayerID   string
	Ships      []ShipView
	ShotsTaken []ShotView
}

// ShipView describes one ship within a PlayerSummary. Segments is only
// populated for the observer's own ships, or for an opponent's ship once
// it is fully sunk.
type ShipView struct {
	TemplateID     string
	Name           string
	Size           int
	PlacementIndex int
	IsSunk         bool
	Segments       []SegmentView
}

// SegmentView describes one cell of a ShipView.
type SegmentView struct {
	Coordinate string
	IsHit      bool
}

// ShotView describes one shot a player has taken, from their own
// perspective (their own fired-shots index, not the shared history).
type ShotView struct {
	Coordinate string
	Result     ShotResult
}

// Stats summarizes a finished or in-progress game from observerID's own
// perspective (spec.md §4.4.1 getStats): shots observerID fired, their
// accuracy, and sunk-ship counts on both sides.
type Stats struct {
	GameID          string
	Mode            Mode
	Status          Status
	WinnerID        string
	TotalShots      int
	Hits            int
	Misses          int
	Accuracy        float64
	EnemyShipsSunk  int
	OwnShipsSunk    int
	DurationSeconds int64
}

// GetStats computes aggregate statistics over the game's shot history from
// observerID's perspective. Only a participant may request a game's stats.
func (g *Game) GetStats(observerID string) (Stats, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	self, opponent, err := g.resolvePlayer(observerID)
	if err != nil {
		return Stats{}, ErrUnauthorized
	}

	stats := Stats{
		GameID:       g.id,
		Mode:         g.mode,
		Status:       g.status,
		WinnerID:     g.winnerID,
		OwnShipsSunk: countSunkShips(self),
	}
	if opponent != nil {
		stats.EnemyShipsSunk = countSunkShips(opponent)
	}

	for _, shot := range g.shotsHistory {
		if shot.ShooterID != self.id {
			continue
		}
		stats.TotalShots++
		if shot.Result == ShotHit || shot.Result == ShotSunk {
			stats.Hits++
		} else {
			stats.Misses++
		}
	}
	if stats.TotalShots > 0 {
		stats.Accuracy = float64(stats.Hits) / float64(stats.TotalShots)
	}

	if !g.startedAt.IsZero() {
		end := g.finishedAt
		if end.IsZero() && len(g.shotsHistory) > 0 {
			end = g.shotsHistory[len(g.shotsHistory)-1].Timestamp
		}
		if !end.IsZero() {
			stats.DurationSeconds = int64(end.Sub(g.startedAt).Seconds())
		}
	}

	return stats, nil
}

func countSunkShips(p *player) int {
	count := 0
	for _, ship := range p.board.Fleet().Ships() {
		if ship.IsSunk() {
			count++
		}
	}
	return count
}

// ShotHistory returns a copy of every shot fired in the game, in order.
// Nothing about a shot (coordinate, result) is hidden information once
// fired, so this is an unfiltered read restricted to participants.
func (g *Game) ShotHistory(observerID string) ([]Shot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, _, err := g.resolvePlayer(observerID); err != nil {
		return nil, ErrUnauthorized
	}

	out := make([]Shot, len(g.shotsHistory))
	copy(out, g.shotsHistory)
	return out, nil
}
