package model

import "errors"

// Error kinds returned by the engine. They are transport-independent;
// internal/api maps each to an HTTP status code at the boundary.
var (
	// ErrNotFound is returned when a game, template or fleet id is unknown.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the caller is not a participant in the game.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrWrongPhase is returned when an operation is not valid in the current state.
	ErrWrongPhase = errors.New("wrong phase")
	// ErrNotYourTurn is returned when a shot is attempted by a player who is not on turn.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrMalformedCoordinate is returned when a coordinate string cannot be parsed.
	ErrMalformedCoordinate = errors.New("malformed coordinate")
	// ErrOutOfBounds is returned when a coordinate or ship placement falls outside the board.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrAlreadyShot is returned when a player fires twice at the same coordinate.
	ErrAlreadyShot = errors.New("already shot")
	// ErrOverlap is returned when a ship placement overlaps a previously placed ship.
	ErrOverlap = errors.New("ships cannot overlap")
	// ErrGameFull is returned when joining a game that already has two players.
	ErrGameFull = errors.New("game already has two players")
	// ErrCannotJoinOwn is returned when a player tries to join their own game.
	ErrCannotJoinOwn = errors.New("cannot join your own game")
	// ErrAlreadyJoined is returned when a player who is already a participant tries to join again.
	ErrAlreadyJoined = errors.New("already joined")
	// ErrInvalidFleet is returned when a base fleet violates the occupancy rule or is malformed.
	ErrInvalidFleet = errors.New("invalid fleet")
	// ErrPlacementImpossible is returned when AI auto-placement exhausts its retry budget.
	ErrPlacementImpossible = errors.New("placement impossible")
	// ErrUnknownPlayer is returned when an action names a player who is not in the game.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrInvalidDimensions is returned when a board is created with a size outside [5,20].
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrWrongShip is returned when a placement names a ship other than the
	// next required one in the player's placement order.
	ErrWrongShip = errors.New("not the next ship to place")
)
