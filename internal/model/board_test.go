package model

import "testing"

func TestBoardPlaceShipAndOverlap(t *testing.T) {
	board := NewBoard(10)

	segments := board.Segments(Coordinate{Row: 1, Col: 1}, 2, Horizontal)
	if err := board.CanPlace(segments); err != nil {
		t.Fatalf("CanPlace: unexpected error: %v", err)
	}
	board.PlaceShip(ShipSpec{TemplateID: "patrol", Name: "Patrol", Size: 2}, 0, segments)

	if board.OccupiedSize() != 2 {
		t.Fatalf("OccupiedSize() = %d, want 2", board.OccupiedSize())
	}

	overlapping := board.Segments(Coordinate{Row: 1, Col: 2}, 2, Vertical)
	if err := board.CanPlace(overlapping); err != ErrOverlap {
		t.Errorf("CanPlace(overlapping) = %v, want ErrOverlap", err)
	}
}

func TestBoardCanPlaceOutOfBounds(t *testing.T) {
	board := NewBoard(5)
	segments := board.Segments(Coordinate{Row: 5, Col: 5}, 3, Horizontal)
	if err := board.CanPlace(segments); err != ErrOutOfBounds {
		t.Errorf("CanPlace(out of bounds) = %v, want ErrOutOfBounds", err)
	}
}

func TestBoardResolveShotHitSunkWater(t *testing.T) {
	board := NewBoard(10)
	segments := board.Segments(Coordinate{Row: 1, Col: 1}, 2, Horizontal)
	board.PlaceShip(ShipSpec{TemplateID: "patrol", Name: "Patrol", Size: 2}, 0, segments)

	waterCode, _ := Encode(5, 5, 10)
	result, name := board.ResolveShot(waterCode)
	if result != ShotWater || name != "" {
		t.Errorf("ResolveShot(water) = (%v,%q), want (ShotWater,\"\")", result, name)
	}

	hitCode, _ := Encode(1, 1, 10)
	result, name = board.ResolveShot(hitCode)
	if result != ShotHit || name != "Patrol" {
		t.Errorf("ResolveShot(first segment) = (%v,%q), want (ShotHit,Patrol)", result, name)
	}

	sunkCode, _ := Encode(1, 2, 10)
	result, name = board.ResolveShot(sunkCode)
	if result != ShotSunk || name != "Patrol" {
		t.Errorf("ResolveShot(last segment) = (%v,%q), want (ShotSunk,Patrol)", result, name)
	}

	if !board.AllSunk() {
		t.Error("AllSunk() = false after sinking the only ship")
	}
}

func TestBoardShotsFiredTracking(t *testing.T) {
	board := NewBoard(10)
	code, _ := Encode(3, 3, 10)

	if board.HasShotAt(code) {
		t.Fatal("fresh board reports a shot already taken")
	}

	board.RecordShot(code, ShotWater)
	if !board.HasShotAt(code) {
		t.Error("HasShotAt() = false after RecordShot")
	}
}
