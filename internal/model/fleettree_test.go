package model

import "testing"

func TestFleetTreeMarkHitAndSunk(t *testing.T) {
	fleet := NewFleetTree()
	ship := fleet.AddShip(ShipSpec{TemplateID: "patrol", Name: "Patrol", Size: 2}, 0, []int{101, 102})

	if ship.IsSunk() {
		t.Fatal("freshly placed ship reports sunk")
	}
	if fleet.AllSunk() {
		t.Fatal("fleet reports AllSunk before any hits")
	}

	found, sunk := fleet.MarkHit(101)
	if !found || sunk {
		t.Errorf("MarkHit(101) = (%v,%v), want (true,false)", found, sunk)
	}

	// Idempotent re-application of the same hit.
	found, sunk = fleet.MarkHit(101)
	if !found || sunk {
		t.Errorf("repeated MarkHit(101) = (%v,%v), want (true,false)", found, sunk)
	}

	found, sunk = fleet.MarkHit(102)
	if !found || !sunk {
		t.Errorf("MarkHit(102) = (%v,%v), want (true,true)", found, sunk)
	}

	if !ship.IsSunk() {
		t.Error("ship should be sunk after all segments hit")
	}
	if !fleet.AllSunk() {
		t.Error("fleet should report AllSunk once its only ship is sunk")
	}
	if fleet.AliveShipCount() != 0 {
		t.Errorf("AliveShipCount() = %d, want 0", fleet.AliveShipCount())
	}
	if fleet.SunkShipCount() != 1 {
		t.Errorf("SunkShipCount() = %d, want 1", fleet.SunkShipCount())
	}
}

func TestFleetTreeMarkHitUnknownCode(t *testing.T) {
	fleet := NewFleetTree()
	fleet.AddShip(ShipSpec{TemplateID: "patrol", Name: "Patrol", Size: 1}, 0, []int{101})

	found, sunk := fleet.MarkHit(999)
	if found || sunk {
		t.Errorf("MarkHit(999) = (%v,%v), want (false,false)", found, sunk)
	}
}

func TestFleetTreeShipAtResolvesByIndex(t *testing.T) {
	fleet := NewFleetTree()
	s1 := fleet.AddShip(ShipSpec{TemplateID: "a", Name: "A", Size: 1}, 0, []int{101})
	s2 := fleet.AddShip(ShipSpec{TemplateID: "b", Name: "B", Size: 1}, 0, []int{102})

	if got := fleet.ShipAt(s1.index); got != s1 {
		t.Errorf("ShipAt(%d) = %v, want s1", s1.index, got)
	}
	if got := fleet.ShipAt(s2.index); got != s2 {
		t.Errorf("ShipAt(%d) = %v, want s2", s2.index, got)
	}
	if got := fleet.ShipAt(999); got != nil {
		t.Errorf("ShipAt(999) = %v, want nil", got)
	}
}

func TestFleetTreeEmptyIsNotAllSunk(t *testing.T) {
	fleet := NewFleetTree()
	if fleet.AllSunk() {
		t.Error("empty fleet should not report AllSunk")
	}
}
