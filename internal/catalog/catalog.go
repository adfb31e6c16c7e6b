// Package catalog provides the read-only ship-template and base-fleet data
// a Game is created from. It intentionally carries no create/update/delete
// surface: fleets are seeded at process start and never mutated afterward.
package catalog

import (
	"errors"

	"github.com/ghanshyammann/seawar/internal/model"
)

// ErrUnknownTemplate is returned when a ship template id has no entry.
var ErrUnknownTemplate = errors.New("unknown ship template")

// ErrUnknownFleet is returned when a base fleet id has no entry.
var ErrUnknownFleet = errors.New("unknown base fleet")

// ShipTemplate is the catalog's description of one kind of ship.
type ShipTemplate struct {
	ID   string
	Name string
	Size int
}

// BaseFleet is a named, ordered list of ship templates a game can be
// created from.
type BaseFleet struct {
	ID    string
	Name  string
	Ships []ShipTemplate
}

// Provider resolves base fleets and ship templates by id. It has no
// mutating methods; the catalog is a fixed reference dataset.
type Provider interface {
	Fleet(id string) (BaseFleet, error)
	Template(id string) (ShipTemplate, error)
	Fleets() []BaseFleet
}

// memoryProvider is an in-memory Provider seeded once at construction.
type memoryProvider struct {
	fleets    map[string]BaseFleet
	templates map[string]ShipTemplate
}

// NewProvider returns the default catalog: the classic five-ship Battleship
// fleet plus a small two-ship "patrol" fleet used for fast test games.
func NewProvider() Provider {
	carrier := ShipTemplate{ID: "carrier", Name: "Carrier", Size: 5}
	battleship := ShipTemplate{ID: "battleship", Name: "Battleship", Size: 4}
	cruiser := ShipTemplate{ID: "cruiser", Name: "Cruiser", Size: 3}
	submarine := ShipTemplate{ID: "submarine", Name: "Submarine", Size: 3}
	destroyer := ShipTemplate{ID: "destroyer", Name: "Destroyer", Size: 2}
	patrolBoat := ShipTemplate{ID: "patrol", Name: "Patrol Boat", Size: 2}

	p := &memoryProvider{
		templates: map[string]ShipTemplate{
			carrier.ID:    carrier,
			battleship.ID: battleship,
			cruiser.ID:    cruiser,
			submarine.ID:  submarine,
			destroyer.ID:  destroyer,
			patrolBoat.ID: patrolBoat,
		},
		fleets: map[string]BaseFleet{
			"classic": {
				ID:    "classic",
				Name:  "Classic Fleet",
				Ships: []ShipTemplate{carrier, battleship, cruiser, submarine, destroyer},
			},
			"patrol-pair": {
				ID:    "patrol-pair",
				Name:  "Patrol Pair",
				Ships: []ShipTemplate{patrolBoat, patrolBoat},
			},
		},
	}

	return p
}

// Fleet returns the named fleet.
func (p *memoryProvider) Fleet(id string) (BaseFleet, error) {
	f, ok := p.fleets[id]
	if !ok {
		return BaseFleet{}, ErrUnknownFleet
	}
	return f, nil
}

// Template returns the named ship template.
func (p *memoryProvider) Template(id string) (ShipTemplate, error) {
	t, ok := p.templates[id]
	if !ok {
		return ShipTemplate{}, ErrUnknownTemplate
	}
	return t, nil
}

// Fleets returns every registered base fleet, for listing endpoints.
func (p *memoryProvider) Fleets() []BaseFleet {
	out := make([]BaseFleet, 0, len(p.fleets))
	for _, f := range p.fleets {
		out = append(out, f)
	}
	return out
}

// ResolveShipSpecs converts a BaseFleet into the ordered []model.ShipSpec a
// Game is created with.
func ResolveShipSpecs(fleet BaseFleet) []model.ShipSpec {
	specs := make([]model.ShipSpec, len(fleet.Ships))
	for i, t := range fleet.Ships {
		specs[i] = model.ShipSpec{TemplateID: t.ID, Name: t.Name, Size: t.Size}
	}
	return specs
}
