package catalog

import "testing"

func TestProviderResolvesKnownFleet(t *testing.T) {
	p := NewProvider()

	fleet, err := p.Fleet("classic")
	if err != nil {
		t.Fatalf("Fleet(classic): %v", err)
	}
	if len(fleet.Ships) != 5 {
		t.Errorf("len(fleet.Ships) = %d, want 5", len(fleet.Ships))
	}

	specs := ResolveShipSpecs(fleet)
	if len(specs) != len(fleet.Ships) {
		t.Fatalf("ResolveShipSpecs length mismatch")
	}
	for i, s := range specs {
		if s.TemplateID != fleet.Ships[i].ID || s.Size != fleet.Ships[i].Size {
			t.Errorf("spec[%d] = %+v, want template %+v", i, s, fleet.Ships[i])
		}
	}
}

func TestProviderUnknownFleet(t *testing.T) {
	p := NewProvider()
	if _, err := p.Fleet("nonexistent"); err != ErrUnknownFleet {
		t.Errorf("Fleet(nonexistent) = %v, want ErrUnknownFleet", err)
	}
}

func TestProviderUnknownTemplate(t *testing.T) {
	p := NewProvider()
	if _, err := p.Template("nonexistent"); err != ErrUnknownTemplate {
		t.Errorf("Template(nonexistent) = %v, want ErrUnknownTemplate", err)
	}
}

func TestProviderFleetsListsEverything(t *testing.T) {
	p := NewProvider()
	fleets := p.Fleets()
	if len(fleets) < 2 {
		t.Errorf("len(Fleets()) = %d, want at least 2", len(fleets))
	}
}
