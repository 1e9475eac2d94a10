package model

import "testing"

func TestCitiesClosedWorld(t *testing.T) {
	if len(Cities) != 10 {
		t.Fatalf("Cities has %d entries, want 10", len(Cities))
	}

	seen := make(map[string]bool)
	for _, c := range Cities {
		if seen[c.Name] {
			t.Errorf("duplicate city %q", c.Name)
		}
		seen[c.Name] = true

		if c.Role != "Origin" && c.Role != "Destination" {
			t.Errorf("city %q has role %q", c.Name, c.Role)
		}
	}

	if got := len(OriginCityNames()); got != 3 {
		t.Errorf("origins = %d, want 3", got)
	}
	if got := len(DestinationCityNames()); got != 7 {
		t.Errorf("destinations = %d, want 7", got)
	}
	if got := len(CityNames()); got != 10 {
		t.Errorf("city names = %d, want 10", got)
	}
}

func TestStatusLifecycleOrder(t *testing.T) {
	want := []string{"Booked", "In Transit", "Arrived", "Customs Cleared", "Delivered"}
	got := StatusNames()
	if len(got) != len(want) {
		t.Fatalf("statuses = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("status %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTransportModes(t *testing.T) {
	got := TransportModeNames()
	if len(got) != 2 || got[0] != "Air" || got[1] != "Sea" {
		t.Errorf("transport modes = %v, want [Air Sea]", got)
	}
}
