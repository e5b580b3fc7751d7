package engine

import "testing"

func TestCoordLabel(t *testing.T) {
	tests := []struct {
		coord Coord
		want  string
	}{
		{Coord{Row: 0, Col: 0}, "1a"},
		{Coord{Row: 2, Col: 2}, "3c"},
		{Coord{Row: 8, Col: 11}, "12i"},
		{Coord{Row: 4, Col: 9}, "10e"},
	}
	for _, tt := range tests {
		if got := tt.coord.Label(); got != tt.want {
			t.Errorf("Label(%+v) = %q, want %q", tt.coord, got, tt.want)
		}
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		label   string
		want    Coord
		wantErr bool
	}{
		{"1a", Coord{Row: 0, Col: 0}, false},
		{"3c", Coord{Row: 2, Col: 2}, false},
		{"12i", Coord{Row: 8, Col: 11}, false},
		{" 7B ", Coord{Row: 1, Col: 6}, false},
		{"", Coord{}, true},
		{"a", Coord{}, true},
		{"0a", Coord{}, true},
		{"a3", Coord{}, true},
		{"33", Coord{}, true},
	}
	for _, tt := range tests {
		got, err := ParseCoord(tt.label)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCoord(%q): expected error", tt.label)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCoord(%q): unexpected error %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCoord(%q) = %+v, want %+v", tt.label, got, tt.want)
		}
	}
}

func TestParseHotel(t *testing.T) {
	id, err := ParseHotel("tower")
	if err != nil || id != Tower {
		t.Errorf("ParseHotel(tower) = %v, %v; want Tower", id, err)
	}
	id, err = ParseHotel("Worldwide")
	if err != nil || id != Worldwide {
		t.Errorf("ParseHotel(Worldwide) = %v, %v; want Worldwide", id, err)
	}
	if _, err := ParseHotel("Hilton"); err == nil {
		t.Error("ParseHotel(Hilton): expected error")
	}
}

func TestHotelTiers(t *testing.T) {
	tests := []struct {
		id   HotelID
		tier int
	}{
		{Worldwide, 1},
		{Sackson, 1},
		{Festival, 2},
		{Imperial, 2},
		{American, 2},
		{Continental, 3},
		{Tower, 3},
	}
	for _, tt := range tests {
		if got := tt.id.Tier(); got != tt.tier {
			t.Errorf("%s.Tier() = %d, want %d", tt.id, got, tt.tier)
		}
	}
	if NoHotel.Tier() != 0 {
		t.Errorf("NoHotel.Tier() = %d, want 0", NoHotel.Tier())
	}
}

func TestPlayerHandAndStocks(t *testing.T) {
	p := &Player{Name: "Alice", Stocks: make(map[HotelID]int)}
	p.Hand = []Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}}

	if !p.removeFromHand(Coord{Row: 0, Col: 0}) {
		t.Error("removeFromHand failed for a held tile")
	}
	if p.removeFromHand(Coord{Row: 5, Col: 5}) {
		t.Error("removeFromHand succeeded for a tile not in hand")
	}
	if len(p.Hand) != 1 {
		t.Errorf("Expected 1 tile left, got %d", len(p.Hand))
	}

	p.addStock(Tower, 3)
	p.removeStock(Tower, 3)
	if _, ok := p.Stocks[Tower]; ok {
		t.Error("Expected empty holding to be deleted from the map")
	}
}
