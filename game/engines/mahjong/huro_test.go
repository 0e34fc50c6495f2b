package mahjong

import (
	"errors"
	"testing"
)

func TestHuroUpgrade(t *testing.T) {
	pon, err := NewHuro(HuroTriplet, []Tile{Sou5, Sou5, Sou5}, Sou5, 2)
	if err != nil {
		t.Fatalf("pon: %v", err)
	}
	kan, err := pon.Upgrade(Sou5)
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if kan.Kind != HuroAddedQuad || len(kan.Tiles) != 4 || kan.From != 2 {
		t.Fatalf("unexpected kakan %+v", kan)
	}
	if len(pon.Tiles) != 3 {
		t.Fatalf("upgrade mutated the pon: %v", pon.Tiles)
	}

	if _, err := kan.Upgrade(Sou5); !errors.Is(err, ErrInvalidMeldTransition) {
		t.Fatalf("kakan upgrade: expected ErrInvalidMeldTransition, got %v", err)
	}
	if _, err := pon.Upgrade(Sou6); !errors.Is(err, ErrInvalidMeldTransition) {
		t.Fatalf("mismatched upgrade: expected ErrInvalidMeldTransition, got %v", err)
	}
	chi, err := NewHuro(HuroSequence, []Tile{Man4, Man3, Man5}, Man3, 3)
	if err != nil {
		t.Fatalf("chi: %v", err)
	}
	if _, err := chi.Upgrade(Man3); !errors.Is(err, ErrInvalidMeldTransition) {
		t.Fatalf("chi upgrade: expected ErrInvalidMeldTransition, got %v", err)
	}
	if _, err := NewHuro(HuroAddedQuad, []Tile{Sou5, Sou5, Sou5, Sou5}, Sou5, 2); !errors.Is(err, ErrInvalidMeldTransition) {
		t.Fatalf("direct kakan: expected ErrInvalidMeldTransition, got %v", err)
	}
}

func TestNewHuroInvalid(t *testing.T) {
	cases := []struct {
		name  string
		kind  HuroKind
		tiles []Tile
		from  int
		want  error
	}{
		{"seat out of range", HuroTriplet, []Tile{Pin1, Pin1, Pin1}, 4, ErrInvalidSeatPosition},
		{"gap in sequence", HuroSequence, []Tile{Man4, Man5, Man7}, 1, ErrInvalidMeld},
		{"honor sequence", HuroSequence, []Tile{East, South, West}, 1, ErrInvalidMeld},
		{"short quad", HuroDiscardedQuad, []Tile{Pin1, Pin1, Pin1}, 1, ErrInvalidMeld},
		{"invalid tile", HuroTriplet, []Tile{10, 10, 10}, 1, ErrInvalidTile},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewHuro(c.kind, c.tiles, c.tiles[0], c.from); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestParseHuro(t *testing.T) {
	m, err := ParseHuro("kakan:5555s", 2)
	if err != nil {
		t.Fatalf("kakan: %v", err)
	}
	if m.Kind != HuroAddedQuad || m.Concealed() {
		t.Fatalf("unexpected %+v", m)
	}
	ankan, err := ParseHuro("ankan:1111z", 3)
	if err != nil {
		t.Fatalf("ankan: %v", err)
	}
	if !ankan.Concealed() || ankan.From != -1 {
		t.Fatalf("ankan must be concealed without a source seat: %+v", ankan)
	}
	if _, err := ParseHuro("pon555s", 1); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("missing colon: expected ErrInvalidNotation, got %v", err)
	}
	if _, err := ParseHuro("kong:5555s", 1); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("unknown kind: expected ErrInvalidNotation, got %v", err)
	}
}

func TestSeatsAndWinds(t *testing.T) {
	if _, err := NewSeat(4); !errors.Is(err, ErrInvalidSeatPosition) {
		t.Fatalf("seat 4: expected ErrInvalidSeatPosition, got %v", err)
	}
	if got := SeatWind(1, 1); got != WindEast {
		t.Fatalf("dealer seat wind: %s", got)
	}
	if got := SeatWind(1, 0); got != WindNorth {
		t.Fatalf("seat before dealer: %s", got)
	}
	if WindNorth.Next() != WindEast || WindSouth.Tile() != South {
		t.Fatalf("wind cycle broken")
	}
	if w, err := ParseWind("W"); err != nil || w != WindWest {
		t.Fatalf("ParseWind(W) = %s, %v", w, err)
	}
	if _, err := ParseWind("up"); !errors.Is(err, ErrInvalidSeatPosition) {
		t.Fatalf("ParseWind(up): expected ErrInvalidSeatPosition, got %v", err)
	}
}
