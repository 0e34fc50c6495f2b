package mahjong

import "testing"

func mustHand(t *testing.T, s string) Hand {
	t.Helper()
	tiles, _, err := ParseTiles(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return HandFromTiles(tiles)
}

func mustTile(t *testing.T, s string) Tile {
	t.Helper()
	tile, err := ParseTile(s)
	if err != nil {
		t.Fatalf("parse tile %q: %v", s, err)
	}
	return tile
}

func mustMelds(t *testing.T, specs ...string) []Huro {
	t.Helper()
	melds := make([]Huro, 0, len(specs))
	for _, s := range specs {
		m, err := ParseHuro(s, 1)
		if err != nil {
			t.Fatalf("parse meld %q: %v", s, err)
		}
		melds = append(melds, m)
	}
	return melds
}

// ctxFor hand 含和了牌；默认南家、东场
func ctxFor(t *testing.T, hand, win string, method WinMethod, melds ...string) *ScoringContext {
	t.Helper()
	tiles, red, err := ParseTiles(hand)
	if err != nil {
		t.Fatalf("parse %q: %v", hand, err)
	}
	ctx := &ScoringContext{
		Hand:      HandFromTiles(tiles),
		Melds:     mustMelds(t, melds...),
		WinTile:   mustTile(t, win),
		Method:    method,
		SeatWind:  WindSouth,
		RoundWind: WindEast,
		RedFives:  red,
	}
	if err := ctx.Validate(); err != nil {
		t.Fatalf("context %q: %v", hand, err)
	}
	return ctx
}

func yakuNames(yakus []YakuResult) []string {
	out := make([]string, 0, len(yakus))
	for _, y := range yakus {
		out = append(out, y.Yaku.String())
	}
	return out
}

func hasYaku(yakus []YakuResult, y Yaku) bool {
	for _, r := range yakus {
		if r.Yaku == y {
			return true
		}
	}
	return false
}
