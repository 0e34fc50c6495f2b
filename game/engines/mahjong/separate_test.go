package mahjong

import "testing"

func TestSeparateSets(t *testing.T) {
	h := mustHand(t, "123456789p33m555s")
	d := SeparateSets(h, 0, true)
	if !d.OK {
		t.Fatalf("expected decomposition")
	}
	if d.Pair != Man3 {
		t.Fatalf("expected pair 3m, got %s", d.Pair)
	}
	if len(d.Triplets) != 1 || d.Triplets[0] != Sou5 {
		t.Fatalf("expected triplet 5s, got %v", d.Triplets)
	}
	if len(d.Sequences) != 3 {
		t.Fatalf("expected 3 sequences, got %v", d.Sequences)
	}

	if d := SeparateSets(mustHand(t, "123456789p33m55s"), 0, true); d.OK {
		t.Fatalf("13 tiles must not decompose: %+v", d)
	}
	if d := SeparateSets(mustHand(t, "1357m2468p1357s11z"), 0, false); d.OK {
		t.Fatalf("scattered hand decomposed: %+v", d)
	}
}

func TestSeparateSetsImpliesRemainsAreSets(t *testing.T) {
	hands := []struct {
		tiles   string
		exposed int
	}{
		{"123456789p33m555s", 0},
		{"111222333m789p55s", 0},
		{"112233m445566p77s", 0},
		{"111z222z333z444z55z", 0},
		{"234m567p99s", 2},
		{"11m", 4},
	}
	for _, c := range hands {
		h := mustHand(t, c.tiles)
		for _, tripletFirst := range []bool{true, false} {
			d := SeparateSets(h, c.exposed, tripletFirst)
			if !d.OK {
				t.Fatalf("%s: expected decomposition (tripletFirst=%v)", c.tiles, tripletFirst)
			}
			remain := h.Without(d.Pair).Without(d.Pair)
			if !CheckRemainsAreSets(remain, c.exposed) {
				t.Fatalf("%s: remains after pair %s are not sets", c.tiles, d.Pair)
			}
		}
	}
}

func TestCheckRemainsAreSets(t *testing.T) {
	cases := []struct {
		tiles   string
		exposed int
		want    bool
	}{
		{"112233m456p789s", 0, true},
		{"111z123m", 2, true},
		{"11z1234m", 2, false},
		{"123m", 3, true},
		{"123m", 2, false},
		{"", 4, true},
		{"999m1m", 2, false},
	}
	for _, c := range cases {
		if got := CheckRemainsAreSets(mustHand(t, c.tiles), c.exposed); got != c.want {
			t.Errorf("%q exposed=%d: expected %v, got %v", c.tiles, c.exposed, c.want, got)
		}
	}
}

func TestDecompositions(t *testing.T) {
	ds := Decompositions(mustHand(t, "111222333m789p55s"), 0)
	if len(ds) != 2 {
		t.Fatalf("expected triplet and sequence readings, got %d: %+v", len(ds), ds)
	}
	var triplets, runs bool
	for _, d := range ds {
		if d.Pair != Sou5 {
			t.Fatalf("unexpected pair %s", d.Pair)
		}
		switch {
		case len(d.Triplets) == 3 && len(d.Sequences) == 1:
			triplets = true
		case len(d.Triplets) == 0 && len(d.Sequences) == 4:
			runs = true
		}
	}
	if !triplets || !runs {
		t.Fatalf("missing reading: %+v", ds)
	}
}
