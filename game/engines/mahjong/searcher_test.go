package mahjong

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestSearcher(t testing.TB) *Searcher {
	t.Helper()
	s, err := NewSearcher(SearcherOptions{MaxCost: 1 << 10, TTL: time.Minute, Parallelism: 2})
	if err != nil {
		t.Fatalf("NewSearcher: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestSearcherWaitsMatchCheckTenpai(t *testing.T) {
	s := newTestSearcher(t)
	h := mustHand(t, "123456789p33m55s")
	first := s.Waits(h, nil)
	s.cache.Wait()
	second := s.Waits(h, nil)
	assertWaits(t, first, Man3, Sou5)
	assertWaits(t, second, Man3, Sou5)

	// 缓存键区分副露
	melds := mustMelds(t, "pon:555s")
	assertWaits(t, s.Waits(mustHand(t, "123456789p3m"), melds), Man3)
}

func TestSearcherChiitoiUkeire(t *testing.T) {
	s := newTestSearcher(t)
	h := mustHand(t, "112233m1122p11s1z")
	if got := Shanten(h, 0); got != 0 {
		t.Fatalf("chiitoi shanten expected 0, got %d", got)
	}
	waits, ukeire := s.WaitsAndUkeire(h, nil, nil)
	assertWaits(t, waits, East)
	if ukeire != 3 {
		t.Fatalf("chiitoi ukeire expected 3 (4-1), got %d", ukeire)
	}

	var visible Hand
	visible[East] = 2
	if _, ukeire := s.WaitsAndUkeire(h, nil, &visible); ukeire != 1 {
		t.Fatalf("ukeire with 2 visible expected 1, got %d", ukeire)
	}
}

func TestSeekCandidates(t *testing.T) {
	s := newTestSearcher(t)
	h := mustHand(t, "123456789p33m55s1z")
	cands, err := s.SeekCandidates(context.Background(), h, nil, nil)
	if err != nil {
		t.Fatalf("SeekCandidates: %v", err)
	}
	if len(cands) != 1 || cands[0].Discard != East {
		t.Fatalf("expected only the East discard, got %+v", cands)
	}
	assertWaits(t, cands[0].Waits, Man3, Sou5)
	if cands[0].Ukeire != 4 {
		t.Fatalf("expected ukeire 4, got %d", cands[0].Ukeire)
	}
}

func TestSeekCandidatesCanceled(t *testing.T) {
	s := newTestSearcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.SeekCandidates(ctx, mustHand(t, "123456789p33m55s1z"), nil, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestShanten(t *testing.T) {
	cases := []struct {
		hand string
		want int
	}{
		{"123456789p33m555s", -1},
		{"123456789p33m55s", 0},
		{"19m19p19s1234567z", 0},
		{"19m19p19s123456z5m", 1},
		{"1122m3344p5566s7z", 0},
		{"1357m2468p1357s1z", 4},
	}
	for _, c := range cases {
		if got := Shanten(mustHand(t, c.hand), 0); got != c.want {
			t.Errorf("%s: expected shanten %d, got %d", c.hand, c.want, got)
		}
	}
	if got := ShantenKokushi(mustHand(t, "19m19p19s1234567z")); got != 0 {
		t.Fatalf("kokushi 13 singles: expected 0, got %d", got)
	}
	// 四张相同只算一个对子，还缺一种牌
	if got := ShantenChiitoi(mustHand(t, "1111m2233p4455s6z")); got != 2 {
		t.Fatalf("chiitoi with a quad: expected 2, got %d", got)
	}
}

func BenchmarkCheckTenpai(b *testing.B) {
	h := HandFromTiles(MustParseTiles("1112345678999m"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CheckTenpai(h, nil)
	}
}

func BenchmarkSeekCandidates_NoCache(b *testing.B) {
	h := HandFromTiles(MustParseTiles("123m123p123s78m11z1s"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := NewSearcher(SearcherOptions{})
		if err != nil {
			b.Fatal(err)
		}
		_, _ = s.SeekCandidates(context.Background(), h, nil, nil)
		s.Close()
	}
}

func BenchmarkSeekCandidates_Cached(b *testing.B) {
	s := newTestSearcher(b)
	h := HandFromTiles(MustParseTiles("123m123p123s78m11z1s"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.SeekCandidates(context.Background(), h, nil, nil)
	}
}

func BenchmarkShanten(b *testing.B) {
	h := HandFromTiles(MustParseTiles("19m19p19s1234567z"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Shanten(h, 0)
	}
}
