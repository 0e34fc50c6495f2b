package mahjong

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"riichi/common/cache"
	"riichi/common/log"
)

type Candidate struct {
	Discard Tile
	Waits   []Tile // 听哪些牌
	Ukeire  int    // 有效张数
}

// Searcher 听牌搜索，结果按 手牌+副露数 缓存
type Searcher struct {
	cache       *cache.GeneralCache
	parallelism int
}

type SearcherOptions struct {
	MaxCost     int64
	TTL         time.Duration
	Parallelism int
}

func NewSearcher(opts SearcherOptions) (*Searcher, error) {
	if opts.MaxCost <= 0 {
		opts.MaxCost = 1 << 16
	}
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Minute
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 4
	}
	c, err := cache.NewGeneralCache(opts.MaxCost, opts.TTL)
	if err != nil {
		return nil, err
	}
	return &Searcher{cache: c, parallelism: opts.Parallelism}, nil
}

func (s *Searcher) Close() {
	s.cache.Close()
}

// Waits 带缓存的 CheckTenpai
func (s *Searcher) Waits(hand Hand, melds []Huro) []Tile {
	key := hand.key(len(melds)) + meldsKey(melds)
	if v, ok := s.cache.Get(key); ok {
		if waits, ok := v.([]Tile); ok {
			return append([]Tile(nil), waits...)
		}
	}
	log.Debug("听牌缓存未命中: %s", hand)
	waits := CheckTenpai(hand, melds)
	s.cache.Set(key, append([]Tile(nil), waits...))
	return waits
}

// WaitsAndUkeire 听牌 + 进张数。visible 为场上可见张数（含自己手牌以外的牌河、副露、宝牌指示牌），可为 nil
func (s *Searcher) WaitsAndUkeire(hand Hand, melds []Huro, visible *Hand) ([]Tile, int) {
	waits := s.Waits(hand, melds)
	return waits, ukeireByWaits(hand, melds, waits, visible)
}

// SeekCandidates 14 张手牌，打出哪张后听牌。每种切牌并发计算
func (s *Searcher) SeekCandidates(ctx context.Context, hand Hand, melds []Huro, visible *Hand) ([]Candidate, error) {
	discards := make([]Tile, 0, 14)
	for _, t := range AllTiles {
		if hand[t] > 0 {
			discards = append(discards, t)
		}
	}

	results := make([]Candidate, len(discards))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, d := range discards {
		i, d := i, d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			h13 := hand.Without(d)
			waits, ukeire := s.WaitsAndUkeire(h13, melds, visible)
			results[i] = Candidate{Discard: d, Waits: waits, Ukeire: ukeire}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := results[:0]
	for _, c := range results {
		if len(c.Waits) > 0 {
			out = append(out, c)
		}
	}
	return out, nil
}

func ukeireByWaits(hand Hand, melds []Huro, waits []Tile, visible *Hand) int {
	mc := meldCounts(melds)
	ukeire := 0
	for _, t := range waits {
		add := 4 - int(hand[t]) - int(mc[t])
		if visible != nil {
			add -= int(visible[t])
		}
		if add > 0 {
			ukeire += add
		}
	}
	return ukeire
}

func meldsKey(melds []Huro) string {
	b := make([]byte, 0, len(melds)*2)
	for _, m := range melds {
		if len(m.Tiles) == 0 {
			b = append(b, byte(m.Kind), 0)
			continue
		}
		b = append(b, byte(m.Kind), byte(m.Tiles[0]))
	}
	return string(b)
}

// Shanten 向听数，取一般形、七对子、国士无双的最小值；-1 表示已和牌
func Shanten(hand Hand, exposed int) int {
	best := ShantenNormal(hand, exposed)
	if exposed == 0 {
		if v := ShantenChiitoi(hand); v < best {
			best = v
		}
		if v := ShantenKokushi(hand); v < best {
			best = v
		}
	}
	return best
}

// ShantenKokushi 国士无双向听数
func ShantenKokushi(hand Hand) int {
	unique := 0
	pair := false
	for _, t := range kokushiTiles {
		if hand[t] > 0 {
			unique++
			if hand[t] >= 2 {
				pair = true
			}
		}
	}
	sh := 13 - unique
	if pair {
		sh--
	}
	return sh
}

// ShantenChiitoi 七对子向听数
func ShantenChiitoi(hand Hand) int {
	pairs := 0
	unique := 0
	for _, t := range AllTiles {
		if hand[t] > 0 {
			unique++
		}
		if hand[t] >= 2 {
			pairs++
		}
	}
	sh := 6 - pairs
	if unique < 7 {
		sh += 7 - unique
	}
	return sh
}

func ShantenNormal(hand Hand, exposed int) int {
	best := 8 // 一般型最差上界
	work := hand
	dfsNormalShanten(&work, exposed, 0, 0, &best)
	return best
}

// dfsNormalShanten m：已成面子数（含副露）、p：雀头数（0/1）、t：搭子数
func dfsNormalShanten(h *Hand, m int, p int, t int, best *int) {
	if m > 4 {
		return
	}

	t2 := t
	if limit := 4 - m; t2 > limit {
		t2 = limit
	}

	sh := 8 - 2*m - t2 - p
	if sh < *best {
		*best = sh
	}

	i := firstNonZero(h)
	if i == -1 {
		return
	}
	tile := Tile(i)

	if (*h)[i] >= 3 {
		(*h)[i] -= 3
		dfsNormalShanten(h, m+1, p, t, best)
		(*h)[i] += 3
	}

	if n1, ok := tile.shift(1); ok {
		if n2, ok := tile.shift(2); ok && (*h)[n1] > 0 && (*h)[n2] > 0 {
			(*h)[i]--
			(*h)[n1]--
			(*h)[n2]--
			dfsNormalShanten(h, m+1, p, t, best)
			(*h)[i]++
			(*h)[n1]++
			(*h)[n2]++
		}
	}

	if p == 0 && (*h)[i] >= 2 {
		(*h)[i] -= 2
		dfsNormalShanten(h, m, 1, t, best)
		(*h)[i] += 2
	}

	for _, d := range []int{1, 2} {
		if n, ok := tile.shift(d); ok && (*h)[n] > 0 {
			(*h)[i]--
			(*h)[n]--
			dfsNormalShanten(h, m, p, t+1, best)
			(*h)[i]++
			(*h)[n]++
		}
	}

	(*h)[i]--
	dfsNormalShanten(h, m, p, t, best)
	(*h)[i]++
}
