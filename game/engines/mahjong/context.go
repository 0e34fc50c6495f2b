package mahjong

import "fmt"

type WinMethod int

const (
	WinRon   WinMethod = iota // 荣和
	WinTsumo                  // 自摸
)

func (m WinMethod) String() string {
	if m == WinTsumo {
		return "tsumo"
	}
	return "ron"
}

// ScoringContext 一次和牌计分所需的全部只读信息
type ScoringContext struct {
	Hand      Hand   // 门内手牌，含和了牌
	Melds     []Huro // 副露（含暗杠）
	Discards  []Tile // 自己的牌河
	WinTile   Tile
	Method    WinMethod
	SeatWind  Wind
	RoundWind Wind

	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool
	LastTile     bool // 海底/河底
	Rinshan      bool // 岭上开花
	Chankan      bool // 抢杠
	FirstTurn    bool // 第一巡且无人鸣牌（天和/地和）

	DoraIndicators    []Tile
	UraDoraIndicators []Tile
	RedFives          int // 赤宝牌张数
}

// Closed 门清：没有副露，或只有暗杠
func (c *ScoringContext) Closed() bool {
	for _, m := range c.Melds {
		if !m.Concealed() {
			return false
		}
	}
	return true
}

func (c *ScoringContext) IsDealer() bool { return c.SeatWind == WindEast }

func (c *ScoringContext) Tsumo() bool { return c.Method == WinTsumo }

// Validate 检查手牌张数与和了牌，计分前由调用方保证
func (c *ScoringContext) Validate() error {
	if err := ValidateHand(c.Hand, c.Melds); err != nil {
		return err
	}
	if c.Hand.Total() != 14-3*len(c.Melds) {
		return fmt.Errorf("%w: %d concealed tiles, expected %d", ErrMalformedHand, c.Hand.Total(), 14-3*len(c.Melds))
	}
	if !c.WinTile.Valid() || c.Hand[c.WinTile] == 0 {
		return fmt.Errorf("%w: winning tile %s not in hand", ErrMalformedHand, c.WinTile)
	}
	return nil
}

// allCounts 手牌+副露全部张数，杠按 4 张计
func (c *ScoringContext) allCounts() Hand {
	all := c.Hand
	mc := meldCounts(c.Melds)
	for i := range all {
		all[i] += mc[i]
	}
	return all
}

type Shape int

const (
	ShapeStandard Shape = iota // 4 面子 1 雀头
	ShapeChiitoi               // 七对子
	ShapeKokushi               // 国士无双
)

func (s Shape) String() string {
	switch s {
	case ShapeChiitoi:
		return "chiitoi"
	case ShapeKokushi:
		return "kokushi"
	default:
		return "standard"
	}
}

type WaitKind int

const (
	WaitRyanmen WaitKind = iota // 两面
	WaitKanchan                 // 嵌张
	WaitPenchan                 // 边张
	WaitTanki                   // 单骑
	WaitShanpon                 // 双碰
)

func (w WaitKind) String() string {
	return [...]string{"ryanmen", "kanchan", "penchan", "tanki", "shanpon"}[w]
}

type groupKind int

const (
	groupSequence groupKind = iota
	groupTriplet
	groupQuad
)

// group 面子。顺子用最小的牌表示
type group struct {
	kind      groupKind
	tile      Tile
	concealed bool
	meld      bool
}

func (g group) isSet() bool { return g.kind == groupTriplet || g.kind == groupQuad }

// yaochu 面子是否含幺九牌
func (g group) yaochu() bool {
	if g.kind == groupSequence {
		return g.tile.Rank() == 1 || g.tile.Rank() == 7
	}
	return g.tile.IsYaochu()
}

// handView 一种和牌解释：拆分方式 + 和了牌落在哪个位置
type handView struct {
	ctx    *ScoringContext
	shape  Shape
	groups []group
	pair   Tile
	wait   WaitKind
	all    Hand
	closed bool
	decomp Decomposition
}

func (v *handView) sets() int {
	n := 0
	for _, g := range v.groups {
		if g.isSet() {
			n++
		}
	}
	return n
}

func (v *handView) sequences() []Tile {
	var out []Tile
	for _, g := range v.groups {
		if g.kind == groupSequence {
			out = append(out, g.tile)
		}
	}
	return out
}

func (v *handView) hasSet(t Tile) bool {
	for _, g := range v.groups {
		if g.isSet() && g.tile == t {
			return true
		}
	}
	return false
}

// allTilesMatch 出现过的每种牌都满足 pred
func (v *handView) allTilesMatch(pred func(Tile) bool) bool {
	for _, t := range AllTiles {
		if v.all[t] > 0 && !pred(t) {
			return false
		}
	}
	return true
}

func (v *handView) anyTile(pred func(Tile) bool) bool {
	for _, t := range AllTiles {
		if v.all[t] > 0 && pred(t) {
			return true
		}
	}
	return false
}

// interpretations 枚举所有和牌解释，拆不开时返回空
func interpretations(ctx *ScoringContext) []*handView {
	win := ctx.WinTile
	if !win.Valid() || ctx.Hand[win] == 0 {
		return nil
	}
	for _, m := range ctx.Melds {
		if !validMeld(m) {
			return nil
		}
	}
	all := ctx.allCounts()
	closed := ctx.Closed()

	meldGroups := make([]group, 0, len(ctx.Melds))
	for _, m := range ctx.Melds {
		g := group{tile: m.Tiles[0], concealed: m.Concealed(), meld: true}
		switch {
		case m.Kind == HuroSequence:
			g.kind = groupSequence
		case m.Kind.IsQuad():
			g.kind = groupQuad
		default:
			g.kind = groupTriplet
		}
		meldGroups = append(meldGroups, g)
	}

	var out []*handView
	newView := func(d Decomposition, shape Shape, wait WaitKind, groups []group) *handView {
		return &handView{ctx: ctx, shape: shape, groups: groups, pair: d.Pair, wait: wait, all: all, closed: closed, decomp: d}
	}

	for _, d := range Decompositions(ctx.Hand, len(ctx.Melds)) {
		base := append([]group(nil), meldGroups...)
		for _, t := range d.Triplets {
			base = append(base, group{kind: groupTriplet, tile: t, concealed: true})
		}
		for _, s := range d.Sequences {
			base = append(base, group{kind: groupSequence, tile: s[0], concealed: true})
		}

		if d.Pair == win {
			out = append(out, newView(d, ShapeStandard, WaitTanki, base))
		}
		seen := make(map[group]struct{})
		for i, g := range base {
			if g.meld {
				continue
			}
			if _, dup := seen[g]; dup {
				continue
			}
			wait, ok := placeWinningTile(g, win)
			if !ok {
				continue
			}
			seen[g] = struct{}{}
			groups := append([]group(nil), base...)
			// 荣和完成的刻子视为明刻
			if g.kind == groupTriplet && ctx.Method == WinRon {
				groups[i].concealed = false
			}
			out = append(out, newView(d, ShapeStandard, wait, groups))
		}
	}

	if len(ctx.Melds) == 0 {
		if IsChiitoiWin(ctx.Hand) {
			out = append(out, newView(Decomposition{Pair: win}, ShapeChiitoi, WaitTanki, nil))
		}
		if IsKokushiWin(ctx.Hand) {
			out = append(out, newView(Decomposition{}, ShapeKokushi, WaitTanki, nil))
		}
	}
	return out
}

// placeWinningTile 和了牌能否落在面子 g 里，以及对应的听牌形
func placeWinningTile(g group, win Tile) (WaitKind, bool) {
	switch g.kind {
	case groupTriplet:
		return WaitShanpon, g.tile == win
	case groupSequence:
		if win.Suit() != g.tile.Suit() {
			return 0, false
		}
		switch win.Rank() - g.tile.Rank() {
		case 1:
			return WaitKanchan, true
		case 0:
			if g.tile.Rank() == 7 {
				return WaitPenchan, true
			}
			return WaitRyanmen, true
		case 2:
			if g.tile.Rank() == 1 {
				return WaitPenchan, true
			}
			return WaitRyanmen, true
		}
	}
	return 0, false
}
