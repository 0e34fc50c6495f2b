package mahjong

import (
	"fmt"
	"sort"
	"strings"
)

type HuroKind int

const (
	HuroSequence      HuroKind = iota // 吃
	HuroTriplet                       // 碰
	HuroConcealedQuad                 // 暗杠
	HuroDiscardedQuad                 // 大明杠
	HuroAddedQuad                     // 加杠，只能由碰升级得到
)

func (k HuroKind) String() string {
	switch k {
	case HuroSequence:
		return "chi"
	case HuroTriplet:
		return "pon"
	case HuroConcealedQuad:
		return "ankan"
	case HuroDiscardedQuad:
		return "minkan"
	case HuroAddedQuad:
		return "kakan"
	default:
		return "unknown"
	}
}

func (k HuroKind) IsQuad() bool {
	return k == HuroConcealedQuad || k == HuroDiscardedQuad || k == HuroAddedQuad
}

// Huro 副露。From 为放铳者座位，暗杠为 -1
type Huro struct {
	Kind   HuroKind
	Called Tile
	Tiles  []Tile
	From   int
}

// NewHuro 校验后构造副露，加杠请用 Upgrade
func NewHuro(kind HuroKind, tiles []Tile, called Tile, from int) (Huro, error) {
	if kind == HuroAddedQuad {
		return Huro{}, fmt.Errorf("%w: added quad must come from a triplet", ErrInvalidMeldTransition)
	}
	if kind == HuroConcealedQuad {
		from = -1
	} else if from < 0 || from > 3 {
		return Huro{}, fmt.Errorf("%w: from seat %d", ErrInvalidSeatPosition, from)
	}

	sorted := append([]Tile(nil), tiles...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, t := range sorted {
		if !t.Valid() {
			return Huro{}, fmt.Errorf("%w: %d", ErrInvalidTile, int(t))
		}
	}

	switch kind {
	case HuroSequence:
		if len(sorted) != 3 || !sorted[0].IsNumbered() ||
			sorted[1] != sorted[0]+1 || sorted[2] != sorted[0]+2 ||
			sorted[2].Suit() != sorted[0].Suit() {
			return Huro{}, fmt.Errorf("%w: %s is not a sequence", ErrInvalidMeld, FormatTiles(sorted))
		}
	case HuroTriplet:
		if len(sorted) != 3 || !allSame(sorted) {
			return Huro{}, fmt.Errorf("%w: %s is not a triplet", ErrInvalidMeld, FormatTiles(sorted))
		}
	case HuroConcealedQuad, HuroDiscardedQuad:
		if len(sorted) != 4 || !allSame(sorted) {
			return Huro{}, fmt.Errorf("%w: %s is not a quad", ErrInvalidMeld, FormatTiles(sorted))
		}
	default:
		return Huro{}, fmt.Errorf("%w: kind %d", ErrInvalidMeld, int(kind))
	}

	if !containsTile(sorted, called) {
		return Huro{}, fmt.Errorf("%w: called tile %s not in %s", ErrInvalidMeld, called, FormatTiles(sorted))
	}
	return Huro{Kind: kind, Called: called, Tiles: sorted, From: from}, nil
}

// Upgrade 碰 -> 加杠，追加第四张
func (h Huro) Upgrade(t Tile) (Huro, error) {
	if h.Kind != HuroTriplet {
		return Huro{}, fmt.Errorf("%w: cannot upgrade %s", ErrInvalidMeldTransition, h.Kind)
	}
	if len(h.Tiles) == 0 || h.Tiles[0] != t {
		return Huro{}, fmt.Errorf("%w: %s does not match %s", ErrInvalidMeldTransition, t, FormatTiles(h.Tiles))
	}
	tiles := append(append([]Tile(nil), h.Tiles...), t)
	return Huro{Kind: HuroAddedQuad, Called: t, Tiles: tiles, From: h.From}, nil
}

// Concealed 只有暗杠不破门清
func (h Huro) Concealed() bool { return h.Kind == HuroConcealedQuad }

// ParseHuro 解析 "pon:555s"、"chi:345m"、"ankan:1111z"、"minkan:9999p"，被叫的牌取第一张
func ParseHuro(s string, from int) (Huro, error) {
	kindStr, tilesStr, ok := strings.Cut(s, ":")
	if !ok {
		return Huro{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	tiles, _, err := ParseTiles(tilesStr)
	if err != nil {
		return Huro{}, err
	}
	if len(tiles) == 0 {
		return Huro{}, fmt.Errorf("%w: empty meld %q", ErrInvalidNotation, s)
	}
	switch strings.ToLower(kindStr) {
	case "chi":
		return NewHuro(HuroSequence, tiles, tiles[0], from)
	case "pon":
		return NewHuro(HuroTriplet, tiles, tiles[0], from)
	case "ankan":
		return NewHuro(HuroConcealedQuad, tiles, tiles[0], -1)
	case "minkan":
		return NewHuro(HuroDiscardedQuad, tiles, tiles[0], from)
	case "kakan":
		pon, err := NewHuro(HuroTriplet, tiles[:len(tiles)-1], tiles[0], from)
		if err != nil {
			return Huro{}, err
		}
		return pon.Upgrade(tiles[len(tiles)-1])
	default:
		return Huro{}, fmt.Errorf("%w: meld kind %q", ErrInvalidNotation, kindStr)
	}
}

func allSame(tiles []Tile) bool {
	for _, t := range tiles[1:] {
		if t != tiles[0] {
			return false
		}
	}
	return true
}

func containsTile(tiles []Tile, t Tile) bool {
	for _, x := range tiles {
		if x == t {
			return true
		}
	}
	return false
}

// validMeld 张数与种类相符且每张牌合法。字段是导出的，调用方可以绕过 NewHuro 直接构造
func validMeld(m Huro) bool {
	want := 3
	if m.Kind.IsQuad() {
		want = 4
	}
	if len(m.Tiles) != want {
		return false
	}
	for _, t := range m.Tiles {
		if !t.Valid() {
			return false
		}
	}
	return true
}

// meldCounts 副露中各牌的张数，非法牌跳过
func meldCounts(melds []Huro) Hand {
	var h Hand
	for _, m := range melds {
		for _, t := range m.Tiles {
			if t.Valid() {
				h[t]++
			}
		}
	}
	return h
}
