package mahjong

import (
	"fmt"
	"strings"
)

// Hand 牌下标 -> 张数。数组是值类型，赋值即拷贝，试加一张牌不会改到调用方的手牌
type Hand [TileIndexLimit]uint8

func HandFromTiles(tiles []Tile) Hand {
	var h Hand
	for _, t := range tiles {
		if t.Valid() {
			h[t]++
		}
	}
	return h
}

func (h Hand) Count(t Tile) int {
	if int(t) >= TileIndexLimit {
		return 0
	}
	return int(h[t])
}

func (h Hand) Total() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// With 返回多一张 t 的副本
func (h Hand) With(t Tile) Hand {
	if int(t) >= TileIndexLimit {
		return h
	}
	h[t]++
	return h
}

// Without 返回少一张 t 的副本，没有该牌时原样返回
func (h Hand) Without(t Tile) Hand {
	if int(t) < TileIndexLimit && h[t] > 0 {
		h[t]--
	}
	return h
}

// Tiles 按下标升序展开
func (h Hand) Tiles() []Tile {
	out := make([]Tile, 0, 14)
	for i, c := range h {
		for k := 0; k < int(c); k++ {
			out = append(out, Tile(i))
		}
	}
	return out
}

// key 缓存键
func (h Hand) key(exposed int) string {
	var b [TileIndexLimit + 1]byte
	for i := range h {
		b[i] = h[i]
	}
	b[TileIndexLimit] = byte(exposed)
	return string(b[:])
}

func (h Hand) String() string {
	return FormatTiles(h.Tiles())
}

// ParseTiles 解析紧凑记法，如 "123m456p789s1122z"；0 表示赤五，按 5 计
// 返回牌列表和其中赤五的张数
func ParseTiles(s string) ([]Tile, int, error) {
	var (
		tiles   []Tile
		pending []int
		red     int
	)
	for _, r := range strings.ReplaceAll(s, " ", "") {
		switch {
		case r >= '0' && r <= '9':
			pending = append(pending, int(r-'0'))
		case r == 'm' || r == 'p' || r == 's' || r == 'z':
			if len(pending) == 0 {
				return nil, 0, fmt.Errorf("%w: suit %q without ranks in %q", ErrInvalidNotation, r, s)
			}
			suit := map[rune]Suit{'m': SuitMan, 'p': SuitPin, 's': SuitSou, 'z': SuitHonor}[r]
			for _, rank := range pending {
				if rank == 0 && suit != SuitHonor {
					rank = 5
					red++
				}
				t, err := NewTile(suit, rank)
				if err != nil {
					return nil, 0, fmt.Errorf("%w: %q: %v", ErrInvalidNotation, s, err)
				}
				tiles = append(tiles, t)
			}
			pending = pending[:0]
		default:
			return nil, 0, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidNotation, r, s)
		}
	}
	if len(pending) > 0 {
		return nil, 0, fmt.Errorf("%w: trailing ranks in %q", ErrInvalidNotation, s)
	}
	return tiles, red, nil
}

// MustParseTiles 测试和常量初始化用
func MustParseTiles(s string) []Tile {
	tiles, _, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// ParseTile 解析单张牌
func ParseTile(s string) (Tile, error) {
	tiles, _, err := ParseTiles(s)
	if err != nil {
		return 0, err
	}
	if len(tiles) != 1 {
		return 0, fmt.Errorf("%w: expected one tile in %q", ErrInvalidNotation, s)
	}
	return tiles[0], nil
}

// FormatTiles 输出紧凑记法，同花色相邻的牌合并后缀
func FormatTiles(tiles []Tile) string {
	var b strings.Builder
	for i, t := range tiles {
		b.WriteByte(byte('0' + t.Rank()))
		if i == len(tiles)-1 || tiles[i+1].Suit() != t.Suit() {
			b.WriteString(t.Suit().String())
		}
	}
	return b.String()
}
