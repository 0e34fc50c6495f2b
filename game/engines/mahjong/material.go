package mahjong

import "fmt"

type Suit int

const (
	SuitHonor Suit = iota // 字牌
	SuitMan               // 万子
	SuitPin               // 筒子
	SuitSou               // 索子
)

func (s Suit) String() string {
	switch s {
	case SuitHonor:
		return "z"
	case SuitMan:
		return "m"
	case SuitPin:
		return "p"
	case SuitSou:
		return "s"
	default:
		return "?"
	}
}

// Tile 牌的值类型，取值为 花色*10+点数，可直接作为计数数组下标
type Tile uint8

const (
	East  Tile = 1 + iota // 东
	South                 // 南
	West                  // 西
	North                 // 北
	White                 // 白
	Green                 // 发
	Red                   // 中
)

const (
	Man1 Tile = 11 + iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9
)

const (
	Pin1 Tile = 21 + iota
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
)

const (
	Sou1 Tile = 31 + iota
	Sou2
	Sou3
	Sou4
	Sou5
	Sou6
	Sou7
	Sou8
	Sou9
)

// TileIndexLimit 计数数组长度
const TileIndexLimit = 40

// AllTiles 34 种牌，按下标升序
var AllTiles = func() []Tile {
	out := make([]Tile, 0, 34)
	for i := 0; i < TileIndexLimit; i++ {
		if Tile(i).Valid() {
			out = append(out, Tile(i))
		}
	}
	return out
}()

// NewTile 校验花色和点数后构造牌
func NewTile(suit Suit, rank int) (Tile, error) {
	switch suit {
	case SuitHonor:
		if rank < 1 || rank > 7 {
			return 0, fmt.Errorf("%w: honor rank %d", ErrInvalidTile, rank)
		}
	case SuitMan, SuitPin, SuitSou:
		if rank < 1 || rank > 9 {
			return 0, fmt.Errorf("%w: %s rank %d", ErrInvalidTile, suit, rank)
		}
	default:
		return 0, fmt.Errorf("%w: suit %d", ErrInvalidTile, int(suit))
	}
	return Tile(int(suit)*10 + rank), nil
}

// TileFromIndex 由下标还原牌
func TileFromIndex(index int) (Tile, error) {
	if index < 0 || index >= TileIndexLimit {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidTile, index)
	}
	return NewTile(Suit(index/10), index%10)
}

func (t Tile) Suit() Suit { return Suit(t / 10) }

func (t Tile) Rank() int { return int(t % 10) }

func (t Tile) Index() int { return int(t) }

func (t Tile) Valid() bool {
	_, err := NewTile(t.Suit(), t.Rank())
	return err == nil && int(t) < TileIndexLimit
}

func (t Tile) IsHonor() bool { return t.Suit() == SuitHonor }

func (t Tile) IsNumbered() bool { return t.Suit() >= SuitMan && t.Suit() <= SuitSou }

func (t Tile) IsWind() bool { return t >= East && t <= North }

func (t Tile) IsDragon() bool { return t >= White && t <= Red }

// IsTerminal 数牌 1、9
func (t Tile) IsTerminal() bool {
	return t.IsNumbered() && (t.Rank() == 1 || t.Rank() == 9)
}

// IsYaochu 幺九牌（1、9、字牌）
func (t Tile) IsYaochu() bool { return t.IsHonor() || t.IsTerminal() }

func (t Tile) IsSimple() bool { return t.IsNumbered() && !t.IsTerminal() }

// Next 风牌在东南西北间循环，三元牌在白发中间循环，数牌 9 之后回到 1
func (t Tile) Next() Tile {
	switch {
	case t.IsWind():
		return East + (t-East+1)%4
	case t.IsDragon():
		return White + (t-White+1)%3
	default:
		return Tile(int(t.Suit())*10 + t.Rank()%9 + 1)
	}
}

// Prev Next 的逆
func (t Tile) Prev() Tile {
	switch {
	case t.IsWind():
		return East + (t-East+3)%4
	case t.IsDragon():
		return White + (t-White+2)%3
	default:
		return Tile(int(t.Suit())*10 + (t.Rank()+7)%9 + 1)
	}
}

// DoraFromIndicator 宝牌指示牌对应的宝牌
func DoraFromIndicator(indicator Tile) Tile { return indicator.Next() }

// shift 同花色数牌偏移，越界或字牌返回 false
func (t Tile) shift(d int) (Tile, bool) {
	if !t.IsNumbered() {
		return 0, false
	}
	r := t.Rank() + d
	if r < 1 || r > 9 {
		return 0, false
	}
	return Tile(int(t.Suit())*10 + r), true
}

var honorNames = [8]string{"", "E", "S", "W", "N", "Wh", "G", "R"}

func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tile(%d)", int(t))
	}
	return fmt.Sprintf("%d%s", t.Rank(), t.Suit())
}

// Name 便于日志阅读的名称，字牌用缩写
func (t Tile) Name() string {
	if t.IsHonor() && t.Valid() {
		return honorNames[t.Rank()]
	}
	return t.String()
}

// kokushiTiles 国士无双的 13 种幺九牌
var kokushiTiles = [13]Tile{
	Man1, Man9,
	Pin1, Pin9,
	Sou1, Sou9,
	East, South, West, North,
	White, Green, Red,
}

// greenTiles 绿一色可用的牌
var greenTiles = map[Tile]struct{}{
	Sou2: {}, Sou3: {}, Sou4: {}, Sou6: {}, Sou8: {}, Green: {},
}
