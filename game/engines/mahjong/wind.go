package mahjong

import (
	"fmt"
	"strings"
)

type Wind int

const (
	WindEast  Wind = iota // 东风
	WindSouth             // 南风
	WindWest              // 西风
	WindNorth             // 北风
)

func (w Wind) String() string {
	switch w {
	case WindEast:
		return "east"
	case WindSouth:
		return "south"
	case WindWest:
		return "west"
	case WindNorth:
		return "north"
	default:
		return "unknown"
	}
}

func (w Wind) Next() Wind {
	return (w + 1) % 4
}

// Tile 风对应的字牌
func (w Wind) Tile() Tile {
	return East + Tile(w%4)
}

// ParseWind 解析 east/south/west/north 或 E/S/W/N
func ParseWind(s string) (Wind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "east", "e", "":
		return WindEast, nil
	case "south", "s":
		return WindSouth, nil
	case "west", "w":
		return WindWest, nil
	case "north", "n":
		return WindNorth, nil
	default:
		return 0, fmt.Errorf("%w: wind %q", ErrInvalidSeatPosition, s)
	}
}

// Seat 座位号 0-3
type Seat int

func NewSeat(index int) (Seat, error) {
	if index < 0 || index > 3 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSeatPosition, index)
	}
	return Seat(index), nil
}

// SeatWind 庄家为东，按座位顺序依次为南西北
func SeatWind(dealer, seat Seat) Wind {
	return Wind((int(seat) - int(dealer) + 4) % 4)
}

// Distance 从 from 逆时针数到 to 需要几步（下家为 1）
func (s Seat) Distance(to Seat) int {
	return (int(to) - int(s) + 4) % 4
}
