package mahjong

import (
	"fmt"

	"riichi/common/log"
)

// ValidateHand 门内张数必须为 13-3*副露数（听牌）或 14-3*副露数（和牌），且每种牌合计不超过 4 张
func ValidateHand(hand Hand, melds []Huro) error {
	if len(melds) > 4 {
		return fmt.Errorf("%w: %d melds", ErrMalformedHand, len(melds))
	}
	for i, m := range melds {
		if !validMeld(m) {
			return fmt.Errorf("%w: meld %d %s %v", ErrInvalidMeld, i, m.Kind, m.Tiles)
		}
	}
	total := hand.Total()
	base := 13 - 3*len(melds)
	if total != base && total != base+1 {
		return fmt.Errorf("%w: %d concealed tiles with %d melds", ErrMalformedHand, total, len(melds))
	}
	mc := meldCounts(melds)
	for i := range hand {
		if hand[i] == 0 && mc[i] == 0 {
			continue
		}
		if !Tile(i).Valid() {
			return fmt.Errorf("%w: index %d", ErrInvalidTile, i)
		}
		if int(hand[i])+int(mc[i]) > 4 {
			return fmt.Errorf("%w: %d copies of %s", ErrMalformedHand, int(hand[i])+int(mc[i]), Tile(i))
		}
	}
	return nil
}

// CheckTenpai 所有能使手牌和牌的牌（一般形、七对子、国士无双），按下标升序去重
// 不满足张数前置条件时返回空结果
func CheckTenpai(hand Hand, melds []Huro) []Tile {
	if err := ValidateHand(hand, melds); err != nil || hand.Total() != 13-3*len(melds) {
		log.Debug("听牌检查跳过: %v", err)
		return nil
	}
	exposed := len(melds)
	mc := meldCounts(melds)

	var waits []Tile
	seen := make(map[Tile]struct{}, 13)
	add := func(t Tile) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		waits = append(waits, t)
	}

	for _, t := range AllTiles {
		// 自己已持有全部 4 张的牌不算听
		if int(hand[t])+int(mc[t]) >= 4 {
			continue
		}
		if IsStandardWin(hand.With(t), exposed) {
			add(t)
		}
	}
	if exposed == 0 {
		for _, t := range chiitoiWaits(hand) {
			add(t)
		}
		for _, t := range kokushiWaits(hand) {
			add(t)
		}
	}
	return waits
}

// chiitoiWaits 恰好六个对子加一张单牌时，听那张单牌
func chiitoiWaits(hand Hand) []Tile {
	pairs := 0
	single := Tile(0)
	singles := 0
	for _, t := range AllTiles {
		switch hand[t] {
		case 0:
		case 1:
			single = t
			singles++
		case 2:
			pairs++
		default:
			return nil
		}
	}
	if pairs == 6 && singles == 1 {
		return []Tile{single}
	}
	return nil
}

// kokushiWaits 十三种幺九齐全无对子时十三面听；缺一种且有一个对子时单听缺的那张
func kokushiWaits(hand Hand) []Tile {
	present, pairs := 0, 0
	missing := Tile(0)
	for _, t := range AllTiles {
		if hand[t] > 0 && !t.IsYaochu() {
			return nil
		}
	}
	for _, t := range kokushiTiles {
		switch hand[t] {
		case 0:
			missing = t
		case 1:
			present++
		case 2:
			present++
			pairs++
		default:
			return nil
		}
	}
	switch {
	case present == 13 && pairs == 0:
		return append([]Tile(nil), kokushiTiles[:]...)
	case present == 12 && pairs == 1:
		return []Tile{missing}
	default:
		return nil
	}
}

// IsChiitoiWin 七个不同的对子
func IsChiitoiWin(hand Hand) bool {
	pairs := 0
	for _, t := range AllTiles {
		switch hand[t] {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}

// IsKokushiWin 十三种幺九各一张，其中一种两张
func IsKokushiWin(hand Hand) bool {
	if hand.Total() != 14 {
		return false
	}
	pair := false
	for _, t := range kokushiTiles {
		switch hand[t] {
		case 1:
		case 2:
			if pair {
				return false
			}
			pair = true
		default:
			return false
		}
	}
	return pair
}

// IsWin 任意形和牌
func IsWin(hand Hand, exposed int) bool {
	if IsStandardWin(hand, exposed) {
		return true
	}
	return exposed == 0 && (IsChiitoiWin(hand) || IsKokushiWin(hand))
}
