package mahjong

import "sort"

// RonOrder 一炮多响时按放铳者下家起的座位距离排序，本场和立直棒归第一位
func RonOrder(discarder Seat, claimants []Seat) []Seat {
	out := make([]Seat, 0, len(claimants))
	seen := make(map[Seat]struct{}, len(claimants))
	for _, s := range claimants {
		if s == discarder {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return discarder.Distance(out[i]) < discarder.Distance(out[j])
	})
	return out
}

// Atamahane 头跳规则下唯一的和了者
func Atamahane(discarder Seat, claimants []Seat) (Seat, bool) {
	order := RonOrder(discarder, claimants)
	if len(order) == 0 {
		return 0, false
	}
	return order[0], true
}

// IsNagashiMangan 流局满贯：牌河全是幺九牌且没有被鸣走
func IsNagashiMangan(discards []Tile, anyCalled bool) bool {
	if anyCalled || len(discards) == 0 {
		return false
	}
	for _, t := range discards {
		if !t.IsYaochu() {
			return false
		}
	}
	return true
}

// NagashiMangan 按自己的牌河判断流局满贯，anyCalled 为是否有牌被鸣走
func (c *ScoringContext) NagashiMangan(anyCalled bool) bool {
	return IsNagashiMangan(c.Discards, anyCalled)
}
