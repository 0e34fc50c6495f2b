package mahjong

func checkDoubleRiichi(v *handView) bool { return v.ctx.DoubleRiichi && v.closed }

func checkRiichi(v *handView) bool { return v.ctx.Riichi && v.closed }

func checkIppatsu(v *handView) bool {
	return v.ctx.Ippatsu && v.closed && (v.ctx.Riichi || v.ctx.DoubleRiichi)
}

func checkMenzenTsumo(v *handView) bool { return v.closed && v.ctx.Tsumo() }

// 岭上摸到的最后一张只算岭上开花
func checkHaitei(v *handView) bool { return v.ctx.LastTile && v.ctx.Tsumo() && !v.ctx.Rinshan }

func checkHoutei(v *handView) bool { return v.ctx.LastTile && !v.ctx.Tsumo() }

func checkRinshan(v *handView) bool { return v.ctx.Rinshan && v.ctx.Tsumo() }

func checkChankan(v *handView) bool { return v.ctx.Chankan && !v.ctx.Tsumo() }

func checkTenhou(v *handView) bool {
	return v.ctx.FirstTurn && v.ctx.Tsumo() && v.ctx.IsDealer() && len(v.ctx.Melds) == 0
}

func checkChiihou(v *handView) bool {
	return v.ctx.FirstTurn && v.ctx.Tsumo() && !v.ctx.IsDealer() && len(v.ctx.Melds) == 0
}

func checkChiitoitsu(v *handView) bool { return v.shape == ShapeChiitoi }

// checkPinfu 四顺子、非役牌雀头、两面听，且不能有任何副露（包括暗杠）
func checkPinfu(v *handView) bool {
	if v.shape != ShapeStandard || len(v.ctx.Melds) > 0 || v.sets() > 0 {
		return false
	}
	return v.wait == WaitRyanmen && !v.isValuePair()
}

func checkToitoi(v *handView) bool { return v.shape == ShapeStandard && v.sets() == 4 }

func checkIttsu(v *handView) bool {
	if v.shape != ShapeStandard {
		return false
	}
	seqs := v.sequenceSet()
	for suit := SuitMan; suit <= SuitSou; suit++ {
		base := Tile(int(suit) * 10)
		if seqs[base+1] && seqs[base+4] && seqs[base+7] {
			return true
		}
	}
	return false
}

func checkSanshokuDoujun(v *handView) bool {
	if v.shape != ShapeStandard {
		return false
	}
	seqs := v.sequenceSet()
	for r := Tile(1); r <= 7; r++ {
		if seqs[Man1-1+r] && seqs[Pin1-1+r] && seqs[Sou1-1+r] {
			return true
		}
	}
	return false
}

func checkSanshokuDoukou(v *handView) bool {
	if v.shape != ShapeStandard {
		return false
	}
	for r := Tile(1); r <= 9; r++ {
		if v.hasSet(Man1-1+r) && v.hasSet(Pin1-1+r) && v.hasSet(Sou1-1+r) {
			return true
		}
	}
	return false
}

func checkTanyao(v *handView) bool { return v.allTilesMatch(Tile.IsSimple) }

func setOf(t Tile) func(v *handView) bool {
	return func(v *handView) bool { return v.hasSet(t) }
}

func checkDaisangen(v *handView) bool {
	return v.hasSet(White) && v.hasSet(Green) && v.hasSet(Red)
}

func checkShousangen(v *handView) bool {
	return v.shape == ShapeStandard && v.pair.IsDragon() && v.countSets(Tile.IsDragon) == 2
}

func checkDaisuushii(v *handView) bool { return v.countSets(Tile.IsWind) == 4 }

func checkShousuushii(v *handView) bool {
	return v.shape == ShapeStandard && v.pair.IsWind() && v.countSets(Tile.IsWind) == 3
}

func checkTsuuiisou(v *handView) bool { return v.allTilesMatch(Tile.IsHonor) }

func checkChinroutou(v *handView) bool { return v.allTilesMatch(Tile.IsTerminal) }

func checkHonroutou(v *handView) bool {
	return v.shape != ShapeKokushi && v.allTilesMatch(Tile.IsYaochu)
}

// checkJunchan 每组都带老头牌，无字牌，至少一个顺子（否则是清老头）
func checkJunchan(v *handView) bool {
	return v.outsideHand() && v.pair.IsTerminal() && !v.anyTile(Tile.IsHonor)
}

func checkChanta(v *handView) bool {
	return v.outsideHand() && v.pair.IsYaochu() && v.anyTile(Tile.IsHonor)
}

func checkRyuuiisou(v *handView) bool {
	return v.allTilesMatch(func(t Tile) bool {
		_, ok := greenTiles[t]
		return ok
	})
}

func checkHonitsu(v *handView) bool {
	return v.numberedSuits() == 1 && v.anyTile(Tile.IsHonor)
}

func checkChinitsu(v *handView) bool {
	return v.numberedSuits() == 1 && !v.anyTile(Tile.IsHonor)
}

// checkKokushi13 和了前十三种各一张
func checkKokushi13(v *handView) bool {
	return v.shape == ShapeKokushi && v.ctx.Hand[v.ctx.WinTile] == 2
}

// chuurenBase 1112345678999
var chuurenBase = [10]uint8{0, 3, 1, 1, 1, 1, 1, 1, 1, 3}

func checkChuuren(v *handView) bool {
	_, ok := chuurenSuit(v.ctx)
	return ok
}

// checkJunseiChuuren 去掉和了牌后恰好是 1112345678999，九面听
func checkJunseiChuuren(v *handView) bool {
	suit, ok := chuurenSuit(v.ctx)
	if !ok || v.ctx.WinTile.Suit() != suit {
		return false
	}
	before := v.ctx.Hand.Without(v.ctx.WinTile)
	for r := 1; r <= 9; r++ {
		if before[Tile(int(suit)*10+r)] != chuurenBase[r] {
			return false
		}
	}
	return true
}

func chuurenSuit(ctx *ScoringContext) (Suit, bool) {
	if len(ctx.Melds) > 0 || ctx.Hand.Total() != 14 {
		return 0, false
	}
	suit := Suit(-1)
	for _, t := range AllTiles {
		if ctx.Hand[t] == 0 {
			continue
		}
		if t.IsHonor() || (suit >= 0 && t.Suit() != suit) {
			return 0, false
		}
		suit = t.Suit()
	}
	if suit < 0 {
		return 0, false
	}
	for r := 1; r <= 9; r++ {
		if ctx.Hand[Tile(int(suit)*10+r)] < chuurenBase[r] {
			return 0, false
		}
	}
	return suit, true
}

// isValuePair 雀头是三元牌或自风/场风
func (v *handView) isValuePair() bool {
	p := v.pair
	return p.IsDragon() || p == v.ctx.SeatWind.Tile() || p == v.ctx.RoundWind.Tile()
}

func (v *handView) sequenceSet() map[Tile]bool {
	out := make(map[Tile]bool, 4)
	for _, t := range v.sequences() {
		out[t] = true
	}
	return out
}

func (v *handView) countSets(pred func(Tile) bool) int {
	n := 0
	for _, g := range v.groups {
		if g.isSet() && pred(g.tile) {
			n++
		}
	}
	return n
}

func (v *handView) concealedSets() int {
	n := 0
	for _, g := range v.groups {
		if g.isSet() && g.concealed {
			n++
		}
	}
	return n
}

func (v *handView) quads() int {
	n := 0
	for _, g := range v.groups {
		if g.kind == groupQuad {
			n++
		}
	}
	return n
}

// peikou 门内相同顺子的组数，副露时为 0
func (v *handView) peikou() int {
	if !v.closed || v.shape != ShapeStandard {
		return 0
	}
	same := make(map[Tile]int, 4)
	for _, g := range v.groups {
		if g.kind == groupSequence && !g.meld {
			same[g.tile]++
		}
	}
	n := 0
	for _, c := range same {
		n += c / 2
	}
	return n
}

// outsideHand 一般形中每个面子都含幺九牌，且至少有一个顺子
func (v *handView) outsideHand() bool {
	if v.shape != ShapeStandard || len(v.sequences()) == 0 {
		return false
	}
	for _, g := range v.groups {
		if !g.yaochu() {
			return false
		}
	}
	return true
}

func (v *handView) numberedSuits() int {
	var seen [4]bool
	n := 0
	for _, t := range AllTiles {
		if v.all[t] > 0 && t.IsNumbered() && !seen[t.Suit()] {
			seen[t.Suit()] = true
			n++
		}
	}
	return n
}
