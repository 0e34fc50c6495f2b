package mahjong

// fu 计算符数
func (v *handView) fu(pinfu bool) int {
	switch v.shape {
	case ShapeChiitoi:
		return 25 // 七对子固定 25 符
	case ShapeKokushi:
		return 20
	}

	// 平和自摸 20 符，荣和 30 符
	if pinfu {
		if v.ctx.Tsumo() {
			return 20
		}
		return 30
	}

	fu := 20 // 副底
	if v.ctx.Tsumo() {
		fu += 2
	} else if v.closed {
		fu += 10 // 门前清荣和
	}

	fu += v.pairFu()
	for _, g := range v.groups {
		fu += groupFu(g)
	}
	fu += v.waitFu()

	fu = (fu + 9) / 10 * 10
	// 副露无符荣和按 30 符计
	if fu == 20 && !v.ctx.Tsumo() {
		fu = 30
	}
	return fu
}

// pairFu 三元牌、自风、场风雀头各 +2，连风牌雀头 +4
func (v *handView) pairFu() int {
	fu := 0
	if v.pair.IsDragon() {
		fu += 2
	}
	if v.pair == v.ctx.SeatWind.Tile() {
		fu += 2
	}
	if v.pair == v.ctx.RoundWind.Tile() {
		fu += 2
	}
	return fu
}

// groupFu 明刻 2/4，暗刻 4/8，明杠 8/16，暗杠 16/32（中张/幺九）
func groupFu(g group) int {
	var fu int
	switch g.kind {
	case groupTriplet:
		fu = 2
	case groupQuad:
		fu = 8
	default:
		return 0
	}
	if g.concealed {
		fu *= 2
	}
	if g.tile.IsYaochu() {
		fu *= 2
	}
	return fu
}

// waitFu 边张/嵌张/单骑 +2
func (v *handView) waitFu() int {
	switch v.wait {
	case WaitKanchan, WaitPenchan, WaitTanki:
		return 2
	}
	return 0
}
