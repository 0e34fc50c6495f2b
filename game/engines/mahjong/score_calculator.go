package mahjong

import "riichi/common/log"

// KazoeHan 累计役满番数，普通役番数上限
const KazoeHan = 13

// ScoreResult 一次和牌的计分结果
// 役满时 Han 为 13*倍数（最多两倍），Fu 固定 20，Yakus 只含役满役
type ScoreResult struct {
	Yakus   []YakuResult
	Yakuman int // 役满倍数，已封顶
	Han     int
	Fu      int

	Dora    int
	UraDora int
	RedDora int

	Shape         Shape
	Wait          WaitKind
	Decomposition Decomposition
}

// Valid 至少有一个役
func (r ScoreResult) Valid() bool { return len(r.Yakus) > 0 }

// BasePoints 基本点
func (r ScoreResult) BasePoints() int { return BasePoints(r.Han, r.Fu, r.Yakuman) }

// Calculate 按最有利的解释计分。调用方需先确认和牌（听牌检查通过且和了牌在手牌中），
// 拆不开或无役时返回零值结果
func Calculate(ctx *ScoringContext) ScoreResult {
	views := interpretations(ctx)
	if len(views) == 0 {
		log.Debug("计分跳过，无法拆分: %s 和了 %s", ctx.Hand, ctx.WinTile)
		return ScoreResult{}
	}

	var best ScoreResult
	for _, v := range views {
		r := v.score()
		if better(r, best) {
			best = r
		}
	}
	return best
}

// HasAtLeastOneYaku 是否至少有一个役（宝牌不算），找到第一个即返回
func HasAtLeastOneYaku(ctx *ScoringContext) bool {
	for _, v := range interpretations(ctx) {
		if acc := v.evaluate(true); len(acc.yakus) > 0 {
			return true
		}
	}
	return false
}

func (v *handView) score() ScoreResult {
	acc := v.evaluate(false)
	r := ScoreResult{Shape: v.shape, Wait: v.wait, Decomposition: v.decomp}
	if len(acc.yakus) == 0 {
		return r
	}

	if acc.yakuman > 0 {
		r.Yakus = acc.yakus
		r.Yakuman = min(2, acc.yakuman)
		r.Han = r.Yakuman * KazoeHan
		r.Fu = 20
		return r
	}

	r.Yakus = FilterExclusions(acc.yakus)
	han := 0
	pinfu := false
	for _, y := range r.Yakus {
		han += y.Han
		if y.Yaku == YakuPinfu {
			pinfu = true
		}
	}
	r.Dora, r.UraDora, r.RedDora = v.countDora()
	han += r.Dora + r.UraDora + r.RedDora
	r.Han = min(han, KazoeHan)
	r.Fu = v.fu(pinfu)
	return r
}

// countDora 宝牌、里宝牌（门清立直才计）、赤宝牌
func (v *handView) countDora() (dora, ura, red int) {
	for _, ind := range v.ctx.DoraIndicators {
		dora += v.all.Count(DoraFromIndicator(ind))
	}
	if v.closed && (v.ctx.Riichi || v.ctx.DoubleRiichi) {
		for _, ind := range v.ctx.UraDoraIndicators {
			ura += v.all.Count(DoraFromIndicator(ind))
		}
	}
	return dora, ura, v.ctx.RedFives
}

// better 役满倍数 > 基本点 > 番 > 符
func better(a, b ScoreResult) bool {
	if a.Valid() != b.Valid() {
		return a.Valid()
	}
	if a.Yakuman != b.Yakuman {
		return a.Yakuman > b.Yakuman
	}
	if pa, pb := a.BasePoints(), b.BasePoints(); pa != pb {
		return pa > pb
	}
	if a.Han != b.Han {
		return a.Han > b.Han
	}
	return a.Fu > b.Fu
}
