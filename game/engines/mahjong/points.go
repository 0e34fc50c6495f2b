package mahjong

// LimitBand 满贯以上的档位
type LimitBand int

const (
	BandNone          LimitBand = iota // 按符计算
	BandMangan                         // 满贯
	BandHaneman                        // 跳满
	BandBaiman                         // 倍满
	BandSanbaiman                      // 三倍满
	BandKazoeYakuman                   // 累计役满
	BandYakuman                        // 役满
	BandDoubleYakuman                  // 双倍役满
)

func (b LimitBand) String() string {
	return [...]string{"", "mangan", "haneman", "baiman", "sanbaiman", "kazoe_yakuman", "yakuman", "double_yakuman"}[b]
}

// Band 番符对应的档位，4 番以下基本点超过 2000 也算满贯
func Band(han, fu int) LimitBand {
	switch {
	case han >= KazoeHan:
		return BandKazoeYakuman
	case han >= 11:
		return BandSanbaiman
	case han >= 8:
		return BandBaiman
	case han >= 6:
		return BandHaneman
	case han == 5:
		return BandMangan
	case han > 0 && fu*(1<<(2+han)) >= 2000:
		return BandMangan
	default:
		return BandNone
	}
}

// BasePoints 基本点 = 符 × 2^(2+番)，封顶 2000；满贯以上查表；役满 8000×倍数
func BasePoints(han, fu, yakuman int) int {
	if yakuman > 0 {
		return 8000 * yakuman
	}
	switch Band(han, fu) {
	case BandKazoeYakuman:
		return 8000
	case BandSanbaiman:
		return 6000
	case BandBaiman:
		return 4000
	case BandHaneman:
		return 3000
	case BandMangan:
		return 2000
	}
	if han <= 0 {
		return 0
	}
	return fu * (1 << (2 + han))
}

// Payment 点数移动。自摸时 DealerPays 为庄家支付额（庄家和了时为 0），NonDealerPays 为每个闲家支付额
type Payment struct {
	Band          LimitBand
	Base          int
	RonPayment    int // 放铳者支付，含本场
	DealerPays    int
	NonDealerPays int
	Total         int // 和了者收入合计，含本场与立直棒
}

// Points 番符转点数。yakuman 为役满倍数，非役满传 0
func Points(han, fu, yakuman int, dealer bool, method WinMethod, honba, riichiSticks int) Payment {
	p := Payment{Band: Band(han, fu), Base: BasePoints(han, fu, yakuman)}
	switch yakuman {
	case 0:
	case 1:
		p.Band = BandYakuman
	default:
		p.Band = BandDoubleYakuman
	}
	if p.Base == 0 {
		return p
	}

	if method == WinRon {
		mult := 4
		if dealer {
			mult = 6
		}
		p.RonPayment = roundUpTo100(p.Base*mult) + 300*honba
		p.Total = p.RonPayment
	} else if dealer {
		p.NonDealerPays = roundUpTo100(p.Base*2) + 100*honba
		p.Total = 3 * p.NonDealerPays
	} else {
		p.DealerPays = roundUpTo100(p.Base*2) + 100*honba
		p.NonDealerPays = roundUpTo100(p.Base) + 100*honba
		p.Total = p.DealerPays + 2*p.NonDealerPays
	}
	p.Total += 1000 * riichiSticks
	return p
}

// ScorePoints 直接由计分结果换算点数
func ScorePoints(r ScoreResult, ctx *ScoringContext, honba, riichiSticks int) Payment {
	if !r.Valid() {
		return Payment{}
	}
	return Points(r.Han, r.Fu, r.Yakuman, ctx.IsDealer(), ctx.Method, honba, riichiSticks)
}

func roundUpTo100(x int) int {
	return (x + 99) / 100 * 100
}
