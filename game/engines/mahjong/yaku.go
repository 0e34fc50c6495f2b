package mahjong

// Yaku 役种
type Yaku int

const (
	// 状况役
	YakuRiichi       Yaku = iota // 立直
	YakuDoubleRiichi             // 两立直
	YakuIppatsu                  // 一发
	YakuMenzenTsumo              // 门前清自摸和
	YakuHaitei                   // 海底摸月
	YakuHoutei                   // 河底捞鱼
	YakuRinshan                  // 岭上开花
	YakuChankan                  // 抢杠
	YakuTenhou                   // 天和
	YakuChiihou                  // 地和

	// 牌型
	YakuPinfu          // 平和
	YakuChiitoitsu     // 七对子
	YakuToitoi         // 对对和
	YakuIttsu          // 一气通贯
	YakuSanshokuDoujun // 三色同顺
	YakuSanshokuDoukou // 三色同刻
	YakuTanyao         // 断幺九

	// 字牌
	YakuHaku        // 役牌 白
	YakuHatsu       // 役牌 发
	YakuChun        // 役牌 中
	YakuRoundWind   // 场风
	YakuSeatWind    // 自风
	YakuShousangen  // 小三元
	YakuDaisangen   // 大三元
	YakuShousuushii // 小四喜
	YakuDaisuushii  // 大四喜（双倍）
	YakuTsuuiisou   // 字一色

	// 重复顺子
	YakuIipeikou   // 一杯口
	YakuRyanpeikou // 二杯口

	// 幺九
	YakuChanta     // 混全带幺九
	YakuJunchan    // 纯全带幺九
	YakuHonroutou  // 混老头
	YakuChinroutou // 清老头

	// 刻子/杠子
	YakuSanankou      // 三暗刻
	YakuSuuankou      // 四暗刻
	YakuSuuankouTanki // 四暗刻单骑（双倍）
	YakuSankantsu     // 三杠子
	YakuSuukantsu     // 四杠子

	// 花色
	YakuHonitsu       // 混一色
	YakuChinitsu      // 清一色
	YakuRyuuiisou     // 绿一色
	YakuChuuren       // 九莲宝灯
	YakuJunseiChuuren // 纯正九莲宝灯（双倍）
	YakuKokushi       // 国士无双
	YakuKokushi13     // 国士无双十三面（双倍）

	yakuCount
)

// yakuInfo 名称、门清番数、副露番数（0 表示副露不成立）、役满倍数
type yakuInfo struct {
	name    string
	closed  int
	open    int
	yakuman int
}

var yakuTable = [yakuCount]yakuInfo{
	YakuRiichi:       {"riichi", 1, 0, 0},
	YakuDoubleRiichi: {"double_riichi", 2, 0, 0},
	YakuIppatsu:      {"ippatsu", 1, 0, 0},
	YakuMenzenTsumo:  {"menzen_tsumo", 1, 0, 0},
	YakuHaitei:       {"haitei", 1, 1, 0},
	YakuHoutei:       {"houtei", 1, 1, 0},
	YakuRinshan:      {"rinshan", 1, 1, 0},
	YakuChankan:      {"chankan", 1, 1, 0},
	YakuTenhou:       {"tenhou", 0, 0, 1},
	YakuChiihou:      {"chiihou", 0, 0, 1},

	YakuPinfu:          {"pinfu", 1, 0, 0},
	YakuChiitoitsu:     {"chiitoitsu", 2, 0, 0},
	YakuToitoi:         {"toitoi", 2, 2, 0},
	YakuIttsu:          {"ittsu", 2, 1, 0},
	YakuSanshokuDoujun: {"sanshoku_doujun", 2, 1, 0},
	YakuSanshokuDoukou: {"sanshoku_doukou", 2, 2, 0},
	YakuTanyao:         {"tanyao", 1, 1, 0},

	YakuHaku:        {"haku", 1, 1, 0},
	YakuHatsu:       {"hatsu", 1, 1, 0},
	YakuChun:        {"chun", 1, 1, 0},
	YakuRoundWind:   {"round_wind", 1, 1, 0},
	YakuSeatWind:    {"seat_wind", 1, 1, 0},
	YakuShousangen:  {"shousangen", 2, 2, 0},
	YakuDaisangen:   {"daisangen", 0, 0, 1},
	YakuShousuushii: {"shousuushii", 0, 0, 1},
	YakuDaisuushii:  {"daisuushii", 0, 0, 2},
	YakuTsuuiisou:   {"tsuuiisou", 0, 0, 1},

	YakuIipeikou:   {"iipeikou", 1, 0, 0},
	YakuRyanpeikou: {"ryanpeikou", 3, 0, 0},

	YakuChanta:     {"chanta", 2, 1, 0},
	YakuJunchan:    {"junchan", 3, 2, 0},
	YakuHonroutou:  {"honroutou", 2, 2, 0},
	YakuChinroutou: {"chinroutou", 0, 0, 1},

	YakuSanankou:      {"sanankou", 2, 2, 0},
	YakuSuuankou:      {"suuankou", 0, 0, 1},
	YakuSuuankouTanki: {"suuankou_tanki", 0, 0, 2},
	YakuSankantsu:     {"sankantsu", 2, 2, 0},
	YakuSuukantsu:     {"suukantsu", 0, 0, 1},

	YakuHonitsu:       {"honitsu", 3, 2, 0},
	YakuChinitsu:      {"chinitsu", 6, 5, 0},
	YakuRyuuiisou:     {"ryuuiisou", 0, 0, 1},
	YakuChuuren:       {"chuuren", 0, 0, 1},
	YakuJunseiChuuren: {"junsei_chuuren", 0, 0, 2},
	YakuKokushi:       {"kokushi", 0, 0, 1},
	YakuKokushi13:     {"kokushi_13", 0, 0, 2},
}

func (y Yaku) String() string {
	if y < 0 || y >= yakuCount {
		return "unknown"
	}
	return yakuTable[y].name
}

// IsYakuman 役满役种
func (y Yaku) IsYakuman() bool { return y >= 0 && y < yakuCount && yakuTable[y].yakuman > 0 }

// Han 门清/副露下的番数，0 表示不成立
func (y Yaku) Han(closed bool) int {
	if y < 0 || y >= yakuCount {
		return 0
	}
	if closed {
		return yakuTable[y].closed
	}
	return yakuTable[y].open
}

// YakumanMultiplier 役满倍数
func (y Yaku) YakumanMultiplier() int {
	if y < 0 || y >= yakuCount {
		return 0
	}
	return yakuTable[y].yakuman
}

// YakuResult 成立的役。役满时 Han 为 0，Yakuman 为倍数
type YakuResult struct {
	Yaku    Yaku
	Han     int
	Yakuman int
}

// yakuExclusions 役 -> 同时成立时被它取消的役
var yakuExclusions = map[Yaku][]Yaku{
	YakuRyanpeikou:    {YakuChiitoitsu, YakuIipeikou},
	YakuChinitsu:      {YakuHonitsu},
	YakuJunchan:       {YakuChanta},
	YakuHonroutou:     {YakuChanta, YakuJunchan},
	YakuDoubleRiichi:  {YakuRiichi},
	YakuDaisangen:     {YakuShousangen},
	YakuDaisuushii:    {YakuShousuushii},
	YakuSuuankouTanki: {YakuSuuankou},
	YakuJunseiChuuren: {YakuChuuren},
	YakuKokushi13:     {YakuKokushi},
	YakuSuukantsu:     {YakuSankantsu},
}

// FilterExclusions 去掉被列表中其它役取消的役，保持原顺序
// 取消集合只由原列表中的役决定，不会因为某个役被取消而连锁恢复
func FilterExclusions(yakus []YakuResult) []YakuResult {
	excluded := make(map[Yaku]struct{})
	for _, r := range yakus {
		for _, x := range yakuExclusions[r.Yaku] {
			excluded[x] = struct{}{}
		}
	}
	out := make([]YakuResult, 0, len(yakus))
	for _, r := range yakus {
		if _, ok := excluded[r.Yaku]; ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

type YakuChecker interface {
	ID() Yaku
	Check(v *handView) bool
}

type yakuCheckerFunc struct {
	id    Yaku
	check func(v *handView) bool
}

func (f yakuCheckerFunc) ID() Yaku { return f.id }

func (f yakuCheckerFunc) Check(v *handView) bool { return f.check(v) }

// yakuGroup useChain 为 true 时组内按顺序判断，首个成立即停止（高役在前）
type yakuGroup struct {
	useChain bool
	checkers []YakuChecker
}

func chain(checkers ...YakuChecker) yakuGroup { return yakuGroup{useChain: true, checkers: checkers} }

func independent(checkers ...YakuChecker) yakuGroup {
	return yakuGroup{checkers: checkers}
}

func checker(id Yaku, check func(v *handView) bool) YakuChecker {
	return yakuCheckerFunc{id: id, check: check}
}

// yakuGroups 判定顺序：状况 -> 牌型 -> 字牌 -> 重复顺子 -> 幺九 -> 刻子数 -> 混/清 -> 特殊
var yakuGroups = []yakuGroup{
	chain(
		checker(YakuDoubleRiichi, checkDoubleRiichi),
		checker(YakuRiichi, checkRiichi),
	),
	independent(
		checker(YakuIppatsu, checkIppatsu),
		checker(YakuMenzenTsumo, checkMenzenTsumo),
		checker(YakuHaitei, checkHaitei),
		checker(YakuHoutei, checkHoutei),
		checker(YakuRinshan, checkRinshan),
		checker(YakuChankan, checkChankan),
		checker(YakuTenhou, checkTenhou),
		checker(YakuChiihou, checkChiihou),
	),

	independent(
		checker(YakuChiitoitsu, checkChiitoitsu),
		checker(YakuPinfu, checkPinfu),
		checker(YakuToitoi, checkToitoi),
		checker(YakuIttsu, checkIttsu),
		checker(YakuSanshokuDoujun, checkSanshokuDoujun),
		checker(YakuSanshokuDoukou, checkSanshokuDoukou),
		checker(YakuTanyao, checkTanyao),
	),

	independent(
		checker(YakuHaku, setOf(White)),
		checker(YakuHatsu, setOf(Green)),
		checker(YakuChun, setOf(Red)),
		checker(YakuRoundWind, func(v *handView) bool { return v.hasSet(v.ctx.RoundWind.Tile()) }),
		checker(YakuSeatWind, func(v *handView) bool { return v.hasSet(v.ctx.SeatWind.Tile()) }),
	),
	chain(
		checker(YakuDaisangen, checkDaisangen),
		checker(YakuShousangen, checkShousangen),
	),
	chain(
		checker(YakuDaisuushii, checkDaisuushii),
		checker(YakuShousuushii, checkShousuushii),
	),
	independent(checker(YakuTsuuiisou, checkTsuuiisou)),

	chain(
		checker(YakuRyanpeikou, func(v *handView) bool { return v.peikou() >= 2 }),
		checker(YakuIipeikou, func(v *handView) bool { return v.peikou() == 1 }),
	),

	chain(
		checker(YakuChinroutou, checkChinroutou),
		checker(YakuHonroutou, checkHonroutou),
		checker(YakuJunchan, checkJunchan),
		checker(YakuChanta, checkChanta),
	),

	chain(
		checker(YakuSuuankouTanki, func(v *handView) bool { return v.concealedSets() == 4 && v.wait == WaitTanki }),
		checker(YakuSuuankou, func(v *handView) bool { return v.concealedSets() == 4 }),
		checker(YakuSanankou, func(v *handView) bool { return v.concealedSets() == 3 }),
	),
	chain(
		checker(YakuSuukantsu, func(v *handView) bool { return v.quads() == 4 }),
		checker(YakuSankantsu, func(v *handView) bool { return v.quads() == 3 }),
	),

	chain(
		checker(YakuRyuuiisou, checkRyuuiisou),
		checker(YakuHonitsu, checkHonitsu),
	),
	chain(
		checker(YakuKokushi13, checkKokushi13),
		checker(YakuKokushi, func(v *handView) bool { return v.shape == ShapeKokushi }),
	),
	chain(
		checker(YakuJunseiChuuren, checkJunseiChuuren),
		checker(YakuChuuren, checkChuuren),
		checker(YakuChinitsu, checkChinitsu),
	),
}

// yakuAccumulator 记录成立的役。出现役满后进入役满模式，不再记录普通役
type yakuAccumulator struct {
	closed  bool
	yakus   []YakuResult
	yakuman int
}

// record 返回该役在当前门清状态下是否真正计入
func (a *yakuAccumulator) record(y Yaku) bool {
	if mult := y.YakumanMultiplier(); mult > 0 {
		if a.yakuman == 0 {
			a.yakus = a.yakus[:0]
		}
		a.yakuman += mult
		a.yakus = append(a.yakus, YakuResult{Yaku: y, Yakuman: mult})
		return true
	}
	han := y.Han(a.closed)
	if han == 0 {
		return false
	}
	if a.yakuman == 0 {
		a.yakus = append(a.yakus, YakuResult{Yaku: y, Han: han})
	}
	return true
}

// evaluate 依次判定所有役组。firstOnly 时找到一个役即返回
func (v *handView) evaluate(firstOnly bool) yakuAccumulator {
	acc := yakuAccumulator{closed: v.closed}
	for _, g := range yakuGroups {
		for _, c := range g.checkers {
			if !c.Check(v) || !acc.record(c.ID()) {
				continue
			}
			if firstOnly {
				return acc
			}
			if g.useChain {
				break
			}
		}
	}
	return acc
}
