package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"riichi/common/config"
	"riichi/common/log"
	"riichi/game/engines/mahjong"
)

// App 持有听牌搜索器，供各子命令复用
type App struct {
	searcher *mahjong.Searcher
}

func New(cfg config.ScorerConfiguration) (*App, error) {
	s, err := mahjong.NewSearcher(mahjong.SearcherOptions{
		MaxCost:     cfg.CacheConf.MaxCost,
		TTL:         time.Duration(cfg.CacheConf.TtlSeconds) * time.Second,
		Parallelism: cfg.SearchConf.Parallelism,
	})
	if err != nil {
		return nil, err
	}
	return &App{searcher: s}, nil
}

func (a *App) Close() {
	a.searcher.Close()
}

// TenpaiReport 13 张时给出听牌，14 张时给出切牌候选
type TenpaiReport struct {
	Shanten    int
	Waits      []mahjong.Tile
	Ukeire     int
	Candidates []mahjong.Candidate
}

func (a *App) Tenpai(ctx context.Context, hand string, meldSpecs []string) (TenpaiReport, error) {
	h, melds, _, err := parseHand(hand, meldSpecs)
	if err != nil {
		return TenpaiReport{}, err
	}
	if err := mahjong.ValidateHand(h, melds); err != nil {
		return TenpaiReport{}, err
	}

	report := TenpaiReport{Shanten: mahjong.Shanten(h, len(melds))}
	if h.Total() == 13-3*len(melds) {
		report.Waits, report.Ukeire = a.searcher.WaitsAndUkeire(h, melds, nil)
		return report, nil
	}
	report.Candidates, err = a.searcher.SeekCandidates(ctx, h, melds, nil)
	return report, err
}

// ScoreReport 计分结果与点数
type ScoreReport struct {
	Name    string
	Result  mahjong.ScoreResult
	Payment mahjong.Payment
}

func (r ScoreReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: ", r.Name)
	if !r.Result.Valid() {
		b.WriteString("无役")
		return b.String()
	}
	names := make([]string, 0, len(r.Result.Yakus))
	for _, y := range r.Result.Yakus {
		if y.Yakuman > 0 {
			names = append(names, fmt.Sprintf("%s(x%d)", y.Yaku, y.Yakuman))
		} else {
			names = append(names, fmt.Sprintf("%s(%d)", y.Yaku, y.Han))
		}
	}
	fmt.Fprintf(&b, "%s", strings.Join(names, " "))
	if r.Result.Yakuman == 0 {
		fmt.Fprintf(&b, " dora=%d ura=%d aka=%d", r.Result.Dora, r.Result.UraDora, r.Result.RedDora)
	}
	fmt.Fprintf(&b, " => %d han %d fu", r.Result.Han, r.Result.Fu)
	if band := r.Payment.Band.String(); band != "" {
		fmt.Fprintf(&b, " %s", band)
	}
	fmt.Fprintf(&b, ", %d 点", r.Payment.Total)
	return b.String()
}

// ErrNoYaku 和牌成立但没有役
var ErrNoYaku = errors.New("no yaku")

func (a *App) Score(c config.CaseConf) (ScoreReport, error) {
	ctx, err := BuildContext(c)
	if err != nil {
		return ScoreReport{Name: c.Name}, err
	}
	res := mahjong.Calculate(ctx)
	report := ScoreReport{Name: c.Name, Result: res}
	if !res.Valid() {
		return report, fmt.Errorf("%s: %w", c.Name, ErrNoYaku)
	}
	report.Payment = mahjong.ScorePoints(res, ctx, c.Honba, c.RiichiStick)
	return report, nil
}

// RunBatch 逐条计分并输出日志，单条失败不影响其余记录
func (a *App) RunBatch(ctx context.Context, file string) ([]ScoreReport, error) {
	cases, err := config.LoadCases(file)
	if err != nil {
		return nil, err
	}
	reports := make([]ScoreReport, 0, len(cases))
	failed := 0
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		r, err := a.Score(c)
		if err != nil {
			failed++
			log.Warn("%s 计分失败: %v", c.Name, err)
			continue
		}
		log.Info("%s", r)
		reports = append(reports, r)
	}
	log.Info("批量计分完成: 成功 %d, 失败 %d", len(reports), failed)
	return reports, nil
}

// BuildContext 由记法构造计分上下文
func BuildContext(c config.CaseConf) (*mahjong.ScoringContext, error) {
	h, melds, red, err := parseHand(c.Hand, c.Melds)
	if err != nil {
		return nil, err
	}

	win, err := mahjong.ParseTile(c.WinTile)
	if err != nil {
		return nil, fmt.Errorf("和了牌: %w", err)
	}
	seat, err := mahjong.ParseWind(c.Seat)
	if err != nil {
		return nil, err
	}
	round, err := mahjong.ParseWind(c.Round)
	if err != nil {
		return nil, err
	}
	dora, _, err := mahjong.ParseTiles(c.Dora)
	if err != nil {
		return nil, fmt.Errorf("宝牌指示牌: %w", err)
	}
	ura, _, err := mahjong.ParseTiles(c.UraDora)
	if err != nil {
		return nil, fmt.Errorf("里宝牌指示牌: %w", err)
	}

	method := mahjong.WinRon
	if c.Tsumo {
		method = mahjong.WinTsumo
	}
	ctx := &mahjong.ScoringContext{
		Hand:              h,
		Melds:             melds,
		WinTile:           win,
		Method:            method,
		SeatWind:          seat,
		RoundWind:         round,
		Riichi:            c.Riichi,
		DoubleRiichi:      c.DoubleRiichi,
		Ippatsu:           c.Ippatsu,
		LastTile:          c.LastTile,
		Rinshan:           c.Rinshan,
		Chankan:           c.Chankan,
		FirstTurn:         c.FirstTurn,
		DoraIndicators:    dora,
		UraDoraIndicators: ura,
		RedFives:          red,
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// parseHand 返回手牌、副露和赤五张数（含副露里的）
// 记法里没有副露来源座位，统一记为 2 号座位
func parseHand(hand string, meldSpecs []string) (mahjong.Hand, []mahjong.Huro, int, error) {
	tiles, red, err := mahjong.ParseTiles(hand)
	if err != nil {
		return mahjong.Hand{}, nil, 0, err
	}
	melds := make([]mahjong.Huro, 0, len(meldSpecs))
	for _, s := range meldSpecs {
		m, err := mahjong.ParseHuro(s, 2)
		if err != nil {
			return mahjong.Hand{}, nil, 0, err
		}
		if _, body, ok := strings.Cut(s, ":"); ok {
			_, r, _ := mahjong.ParseTiles(body)
			red += r
		}
		melds = append(melds, m)
	}
	return mahjong.HandFromTiles(tiles), melds, red, nil
}
