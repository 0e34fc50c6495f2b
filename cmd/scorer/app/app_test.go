package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"riichi/common/config"
	"riichi/game/engines/mahjong"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	var cfg config.ScorerConfiguration
	cfg.Inherit()
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func ittsuCase() config.CaseConf {
	return config.CaseConf{
		Name:    "ittsu-tsumo",
		Hand:    "123456789p33m555s",
		WinTile: "5s",
		Tsumo:   true,
		Seat:    "east",
		Round:   "east",
		Dora:    "2p",
	}
}

func TestBuildContext(t *testing.T) {
	ctx, err := BuildContext(config.CaseConf{
		Hand:    "234m406p99s",
		Melds:   []string{"pon:505s"},
		WinTile: "4m",
		Seat:    "west",
	})
	if err != nil {
		t.Fatalf("BuildContext: %v", err)
	}
	if ctx.RedFives != 2 {
		t.Fatalf("expected 2 red fives (hand + meld), got %d", ctx.RedFives)
	}
	if len(ctx.Melds) != 1 || ctx.SeatWind != mahjong.WindWest || ctx.RoundWind != mahjong.WindEast {
		t.Fatalf("unexpected context: %+v", ctx)
	}
	if ctx.Method != mahjong.WinRon {
		t.Fatalf("expected ron by default, got %s", ctx.Method)
	}
}

func TestBuildContextErrors(t *testing.T) {
	c := ittsuCase()
	c.Seat = "up"
	if _, err := BuildContext(c); !errors.Is(err, mahjong.ErrInvalidSeatPosition) {
		t.Fatalf("bad seat: expected ErrInvalidSeatPosition, got %v", err)
	}

	c = ittsuCase()
	c.WinTile = "1z"
	if _, err := BuildContext(c); !errors.Is(err, mahjong.ErrMalformedHand) {
		t.Fatalf("win tile not in hand: expected ErrMalformedHand, got %v", err)
	}

	c = ittsuCase()
	c.Hand = "123456789x"
	if _, err := BuildContext(c); !errors.Is(err, mahjong.ErrInvalidNotation) {
		t.Fatalf("bad notation: expected ErrInvalidNotation, got %v", err)
	}
}

func TestScore(t *testing.T) {
	a := newTestApp(t)
	r, err := a.Score(ittsuCase())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if r.Result.Han != 4 || r.Result.Fu != 30 {
		t.Fatalf("expected 4 han 30 fu, got %d han %d fu", r.Result.Han, r.Result.Fu)
	}
	if r.Payment.NonDealerPays != 3900 || r.Payment.Total != 11700 {
		t.Fatalf("expected 3900 all, got %+v", r.Payment)
	}
	if r.String() == "" {
		t.Fatalf("empty report")
	}
}

func TestScoreNoYaku(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Score(config.CaseConf{
		Name:    "ron-shanpon",
		Hand:    "222m333p444s678s99m",
		WinTile: "2m",
		Seat:    "south",
	})
	if !errors.Is(err, ErrNoYaku) {
		t.Fatalf("expected ErrNoYaku, got %v", err)
	}
}

func TestRunBatch(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cases.yaml")
	content := `
cases:
  - name: ittsu-tsumo
    hand: 123456789p33m555s
    win: 5s
    tsumo: true
    seat: east
    dora: 2p
  - name: no-yaku
    hand: 222m333p444s678s99m
    win: 2m
    seat: south
  - name: pinfu-riichi
    hand: 23499m567p234789s
    win: 4s
    seat: south
    riichi: true
    honba: 1
`
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	a := newTestApp(t)
	reports, err := a.RunBatch(context.Background(), p)
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 scored cases, got %d", len(reports))
	}
	if reports[0].Name != "ittsu-tsumo" || reports[1].Name != "pinfu-riichi" {
		t.Fatalf("unexpected order: %s, %s", reports[0].Name, reports[1].Name)
	}
	// 立直 平和 2 番 30 符 2000 + 1 本场 300
	if reports[1].Payment.Total != 2300 {
		t.Fatalf("pinfu riichi: expected 2300, got %+v", reports[1].Payment)
	}
}

func TestRunBatchCanceled(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cases.yaml")
	if err := os.WriteFile(p, []byte("cases:\n  - hand: 123456789p33m555s\n    win: 5s\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestApp(t).RunBatch(ctx, p); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTenpai(t *testing.T) {
	a := newTestApp(t)
	r, err := a.Tenpai(context.Background(), "123456789p33m55s", nil)
	if err != nil {
		t.Fatalf("Tenpai: %v", err)
	}
	if r.Shanten != 0 || r.Candidates != nil {
		t.Fatalf("13 tiles: unexpected report %+v", r)
	}
	if got := mahjong.FormatTiles(r.Waits); got != mahjong.FormatTiles([]mahjong.Tile{mahjong.Man3, mahjong.Sou5}) {
		t.Fatalf("unexpected waits %s", got)
	}
	if r.Ukeire != 4 {
		t.Fatalf("expected ukeire 4, got %d", r.Ukeire)
	}

	r, err = a.Tenpai(context.Background(), "123456789p33m5s", []string{"pon:777z"})
	if err == nil {
		t.Fatalf("wrong tile count: expected error, got %+v", r)
	}

	r, err = a.Tenpai(context.Background(), "123456789p33m55s1z", nil)
	if err != nil {
		t.Fatalf("Tenpai: %v", err)
	}
	if len(r.Candidates) != 1 || r.Candidates[0].Discard != mahjong.East {
		t.Fatalf("14 tiles: expected only the East discard, got %+v", r.Candidates)
	}
}
