package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"riichi/cmd/scorer/app"
	"riichi/common/config"
	"riichi/common/log"
	"riichi/game/engines/mahjong"
)

var (
	configFile string
	meldSpecs  []string
	scoreCase  config.CaseConf
	batchFile  string
)

var rootCmd = &cobra.Command{
	Use:   "scorer",
	Short: "立直麻将听牌与计分工具",
	Long:  `立直麻将听牌与计分工具`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Load(configFile); err != nil {
			log.Fatal("文件配置发生错误：%v", err)
		}
		log.InitLog(config.ScorerConfig.AppName, config.ScorerConfig.LogConf.Level)
		log.Debug("配置文件: %+v", config.ScorerConfig)
		config.OnChange(func(cfg config.ScorerConfiguration) {
			log.SetLevel(cfg.LogConf.Level)
			log.Info("配置已更新，日志级别: %s", cfg.LogConf.Level)
		})
	},
}

var tenpaiCmd = &cobra.Command{
	Use:   "tenpai <hand>",
	Short: "13 张列出听牌，14 张列出切牌候选",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withApp(func(a *app.App) error {
			report, err := a.Tenpai(cmd.Context(), args[0], meldSpecs)
			if err != nil {
				return err
			}
			log.Info("向听数: %d", report.Shanten)
			if report.Candidates == nil {
				log.Info("听牌: %s, 有效张数: %d", mahjong.FormatTiles(report.Waits), report.Ukeire)
				return nil
			}
			for _, c := range report.Candidates {
				log.Info("切 %s 听 %s, 有效张数: %d", c.Discard, mahjong.FormatTiles(c.Waits), c.Ukeire)
			}
			return nil
		})
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score <hand> <win>",
	Short: "计算一手和牌的番符和点数",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		scoreCase.Name = args[0]
		scoreCase.Hand = args[0]
		scoreCase.WinTile = args[1]
		scoreCase.Melds = meldSpecs
		withApp(func(a *app.App) error {
			report, err := a.Score(scoreCase)
			if err != nil {
				return err
			}
			log.Info("%s", report)
			return nil
		})
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "按 yaml 文件批量计分",
	Run: func(cmd *cobra.Command, args []string) {
		withApp(func(a *app.App) error {
			_, err := a.RunBatch(cmd.Context(), batchFile)
			return err
		})
	},
}

func withApp(fn func(a *app.App) error) {
	a, err := app.New(config.ScorerConfig)
	if err != nil {
		log.Fatal("初始化失败: %v", err)
	}
	err = fn(a)
	a.Close()
	if err != nil {
		log.Error("发生异常: %v", err)
		os.Exit(-1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "resource file")

	tenpaiCmd.Flags().StringSliceVar(&meldSpecs, "meld", nil, `副露，如 "pon:555s"，可重复`)

	f := scoreCmd.Flags()
	f.StringSliceVar(&meldSpecs, "meld", nil, `副露，如 "chi:345m"，可重复`)
	f.BoolVar(&scoreCase.Tsumo, "tsumo", false, "自摸（默认荣和）")
	f.StringVar(&scoreCase.Seat, "seat", "east", "自风")
	f.StringVar(&scoreCase.Round, "round", "east", "场风")
	f.StringVar(&scoreCase.Dora, "dora", "", "宝牌指示牌")
	f.StringVar(&scoreCase.UraDora, "ura", "", "里宝牌指示牌")
	f.BoolVar(&scoreCase.Riichi, "riichi", false, "立直")
	f.BoolVar(&scoreCase.DoubleRiichi, "double-riichi", false, "两立直")
	f.BoolVar(&scoreCase.Ippatsu, "ippatsu", false, "一发")
	f.BoolVar(&scoreCase.LastTile, "last-tile", false, "海底/河底")
	f.BoolVar(&scoreCase.Rinshan, "rinshan", false, "岭上开花")
	f.BoolVar(&scoreCase.Chankan, "chankan", false, "抢杠")
	f.BoolVar(&scoreCase.FirstTurn, "first-turn", false, "第一巡（天和/地和）")
	f.IntVar(&scoreCase.Honba, "honba", 0, "本场数")
	f.IntVar(&scoreCase.RiichiStick, "riichi-sticks", 0, "场上立直棒")

	batchCmd.Flags().StringVar(&batchFile, "file", "", "批量计分文件")
	batchCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(tenpaiCmd, scoreCmd, batchCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
