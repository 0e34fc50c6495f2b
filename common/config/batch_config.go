package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// CaseConf 一条待计分的和牌记录，牌用紧凑记法（如 "123m456p789s11z"）
type CaseConf struct {
	Name         string   `mapstructure:"name"`
	Hand         string   `mapstructure:"hand"`  // 门内手牌，含和了牌
	Melds        []string `mapstructure:"melds"` // 副露，如 "pon:555s"、"chi:345m"、"ankan:1111z"
	WinTile      string   `mapstructure:"win"`   // 和了牌
	Tsumo        bool     `mapstructure:"tsumo"` // false 为荣和
	Seat         string   `mapstructure:"seat"`  // 自风 east/south/west/north
	Round        string   `mapstructure:"round"` // 场风
	Dora         string   `mapstructure:"dora"`  // 宝牌指示牌
	UraDora      string   `mapstructure:"ura"`   // 里宝牌指示牌
	Riichi       bool     `mapstructure:"riichi"`
	DoubleRiichi bool     `mapstructure:"doubleRiichi"`
	Ippatsu      bool     `mapstructure:"ippatsu"`
	LastTile     bool     `mapstructure:"lastTile"`
	Rinshan      bool     `mapstructure:"rinshan"`
	Chankan      bool     `mapstructure:"chankan"`
	FirstTurn    bool     `mapstructure:"firstTurn"` // 天和/地和
	Honba        int      `mapstructure:"honba"`
	RiichiStick  int      `mapstructure:"riichiSticks"`
}

type batchFile struct {
	Cases []CaseConf `mapstructure:"cases"`
}

// LoadCases 读取批量计分文件（yaml/json/toml 由扩展名决定）
func LoadCases(file string) ([]CaseConf, error) {
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取批量文件失败: %w", err)
	}
	var raw batchFile
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("解析批量文件失败: %w", err)
	}
	for i := range raw.Cases {
		if raw.Cases[i].Name == "" {
			raw.Cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return raw.Cases, nil
}
