package config

import (
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var ScorerConfig ScorerConfiguration

type ScorerConfiguration struct {
	AppName    string     `mapstructure:"appName"`
	LogConf    LogConf    `mapstructure:"log"`
	CacheConf  CacheConf  `mapstructure:"cache"`
	SearchConf SearchConf `mapstructure:"search"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// CacheConf 听牌结果缓存
type CacheConf struct {
	MaxCost    int64 `mapstructure:"maxCost"` // ristretto 最大成本，按条目计
	TtlSeconds int   `mapstructure:"ttlSeconds"`
}

type SearchConf struct {
	Parallelism int `mapstructure:"parallelism"` // 候选切牌并发数
}

// Inherit 补齐默认值
func (cfg *ScorerConfiguration) Inherit() {
	if cfg.AppName == "" {
		cfg.AppName = "scorer"
	}
	if cfg.LogConf.Level == "" {
		cfg.LogConf.Level = "info"
	}
	if cfg.CacheConf.MaxCost <= 0 {
		cfg.CacheConf.MaxCost = 1 << 20
	}
	if cfg.CacheConf.TtlSeconds <= 0 {
		cfg.CacheConf.TtlSeconds = 600
	}
	if cfg.SearchConf.Parallelism <= 0 {
		cfg.SearchConf.Parallelism = 4
	}
}

var (
	watchMu  sync.Mutex
	watchers []func(ScorerConfiguration)
)

// Load 读取配置文件，configFile 为空时只使用默认值和环境变量
func Load(configFile string) error {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return err
	}
	ScorerConfig = cfg

	if configFile != "" {
		v.WatchConfig()
		v.OnConfigChange(func(in fsnotify.Event) {
			if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) {
				return
			}
			next, err := decode(v)
			if err != nil {
				return
			}
			ScorerConfig = next
			notify(next)
		})
	}
	return nil
}

func decode(v *viper.Viper) (ScorerConfiguration, error) {
	var cfg ScorerConfiguration
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.Inherit()
	return cfg, nil
}

// OnChange 注册配置热更新回调，只有 Load 传入了文件才会触发
func OnChange(fn func(ScorerConfiguration)) {
	watchMu.Lock()
	defer watchMu.Unlock()
	watchers = append(watchers, fn)
}

func notify(cfg ScorerConfiguration) {
	watchMu.Lock()
	fns := append(([]func(ScorerConfiguration))(nil), watchers...)
	watchMu.Unlock()
	for _, fn := range fns {
		fn(cfg)
	}
}
