package config

import (
	"tubelang/internal/classifier"
	"tubelang/internal/preferences"
)

const (
	defaultConfigPath       = "~/.config/tubelang/config.toml"
	projectConfigName       = "tubelang.toml"
	defaultDataDir          = "~/.local/share/tubelang"
	defaultLogDir           = "~/.local/share/tubelang/logs"
	defaultAPIBind          = "127.0.0.1:7488"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	databaseFileName        = "tubelang.db"
	lockFileName            = "tubelang.lock"
	apiTokenEnv             = "TUBELANG_API_TOKEN"
	defaultCacheSize        = 2000
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	t := classifier.DefaultThresholds()
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Filter: preferences.Defaults().Raw(),
		Classifier: Classifier{
			CacheSize:         defaultCacheSize,
			MinIdeographs:     t.MinIdeographs,
			IdeographDensity:  t.IdeographDensity,
			IdeographOverride: t.IdeographOverride,
			MinVoteTokens:     t.MinVoteTokens,
			MinVotes:          t.MinVotes,
			ShortTitleTokens:  t.ShortTitleTokens,
			ShortTitleRatio:   t.ShortTitleRatio,
			LongTitleRatio:    t.LongTitleRatio,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
