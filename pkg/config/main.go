package config

import (
	"github.com/rs/zerolog"
)

type Config struct {
	Log     LogConfig
	Hooks   HookConfig
	Journal JournalConfig
}

type LogConfig struct {
	Level string
}

func (lc *LogConfig) GetLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(lc.Level)
	if err == nil {
		return lvl
	}
	return zerolog.DebugLevel
}

type HookConfig struct {
	Modules  string // Comma separated hook module names, loaded left to right
	PoolSize int    // Fan-out pool size for the async docker environment call site
}

type JournalConfig struct {
	Enabled bool
	Path    string // Journal db file path, e.g. ./hooks.db
	MaxDays int    // Number of daily buckets to keep when pruning
}
