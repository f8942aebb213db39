package config

import (
	"os"
	"strconv"
	"strings"
)

var EnvPrefix = "HOIST_"

func DefaultFromEnv() Config {
	return Config{
		Log: LogConfig{
			Level: str("LOG_LEVEL"),
		},
		Hooks: HookConfig{
			Modules:  str("HOOK_MODULES"),
			PoolSize: num("HOOK_POOL_SIZE"),
		},
		Journal: JournalConfig{
			Enabled: boolean("JOURNAL_ENABLED"),
			Path:    envstr("JOURNAL_PATH"),
			MaxDays: num("JOURNAL_MAX_DAYS"),
		},
	}
}

func ReplaceEnvironment(val string) string {
	hostname, _ := os.Hostname()
	podname := os.Getenv("POD_NAME")
	pid := strconv.Itoa(os.Getpid())
	val = strings.ReplaceAll(val, "{hostname}", hostname)
	val = strings.ReplaceAll(val, "{podname}", podname)
	val = strings.ReplaceAll(val, "{pid}", pid)
	return val
}

func str(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}

func boolean(key string) bool {
	val := strings.ToLower(str(key))
	return val == "true" || val == "1"
}

func num(key string) int {
	val, _ := strconv.Atoi(str(key))
	return val
}

func envstr(key string) string {
	return ReplaceEnvironment(str(key))
}
