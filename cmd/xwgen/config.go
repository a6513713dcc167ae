package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Marjona6/crossword-generator/placement"
)

// appConfig holds the flag defaults resolved from config file and
// environment. Flags parsed on top of these win.
type appConfig struct {
	Budget   int
	Size     string
	Best     int
	Seed     uint64
	Format   string
	LogLevel string
}

// loadConfig resolves defaults in viper's usual order: built-in defaults,
// then an optional xwgen.yaml (working directory or ~/.config/xwgen),
// then XWGEN_* environment variables. A missing config file is fine.
func loadConfig() appConfig {
	v := viper.New()
	v.SetConfigName("xwgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "xwgen"))
	}
	v.SetEnvPrefix("xwgen")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("budget", placement.DefaultRetryBudget)
	v.SetDefault("size", "")
	v.SetDefault("best", 1)
	v.SetDefault("seed", uint64(0))
	v.SetDefault("format", "text")
	v.SetDefault("log-level", "warn")

	_ = v.ReadInConfig()

	return appConfig{
		Budget:   v.GetInt("budget"),
		Size:     v.GetString("size"),
		Best:     v.GetInt("best"),
		Seed:     v.GetUint64("seed"),
		Format:   v.GetString("format"),
		LogLevel: v.GetString("log-level"),
	}
}
