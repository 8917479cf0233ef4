// Package config loads server settings from the environment, with an
// optional waiver.yaml for local overrides. Everything has a default; the
// binary runs with zero configuration.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Built-in league and team, used when LEAGUE_ID / TEAM_ID are not set.
const (
	DefaultLeagueID = "cmdnhqw1s06g2kv0431dxfade"
	DefaultTeamID   = "cmdofouqx0009jt04qjgcm5cn"
)

type Config struct {
	LeagueID string
	TeamID   string
	Addr     string
	BaseURL  string
	CacheDir string
	CacheTTL time.Duration
	LogLevel string
	Env      string
	// APIKey, when set, gates the /mcp endpoint. The page and the feeds are
	// public data, so it never applies to the web routes.
	APIKey string
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("league_id", DefaultLeagueID)
	v.SetDefault("team_id", DefaultTeamID)
	v.SetDefault("addr", ":8080")
	v.SetDefault("base_url", "https://app.draftfantasy.com/api")
	v.SetDefault("cache_dir", "data/raw")
	v.SetDefault("cache_ttl", "10m")
	v.SetDefault("log_level", "info")
	v.SetDefault("env", "production")
	v.SetDefault("api_key", "")

	v.SetConfigName("waiver")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	ttl, err := time.ParseDuration(v.GetString("cache_ttl"))
	if err != nil {
		return nil, err
	}

	return &Config{
		LeagueID: v.GetString("league_id"),
		TeamID:   v.GetString("team_id"),
		Addr:     v.GetString("addr"),
		BaseURL:  v.GetString("base_url"),
		CacheDir: v.GetString("cache_dir"),
		CacheTTL: ttl,
		LogLevel: v.GetString("log_level"),
		Env:      strings.ToLower(v.GetString("env")),
		APIKey:   strings.TrimSpace(v.GetString("api_key")),
	}, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}
