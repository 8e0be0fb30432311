package config

import (
	"io/ioutil"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/muraenateam/jsbeautify/pkg/jsbeautify"
)

// Configuration is the optional TOML file backing cmd/jsbeautify. Every
// field has a sensible default (see Default); a missing or partially
// filled file only overrides what it actually sets, the same
// fall-back-never-fail posture the programmatic Options map follows.
type Configuration struct {
	Format struct {
		IndentSize       int    `toml:"indentSize"`
		IndentChar       string `toml:"indentChar"`
		PreserveNewlines bool   `toml:"preserveNewlines"`
	} `toml:"format"`

	Cache struct {
		Enabled      bool   `toml:"enabled"`
		RedisAddress string `toml:"redisAddress"`
	} `toml:"cache"`

	Audit struct {
		Enabled       bool    `toml:"enabled"`
		MaxMindDBPath string  `toml:"maxmindDBPath"`
		RadiusKM      float64 `toml:"radiusKM"`
	} `toml:"audit"`

	Crawler struct {
		Depth     int    `toml:"depth"`
		UserAgent string `toml:"userAgent"`
	} `toml:"crawler"`
}

// Default returns the Configuration used when no file is supplied.
func Default() Configuration {
	var c Configuration
	c.Format.IndentSize = 4
	c.Format.IndentChar = " "
	c.Format.PreserveNewlines = false
	c.Cache.Enabled = false
	c.Cache.RedisAddress = "127.0.0.1:6379"
	c.Audit.Enabled = false
	c.Audit.RadiusKM = 50
	c.Crawler.Depth = 2
	c.Crawler.UserAgent = "jsbeautify-crawler/1.0"
	return c
}

// Load reads and parses a TOML configuration file, starting from
// Default() so an absent or partial file still yields usable values.
// path == "" returns Default() directly.
func Load(path string) (Configuration, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading configuration file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing configuration file %s", path)
	}

	return cfg, nil
}

// BeautifyOptions adapts the Format section into the RawOptions map
// pkg/jsbeautify.New expects. It supplies three of that map's four keys;
// indent_level is not set and so stays at its default.
func (c Configuration) BeautifyOptions() jsbeautify.RawOptions {
	return jsbeautify.RawOptions{
		"indent_size":       c.Format.IndentSize,
		"indent_char":       c.Format.IndentChar,
		"preserve_newlines": c.Format.PreserveNewlines,
	}
}
