package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v2"
	"olexsmir.xyz/timesince/internal/humanize"
)

var ErrConfigNotFound = errors.New("no config file found")

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type MetaConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Host        string `yaml:"host"`
}

type RepoConfig struct {
	Dir string `yaml:"dir"`
}

// TemplateConfig holds singular and plural formats of a unit, both with a
// single %d verb.
type TemplateConfig struct {
	One   string `yaml:"one"`
	Other string `yaml:"other"`
}

type HumanizeConfig struct {
	Depth     int                       `yaml:"depth"`
	Separator string                    `yaml:"separator"`
	Timezone  string                    `yaml:"timezone"`
	Templates map[string]TemplateConfig `yaml:"templates"`
}

type CacheConfig struct {
	RepoList string `yaml:"repo_list"`
	Log      string `yaml:"log"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Meta     MetaConfig     `yaml:"meta"`
	Repo     RepoConfig     `yaml:"repo"`
	Humanize HumanizeConfig `yaml:"humanize"`
	Cache    CacheConfig    `yaml:"cache"`
}

// Load loads configuration with the following priority:
// 1. User provided fpath (if provided and exists)
// 2. /var/lib/timesince/config.yaml
// 3. $XDG_CONFIG_HOME/timesince/config.yaml or $HOME/.config/timesince/config.yaml
// 4. /etc/timesince/config.yaml
//
// If fpath is empty and none of these exist, defaults are used.
func Load(fpath string) (*Config, error) {
	configPath, err := findConfigFile(fpath)
	if errors.Is(err, ErrConfigNotFound) && fpath == "" {
		return Default()
	}
	if err != nil {
		return nil, err
	}

	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	return Parse(configBytes)
}

// Parse decodes a yaml config, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var config Config
	if cerr := yaml.Unmarshal(data, &config); cerr != nil {
		return nil, fmt.Errorf("parsing config: %w", cerr)
	}
	return config.finish()
}

// Default returns the configuration used when no file is present.
func Default() (*Config, error) {
	var config Config
	return config.finish()
}

func (c Config) finish() (*Config, error) {
	c.ensureDefaults()

	var err error
	if c.Repo.Dir, err = filepath.Abs(c.Repo.Dir); err != nil {
		return nil, err
	}

	if verr := c.validate(); verr != nil {
		return nil, verr
	}
	return &c, nil
}

func (c *Config) ensureDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	// meta
	if c.Meta.Title == "" {
		c.Meta.Title = "timesince"
	}

	if c.Repo.Dir == "" {
		c.Repo.Dir = "."
	}

	// humanize
	if c.Humanize.Depth == 0 {
		c.Humanize.Depth = humanize.DefaultDepth
	}

	if c.Humanize.Separator == "" {
		c.Humanize.Separator = ", "
	}

	if c.Humanize.Timezone == "" {
		c.Humanize.Timezone = "UTC"
	}

	// cache
	if c.Cache.RepoList == "" {
		c.Cache.RepoList = "1m"
	}

	if c.Cache.Log == "" {
		c.Cache.Log = "1m"
	}
}

// TemplateTable returns the default table with configured overrides applied.
func (h HumanizeConfig) TemplateTable() (humanize.Templates, error) {
	overrides := make(humanize.Templates, len(h.Templates))
	for name, tc := range h.Templates {
		u, err := humanize.ParseUnit(name)
		if err != nil {
			return nil, err
		}
		overrides[u] = humanize.Plural(tc.One, tc.Other)
	}
	return humanize.DefaultTemplates().With(overrides), nil
}

func (h HumanizeConfig) Location() (*time.Location, error) {
	return time.LoadLocation(h.Timezone)
}

// Options converts the section into formatter options.
func (h HumanizeConfig) Options() ([]humanize.Option, error) {
	tmpls, err := h.TemplateTable()
	if err != nil {
		return nil, err
	}
	return []humanize.Option{
		humanize.Depth(h.Depth),
		humanize.Separator(h.Separator),
		humanize.WithTemplates(tmpls),
	}, nil
}

func (c CacheConfig) RepoListTTL() time.Duration { return mustDuration(c.RepoList) }
func (c CacheConfig) LogTTL() time.Duration      { return mustDuration(c.Log) }

// mustDuration expects s to be checked by validate.
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

func findConfigFile(userPath string) (string, error) {
	if userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}

	path := "/var/lib/timesince/config.yaml"
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(configDir, "timesince", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	path = "/etc/timesince/config.yaml"
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	return "", ErrConfigNotFound
}

func isDirExists(path string) bool {
	i, err := os.Stat(path)
	if err != nil {
		return false
	}
	return i.IsDir()
}
