package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Path layout styles for match and channel pages.
const (
	LayoutNested = "nested" // match/<slug>/<YYYYMMDD>/index.html
	LayoutFlat   = "flat"   // match/<slug>-<YYYYMMDD>.html
)

// Date window modes for the day-page inventory.
const (
	WindowData  = "data"  // one page per distinct date present in the fixtures
	WindowFixed = "fixed" // today-DaysBefore .. today+DaysAfter, data or not
)

type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Paths   PathsConfig   `yaml:"paths"`
	Notify  NotifyConfig  `yaml:"notify"`
	RunLog  RunLogConfig  `yaml:"run_log"`
	Logging LoggingConfig `yaml:"logging"`
}

type SiteConfig struct {
	Domain            string   `yaml:"domain"`              // absolute base URL, no trailing slash
	Locales           []string `yaml:"locales"`             // first entry is the default (unprefixed) locale
	PathLayout        string   `yaml:"path_layout"`         // "nested" or "flat"
	UTCOffsetMinutes  int      `yaml:"utc_offset_minutes"`  // audience timezone, never the build machine's
	TopLeagues        []string `yaml:"top_leagues"`         // leagues surfaced first on day pages
	SponsorHTML       string   `yaml:"sponsor_html"`        // opaque markup, interleaved into listings
	SponsorCadence    int      `yaml:"sponsor_cadence"`     // insert sponsor block after every N groups
	StaleGraceMinutes int      `yaml:"stale_grace_minutes"` // hide channel listings this long after kickoff; 0 = keep all
	DateWindow        string   `yaml:"date_window"`         // "data" or "fixed"
	DaysBefore        int      `yaml:"days_before"`         // fixed window reach before today
	DaysAfter         int      `yaml:"days_after"`          // fixed window reach after today
	CleanOutput       bool     `yaml:"clean_output"`        // clear generated subtrees before writing
}

type PathsConfig struct {
	FixturesDir  string `yaml:"fixtures_dir"`
	TemplatesDir string `yaml:"templates_dir"`
	OutputDir    string `yaml:"output_dir"`
}

type NotifyConfig struct {
	TelegramBotToken string `yaml:"telegram_bot_token"`
	TelegramChatID   int64  `yaml:"telegram_chat_id"`
}

type RunLogConfig struct {
	PostgresDSN string `yaml:"postgres_dsn"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Site.Locales) == 0 {
		cfg.Site.Locales = []string{"en"}
	}
	if cfg.Site.PathLayout == "" {
		cfg.Site.PathLayout = LayoutNested
	}
	if cfg.Site.DateWindow == "" {
		cfg.Site.DateWindow = WindowData
	}
	if cfg.Site.SponsorCadence <= 0 {
		cfg.Site.SponsorCadence = 10
	}
	if cfg.Paths.FixturesDir == "" {
		cfg.Paths.FixturesDir = "date"
	}
	if cfg.Paths.TemplatesDir == "" {
		cfg.Paths.TemplatesDir = "templates"
	}
	if cfg.Paths.OutputDir == "" {
		cfg.Paths.OutputDir = "."
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func validate(cfg *Config) error {
	if cfg.Site.Domain == "" {
		return fmt.Errorf("site.domain is required")
	}
	if cfg.Site.PathLayout != LayoutNested && cfg.Site.PathLayout != LayoutFlat {
		return fmt.Errorf("site.path_layout must be %q or %q, got %q", LayoutNested, LayoutFlat, cfg.Site.PathLayout)
	}
	if cfg.Site.DateWindow != WindowData && cfg.Site.DateWindow != WindowFixed {
		return fmt.Errorf("site.date_window must be %q or %q, got %q", WindowData, WindowFixed, cfg.Site.DateWindow)
	}
	return nil
}
