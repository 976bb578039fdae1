package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yosintv/matchsite/internal/notify"
	pkgconfig "github.com/yosintv/matchsite/internal/pkg/config"
	"github.com/yosintv/matchsite/internal/pkg/logging"
	"github.com/yosintv/matchsite/internal/pkg/storage"
	"github.com/yosintv/matchsite/internal/site"
)

const defaultConfigPath = "configs/production.yaml"

type cliConfig struct {
	configPath   string
	fixturesDir  string
	outputDir    string
	templatesDir string
}

func main() {
	if err := run(); err != nil {
		slog.Error("Generation failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	slog.Info("Starting generator...")

	// .env may hold the telegram token and postgres DSN; absent is fine.
	_ = godotenv.Load()

	cfg := parseFlags()
	slog.Info("Loading config", "path", cfg.configPath)

	appConfig, err := pkgconfig.Load(cfg.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyOverrides(appConfig, cfg)

	logging.SetupLogger(&appConfig.Logging, "generator")
	slog.Info("Config loaded successfully", "domain", appConfig.Site.Domain, "locales", appConfig.Site.Locales)

	generator := site.NewGenerator(appConfig, time.Now())
	stats, err := generator.Run()
	if err != nil {
		return err
	}

	slog.Info("Generation finished",
		"matches", stats.Matches,
		"pages", stats.Pages,
		"took", stats.Duration.Round(time.Millisecond))

	reportRun(appConfig, stats)
	return nil
}

func parseFlags() cliConfig {
	var cfg cliConfig

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&cfg.configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&cfg.fixturesDir, "fixtures", "", "Override paths.fixtures_dir from config")
	flag.StringVar(&cfg.outputDir, "output", "", "Override paths.output_dir from config")
	flag.StringVar(&cfg.templatesDir, "templates", "", "Override paths.templates_dir from config")
	flag.Parse()
	return cfg
}

func applyOverrides(appConfig *pkgconfig.Config, cfg cliConfig) {
	if cfg.fixturesDir != "" {
		appConfig.Paths.FixturesDir = cfg.fixturesDir
	}
	if cfg.outputDir != "" {
		appConfig.Paths.OutputDir = cfg.outputDir
	}
	if cfg.templatesDir != "" {
		appConfig.Paths.TemplatesDir = cfg.templatesDir
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		appConfig.Notify.TelegramBotToken = token
	}
	if dsn := os.Getenv("RUN_LOG_POSTGRES_DSN"); dsn != "" {
		appConfig.RunLog.PostgresDSN = dsn
	}
}

// reportRun pushes the run summary to the optional side channels. Both are
// best effort: a dead bot or database must not fail a finished build.
func reportRun(appConfig *pkgconfig.Config, stats site.Stats) {
	notifier := notify.NewTelegramNotifier(appConfig.Notify.TelegramBotToken, appConfig.Notify.TelegramChatID)
	notifier.BuildFinished(appConfig.Site.Domain, stats.Matches, stats.Pages, stats.Duration)

	if appConfig.RunLog.PostgresDSN == "" {
		return
	}
	runLog, err := storage.NewPostgresRunLog(appConfig.RunLog.PostgresDSN)
	if err != nil {
		slog.Warn("Run log unavailable", "error", err)
		return
	}
	defer runLog.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := runLog.Record(ctx, storage.RunRecord{
		Domain:    appConfig.Site.Domain,
		Matches:   stats.Matches,
		Pages:     stats.Pages,
		StartedAt: stats.StartedAt,
		Duration:  stats.Duration,
	}); err != nil {
		slog.Warn("Failed to record run", "error", err)
	}
}
