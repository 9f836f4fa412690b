package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bnema/gamectl/internal/adapters/backend/host"
	"github.com/bnema/gamectl/internal/adapters/catalog"
	"github.com/bnema/gamectl/internal/adapters/events"
	scanrender "github.com/bnema/gamectl/internal/adapters/render/scan"
	sqliterepo "github.com/bnema/gamectl/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/gamectl/internal/adapters/repo/toml"
	"github.com/bnema/gamectl/internal/application"
	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
	"github.com/spf13/viper"
)

const (
	envPrefix          = "GAMECTL"
	defaultCatalogURL  = "http://127.0.0.1:8080/"
	defaultLogLevel    = "warn"
	catalogTimeoutKey  = "catalog.timeout"
	defaultCatalogWait = 10 * time.Second
)

type app struct {
	config   *viper.Viper
	logger   *slog.Logger
	logLevel *slog.LevelVar

	bus         *events.Bus
	backend     *host.Backend
	catalog     catalog.Client
	pathRepo    *tomlrepo.PathRepository
	preferences *tomlrepo.PreferenceRepository
	history     *sqliterepo.Store
	paths       *application.PathStore
	discovery   *application.DiscoveryService
	verifier    *application.Verifier

	orchestratorConfig application.OrchestratorConfig
	clock              ports.Clock
	now                func() time.Time

	drivesRenderer  func([]domain.DriveInfo) (string, error)
	resultsRenderer func(domain.GameID, []domain.PathCheckResult) (string, error)
	pathsRenderer   func([]domain.InstallRecord) (string, error)
	historyRenderer func([]domain.Session, []domain.Game, scanrender.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setConfigDefaults(cfg)
	if err := tomlrepo.ReadConfig(cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	level := &slog.LevelVar{}
	if err := setLogLevel(level, cfg.GetString("log.level")); err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	pathRepo, err := tomlrepo.NewPathRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire path repository: %w", err)
	}
	preferences, err := tomlrepo.NewPreferenceRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire preference repository: %w", err)
	}

	catalogClient := catalog.Client{
		BaseURL:        envOrDefault("GAMECTL_CATALOG_URL", cfg.GetString("catalog.base_url")),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.GetDuration(catalogTimeoutKey),
	}

	bus := events.NewBus()
	backend, err := host.New(host.Config{
		StateDir:      cfg.GetString("backend.state_dir"),
		Runner:        cfg.GetStringSlice("backend.runner"),
		ProxyCommand:  cfg.GetStringSlice("backend.proxy_command"),
		CACertificate: cfg.GetString("backend.ca_certificate"),
		TrustDirs:     cfg.GetStringSlice("backend.trust_dirs"),
		HoyoPassPath:  cfg.GetString("backend.hoyopass_path"),
		ScanDepth:     cfg.GetInt("backend.scan_depth"),
	}, host.DefaultGames(), catalogClient, catalogClient, bus, logger)
	if err != nil {
		return nil, fmt.Errorf("wire host backend: %w", err)
	}

	history, err := sqliterepo.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire history store: %w", err)
	}
	if err := history.Games().Sync(context.Background(), backend.Games().Games()); err != nil {
		_ = history.Close()
		return nil, fmt.Errorf("sync game catalog: %w", err)
	}

	return &app{
		config:      cfg,
		logger:      logger,
		logLevel:    level,
		bus:         bus,
		backend:     backend,
		catalog:     catalogClient,
		pathRepo:    pathRepo,
		preferences: preferences,
		history:     history,
		paths:       application.NewPathStore(pathRepo, domain.Channel(cfg.GetInt("paths.legacy_channel"))),
		discovery:   application.NewDiscoveryService(backend, bus, logger),
		verifier:    application.NewVerifier(backend, catalogClient, logger, application.WithConcurrency(cfg.GetInt("verify.concurrency"))),
		orchestratorConfig: application.OrchestratorConfig{
			AdvisoryCountdown:  cfg.GetInt("advisory.countdown"),
			StopReconcileDelay: cfg.GetDuration("stop.reconcile_delay"),
			MonitorInterval:    cfg.GetDuration("monitor.interval"),
		},
		clock:           ports.SystemClock{},
		now:             time.Now,
		drivesRenderer:  scanrender.Drives,
		resultsRenderer: scanrender.Results,
		pathsRenderer:   scanrender.Paths,
		historyRenderer: scanrender.History,
	}, nil
}

func setConfigDefaults(cfg *viper.Viper) {
	cfg.SetDefault("log.level", defaultLogLevel)
	cfg.SetDefault("catalog.base_url", defaultCatalogURL)
	cfg.SetDefault(catalogTimeoutKey, defaultCatalogWait)
	cfg.SetDefault("monitor.interval", application.DefaultMonitorInterval)
	cfg.SetDefault("advisory.countdown", application.DefaultAdvisoryCountdown)
	cfg.SetDefault("stop.reconcile_delay", application.DefaultStopReconcileDelay)
	cfg.SetDefault("paths.legacy_channel", 1)
	cfg.SetDefault("verify.concurrency", 1)
}

// newOrchestrator builds a launch orchestrator that reports to presenter.
func (a *app) newOrchestrator(presenter ports.LaunchPresenter) *application.Orchestrator {
	return application.NewOrchestrator(application.OrchestratorDeps{
		Paths:       a.paths,
		Bridge:      a.backend,
		Preferences: a.preferences,
		Games:       a.history.Games(),
		Sessions:    a.history.Sessions(),
		Presenter:   presenter,
		Clock:       a.clock,
		Logger:      a.logger,
	}, a.orchestratorConfig)
}

func (a *app) close() error {
	if a.history == nil {
		return nil
	}
	return a.history.Close()
}

func setLogLevel(level *slog.LevelVar, value string) error {
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return fmt.Errorf("invalid log level %q: use debug, info, warn or error", value)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
