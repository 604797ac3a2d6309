package main

import (
	"os"
	"strings"

	"github.com/custodia-labs/ecourts-cli/internal/adapters/driven/browser/chromedp"
	"github.com/custodia-labs/ecourts-cli/internal/adapters/driven/captcha"
	"github.com/custodia-labs/ecourts-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ecourts-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/ecourts-cli/internal/adapters/driven/dataset"
	exportfile "github.com/custodia-labs/ecourts-cli/internal/adapters/driven/export/file"
	"github.com/custodia-labs/ecourts-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/core/services"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// envChrome points at a Chrome or Chromium binary when it is not on PATH.
const envChrome = "ECOURTS_CHROME"

// openConfig opens the TOML store in dir, or the default directory when dir
// is empty. It falls back to an in-memory store so commands still run with
// defaults when the directory is unusable.
func openConfig(dir string) driven.ConfigStore {
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			logger.Warn("locating config directory: %v; using defaults", err)
			return memory.NewConfigStore(nil)
		}
		dir = d
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("opening config in %s: %v; using defaults", dir, err)
		return memory.NewConfigStore(nil)
	}
	logger.Debug("config: %s", store.Path())
	return store
}

// effectiveSettings applies command-line and environment overrides.
func effectiveSettings(svc *services.SettingsService, opts cli.Options) (*domain.Settings, error) {
	s, err := svc.Get()
	if err != nil {
		return nil, err
	}
	if base := strings.TrimSpace(os.Getenv(cli.EnvBaseURL)); base != "" {
		s.Scraper.BaseURL = strings.TrimRight(base, "/") + "/"
	}
	if opts.Offline {
		s.Scraper.Live = false
	}
	return s, nil
}

func bootstrap(opts cli.Options) (*cli.Services, error) {
	store := openConfig(opts.ConfigDir)
	settingsSvc := services.NewSettingsService(store)

	settings, err := effectiveSettings(settingsSvc, opts)
	if err != nil {
		return nil, err
	}
	logger.SetVerbose(opts.Verbose || settings.Logging.Verbose)

	var portal *services.Portal
	browsers := chromedp.NewFactory(func() domain.ScraperSettings { return portal.Settings() }, os.Getenv(envChrome))
	portal = services.NewPortal(settings.Scraper, browsers, captcha.NewStatic(""))

	provider := dataset.New()
	causeLists := services.NewCauseListService(portal, provider)
	export := services.NewExportService(exportfile.NewExporter(), settings.Output.Dir)

	svcs := &cli.Services{
		Tasks:      services.NewTaskExecutor(services.NewCaseService(portal, provider), causeLists),
		CauseLists: causeLists,
		Export:     export,
		Settings:   settingsSvc,
		Reload: func() error {
			s, err := effectiveSettings(settingsSvc, opts)
			if err != nil {
				return err
			}
			portal.Configure(s.Scraper)
			export.SetDir(s.Output.Dir)
			logger.SetVerbose(opts.Verbose || s.Logging.Verbose)
			return nil
		},
		ObserveRetrievals: func(fn func(op domain.OperationKind, path string)) {
			portal.SetObserver(func(op domain.OperationKind, p services.Path) {
				fn(op, p.String())
			})
		},
	}
	if w, ok := store.(driven.ConfigWatcher); ok {
		svcs.Watcher = w
	}
	return svcs, nil
}
