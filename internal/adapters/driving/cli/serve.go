package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ecourts-cli/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API.

Endpoints:
  POST /api/search-cnr      {cnr, check_today, check_tomorrow}
  POST /api/search-case     {case_type, case_number, case_year, party_name}
  POST /api/cause-list      {state, district, complex, date}
  GET  /api/jurisdictions
  GET  /api/tasks, /api/tasks/{id}
  GET  /healthz, /metrics

With --watch, edits to the config file are applied without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default api.addr, :5000)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload settings when the config file changes")
	rootCmd.AddCommand(serveCmd)
}

// apiSettings returns the current API settings, or defaults when they
// cannot be read.
func apiSettings() domain.APISettings {
	if settingsService == nil {
		return domain.DefaultSettings().API
	}
	s, err := settingsService.Get()
	if err != nil {
		logger.Warn("reading API settings: %v", err)
		return domain.DefaultSettings().API
	}
	return s.API
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := httpapi.NewServer(httpapi.Ports{
		Tasks:      taskExecutor,
		CauseLists: causeListService,
		Export:     exportService,
		Settings:   apiSettings,
	})
	if err != nil {
		return err
	}
	if observeRetrievals != nil {
		observeRetrievals(srv.Metrics().ObserveRetrieval)
	}

	var jobs []func(context.Context) error
	if serveWatch {
		if configWatcher == nil {
			return fmt.Errorf("--watch: config watcher %w", ErrNotConfigured)
		}
		jobs = append(jobs, func(ctx context.Context) error {
			return configWatcher.Watch(ctx, applySettings)
		})
	}

	addr := serveAddr
	if addr == "" {
		addr = apiSettings().Addr
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("eCourts API on http://localhost%s\n", displayAddr(addr))
	return srv.Run(ctx, addr, jobs...)
}

func applySettings() {
	if reloadSettings == nil {
		return
	}
	if err := reloadSettings(); err != nil {
		logger.Warn("applying settings: %v", err)
		return
	}
	logger.Info("settings applied")
}

// displayAddr strips a host so ":5000" and "0.0.0.0:5000" print the same.
func displayAddr(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i:]
		}
	}
	return ":" + addr
}
