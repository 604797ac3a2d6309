// Package cli implements the ecourts command line.
package cli

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvHome    = "ECOURTS_HOME"
	EnvOffline = "ECOURTS_OFFLINE"
	EnvBaseURL = "ECOURTS_BASE_URL"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options are the global flags after environment defaults are applied.
type Options struct {
	Verbose   bool
	ConfigDir string
	Offline   bool
}

// Services holds everything the commands call into.
type Services struct {
	Tasks      driving.TaskExecutor
	CauseLists driving.CauseListService
	Export     driving.ExportService
	Settings   driving.SettingsService

	// Watcher reports config file changes; Reload applies them.
	Watcher driven.ConfigWatcher
	Reload  func() error

	// ObserveRetrievals installs a hook called after every retrieval with
	// the operation and "live" or "fallback".
	ObserveRetrievals func(func(op domain.OperationKind, path string))
}

// Bootstrap builds the services for the given options.
type Bootstrap func(Options) (*Services, error)

var (
	taskExecutor      driving.TaskExecutor
	causeListService  driving.CauseListService
	exportService     driving.ExportService
	settingsService   driving.SettingsService
	configWatcher     driven.ConfigWatcher
	reloadSettings    func() error
	observeRetrievals func(func(op domain.OperationKind, path string))

	bootstrap Bootstrap
	options   Options
)

// ErrNotConfigured is returned when a command runs without its services.
var ErrNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "ecourts",
	Short: "Look up Indian district court cases and cause lists",
	Long: `ecourts retrieves case status and daily cause lists from the eCourts
services portal. When the portal cannot be reached, results are served from a
built-in synthetic dataset so every request gets an answer.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&options.ConfigDir, "config-dir", "", "configuration directory (default ~/.ecourts, env "+EnvHome+")")
	rootCmd.PersistentFlags().BoolVar(&options.Offline, "offline", false, "serve every request from the synthetic dataset (env "+EnvOffline+")")
}

// SetBootstrap installs the function that builds services once flags are parsed.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Configure installs services directly.
func Configure(s *Services) {
	taskExecutor = s.Tasks
	causeListService = s.CauseLists
	exportService = s.Export
	settingsService = s.Settings
	configWatcher = s.Watcher
	reloadSettings = s.Reload
	observeRetrievals = s.ObserveRetrievals
}

func setup(cmd *cobra.Command, _ []string) error {
	opts := resolveOptions(cmd, options)
	logger.SetVerbose(opts.Verbose)

	if bootstrap == nil {
		return nil
	}
	svcs, err := bootstrap(opts)
	if err != nil {
		return err
	}
	Configure(svcs)
	return nil
}

// resolveOptions fills unset flags from the environment.
func resolveOptions(cmd *cobra.Command, opts Options) Options {
	flags := cmd.Flags()
	if !flags.Changed("config-dir") {
		if dir := os.Getenv(EnvHome); dir != "" {
			opts.ConfigDir = dir
		}
	}
	if !flags.Changed("offline") {
		if v, err := strconv.ParseBool(os.Getenv(EnvOffline)); err == nil {
			opts.Offline = v
		}
	}
	return opts
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
