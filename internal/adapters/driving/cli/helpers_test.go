package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ecourts-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/ecourts-cli/internal/adapters/driven/dataset"
	"github.com/custodia-labs/ecourts-cli/internal/adapters/driven/export/file"
	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/services"
)

// offlineServices wires the real services with live retrieval disabled and
// exports under dir.
func offlineServices(dir string) *Services {
	settings := domain.DefaultSettings().Scraper
	settings.Live = false
	portal := services.NewPortal(settings, nil, nil)
	provider := dataset.New()
	causeLists := services.NewCauseListService(portal, provider)

	return &Services{
		Tasks:      services.NewTaskExecutor(services.NewCaseService(portal, provider), causeLists),
		CauseLists: causeLists,
		Export:     services.NewExportService(file.NewExporter(), dir),
		Settings:   services.NewSettingsService(memory.NewConfigStore(nil)),
	}
}

// useServices installs svcs for the duration of the test.
func useServices(t *testing.T, svcs *Services) {
	t.Helper()
	prev := &Services{
		Tasks:             taskExecutor,
		CauseLists:        causeListService,
		Export:            exportService,
		Settings:          settingsService,
		Watcher:           configWatcher,
		Reload:            reloadSettings,
		ObserveRetrievals: observeRetrievals,
	}
	prevBootstrap := bootstrap
	Configure(svcs)
	bootstrap = nil
	t.Cleanup(func() {
		Configure(prev)
		bootstrap = prevBootstrap
	})
}

// resetFlags restores every flag to its default so tests do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, errOut, err := execute(t, args...)
	require.NoError(t, err, errOut)
	return out
}
