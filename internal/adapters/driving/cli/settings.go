package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in the config file.

Keys use dotted names, for example scraper.live or api.cnr_timeout.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save it to the config file.

Examples:
  ecourts settings set scraper.live false
  ecourts settings set scraper.result_timeout 20s
  ecourts settings set output.dir ./exports`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	s, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	d := settingsService.GetDefaults()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Scraper]")
	cmd.Printf("  Base URL: %s\n", s.Scraper.BaseURL)
	cmd.Printf("  Live: %s\n", onOff(s.Scraper.Live))
	cmd.Printf("  Headless: %s\n", onOff(s.Scraper.Headless))
	cmd.Printf("  Element timeout: %s\n", s.Scraper.ElementTimeout)
	cmd.Printf("  Result timeout: %s\n", s.Scraper.ResultTimeout)
	cmd.Printf("  Requests per second: %g\n", s.Scraper.RequestsPerSecond)
	if s.Scraper.UserAgent != d.Scraper.UserAgent {
		cmd.Printf("  User agent: %s\n", s.Scraper.UserAgent)
	}
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Address: %s\n", s.API.Addr)
	cmd.Printf("  CNR timeout: %s\n", s.API.CNRTimeout)
	cmd.Printf("  Case timeout: %s\n", s.API.CaseTimeout)
	cmd.Printf("  Cause list timeout: %s\n", s.API.CauseListTimeout)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", s.Output.Dir)
	cmd.Println()

	cmd.Println("[Logging]")
	cmd.Printf("  Verbose: %s\n", onOff(s.Logging.Verbose))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return fmt.Errorf("%w (run 'ecourts settings keys' for valid keys)", err)
		}
		return err
	}
	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	for _, k := range settingsService.Keys() {
		cmd.Println(k)
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
