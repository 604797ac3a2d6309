package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

var (
	listState    string
	listDistrict string
	listComplex  string
	listDate     string
	listOutput   string

	courtsState string
	courtsJSON  bool
)

var causeListCmd = &cobra.Command{
	Use:   "causelist",
	Short: "Fetch a court complex's cause list",
	Long: `Fetch the daily cause list of a court complex.

Omitted selectors default to Delhi / New Delhi / Patiala House Court Comp and
an omitted date means today. Use 'ecourts courts' to list known complexes.

Example:
  ecourts causelist --state Maharashtra --district "Mumbai City" --complex "Mumbai City Civil Court" --date 17/10/2025 --output csv`,
	Args: cobra.NoArgs,
	RunE: runCauseList,
}

var courtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "List states, districts and court complexes",
	Args:  cobra.NoArgs,
	RunE:  runCourts,
}

func init() {
	causeListCmd.Flags().StringVar(&listState, "state", "", "state name")
	causeListCmd.Flags().StringVar(&listDistrict, "district", "", "district name")
	causeListCmd.Flags().StringVar(&listComplex, "complex", "", "court complex name")
	causeListCmd.Flags().StringVar(&listDate, "date", "", "list date as DD/MM/YYYY (default today)")
	causeListCmd.Flags().StringVarP(&listOutput, "output", "o", outputConsole, "output format: console, json or csv")

	courtsCmd.Flags().StringVar(&courtsState, "state", "", "only show this state")
	courtsCmd.Flags().BoolVar(&courtsJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(causeListCmd)
	rootCmd.AddCommand(courtsCmd)
}

func runCauseList(cmd *cobra.Command, _ []string) error {
	if err := validateOutput(listOutput); err != nil {
		return err
	}
	if causeListService == nil {
		return fmt.Errorf("cause lists: %w", ErrNotConfigured)
	}

	date := listDate
	if strings.TrimSpace(date) != "" {
		d, err := domain.ParseListDate(date, time.Now())
		if err != nil {
			return err
		}
		date = d
	}
	key := domain.SelectorKey{State: listState, District: listDistrict, Complex: listComplex}.WithDefaults()

	params := domain.TaskParams{Selector: key, Date: date}
	task, err := runTask(cmd, domain.OpFetchCauseList, params, "Fetching "+key.Complex)
	if err != nil {
		return fmt.Errorf("cause list failed: %w", err)
	}

	list := task.Result.CauseList
	params.Date = list.Metadata.Date
	renderCauseList(cmd.OutOrStdout(), list)
	return save(cmd, listOutput, list, domain.OpFetchCauseList, params)
}

func runCourts(cmd *cobra.Command, _ []string) error {
	if causeListService == nil {
		return fmt.Errorf("cause lists: %w", ErrNotConfigured)
	}

	js := causeListService.Jurisdictions()
	if courtsState != "" {
		var filtered []domain.Jurisdiction
		for _, j := range js {
			if strings.EqualFold(j.State, strings.TrimSpace(courtsState)) {
				filtered = append(filtered, j)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("state %q: %w", courtsState, domain.ErrNotFound)
		}
		js = filtered
	}

	if courtsJSON {
		data, err := json.MarshalIndent(js, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal jurisdictions: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	renderJurisdictions(cmd.OutOrStdout(), js)
	return nil
}
