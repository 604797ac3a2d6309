package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

var (
	cnrToday    bool
	cnrTomorrow bool
	cnrOutput   string

	caseType   string
	caseNumber string
	caseYear   string
	caseParty  string
	caseOutput string
)

var caseCmd = &cobra.Command{
	Use:   "case",
	Short: "Look up a case",
	Long:  `Look up a case by its CNR or by case type, number and year.`,
}

var caseCNRCmd = &cobra.Command{
	Use:   "cnr <CNR>",
	Short: "Look up a case by CNR",
	Long: `Look up a case by its 16 character Case Number Record (CNR).

Use --today and --tomorrow to check whether the case is listed for hearing.

Examples:
  ecourts case cnr DLHC010123456789 --today
  ecourts case cnr DLHC010123456789 --today --tomorrow --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runCaseCNR,
}

var caseSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Look up a case by type, number and year",
	Long: `Look up a case by type, number and year, optionally narrowed by party name.

Example:
  ecourts case search --type CS --number 123 --year 2024`,
	RunE: runCaseSearch,
}

func init() {
	caseCNRCmd.Flags().BoolVar(&cnrToday, "today", false, "check whether the case is listed today")
	caseCNRCmd.Flags().BoolVar(&cnrTomorrow, "tomorrow", false, "check whether the case is listed tomorrow")
	caseCNRCmd.Flags().StringVarP(&cnrOutput, "output", "o", outputConsole, "output format: console, json or csv")

	caseSearchCmd.Flags().StringVar(&caseType, "type", "", "case type (required)")
	caseSearchCmd.Flags().StringVar(&caseNumber, "number", "", "case number (required)")
	caseSearchCmd.Flags().StringVar(&caseYear, "year", "", "registration year, four digits (required)")
	caseSearchCmd.Flags().StringVar(&caseParty, "party", "", "party name")
	caseSearchCmd.Flags().StringVarP(&caseOutput, "output", "o", outputConsole, "output format: console, json or csv")
	_ = caseSearchCmd.MarkFlagRequired("type")
	_ = caseSearchCmd.MarkFlagRequired("number")
	_ = caseSearchCmd.MarkFlagRequired("year")

	caseCmd.AddCommand(caseCNRCmd)
	caseCmd.AddCommand(caseSearchCmd)
	rootCmd.AddCommand(caseCmd)
}

func runCaseCNR(cmd *cobra.Command, args []string) error {
	if err := validateOutput(cnrOutput); err != nil {
		return err
	}
	id, err := domain.ParseCaseIdentifier(args[0])
	if err != nil {
		return err
	}

	params := domain.TaskParams{CNR: id.String(), CheckToday: cnrToday, CheckTomorrow: cnrTomorrow}
	task, err := runTask(cmd, domain.OpSearchCNR, params, "Searching "+id.String())
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	res := task.Result.Case
	renderCase(cmd.OutOrStdout(), res, cnrToday, cnrTomorrow)
	return save(cmd, cnrOutput, res, domain.OpSearchCNR, params)
}

func runCaseSearch(cmd *cobra.Command, _ []string) error {
	if err := validateOutput(caseOutput); err != nil {
		return err
	}
	q := domain.DetailsQuery{
		CaseType:   caseType,
		CaseNumber: caseNumber,
		CaseYear:   caseYear,
		PartyName:  caseParty,
	}.Normalize()
	if err := q.Validate(); err != nil {
		return err
	}

	params := domain.TaskParams{Details: q}
	task, err := runTask(cmd, domain.OpSearchCase, params, "Searching "+q.CaseNumberLabel())
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	res := task.Result.Case
	renderCase(cmd.OutOrStdout(), res, false, false)
	return save(cmd, caseOutput, res, domain.OpSearchCase, params)
}
