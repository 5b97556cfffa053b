package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/envelope-zero/paycheck/internal/cli"
	"github.com/envelope-zero/paycheck/internal/display"
	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/spf13/cobra"
)

var (
	flagPlanToday string
	flagPlanJSON  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show how much of each paycheck should go to every goal",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&flagPlanToday, "today", "", "Compute the plan as of this day (YYYY-MM-DD), defaults to today")
	planCmd.Flags().BoolVar(&flagPlanJSON, "json", false, "Print the plan as JSON")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(os.Stderr)
	if err != nil {
		return err
	}

	today := types.Today()
	if flagPlanToday != "" {
		today, err = types.ParseDate(flagPlanToday)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
	}

	err = connectDatabase(cfg.Database)
	if err != nil {
		return err
	}

	result, _, err := models.Plan(models.DB, today)
	if err != nil {
		return err
	}

	if flagPlanJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	f, err := display.New(cfg.Locale)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderPlan(result, today, f))
	return nil
}
