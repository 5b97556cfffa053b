package cmd

import (
	"fmt"
	"os"

	"github.com/envelope-zero/paycheck/internal/cli"
	"github.com/envelope-zero/paycheck/internal/display"
	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/schedule"
	"github.com/spf13/cobra"
)

var (
	flagPaydaysLast      string
	flagPaydaysFrequency string
	flagPaydaysFrom      string
	flagPaydaysUntil     string
)

var paydaysCmd = &cobra.Command{
	Use:   "paydays",
	Short: "List the paydays until a date",
	Long: `List the paydays until a date.

With --last and --frequency, paydays follow the pay schedule. Without them,
paydays are the 15th and the last day of each month.`,
	RunE: runPaydays,
}

func init() {
	paydaysCmd.Flags().StringVar(&flagPaydaysLast, "last", "", "Most recent payday (YYYY-MM-DD)")
	paydaysCmd.Flags().StringVar(&flagPaydaysFrequency, "frequency", "", "Pay frequency: weekly, bi-weekly or monthly")
	paydaysCmd.Flags().StringVar(&flagPaydaysFrom, "from", "", "First day to list (YYYY-MM-DD), defaults to today")
	paydaysCmd.Flags().StringVar(&flagPaydaysUntil, "until", "", "Last day to list (YYYY-MM-DD)")
	_ = paydaysCmd.MarkFlagRequired("until")
	rootCmd.AddCommand(paydaysCmd)
}

func runPaydays(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(os.Stderr)
	if err != nil {
		return err
	}

	until, err := types.ParseDate(flagPaydaysUntil)
	if err != nil {
		return fmt.Errorf("invalid --until: %w", err)
	}

	from := types.Today()
	if flagPaydaysFrom != "" {
		from, err = types.ParseDate(flagPaydaysFrom)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
	}

	var last *types.Date
	if flagPaydaysLast != "" {
		d, err := types.ParseDate(flagPaydaysLast)
		if err != nil {
			return fmt.Errorf("invalid --last: %w", err)
		}
		last = &d
	}

	var frequency schedule.Frequency
	if flagPaydaysFrequency != "" {
		frequency, err = schedule.ParseFrequency(flagPaydaysFrequency)
		if err != nil {
			return err
		}
	}

	f, err := display.New(cfg.Locale)
	if err != nil {
		return err
	}

	sched := schedule.Select(last, frequency)
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderPaydays(string(sched.Mode()), sched.Paydays(from, until), f))
	return nil
}
