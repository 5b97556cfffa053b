package cmd

import (
	"fmt"

	"github.com/envelope-zero/paycheck/pkg/router"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), router.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
