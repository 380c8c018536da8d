package cmd

import (
	"fmt"

	"github.com/expensex/expensex-api/handlers"
	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "expensex %s\n", handlers.Version)
		},
	}
}
