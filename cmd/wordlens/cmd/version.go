package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlens/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}
