package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlens/internal/app"
)

var completeLimit int

var completeCmd = &cobra.Command{
	Use:   "complete <prefix>",
	Short: "List lemmas starting with prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, app.ComponentLexicon, func(ctx context.Context, rt *app.Runtime) error {
			for _, w := range rt.Thesaurus.Complete(ctx, args[0], completeLimit) {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		})
	},
}

func init() {
	completeCmd.Flags().IntVarP(&completeLimit, "limit", "l", 10, "maximum number of completions")
}
