package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlens/internal/app"
)

var predictCmd = &cobra.Command{
	Use:   "predict <text...>",
	Short: "Continue a partial sentence with the predictive model",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		partial := strings.Join(args, " ")
		return withRuntime(cmd, app.ComponentNone, func(ctx context.Context, rt *app.Runtime) error {
			res := rt.Thesaurus.Predict(ctx, partial)
			if !res.OK() {
				return res.Failure
			}
			fmt.Fprintln(cmd.OutOrStdout(), partial+res.Text)
			return nil
		})
	},
}

var generateContext string

var generateCmd = &cobra.Command{
	Use:   "generate <word>",
	Short: "Ask the generative model for synonyms and related expressions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, app.ComponentNone, func(ctx context.Context, rt *app.Runtime) error {
			res := rt.Thesaurus.GenerateSynonyms(ctx, args[0], generateContext)
			if !res.OK() {
				return res.Failure
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		})
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateContext, "context", "c", "", "sentence the word appears in")
}
