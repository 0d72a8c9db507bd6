package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlens/internal/app"
	"github.com/heartmarshall/wordlens/internal/service/thesaurus"
)

var (
	analyzeContext string
	analyzeTop     int
	analyzeEnrich  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <word>",
	Short: "Show definitions, examples, antonyms and ranked synonyms of a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, app.ComponentAll, func(ctx context.Context, rt *app.Runtime) error {
			a, err := rt.Thesaurus.Analyze(ctx, thesaurus.AnalyzeInput{
				Word:    args[0],
				Context: analyzeContext,
				TopN:    analyzeTop,
				Enrich:  analyzeEnrich,
			})
			if err != nil {
				return err
			}
			renderAnalysis(cmd.OutOrStdout(), a)
			return nil
		})
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeContext, "context", "c", "", "sentence the word appears in")
	analyzeCmd.Flags().IntVarP(&analyzeTop, "top", "n", 0, "number of ranked synonyms (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeEnrich, "enrich", false, "add pronunciation, origin and meanings from the dictionary API")
}
