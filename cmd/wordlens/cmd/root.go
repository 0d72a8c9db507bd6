package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlens/internal/app"
	"github.com/heartmarshall/wordlens/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "wordlens",
	Short:         "Dictionary and thesaurus with context-ranked synonyms",
	Long:          "WordNet definitions, examples, antonyms and synonyms, ranked against a context sentence with a sentence-embedding model.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(likesCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// withRuntime loads configuration, initializes the parts of the runtime the
// command needs, runs fn and releases the runtime afterwards.
func withRuntime(cmd *cobra.Command, needs app.Component, fn func(ctx context.Context, rt *app.Runtime) error) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := app.Init(ctx, cfg, logger, app.WithComponents(needs))
	if err != nil {
		return err
	}
	defer rt.Close()

	return fn(ctx, rt)
}
