package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordlens/internal/app"
)

var likeCmd = &cobra.Command{
	Use:   "like <word> <candidate>",
	Short: "Record that candidate is a good synonym of word",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, app.ComponentFeedback, func(ctx context.Context, rt *app.Runtime) error {
			n, err := rt.Thesaurus.Like(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (likes: %d)\n", args[0], args[1], n)
			return nil
		})
	},
}

var likesCmd = &cobra.Command{
	Use:   "likes <word> <candidate>",
	Short: "Show the like count of a synonym",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, app.ComponentFeedback, func(ctx context.Context, rt *app.Runtime) error {
			n, err := rt.Thesaurus.Likes(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)
			return nil
		})
	},
}
