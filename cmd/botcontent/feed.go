package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/community-bots/internal/app"
)

var feedLimit int

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Read the generated feed",
}

var feedRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Print the newest feed posts with their comments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			posts, err := a.Feed.ListRecentPosts(ctx, feedLimit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range posts {
				comments, err := a.Feed.ListComments(ctx, p.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "[%s] %s: %s\n", p.CreatedAt.Format("2006-01-02 15:04"), p.AuthorName, p.Content)
				for _, c := range comments {
					fmt.Fprintf(out, "    %s: %s\n", c.AuthorName, c.Content)
				}
			}
			return nil
		})
	},
}

func init() {
	feedRecentCmd.Flags().IntVar(&feedLimit, "limit", 10, "number of posts")
	feedCmd.AddCommand(feedRecentCmd)
}
