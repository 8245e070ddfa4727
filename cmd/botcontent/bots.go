package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/community-bots/internal/app"
	"github.com/heartmarshall/community-bots/internal/domain"
)

var (
	ensureCount  int
	activityLast int
	showActivity int
)

var botsCmd = &cobra.Command{
	Use:   "bots",
	Short: "Inspect and grow the bot pool",
}

var botsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bot accounts with their most recent activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			bots, err := a.Bots.EnsurePool(ctx, 0)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tGENDER\tLAST ACTIVITY")
			for _, b := range bots {
				last := "-"
				entries, err := a.Activity.ListByBot(ctx, b.ID, activityLast)
				if err != nil {
					return err
				}
				if len(entries) > 0 {
					last = fmt.Sprintf("%s %s", entries[0].ActivityType, entries[0].CreatedAt.Format("2006-01-02 15:04"))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.DisplayName, b.Location, b.Gender(), last)
			}
			return tw.Flush()
		})
	},
}

var botsShowCmd = &cobra.Command{
	Use:   "show BOT_ID",
	Short: "Print one bot profile and its recent activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("bot id: %w", err)
		}
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			bot, err := a.Profiles.GetByID(ctx, id)
			if err != nil {
				return err
			}
			entries, err := a.Activity.ListByBot(ctx, id, showActivity)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, %s)\nbot: %t\nbio: %s\n", bot.DisplayName, bot.Location, bot.Gender(), bot.IsBot, bot.Bio)
			for _, e := range entries {
				fmt.Fprintf(out, "  %s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.ActivityType)
			}
			return nil
		})
	},
}

var botsEnsureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Create bots until the pool holds at least --count accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			target := ensureCount
			if target <= 0 {
				cfg := domain.DefaultContentConfig()
				if err := a.Settings.GetJSON(ctx, domain.SettingBotContentConfig, &cfg); err != nil && !errors.Is(err, domain.ErrNotFound) {
					return err
				}
				target = cfg.BotCount
			}

			bots, err := a.Bots.EnsurePool(ctx, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bot pool holds %d accounts\n", len(bots))
			return nil
		})
	},
}

func init() {
	botsListCmd.Flags().IntVar(&activityLast, "activity", 1, "recent activity rows fetched per bot")
	botsEnsureCmd.Flags().IntVar(&ensureCount, "count", 0, "target pool size (default: bot_count of the stored content config)")
	botsShowCmd.Flags().IntVar(&showActivity, "activity", 10, "recent activity rows to print")
	botsCmd.AddCommand(botsListCmd, botsShowCmd, botsEnsureCmd)
}
