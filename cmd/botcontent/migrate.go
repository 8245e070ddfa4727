package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/community-bots/internal/adapter/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or list the embedded database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		action := "up"
		if len(args) == 1 {
			action = args[0]
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer m.Close()

		out := cmd.OutOrStdout()

		switch action {
		case "up":
			res, err := m.Up(ctx)
			for _, r := range res {
				fmt.Fprintf(out, "applied %s (%s)\n", r.Source.Path, r.Duration)
			}
			if err != nil {
				return err
			}
			if len(res) == 0 {
				fmt.Fprintln(out, "no pending migrations")
			}
		case "down":
			res, err := m.Down(ctx)
			if err != nil {
				return err
			}
			if res != nil {
				fmt.Fprintf(out, "rolled back %s (%s)\n", res.Source.Path, res.Duration)
			}
		case "status":
			st, err := m.Status(ctx)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
			for _, s := range st {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Source.Version, s.State, s.Source.Path)
			}
			return tw.Flush()
		}
		return nil
	},
}
