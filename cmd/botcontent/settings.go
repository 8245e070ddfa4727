package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/community-bots/internal/app"
	"github.com/heartmarshall/community-bots/internal/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect or change the generator settings stored in app_settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the kill switch and the effective content config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			enabled, err := a.Settings.GetBool(ctx, domain.SettingBotSystemEnabled)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}

			cfg := domain.DefaultContentConfig()
			if err := a.Settings.GetJSON(ctx, domain.SettingBotContentConfig, &cfg); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				domain.SettingBotSystemEnabled: enabled,
				domain.SettingBotContentConfig: cfg,
			})
		})
	},
}

func setEnabled(enabled bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			if err := a.Settings.Set(ctx, domain.SettingBotSystemEnabled, enabled); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %t\n", domain.SettingBotSystemEnabled, enabled)
			return nil
		})
	}
}

var settingsEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn the bot system on",
	Args:  cobra.NoArgs,
	RunE:  setEnabled(true),
}

var settingsDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn the bot system off",
	Args:  cobra.NoArgs,
	RunE:  setEnabled(false),
}

var settingsSetConfigCmd = &cobra.Command{
	Use:   "set-config FILE",
	Short: "Validate a JSON content config and store it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		cfg := domain.DefaultContentConfig()
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			if err := a.Settings.Set(ctx, domain.SettingBotContentConfig, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s updated\n", domain.SettingBotContentConfig)
			return nil
		})
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsEnableCmd, settingsDisableCmd, settingsSetConfigCmd)
}
