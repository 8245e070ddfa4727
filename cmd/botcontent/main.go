// Command botcontent runs the community bot content generator: as an HTTP
// function server, as a one-shot invocation for cron, or as operator
// tooling for migrations, settings and trigger tokens.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/community-bots/internal/app"
	"github.com/heartmarshall/community-bots/internal/config"
)

var (
	configPath string
	envFiles   []string
)

var rootCmd = &cobra.Command{
	Use:           "botcontent",
	Short:         "Generate bot posts, topics, replies and comments for the community",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvFiles(envFiles)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files loaded before config; missing files are skipped")

	rootCmd.AddCommand(serveCmd, runCmd, migrateCmd, tokenCmd, settingsCmd, botsCmd, feedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadEnvFiles populates the environment from dotenv files. Variables already
// set in the process environment win.
func loadEnvFiles(paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// withApp loads config, wires the application and hands it to fn.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
