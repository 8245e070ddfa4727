package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/community-bots/internal/app"
	"github.com/heartmarshall/community-bots/internal/transport/rest"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Perform one generator invocation and print the JSON response",
	Long: `Perform one invocation exactly as POST /functions/v1/bot-content would and
print the same JSON body to stdout. Exits 1 when the invocation fails or
another run holds the lock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			out, runErr := a.Content.Run(ctx)
			status, body := rest.Response(out, runErr)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(body); err != nil {
				return fmt.Errorf("encode response: %w", err)
			}

			if status != http.StatusOK {
				return fmt.Errorf("invocation finished with status %d", status)
			}
			return nil
		})
	},
}
