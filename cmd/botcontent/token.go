package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/community-bots/internal/auth"
	"github.com/heartmarshall/community-bots/internal/domain"
)

var (
	tokenRole    string
	tokenSubject string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for triggering the function",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Auth.Disabled {
			return fmt.Errorf("auth is disabled; no token needed")
		}
		if !domain.UserRole(tokenRole).IsValid() {
			return fmt.Errorf("unknown role %q", tokenRole)
		}
		if !cfg.Auth.IsRoleAllowed(tokenRole) {
			return fmt.Errorf("role %q is not in auth.allowed_roles (%s)", tokenRole, cfg.Auth.AllowedRoles)
		}

		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
		token, err := jwt.GenerateAccessToken(tokenSubject, tokenRole)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenRole, "role", domain.UserRoleServiceRole.String(), "role claim of the token")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "scheduler", "subject claim identifying the caller")
}
