package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

var (
	tokenID   string
	tokenName string
	tokenRole string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET must be set to issue tokens")
		}

		role := constants.Role(tokenRole)
		if !role.Valid() {
			return fmt.Errorf("role must be %q or %q", constants.RoleSubmitter, constants.RoleApprover)
		}
		if tokenID == "" {
			tokenID = uuid.NewString()
		}

		token, err := auth.Issue(cfg.JWTSecret, model.Actor{ID: tokenID, Name: tokenName, Role: role}, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenID, "id", "", "user id (random when empty)")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(constants.RoleSubmitter), "submitter or approver")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
