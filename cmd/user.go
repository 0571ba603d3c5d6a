package main

import (
	"context"
	"fmt"
	"foodgram/internal/config"
	"foodgram/internal/users"
	"foodgram/pkg/logger"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// userCommand groups account management subcommands.
func userCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manages user accounts",
	}
	cmd.AddCommand(userCreateCommand(cfg))

	return cmd
}

// userCreateCommand creates an account and prints its id, followed by a
// token when --token is set.
func userCreateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a user and prints its ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			var input users.CreateInput
			input.Email, _ = cmd.Flags().GetString("email")
			input.Username, _ = cmd.Flags().GetString("username")
			input.FirstName, _ = cmd.Flags().GetString("first-name")
			input.LastName, _ = cmd.Flags().GetString("last-name")
			withToken, _ := cmd.Flags().GetBool("token")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := users.New(strg).Create(ctx, input)
			if err != nil {
				logger.Fatal(ctx, "could not create user", zap.Error(err))
			}
			fmt.Println(user.ID.String()) //nolint: forbidigo

			if withToken {
				signed, err := signToken(cfg.JWT.PrivateKey, user.ID, TTL)
				if err != nil {
					logger.Fatal(ctx, "could not generate token", zap.Error(err))
				}
				fmt.Println(signed) //nolint: forbidigo
			}
		},
	}

	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("username", "", "Username")
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().Bool("token", false, "Also print a JWT for the new user")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL when --token is set")
	for _, name := range []string{"email", "username", "first-name", "last-name"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
