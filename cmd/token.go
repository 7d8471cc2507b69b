package main

import (
	"context"
	"fmt"
	"newsroom/internal/session"
	"newsroom/pkg/logger"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand prints the claims the front-end reads out of a backend token,
// useful when a login lands with an unexpected role.
func tokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token [token]",
		Short: "Prints the claims of a backend token",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			claims, err := session.ParseClaims(args[0])
			if err != nil {
				logger.Fatal(context.Background(), "could not parse token", zap.Error(err))
			}

			expires := "never"
			if !claims.ExpiresAt.IsZero() {
				expires = claims.ExpiresAt.Format(time.RFC3339)
				if claims.ExpiresAt.Before(time.Now()) {
					expires += " (expired)"
				}
			}

			//nolint: forbidigo
			fmt.Printf("user id:  %s\nusername: %s\nrole:     %s (%d)\nexpires:  %s\n",
				claims.UserID, claims.Username, claims.Role, int(claims.Role), expires)
		},
	}

	return cmd
}
