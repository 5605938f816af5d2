package main

import (
	"context"
	"crypto/rsa"
	"exposure/internal/config"
	"exposure/pkg/logger"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that mints an RS256 bearer token
// for a user. Without --user a fresh user id is generated, which is handy when
// trying the API locally.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Mints a bearer token for a user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("user")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID := uuid.New()
			if subject != "" {
				var err error
				if userID, err = uuid.Parse(subject); err != nil {
					logger.Fatal(ctx, "user must be a uuid", zap.String("user", subject), zap.Error(err))
				}
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			signed, err := signToken(key, userID, time.Now(), TTL)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			logger.Info(ctx, "token minted", zap.String("userID", userID.String()), zap.Duration("ttl", TTL))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), signed)
		},
	}

	cmd.Flags().String("user", "", "User ID (uuid) to put in the token subject; random when empty")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}

// signToken issues a token whose subject is userID, valid from now for TTL.
func signToken(key *rsa.PrivateKey, userID uuid.UUID, now time.Time, TTL time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign claims: %w", err)
	}

	return signed, nil
}
