package v1handler

import (
	"context"
	"crypto/rsa"
	"exposure/internal/config"
	"exposure/pkg/domain"
	"exposure/pkg/serrors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

// UserIDKey is the context key the authenticated domain.UserID is stored under.
const UserIDKey contextKey = "userID"

// AccessTokenParam carries the bearer token on requests that cannot set headers,
// i.e. browser websocket upgrades.
const AccessTokenParam = "access_token"

// SecHandlerOptions holds the key material used to verify bearer tokens.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens are signed against.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates requests with RS256 bearer tokens whose subject is
// the user id.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	return &SecHandler{
		publicKey: publicKey,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the caller's user id.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "Unauthorized")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "Unauthorized")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// Authenticate rejects requests without a valid Authorization bearer token.
func (s *SecHandler) Authenticate(next http.Handler) http.Handler {
	return s.authenticate(next, false)
}

// AuthenticateStream is Authenticate that also accepts the token in the
// AccessTokenParam query parameter.
func (s *SecHandler) AuthenticateStream(next http.Handler) http.Handler {
	return s.authenticate(next, true)
}

func (s *SecHandler) authenticate(next http.Handler, allowQuery bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" && allowQuery {
			token = r.URL.Query().Get(AccessTokenParam)
		}
		if token == "" {
			NewError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "Unauthorized"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			NewError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// GetUserIDFromContext returns the user id stored by the security handler.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}
