package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/errs"
	"proteseflow/internal/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	actorKey   = "actor"
	sessionKey = "session"
)

type (
	// Tokens issues and verifies session tokens.
	Tokens interface {
		Issue(userID kernel.ID, role string) (token.Issued, error)
		Parse(raw string) (token.Session, error)
	}

	// RevocationList remembers logged out sessions until they expire.
	RevocationList interface {
		Revoke(ctx context.Context, sessionID string, expiresAt time.Time) error
		IsRevoked(ctx context.Context, sessionID string) (bool, error)
	}

	// UserLoader reads the current state of an account.
	UserLoader interface {
		Get(ctx context.Context, id kernel.ID) (*user.User, error)
	}
)

// Authenticator verifies the bearer token of each request and reloads the user it
// belongs to, so authorization always sees the current role and state.
type Authenticator struct {
	tokens  Tokens
	revoked RevocationList
	users   UserLoader
	log     zerolog.Logger
}

func NewAuthenticator(tokens Tokens, revoked RevocationList, users UserLoader, log zerolog.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, revoked: revoked, users: users, log: log}
}

// Middleware rejects the request with 401 unless it carries a valid, unrevoked token
// of an active account.
func (a *Authenticator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return ErrUnauthorized
		}

		session, err := a.tokens.Parse(raw)
		if err != nil {
			return ErrUnauthorized
		}

		ctx := c.Request().Context()

		revoked, err := a.revoked.IsRevoked(ctx, session.ID)
		if err != nil {
			return err
		}
		if revoked {
			return ErrUnauthorized
		}

		u, err := a.users.Get(ctx, session.UserID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrUnauthorized
		}
		if err != nil {
			return err
		}
		if !u.IsActive() {
			a.log.Info().Int64("user_id", u.ID().Int64()).Msg("rejected session of inactive account")
			return ErrUnauthorized
		}

		c.Set(actorKey, u)
		c.Set(sessionKey, session)
		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, raw, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// actorFrom returns the user set by the auth middleware, or nil on public routes.
func actorFrom(c echo.Context) *user.User {
	u, _ := c.Get(actorKey).(*user.User)
	return u
}

func sessionFrom(c echo.Context) (token.Session, bool) {
	s, ok := c.Get(sessionKey).(token.Session)
	return s, ok
}
