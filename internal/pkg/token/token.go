// Package token issues and verifies the signed session tokens handed out at login.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"proteseflow/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrSecretIsRequired = errors.New("token: signing secret is required")
	ErrInvalidToken     = errors.New("token: invalid or expired")
)

// Claims are the registered JWT claims plus the role code at issue time. The role is
// informational only: authorization always reloads the user.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Session is a verified token.
type Session struct {
	ID        string
	UserID    kernel.ID
	ExpiresAt time.Time
}

// Issued is a freshly signed token.
type Issued struct {
	Token string
	Session
}

type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret, issuer string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token: ttl must be positive, got %s", ttl)
	}
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue signs an HS256 token for the user with a random token id.
func (m *Manager) Issue(userID kernel.ID, role string) (Issued, error) {
	now := m.now()
	session := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl).Truncate(time.Second),
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Issuer:    m.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return Issued{}, err
	}
	return Issued{Token: signed, Session: session}, nil
}

// Parse verifies signature, issuer and expiry. Every failure wraps ErrInvalidToken.
func (m *Manager) Parse(raw string) (Session, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 || claims.ID == "" {
		return Session{}, fmt.Errorf("%w: malformed subject or id", ErrInvalidToken)
	}

	return Session{
		ID:        claims.ID,
		UserID:    kernel.ID(id),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
