package services

import (
	"errors"
	"strings"

	"proteseflow/internal/core/domain/model/user"
)

// ErrLoginNotFound is returned when no account matches the identifier.
var ErrLoginNotFound = errors.New("no account matches the login identifier")

// LoginResolver maps a login identifier (username or email, any case) to one account.
//
// Selection rules:
//   - exactly one match: that account
//   - several matches: the lowest id among accounts whose email matches, falling back
//     to the lowest id overall when the collision is between usernames only
//   - no match: ErrLoginNotFound
//
// Accounts are resolved regardless of state; the caller still verifies the password
// and rejects archived accounts.
//
// Example usage:
//
//	candidates, _ := repo.FindByLogin(ctx, identifier)
//	u, err := services.NewLoginResolver().Resolve(identifier, candidates)
//	if errors.Is(err, services.ErrLoginNotFound) {
//	    // invalid credentials
//	}
type LoginResolver struct{}

func NewLoginResolver() LoginResolver {
	return LoginResolver{}
}

// Resolve selects the account for identifier among candidates. Candidates that do not
// actually match the identifier are ignored, so the store may return a superset.
func (r LoginResolver) Resolve(identifier string, candidates []*user.User) (*user.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrLoginNotFound
	}

	var byEmail, byAny *user.User
	matches := 0
	for _, c := range candidates {
		if c.Validate() != nil {
			continue
		}

		emailMatch := c.MatchesEmail(identifier)
		if !emailMatch && !c.MatchesUsername(identifier) {
			continue
		}

		matches++
		byAny = lowest(byAny, c)
		if emailMatch {
			byEmail = lowest(byEmail, c)
		}
	}

	switch {
	case matches == 0:
		return nil, ErrLoginNotFound
	case byEmail != nil && matches > 1:
		return byEmail, nil
	default:
		return byAny, nil
	}
}

func lowest(current, candidate *user.User) *user.User {
	if current == nil || candidate.ID() < current.ID() {
		return candidate
	}
	return current
}
