package commands

import (
	"errors"

	"proteseflow/internal/core/domain/model/user"
)

// ErrActorIsRequired is returned when a command that needs an authenticated user is
// built without one.
var ErrActorIsRequired = errors.New("an authenticated, persisted user is required")

func validateActor(actor *user.User) error {
	if actor == nil {
		return ErrActorIsRequired
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.ID().IsZero() {
		return ErrActorIsRequired
	}
	return nil
}
