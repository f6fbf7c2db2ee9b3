package user

import (
	"fmt"

	"proteseflow/internal/pkg/errs"
)

// AccountState is the archival state of an account.
//
//	Active ──> Archived ──> Active
//	              │
//	              └──> Deleted
//
// Deleted is terminal and only ever observed on an aggregate that is about to be
// removed from the store.
type AccountState int

const (
	UnknownState AccountState = iota
	Active
	Archived
	Deleted
)

func getStateStrings() map[AccountState]string {
	return map[AccountState]string{
		UnknownState: "Unknown",
		Active:       "Active",
		Archived:     "Archived",
		Deleted:      "Deleted",
	}
}

// Validate rejects UnknownState and out-of-range values.
func (s AccountState) Validate() error {
	if s != Active && s != Archived && s != Deleted {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid account state", s))
	}
	return nil
}

func (s AccountState) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Archive moves Active to Archived. Archiving an archived account is a no-op.
func (s AccountState) Archive() (AccountState, error) {
	switch s {
	case Active, Archived:
		return Archived, nil
	default:
		return 0, invalidTransition(s, Archived)
	}
}

// Restore moves Archived back to Active. Restoring an active account is a no-op.
func (s AccountState) Restore() (AccountState, error) {
	switch s {
	case Archived, Active:
		return Active, nil
	default:
		return 0, invalidTransition(s, Active)
	}
}

// Purge moves Archived to Deleted. Only archived accounts can be purged.
func (s AccountState) Purge() (AccountState, error) {
	if s != Archived {
		return 0, invalidTransition(s, Deleted)
	}
	return Deleted, nil
}

func invalidTransition(from, to AccountState) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("account cannot go from %s to %s", from, to),
	)
}
