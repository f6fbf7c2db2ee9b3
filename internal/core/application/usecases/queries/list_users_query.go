package queries

import (
	"errors"
	"fmt"
	"strings"

	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/errs"
	"proteseflow/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// UserListView selects which accounts a listing returns.
type UserListView int

const (
	// ActiveUsers lists active accounts.
	ActiveUsers UserListView = iota + 1
	// ArchivedUsers is the trash: archived accounts awaiting restore or purge.
	ArchivedUsers
	// PendingApprovals lists active, unconfirmed, non-superuser accounts.
	PendingApprovals
	// DentistOwners lists active dentists a manager may assign an order to.
	DentistOwners
)

func getUserListViewNames() map[UserListView]string {
	return map[UserListView]string{
		ActiveUsers:      "active",
		ArchivedUsers:    "trash",
		PendingApprovals: "approvals",
		DentistOwners:    "dentists",
	}
}

// ParseUserListView accepts active, trash, approvals and dentists. Blank means active.
func ParseUserListView(s string) (UserListView, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ActiveUsers, nil
	}
	for view, name := range getUserListViewNames() {
		if name == s {
			return view, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("view", fmt.Errorf("unknown view %q", s))
}

func (v UserListView) String() string {
	return getUserListViewNames()[v]
}

type ListUsersQuery struct {
	actor *user.User
	view  UserListView

	guard guard.ConstructorGuard
}

func NewListUsersQuery(actor *user.User, view UserListView) (ListUsersQuery, error) {
	var viewErr error
	if _, ok := getUserListViewNames()[view]; !ok {
		viewErr = errs.NewValueIsInvalidError("view")
	}
	if err := errors.Join(validateActor(actor), viewErr); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{actor: actor, view: view, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Actor() *user.User  { return q.actor }
func (q ListUsersQuery) View() UserListView { return q.view }
