package policy_test

import (
	"fmt"
	"testing"
	"time"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	id        kernel.ID
	role      user.Role
	superuser bool
	confirmed bool
	state     user.AccountState
}

func newUser(t *testing.T, a account) *user.User {
	t.Helper()
	if a.state == user.UnknownState {
		a.state = user.Active
	}
	u, err := user.RestoreUser(user.Snapshot{
		ID:           a.id,
		Username:     fmt.Sprintf("user%d", a.id),
		PasswordHash: "hash",
		Role:         a.role,
		Superuser:    a.superuser,
		Confirmed:    a.confirmed,
		State:        a.state,
		JoinedAt:     time.Now(),
	})
	require.NoError(t, err)
	return u
}

func newOrder(t *testing.T, id, dentistID kernel.ID) *order.Order {
	t.Helper()
	teeth, err := order.ParseToothElements("11")
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:        id,
		DentistID: dentistID,
		Details: order.Details{
			PatientName:   "Maria Silva",
			PatientSex:    order.Female,
			ServiceType:   "Coroa",
			ToothElements: teeth,
		},
		Status:    order.Pending,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return o
}

func TestIsInternalStaff(t *testing.T) {
	testCases := []struct {
		name     string
		account  account
		expected bool
	}{
		{"dentist", account{id: 1, role: user.Dentist, confirmed: true}, false},
		{"manager", account{id: 2, role: user.Manager}, true},
		{"cad technician", account{id: 3, role: user.CadTechnician}, true},
		{"superuser holding dentist role", account{id: 4, role: user.Dentist, superuser: true}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, policy.IsInternalStaff(newUser(t, tc.account)))
		})
	}

	assert.False(t, policy.IsInternalStaff(nil))
}

func TestIsManager(t *testing.T) {
	testCases := []struct {
		name     string
		account  account
		expected bool
	}{
		{"manager", account{id: 1, role: user.Manager}, true},
		{"superuser", account{id: 2, role: user.Dentist, superuser: true}, true},
		{"cad technician", account{id: 3, role: user.CadTechnician}, false},
		{"dentist", account{id: 4, role: user.Dentist, confirmed: true}, false},
		{"archived manager", account{id: 5, role: user.Manager, state: user.Archived}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := newUser(t, tc.account)
			assert.Equal(t, tc.expected, policy.IsManager(u))
			assert.Equal(t, tc.expected, policy.CanManageUsers(u))
			assert.Equal(t, tc.expected, policy.CanDeleteOrder(u))
			assert.Equal(t, tc.expected, policy.CanSelectOrderOwner(u))
		})
	}

	assert.False(t, policy.IsManager(nil))
}

func TestCanCreateOrder(t *testing.T) {
	assert.True(t, policy.CanCreateOrder(newUser(t, account{id: 1, role: user.Dentist, confirmed: true})))
	assert.False(t, policy.CanCreateOrder(newUser(t, account{id: 2, role: user.Dentist})))
	assert.True(t, policy.CanCreateOrder(newUser(t, account{id: 3, role: user.Dentist, superuser: true})))
	assert.False(t, policy.CanCreateOrder(nil))
}

func TestCanEditOrderStatus(t *testing.T) {
	assert.False(t, policy.CanEditOrderStatus(newUser(t, account{id: 1, role: user.Dentist, confirmed: true})))
	assert.True(t, policy.CanEditOrderStatus(newUser(t, account{id: 2, role: user.CadTechnician})))
	assert.True(t, policy.CanEditOrderStatus(newUser(t, account{id: 3, role: user.Manager})))
}

// CanViewOrder holds iff the user is internal staff or owns the order.
func TestCanViewOrder_StaffOrOwner(t *testing.T) {
	users := []*user.User{
		newUser(t, account{id: 1, role: user.Dentist, confirmed: true}),
		newUser(t, account{id: 2, role: user.Dentist}),
		newUser(t, account{id: 3, role: user.Manager}),
		newUser(t, account{id: 4, role: user.CadTechnician}),
		newUser(t, account{id: 5, role: user.Dentist, superuser: true}),
	}
	orders := []*order.Order{
		newOrder(t, 100, 1),
		newOrder(t, 101, 2),
		newOrder(t, 102, 9),
	}

	for _, u := range users {
		for _, o := range orders {
			t.Run(fmt.Sprintf("user %s order %s", u.ID(), o.ID()), func(t *testing.T) {
				expected := policy.IsInternalStaff(u) || u.ID() == o.DentistID()

				assert.Equal(t, expected, policy.CanViewOrder(u, o))
				assert.Equal(t, expected, policy.CanEditOrder(u, o))
				assert.Equal(t, expected, policy.CanViewOrderOwnedBy(u, o.DentistID()))
			})
		}
	}

	assert.False(t, policy.CanViewOrder(nil, orders[0]))
	assert.False(t, policy.CanViewOrder(users[0], nil))
}

func TestCanRemoveAccount(t *testing.T) {
	manager := newUser(t, account{id: 1, role: user.Manager})
	otherManager := newUser(t, account{id: 2, role: user.Manager})
	dentist := newUser(t, account{id: 3, role: user.Dentist})

	t.Run("manager can remove someone else", func(t *testing.T) {
		assert.True(t, policy.CanRemoveAccount(manager, dentist))
		assert.True(t, policy.CanRemoveAccount(manager, otherManager))
	})

	t.Run("nobody can remove their own account", func(t *testing.T) {
		assert.False(t, policy.CanRemoveAccount(manager, manager))
		assert.False(t, policy.CanRemoveAccount(manager, newUser(t, account{id: 1, role: user.Manager})))
	})

	t.Run("non managers cannot remove accounts", func(t *testing.T) {
		assert.False(t, policy.CanRemoveAccount(dentist, manager))
		assert.False(t, policy.CanRemoveAccount(nil, dentist))
		assert.False(t, policy.CanRemoveAccount(manager, nil))
	})
}
