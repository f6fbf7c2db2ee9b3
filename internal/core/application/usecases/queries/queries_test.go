package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"proteseflow/internal/core/application/usecases/queries"
	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func actor(t *testing.T, id kernel.ID, role user.Role) *user.User {
	t.Helper()
	u, err := user.RestoreUser(user.Snapshot{
		ID:           id,
		Username:     fmt.Sprintf("user%d", id),
		PasswordHash: "hash",
		Role:         role,
		Confirmed:    true,
		State:        user.Active,
		JoinedAt:     time.Now(),
		Version:      1,
	})
	require.NoError(t, err)
	return u
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) Save(ctx context.Context, upload ports.FileUpload) (order.File, error) {
	args := m.Called(ctx, upload)
	return args.Get(0).(order.File), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockFileStorage) DownloadURL(ctx context.Context, file order.File, ttl time.Duration) (string, error) {
	args := m.Called(ctx, file, ttl)
	return args.String(0), args.Error(1)
}

func TestParseOrderSort(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"", "-id"},
		{"-id", "-id"},
		{"id", "id"},
		{"paciente", "paciente"},
		{"-paciente", "-paciente"},
		{" PRAZO ", "prazo"},
		{"-status", "-status"},
		{"xyz", "-id"},
		{"-", "-id"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expected, queries.ParseOrderSort(tc.raw).String())
		})
	}

	assert.Equal(t, "-id", queries.DefaultOrderSort.String())
}

func TestParseUserListView(t *testing.T) {
	for _, name := range []string{"active", "trash", "approvals", "dentists"} {
		view, err := queries.ParseUserListView(name)
		require.NoError(t, err)
		assert.Equal(t, name, view.String())
	}

	view, err := queries.ParseUserListView("")
	require.NoError(t, err)
	assert.Equal(t, queries.ActiveUsers, view)

	_, err = queries.ParseUserListView("everyone")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQueryConstructors_RequireActor(t *testing.T) {
	_, err := queries.NewListOrdersQuery(nil, "", 0, queries.DefaultOrderSort)
	require.ErrorIs(t, err, queries.ErrActorIsRequired)

	_, err = queries.NewGetDashboardQuery(nil)
	require.ErrorIs(t, err, queries.ErrActorIsRequired)

	_, err = queries.NewGetOrderQuery(nil, 1)
	require.ErrorIs(t, err, queries.ErrActorIsRequired)

	_, err = queries.NewListUsersQuery(nil, queries.ActiveUsers)
	require.ErrorIs(t, err, queries.ErrActorIsRequired)

	_, err = queries.NewGetUserQuery(nil, 1)
	require.ErrorIs(t, err, queries.ErrActorIsRequired)

	_, err = queries.NewGetAttachmentURLQuery(nil, 1, 1)
	require.ErrorIs(t, err, queries.ErrActorIsRequired)
}

func TestQueryConstructors_ValidateIdentifiers(t *testing.T) {
	manager := actor(t, 1, user.Manager)

	_, err := queries.NewGetOrderQuery(manager, 0)
	assert.Contains(t, errs.FieldErrors(err), "id")

	_, err = queries.NewGetUserQuery(manager, -3)
	assert.Contains(t, errs.FieldErrors(err), "id")

	_, err = queries.NewListUsersQuery(manager, queries.UserListView(42))
	assert.Contains(t, errs.FieldErrors(err), "view")
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	require.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetDashboardQuery{}.Validate(), queries.ErrGetDashboardQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	require.ErrorIs(t, queries.ListUsersQuery{}.Validate(), queries.ErrListUsersQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetUserQuery{}.Validate(), queries.ErrGetUserQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetAttachmentURLQuery{}.Validate(), queries.ErrGetAttachmentURLQueryIsNotConstructed)
}

func TestNewListOrdersQuery_TrimsSearch(t *testing.T) {
	query, err := queries.NewListOrdersQuery(actor(t, 1, user.Manager), "  maria ", 4, queries.ParseOrderSort("prazo"))
	require.NoError(t, err)
	assert.Equal(t, "maria", query.Search())
	assert.Equal(t, kernel.ID(4), query.Dentist())
	assert.Equal(t, "prazo", query.Sort().String())
}
