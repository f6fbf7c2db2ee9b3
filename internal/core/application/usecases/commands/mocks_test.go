package commands_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"proteseflow/internal/core/application/usecases/commands"
	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, identifier string) ([]*user.User, error) {
	args := m.Called(ctx, identifier)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) UsernameTaken(ctx context.Context, username string, exceptID kernel.ID) (bool, error) {
	args := m.Called(ctx, username, exceptID)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// MockUoW satisfies UserUoW, OrderUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RemovedFiles() []string {
	args := m.Called()
	files, _ := args.Get(0).([]string)
	return files
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
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

type member struct {
	id        kernel.ID
	role      user.Role
	confirmed bool
	superuser bool
	state     user.AccountState
	email     string
}

func newMember(t *testing.T, m member) *user.User {
	t.Helper()
	if m.state == user.UnknownState {
		m.state = user.Active
	}
	u, err := user.RestoreUser(user.Snapshot{
		ID:           m.id,
		Username:     fmt.Sprintf("%s%d", strings.ToLower(m.role.Label()), m.id),
		Email:        m.email,
		PasswordHash: fmt.Sprintf("hash-%d", m.id),
		Role:         m.role,
		Superuser:    m.superuser,
		Confirmed:    m.confirmed,
		State:        m.state,
		JoinedAt:     time.Now(),
		Version:      1,
	})
	require.NoError(t, err)
	return u
}

func manager(t *testing.T, id kernel.ID) *user.User {
	return newMember(t, member{id: id, role: user.Manager, confirmed: true})
}

func dentist(t *testing.T, id kernel.ID, confirmed bool) *user.User {
	return newMember(t, member{id: id, role: user.Dentist, confirmed: confirmed})
}

func cadTechnician(t *testing.T, id kernel.ID) *user.User {
	return newMember(t, member{id: id, role: user.CadTechnician, confirmed: true})
}

func details(t *testing.T) order.Details {
	t.Helper()
	teeth, err := order.ParseToothElements("11, 12, 21")
	require.NoError(t, err)
	d, err := order.NewDetails(order.Details{
		PatientName:   "Maria Silva",
		PatientSex:    order.Female,
		ServiceType:   "Coroa",
		ToothElements: teeth,
	})
	require.NoError(t, err)
	return d
}

func storedOrder(t *testing.T, id, dentistID kernel.ID, status order.Status, attachments ...*order.Attachment) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:          id,
		DentistID:   dentistID,
		Details:     details(t),
		Status:      status,
		Attachments: attachments,
		CreatedAt:   time.Now(),
		Version:     1,
	})
	require.NoError(t, err)
	return o
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
