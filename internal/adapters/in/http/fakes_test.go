package http_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	apihttp "proteseflow/internal/adapters/in/http"
	"proteseflow/internal/core/application/usecases/commands"
	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/pkg/errs"
	"proteseflow/internal/pkg/password"
	"proteseflow/internal/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUsers keeps accounts in memory for handler tests.
type memoryUsers struct {
	mu   sync.Mutex
	byID map[kernel.ID]*user.User
	next kernel.ID
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[kernel.ID]*user.User)}
}

func (r *memoryUsers) Add(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	if err := u.Identify(r.next); err != nil {
		return err
	}
	r.byID[u.ID()] = u
	return nil
}

func (r *memoryUsers) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[u.ID()] = u
	return nil
}

func (r *memoryUsers) Get(_ context.Context, id kernel.ID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	return u, nil
}

func (r *memoryUsers) Delete(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, u.ID())
	return nil
}

func (r *memoryUsers) FindByLogin(_ context.Context, identifier string) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found []*user.User
	for _, u := range r.byID {
		if u.MatchesUsername(identifier) || u.MatchesEmail(identifier) {
			found = append(found, u)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID() < found[j].ID() })
	return found, nil
}

func (r *memoryUsers) UsernameTaken(_ context.Context, username string, exceptID kernel.ID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.byID {
		if id != exceptID && strings.EqualFold(u.Username(), username) {
			return true, nil
		}
	}
	return false, nil
}

// put stores an account as it would be loaded from the database.
func (r *memoryUsers) put(t *testing.T, s user.Snapshot) *user.User {
	t.Helper()
	if s.JoinedAt.IsZero() {
		s.JoinedAt = time.Now()
	}
	if s.Version == 0 {
		s.Version = 1
	}
	u, err := user.RestoreUser(s)
	require.NoError(t, err)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[u.ID()] = u
	if u.ID() > r.next {
		r.next = u.ID()
	}
	return u
}

type memoryUoW struct {
	users *memoryUsers
}

func (memoryUoW) Begin(context.Context) error    { return nil }
func (memoryUoW) Commit(context.Context) error   { return nil }
func (memoryUoW) Rollback(context.Context) error { return nil }

func (u memoryUoW) UserRepository() ports.UserRepository { return u.users }

type memoryUoWFactory struct {
	users *memoryUsers
}

func (f memoryUoWFactory) Create() commands.UserUoW { return memoryUoW{users: f.users} }

type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func (r *memoryRevocations) Revoke(_ context.Context, id string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[id] = expiresAt
	return nil
}

func (r *memoryRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[id]
	return ok, nil
}

type testServer struct {
	echo   *echo.Echo
	users  *memoryUsers
	tokens *token.Manager
}

// newTestServer wires the account handlers over in-memory storage. Order and user
// management handlers need a database and are covered by the query integration tests.
func newTestServer(t *testing.T) testServer {
	t.Helper()

	users := newMemoryUsers()
	factory := memoryUoWFactory{users: users}
	hasher := password.NewHasher(bcrypt.MinCost)

	tokens, err := token.NewManager("test-secret", "proteseflow-test", time.Hour)
	require.NoError(t, err)
	revoked := &memoryRevocations{revoked: make(map[string]time.Time)}

	log := zerolog.Nop()
	server := apihttp.NewServer(
		apihttp.Handlers{
			RegisterDentist: commands.NewRegisterDentistCommandHandler(factory, hasher),
			Authenticate:    commands.NewAuthenticateCommandHandler(factory, hasher),
			UpdateProfile:   commands.NewUpdateProfileCommandHandler(factory),
			ChangePassword:  commands.NewChangePasswordCommandHandler(factory, hasher),
		},
		apihttp.NewAuthenticator(tokens, revoked, users, log),
		tokens,
		revoked,
		log,
	)

	doc, err := apihttp.LoadOpenAPI(context.Background())
	require.NoError(t, err)
	validator, err := apihttp.NewRequestValidator(doc)
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = apihttp.NewErrorHandler(log)
	e.Use(validator)
	server.RegisterRoutes(e)

	return testServer{echo: e, users: users, tokens: tokens}
}
