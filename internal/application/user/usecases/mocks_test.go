package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/domain/user"
	vo "itm/internal/domain/user/valueobjects"
	"itm/internal/shared/logger"
)

// fakeHasher stores "hashed:" + password.
type fakeHasher struct {
	err error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(username string, isAdmin bool) (string, int64, error)
}

func (m *mockTokenIssuer) Generate(username string, isAdmin bool) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(username, isAdmin)
	}
	return "token-" + username, 3600, nil
}

// memoryUserRepository is a map-backed user.Repository.
type memoryUserRepository struct {
	users map[string]*user.User

	CreateErr error
	UpdateErr error
	GetErr    error
	deleted   []string
}

func newMemoryUserRepository(users ...*user.User) *memoryUserRepository {
	r := &memoryUserRepository{users: make(map[string]*user.User)}
	for _, u := range users {
		r.users[u.Username()] = u
	}
	return r
}

func (r *memoryUserRepository) Create(ctx context.Context, u *user.User) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.users[u.Username()] = u
	return nil
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.users[username], nil
}

func (r *memoryUserRepository) GetByUsernames(ctx context.Context, usernames []string) ([]*user.User, error) {
	var result []*user.User
	for _, name := range usernames {
		if u, ok := r.users[name]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}

func (r *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email().String() == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, u *user.User) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.users[u.Username()] = u
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, username string) error {
	delete(r.users, username)
	r.deleted = append(r.deleted, username)
	return nil
}

type mockProjectRepository struct {
	project.Repository
	ListByAdminFunc func(ctx context.Context, username string) ([]*project.Project, error)
}

func (m *mockProjectRepository) ListByAdmin(ctx context.Context, username string) ([]*project.Project, error) {
	if m.ListByAdminFunc != nil {
		return m.ListByAdminFunc(ctx, username)
	}
	return nil, nil
}

type mockMembershipRepository struct {
	project.MembershipRepository
	DeleteByUserFunc func(ctx context.Context, username string) (int64, error)
}

func (m *mockMembershipRepository) DeleteByUser(ctx context.Context, username string) (int64, error) {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, username)
	}
	return 0, nil
}

type mockTicketRepository struct {
	ticket.Repository
	ClearAssigneeFunc func(ctx context.Context, username string) (int64, error)
}

func (m *mockTicketRepository) ClearAssignee(ctx context.Context, username string) (int64, error) {
	if m.ClearAssigneeFunc != nil {
		return m.ClearAssigneeFunc(ctx, username)
	}
	return 0, nil
}

type mockProjectRemover struct {
	removed []string
	err     error
}

func (m *mockProjectRemover) Remove(ctx context.Context, name string) error {
	if m.err != nil {
		return m.err
	}
	m.removed = append(m.removed, name)
	return nil
}

type mockTxManager struct {
	committed bool
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	m.committed = err == nil
	return err
}

func newTestLogger() logger.Interface {
	return logger.NewDiscardLogger()
}

func testUser(t *testing.T, username, password string, isAdmin bool) *user.User {
	t.Helper()
	email, err := vo.NewEmail(username + "@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(username, email, "hashed:"+password, isAdmin, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}
