package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	vo "itm/internal/domain/ticket/valueobjects"
	"itm/internal/domain/user"
	uservo "itm/internal/domain/user/valueobjects"
	"itm/internal/shared/logger"
)

// memoryTicketRepository stores tickets by id and hands out copies.
// ClaimUnassigned is guarded by a mutex so concurrent claims behave like
// the conditional UPDATE.
type memoryTicketRepository struct {
	ticket.Repository

	mu      sync.Mutex
	tickets map[string]*ticket.Ticket
	updates int
}

func newMemoryTicketRepository(tickets ...*ticket.Ticket) *memoryTicketRepository {
	r := &memoryTicketRepository{tickets: make(map[string]*ticket.Ticket)}
	for _, t := range tickets {
		r.tickets[t.ID()] = t
	}
	return r
}

func (r *memoryTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[t.ID()] = t
	return nil
}

func (r *memoryTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[t.ID()] = t
	r.updates++
	return nil
}

func (r *memoryTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memoryTicketRepository) ListByAssignee(ctx context.Context, username string) ([]*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*ticket.Ticket
	for _, t := range r.tickets {
		if a := t.AssigneeUsername(); a != nil && *a == username {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *memoryTicketRepository) ClaimUnassigned(ctx context.Context, id, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[id]
	if !ok {
		return nil
	}
	return t.AssignSelf(username)
}

// staleReadTicketRepository serves an outdated copy on the first read of
// stale.ID(), as if another request claimed the row right after it.
type staleReadTicketRepository struct {
	*memoryTicketRepository
	stale  *ticket.Ticket
	served bool
}

func (r *staleReadTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if !r.served && id == r.stale.ID() {
		r.served = true
		return r.stale, nil
	}
	return r.memoryTicketRepository.GetByID(ctx, id)
}

// memberSet implements project.MembershipRepository.IsMember over
// "project/user" keys.
type memberSet struct {
	project.MembershipRepository
	keys map[string]bool
}

func newMemberSet(pairs ...string) *memberSet {
	m := &memberSet{keys: make(map[string]bool)}
	for _, p := range pairs {
		m.keys[p] = true
	}
	return m
}

func (m *memberSet) IsMember(ctx context.Context, projectName, username string) (bool, error) {
	return m.keys[projectName+"/"+username], nil
}

type mockProjectRepository struct {
	project.Repository
	projects map[string]*project.Project
}

func (m *mockProjectRepository) GetByName(ctx context.Context, name string) (*project.Project, error) {
	return m.projects[name], nil
}

type mockClientRepository struct {
	client.Repository
	clients map[string]*client.Client
}

func (m *mockClientRepository) GetByID(ctx context.Context, id string) (*client.Client, error) {
	return m.clients[id], nil
}

func (m *mockClientRepository) GetByIDs(ctx context.Context, ids []string) ([]*client.Client, error) {
	var result []*client.Client
	for _, id := range ids {
		if c, ok := m.clients[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

type mockUserRepository struct {
	user.Repository
	users map[string]*user.User
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return m.users[username], nil
}

type mockTxManager struct {
	mu        sync.Mutex
	committed bool
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	m.mu.Lock()
	m.committed = err == nil
	m.mu.Unlock()
	return err
}

func newTestLogger() logger.Interface {
	return logger.NewDiscardLogger()
}

// fixture is the infra project with alice as admin, bob as member, carol
// as an outsider, and a single client.
type fixture struct {
	projects *mockProjectRepository
	members  *memberSet
	clients  *mockClientRepository
	users    *mockUserRepository
	tickets  *memoryTicketRepository
	acme     *client.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	infra, err := project.ReconstructProject("infra", "alice", time.Now())
	require.NoError(t, err)

	email, err := uservo.NewEmail("ops@acme.io")
	require.NoError(t, err)
	acme, err := client.NewClient("Acme", email, "", "")
	require.NoError(t, err)

	users := make(map[string]*user.User)
	for _, name := range []string{"alice", "bob", "carol"} {
		e, err := uservo.NewEmail(name + "@example.com")
		require.NoError(t, err)
		u, err := user.ReconstructUser(name, e, "hash", false, time.Now(), time.Now())
		require.NoError(t, err)
		users[name] = u
	}

	return &fixture{
		projects: &mockProjectRepository{projects: map[string]*project.Project{"infra": infra}},
		members:  newMemberSet("infra/alice", "infra/bob"),
		clients:  &mockClientRepository{clients: map[string]*client.Client{acme.ID(): acme}},
		users:    &mockUserRepository{users: users},
		tickets:  newMemoryTicketRepository(),
		acme:     acme,
	}
}

func (f *fixture) addTicket(t *testing.T, status vo.TicketStatus, assignee *string) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket("t-"+string(rune('a'+len(f.tickets.tickets))), "Disk full", "**sda** at 99%",
		status, assignee, "infra", f.acme.ID(), now, now)
	require.NoError(t, err)
	f.tickets.tickets[tk.ID()] = tk
	return tk
}
