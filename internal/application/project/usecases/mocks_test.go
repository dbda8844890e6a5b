package usecases

import (
	"context"

	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	"itm/internal/domain/user"
	"itm/internal/shared/logger"
)

type mockProjectRepository struct {
	CreateFunc       func(ctx context.Context, p *project.Project) error
	GetByNameFunc    func(ctx context.Context, name string) (*project.Project, error)
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
	ListByMemberFunc func(ctx context.Context, username string) ([]*project.Project, error)
	ListByAdminFunc  func(ctx context.Context, username string) ([]*project.Project, error)
	RenameFunc       func(ctx context.Context, oldName, newName string) error
	DeleteFunc       func(ctx context.Context, name string) error
}

func (m *mockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) GetByName(ctx context.Context, name string) (*project.Project, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockProjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

func (m *mockProjectRepository) ListByMember(ctx context.Context, username string) ([]*project.Project, error) {
	if m.ListByMemberFunc != nil {
		return m.ListByMemberFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByAdmin(ctx context.Context, username string) ([]*project.Project, error) {
	if m.ListByAdminFunc != nil {
		return m.ListByAdminFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockProjectRepository) Rename(ctx context.Context, oldName, newName string) error {
	if m.RenameFunc != nil {
		return m.RenameFunc(ctx, oldName, newName)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, name string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, name)
	}
	return nil
}

// mockMembershipRepository keeps a real set so invariant checks see the
// effect of Add and Remove. Func fields override the set behaviour.
type mockMembershipRepository struct {
	members map[string]map[string]bool

	AddFunc             func(ctx context.Context, projectName, username string) error
	RemoveFunc          func(ctx context.Context, projectName, username string) error
	IsMemberFunc        func(ctx context.Context, projectName, username string) (bool, error)
	ListMembersFunc     func(ctx context.Context, projectName string) ([]string, error)
	DeleteByProjectFunc func(ctx context.Context, projectName string) (int64, error)
	DeleteByUserFunc    func(ctx context.Context, username string) (int64, error)
	RenameProjectFunc   func(ctx context.Context, oldName, newName string) error
}

func newMockMembershipRepository(pairs ...[2]string) *mockMembershipRepository {
	m := &mockMembershipRepository{members: make(map[string]map[string]bool)}
	for _, pair := range pairs {
		m.set(pair[0], pair[1], true)
	}
	return m
}

func (m *mockMembershipRepository) set(projectName, username string, on bool) {
	if m.members == nil {
		m.members = make(map[string]map[string]bool)
	}
	if m.members[projectName] == nil {
		m.members[projectName] = make(map[string]bool)
	}
	if on {
		m.members[projectName][username] = true
	} else {
		delete(m.members[projectName], username)
	}
}

func (m *mockMembershipRepository) Add(ctx context.Context, projectName, username string) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, projectName, username)
	}
	m.set(projectName, username, true)
	return nil
}

func (m *mockMembershipRepository) Remove(ctx context.Context, projectName, username string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, projectName, username)
	}
	m.set(projectName, username, false)
	return nil
}

func (m *mockMembershipRepository) IsMember(ctx context.Context, projectName, username string) (bool, error) {
	if m.IsMemberFunc != nil {
		return m.IsMemberFunc(ctx, projectName, username)
	}
	return m.members[projectName][username], nil
}

func (m *mockMembershipRepository) ListMembers(ctx context.Context, projectName string) ([]string, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, projectName)
	}
	var names []string
	for name := range m.members[projectName] {
		names = append(names, name)
	}
	return names, nil
}

func (m *mockMembershipRepository) DeleteByProject(ctx context.Context, projectName string) (int64, error) {
	if m.DeleteByProjectFunc != nil {
		return m.DeleteByProjectFunc(ctx, projectName)
	}
	n := int64(len(m.members[projectName]))
	delete(m.members, projectName)
	return n, nil
}

func (m *mockMembershipRepository) DeleteByUser(ctx context.Context, username string) (int64, error) {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, username)
	}
	var n int64
	for _, set := range m.members {
		if set[username] {
			delete(set, username)
			n++
		}
	}
	return n, nil
}

func (m *mockMembershipRepository) RenameProject(ctx context.Context, oldName, newName string) error {
	if m.RenameProjectFunc != nil {
		return m.RenameProjectFunc(ctx, oldName, newName)
	}
	m.members[newName] = m.members[oldName]
	delete(m.members, oldName)
	return nil
}

type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, u *user.User) error
	GetByUsernameFunc  func(ctx context.Context, username string) (*user.User, error)
	GetByUsernamesFunc func(ctx context.Context, usernames []string) ([]*user.User, error)
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	UpdateFunc         func(ctx context.Context, u *user.User) error
	DeleteFunc         func(ctx context.Context, username string) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsernames(ctx context.Context, usernames []string) ([]*user.User, error) {
	if m.GetByUsernamesFunc != nil {
		return m.GetByUsernamesFunc(ctx, usernames)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, username string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, username)
	}
	return nil
}

type mockTicketRepository struct {
	CreateFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc         func(ctx context.Context, id string) (*ticket.Ticket, error)
	ListByProjectFunc   func(ctx context.Context, projectName string) ([]*ticket.Ticket, error)
	ListByAssigneeFunc  func(ctx context.Context, username string) ([]*ticket.Ticket, error)
	ClaimUnassignedFunc func(ctx context.Context, id, username string) error
	ClearAssigneeFunc   func(ctx context.Context, username string) (int64, error)
	DeleteByProjectFunc func(ctx context.Context, projectName string) (int64, error)
	DeleteByClientFunc  func(ctx context.Context, clientID string) (int64, error)
	RenameProjectFunc   func(ctx context.Context, oldName, newName string) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByProject(ctx context.Context, projectName string) ([]*ticket.Ticket, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectName)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByAssignee(ctx context.Context, username string) ([]*ticket.Ticket, error) {
	if m.ListByAssigneeFunc != nil {
		return m.ListByAssigneeFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockTicketRepository) ClaimUnassigned(ctx context.Context, id, username string) error {
	if m.ClaimUnassignedFunc != nil {
		return m.ClaimUnassignedFunc(ctx, id, username)
	}
	return nil
}

func (m *mockTicketRepository) ClearAssignee(ctx context.Context, username string) (int64, error) {
	if m.ClearAssigneeFunc != nil {
		return m.ClearAssigneeFunc(ctx, username)
	}
	return 0, nil
}

func (m *mockTicketRepository) DeleteByProject(ctx context.Context, projectName string) (int64, error) {
	if m.DeleteByProjectFunc != nil {
		return m.DeleteByProjectFunc(ctx, projectName)
	}
	return 0, nil
}

func (m *mockTicketRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	if m.DeleteByClientFunc != nil {
		return m.DeleteByClientFunc(ctx, clientID)
	}
	return 0, nil
}

func (m *mockTicketRepository) RenameProject(ctx context.Context, oldName, newName string) error {
	if m.RenameProjectFunc != nil {
		return m.RenameProjectFunc(ctx, oldName, newName)
	}
	return nil
}

type mockClientRepository struct {
	GetByIDsFunc func(ctx context.Context, ids []string) ([]*client.Client, error)
}

func (m *mockClientRepository) Create(ctx context.Context, c *client.Client) error { return nil }
func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error { return nil }
func (m *mockClientRepository) Delete(ctx context.Context, id string) error        { return nil }
func (m *mockClientRepository) GetByID(ctx context.Context, id string) (*client.Client, error) {
	return nil, nil
}
func (m *mockClientRepository) List(ctx context.Context) ([]*client.Client, error) { return nil, nil }

func (m *mockClientRepository) GetByIDs(ctx context.Context, ids []string) ([]*client.Client, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

// mockTxManager runs fn directly; committed reports whether fn succeeded.
type mockTxManager struct {
	calls     int
	committed bool
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	err := fn(ctx)
	m.committed = err == nil
	return err
}

func newTestLogger() logger.Interface {
	return logger.NewDiscardLogger()
}
