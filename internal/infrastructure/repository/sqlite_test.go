package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/ticket"
	vo "itm/internal/domain/ticket/valueobjects"
	"itm/internal/domain/user"
	uservo "itm/internal/domain/user/valueobjects"
	"itm/internal/infrastructure/migration"
	"itm/internal/shared/db"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return errors.NewValidationError("mismatch")
	}
	return nil
}

type repos struct {
	db       *gorm.DB
	tx       *db.TransactionManager
	users    user.Repository
	clients  client.Repository
	projects project.Repository
	members  project.MembershipRepository
	tickets  ticket.Repository
}

func setupRepos(t *testing.T) *repos {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewDiscardLogger()
	return &repos{
		db:       gdb,
		tx:       db.NewTransactionManager(gdb),
		users:    NewUserRepository(gdb, log),
		clients:  NewClientRepository(gdb, log),
		projects: NewProjectRepository(gdb, log),
		members:  NewMembershipRepository(gdb, log),
		tickets:  NewTicketRepository(gdb, log),
	}
}

func (r *repos) createUser(t *testing.T, username, email string, isAdmin bool) *user.User {
	t.Helper()
	e, err := uservo.NewEmail(email)
	require.NoError(t, err)
	p, err := uservo.NewPassword("Passw0rdX")
	require.NoError(t, err)
	u, err := user.NewUser(username, e, p, isAdmin, plainHasher{})
	require.NoError(t, err)
	require.NoError(t, r.users.Create(context.Background(), u))
	return u
}

func (r *repos) createClient(t *testing.T, name string) *client.Client {
	t.Helper()
	e, err := uservo.NewEmail(name + "@clients.test")
	require.NoError(t, err)
	c, err := client.NewClient(name, e, "0612345678", "1 Main St")
	require.NoError(t, err)
	require.NoError(t, r.clients.Create(context.Background(), c))
	return c
}

func (r *repos) createProject(t *testing.T, name, admin string) *project.Project {
	t.Helper()
	p, err := project.NewProject(name, admin)
	require.NoError(t, err)
	require.NoError(t, r.projects.Create(context.Background(), p))
	require.NoError(t, r.members.Add(context.Background(), name, admin))
	return p
}

func (r *repos) createTicket(t *testing.T, projectName, clientID, title string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(projectName, clientID, title, "body")
	require.NoError(t, err)
	require.NoError(t, r.tickets.Create(context.Background(), tk))
	return tk
}

func TestUserRepository(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	r.createUser(t, "alice", "alice@example.com", true)

	got, err := r.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice@example.com", got.Email().String())
	assert.True(t, got.IsAdmin())
	assert.Equal(t, "h:Passw0rdX", got.PasswordHash())

	missing, err := r.users.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := r.users.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("duplicate username", func(t *testing.T) {
		e, _ := uservo.NewEmail("other@example.com")
		p, _ := uservo.NewPassword("Passw0rdX")
		dup, err := user.NewUser("alice", e, p, false, plainHasher{})
		require.NoError(t, err)
		err = r.users.Create(ctx, dup)
		assert.True(t, errors.IsDuplicateNameError(err))
	})

	t.Run("update email", func(t *testing.T) {
		e, _ := uservo.NewEmail("alice@new.example.com")
		require.NoError(t, got.ChangeEmail(e))
		require.NoError(t, r.users.Update(ctx, got))

		reloaded, err := r.users.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@new.example.com", reloaded.Email().String())
	})

	t.Run("delete", func(t *testing.T) {
		r.createUser(t, "bob", "bob@example.com", false)
		require.NoError(t, r.users.Delete(ctx, "bob"))
		gone, err := r.users.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Nil(t, gone)
		assert.True(t, errors.IsNotFoundError(r.users.Delete(ctx, "bob")))
	})
}

func TestClientRepository(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	acme := r.createClient(t, "acme")
	r.createClient(t, "globex")

	got, err := r.clients.GetByID(ctx, acme.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acme", got.Name())

	e, _ := uservo.NewEmail("ops@acme.test")
	require.NoError(t, got.Update("Acme Corp", e, "0699999999", "2 Side St"))
	require.NoError(t, r.clients.Update(ctx, got))

	byIDs, err := r.clients.GetByIDs(ctx, []string{acme.ID(), "missing"})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)
	assert.Equal(t, "Acme Corp", byIDs[0].Name())

	all, err := r.clients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, r.clients.Delete(ctx, acme.ID()))
	gone, err := r.clients.GetByID(ctx, acme.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestProjectAndMembershipRepositories(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	r.createUser(t, "alice", "alice@example.com", false)
	r.createUser(t, "bob", "bob@example.com", false)
	r.createProject(t, "infra", "alice")
	r.createProject(t, "web", "bob")

	t.Run("duplicate name", func(t *testing.T) {
		p, _ := project.NewProject("infra", "bob")
		assert.True(t, errors.IsDuplicateNameError(r.projects.Create(ctx, p)))
	})

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, r.members.Add(ctx, "infra", "bob"))
		require.NoError(t, r.members.Add(ctx, "infra", "bob"))
		members, err := r.members.ListMembers(ctx, "infra")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"alice", "bob"}, members)
	})

	t.Run("list by member and admin", func(t *testing.T) {
		mine, err := r.projects.ListByMember(ctx, "bob")
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		admin, err := r.projects.ListByAdmin(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, admin, 1)
		assert.Equal(t, "infra", admin[0].Name())
	})

	t.Run("rename follows memberships", func(t *testing.T) {
		err := r.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := r.projects.Rename(txCtx, "infra", "platform"); err != nil {
				return err
			}
			return r.members.RenameProject(txCtx, "infra", "platform")
		})
		require.NoError(t, err)

		ok, err := r.members.IsMember(ctx, "platform", "bob")
		require.NoError(t, err)
		assert.True(t, ok)
		exists, err := r.projects.ExistsByName(ctx, "infra")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("rename to taken name", func(t *testing.T) {
		err := r.projects.Rename(ctx, "platform", "web")
		assert.True(t, errors.IsDuplicateNameError(err))
	})

	t.Run("remove and delete by user", func(t *testing.T) {
		require.NoError(t, r.members.Remove(ctx, "platform", "bob"))
		ok, err := r.members.IsMember(ctx, "platform", "bob")
		require.NoError(t, err)
		assert.False(t, ok)

		n, err := r.members.DeleteByUser(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestTicketRepository(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	r.createUser(t, "alice", "alice@example.com", false)
	r.createUser(t, "bob", "bob@example.com", false)
	r.createProject(t, "infra", "alice")
	acme := r.createClient(t, "acme")
	globex := r.createClient(t, "globex")

	first := r.createTicket(t, "infra", acme.ID(), "disk full")
	second := r.createTicket(t, "infra", globex.ID(), "dns down")

	t.Run("claim unassigned once", func(t *testing.T) {
		require.NoError(t, r.tickets.ClaimUnassigned(ctx, first.ID(), "bob"))
		err := r.tickets.ClaimUnassigned(ctx, first.ID(), "alice")
		assert.ErrorIs(t, err, ticket.ErrAlreadyAssigned)

		got, err := r.tickets.GetByID(ctx, first.ID())
		require.NoError(t, err)
		require.NotNil(t, got.AssigneeUsername())
		assert.Equal(t, "bob", *got.AssigneeUsername())
		assert.Equal(t, vo.StatusInProgress, got.Status())
	})

	t.Run("claim missing ticket", func(t *testing.T) {
		err := r.tickets.ClaimUnassigned(ctx, "missing", "bob")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("update persists status", func(t *testing.T) {
		got, err := r.tickets.GetByID(ctx, second.ID())
		require.NoError(t, err)
		require.NoError(t, got.Resolve())
		require.NoError(t, r.tickets.Update(ctx, got))

		reloaded, err := r.tickets.GetByID(ctx, second.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusResolved, reloaded.Status())
	})

	t.Run("list by assignee", func(t *testing.T) {
		list, err := r.tickets.ListByAssignee(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID(), list[0].ID())
	})

	t.Run("clear assignee keeps tickets", func(t *testing.T) {
		n, err := r.tickets.ClearAssignee(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := r.tickets.GetByID(ctx, first.ID())
		require.NoError(t, err)
		assert.Nil(t, got.AssigneeUsername())
	})

	t.Run("delete by client", func(t *testing.T) {
		n, err := r.tickets.DeleteByClient(ctx, globex.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		list, err := r.tickets.ListByProject(ctx, "infra")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID(), list[0].ID())
	})

	t.Run("rename then delete by project", func(t *testing.T) {
		require.NoError(t, r.tickets.RenameProject(ctx, "infra", "platform"))
		n, err := r.tickets.DeleteByProject(ctx, "platform")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestTransactionRollback(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	r.createUser(t, "alice", "alice@example.com", false)

	err := r.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, _ := project.NewProject("infra", "alice")
		if err := r.projects.Create(txCtx, p); err != nil {
			return err
		}
		return errors.NewInternalError("boom")
	})
	require.Error(t, err)

	exists, err := r.projects.ExistsByName(ctx, "infra")
	require.NoError(t, err)
	assert.False(t, exists)
}
