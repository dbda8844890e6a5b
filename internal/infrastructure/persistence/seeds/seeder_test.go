package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"itm/internal/infrastructure/migration"
	"itm/internal/infrastructure/repository"
	"itm/internal/shared/db"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

const sample = `
users:
  - username: root
    email: root@example.com
    password: Adm1nPassword
    is_admin: true
  - username: alice
    email: alice@example.com
    password: Alic3Password
clients:
  - name: acme
    email: ops@acme.test
    phone: "0612345678"
    address: 1 Main St
projects:
  - name: infra
    admin: alice
    members: [root]
`

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return errors.NewValidationError("mismatch")
	}
	return nil
}

func newSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewDiscardLogger()
	s := NewSeeder(
		repository.NewUserRepository(gdb, log),
		repository.NewClientRepository(gdb, log),
		repository.NewProjectRepository(gdb, log),
		repository.NewMembershipRepository(gdb, log),
		plainHasher{},
		db.NewTransactionManager(gdb),
		log,
	)
	return s, gdb
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, f.Users, 2)
	assert.True(t, f.Users[0].IsAdmin)
	assert.False(t, f.Users[1].IsAdmin)
	assert.Equal(t, []string{"root"}, f.Projects[0].Members)

	_, err = Parse([]byte("users:\n  - username: x\n    admin: true\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestSeeder_ApplyIsIdempotent(t *testing.T) {
	s, _ := newSeeder(t)
	ctx := context.Background()
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	res, err := s.Apply(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, &Result{Users: 2, Clients: 1, Projects: 1, Members: 2}, res)

	root, err := s.users.GetByUsername(ctx, "root")
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.True(t, root.IsAdmin())

	members, err := s.members.ListMembers(ctx, "infra")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "root"}, members)

	again, err := s.Apply(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, &Result{}, again)
}

func TestSeeder_UnknownMemberRollsBack(t *testing.T) {
	s, _ := newSeeder(t)
	ctx := context.Background()
	f := &File{
		Users:    []UserSeed{{Username: "alice", Email: "alice@example.com", Password: "Alic3Password"}},
		Projects: []ProjectSeed{{Name: "infra", Admin: "alice", Members: []string{"ghost"}}},
	}

	_, err := s.Apply(ctx, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")

	u, err := s.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, u)
}
