package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"itm/internal/domain/project"
	"itm/internal/domain/user"
	uservo "itm/internal/domain/user/valueobjects"
	"itm/internal/shared/authorization"
)

var (
	alice = authorization.Principal{Username: "alice"}
	bob   = authorization.Principal{Username: "bob"}
	root  = authorization.Principal{Username: "root", IsAdmin: true}
)

func testUser(t *testing.T, username string) *user.User {
	t.Helper()
	email, err := uservo.NewEmail(username + "@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(username, email, "hash", false, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func testProject(t *testing.T, name, admin string) *project.Project {
	t.Helper()
	p, err := project.ReconstructProject(name, admin, time.Now().UTC())
	require.NoError(t, err)
	return p
}

func projectRepoWith(p *project.Project) *mockProjectRepository {
	return &mockProjectRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*project.Project, error) {
			if p != nil && name == p.Name() {
				return p, nil
			}
			return nil, nil
		},
	}
}

func userRepoWith(t *testing.T, usernames ...string) *mockUserRepository {
	users := make(map[string]*user.User, len(usernames))
	for _, name := range usernames {
		users[name] = testUser(t, name)
	}
	return &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return users[username], nil
		},
		GetByUsernamesFunc: func(ctx context.Context, names []string) ([]*user.User, error) {
			var result []*user.User
			for _, n := range names {
				if u, ok := users[n]; ok {
					result = append(result, u)
				}
			}
			return result, nil
		},
	}
}

func principal(username string) authorization.Principal {
	return authorization.Principal{Username: username, IsAdmin: username == "root"}
}
