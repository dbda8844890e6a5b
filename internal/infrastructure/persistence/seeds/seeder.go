// Package seeds loads bootstrap data from a YAML file. It is the only way
// to create a global admin, since registration never grants the flag.
package seeds

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"itm/internal/domain/client"
	"itm/internal/domain/project"
	"itm/internal/domain/user"
	vo "itm/internal/domain/user/valueobjects"
	"itm/internal/shared/logger"
)

type UserSeed struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	IsAdmin  bool   `yaml:"is_admin"`
}

type ClientSeed struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
}

type ProjectSeed struct {
	Name    string   `yaml:"name"`
	Admin   string   `yaml:"admin"`
	Members []string `yaml:"members"`
}

type File struct {
	Users    []UserSeed    `yaml:"users"`
	Clients  []ClientSeed  `yaml:"clients"`
	Projects []ProjectSeed `yaml:"projects"`
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

type transactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Seeder writes a File through the repositories. Existing users and
// projects are left untouched, so running it twice is harmless.
type Seeder struct {
	users     user.Repository
	clients   client.Repository
	projects  project.Repository
	members   project.MembershipRepository
	hasher    user.PasswordHasher
	txManager transactionRunner
	logger    logger.Interface
}

func NewSeeder(
	users user.Repository,
	clients client.Repository,
	projects project.Repository,
	members project.MembershipRepository,
	hasher user.PasswordHasher,
	txManager transactionRunner,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		users:     users,
		clients:   clients,
		projects:  projects,
		members:   members,
		hasher:    hasher,
		txManager: txManager,
		logger:    logger,
	}
}

// Result counts the rows actually created.
type Result struct {
	Users    int
	Clients  int
	Projects int
	Members  int
}

func (s *Seeder) Apply(ctx context.Context, f *File) (*Result, error) {
	res := &Result{}
	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, u := range f.Users {
			created, err := s.seedUser(txCtx, u)
			if err != nil {
				return fmt.Errorf("user %q: %w", u.Username, err)
			}
			if created {
				res.Users++
			}
		}

		existing, err := s.clients.List(txCtx)
		if err != nil {
			return err
		}
		known := make(map[string]bool, len(existing))
		for _, c := range existing {
			known[c.Name()] = true
		}
		for _, c := range f.Clients {
			if known[c.Name] {
				continue
			}
			email, err := vo.NewEmail(c.Email)
			if err != nil {
				return fmt.Errorf("client %q: %w", c.Name, err)
			}
			entity, err := client.NewClient(c.Name, email, c.Phone, c.Address)
			if err != nil {
				return fmt.Errorf("client %q: %w", c.Name, err)
			}
			if err := s.clients.Create(txCtx, entity); err != nil {
				return err
			}
			known[c.Name] = true
			res.Clients++
		}

		for _, p := range f.Projects {
			added, created, err := s.seedProject(txCtx, p)
			if err != nil {
				return fmt.Errorf("project %q: %w", p.Name, err)
			}
			if created {
				res.Projects++
			}
			res.Members += added
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("seeding failed", "error", err)
		return nil, err
	}

	s.logger.Infow("seeding completed",
		"users", res.Users,
		"clients", res.Clients,
		"projects", res.Projects,
		"memberships", res.Members)
	return res, nil
}

func (s *Seeder) seedUser(ctx context.Context, u UserSeed) (bool, error) {
	existing, err := s.users.GetByUsername(ctx, u.Username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	email, err := vo.NewEmail(u.Email)
	if err != nil {
		return false, err
	}
	password, err := vo.NewPassword(u.Password)
	if err != nil {
		return false, err
	}
	entity, err := user.NewUser(u.Username, email, password, u.IsAdmin, s.hasher)
	if err != nil {
		return false, err
	}
	return true, s.users.Create(ctx, entity)
}

// seedProject creates the project when missing and adds the admin plus
// the listed members. Membership adds are idempotent.
func (s *Seeder) seedProject(ctx context.Context, p ProjectSeed) (int, bool, error) {
	created := false
	entity, err := s.projects.GetByName(ctx, p.Name)
	if err != nil {
		return 0, false, err
	}
	if entity == nil {
		entity, err = project.NewProject(p.Name, p.Admin)
		if err != nil {
			return 0, false, err
		}
		if err := s.projects.Create(ctx, entity); err != nil {
			return 0, false, err
		}
		created = true
	}

	added := 0
	for _, username := range append([]string{entity.AdminUsername()}, p.Members...) {
		u, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			return added, created, err
		}
		if u == nil {
			return added, created, fmt.Errorf("unknown member %q", username)
		}
		isMember, err := s.members.IsMember(ctx, entity.Name(), username)
		if err != nil {
			return added, created, err
		}
		if isMember {
			continue
		}
		if err := s.members.Add(ctx, entity.Name(), username); err != nil {
			return added, created, err
		}
		added++
	}
	return added, created, nil
}
