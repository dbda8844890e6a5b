package project

import "context"

// Repository persists projects. GetByName returns (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, project *Project) error
	GetByName(ctx context.Context, name string) (*Project, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListByMember(ctx context.Context, username string) ([]*Project, error)
	ListByAdmin(ctx context.Context, username string) ([]*Project, error)
	Rename(ctx context.Context, oldName, newName string) error
	Delete(ctx context.Context, name string) error
}

// MembershipRepository stores the users x projects relation as a set.
type MembershipRepository interface {
	// Add is a no-op when the membership already exists.
	Add(ctx context.Context, projectName, username string) error
	Remove(ctx context.Context, projectName, username string) error
	IsMember(ctx context.Context, projectName, username string) (bool, error)
	ListMembers(ctx context.Context, projectName string) ([]string, error)
	DeleteByProject(ctx context.Context, projectName string) (int64, error)
	DeleteByUser(ctx context.Context, username string) (int64, error)
	RenameProject(ctx context.Context, oldName, newName string) error
}
