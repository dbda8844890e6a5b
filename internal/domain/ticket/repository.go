package ticket

import (
	"context"
)

// Repository persists tickets. Lookups return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id string) (*Ticket, error)
	ListByProject(ctx context.Context, projectName string) ([]*Ticket, error)
	ListByAssignee(ctx context.Context, username string) ([]*Ticket, error)

	// ClaimUnassigned sets the assignee and In progress only while the
	// ticket has no assignee. It returns ErrAlreadyAssigned when the
	// condition no longer holds.
	ClaimUnassigned(ctx context.Context, id, username string) error


	ClearAssignee(ctx context.Context, username string) (int64, error)
	DeleteByProject(ctx context.Context, projectName string) (int64, error)
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
	RenameProject(ctx context.Context, oldName, newName string) error
}
