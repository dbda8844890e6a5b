package user

import "context"

// Repository defines the interface for user data operations. Lookups return
// (nil, nil) when the user does not exist.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByUsernames(ctx context.Context, usernames []string) ([]*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, username string) error
}
