package usecases

import "context"

// TokenIssuer mints the bearer token carrying the principal.
type TokenIssuer interface {
	Generate(username string, isAdmin bool) (token string, expiresIn int64, err error)
}

// ProjectRemover deletes a project with its tickets and memberships inside
// the caller's transaction.
type ProjectRemover interface {
	Remove(ctx context.Context, name string) error
}
