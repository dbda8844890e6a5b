// Package common holds pieces shared by every use case package.
package common

import "context"

// TransactionManager runs fn inside one store transaction. Repositories
// called with the ctx passed to fn join that transaction; any error rolls
// everything back.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
