package usecases

import (
	"context"

	"itm/internal/domain/client"
	"itm/internal/domain/ticket"
	"itm/internal/shared/logger"
)

// memoryClientRepository is a map-backed client.Repository.
type memoryClientRepository struct {
	clients map[string]*client.Client
	err     error
}

func newMemoryClientRepository(clients ...*client.Client) *memoryClientRepository {
	r := &memoryClientRepository{clients: make(map[string]*client.Client)}
	for _, c := range clients {
		r.clients[c.ID()] = c
	}
	return r
}

func (r *memoryClientRepository) Create(ctx context.Context, c *client.Client) error {
	if r.err != nil {
		return r.err
	}
	r.clients[c.ID()] = c
	return nil
}

func (r *memoryClientRepository) Update(ctx context.Context, c *client.Client) error {
	if r.err != nil {
		return r.err
	}
	r.clients[c.ID()] = c
	return nil
}

func (r *memoryClientRepository) Delete(ctx context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.clients, id)
	return nil
}

func (r *memoryClientRepository) GetByID(ctx context.Context, id string) (*client.Client, error) {
	return r.clients[id], nil
}

func (r *memoryClientRepository) GetByIDs(ctx context.Context, ids []string) ([]*client.Client, error) {
	var result []*client.Client
	for _, id := range ids {
		if c, ok := r.clients[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *memoryClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*client.Client, 0, len(r.clients))
	for _, c := range r.clients {
		result = append(result, c)
	}
	return result, nil
}

type mockTicketRepository struct {
	ticket.Repository
	DeleteByClientFunc func(ctx context.Context, clientID string) (int64, error)
}

func (m *mockTicketRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	if m.DeleteByClientFunc != nil {
		return m.DeleteByClientFunc(ctx, clientID)
	}
	return 0, nil
}

type mockTxManager struct {
	committed bool
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	m.committed = err == nil
	return err
}

func newTestLogger() logger.Interface {
	return logger.NewDiscardLogger()
}
