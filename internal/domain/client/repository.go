package client

import "context"

// Repository persists clients. GetByID returns (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Client, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Client, error)
	List(ctx context.Context) ([]*Client, error)
}
