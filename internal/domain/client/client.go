// Package client models the contact records tickets are raised against.
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	uservo "itm/internal/domain/user/valueobjects"
)

type Client struct {
	id        string
	name      string
	email     *uservo.Email
	phone     string
	address   string
	createdAt time.Time
	updatedAt time.Time
}

// NewClient creates a client with a fresh UUID. Phone format is checked at
// the transport boundary.
func NewClient(name string, email *uservo.Email, phone, address string) (*Client, error) {
	c := &Client{id: uuid.NewString()}
	if err := c.apply(name, email, phone, address); err != nil {
		return nil, err
	}
	c.createdAt = c.updatedAt
	return c, nil
}

func ReconstructClient(id, name string, email *uservo.Email, phone, address string, createdAt, updatedAt time.Time) (*Client, error) {
	if id == "" {
		return nil, fmt.Errorf("client ID is required")
	}
	return &Client{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// Update overwrites every contact field.
func (c *Client) Update(name string, email *uservo.Email, phone, address string) error {
	return c.apply(name, email, phone, address)
}

func (c *Client) apply(name string, email *uservo.Email, phone, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("client name is required")
	}
	if email == nil {
		return fmt.Errorf("client email is required")
	}
	c.name = name
	c.email = email
	c.phone = strings.TrimSpace(phone)
	c.address = strings.TrimSpace(address)
	c.updatedAt = time.Now().UTC()
	return nil
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) Email() *uservo.Email {
	return c.email
}

func (c *Client) Phone() string {
	return c.phone
}

func (c *Client) Address() string {
	return c.address
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}
