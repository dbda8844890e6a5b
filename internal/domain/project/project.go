// Package project models projects and their membership. A project has
// exactly one admin, its creator, who is always a member.
package project

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

const maxNameLength = 100

type Project struct {
	name          string
	adminUsername string
	createdAt     time.Time
}

// NewProject creates a project administered by its creator.
func NewProject(name, creator string) (*Project, error) {
	normalized, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	if creator == "" {
		return nil, fmt.Errorf("project admin is required")
	}
	return &Project{
		name:          normalized,
		adminUsername: creator,
		createdAt:     time.Now().UTC(),
	}, nil
}

func ReconstructProject(name, adminUsername string, createdAt time.Time) (*Project, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if adminUsername == "" {
		return nil, fmt.Errorf("project admin is required")
	}
	return &Project{
		name:          name,
		adminUsername: adminUsername,
		createdAt:     createdAt,
	}, nil
}

// LookupKey maps a name taken from a request onto the stored key. Unlike
// NormalizeName it never fails; an invalid name simply matches nothing.
func LookupKey(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// NormalizeName trims and NFC-normalizes a project name so visually equal
// names collide on the unique key.
func NormalizeName(name string) (string, error) {
	normalized := LookupKey(name)
	if normalized == "" {
		return "", fmt.Errorf("project name is required")
	}
	if len([]rune(normalized)) > maxNameLength {
		return "", fmt.Errorf("project name cannot exceed %d characters", maxNameLength)
	}
	if strings.Contains(normalized, "/") {
		return "", fmt.Errorf("project name cannot contain '/'")
	}
	return normalized, nil
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) AdminUsername() string {
	return p.adminUsername
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) IsAdmin(username string) bool {
	return p.adminUsername == username
}

// Rename changes the identifier in place.
func (p *Project) Rename(newName string) error {
	normalized, err := NormalizeName(newName)
	if err != nil {
		return err
	}
	p.name = normalized
	return nil
}
