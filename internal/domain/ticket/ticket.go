// Package ticket models the ticket workflow: a ticket belongs to one
// project, is raised against one client and moves
// Open -> In progress -> Resolved.
package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	vo "itm/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength   = 200
	maxContentLength = 20000
)

type Ticket struct {
	id               string
	title            string
	content          string
	status           vo.TicketStatus
	assigneeUsername *string
	projectName      string
	clientID         string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewTicket creates an Open, unassigned ticket with a fresh UUID.
func NewTicket(projectName, clientID, title, content string) (*Ticket, error) {
	if projectName == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if clientID == "" {
		return nil, fmt.Errorf("client ID is required")
	}
	title = strings.TrimSpace(title)
	if err := validateBody(title, content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Ticket{
		id:          uuid.NewString(),
		title:       title,
		content:     content,
		status:      vo.StatusOpen,
		projectName: projectName,
		clientID:    clientID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id string,
	title string,
	content string,
	status vo.TicketStatus,
	assigneeUsername *string,
	projectName string,
	clientID string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if projectName == "" {
		return nil, fmt.Errorf("project name is required")
	}
	return &Ticket{
		id:               id,
		title:            title,
		content:          content,
		status:           status,
		assigneeUsername: assigneeUsername,
		projectName:      projectName,
		clientID:         clientID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func validateBody(title, content string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}
	return nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Content() string {
	return t.content
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) AssigneeUsername() *string {
	return t.assigneeUsername
}

func (t *Ticket) IsAssigned() bool {
	return t.assigneeUsername != nil && *t.assigneeUsername != ""
}

func (t *Ticket) ProjectName() string {
	return t.projectName
}

func (t *Ticket) ClientID() string {
	return t.clientID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// AssignSelf claims an unassigned ticket.
func (t *Ticket) AssignSelf(username string) error {
	if t.IsAssigned() {
		return ErrAlreadyAssigned
	}
	return t.AssignTo(username)
}

// AssignTo sets the assignee unconditionally and moves the ticket to
// In progress, also when it was Resolved.
func (t *Ticket) AssignTo(username string) error {
	if username == "" {
		return fmt.Errorf("assignee username is required")
	}
	t.assigneeUsername = &username
	return t.changeStatus(vo.StatusInProgress)
}

// Resolve is idempotent.
func (t *Ticket) Resolve() error {
	return t.changeStatus(vo.StatusResolved)
}

// Rewrite replaces title and content and repoints the client.
func (t *Ticket) Rewrite(title, content, clientID string) error {
	title = strings.TrimSpace(title)
	if err := validateBody(title, content); err != nil {
		return err
	}
	if clientID == "" {
		return fmt.Errorf("client ID is required")
	}
	t.title = title
	t.content = content
	t.clientID = clientID
	t.updatedAt = time.Now().UTC()
	return nil
}

func (t *Ticket) changeStatus(next vo.TicketStatus) error {
	if !t.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, next)
	}
	t.status = next
	t.updatedAt = time.Now().UTC()
	return nil
}
