// Package dto holds the ticket read views.
package dto

import (
	"time"

	commondto "itm/internal/application/common/dto"
	"itm/internal/domain/client"
	"itm/internal/domain/ticket"
	"itm/internal/shared/services/markdown"
)

type TicketDTO struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	ContentHTML string               `json:"contentHtml,omitempty"`
	Status      string               `json:"status"`
	Assignee    *string              `json:"assignee"`
	ProjectName string               `json:"projectName"`
	ClientID    string               `json:"clientId"`
	Client      *commondto.ClientDTO `json:"client,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// Assembler builds ticket views, rendering content to sanitized HTML when
// a markdown service is configured.
type Assembler struct {
	md markdown.MarkdownService
}

func NewAssembler(md markdown.MarkdownService) *Assembler {
	return &Assembler{md: md}
}

func (a *Assembler) ToDTO(t *ticket.Ticket, c *client.Client) *TicketDTO {
	if t == nil {
		return nil
	}
	view := &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Content:     t.Content(),
		Status:      t.Status().String(),
		Assignee:    t.AssigneeUsername(),
		ProjectName: t.ProjectName(),
		ClientID:    t.ClientID(),
		Client:      commondto.ToClientDTO(c),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	if a != nil && a.md != nil && t.Content() != "" {
		if rendered, err := a.md.ToHTMLSanitized(t.Content()); err == nil {
			view.ContentHTML = rendered
		}
	}
	return view
}

// ToDTOs joins each ticket with its client from clients, keyed by ID.
func (a *Assembler) ToDTOs(tickets []*ticket.Ticket, clients map[string]*client.Client) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, a.ToDTO(t, clients[t.ClientID()]))
	}
	return result
}

// ClientIDs returns the distinct client IDs referenced by tickets.
func ClientIDs(tickets []*ticket.Ticket) []string {
	seen := make(map[string]struct{}, len(tickets))
	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		if _, ok := seen[t.ClientID()]; ok {
			continue
		}
		seen[t.ClientID()] = struct{}{}
		ids = append(ids, t.ClientID())
	}
	return ids
}

func IndexClients(clients []*client.Client) map[string]*client.Client {
	index := make(map[string]*client.Client, len(clients))
	for _, c := range clients {
		index[c.ID()] = c
	}
	return index
}
