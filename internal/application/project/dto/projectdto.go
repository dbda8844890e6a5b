// Package dto holds the project read views.
package dto

import (
	"time"

	commondto "itm/internal/application/common/dto"
	ticketdto "itm/internal/application/ticket/dto"
	"itm/internal/domain/project"
)

// ProjectDTO carries the per-viewer isAdmin flag.
type ProjectDTO struct {
	Name      string    `json:"name"`
	Admin     string    `json:"admin"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToProjectDTO(p *project.Project, viewer string) *ProjectDTO {
	if p == nil {
		return nil
	}
	return &ProjectDTO{
		Name:      p.Name(),
		Admin:     p.AdminUsername(),
		IsAdmin:   p.IsAdmin(viewer),
		CreatedAt: p.CreatedAt(),
	}
}

func ToProjectDTOs(projects []*project.Project, viewer string) []*ProjectDTO {
	result := make([]*ProjectDTO, 0, len(projects))
	for _, p := range projects {
		result = append(result, ToProjectDTO(p, viewer))
	}
	return result
}

// Stat keys follow the lower-cased status names.
const (
	StatTotal      = "total"
	StatOpen       = "open"
	StatInProgress = "in progress"
	StatResolved   = "resolved"
)

type ProjectDetailDTO struct {
	ProjectDTO
	Tickets    []*ticketdto.TicketDTO `json:"tickets"`
	Users      []*commondto.UserDTO   `json:"users"`
	Stats      map[string]int64       `json:"ticketStats"`
	MonthStats map[string]int64       `json:"monthStats"`
}
