package models

import (
	"itm/internal/shared/constants"
)

type TicketModel struct {
	ID               string  `gorm:"primaryKey;size:36"`
	Title            string  `gorm:"size:200;not null"`
	Content          string  `gorm:"type:text;not null"`
	Status           string  `gorm:"size:20;not null;index"`
	AssigneeUsername *string `gorm:"size:64;index"`
	ProjectName      string  `gorm:"size:100;not null;index"`
	ClientID         string  `gorm:"size:36;not null;index"`
	CreatedAt        int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// Cascades are performed explicitly by the use cases.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
