package db

import (
	"gorm.io/gorm"
)

// ForProject restricts a query to rows owned by the named project.
//
//	tx.Model(&models.TicketModel{}).Scopes(db.ForProject(name)).Count(&n)
func ForProject(projectName string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("project_name = ?", projectName)
	}
}

// ForClient restricts a query to rows referencing the client.
func ForClient(clientID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("client_id = ?", clientID)
	}
}

// AssignedTo restricts a ticket query to the given assignee.
func AssignedTo(username string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("assignee_username = ?", username)
	}
}

// NewestFirst orders by creation time descending.
func NewestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}
}
