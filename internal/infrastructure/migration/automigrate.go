package migration

import (
	"itm/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in table creation order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ClientModel{},
		&models.ProjectModel{},
		&models.ProjectMemberModel{},
		&models.TicketModel{},
	}
}
