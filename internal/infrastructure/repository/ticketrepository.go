package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"itm/internal/domain/ticket"
	vo "itm/internal/domain/ticket/valueobjects"
	"itm/internal/infrastructure/persistence/mappers"
	"itm/internal/infrastructure/persistence/models"
	"itm/internal/shared/biztime"
	"itm/internal/shared/db"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "project", model.ProjectName, "error", err)
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return nil
}

// Update writes every mutable column, the nullable assignee included.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":             model.Title,
			"content":           model.Content,
			"status":            model.Status,
			"assignee_username": model.AssigneeUsername,
			"client_id":         model.ClientID,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListByProject(ctx context.Context, projectName string) ([]*ticket.Ticket, error) {
	var list []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Scopes(db.ForProject(projectName), db.NewestFirst()).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list project tickets: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *TicketRepository) ListByAssignee(ctx context.Context, username string) ([]*ticket.Ticket, error) {
	var list []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Scopes(db.AssignedTo(username), db.NewestFirst()).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list assigned tickets: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

// ClaimUnassigned is a single conditional UPDATE, so concurrent claims on
// the same ticket serialize in the database and exactly one matches.
func (r *TicketRepository) ClaimUnassigned(ctx context.Context, id, username string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ? AND assignee_username IS NULL", id).
		Updates(map[string]interface{}{
			"assignee_username": username,
			"status":            vo.StatusInProgress.String(),
			"updated_at":        biztime.NowMillis(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to claim ticket: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to claim ticket: %w", err)
	}
	if count == 0 {
		return errors.NewNotFoundError("ticket not found", id)
	}
	return ticket.ErrAlreadyAssigned
}

// ClearAssignee unassigns every ticket of the user. Status is left alone.
func (r *TicketRepository) ClearAssignee(ctx context.Context, username string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TicketModel{}).
		Scopes(db.AssignedTo(username)).
		Updates(map[string]interface{}{
			"assignee_username": nil,
			"updated_at":        biztime.NowMillis(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear ticket assignee: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) DeleteByProject(ctx context.Context, projectName string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Scopes(db.ForProject(projectName)).Delete(&models.TicketModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete project tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Scopes(db.ForClient(clientID)).Delete(&models.TicketModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete client tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) RenameProject(ctx context.Context, oldName, newName string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.TicketModel{}).
		Scopes(db.ForProject(oldName)).
		Update("project_name", newName).Error
	if err != nil {
		return fmt.Errorf("failed to rename project in tickets: %w", err)
	}
	return nil
}
