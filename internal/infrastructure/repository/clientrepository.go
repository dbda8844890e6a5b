package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"itm/internal/domain/client"
	"itm/internal/infrastructure/persistence/mappers"
	"itm/internal/infrastructure/persistence/models"
	"itm/internal/shared/db"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type ClientRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
	logger logger.Interface
}

func NewClientRepository(db *gorm.DB, logger logger.Interface) client.Repository {
	return &ClientRepositoryImpl{
		db:     db,
		mapper: mappers.NewClientMapper(),
		logger: logger,
	}
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create client", "id", model.ID, "error", err)
		return fmt.Errorf("failed to create client: %w", err)
	}

	r.logger.Infow("client created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *ClientRepositoryImpl) Update(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"email":      model.Email,
			"phone":      model.Phone,
			"address":    model.Address,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update client", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("client not found", model.ID)
	}
	return nil
}

func (r *ClientRepositoryImpl) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ?", id).Delete(&models.ClientModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete client", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("client not found", id)
	}

	r.logger.Infow("client deleted", "id", id)
	return nil
}

func (r *ClientRepositoryImpl) GetByID(ctx context.Context, id string) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ClientRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]*client.Client, error) {
	if len(ids) == 0 {
		return []*client.Client{}, nil
	}

	var list []models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *ClientRepositoryImpl) List(ctx context.Context) ([]*client.Client, error) {
	var list []models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return r.mapper.ToDomainList(list)
}
