package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"itm/internal/domain/project"
	"itm/internal/infrastructure/persistence/mappers"
	"itm/internal/infrastructure/persistence/models"
	"itm/internal/shared/constants"
	"itm/internal/shared/db"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
	logger logger.Interface
}

func NewProjectRepository(db *gorm.DB, logger logger.Interface) project.Repository {
	return &ProjectRepositoryImpl{
		db:     db,
		mapper: mappers.NewProjectMapper(),
		logger: logger,
	}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewDuplicateNameError("project name is already used", model.Name)
		}
		r.logger.Errorw("failed to create project", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create project: %w", err)
	}

	r.logger.Infow("project created", "name", model.Name, "admin", model.AdminUsername)
	return nil
}

func (r *ProjectRepositoryImpl) GetByName(ctx context.Context, name string) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ProjectModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check project name: %w", err)
	}
	return count > 0, nil
}

func (r *ProjectRepositoryImpl) ListByMember(ctx context.Context, username string) ([]*project.Project, error) {
	var list []models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.ProjectModel{}).
		Joins(fmt.Sprintf("JOIN %s pm ON pm.project_name = %s.name", constants.TableProjectMembers, constants.TableProjects)).
		Where("pm.username = ?", username).
		Order(constants.TableProjects + ".name ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for member: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *ProjectRepositoryImpl) ListByAdmin(ctx context.Context, username string) ([]*project.Project, error) {
	var list []models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("admin_username = ?", username).Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects for admin: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

// Rename rewrites the key of the project row only; the caller renames
// tickets and memberships in the same transaction.
func (r *ProjectRepositoryImpl) Rename(ctx context.Context, oldName, newName string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ProjectModel{}).
		Where("name = ?", oldName).
		Update("name", newName)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewDuplicateNameError("project name is already used", newName)
		}
		r.logger.Errorw("failed to rename project", "name", oldName, "new_name", newName, "error", result.Error)
		return fmt.Errorf("failed to rename project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project not found", oldName)
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, name string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("name = ?", name).Delete(&models.ProjectModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete project", "name", name, "error", result.Error)
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project not found", name)
	}
	return nil
}
