package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"itm/internal/domain/project"
	"itm/internal/infrastructure/persistence/models"
	"itm/internal/shared/biztime"
	"itm/internal/shared/db"
	"itm/internal/shared/logger"
)

type MembershipRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewMembershipRepository(db *gorm.DB, logger logger.Interface) project.MembershipRepository {
	return &MembershipRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *MembershipRepositoryImpl) Add(ctx context.Context, projectName, username string) error {
	model := &models.ProjectMemberModel{
		ProjectName: projectName,
		Username:    username,
		CreatedAt:   biztime.NowMillis(),
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(model).Error; err != nil {
		r.logger.Errorw("failed to add project member", "project", projectName, "username", username, "error", err)
		return fmt.Errorf("failed to add project member: %w", err)
	}
	return nil
}

func (r *MembershipRepositoryImpl) Remove(ctx context.Context, projectName, username string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("project_name = ? AND username = ?", projectName, username).
		Delete(&models.ProjectMemberModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to remove project member", "project", projectName, "username", username, "error", err)
		return fmt.Errorf("failed to remove project member: %w", err)
	}
	return nil
}

func (r *MembershipRepositoryImpl) IsMember(ctx context.Context, projectName, username string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.ProjectMemberModel{}).
		Scopes(db.ForProject(projectName)).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return count > 0, nil
}

func (r *MembershipRepositoryImpl) ListMembers(ctx context.Context, projectName string) ([]string, error) {
	var usernames []string
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.ProjectMemberModel{}).
		Scopes(db.ForProject(projectName)).
		Order("username ASC").
		Pluck("username", &usernames).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	return usernames, nil
}

func (r *MembershipRepositoryImpl) DeleteByProject(ctx context.Context, projectName string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Scopes(db.ForProject(projectName)).Delete(&models.ProjectMemberModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete project members: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MembershipRepositoryImpl) DeleteByUser(ctx context.Context, username string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("username = ?", username).Delete(&models.ProjectMemberModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete user memberships: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MembershipRepositoryImpl) RenameProject(ctx context.Context, oldName, newName string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.ProjectMemberModel{}).
		Scopes(db.ForProject(oldName)).
		Update("project_name", newName).Error
	if err != nil {
		return fmt.Errorf("failed to rename project in memberships: %w", err)
	}
	return nil
}
