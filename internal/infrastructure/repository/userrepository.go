package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"itm/internal/domain/user"
	"itm/internal/infrastructure/persistence/mappers"
	"itm/internal/infrastructure/persistence/models"
	"itm/internal/shared/db"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
)

// UserRepository implements user.Repository on gorm.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewDuplicateNameError("username or email is already used", model.Username)
		}
		r.logger.Errorw("failed to create user in database", "username", model.Username, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Infow("user created successfully", "username", model.Username)
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by username", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "username", username, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}
	return entity, nil
}

func (r *UserRepository) GetByUsernames(ctx context.Context, usernames []string) ([]*user.User, error) {
	if len(usernames) == 0 {
		return []*user.User{}, nil
	}

	var list []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("username IN ?", usernames).Order("username ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to get users by usernames", "count", len(usernames), "error", err)
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// Update writes email, credential hash and admin flag. The username is
// the key and never changes.
func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("username = ?", model.Username).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"is_admin":      model.IsAdmin,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewDuplicateNameError("email is already used", model.Email)
		}
		r.logger.Errorw("failed to update user", "username", model.Username, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found", model.Username)
	}

	r.logger.Infow("user updated successfully", "username", model.Username)
	return nil
}

// Delete removes the row. Memberships and assignments are cleared by the
// caller in the same transaction.
func (r *UserRepository) Delete(ctx context.Context, username string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("username = ?", username).Delete(&models.UserModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "username", username, "error", result.Error)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found", username)
	}

	r.logger.Infow("user deleted successfully", "username", username)
	return nil
}
