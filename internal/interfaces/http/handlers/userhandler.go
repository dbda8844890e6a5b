package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itm/internal/application/user/usecases"
	"itm/internal/interfaces/http/handlers/common"
	"itm/internal/shared/errors"
	"itm/internal/shared/logger"
	"itm/internal/shared/utils"
)

type UserHandler struct {
	updateProfileUC usecases.UpdateProfileExecutor
	deleteUserUC    usecases.DeleteUserExecutor
	logger          logger.Interface
}

func NewUserHandler(
	updateProfileUC usecases.UpdateProfileExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		updateProfileUC: updateProfileUC,
		deleteUserUC:    deleteUserUC,
		logger:          logger,
	}
}

// UpdateProfileRequest changes only the fields present.
type UpdateProfileRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,password"`
}

// UpdateCurrentUser handles PUT /users
// @Summary Update the current user
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param user body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /users [put]
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if req.Email == nil && req.Password == nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("nothing to update", "email or password is required"))
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		Actor:    actor,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:user
// @Summary Delete a user
// @Description Global admins only. Memberships are removed, assigned tickets are unassigned and administered projects are deleted.
// @Tags users
// @Produce json
// @Security Bearer
// @Param user path string true "Username"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{user} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		Actor:    actor,
		Username: c.Param("user"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
