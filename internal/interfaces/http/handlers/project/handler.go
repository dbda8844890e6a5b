// Package project serves projects and their membership.
package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itm/internal/application/project/usecases"
	"itm/internal/interfaces/http/handlers/common"
	"itm/internal/shared/logger"
	"itm/internal/shared/utils"
)

type Handler struct {
	createProjectUC usecases.CreateProjectExecutor
	renameProjectUC usecases.RenameProjectExecutor
	deleteProjectUC usecases.DeleteProjectExecutor
	addMemberUC     usecases.AddMemberExecutor
	removeMemberUC  usecases.RemoveMemberExecutor
	listProjectsUC  usecases.ListProjectsExecutor
	getDetailUC     usecases.GetProjectDetailExecutor
	logger          logger.Interface
}

func NewHandler(
	createProjectUC usecases.CreateProjectExecutor,
	renameProjectUC usecases.RenameProjectExecutor,
	deleteProjectUC usecases.DeleteProjectExecutor,
	addMemberUC usecases.AddMemberExecutor,
	removeMemberUC usecases.RemoveMemberExecutor,
	listProjectsUC usecases.ListProjectsExecutor,
	getDetailUC usecases.GetProjectDetailExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createProjectUC: createProjectUC,
		renameProjectUC: renameProjectUC,
		deleteProjectUC: deleteProjectUC,
		addMemberUC:     addMemberUC,
		removeMemberUC:  removeMemberUC,
		listProjectsUC:  listProjectsUC,
		getDetailUC:     getDetailUC,
		logger:          logger,
	}
}

type ProjectRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type AddMemberRequest struct {
	Project string `json:"project" binding:"required"`
	User    string `json:"user" binding:"required"`
}

// ListProjects handles GET /projects
// @Summary List my projects
// @Description Projects the caller is a member of, each flagged with whether the caller administers it.
// @Tags projects
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /projects [get]
func (h *Handler) ListProjects(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	result, err := h.listProjectsUC.Execute(c.Request.Context(), usecases.ListProjectsQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateProject handles POST /projects
// @Summary Create a project
// @Description The caller becomes the project admin and its first member.
// @Tags projects
// @Accept json
// @Produce json
// @Security Bearer
// @Param project body ProjectRequest true "Project name"
// @Success 201 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /projects [post]
func (h *Handler) CreateProject(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Actor: actor,
		Name:  req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// GetProject handles GET /projects/:project
// @Summary Project detail
// @Description Tickets with their clients, members and ticket statistics. Members only.
// @Tags projects
// @Produce json
// @Security Bearer
// @Param project path string true "Project name"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /projects/{project} [get]
func (h *Handler) GetProject(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	result, err := h.getDetailUC.Execute(c.Request.Context(), usecases.GetProjectDetailQuery{
		Actor: actor,
		Name:  c.Param("project"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RenameProject handles PUT /projects/:project
// @Summary Rename a project
// @Tags projects
// @Accept json
// @Produce json
// @Security Bearer
// @Param project path string true "Project name"
// @Param body body ProjectRequest true "New name"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /projects/{project} [put]
func (h *Handler) RenameProject(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renameProjectUC.Execute(c.Request.Context(), usecases.RenameProjectCommand{
		Actor:   actor,
		Name:    c.Param("project"),
		NewName: req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project renamed successfully", result)
}

// DeleteProject handles DELETE /projects/:project
// @Summary Delete a project
// @Description Project admin only. Tickets and memberships go with it.
// @Tags projects
// @Security Bearer
// @Param project path string true "Project name"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /projects/{project} [delete]
func (h *Handler) DeleteProject(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	err := h.deleteProjectUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{
		Actor: actor,
		Name:  c.Param("project"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddMember handles POST /projects/users
// @Summary Add a member
// @Tags projects
// @Accept json
// @Security Bearer
// @Param body body AddMemberRequest true "Project and user"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /projects/users [post]
func (h *Handler) AddMember(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err := h.addMemberUC.Execute(c.Request.Context(), usecases.AddMemberCommand{
		Actor:       actor,
		ProjectName: req.Project,
		Username:    req.User,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RemoveMember handles DELETE /projects/:project/users/:user
// @Summary Remove a member
// @Description The project admin cannot be removed.
// @Tags projects
// @Security Bearer
// @Param project path string true "Project name"
// @Param user path string true "Username"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /projects/{project}/users/{user} [delete]
func (h *Handler) RemoveMember(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	err := h.removeMemberUC.Execute(c.Request.Context(), usecases.RemoveMemberCommand{
		Actor:       actor,
		ProjectName: c.Param("project"),
		Username:    c.Param("user"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
