// Package client serves the client registry. Writes are reserved to global
// admins; any authenticated user may list.
package client

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itm/internal/application/client/usecases"
	"itm/internal/interfaces/http/handlers/common"
	"itm/internal/shared/logger"
	"itm/internal/shared/utils"
)

type Handler struct {
	createClientUC usecases.CreateClientExecutor
	updateClientUC usecases.UpdateClientExecutor
	deleteClientUC usecases.DeleteClientExecutor
	listClientsUC  usecases.ListClientsExecutor
	logger         logger.Interface
}

func NewHandler(
	createClientUC usecases.CreateClientExecutor,
	updateClientUC usecases.UpdateClientExecutor,
	deleteClientUC usecases.DeleteClientExecutor,
	listClientsUC usecases.ListClientsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createClientUC: createClientUC,
		updateClientUC: updateClientUC,
		deleteClientUC: deleteClientUC,
		listClientsUC:  listClientsUC,
		logger:         logger,
	}
}

type ClientRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,phone"`
	Address string `json:"address" binding:"required,max=500"`
}

// ListClients handles GET /clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /clients [get]
func (h *Handler) ListClients(c *gin.Context) {
	if _, ok := common.MustPrincipal(c); !ok {
		return
	}

	result, err := h.listClientsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateClient handles POST /clients
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Security Bearer
// @Param client body ClientRequest true "Client data"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /clients [post]
func (h *Handler) CreateClient(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), usecases.CreateClientCommand{
		Actor:   actor,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// UpdateClient handles PUT /clients/:client
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Security Bearer
// @Param client path string true "Client ID"
// @Param body body ClientRequest true "Client data"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /clients/{client} [put]
func (h *Handler) UpdateClient(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), usecases.UpdateClientCommand{
		Actor:   actor,
		ID:      c.Param("client"),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

// DeleteClient handles DELETE /clients/:client
// @Summary Delete a client
// @Description Deletes the client and every ticket raised against it.
// @Tags clients
// @Security Bearer
// @Param client path string true "Client ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /clients/{client} [delete]
func (h *Handler) DeleteClient(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	err := h.deleteClientUC.Execute(c.Request.Context(), usecases.DeleteClientCommand{
		Actor: actor,
		ID:    c.Param("client"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
