// Package ticket serves the ticket workflow: creation, assignment,
// resolution and rewrite.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itm/internal/application/ticket/usecases"
	"itm/internal/interfaces/http/handlers/common"
	"itm/internal/shared/logger"
	"itm/internal/shared/utils"
)

type Handler struct {
	createTicketUC  usecases.CreateTicketExecutor
	assignSelfUC    usecases.AssignSelfExecutor
	assignTicketUC  usecases.AssignTicketExecutor
	resolveTicketUC usecases.ResolveTicketExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	logger          logger.Interface
}

func NewHandler(
	createTicketUC usecases.CreateTicketExecutor,
	assignSelfUC usecases.AssignSelfExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	resolveTicketUC usecases.ResolveTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createTicketUC:  createTicketUC,
		assignSelfUC:    assignSelfUC,
		assignTicketUC:  assignTicketUC,
		resolveTicketUC: resolveTicketUC,
		updateTicketUC:  updateTicketUC,
		listTicketsUC:   listTicketsUC,
		logger:          logger,
	}
}

type CreateTicketRequest struct {
	Project string `json:"project" binding:"required"`
	Client  string `json:"client" binding:"required,uuid"`
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"max=10000"`
}

type UpdateTicketRequest struct {
	Client  string `json:"client" binding:"required,uuid"`
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"max=10000"`
}

type TicketRefRequest struct {
	Ticket string `json:"ticket" binding:"required"`
}

type AssignToRequest struct {
	Ticket string `json:"ticket" binding:"required"`
	User   string `json:"user" binding:"required"`
}

// ListTickets handles GET /tickets
// @Summary List my tickets
// @Description Tickets assigned to the caller, each with its client.
// @Tags tickets
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /tickets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTicket handles POST /tickets
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param ticket body CreateTicketRequest true "Ticket data"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /tickets [post]
func (h *Handler) CreateTicket(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:       actor,
		ProjectName: req.Project,
		ClientID:    req.Client,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// UpdateTicket handles PUT /tickets/:ticket
// @Summary Rewrite a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param ticket path string true "Ticket ID"
// @Param body body UpdateTicketRequest true "Ticket data"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{ticket} [put]
func (h *Handler) UpdateTicket(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:    actor,
		TicketID: c.Param("ticket"),
		Title:    req.Title,
		Content:  req.Content,
		ClientID: req.Client,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// AssignSelf handles POST /tickets/assign
// @Summary Take an unassigned ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body TicketRefRequest true "Ticket"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /tickets/assign [post]
func (h *Handler) AssignSelf(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req TicketRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignSelfUC.Execute(c.Request.Context(), usecases.AssignSelfCommand{
		Actor:    actor,
		TicketID: req.Ticket,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// AssignTo handles POST /tickets/assignto
// @Summary Assign a ticket to a user
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body AssignToRequest true "Ticket and user"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/assignto [post]
func (h *Handler) AssignTo(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req AssignToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		Actor:    actor,
		TicketID: req.Ticket,
		Username: req.User,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// Resolve handles POST /tickets/resolve
// @Summary Resolve a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body TicketRefRequest true "Ticket"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/resolve [post]
func (h *Handler) Resolve(c *gin.Context) {
	actor, ok := common.MustPrincipal(c)
	if !ok {
		return
	}

	var req TicketRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resolveTicketUC.Execute(c.Request.Context(), usecases.ResolveTicketCommand{
		Actor:    actor,
		TicketID: req.Ticket,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved successfully", result)
}
