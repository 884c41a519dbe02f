package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// MessageHandler handles direct messages for both parties. The sender's
// identity comes from the JWT, so the same handler serves student and staff
// routes.
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// senderParty derives the message party from the token type.
func senderParty(c *gin.Context) (model.PartyType, int) {
	claims := middleware.GetClaims(c)
	if claims.TokenType == service.TokenTypeStaff {
		return model.PartyStaff, claims.UserID
	}
	return model.PartyStudent, claims.UserID
}

// Send godoc
// POST /api/v1/student/messages
// POST /api/v1/admin/messages
func (h *MessageHandler) Send(c *gin.Context) {
	partyType, partyID := senderParty(c)

	var req model.SendMessageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	msg, err := h.messageService.Send(c.Request.Context(), partyType, partyID, &req)
	if err != nil {
		if errors.Is(err, service.ErrSelfMessage) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrActionForbidden)
			return
		}
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

// Inbox godoc
// GET /api/v1/student/messages
// GET /api/v1/admin/messages
func (h *MessageHandler) Inbox(c *gin.Context) {
	partyType, partyID := senderParty(c)
	page, perPage := parsePagination(c)

	messages, err := h.messageService.Inbox(c.Request.Context(), partyType, partyID, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// MarkRead godoc
// POST /api/v1/student/messages/:id/read
// POST /api/v1/admin/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	partyType, partyID := senderParty(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ok, err := h.messageService.MarkRead(c.Request.Context(), id, partyType, partyID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "marked as read"})
}
