package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// NotificationHandler handles notification read paths and staff broadcasts.
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List godoc
// GET /api/v1/student/notifications
// GET /api/v1/admin/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	partyType, partyID := senderParty(c)
	page, perPage := parsePagination(c)

	notifications, err := h.notificationService.List(c.Request.Context(), partyType, partyID, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": notifications})
}

// UnreadCount godoc
// GET /api/v1/student/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	partyType, partyID := senderParty(c)

	count, err := h.notificationService.UnreadCount(c.Request.Context(), partyType, partyID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread": count})
}

// MarkRead godoc
// POST /api/v1/student/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	partyType, partyID := senderParty(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ok, err := h.notificationService.MarkRead(c.Request.Context(), id, partyType, partyID)
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

// MarkAllRead godoc
// POST /api/v1/student/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	partyType, partyID := senderParty(c)

	if err := h.notificationService.MarkAllRead(c.Request.Context(), partyType, partyID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "all marked as read"})
}

// Broadcast godoc
// POST /api/v1/admin/notifications/broadcast
// Fans a notification out to every student in the audience.
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	var req model.BroadcastRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	recipients, err := h.notificationService.Broadcast(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"recipients": recipients})
}
