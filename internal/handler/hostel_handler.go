package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// HostelHandler handles hostel CRUD and the allocation workflow.
type HostelHandler struct {
	hostelService *service.HostelService
}

// NewHostelHandler creates a new HostelHandler.
func NewHostelHandler(hostelService *service.HostelService) *HostelHandler {
	return &HostelHandler{hostelService: hostelService}
}

// List godoc
// GET /api/v1/hostels
func (h *HostelHandler) List(c *gin.Context) {
	hostels, err := h.hostelService.ListHostels(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hostels": hostels})
}

// Get godoc
// GET /api/v1/hostels/:id
// Returns a hostel with its rooms and live occupancy.
func (h *HostelHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	hostel, rooms, err := h.hostelService.GetHostel(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hostel": hostel, "rooms": rooms})
}

// Create godoc
// POST /api/v1/admin/hostels
func (h *HostelHandler) Create(c *gin.Context) {
	var req model.CreateHostelRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hostel, err := h.hostelService.CreateHostel(c.Request.Context(), &req)
	if err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"hostel": hostel})
}

// Update godoc
// PUT /api/v1/admin/hostels/:id
func (h *HostelHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateHostelRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hostel, err := h.hostelService.UpdateHostel(c.Request.Context(), id, &req)
	if err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hostel": hostel})
}

// Delete godoc
// DELETE /api/v1/admin/hostels/:id
func (h *HostelHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.hostelService.DeleteHostel(c.Request.Context(), id); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "hostel deleted successfully"})
}

// CreateRoom godoc
// POST /api/v1/admin/hostels/:id/rooms
func (h *HostelHandler) CreateRoom(c *gin.Context) {
	hostelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateRoomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	room, err := h.hostelService.CreateRoom(c.Request.Context(), hostelID, &req)
	if err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

// DeleteRoom godoc
// DELETE /api/v1/admin/rooms/:id
func (h *HostelHandler) DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.hostelService.DeleteRoom(c.Request.Context(), id); err != nil {
		failFromPgError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "room deleted successfully"})
}

// Apply godoc
// POST /api/v1/student/hostel/applications
// Files the student's one hostel application for the current session.
func (h *HostelHandler) Apply(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.ApplyHostelRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	app, err := h.hostelService.Apply(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, service.ErrGenderMismatch) {
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrHostelGenderMismatch)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"application": app})
}

// MyApplication godoc
// GET /api/v1/student/hostel/applications/me
func (h *HostelHandler) MyApplication(c *gin.Context) {
	claims := middleware.GetClaims(c)

	app, err := h.hostelService.MyApplication(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// ListApplications godoc
// GET /api/v1/admin/hostels/:id/applications
func (h *HostelHandler) ListApplications(c *gin.Context) {
	hostelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	apps, err := h.hostelService.ListApplications(c.Request.Context(), hostelID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// Allocate godoc
// POST /api/v1/admin/hostel/applications/:id/allocate
// Assigns a room (explicit or auto-picked) to a pending application.
func (h *HostelHandler) Allocate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.AllocateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	app, err := h.hostelService.Allocate(c.Request.Context(), id, req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomFull), errors.Is(err, repository.ErrNoFreeRoom):
			response.Fail(c, http.StatusConflict, response.ErrRoomFull)
		case errors.Is(err, repository.ErrApplicationDecided):
			response.Fail(c, http.StatusConflict, response.ErrApplicationDecided)
		default:
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// Reject godoc
// POST /api/v1/admin/hostel/applications/:id/reject
func (h *HostelHandler) Reject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.hostelService.Reject(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrApplicationDecided) {
			response.Fail(c, http.StatusConflict, response.ErrApplicationDecided)
			return
		}
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "application rejected"})
}
