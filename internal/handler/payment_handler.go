package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
)

// PaymentHandler handles payment initiation, bursary decisions and receipts.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Initiate godoc
// POST /api/v1/student/payments
// Creates a PENDING payment and returns the bank reference.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.InitiatePaymentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	payment, err := h.paymentService.Initiate(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"payment": payment})
}

// MyPayments godoc
// GET /api/v1/student/payments
func (h *PaymentHandler) MyPayments(c *gin.Context) {
	claims := middleware.GetClaims(c)

	payments, err := h.paymentService.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

// List godoc
// GET /api/v1/admin/payments?status=&page=&per_page=
func (h *PaymentHandler) List(c *gin.Context) {
	page, perPage := parsePagination(c)

	var status *model.PaymentStatus
	if raw := c.Query("status"); raw != "" {
		st := model.PaymentStatus(raw)
		status = &st
	}

	payments, total, err := h.paymentService.ListAll(c.Request.Context(), status, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"payments": payments},
		response.NewPagination(page, perPage, total))
}

// Decide godoc
// POST /api/v1/admin/payments/:id/decide
// Confirms or fails a PENDING payment.
func (h *PaymentHandler) Decide(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.DecidePaymentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.paymentService.Decide(c.Request.Context(), id, req.Status, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrPaymentNotPending) {
			response.Fail(c, http.StatusConflict, response.ErrPaymentFinalized)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "payment decided successfully"})
}

// StudentReceipt godoc
// GET /api/v1/student/payments/:reference/receipt
// Streams the PDF receipt of the student's own confirmed payment.
func (h *PaymentHandler) StudentReceipt(c *gin.Context) {
	claims := middleware.GetClaims(c)
	reference := c.Param("reference")

	pdf, err := h.paymentService.ReceiptPDF(c.Request.Context(), reference, claims.UserID)
	if err != nil {
		failReceipt(c, err)
		return
	}
	servePDF(c, reference, pdf)
}

// AdminReceipt godoc
// GET /api/v1/admin/payments/:id/receipt
// Takes the payment id like the sibling decide route.
func (h *PaymentHandler) AdminReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	pdf, reference, err := h.paymentService.ReceiptPDFByID(c.Request.Context(), id)
	if err != nil {
		failReceipt(c, err)
		return
	}
	servePDF(c, reference, pdf)
}

func failReceipt(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotPaymentOwner):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	case errors.Is(err, service.ErrReceiptNotAvailable):
		response.Fail(c, http.StatusConflict, response.ErrActionForbidden)
	default:
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	}
}

func servePDF(c *gin.Context, reference string, pdf []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", reference))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
