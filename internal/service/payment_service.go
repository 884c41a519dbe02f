package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/signintech/gopdf"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// Payment errors surfaced to handlers.
var (
	ErrNotPaymentOwner     = errors.New("payment belongs to another student")
	ErrReceiptNotAvailable = errors.New("receipts are only issued for confirmed payments")
)

// PaymentService handles payment initiation, bursary decisions and receipts.
type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	notifSvc    *NotificationService
	cfg         *config.Config
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo *repository.PaymentRepository, notifSvc *NotificationService, cfg *config.Config) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, notifSvc: notifSvc, cfg: cfg}
}

// Initiate creates a PENDING payment for the current session with a fresh
// reference the student quotes at the bank.
func (s *PaymentService) Initiate(ctx context.Context, studentID int, req *model.InitiatePaymentRequest) (*model.Payment, error) {
	id := uuid.New()
	payment := &model.Payment{
		ID:        id,
		StudentID: studentID,
		Purpose:   req.Purpose,
		Amount:    req.Amount,
		Session:   s.cfg.CurrentSession,
		Reference: newPaymentReference(id),
		Status:    model.PaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// newPaymentReference derives a short human-quotable reference from the
// payment id. The id is random, so the first segment is unique enough in
// practice and the unique index on reference catches any collision.
func newPaymentReference(id uuid.UUID) string {
	return "CC-" + strings.ToUpper(id.String()[:8])
}

// ListMine retrieves the calling student's payments.
func (s *PaymentService) ListMine(ctx context.Context, studentID int) ([]model.Payment, error) {
	return s.paymentRepo.ListByStudent(ctx, studentID)
}

// ListAll retrieves payments for bursary staff with optional status filter.
func (s *PaymentService) ListAll(ctx context.Context, status *model.PaymentStatus, page, perPage int) ([]model.Payment, int, error) {
	return s.paymentRepo.ListPaginated(ctx, status, perPage, (page-1)*perPage)
}

// Decide confirms or fails a pending payment and notifies the student.
func (s *PaymentService) Decide(ctx context.Context, id uuid.UUID, status model.PaymentStatus, staffID int) error {
	if err := s.paymentRepo.Decide(ctx, id, status, staffID); err != nil {
		return err
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	title := "Payment confirmed"
	body := fmt.Sprintf("Your %s payment %s has been confirmed.", strings.ToLower(string(payment.Purpose)), payment.Reference)
	if status == model.PaymentFailed {
		title = "Payment failed"
		body = fmt.Sprintf("Your %s payment %s could not be verified. Contact the bursary.", strings.ToLower(string(payment.Purpose)), payment.Reference)
	}
	s.notifSvc.Enqueue(ctx, model.PartyStudent, payment.StudentID, title, body)
	return nil
}

// ReceiptPDF renders the receipt of the student's own confirmed payment,
// looked up by the quoted reference.
func (s *PaymentService) ReceiptPDF(ctx context.Context, reference string, studentID int) ([]byte, error) {
	payment, err := s.paymentRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if payment.StudentID != studentID {
		return nil, ErrNotPaymentOwner
	}
	return s.receiptFor(payment)
}

// ReceiptPDFByID renders a receipt for bursary staff, looked up by payment
// id. The reference is returned for the download filename.
func (s *PaymentService) ReceiptPDFByID(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := s.receiptFor(payment)
	if err != nil {
		return nil, "", err
	}
	return pdf, payment.Reference, nil
}

func (s *PaymentService) receiptFor(payment *model.Payment) ([]byte, error) {
	if payment.Status != model.PaymentConfirmed {
		return nil, ErrReceiptNotAvailable
	}
	return renderReceipt(payment, s.cfg.ReceiptFontPath)
}

func renderReceipt(p *model.Payment, fontPath string) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := pdf.AddTTFFont("receipt", fontPath); err != nil {
		return nil, fmt.Errorf("load receipt font: %w", err)
	}

	if err := pdf.SetFont("receipt", "", 18); err != nil {
		return nil, err
	}
	pdf.SetXY(40, 40)
	_ = pdf.Cell(nil, "CampusCore Payment Receipt")

	if err := pdf.SetFont("receipt", "", 11); err != nil {
		return nil, err
	}

	paidAt := ""
	if p.PaidAt != nil {
		paidAt = p.PaidAt.Format(time.RFC1123)
	}
	lines := []string{
		fmt.Sprintf("Reference: %s", p.Reference),
		fmt.Sprintf("Student: %s (%s)", p.StudentName, p.MatricNo),
		fmt.Sprintf("Purpose: %s", p.Purpose),
		fmt.Sprintf("Session: %s", p.Session),
		fmt.Sprintf("Amount: NGN %.2f", p.Amount),
		fmt.Sprintf("Status: %s", p.Status),
		fmt.Sprintf("Confirmed: %s", paidAt),
	}
	y := 90.0
	for _, line := range lines {
		pdf.SetXY(40, y)
		_ = pdf.Cell(nil, line)
		y += 22
	}

	return pdf.GetBytesPdf(), nil
}
