package service

import (
	"context"
	"errors"

	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// ErrSelfMessage is returned when a party addresses a message to itself.
var ErrSelfMessage = errors.New("cannot send a message to yourself")

// MessageService handles direct messages between students and staff.
type MessageService struct {
	messageRepo *repository.MessageRepository
	notifSvc    *NotificationService
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo *repository.MessageRepository, notifSvc *NotificationService) *MessageService {
	return &MessageService{messageRepo: messageRepo, notifSvc: notifSvc}
}

// Send stores a message and notifies the recipient.
func (s *MessageService) Send(ctx context.Context, senderType model.PartyType, senderID int, req *model.SendMessageRequest) (*model.Message, error) {
	if req.RecipientType == senderType && req.RecipientID == senderID {
		return nil, ErrSelfMessage
	}

	msg := &model.Message{
		SenderType:    senderType,
		SenderID:      senderID,
		RecipientType: req.RecipientType,
		RecipientID:   req.RecipientID,
		Body:          req.Body,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.notifSvc.Enqueue(ctx, req.RecipientType, req.RecipientID, "New message", excerpt(req.Body, 120))
	return msg, nil
}

// excerpt truncates s to max runes for notification previews.
func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// Inbox retrieves a party's messages, sent and received, newest first.
func (s *MessageService) Inbox(ctx context.Context, partyType model.PartyType, partyID, page, perPage int) ([]model.Message, error) {
	return s.messageRepo.ListForParty(ctx, partyType, partyID, perPage, (page-1)*perPage)
}

// MarkRead marks a received message read. Returns false when the message does
// not exist or the caller is not its recipient.
func (s *MessageService) MarkRead(ctx context.Context, id int, recipientType model.PartyType, recipientID int) (bool, error) {
	return s.messageRepo.MarkRead(ctx, id, recipientType, recipientID)
}
