package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

const unreadCountTTL = 30 * time.Second

// NotificationService fans notifications out through the Redis queue. Actual
// row insertion happens in the notification worker; this service only
// enqueues jobs and serves read paths.
type NotificationService struct {
	notifRepo   *repository.NotificationRepository
	studentRepo *repository.StudentRepository
	rdb         *redis.Client
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifRepo *repository.NotificationRepository, studentRepo *repository.StudentRepository, rdb *redis.Client) *NotificationService {
	return &NotificationService{notifRepo: notifRepo, studentRepo: studentRepo, rdb: rdb}
}

// Enqueue pushes a single notification job onto the worker queue. Enqueue
// failures are logged, not returned: a lost notification must never fail the
// operation that triggered it.
func (s *NotificationService) Enqueue(ctx context.Context, recipientType model.PartyType, recipientID int, title, body string) {
	job := model.NotifyJob{
		RecipientType: recipientType,
		RecipientID:   recipientID,
		Title:         title,
		Body:          body,
	}
	payload, err := json.Marshal(job)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal notification job")
		return
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.NotifyQueue, payload).Err(); err != nil {
		log.Error().Err(err).Int("recipient_id", recipientID).Msg("Failed to enqueue notification")
	}
}

// Broadcast enqueues one job per student in the audience. Returns the number
// of recipients targeted.
func (s *NotificationService) Broadcast(ctx context.Context, req *model.BroadcastRequest) (int, error) {
	ids, err := s.studentRepo.ListIDsByAudience(ctx, req.Level, req.DepartmentID)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.Enqueue(ctx, model.PartyStudent, id, req.Title, req.Body)
	}
	return len(ids), nil
}

// List retrieves a recipient's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, recipientType model.PartyType, recipientID, page, perPage int) ([]model.Notification, error) {
	return s.notifRepo.ListForRecipient(ctx, recipientType, recipientID, perPage, (page-1)*perPage)
}

// UnreadCount returns how many unread notifications a recipient has. The
// count is cached briefly since clients poll it on every page load; cache
// failures fall through to the database.
func (s *NotificationService) UnreadCount(ctx context.Context, recipientType model.PartyType, recipientID int) (int, error) {
	key := config.CacheKey.UnreadCountKey(string(recipientType), recipientID)
	if cached, err := s.rdb.Get(ctx, key).Int(); err == nil {
		return cached, nil
	}

	count, err := s.notifRepo.UnreadCount(ctx, recipientType, recipientID)
	if err != nil {
		return 0, err
	}
	if err := s.rdb.Set(ctx, key, count, unreadCountTTL).Err(); err != nil {
		log.Warn().Err(err).Int("recipient_id", recipientID).Msg("Failed to cache unread count")
	}
	return count, nil
}

// MarkRead marks one notification read. Returns false when the notification
// does not exist or belongs to someone else.
func (s *NotificationService) MarkRead(ctx context.Context, id int, recipientType model.PartyType, recipientID int) (bool, error) {
	ok, err := s.notifRepo.MarkRead(ctx, id, recipientType, recipientID)
	if err == nil && ok {
		s.invalidateUnread(ctx, recipientType, recipientID)
	}
	return ok, err
}

// MarkAllRead marks every notification of a recipient read.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientType model.PartyType, recipientID int) error {
	err := s.notifRepo.MarkAllRead(ctx, recipientType, recipientID)
	if err == nil {
		s.invalidateUnread(ctx, recipientType, recipientID)
	}
	return err
}

func (s *NotificationService) invalidateUnread(ctx context.Context, recipientType model.PartyType, recipientID int) {
	key := config.CacheKey.UnreadCountKey(string(recipientType), recipientID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		log.Warn().Err(err).Int("recipient_id", recipientID).Msg("Failed to invalidate unread count")
	}
}
