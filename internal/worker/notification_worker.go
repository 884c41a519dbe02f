package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

const (
	NotifyBatchSize    = 50
	NotifyBatchTimeout = 2 * time.Second
	NotifyPollTimeout  = 1 * time.Second // Must be >= 1s to satisfy Redis
)

// NotificationWorker consumes notify_queue, inserts notification rows in
// batches, and publishes each job on its recipient's Pub/Sub channel so
// open WebSocket streams deliver it immediately.
type NotificationWorker struct {
	repo *repository.NotificationRepository
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

func NewNotificationWorker(repo *repository.NotificationRepository, pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *NotificationWorker {
	return &NotificationWorker{
		repo: repo,
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "notification_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *NotificationWorker) Start(ctx context.Context) {
	w.log.Info().Msg("NotificationWorker started")

	batch := make([]*model.NotifyJob, 0, NotifyBatchSize)
	lastFlush := time.Now()

	for {
		// Should flush?
		if len(batch) > 0 &&
			(len(batch) >= NotifyBatchSize || time.Since(lastFlush) >= NotifyBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			w.flushSafe(shutdownCtx, batch)
			cancel()
			return

		default:
			item, err := w.rdb.BLPop(ctx, NotifyPollTimeout, config.WorkerKey.NotifyQueue).Result()
			if err != nil {
				if err == redis.Nil {
					continue // Timeout (queue empty), loop back to check flush timer
				}
				if ctx.Err() != nil {
					return
				}
				w.log.Error().Err(err).Msg("Redis connection error, sleeping 3s")
				time.Sleep(3 * time.Second)
				continue
			}

			if len(item) < 2 {
				continue
			}

			var job model.NotifyJob
			if err := json.Unmarshal([]byte(item[1]), &job); err != nil {
				// Malformed JSON cannot be retried. Log and discard.
				w.log.Error().Err(err).Str("data", item[1]).Msg("Discarding malformed JSON")
				continue
			}

			batch = append(batch, &job)
		}
	}
}

// flushSafe attempts bulk insert, then row-by-row fallback with requeue,
// then publishes whatever made it to the database.
func (w *NotificationWorker) flushSafe(ctx context.Context, batch []*model.NotifyJob) {
	if len(batch) == 0 {
		return
	}

	persisted := batch
	if err := w.repo.BulkInsert(ctx, batch); err != nil {
		w.log.Warn().Err(err).Int("count", len(batch)).Msg("Bulk insert failed, attempting row-by-row recovery")
		persisted = w.fallbackInsert(ctx, batch)
	}

	w.publish(ctx, persisted)
}

// fallbackInsert inserts jobs one by one and returns the ones that landed.
// Failed jobs go back on the queue.
func (w *NotificationWorker) fallbackInsert(ctx context.Context, batch []*model.NotifyJob) []*model.NotifyJob {
	persisted := make([]*model.NotifyJob, 0, len(batch))
	requeueList := make([]*model.NotifyJob, 0)

	for _, job := range batch {
		_, err := w.pool.Exec(ctx,
			`INSERT INTO notifications (recipient_type, recipient_id, title, body)
			 VALUES ($1, $2, $3, $4)`,
			string(job.RecipientType), job.RecipientID, job.Title, job.Body,
		)
		if err != nil {
			w.log.Error().Err(err).
				Str("recipient_type", string(job.RecipientType)).
				Int("recipient_id", job.RecipientID).
				Msg("Insert failed, requeueing")
			requeueList = append(requeueList, job)
			continue
		}
		persisted = append(persisted, job)
	}

	if len(requeueList) > 0 {
		w.requeue(ctx, requeueList)
	}
	return persisted
}

func (w *NotificationWorker) requeue(ctx context.Context, jobs []*model.NotifyJob) {
	pipe := w.rdb.Pipeline()
	for _, job := range jobs {
		data, _ := json.Marshal(job)
		pipe.RPush(ctx, config.WorkerKey.NotifyQueue, data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		w.log.Error().Err(err).Msg("CRITICAL: Failed to requeue items to Redis. Data loss occurred.")
		return
	}
	w.log.Info().Int("count", len(jobs)).Msg("Requeued failed items back to Redis")
	// Avoid thrashing if the DB is down hard.
	time.Sleep(2 * time.Second)
}

// publish pushes each persisted job on its recipient's live channel.
// Nobody subscribed is the common case and not an error.
func (w *NotificationWorker) publish(ctx context.Context, jobs []*model.NotifyJob) {
	pipe := w.rdb.Pipeline()
	for _, job := range jobs {
		data, _ := json.Marshal(job)
		channel := config.CacheKey.NotificationChannel(string(job.RecipientType), job.RecipientID)
		pipe.Publish(ctx, channel, data)
		pipe.Del(ctx, config.CacheKey.UnreadCountKey(string(job.RecipientType), job.RecipientID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		w.log.Error().Err(err).Msg("Publish pipeline error")
	}
}
