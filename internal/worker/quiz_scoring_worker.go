package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
)

const (
	ScoreBatchSize    = 50
	ScoreBatchTimeout = 2 * time.Second
	ScorePollTimeout  = 1 * time.Second
)

// QuizScoringWorker consumes quiz_scores_queue and persists the scores that
// were already computed and returned at submission time.
type QuizScoringWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

func NewQuizScoringWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *QuizScoringWorker {
	return &QuizScoringWorker{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "quiz_scoring_worker").Logger(),
	}
}

func (w *QuizScoringWorker) Start(ctx context.Context) {
	w.log.Info().Msg("QuizScoringWorker started")

	batch := make([]*model.ScoreJob, 0, ScoreBatchSize)
	lastFlush := time.Now()

	for {
		// Should flush?
		if len(batch) > 0 &&
			(len(batch) >= ScoreBatchSize || time.Since(lastFlush) >= ScoreBatchTimeout) {

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
			item, err := w.rdb.BLPop(ctx, ScorePollTimeout, config.WorkerKey.QuizScoresQueue).Result()
			if err != nil {
				if err == redis.Nil {
					continue
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

			var job model.ScoreJob
			if err := json.Unmarshal([]byte(item[1]), &job); err != nil {
				w.log.Error().Err(err).Str("data", item[1]).Msg("Discarding malformed JSON")
				continue
			}

			batch = append(batch, &job)
		}
	}
}

func (w *QuizScoringWorker) flushSafe(ctx context.Context, batch []*model.ScoreJob) {
	if len(batch) == 0 {
		return
	}

	if err := w.bulkUpdateScores(ctx, batch); err != nil {
		w.log.Warn().Err(err).Msg("bulk score update failed, using fallback")

		for _, job := range batch {
			if err := w.persistSingle(ctx, job); err != nil {
				w.log.Error().Err(err).
					Str("attempt_id", job.AttemptID.String()).
					Msg("persistSingle failed, requeueing")
				raw, _ := json.Marshal(job)
				w.rdb.RPush(ctx, config.WorkerKey.QuizScoresQueue, raw)
			}
		}
	}
}

// bulkUpdateScores writes the whole batch with a single UNNEST update.
func (w *QuizScoringWorker) bulkUpdateScores(ctx context.Context, batch []*model.ScoreJob) error {
	n := len(batch)

	attemptIDs := make([]uuid.UUID, 0, n)
	scores := make([]float64, 0, n)
	for _, job := range batch {
		attemptIDs = append(attemptIDs, job.AttemptID)
		scores = append(scores, job.Score)
	}

	query := `
		UPDATE quiz_attempts AS a
		SET score = t.score
		FROM (
			SELECT u.attempt_id, u.score
			FROM UNNEST($1::uuid[], $2::float8[]) AS u (attempt_id, score)
		) AS t
		WHERE a.id = t.attempt_id
	`

	_, err := w.pool.Exec(ctx, query, attemptIDs, scores)
	return err
}

func (w *QuizScoringWorker) persistSingle(ctx context.Context, job *model.ScoreJob) error {
	_, err := w.pool.Exec(ctx,
		`UPDATE quiz_attempts
		 SET score = $1
		 WHERE id = $2`,
		job.Score, job.AttemptID,
	)
	return err
}
