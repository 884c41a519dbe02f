package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/service"
	ws "github.com/campushq/campuscore-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams live notifications to connected students.
type WSHandler struct {
	rdb                 *redis.Client
	notificationService *service.NotificationService
	log                 zerolog.Logger
	upgrader            websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, notificationService *service.NotificationService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:                 rdb,
		notificationService: notificationService,
		log:                 log.With().Str("component", "ws_handler").Logger(),
		upgrader:            buildUpgrader(allowedOrigins),
	}
}

// NotificationStream godoc
// WS /ws/v1/student/notifications?token=...
// Upgrades to WebSocket and pushes notifications published for this student
// on Redis Pub/Sub as they arrive.
func (h *WSHandler) NotificationStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	conn := ws.NewConn(raw)
	defer conn.Close()

	studentID := claims.UserID
	wsLog := h.log.With().Int("student_id", studentID).Logger()
	wsLog.Info().Msg("Student connected")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	channel := config.CacheKey.NotificationChannel(string(model.PartyStudent), studentID)
	sub := h.rdb.Subscribe(ctx, channel)
	defer sub.Close()

	// Forward published notifications until the subscription or the
	// connection dies. The conn wrapper serializes these writes against
	// the request loop's replies.
	go func() {
		for msg := range sub.Channel() {
			var job model.NotifyJob
			if err := json.Unmarshal([]byte(msg.Payload), &job); err != nil {
				wsLog.Warn().Err(err).Msg("Bad notification payload")
				continue
			}
			if err := conn.WriteTyped(ws.NotificationEvent{
				Event: ws.EventNotification,
				Title: job.Title,
				Body:  job.Body,
			}); err != nil {
				cancel()
				return
			}
		}
	}()

	for {
		var msg ws.RequestPayload
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		switch msg.Action {
		case ws.ActionPing:
			h.handlePing(ctx, conn, studentID)
		case ws.ActionMarkRead:
			h.handleMarkRead(ctx, conn, studentID, msg.NotificationID)
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			conn.WriteError("unknown action: " + string(msg.Action))
		}
	}
}

// handleMarkRead marks one notification read and pushes the new unread total.
func (h *WSHandler) handleMarkRead(ctx context.Context, conn *ws.Conn, studentID, notificationID int) {
	ok, err := h.notificationService.MarkRead(ctx, notificationID, model.PartyStudent, studentID)
	if err != nil || !ok {
		conn.WriteError("mark read failed")
		return
	}
	h.handlePing(ctx, conn, studentID)
}

// handlePing answers a keepalive and piggybacks the unread total.
func (h *WSHandler) handlePing(ctx context.Context, conn *ws.Conn, studentID int) {
	count, err := h.notificationService.UnreadCount(ctx, model.PartyStudent, studentID)
	if err != nil {
		_ = conn.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		return
	}
	_ = conn.WriteTyped(ws.UnreadCountEvent{Event: ws.EventUnreadCount, Count: count})
}
