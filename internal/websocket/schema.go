package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing     Action = "ping"
	ActionMarkRead Action = "mark_read"
)

// RequestPayload carries every client action; unused fields stay zero.
type RequestPayload struct {
	Action         Action `json:"action"`
	NotificationID int    `json:"notification_id,omitempty"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError        Event = "error"
	EventNotification Event = "notification"
	EventUnreadCount  Event = "unread_count"
	EventPong         Event = "pong"
)

// NotificationEvent pushes a freshly created notification to the client.
type NotificationEvent struct {
	Event Event  `json:"event"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UnreadCountEvent pushes the recipient's current unread total.
type UnreadCountEvent struct {
	Event Event `json:"event"`
	Count int   `json:"count"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
