package websocket

type EventType string

const (
	EventAuthState EventType = "auth.state"

	EventDashboardUpdate EventType = "dashboard.update"
	EventDashboardError  EventType = "dashboard.error"

	EventUploadStatus EventType = "upload.status"

	EventError EventType = "error"
)

// CommandType names a message sent by the client.
type CommandType string

const (
	CommandDashboardSubscribe   CommandType = "dashboard.subscribe"
	CommandDashboardUnsubscribe CommandType = "dashboard.unsubscribe"
)

type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
	Meta    *EventMeta  `json:"meta,omitempty"`
}

type EventMeta struct {
	Timestamp int64 `json:"timestamp"`
}

type Command struct {
	Type CommandType `json:"type"`
}

type ErrorPayload struct {
	Message   string `json:"message"`
	Kind      string `json:"kind,omitempty"`
	Retryable bool   `json:"retryable"`
}
