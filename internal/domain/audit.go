package domain

import "time"

// StreamAuditLog - стрим событий аудита
const StreamAuditLog = "stream:audit:log"

// AuditEvent - событие аудита, публикуемое в Redis Stream
type AuditEvent struct {
	UserID  *int64                 `json:"user_id,omitempty"`
	Action  string                 `json:"action"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// AuditRecord - сохранённая запись журнала аудита
type AuditRecord struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"user_id" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Details   string    `json:"details" db:"details"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
