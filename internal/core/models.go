package core

import "time"

type EventType string

const (
	EventSearchSaved     EventType = "search.saved"
	EventReportAnalyzing EventType = "report.analyzing"
	EventReportReady     EventType = "report.ready"
	EventSearchExpired   EventType = "search.expired"
)

// Search is the last name a browser session asked about. It is the only
// state the service keeps; reports are regenerated on every request.
type Search struct {
	SessionID string    `json:"session_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	Name      string    `json:"name,omitempty"`
	Report    string    `json:"report,omitempty"`
	Fallback  bool      `json:"fallback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
