package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPlanetCreated EventType = "planet_created"
	EventPlanetUpdated EventType = "planet_updated"
	EventPlanetDeleted EventType = "planet_deleted"
	EventUserLoggedIn  EventType = "user_logged_in"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	PlanetID  int64       `json:"planet_id,omitempty"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PlanetCreatedPayload payload.
type PlanetCreatedPayload struct {
	Name       string `json:"name"`
	PlanetType string `json:"planet_type"`
}

// PlanetUpdatedPayload payload.
type PlanetUpdatedPayload struct {
	Name          string   `json:"name"`
	ChangedFields []string `json:"changed_fields"`
}

// PlanetDeletedPayload payload.
type PlanetDeletedPayload struct {
	Name string `json:"name"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	Username string `json:"username"`
}
