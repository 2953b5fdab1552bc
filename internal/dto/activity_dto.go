package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityMessage is published on the in-process activity bus whenever a
// notebook or document changes, and consumed by the activity log worker.
type ActivityMessage struct {
	Event      string    `json:"event"`
	UserId     uuid.UUID `json:"user_id"`
	ResourceId uuid.UUID `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
