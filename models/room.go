package models

import (
	"time"
)

// RoomMetadata is the cached display record for a room hosted on the
// LiveKit server. It is written once at creation time and expires from
// the store after the retention window; the media server, not this
// record, decides whether the room is actually live.
type RoomMetadata struct {
	RoomID          string    `json:"roomId" example:"room-d0340570-f900-469c-a4a5-63eeacba83dc"`
	RoomTitle       string    `json:"roomTitle" example:"sprint planning"`
	Description     string    `json:"description" example:"3pm sprint meeting"`
	MaxParticipants int       `json:"maxParticipants" example:"10"`
	CreatedBy       string    `json:"createdBy" example:"kim"`
	CreatedAt       time.Time `json:"createdAt"`
}
