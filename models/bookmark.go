package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookmarkedEvent is a calendar event pinned for later reference. Time keeps
// whatever display string the caller saved (e.g. "2:30 PM - 3:30 PM").
type BookmarkedEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date       string             `bson:"date" json:"date"` // YYYY-MM-DD
	Time       string             `bson:"time" json:"time"`
	EventTitle string             `bson:"event_title" json:"event_title"`
	Duration   int                `bson:"duration" json:"duration"` // minutes
	Attendees  []string           `bson:"attendees" json:"attendees"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// BookmarkEventCreate defines the payload for pinning an event.
type BookmarkEventCreate struct {
	Date       string   `json:"date" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	EventTitle string   `json:"event_title" binding:"required,min=1,max=500"`
	Duration   int      `json:"duration" binding:"required,gt=0"`
	Attendees  []string `json:"attendees"`
}
