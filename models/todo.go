package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Todo is a short-lived action item. Urgency and priority are independent
// axes, each either "high" or "low".
type Todo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Urgency   string             `bson:"urgency" json:"urgency"`
	Priority  string             `bson:"priority" json:"priority"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// TodoCreate defines the payload for adding a todo.
type TodoCreate struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Urgency  string `json:"urgency" binding:"required,oneof=high low"`
	Priority string `json:"priority" binding:"required,oneof=high low"`
}

// TodoUpdate carries the fields of a partial update; nil means leave as is.
type TodoUpdate struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Urgency  *string `json:"urgency,omitempty" binding:"omitempty,oneof=high low"`
	Priority *string `json:"priority,omitempty" binding:"omitempty,oneof=high low"`
}
