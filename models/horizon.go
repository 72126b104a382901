package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HorizonItem is a long-range item parked on the horizon list: ideas, plans
// and anything without a near-term deadline. HorizonDate is optional and
// stored as a plain "YYYY-MM-DD" string when present.
type HorizonItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Details     string             `bson:"details" json:"details"`
	Type        string             `bson:"type" json:"type"`
	HorizonDate *string            `bson:"horizon_date,omitempty" json:"horizon_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// HorizonCreate defines the payload for adding a horizon item. Type defaults
// to "none" when omitted.
type HorizonCreate struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Details     string  `json:"details" binding:"required,min=1,max=2000"`
	Type        string  `json:"type" binding:"omitempty,max=100"`
	HorizonDate *string `json:"horizon_date"`
}

// HorizonUpdate carries the fields of a partial update; nil means leave as is.
type HorizonUpdate struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Details     *string `json:"details,omitempty" binding:"omitempty,min=1,max=2000"`
	Type        *string `json:"type,omitempty" binding:"omitempty,max=100"`
	HorizonDate *string `json:"horizon_date,omitempty"`
}

// HorizonEdit updates horizon items matched by their current field values.
// At least one existing_* field and one new_* field must be set.
type HorizonEdit struct {
	ExistingTitle       *string `json:"existing_title,omitempty"`
	ExistingDetails     *string `json:"existing_details,omitempty"`
	ExistingType        *string `json:"existing_type,omitempty"`
	ExistingHorizonDate *string `json:"existing_horizon_date,omitempty"`

	NewTitle       *string `json:"new_title,omitempty" binding:"omitempty,min=1,max=200"`
	NewDetails     *string `json:"new_details,omitempty" binding:"omitempty,min=1,max=2000"`
	NewType        *string `json:"new_type,omitempty" binding:"omitempty,max=100"`
	NewHorizonDate *string `json:"new_horizon_date,omitempty"`
}

// Criteria returns the non-nil existing_* fields keyed by document field name.
func (e HorizonEdit) Criteria() map[string]string {
	out := map[string]string{}
	if e.ExistingTitle != nil {
		out["title"] = *e.ExistingTitle
	}
	if e.ExistingDetails != nil {
		out["details"] = *e.ExistingDetails
	}
	if e.ExistingType != nil {
		out["type"] = *e.ExistingType
	}
	if e.ExistingHorizonDate != nil {
		out["horizon_date"] = *e.ExistingHorizonDate
	}
	return out
}

// Updates returns the non-nil new_* fields keyed by document field name.
func (e HorizonEdit) Updates() map[string]string {
	out := map[string]string{}
	if e.NewTitle != nil {
		out["title"] = *e.NewTitle
	}
	if e.NewDetails != nil {
		out["details"] = *e.NewDetails
	}
	if e.NewType != nil {
		out["type"] = *e.NewType
	}
	if e.NewHorizonDate != nil {
		out["horizon_date"] = *e.NewHorizonDate
	}
	return out
}
