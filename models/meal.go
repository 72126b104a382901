package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal slot field names in a weekly plan. The week covers exactly these four
// cooked meals; the remaining days are leftovers or eating out.
const (
	SlotSundayLunch     = "sunday_lunch"
	SlotTuesdayLunch    = "tuesday_lunch"
	SlotMondayDinner    = "monday_dinner"
	SlotWednesdayDinner = "wednesday_dinner"
)

// Ingredient is a pantry item used to assemble meals.
type Ingredient struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Quantity  float64            `bson:"quantity" json:"quantity"`
	Unit      string             `bson:"unit" json:"unit"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// IngredientCreate defines the payload for adding an ingredient.
type IngredientCreate struct {
	Name     string  `json:"name" binding:"required,min=1,max=200"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required,max=50"`
}

// Meal is a named dish referencing the ingredient ids it needs.
type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Ingredients []string           `bson:"ingredients" json:"ingredients"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// MealCreate defines the payload for adding a meal.
type MealCreate struct {
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	Ingredients []string `json:"ingredients"`
}

// WeeklyMealPlan assigns meals to the week's four slots. A nil slot means
// nothing planned. Plans are keyed by week_start_date, one per week.
type WeeklyMealPlan struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WeekStartDate   string             `bson:"week_start_date" json:"week_start_date"` // YYYY-MM-DD
	SundayLunch     *string            `bson:"sunday_lunch" json:"sunday_lunch"`
	TuesdayLunch    *string            `bson:"tuesday_lunch" json:"tuesday_lunch"`
	MondayDinner    *string            `bson:"monday_dinner" json:"monday_dinner"`
	WednesdayDinner *string            `bson:"wednesday_dinner" json:"wednesday_dinner"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// WeeklyMealPlanUpsert defines the payload for creating or replacing a plan.
type WeeklyMealPlanUpsert struct {
	WeekStartDate   string  `json:"week_start_date" binding:"required"`
	SundayLunch     *string `json:"sunday_lunch"`
	TuesdayLunch    *string `json:"tuesday_lunch"`
	MondayDinner    *string `json:"monday_dinner"`
	WednesdayDinner *string `json:"wednesday_dinner"`
}

// UpdateMealSlotRequest sets a single slot, creating the plan when absent.
// A nil MealID clears the slot.
type UpdateMealSlotRequest struct {
	WeekStartDate string  `json:"week_start_date" binding:"required"`
	DayField      string  `json:"day_field" binding:"required,oneof=sunday_lunch tuesday_lunch monday_dinner wednesday_dinner"`
	MealID        *string `json:"meal_id"`
}
