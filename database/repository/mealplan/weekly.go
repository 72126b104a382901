package mealplanRepo

import (
	"context"
	"time"

	"eventhorizon/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetWeeklyPlan returns the plan for a week start date, or
// mongo.ErrNoDocuments when none exists.
func (r *mongoMealPlanRepo) GetWeeklyPlan(ctx context.Context, weekStartDate string) (*models.WeeklyMealPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var plan models.WeeklyMealPlan
	if err := r.plans.FindOne(ctx, bson.M{"week_start_date": weekStartDate}).Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpsertWeeklyPlan creates or replaces the plan for a week, keeping the
// original created_at on update.
func (r *mongoMealPlanRepo) UpsertWeeklyPlan(ctx context.Context, in models.WeeklyMealPlanUpsert) (*models.WeeklyMealPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"week_start_date": in.WeekStartDate}
	update := bson.M{
		"$set": bson.M{
			"week_start_date":  in.WeekStartDate,
			"sunday_lunch":     in.SundayLunch,
			"tuesday_lunch":    in.TuesdayLunch,
			"monday_dinner":    in.MondayDinner,
			"wednesday_dinner": in.WednesdayDinner,
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.plans.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, err
	}
	return r.GetWeeklyPlan(ctx, in.WeekStartDate)
}

// UpdateMealSlot sets one slot, creating an otherwise empty plan when the
// week has none yet.
func (r *mongoMealPlanRepo) UpdateMealSlot(ctx context.Context, in models.UpdateMealSlotRequest) (*models.WeeklyMealPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"week_start_date": in.WeekStartDate}

	// The remaining slots must exist as explicit nulls when the upsert
	// inserts, so reads always see all four fields.
	setOnInsert := bson.M{"created_at": now}
	for _, slot := range []string{
		models.SlotSundayLunch,
		models.SlotTuesdayLunch,
		models.SlotMondayDinner,
		models.SlotWednesdayDinner,
	} {
		if slot != in.DayField {
			setOnInsert[slot] = nil
		}
	}

	update := bson.M{
		"$set":         bson.M{in.DayField: in.MealID, "updated_at": now},
		"$setOnInsert": setOnInsert,
	}
	if _, err := r.plans.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return nil, err
	}
	return r.GetWeeklyPlan(ctx, in.WeekStartDate)
}

// DeleteWeeklyPlan removes the plan for a week. Returns mongo.ErrNoDocuments
// when nothing matched.
func (r *mongoMealPlanRepo) DeleteWeeklyPlan(ctx context.Context, weekStartDate string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.plans.DeleteOne(ctx, bson.M{"week_start_date": weekStartDate})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
