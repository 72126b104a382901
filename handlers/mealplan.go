package handlers

import (
	"errors"
	"net/http"

	mealplanRepo "eventhorizon/database/repository/mealplan"
	"eventhorizon/models"
	"eventhorizon/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MealPlanHandler serves the ingredient, meal and weekly-plan endpoints.
type MealPlanHandler struct {
	Repo mealplanRepo.MealPlanRepository
}

// NewMealPlanHandler constructs a MealPlanHandler.
func NewMealPlanHandler(repo mealplanRepo.MealPlanRepository) *MealPlanHandler {
	return &MealPlanHandler{Repo: repo}
}

// GetIngredients handles GET /get-ingredients.
func (h *MealPlanHandler) GetIngredients(c *gin.Context) {
	ingredients, err := h.Repo.GetAllIngredients(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list ingredients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredients"})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// AddIngredient handles POST /add-ingredient.
func (h *MealPlanHandler) AddIngredient(c *gin.Context) {
	var in models.IngredientCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ingredient, err := h.Repo.CreateIngredient(c.Request.Context(), in)
	if err != nil {
		utils.GetLogger().Error("failed to create ingredient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient handles DELETE /delete-ingredient/:id.
func (h *MealPlanHandler) DeleteIngredient(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.DeleteIngredient(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		utils.GetLogger().Error("failed to delete ingredient", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ingredient"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully", "deleted_id": id})
}

// GetMeals handles GET /get-meals.
func (h *MealPlanHandler) GetMeals(c *gin.Context) {
	meals, err := h.Repo.GetAllMeals(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list meals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// AddMeal handles POST /add-meal.
func (h *MealPlanHandler) AddMeal(c *gin.Context) {
	var in models.MealCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := h.Repo.CreateMeal(c.Request.Context(), in)
	if err != nil {
		utils.GetLogger().Error("failed to create meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DeleteMeal handles DELETE /delete-meal/:id.
func (h *MealPlanHandler) DeleteMeal(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.DeleteMeal(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		utils.GetLogger().Error("failed to delete meal", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully", "deleted_id": id})
}

// GetWeeklyMealPlan handles GET /get-weekly-meal-plan?week_start_date=....
func (h *MealPlanHandler) GetWeeklyMealPlan(c *gin.Context) {
	week := c.Query("week_start_date")
	if week == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start_date query parameter is required"})
		return
	}
	plan, err := h.Repo.GetWeeklyPlan(c.Request.Context(), week)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No meal plan found for the given week"})
			return
		}
		utils.GetLogger().Error("failed to get weekly meal plan", zap.String("week", week), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve weekly meal plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpsertWeeklyMealPlan handles PUT /upsert-weekly-meal-plan.
func (h *MealPlanHandler) UpsertWeeklyMealPlan(c *gin.Context) {
	var in models.WeeklyMealPlanUpsert
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := h.Repo.UpsertWeeklyPlan(c.Request.Context(), in)
	if err != nil {
		utils.GetLogger().Error("failed to upsert weekly meal plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save weekly meal plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdateMealSlot handles PATCH /update-meal-slot: set a single slot,
// creating the plan when the week has none yet.
func (h *MealPlanHandler) UpdateMealSlot(c *gin.Context) {
	var in models.UpdateMealSlotRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := h.Repo.UpdateMealSlot(c.Request.Context(), in)
	if err != nil {
		utils.GetLogger().Error("failed to update meal slot", zap.String("slot", in.DayField), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal slot"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeleteWeeklyMealPlan handles DELETE /delete-weekly-meal-plan?week_start_date=....
func (h *MealPlanHandler) DeleteWeeklyMealPlan(c *gin.Context) {
	week := c.Query("week_start_date")
	if week == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start_date query parameter is required"})
		return
	}
	if err := h.Repo.DeleteWeeklyPlan(c.Request.Context(), week); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No meal plan found for the given week"})
			return
		}
		utils.GetLogger().Error("failed to delete weekly meal plan", zap.String("week", week), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete weekly meal plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weekly meal plan deleted successfully", "week_start_date": week})
}
