package routes

import (
	"time"

	"eventhorizon/config"
	"eventhorizon/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCalendarRoutes registers the Google Calendar proxy endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Calendar.Index)
	r.GET("/health", hb.Calendar.Health)
	r.GET("/excluded-titles", hb.Calendar.GetExcludedTitles)
	r.GET("/get-events", hb.Calendar.GetEvents)
	r.GET("/get-holidays", hb.Calendar.GetHolidays)
	r.GET("/get-free-blocks", hb.Calendar.GetFreeBlocks)
	r.GET("/get-calendar-insights", hb.Calendar.GetInsights)
}

// RegisterTodoRoutes registers the todo CRUD endpoints.
func RegisterTodoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/get-todos", hb.Todo.GetTodos)
	r.GET("/get-todos/:id", hb.Todo.GetTodoByID)
	r.POST("/add-todos", hb.Todo.AddTodo)
	r.PUT("/update-todo/:id", hb.Todo.UpdateTodo)
	r.DELETE("/delete-todo/:id", hb.Todo.DeleteTodo)
	r.DELETE("/delete-todo-by-title", hb.Todo.DeleteTodoByTitle)
}

// RegisterHorizonRoutes registers the horizon endpoints.
func RegisterHorizonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/get-horizon", hb.Horizon.GetHorizons)
	r.GET("/get-horizon/:id", hb.Horizon.GetHorizonByID)
	r.GET("/search-horizon", hb.Horizon.SearchHorizons)
	r.POST("/add-horizon", hb.Horizon.AddHorizon)
	r.PUT("/update-horizon/:id", hb.Horizon.UpdateHorizon)
	r.PUT("/edit-horizon", hb.Horizon.EditHorizon)
	r.DELETE("/delete-horizon/:id", hb.Horizon.DeleteHorizon)
	r.DELETE("/delete-horizon-by-title", hb.Horizon.DeleteHorizonByTitle)
}

// RegisterBookmarkRoutes registers the bookmarked-event endpoints.
func RegisterBookmarkRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/get-bookmark-events", hb.Bookmark.GetBookmarkEvents)
	r.GET("/get-bookmark-event/:id", hb.Bookmark.GetBookmarkEventByID)
	r.POST("/add-bookmark-event", hb.Bookmark.AddBookmarkEvent)
	r.DELETE("/delete-bookmark-event/:id", hb.Bookmark.DeleteBookmarkEvent)
	r.DELETE("/delete-bookmark-event-by-title", hb.Bookmark.DeleteBookmarkEventByTitle)
}

// RegisterMealPlanRoutes registers the ingredient, meal and weekly-plan
// endpoints.
func RegisterMealPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/get-ingredients", hb.MealPlan.GetIngredients)
	r.POST("/add-ingredient", hb.MealPlan.AddIngredient)
	r.DELETE("/delete-ingredient/:id", hb.MealPlan.DeleteIngredient)

	r.GET("/get-meals", hb.MealPlan.GetMeals)
	r.POST("/add-meal", hb.MealPlan.AddMeal)
	r.DELETE("/delete-meal/:id", hb.MealPlan.DeleteMeal)

	r.GET("/get-weekly-meal-plan", hb.MealPlan.GetWeeklyMealPlan)
	r.PUT("/upsert-weekly-meal-plan", hb.MealPlan.UpsertWeeklyMealPlan)
	r.PATCH("/update-meal-slot", hb.MealPlan.UpdateMealSlot)
	r.DELETE("/delete-weekly-meal-plan", hb.MealPlan.DeleteWeeklyMealPlan)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// Paths stay flat (no /api prefix): they are the contract the existing web
// client consumes.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCalendarRoutes(r, hb)
	RegisterTodoRoutes(r, hb)
	RegisterHorizonRoutes(r, hb)
	RegisterBookmarkRoutes(r, hb)
	RegisterMealPlanRoutes(r, hb)
}
