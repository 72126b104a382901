package handlers

// HandlerBundle groups the endpoint handlers handed to route registration.
type HandlerBundle struct {
	Calendar *CalendarHandler
	Todo     *TodoHandler
	Horizon  *HorizonHandler
	Bookmark *BookmarkHandler
	MealPlan *MealPlanHandler
}
