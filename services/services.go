package services

// Services groups every service built on one record store; the HTTP router
// and the Telegram bot share a single instance.
type Services struct {
	Meals     *MealService
	Daily     *DailyService
	Goals     *GoalService
	Habits    *HabitService
	Analytics *AnalyticsService
}

func New(store *RecordStore, mealDays, dailyDays int) *Services {
	goals := NewGoalService(store)
	return &Services{
		Meals:     NewMealService(store, mealDays),
		Daily:     NewDailyService(store, dailyDays),
		Goals:     goals,
		Habits:    NewHabitService(store, dailyDays),
		Analytics: NewAnalyticsService(store, goals, mealDays, dailyDays),
	}
}
