package handler

import "time"

type submitFeedbackRequest struct {
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	MealType    string `json:"meal_type"`
	IsAnonymous bool   `json:"is_anonymous"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// feedbackResponse is the transport view of a feedback record. Submitter
// identity fields are present only for non-anonymous rows; meal_date is
// rendered as a plain date.
type feedbackResponse struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	IsAnonymous bool      `json:"is_anonymous"`
	Status      string    `json:"status"`
	MealDate    string    `json:"meal_date"`
	MealType    string    `json:"meal_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Username    string    `json:"username,omitempty"`
	Email       string    `json:"email,omitempty"`
	DishNames   string    `json:"dish_names,omitempty"`
}

type submitFeedbackResponse struct {
	Message  string           `json:"message"`
	Feedback feedbackResponse `json:"feedback"`
}

type paginationResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

type listFeedbackResponse struct {
	Feedback   []feedbackResponse `json:"feedback"`
	Pagination paginationResponse `json:"pagination"`
}

type overallStatsResponse struct {
	TotalFeedback    int64    `json:"total_feedback"`
	AvgRating        *float64 `json:"avg_rating"`
	MinRating        *int     `json:"min_rating"`
	MaxRating        *int     `json:"max_rating"`
	NegativeFeedback int64    `json:"negative_feedback"`
	DaysCovered      int64    `json:"days_covered"`
}

type mealTypeStatsResponse struct {
	MealType  string  `json:"meal_type"`
	Count     int64   `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

type statsResponse struct {
	Overall    overallStatsResponse    `json:"overall"`
	ByMealType []mealTypeStatsResponse `json:"by_meal_type"`
}

type statusUpdatedResponse struct {
	Message string `json:"message"`
}
