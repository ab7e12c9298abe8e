package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/messhub/feedback-system/internal/core/domain"
	"github.com/messhub/feedback-system/internal/core/ports"
)

const mealDateFormat = "2006-01-02"

// --- Service result → HTTP response ---

func toFeedbackResponse(rec ports.FeedbackRecord) feedbackResponse {
	return feedbackResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Rating:      rec.Rating,
		Comment:     rec.Comment,
		IsAnonymous: rec.IsAnonymous,
		Status:      string(rec.Status),
		MealDate:    rec.MealDate.Format(mealDateFormat),
		MealType:    string(rec.MealType),
		CreatedAt:   rec.CreatedAt.UTC(),
		UpdatedAt:   rec.UpdatedAt.UTC(),
		Username:    rec.Username,
		Email:       rec.Email,
		DishNames:   rec.DishNames,
	}
}

func toListResponse(records []ports.FeedbackRecord, limit, offset int) listFeedbackResponse {
	items := make([]feedbackResponse, len(records))
	for i, rec := range records {
		items[i] = toFeedbackResponse(rec)
	}
	return listFeedbackResponse{
		Feedback: items,
		Pagination: paginationResponse{
			Limit:  limit,
			Offset: offset,
			Count:  len(items),
		},
	}
}

func toStatsResponse(stats *ports.FeedbackStats) statsResponse {
	byMealType := make([]mealTypeStatsResponse, len(stats.ByMealType))
	for i, row := range stats.ByMealType {
		byMealType[i] = mealTypeStatsResponse{
			MealType:  string(row.MealType),
			Count:     row.Count,
			AvgRating: row.AvgRating,
		}
	}
	return statsResponse{
		Overall: overallStatsResponse{
			TotalFeedback:    stats.Overall.TotalFeedback,
			AvgRating:        stats.Overall.AvgRating,
			MinRating:        stats.Overall.MinRating,
			MaxRating:        stats.Overall.MaxRating,
			NegativeFeedback: stats.Overall.NegativeFeedback,
			DaysCovered:      stats.Overall.DaysCovered,
		},
		ByMealType: byMealType,
	}
}

// --- Query string → filters ---

// queryListFilter parses the optional admin filters. Enum values are passed
// through as typed pointers; the service rejects unknown members.
func queryListFilter(c echo.Context) (ports.ListFeedbackFilter, error) {
	var filter ports.ListFeedbackFilter

	var err error
	if filter.DateFrom, err = queryDate(c, "date_from"); err != nil {
		return filter, err
	}
	if filter.DateTo, err = queryDate(c, "date_to"); err != nil {
		return filter, err
	}

	if raw := c.QueryParam("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "rating must be a number")
		}
		filter.Rating = &rating
	}
	if raw := c.QueryParam("meal_type"); raw != "" {
		mealType := domain.MealType(raw)
		filter.MealType = &mealType
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := domain.FeedbackStatus(raw)
		filter.Status = &status
	}

	filter.Limit = queryInt(c, "limit", 0)
	filter.Offset = queryInt(c, "offset", 0)
	return filter, nil
}

func queryStatsFilter(c echo.Context) (ports.StatsFilter, error) {
	var filter ports.StatsFilter

	var err error
	if filter.DateFrom, err = queryDate(c, "date_from"); err != nil {
		return filter, err
	}
	if filter.DateTo, err = queryDate(c, "date_to"); err != nil {
		return filter, err
	}
	return filter, nil
}

func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(mealDateFormat, raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
