package ports

import (
	"context"
	"time"

	"github.com/messhub/feedback-system/internal/core/domain"
)

// Pagination bounds shared by the service and the transport layer, so the
// limit echoed in responses always matches the limit actually applied.
const (
	DefaultHistoryLimit = 10
	DefaultListLimit    = 50
	MaxPageLimit        = 100
)

// ClampLimit normalises a requested page size: fallback when unset or
// non-positive, capped at MaxPageLimit.
func ClampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

// ListFeedbackFilter carries the optional, AND-combined filters for the admin
// listing and export. Nil fields are not applied.
type ListFeedbackFilter struct {
	DateFrom *time.Time             // meal_date >= DateFrom
	DateTo   *time.Time             // meal_date <= DateTo
	Rating   *int                   // rating == Rating
	MealType *domain.MealType       // meal_type == MealType
	Status   *domain.FeedbackStatus // status == Status
	Limit    int                    // 0 = no limit (export)
	Offset   int
}

// StatsFilter narrows statistics to an optional meal-date range.
type StatsFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
}

// FeedbackRecord is a feedback row joined with its submitter identity (empty
// for anonymous rows) and a summary of that day's menu dishes.
type FeedbackRecord struct {
	domain.Feedback
	Username  string
	Email     string
	DishNames string
}

// OverallStats summarises the filtered feedback set. AvgRating is nil when
// the set is empty so dashboards can distinguish "no data" from "rated zero".
type OverallStats struct {
	TotalFeedback    int64
	AvgRating        *float64
	MinRating        *int
	MaxRating        *int
	NegativeFeedback int64
	DaysCovered      int64
}

// MealTypeStats is the per-meal-type breakdown; only meal types present in
// the filtered set appear.
type MealTypeStats struct {
	MealType  domain.MealType
	Count     int64
	AvgRating float64
}

// FeedbackStats bundles the two aggregation views.
type FeedbackStats struct {
	Overall    OverallStats
	ByMealType []MealTypeStats
}

// FeedbackRepository defines persistence operations for feedback entries.
type FeedbackRepository interface {
	Insert(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	// ListByUser returns the user's own feedback, newest first. Anonymous
	// rows carry no user id and therefore never appear here.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]FeedbackRecord, error)
	// List returns feedback matching filter, newest first.
	List(ctx context.Context, filter ListFeedbackFilter) ([]FeedbackRecord, error)
	// UpdateStatus sets the status and refreshes updated_at. Returns
	// domain.ErrFeedbackNotFound when no row matches.
	UpdateStatus(ctx context.Context, id int64, status domain.FeedbackStatus) error
	Stats(ctx context.Context, filter StatsFilter) (*FeedbackStats, error)
}
