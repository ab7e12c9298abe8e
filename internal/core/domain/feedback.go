package domain

import (
	"errors"
	"time"
)

// MealType identifies which meal of the day a feedback entry concerns.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealTypes lists the valid meal types in serving order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

// Valid reports whether m is one of the enumerated meal types. Matching is
// case-sensitive.
func (m MealType) Valid() bool {
	return m == MealBreakfast || m == MealLunch || m == MealDinner
}

// FeedbackStatus represents the lifecycle state of a feedback entry.
type FeedbackStatus string

const (
	StatusPending    FeedbackStatus = "pending"
	StatusProcessing FeedbackStatus = "processing"
	StatusResolved   FeedbackStatus = "resolved"
)

// Valid reports whether s is one of the enumerated statuses.
func (s FeedbackStatus) Valid() bool {
	return s == StatusPending || s == StatusProcessing || s == StatusResolved
}

// Ratings below or equal to this threshold count as negative in statistics.
const NegativeRatingThreshold = 2

var ErrInvalidRating = errors.New("rating must be between 1 and 5")
var ErrInvalidMealType = errors.New("meal type must be breakfast, lunch, or dinner")
var ErrInvalidStatus = errors.New("status must be pending, processing, or resolved")
var ErrFeedbackNotFound = errors.New("feedback not found")
var ErrForbidden = errors.New("access forbidden")
var ErrStorageUnavailable = errors.New("storage unavailable")

// ValidRating reports whether r lies in the accepted [1,5] range.
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}

// Feedback is a single meal rating event. UserID is nil for anonymous
// submissions so the record can never be attributed, even by admins.
// Multiple entries per user/date/meal type are allowed.
type Feedback struct {
	ID          int64          `json:"id"`
	UserID      *int64         `json:"user_id,omitempty"`
	Rating      int            `json:"rating"`
	Comment     string         `json:"comment,omitempty"`
	IsAnonymous bool           `json:"is_anonymous"`
	Status      FeedbackStatus `json:"status"`
	MealDate    time.Time      `json:"meal_date"`
	MealType    MealType       `json:"meal_type"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
