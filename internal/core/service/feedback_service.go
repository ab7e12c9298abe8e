package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/messhub/feedback-system/internal/core/domain"
	"github.com/messhub/feedback-system/internal/core/ports"
)

// FeedbackService implements the feedback lifecycle: submission, history,
// admin listing, status transitions, and aggregation.
type FeedbackService struct {
	repo   ports.FeedbackRepository
	logger zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, logger: logger}
}

// Submit validates and records a rating for today's meal. Anonymous
// submissions persist a nil user id so they can never be attributed.
// Repeat submissions for the same user/date/meal type are allowed.
func (s *FeedbackService) Submit(ctx context.Context, claims *ports.TokenClaims, in ports.SubmitFeedbackInput) (*ports.FeedbackRecord, error) {
	if !domain.ValidRating(in.Rating) {
		return nil, domain.ErrInvalidRating
	}
	mealType := domain.MealType(in.MealType)
	if !mealType.Valid() {
		return nil, domain.ErrInvalidMealType
	}

	var userID *int64
	if !in.IsAnonymous {
		id := claims.UserID
		userID = &id
	}

	created, err := s.repo.Insert(ctx, &domain.Feedback{
		UserID:      userID,
		Rating:      in.Rating,
		Comment:     in.Comment,
		IsAnonymous: in.IsAnonymous,
		Status:      domain.StatusPending,
		MealDate:    time.Now().UTC().Truncate(24 * time.Hour),
		MealType:    mealType,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert feedback")
		return nil, err
	}

	s.logger.Info().
		Int64("feedback_id", created.ID).
		Str("meal_type", string(mealType)).
		Int("rating", in.Rating).
		Bool("anonymous", in.IsAnonymous).
		Msg("feedback submitted")

	record := &ports.FeedbackRecord{Feedback: *created}
	if !in.IsAnonymous {
		record.Username = claims.Username
		record.Email = claims.Email
	}
	return record, nil
}

// History returns the caller's own feedback, newest first.
func (s *FeedbackService) History(ctx context.Context, claims *ports.TokenClaims, limit, offset int) ([]ports.FeedbackRecord, error) {
	limit = ports.ClampLimit(limit, ports.DefaultHistoryLimit)
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(ctx, claims.UserID, limit, offset)
}

// UpdateStatus moves a feedback entry to a new lifecycle status and
// refreshes its updated_at timestamp.
func (s *FeedbackService) UpdateStatus(ctx context.Context, id int64, status string) error {
	st := domain.FeedbackStatus(status)
	if !st.Valid() {
		return domain.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return err
	}

	s.logger.Info().Int64("feedback_id", id).Str("status", status).Msg("feedback status updated")
	return nil
}

// ListAll returns feedback matching the optional filters, newest first.
// Submitter identity is included unless the record is anonymous.
func (s *FeedbackService) ListAll(ctx context.Context, filter ports.ListFeedbackFilter) ([]ports.FeedbackRecord, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	filter.Limit = ports.ClampLimit(filter.Limit, ports.DefaultListLimit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

// Export returns the complete filtered feedback set without pagination, for
// CSV download.
func (s *FeedbackService) Export(ctx context.Context, filter ports.ListFeedbackFilter) ([]ports.FeedbackRecord, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	filter.Limit = 0
	filter.Offset = 0
	return s.repo.List(ctx, filter)
}

// Stats computes overall and per-meal-type statistics over the filtered set.
func (s *FeedbackService) Stats(ctx context.Context, filter ports.StatsFilter) (*ports.FeedbackStats, error) {
	return s.repo.Stats(ctx, filter)
}

func validateFilter(filter ports.ListFeedbackFilter) error {
	if filter.Rating != nil && !domain.ValidRating(*filter.Rating) {
		return domain.ErrInvalidRating
	}
	if filter.MealType != nil && !filter.MealType.Valid() {
		return domain.ErrInvalidMealType
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return domain.ErrInvalidStatus
	}
	return nil
}
