package ports

import "context"

// SubmitFeedbackInput carries a rating submission from the transport layer.
// Rating, MealType and Status strings are validated by the service before any
// storage mutation.
type SubmitFeedbackInput struct {
	Rating      int
	Comment     string
	MealType    string
	IsAnonymous bool
}

// FeedbackService defines the feedback lifecycle use cases.
type FeedbackService interface {
	Submit(ctx context.Context, claims *TokenClaims, in SubmitFeedbackInput) (*FeedbackRecord, error)
	History(ctx context.Context, claims *TokenClaims, limit, offset int) ([]FeedbackRecord, error)
	// UpdateStatus is admin-only; the route gating happens in middleware.
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListAll(ctx context.Context, filter ListFeedbackFilter) ([]FeedbackRecord, error)
	// Export returns the full filtered set, unpaginated, for CSV download.
	Export(ctx context.Context, filter ListFeedbackFilter) ([]FeedbackRecord, error)
	Stats(ctx context.Context, filter StatsFilter) (*FeedbackStats, error)
}
