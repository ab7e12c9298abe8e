package ports

import (
	"context"
	"time"

	"github.com/messhub/feedback-system/internal/core/domain"
)

// MenuRepository reads the static weekly menu data.
type MenuRepository interface {
	// ItemsForDate returns all dishes served on the given date, ordered
	// breakfast, lunch, dinner.
	ItemsForDate(ctx context.Context, date time.Time) ([]domain.MenuItem, error)
}
