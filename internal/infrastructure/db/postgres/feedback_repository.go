package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/messhub/feedback-system/internal/core/domain"
	"github.com/messhub/feedback-system/internal/core/ports"
)

// FeedbackRepository implements ports.FeedbackRepository on PostgreSQL.
type FeedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// selectFeedback joins the submitter (absent for anonymous rows) and a
// comma-separated summary of that day's menu dishes. Grouping by the two
// primary keys keeps string_agg happy.
const selectFeedback = `
	SELECT f.id, f.user_id, f.rating, f.comment, f.is_anonymous, f.status,
	       f.meal_date, f.meal_type, f.created_at, f.updated_at,
	       COALESCE(u.username, ''), COALESCE(u.email, ''),
	       COALESCE(string_agg(m.dish_name, ', '), '')
	FROM feedback f
	LEFT JOIN users u ON u.id = f.user_id
	LEFT JOIN menu m ON m.meal_date = f.meal_date AND m.meal_type = f.meal_type`

const groupFeedback = ` GROUP BY f.id, u.id ORDER BY f.created_at DESC`

func (r *FeedbackRepository) Insert(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	created := *f
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO feedback (user_id, rating, comment, is_anonymous, status, meal_date, meal_type)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6::date, $7)
		RETURNING id, meal_date, created_at, updated_at`,
		f.UserID, f.Rating, f.Comment, f.IsAnonymous, string(f.Status), f.MealDate, string(f.MealType),
	).Scan(&created.ID, &created.MealDate, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, storageErr(fmt.Errorf("insert feedback: %w", err))
	}
	return &created, nil
}

func (r *FeedbackRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]ports.FeedbackRecord, error) {
	b := &whereBuilder{}
	b.add("f.user_id", "=", userID)
	query := selectFeedback + b.clause() + groupFeedback +
		" LIMIT " + b.bind(limit) + " OFFSET " + b.bind(offset)
	return r.queryRecords(ctx, query, b.args)
}

func (r *FeedbackRepository) List(ctx context.Context, filter ports.ListFeedbackFilter) ([]ports.FeedbackRecord, error) {
	b := feedbackWhere(filter.DateFrom, filter.DateTo)
	if filter.Rating != nil {
		b.add("f.rating", "=", *filter.Rating)
	}
	if filter.MealType != nil {
		b.add("f.meal_type", "=", string(*filter.MealType))
	}
	if filter.Status != nil {
		b.add("f.status", "=", string(*filter.Status))
	}

	query := selectFeedback + b.clause() + groupFeedback
	if filter.Limit > 0 {
		query += " LIMIT " + b.bind(filter.Limit) + " OFFSET " + b.bind(filter.Offset)
	}
	return r.queryRecords(ctx, query, b.args)
}

func (r *FeedbackRepository) UpdateStatus(ctx context.Context, id int64, status domain.FeedbackStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE feedback SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), id)
	if err != nil {
		return storageErr(fmt.Errorf("update feedback status: %w", err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr(err)
	}
	if affected == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepository) Stats(ctx context.Context, filter ports.StatsFilter) (*ports.FeedbackStats, error) {
	b := feedbackWhere(filter.DateFrom, filter.DateTo)

	var (
		overall   ports.OverallStats
		avgRating sql.NullFloat64
		minRating sql.NullInt64
		maxRating sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT COUNT(*),
		       AVG(f.rating::float),
		       MIN(f.rating),
		       MAX(f.rating),
		       COUNT(*) FILTER (WHERE f.rating <= %d),
		       COUNT(DISTINCT f.meal_date)
		FROM feedback f%s`, domain.NegativeRatingThreshold, b.clause()), b.args...,
	).Scan(&overall.TotalFeedback, &avgRating, &minRating, &maxRating,
		&overall.NegativeFeedback, &overall.DaysCovered)
	if err != nil {
		return nil, storageErr(fmt.Errorf("feedback stats: %w", err))
	}

	applyRatingAggregates(&overall, avgRating, minRating, maxRating)

	rows, err := r.db.QueryContext(ctx, `
		SELECT f.meal_type, COUNT(*), AVG(f.rating::float)
		FROM feedback f`+b.clause()+`
		GROUP BY f.meal_type
		ORDER BY f.meal_type`, b.args...)
	if err != nil {
		return nil, storageErr(fmt.Errorf("meal type stats: %w", err))
	}
	defer rows.Close()

	stats := &ports.FeedbackStats{Overall: overall}
	for rows.Next() {
		var (
			mealType string
			row      ports.MealTypeStats
		)
		if err := rows.Scan(&mealType, &row.Count, &row.AvgRating); err != nil {
			return nil, storageErr(err)
		}
		row.MealType = domain.MealType(mealType)
		stats.ByMealType = append(stats.ByMealType, row)
	}
	return stats, storageErr(rows.Err())
}

// applyRatingAggregates maps the nullable aggregate columns onto the stats
// struct. AVG/MIN/MAX are NULL over an empty set and must surface as absent
// values, never as a zero rating.
func applyRatingAggregates(overall *ports.OverallStats, avg sql.NullFloat64, lowest, highest sql.NullInt64) {
	if avg.Valid {
		overall.AvgRating = &avg.Float64
	}
	if lowest.Valid {
		v := int(lowest.Int64)
		overall.MinRating = &v
	}
	if highest.Valid {
		v := int(highest.Int64)
		overall.MaxRating = &v
	}
}

// feedbackWhere starts a builder with the optional meal-date range shared by
// listing, export, and statistics.
func feedbackWhere(dateFrom, dateTo *time.Time) *whereBuilder {
	b := &whereBuilder{}
	if dateFrom != nil {
		b.add("f.meal_date", ">=", *dateFrom)
	}
	if dateTo != nil {
		b.add("f.meal_date", "<=", *dateTo)
	}
	return b
}

func (r *FeedbackRepository) queryRecords(ctx context.Context, query string, args []any) ([]ports.FeedbackRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(fmt.Errorf("list feedback: %w", err))
	}
	defer rows.Close()

	records := make([]ports.FeedbackRecord, 0)
	for rows.Next() {
		var (
			rec      ports.FeedbackRecord
			userID   sql.NullInt64
			comment  sql.NullString
			status   string
			mealType string
		)
		err := rows.Scan(&rec.ID, &userID, &rec.Rating, &comment, &rec.IsAnonymous, &status,
			&rec.MealDate, &mealType, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.Username, &rec.Email, &rec.DishNames)
		if err != nil {
			return nil, storageErr(fmt.Errorf("scan feedback: %w", err))
		}

		if userID.Valid {
			id := userID.Int64
			rec.UserID = &id
		}
		rec.Comment = comment.String
		rec.Status = domain.FeedbackStatus(status)
		rec.MealType = domain.MealType(mealType)
		records = append(records, rec)
	}
	return records, storageErr(rows.Err())
}
