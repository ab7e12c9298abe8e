package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/messhub/feedback-system/internal/core/domain"
)

// MenuRepository implements ports.MenuRepository on PostgreSQL.
type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) ItemsForDate(ctx context.Context, date time.Time) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT meal_type, dish_name, COALESCE(description, '')
		FROM menu
		WHERE meal_date = $1::date
		ORDER BY CASE meal_type
			WHEN 'breakfast' THEN 1
			WHEN 'lunch' THEN 2
			ELSE 3
		END, dish_name`, date)
	if err != nil {
		return nil, storageErr(fmt.Errorf("list menu: %w", err))
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var (
			item     domain.MenuItem
			mealType string
		)
		if err := rows.Scan(&mealType, &item.DishName, &item.Description); err != nil {
			return nil, storageErr(fmt.Errorf("scan menu item: %w", err))
		}
		item.MealType = domain.MealType(mealType)
		items = append(items, item)
	}
	return items, storageErr(rows.Err())
}
