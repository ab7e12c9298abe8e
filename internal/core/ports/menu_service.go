package ports

import (
	"context"

	"github.com/messhub/feedback-system/internal/core/domain"
)

// DailyMenu groups a day's dishes by meal type.
type DailyMenu struct {
	Date  string                              `json:"date"`
	Day   string                              `json:"day,omitempty"`
	Meals map[domain.MealType][]DailyMenuDish `json:"meals"`
}

// DailyMenuDish is a single dish entry in a daily menu.
type DailyMenuDish struct {
	DishName    string `json:"dish_name"`
	Description string `json:"description,omitempty"`
}

// MenuService exposes the menu display use cases.
type MenuService interface {
	TodayMenu(ctx context.Context) (*DailyMenu, error)
	// WeekdayMenu resolves the next occurrence of the named weekday (today
	// when it matches) and returns that day's menu. Unknown day names yield
	// domain.ErrInvalidDay.
	WeekdayMenu(ctx context.Context, day string) (*DailyMenu, error)
	// WeeklyMenu returns the next seven days of menus, today first.
	WeeklyMenu(ctx context.Context) ([]DailyMenu, error)
}
