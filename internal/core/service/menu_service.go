package service

import (
	"context"
	"strings"
	"time"

	"github.com/messhub/feedback-system/internal/core/domain"
	"github.com/messhub/feedback-system/internal/core/ports"
)

const mealDateFormat = "2006-01-02"

// MenuService serves the static weekly menu for display alongside feedback.
type MenuService struct {
	repo ports.MenuRepository
}

func NewMenuService(repo ports.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) TodayMenu(ctx context.Context) (*ports.DailyMenu, error) {
	now := time.Now().UTC()
	return s.menuFor(ctx, now, strings.ToLower(now.Weekday().String()))
}

// WeekdayMenu returns the menu for the next occurrence of the named weekday,
// today included when the names match.
func (s *MenuService) WeekdayMenu(ctx context.Context, day string) (*ports.DailyMenu, error) {
	target, ok := parseWeekday(day)
	if !ok {
		return nil, domain.ErrInvalidDay
	}

	now := time.Now().UTC()
	ahead := (int(target) - int(now.Weekday()) + 7) % 7
	return s.menuFor(ctx, now.AddDate(0, 0, ahead), strings.ToLower(day))
}

// WeeklyMenu returns the next seven days of menus starting today.
func (s *MenuService) WeeklyMenu(ctx context.Context) ([]ports.DailyMenu, error) {
	now := time.Now().UTC()
	days := make([]ports.DailyMenu, 0, 7)
	for ahead := 0; ahead < 7; ahead++ {
		date := now.AddDate(0, 0, ahead)
		menu, err := s.menuFor(ctx, date, strings.ToLower(date.Weekday().String()))
		if err != nil {
			return nil, err
		}
		days = append(days, *menu)
	}
	return days, nil
}

func (s *MenuService) menuFor(ctx context.Context, date time.Time, day string) (*ports.DailyMenu, error) {
	// The storage column is a DATE; strip the time of day so the equality
	// match cannot silently miss.
	date = date.Truncate(24 * time.Hour)

	items, err := s.repo.ItemsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	meals := make(map[domain.MealType][]ports.DailyMenuDish)
	for _, item := range items {
		meals[item.MealType] = append(meals[item.MealType], ports.DailyMenuDish{
			DishName:    item.DishName,
			Description: item.Description,
		})
	}

	return &ports.DailyMenu{
		Date:  date.Format(mealDateFormat),
		Day:   day,
		Meals: meals,
	}, nil
}

func parseWeekday(day string) (time.Weekday, bool) {
	switch strings.ToLower(day) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	}
	return 0, false
}
