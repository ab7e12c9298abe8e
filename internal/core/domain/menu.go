package domain

import "errors"

var ErrInvalidDay = errors.New("invalid day, use: sunday, monday, tuesday, wednesday, thursday, friday, saturday")

// MenuItem is a single dish served at a given meal on a given date.
type MenuItem struct {
	MealType    MealType `json:"meal_type"`
	DishName    string   `json:"dish_name"`
	Description string   `json:"description,omitempty"`
}
