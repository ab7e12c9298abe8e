package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/messhub/feedback-system/internal/core/ports"
)

// weeklyMenuResponse carries the seven-day view plus its generation time.
type weeklyMenuResponse struct {
	Days        []ports.DailyMenu `json:"days"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// MenuHandler serves the daily menu views. Menu routes require no
// authentication; the menu is public display data.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// Today returns today's menu grouped by meal type.
//
// @Summary      Today's menu
// @Tags         menu
// @Produce      json
// @Success      200  {object}  ports.DailyMenu
// @Router       /menu/today [get]
func (h *MenuHandler) Today(c echo.Context) error {
	menu, err := h.service.TodayMenu(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menu)
}

// Weekly returns the next seven days of menus, today first.
//
// @Summary      Weekly menu
// @Tags         menu
// @Produce      json
// @Success      200  {object}  weeklyMenuResponse
// @Router       /menu/weekly [get]
func (h *MenuHandler) Weekly(c echo.Context) error {
	days, err := h.service.WeeklyMenu(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, weeklyMenuResponse{
		Days:        days,
		GeneratedAt: time.Now().UTC(),
	})
}

// Weekday returns the menu for the next occurrence of the named weekday.
//
// @Summary      Menu for a weekday
// @Tags         menu
// @Produce      json
// @Param        day  path      string  true  "Weekday name, e.g. monday"
// @Success      200  {object}  ports.DailyMenu
// @Failure      400  {object}  errorResponse
// @Router       /menu/{day} [get]
func (h *MenuHandler) Weekday(c echo.Context) error {
	menu, err := h.service.WeekdayMenu(c.Request().Context(), c.Param("day"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menu)
}
