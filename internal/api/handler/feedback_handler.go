package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/messhub/feedback-system/internal/api/metrics"
	"github.com/messhub/feedback-system/internal/core/ports"
)

// FeedbackHandler handles HTTP requests for the feedback lifecycle.
type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit records a rating for today's meal.
//
// @Summary      Submit meal feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitFeedbackRequest  true  "Feedback details"
// @Success      201   {object}  submitFeedbackResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /feedback/submit [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	record, err := h.service.Submit(c.Request().Context(), claims, ports.SubmitFeedbackInput{
		Rating:      req.Rating,
		Comment:     req.Comment,
		MealType:    req.MealType,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		return err
	}

	metrics.SubmissionsTotal.WithLabelValues(req.MealType, strconv.Itoa(req.Rating)).Inc()
	metrics.RatingObserved.Observe(float64(req.Rating))

	return c.JSON(http.StatusCreated, submitFeedbackResponse{
		Message:  "Feedback submitted successfully",
		Feedback: toFeedbackResponse(*record),
	})
}

// History returns the caller's own feedback, newest first.
//
// @Summary      Own feedback history
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (default 10)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200     {object}  listFeedbackResponse
// @Failure      401     {object}  errorResponse
// @Router       /feedback/history [get]
func (h *FeedbackHandler) History(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	// Clamp before calling so the echoed pagination matches what the
	// service actually applies.
	limit := ports.ClampLimit(queryInt(c, "limit", 0), ports.DefaultHistoryLimit)
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, err := h.service.History(c.Request().Context(), claims, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(records, limit, offset))
}

// ListAll returns feedback matching the optional admin filters.
//
// @Summary      List all feedback (admin)
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        date_from  query     string  false  "Earliest meal date (YYYY-MM-DD)"
// @Param        date_to    query     string  false  "Latest meal date (YYYY-MM-DD)"
// @Param        rating     query     int     false  "Exact rating"
// @Param        meal_type  query     string  false  "breakfast, lunch, or dinner"
// @Param        status     query     string  false  "pending, processing, or resolved"
// @Param        limit      query     int     false  "Page size (default 50)"
// @Param        offset     query     int     false  "Rows to skip"
// @Success      200        {object}  listFeedbackResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Router       /feedback/admin/all [get]
func (h *FeedbackHandler) ListAll(c echo.Context) error {
	filter, err := queryListFilter(c)
	if err != nil {
		return err
	}
	filter.Limit = ports.ClampLimit(filter.Limit, ports.DefaultListLimit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	records, err := h.service.ListAll(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(records, filter.Limit, filter.Offset))
}

// Stats returns overall and per-meal-type statistics.
//
// @Summary      Feedback statistics (admin)
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        date_from  query     string  false  "Earliest meal date (YYYY-MM-DD)"
// @Param        date_to    query     string  false  "Latest meal date (YYYY-MM-DD)"
// @Success      200        {object}  statsResponse
// @Failure      403        {object}  errorResponse
// @Router       /feedback/admin/stats [get]
func (h *FeedbackHandler) Stats(c echo.Context) error {
	filter, err := queryStatsFilter(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toStatsResponse(stats))
}

// UpdateStatus moves a feedback entry through its lifecycle.
//
// @Summary      Update feedback status (admin)
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Feedback id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  statusUpdatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /feedback/{id}/status [patch]
func (h *FeedbackHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid feedback id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, statusUpdatedResponse{Message: "Feedback status updated successfully"})
}

// Export streams the filtered feedback set as a CSV download.
//
// @Summary      Export feedback as CSV (admin)
// @Tags         feedback
// @Produce      text/csv
// @Security     BearerAuth
// @Param        date_from  query  string  false  "Earliest meal date (YYYY-MM-DD)"
// @Param        date_to    query  string  false  "Latest meal date (YYYY-MM-DD)"
// @Param        rating     query  int     false  "Exact rating"
// @Param        meal_type  query  string  false  "breakfast, lunch, or dinner"
// @Param        status     query  string  false  "pending, processing, or resolved"
// @Success      200
// @Failure      403  {object}  errorResponse
// @Router       /feedback/admin/export [get]
func (h *FeedbackHandler) Export(c echo.Context) error {
	filter, err := queryListFilter(c)
	if err != nil {
		return err
	}

	records, err := h.service.Export(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	filename := "feedback-export-" + time.Now().UTC().Format(mealDateFormat) + ".csv"
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write([]string{"ID", "Date", "Meal Type", "Rating", "Comment", "User", "Dishes", "Anonymous", "Status", "Created At"}); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(exportRow(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	metrics.ExportsTotal.Inc()
	return nil
}

// exportRow renders one CSV row. Anonymous rows never expose who submitted.
func exportRow(rec ports.FeedbackRecord) []string {
	user := rec.Username
	if user == "" {
		user = rec.Email
	}
	anonymous := "No"
	if rec.IsAnonymous {
		user = "Anonymous"
		anonymous = "Yes"
	} else if user == "" {
		user = "Unknown"
	}

	return []string{
		strconv.FormatInt(rec.ID, 10),
		rec.MealDate.Format(mealDateFormat),
		string(rec.MealType),
		strconv.Itoa(rec.Rating),
		rec.Comment,
		user,
		rec.DishNames,
		anonymous,
		string(rec.Status),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}
