package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

const recentActivityLimit = 50

// ActivityHandler serves the recent-activity feed.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type activityResponse struct {
	Success  bool              `json:"success"`
	Activity []domain.Activity `json:"activity"`
}

// Recent handles GET /get-activity, newest first.
//
// @Summary      Recent activity across all lists
// @Tags         activity
// @Produce      json
// @Success      200  {object}  activityResponse
// @Failure      401  {object}  map[string]string
// @Router       /get-activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	entries, err := h.service.Recent(c.Request().Context(), recentActivityLimit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.Activity{}
	}
	return c.JSON(http.StatusOK, activityResponse{Success: true, Activity: entries})
}
