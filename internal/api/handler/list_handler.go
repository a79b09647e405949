package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

// ListHandler handles HTTP requests for list operations. All routes sit
// behind the Session middleware.
type ListHandler struct {
	service  ports.ListService
	activity ports.ActivityRecorder
}

func NewListHandler(service ports.ListService, activity ports.ActivityRecorder) *ListHandler {
	return &ListHandler{service: service, activity: activity}
}

// addListRequest mirrors the wire contract of the SPA: list creation sends
// listTitle, list update sends title.
type addListRequest struct {
	Title string `json:"listTitle"`
}

type updateListRequest struct {
	Title string `json:"title"`
}

type listResponse struct {
	Success bool         `json:"success"`
	List    *domain.List `json:"list"`
}

type listsResponse struct {
	Success bool          `json:"success"`
	List    []domain.List `json:"list"`
}

// ListAll handles GET /get-list. No ordering is guaranteed.
//
// @Summary      List all lists
// @Tags         lists
// @Produce      json
// @Success      200  {object}  listsResponse
// @Failure      401  {object}  map[string]string
// @Router       /get-list [get]
func (h *ListHandler) ListAll(c echo.Context) error {
	lists, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if lists == nil {
		lists = []domain.List{}
	}
	return c.JSON(http.StatusOK, listsResponse{Success: true, List: lists})
}

// Get handles GET /get-list/:id.
//
// @Summary      Get one list
// @Tags         lists
// @Produce      json
// @Param        id   path      string  true  "List ID"
// @Success      200  {object}  listResponse
// @Failure      404  {object}  map[string]string
// @Router       /get-list/{id} [get]
func (h *ListHandler) Get(c echo.Context) error {
	list, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Success: true, List: list})
}

// Create handles POST /add-list. New lists start in status "pending".
//
// @Summary      Create a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        body  body      addListRequest  true  "List title"
// @Success      200   {object}  listResponse
// @Failure      400   {object}  map[string]string
// @Router       /add-list [post]
func (h *ListHandler) Create(c echo.Context) error {
	var req addListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	_, username, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	list, err := h.service.Create(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}

	h.activity.Record(ports.ActivityInput{
		ListID:   list.ID,
		Username: username,
		Action:   domain.ActionListCreated,
		Detail:   list.Title,
	})

	return c.JSON(http.StatusOK, listResponse{Success: true, List: list})
}

// Update handles PUT /update-list/:id.
//
// @Summary      Rename a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "List ID"
// @Param        body  body      updateListRequest  true  "New title"
// @Success      200   {object}  listResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /update-list/{id} [put]
func (h *ListHandler) Update(c echo.Context) error {
	var req updateListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	_, username, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	list, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Title)
	if err != nil {
		return err
	}

	h.activity.Record(ports.ActivityInput{
		ListID:   list.ID,
		Username: username,
		Action:   domain.ActionListUpdated,
		Detail:   list.Title,
	})

	return c.JSON(http.StatusOK, listResponse{Success: true, List: list})
}

// Delete handles DELETE /delete-list/:id. The list's items go with it, in a
// single transaction.
//
// @Summary      Delete a list and its items
// @Tags         lists
// @Produce      json
// @Param        id   path      string  true  "List ID"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  map[string]string
// @Router       /delete-list/{id} [delete]
func (h *ListHandler) Delete(c echo.Context) error {
	_, username, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.activity.Record(ports.ActivityInput{
		ListID:   id,
		Username: username,
		Action:   domain.ActionListDeleted,
	})

	return c.JSON(http.StatusOK, statusResponse{Success: true})
}
