package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskden/todo-api/internal/core/domain"
	"github.com/taskden/todo-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for checklist item operations. All routes
// sit behind the Session middleware.
type ItemHandler struct {
	service  ports.ItemService
	activity ports.ActivityRecorder
}

func NewItemHandler(service ports.ItemService, activity ports.ActivityRecorder) *ItemHandler {
	return &ItemHandler{service: service, activity: activity}
}

type addItemRequest struct {
	Description string `json:"description"`
}

type updateItemRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

type itemResponse struct {
	Success bool         `json:"success"`
	Item    *domain.Item `json:"item"`
}

type itemsResponse struct {
	Success bool          `json:"success"`
	Items   []domain.Item `json:"items"`
}

// ListAll handles GET /get-items.
//
// @Summary      List all items across lists
// @Tags         items
// @Produce      json
// @Success      200  {object}  itemsResponse
// @Failure      401  {object}  map[string]string
// @Router       /get-items [get]
func (h *ItemHandler) ListAll(c echo.Context) error {
	items, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return c.JSON(http.StatusOK, itemsResponse{Success: true, Items: items})
}

// ListByList handles GET /get-items/:listId. An unknown list yields an empty
// slice, not a 404.
//
// @Summary      List the items of one list
// @Tags         items
// @Produce      json
// @Param        listId  path      string  true  "List ID"
// @Success      200     {object}  itemsResponse
// @Router       /get-items/{listId} [get]
func (h *ItemHandler) ListByList(c echo.Context) error {
	items, err := h.service.ListByList(c.Request().Context(), c.Param("listId"))
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return c.JSON(http.StatusOK, itemsResponse{Success: true, Items: items})
}

// Create handles POST /lists/:listId/items. New items start in status
// "pending"; an absent list surfaces as 404 via the foreign key.
//
// @Summary      Add an item to a list
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        listId  path      string          true  "List ID"
// @Param        body    body      addItemRequest  true  "Item description"
// @Success      200     {object}  itemResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /lists/{listId}/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	_, username, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), c.Param("listId"), req.Description)
	if err != nil {
		return err
	}

	h.activity.Record(ports.ActivityInput{
		ListID:   item.ListID,
		ItemID:   item.ID,
		Username: username,
		Action:   domain.ActionItemCreated,
		Detail:   item.Description,
	})

	return c.JSON(http.StatusOK, itemResponse{Success: true, Item: item})
}

// Update handles PUT /lists/:listId/items/:itemId. The row must match both
// ids; a correct itemId under the wrong list is a 404 and changes nothing.
//
// @Summary      Update an item's description and status
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        listId  path      string             true  "List ID"
// @Param        itemId  path      string             true  "Item ID"
// @Param        body    body      updateItemRequest  true  "New description and status"
// @Success      200     {object}  itemResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /lists/{listId}/items/{itemId} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	_, username, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), ports.UpdateItemInput{
		ListID:      c.Param("listId"),
		ItemID:      c.Param("itemId"),
		Description: req.Description,
		Status:      domain.ItemStatus(req.Status),
	})
	if err != nil {
		return err
	}

	h.activity.Record(ports.ActivityInput{
		ListID:   item.ListID,
		ItemID:   item.ID,
		Username: username,
		Action:   domain.ActionItemUpdated,
		Detail:   string(item.Status),
	})

	return c.JSON(http.StatusOK, itemResponse{Success: true, Item: item})
}

// Delete handles DELETE /lists/:listId/items/:itemId with the same dual-match
// requirement as Update.
//
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Param        listId  path      string  true  "List ID"
// @Param        itemId  path      string  true  "Item ID"
// @Success      200     {object}  statusResponse
// @Failure      404     {object}  map[string]string
// @Router       /lists/{listId}/items/{itemId} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	_, username, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	listID, itemID := c.Param("listId"), c.Param("itemId")
	if err := h.service.Delete(c.Request().Context(), listID, itemID); err != nil {
		return err
	}

	h.activity.Record(ports.ActivityInput{
		ListID:   listID,
		ItemID:   itemID,
		Username: username,
		Action:   domain.ActionItemDeleted,
	})

	return c.JSON(http.StatusOK, statusResponse{Success: true})
}
