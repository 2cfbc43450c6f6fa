package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "sharekit/internal/handler/dto/request"
	resdto "sharekit/internal/handler/dto/response"
	"sharekit/internal/handler/httperr"
	"sharekit/internal/handler/middleware"
	"sharekit/internal/usecase/commands"
	"sharekit/internal/usecase/queries"
)

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), ownerID, req.ToCommand())
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Partial overwrite; only the owner may update
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param id path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), userID, itemID, req.ToCommand())
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Owners additionally see computed last/next booking dates
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Viewer ID"
// @Param id path int true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	viewerID, _ := middleware.GetUserID(c)
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewerID, itemID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Success 200 {array} resdto.ItemResponse
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Search available items
// @Description Blank text returns an empty list without touching storage
// @Tags items
// @Produce json
// @Param text query string true "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	views, err := h.q.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Delete item
// @Tags items
// @Param id path int true "Item ID"
// @Success 200
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), itemID); err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Add comment
// @Description Requires a completed booking by the caller on the item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Author ID"
// @Param id path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment text"
// @Success 200 {object} resdto.CommentResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	view, err := h.cmds.AddComment(c.Request.Context(), userID, itemID, req.Text)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentView(view))
}
