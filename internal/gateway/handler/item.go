package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"sharekit/internal/gateway/client"
	"sharekit/internal/handler/httperr"
)

type ItemHandler struct {
	client *client.Client
}

func NewItemHandler(cl *client.Client) *ItemHandler {
	return &ItemHandler{client: cl}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodPost, "/items", nil, sharerID(c), req)
	relay(c, res, err)
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodPatch, "/items/"+id, nil, sharerID(c), req)
	relay(c, res, err)
}

func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, "/items/"+id, nil, sharerID(c), nil)
	relay(c, res, err)
}

func (h *ItemHandler) ListOwn(c *gin.Context) {
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, "/items", nil, sharerID(c), nil)
	relay(c, res, err)
}

func (h *ItemHandler) Search(c *gin.Context) {
	query := url.Values{}
	query.Set("text", c.Query("text"))
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, "/items/search", query, "", nil)
	relay(c, res, err)
}

// Delete discards the upstream reply and answers 204; the server's delete
// is idempotent so there is nothing useful to relay.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	_, err := h.client.Forward(c.Request.Context(), http.MethodDelete, "/items/"+id, nil, "", nil)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, errUpstream.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) AddComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodPost, "/items/"+id+"/comment", nil, sharerID(c), req)
	relay(c, res, err)
}
