package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sharekit/internal/gateway/client"
	"sharekit/internal/handler/httperr"
)

type RequestHandler struct {
	client *client.Client
}

func NewRequestHandler(cl *client.Client) *RequestHandler {
	return &RequestHandler{client: cl}
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodPost, "/requests", nil, sharerID(c), req)
	relay(c, res, err)
}

func (h *RequestHandler) ListOwn(c *gin.Context) {
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, "/requests", nil, sharerID(c), nil)
	relay(c, res, err)
}

func (h *RequestHandler) ListOthers(c *gin.Context) {
	query, ok := pageQuery(c)
	if !ok {
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, "/requests/all", query, sharerID(c), nil)
	relay(c, res, err)
}

func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, "/requests/"+id, nil, sharerID(c), nil)
	relay(c, res, err)
}
