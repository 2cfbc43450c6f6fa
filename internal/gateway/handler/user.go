package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sharekit/internal/gateway/client"
	"sharekit/internal/handler/httperr"
)

type UserHandler struct {
	client *client.Client
}

func NewUserHandler(cl *client.Client) *UserHandler {
	return &UserHandler{client: cl}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodPost, "/users", nil, "", req)
	relay(c, res, err)
}

func (h *UserHandler) List(c *gin.Context) {
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, "/users", nil, "", nil)
	relay(c, res, err)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, "/users/"+id, nil, "", nil)
	relay(c, res, err)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodPatch, "/users/"+id, nil, "", req)
	relay(c, res, err)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodDelete, "/users/"+id, nil, "", nil)
	relay(c, res, err)
}
