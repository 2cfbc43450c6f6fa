package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"sharekit/internal/gateway/client"
	"sharekit/internal/handler/httperr"
	"sharekit/internal/pkg/clock"
)

type BookingHandler struct {
	client *client.Client
	clock  clock.Clock
}

func NewBookingHandler(cl *client.Client, clk clock.Clock) *BookingHandler {
	return &BookingHandler{client: cl, clock: clk}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	if err := req.ValidatePeriod(h.clock.Now()); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodPost, "/bookings", nil, sharerID(c), req)
	relay(c, res, err)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "approved must be a boolean")
		return
	}
	query := url.Values{}
	query.Set("approved", strconv.FormatBool(approved))
	res, ferr := h.client.Forward(c.Request.Context(), http.MethodPatch, "/bookings/"+id, query, sharerID(c), nil)
	relay(c, res, ferr)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, "/bookings/"+id, nil, sharerID(c), nil)
	relay(c, res, err)
}

func (h *BookingHandler) ListForBooker(c *gin.Context) {
	h.list(c, "/bookings")
}

func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, "/bookings/owner")
}

func (h *BookingHandler) list(c *gin.Context, path string) {
	query, ok := pageQuery(c)
	if !ok {
		return
	}
	state := c.DefaultQuery("state", "ALL")
	query.Set("state", state)
	res, err := h.client.Forward(c.Request.Context(), http.MethodGet, path, query, sharerID(c), nil)
	relay(c, res, err)
}
