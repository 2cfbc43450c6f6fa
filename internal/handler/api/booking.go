package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	reqdto "sharekit/internal/handler/dto/request"
	resdto "sharekit/internal/handler/dto/response"
	"sharekit/internal/handler/httperr"
	"sharekit/internal/handler/middleware"
	"sharekit/internal/usecase/commands"
	"sharekit/internal/usecase/queries"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Creates a WAITING booking for an available item
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), bookerID, req.ToCommand())
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description Only the item owner may decide; WAITING bookings only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param id path int true "Booking ID"
// @Param approved query bool true "Approve flag"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved flag")
		return
	}
	view, err := h.cmds.UpdateStatus(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible only to the booker or the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings made by the caller
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker ID"
// @Param state query string false "State filter (default ALL)"
// @Param from query int false "Offset (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	h.list(c, h.q.ListForBooker)
}

// @Summary List bookings on the caller's items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param state query string false "State filter (default ALL)"
// @Param from query int false "Offset (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, h.q.ListForOwner)
}

func (h *BookingHandler) list(
	c *gin.Context,
	query func(ctx context.Context, userID int64, state string, page queries.Page) ([]*queries.BookingView, error),
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}
	views, err := query(c.Request.Context(), userID, c.Query("state"), page)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// queryPage reads from/size with source defaults. Range checks belong to
// the gateway; the server only rejects unparsable values.
func queryPage(c *gin.Context) (queries.Page, bool) {
	page := queries.Page{From: 0, Size: 10}
	if v := c.Query("from"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from")
			return queries.Page{}, false
		}
		page.From = iv
	}
	if v := c.Query("size"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid size")
			return queries.Page{}, false
		}
		page.Size = iv
	}
	return page, true
}
