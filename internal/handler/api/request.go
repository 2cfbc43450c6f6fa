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

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Requestor ID"
// @Param request body reqdto.CreateRequestRequest true "Create request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), userID, req.Description)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List own requests
// @Description Newest first, each annotated with fulfilling items
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Requestor ID"
// @Success 200 {array} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	views, err := h.q.ListOwn(c.Request.Context(), userID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary List other users' requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param from query int false "Offset (default 0)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/all [get]
func (h *RequestHandler) ListOthers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}
	views, err := h.q.ListOthers(c.Request.Context(), userID, page)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param id path int true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required")
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, requestID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
