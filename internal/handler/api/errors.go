package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sharekit/internal/domain/booking"
	"sharekit/internal/domain/item"
	"sharekit/internal/domain/request"
	"sharekit/internal/domain/user"
	"sharekit/internal/handler/httperr"
	"sharekit/internal/usecase/commands"
	"sharekit/internal/usecase/queries"
)

var errMissingIdentity = errors.New("X-Sharer-User-Id header is required")

var notFoundSentinels = []error{
	commands.ErrUserNotFound,
	commands.ErrItemNotFound,
	commands.ErrBookingNotFound,
	commands.ErrRequestNotFound,
	queries.ErrUserNotFound,
	queries.ErrItemNotFound,
	queries.ErrBookingNotFound,
	queries.ErrRequestNotFound,
}

var validationSentinels = []error{
	commands.ErrItemUnavailable,
	commands.ErrNotItemOwner,
	commands.ErrNoCompletedBooking,
	queries.ErrBookingAccessDenied,
	booking.ErrNotOwner,
	booking.ErrAlreadyDecided,
	user.ErrNameRequired,
	user.ErrEmailRequired,
	user.ErrEmailInvalid,
	item.ErrNameRequired,
	item.ErrDescriptionRequired,
	item.ErrCommentTextRequired,
	request.ErrDescriptionRequired,
}

// Business-rule violations surface as 500 here; the gateway is the layer
// that turns request-shape problems into 400s.
func respondUsecaseError(c *gin.Context, err error) {
	if sentinel := match(err, notFoundSentinels); sentinel != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, sentinel.Error())
		return
	}
	if errors.Is(err, commands.ErrEmailTaken) {
		httperr.AbortWithError(c, http.StatusConflict, err, commands.ErrEmailTaken.Error())
		return
	}
	var unknownState *queries.UnknownStateError
	if errors.As(err, &unknownState) {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, unknownState.Error())
		return
	}
	if sentinel := match(err, validationSentinels); sentinel != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, sentinel.Error())
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
}

func match(err error, sentinels []error) error {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}
