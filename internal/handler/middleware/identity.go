package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sharekit/internal/handler/httperr"
	"sharekit/internal/pkg/errs"
)

// SharerHeader carries the caller's user id. The server trusts it as-is;
// the gateway is expected to sit in front and reject malformed requests.
const SharerHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

var errMissingSharerHeader = errs.New("X-Sharer-User-Id header is required")

// RequireSharerID extracts the numeric user id from the sharer header and
// stores it in the request context. Every endpoint that identifies its
// caller mounts this; only search and delete stay headerless.
func RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharerHeader, "X-Sharer-User-Id header is required")
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			if err == nil {
				err = errs.Newf("non-positive user id %d", id)
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "X-Sharer-User-Id header is invalid")
			return
		}

		c.Set(ctxUserIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}
