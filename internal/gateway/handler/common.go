package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"sharekit/internal/gateway/client"
	"sharekit/internal/handler/httperr"
	"sharekit/internal/handler/middleware"
	"sharekit/internal/pkg/errs"
)

var errUpstream = errs.New("upstream server unavailable")

func sharerID(c *gin.Context) string {
	return c.GetHeader(middleware.SharerHeader)
}

// relay writes the server's reply through unchanged.
func relay(c *gin.Context, res *client.Result, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, errUpstream.Error())
		return
	}
	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(res.Status, contentType, res.Body)
}

// pageQuery validates from/size and returns them ready for forwarding.
// Defaults match the source gateway: from=0, size=10.
func pageQuery(c *gin.Context) (url.Values, bool) {
	from := 0
	size := 10

	if v := c.Query("from"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil || iv < 0 {
			if err == nil {
				err = errs.Newf("negative from %d", iv)
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "from must be non-negative")
			return nil, false
		}
		from = iv
	}
	if v := c.Query("size"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil || iv <= 0 {
			if err == nil {
				err = errs.Newf("non-positive size %d", iv)
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "size must be positive")
			return nil, false
		}
		size = iv
	}

	query := url.Values{}
	query.Set("from", strconv.Itoa(from))
	query.Set("size", strconv.Itoa(size))
	return query, true
}

func pathID(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.Newf("non-positive %s %d", name, id)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name)
		return "", false
	}
	return raw, true
}
