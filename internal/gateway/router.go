package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sharekit/internal/gateway/handler"
	"sharekit/internal/handler/middleware"
	"sharekit/internal/pkg/config"
)

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	userHandler *handler.UserHandler,
	itemHandler *handler.ItemHandler,
	bookingHandler *handler.BookingHandler,
	requestHandler *handler.RequestHandler,
) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sharer := middleware.RequireSharerID()

	users := engine.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PATCH("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	items := engine.Group("/items")
	{
		items.POST("", sharer, itemHandler.Create)
		items.PATCH("/:id", sharer, itemHandler.Update)
		items.GET("/:id", sharer, itemHandler.Get)
		items.GET("", sharer, itemHandler.ListOwn)
		items.GET("/search", itemHandler.Search)
		items.POST("/:id/comment", sharer, itemHandler.AddComment)
		items.DELETE("/:id", itemHandler.Delete)
	}

	bookings := engine.Group("/bookings")
	bookings.Use(middleware.RequireSharerID())
	{
		bookings.POST("", bookingHandler.Create)
		bookings.PATCH("/:id", bookingHandler.UpdateStatus)
		bookings.GET("/:id", bookingHandler.Get)
		bookings.GET("", bookingHandler.ListForBooker)
		bookings.GET("/owner", bookingHandler.ListForOwner)
	}

	requests := engine.Group("/requests")
	requests.Use(middleware.RequireSharerID())
	{
		requests.POST("", requestHandler.Create)
		requests.GET("", requestHandler.ListOwn)
		requests.GET("/all", requestHandler.ListOthers)
		requests.GET("/:id", requestHandler.Get)
	}
}
