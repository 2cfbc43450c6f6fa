//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"sharekit/internal/handler/api"
	"sharekit/internal/handler/middleware"
	"sharekit/internal/usecase/commands"
	"sharekit/internal/usecase/queries"
	"sharekit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *mockUserCommands
	mockQueries  *mockUserQueries
	handler      *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCommands = new(mockUserCommands)
	s.mockQueries = new(mockUserQueries)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)

	// user routes carry no identity requirement
	s.router.POST("/users", s.handler.Create)
	s.router.GET("/users", s.handler.List)
	s.router.GET("/users/:id", s.handler.Get)
	s.router.PATCH("/users/:id", s.handler.Update)
	s.router.DELETE("/users/:id", s.handler.Delete)
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	view := &queries.UserView{ID: 1, Name: "alice", Email: "alice@example.com"}

	s.Run("returns 200 with the created user", func() {
		s.mockCommands.On("Create", mock.Anything, commands.CreateUserRequest{Name: "alice", Email: "alice@example.com"}).
			Return(view, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users",
			map[string]any{"name": "alice", "email": "alice@example.com"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(1), body["id"])
		s.Equal("alice", body["name"])
		s.Equal("alice@example.com", body["email"])
	})

	s.Run("duplicate email returns 409", func() {
		s.mockCommands.On("Create", mock.Anything, mock.Anything).
			Return(nil, commands.ErrEmailTaken).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users",
			map[string]any{"name": "alice", "email": "alice@example.com"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email is already in use")
	})

	s.Run("missing user sentinel returns 404", func() {
		s.mockCommands.On("Create", mock.Anything, mock.Anything).
			Return(nil, commands.ErrUserNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users",
			map[string]any{"name": "alice", "email": "alice@example.com"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	s.Run("returns the user", func() {
		s.mockQueries.On("GetByID", mock.Anything, int64(1)).
			Return(&queries.UserView{ID: 1, Name: "alice", Email: "alice@example.com"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/1", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("alice", body["name"])
	})

	s.Run("unknown user returns 404", func() {
		s.mockQueries.On("GetByID", mock.Anything, int64(99)).
			Return(nil, queries.ErrUserNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})

	s.Run("non-numeric id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *UserHandlerTestSuite) TestList() {
	s.mockQueries.On("List", mock.Anything).
		Return([]*queries.UserView{{ID: 1, Name: "alice"}, {ID: 2, Name: "bob"}}, nil).Once()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")

	var body []map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 2)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
}

func (s *UserHandlerTestSuite) TestUpdate() {
	name := "alicia"

	s.Run("patches the user", func() {
		s.mockCommands.On("Update", mock.Anything, int64(1), commands.UpdateUserRequest{Name: &name}).
			Return(&queries.UserView{ID: 1, Name: "alicia", Email: "alice@example.com"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/1",
			map[string]any{"name": "alicia"}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("alicia", body["name"])
	})

	s.Run("unknown user returns 404", func() {
		s.mockCommands.On("Update", mock.Anything, int64(99), mock.Anything).
			Return(nil, commands.ErrUserNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/99",
			map[string]any{"name": "alicia"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	s.mockCommands.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/1", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}
