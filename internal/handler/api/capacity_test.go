//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/internal/handler/api"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/tests/common/httptest"
	commandsmock "restaurant-reservations/tests/mock/commands"
	queriesmock "restaurant-reservations/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CapacityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCapacityCommands
	mockQueries  *queriesmock.MockCapacityQueries
	actor        reservation.Actor
}

func (s *CapacityHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCapacityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCapacityQueries(s.mockCtrl)
	s.actor = reservation.Actor{ID: uuid.New(), Role: user.RoleStaff}

	h := api.NewCapacityHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/capacity", fakeAuth(&s.actor))
	g.GET("", h.Get)
	g.PUT("", h.Update)
}

func (s *CapacityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCapacityHandlerSuite(t *testing.T) {
	suite.Run(t, new(CapacityHandlerTestSuite))
}

func (s *CapacityHandlerTestSuite) TestGet() {
	s.Run("success: config with derived fields", func() {
		updatedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		cfg := reservation.ReconstructCapacityConfig(30, 200, 500, 30, updatedAt)
		s.mockQueries.EXPECT().Get(gomock.Any()).Return(queries.NewCapacityConfigView(cfg), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity", nil, token)

		var body resdto.CapacityConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(730, body.TotalCapacity)
		s.Equal([]int{2, 3, 4, 5, 6}, body.OpeningDays)
		s.Equal([]reservation.Turn{reservation.TurnLunch, reservation.TurnDinner}, body.Turns)
		s.True(updatedAt.Equal(body.UpdatedAt))
	})

	s.Run("error: 500 when missing", func() {
		s.mockQueries.EXPECT().Get(gomock.Any()).Return(nil, reservation.ConfigMissing())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity", nil, token)

		httptest.AssertErrorKind(s.T(), rec, http.StatusInternalServerError, api.KindConfigMissing)
	})
}

func (s *CapacityHandlerTestSuite) TestUpdate() {
	s.Run("success: partial update", func() {
		front := 40
		cfg := reservation.ReconstructCapacityConfig(40, 200, 500, 30, time.Now())
		s.mockCommands.EXPECT().
			Update(gomock.Any(), reqdto.UpdateCapacityConfigRequest{FrontCapacity: &front}, s.actor).
			Return(cfg, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/capacity", map[string]any{"frontCapacity": 40}, token)

		var body resdto.CapacityConfigResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(40, body.FrontCapacity)
		s.Equal(740, body.TotalCapacity)
	})

	s.Run("error: 400 on invalid values", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), s.actor).
			Return(reservation.CapacityConfig{}, reservation.InvalidInput("maxAdvanceDays", "maxAdvanceDays must be at least 1"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/capacity", map[string]any{"maxAdvanceDays": 0}, token)

		detail := httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, api.KindInvalidInput)
		s.Equal("maxAdvanceDays", detail["field"])
	})

	s.Run("error: 403 for customers", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), s.actor).
			Return(reservation.CapacityConfig{}, reservation.Forbidden("staff only"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/capacity", map[string]any{"hallCapacity": 10}, token)

		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, api.KindForbidden)
	})
}
