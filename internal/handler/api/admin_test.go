//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/internal/handler/api"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/tests/common/builder"
	"restaurant-reservations/tests/common/httptest"
	queriesmock "restaurant-reservations/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)

	staff := reservation.Actor{ID: uuid.New(), Role: user.RoleStaff}
	h := api.NewAdminHandler(s.mockQueries)
	g := s.router.Group("/admin", fakeAuth(&staff))
	g.GET("/reservations", h.List)
	g.GET("/planning", h.Planning)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestList() {
	s.Run("success: filters are parsed", func() {
		date := calendar.MustNew(2025, time.June, 14)
		turn := reservation.TurnDinner
		zone := reservation.ZoneHall
		status := reservation.StatusActive
		view := builder.NewReservationBuilder().BuildView()
		view.Customer = &queries.CustomerSummary{Email: "ana@example.com", FirstName: "Ana", LastName: "Pérez", Phone: "123"}
		s.mockQueries.EXPECT().
			ListForAdmin(gomock.Any(), queries.ReservationFilter{Date: &date, Turn: &turn, Zone: &zone, Status: &status}).
			Return([]*queries.ReservationView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/reservations?date=2025-06-14&turn=DINNER&zone=HALL&status=ACTIVE", nil, token)

		var body []queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Require().NotNil(body[0].Customer)
		s.Equal("ana@example.com", body[0].Customer.Email)
	})

	s.Run("success: no filters", func() {
		s.mockQueries.EXPECT().ListForAdmin(gomock.Any(), queries.ReservationFilter{}).Return([]*queries.ReservationView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations", nil, token)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations?status=DONE", nil, token)

		detail := httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, api.KindInvalidInput)
		s.Equal("status", detail["field"])
	})
}

func (s *AdminHandlerTestSuite) TestPlanning() {
	date := calendar.MustNew(2025, time.June, 14)
	url := "/admin/planning?date=2025-06-14&turn=DINNER"

	s.Run("success: totals and breakdowns", func() {
		entries := []reservation.PlanningEntry{
			{Zone: reservation.ZoneFront, PartySize: 2, HasNotes: true},
			{Zone: reservation.ZoneFront, PartySize: 4},
			{Zone: reservation.ZoneHall, PartySize: 8},
		}
		planning := reservation.SummarizePlanning(date, reservation.TurnDinner, entries, reservation.DefaultCapacityConfig())
		s.mockQueries.EXPECT().Planning(gomock.Any(), date, reservation.TurnDinner).Return(&planning, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var body resdto.PlanningResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := resdto.PlanningTotals{Capacity: 730, People: 14, Percentage: 2, Reservations: 3, WithNotes: 1}
		if diff := cmp.Diff(want, body.Totals); diff != "" {
			s.T().Errorf("totals mismatch (-want +got):\n%s", diff)
		}
		s.Equal(reservation.Tally{Reservations: 2, People: 6, WithNotes: 1}, body.ByZone[reservation.ZoneFront])
		s.Equal(reservation.Tally{Reservations: 1, People: 8}, body.BySize[reservation.Bucket7Plus])
		s.Equal(30, body.CapacityByZone[reservation.ZoneFront])
		s.Len(body.ByZoneAndSize, 3)
	})

	s.Run("error: 500 without a capacity configuration", func() {
		s.mockQueries.EXPECT().Planning(gomock.Any(), date, reservation.TurnDinner).Return(nil, reservation.ConfigMissing())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		httptest.AssertErrorKind(s.T(), rec, http.StatusInternalServerError, api.KindConfigMissing)
	})

	s.Run("error: 400 without a turn", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/planning?date=2025-06-14", nil, token)

		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, api.KindInvalidInput)
	})
}
