//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/tests/common/authtest"
	"restaurant-reservations/tests/common/dbtest"
	"restaurant-reservations/tests/common/httptest"
	"restaurant-reservations/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	availabilityURL = "/api/reservations/availability"
	mineURL         = "/api/reservations/mine"
	adminListURL    = "/api/admin/reservations"
	planningURL     = "/api/admin/planning"
	capacityURL     = "/api/capacity-config"
	customersURL    = "/api/admin/customers"
)

type reservationSuite struct {
	e2e.SharedSuite
	loc *time.Location

	customerToken string
	customerID    uuid.UUID
	otherToken    string
	staffToken    string
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	loc, err := s.Config.Restaurant.Location()
	s.Require().NoError(err)
	s.loc = loc
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.customerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))
	s.otherToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", string(user.RoleCustomer))
	s.staffToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
	s.customerID = dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", string(user.RoleCustomer))
}

func (s *reservationSuite) today() calendar.Date {
	return calendar.Today(time.Now(), s.loc)
}

// openingDay returns the first opening day at least minOffset days ahead.
func (s *reservationSuite) openingDay(minOffset int) calendar.Date {
	d := s.today().AddDays(minOffset)
	for !reservation.IsOpeningDay(d) {
		d = d.AddDays(1)
	}
	return d
}

// nextClosedDay returns the first closed day at least two days ahead.
func (s *reservationSuite) nextClosedDay() calendar.Date {
	d := s.today().AddDays(2)
	for reservation.IsOpeningDay(d) {
		d = d.AddDays(1)
	}
	return d
}

func (s *reservationSuite) create(token string, date calendar.Date, turn, zone string, partySize int) *nethttptest.ResponseRecorder {
	s.T().Helper()
	req := request.CreateReservationRequest{
		Date:      date.String(),
		Turn:      turn,
		Zone:      zone,
		PartySize: partySize,
	}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, token)
}

func (s *reservationSuite) mustCreate(token string, date calendar.Date, turn, zone string, partySize int) resdto.ReservationMutationResponse {
	s.T().Helper()
	w := s.create(token, date, turn, zone, partySize)
	var body resdto.ReservationMutationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
	return body
}

func (s *reservationSuite) seed(date calendar.Date, turn, zone string, partySize int) uuid.UUID {
	s.T().Helper()
	return dbtest.CreateTestReservation(s.T(), s.DB, s.customerID, date.Time(), turn, zone, partySize)
}

func (s *reservationSuite) TestCreate() {
	s.Run("persists and reports occupancy", func() {
		day := s.openingDay(2)
		notes := "window table"
		req := request.CreateReservationRequest{
			Date: day.String(), Turn: "DINNER", Zone: "HALL", PartySize: 4, Notes: &notes,
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, s.customerToken)

		var body resdto.ReservationMutationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.Equal(day, body.Reservation.Date)
		s.Equal(reservation.StatusActive, body.Reservation.Status)
		s.Equal(s.customerID, body.Reservation.CustomerID)
		s.Require().NotNil(body.Reservation.Notes)
		s.Equal(notes, *body.Reservation.Notes)
		s.Equal(4, body.Occupancy.Reserved)
		s.Equal(730, body.Occupancy.TotalCapacity)
		s.Equal(1, body.Occupancy.Percentage)

		var stored string
		err := s.DB.QueryRow(s.T().Context(), "SELECT date::text FROM reservations WHERE id = $1", body.Reservation.ID).Scan(&stored)
		s.Require().NoError(err)
		s.Equal(day.String(), stored)
	})

	s.Run("fills a zone exactly then rejects the next seat", func() {
		day := s.openingDay(2)
		s.seed(day, "LUNCH", "FRONT", 28)

		s.mustCreate(s.customerToken, day, "LUNCH", "FRONT", 2)

		w := s.create(s.customerToken, day, "LUNCH", "FRONT", 1)
		detail := httptest.AssertErrorKind(s.T(), w, http.StatusConflict, "ZONE_CAPACITY_EXCEEDED")
		s.Equal("FRONT", detail["zone"])
		s.EqualValues(1, detail["requested"])
		s.EqualValues(30, detail["alreadyReserved"])
		s.EqualValues(0, detail["available"])
	})

	s.Run("rejection is repeatable and writes nothing", func() {
		day := s.openingDay(2)
		s.seed(day, "DINNER", "FRONT", 25)

		for range 2 {
			w := s.create(s.customerToken, day, "DINNER", "FRONT", 6)
			detail := httptest.AssertErrorKind(s.T(), w, http.StatusConflict, "ZONE_CAPACITY_EXCEEDED")
			s.EqualValues(5, detail["available"])
		}

		var count int
		err := s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM reservations").Scan(&count)
		s.Require().NoError(err)
		s.Equal(1, count)
	})

	s.Run("other zones and turns do not consume capacity", func() {
		day := s.openingDay(2)
		s.seed(day, "LUNCH", "FRONT", 30)
		s.seed(day, "DINNER", "GALLERY", 200)

		s.mustCreate(s.customerToken, day, "DINNER", "FRONT", 30)
	})

	s.Run("closed day", func() {
		w := s.create(s.customerToken, s.nextClosedDay(), "LUNCH", "HALL", 2)

		detail := httptest.AssertErrorKind(s.T(), w, http.StatusUnprocessableEntity, "CLOSED_DAY")
		s.Contains(detail, "weekday")
	})

	s.Run("advance window boundary", func() {
		// an opening day followed by another opening day, so the limit is the only difference
		day := s.openingDay(3)
		for !reservation.IsOpeningDay(day.AddDays(1)) {
			day = s.openingDay(s.daysUntil(day) + 1)
		}
		dbtest.SetCapacity(s.T(), s.DB, 30, 200, 500, s.daysUntil(day))

		s.mustCreate(s.customerToken, day, "LUNCH", "HALL", 2)

		w := s.create(s.customerToken, day.AddDays(1), "LUNCH", "HALL", 2)
		detail := httptest.AssertErrorKind(s.T(), w, http.StatusUnprocessableEntity, "OUT_OF_ADVANCE_WINDOW")
		s.EqualValues(s.daysUntil(day), detail["maxAdvanceDays"])
	})

	s.Run("past date", func() {
		day := s.today().AddDays(-7)
		for !reservation.IsOpeningDay(day) {
			day = day.AddDays(-1)
		}

		w := s.create(s.customerToken, day, "LUNCH", "HALL", 2)

		httptest.AssertErrorKind(s.T(), w, http.StatusUnprocessableEntity, "OUT_OF_ADVANCE_WINDOW")
	})

	s.Run("invalid input", func() {
		day := s.openingDay(2)
		tests := []struct {
			name  string
			req   request.CreateReservationRequest
			field string
		}{
			{name: "unknown zone", req: request.CreateReservationRequest{Date: day.String(), Turn: "LUNCH", Zone: "ROOFTOP", PartySize: 2}, field: "zone"},
			{name: "unknown turn", req: request.CreateReservationRequest{Date: day.String(), Turn: "BRUNCH", Zone: "HALL", PartySize: 2}, field: "turn"},
			{name: "malformed date", req: request.CreateReservationRequest{Date: "14/06/2025", Turn: "LUNCH", Zone: "HALL", PartySize: 2}, field: "date"},
			{name: "party too large", req: request.CreateReservationRequest{Date: day.String(), Turn: "LUNCH", Zone: "HALL", PartySize: 51}, field: "partySize"},
		}
		for _, tt := range tests {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, tt.req, s.customerToken)
			detail := httptest.AssertErrorKind(s.T(), w, http.StatusBadRequest, "INVALID_INPUT")
			s.Equal(tt.field, detail["field"], tt.name)
		}
	})

	s.Run("requires authentication", func() {
		w := s.create("", s.openingDay(2), "LUNCH", "HALL", 2)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *reservationSuite) TestConcurrentCreates() {
	s.Run("only one of two competing parties fits", func() {
		day := s.openingDay(2)
		// FRONT keeps 20 free seats: room for one party of 20, not two
		s.seed(day, "DINNER", "FRONT", 10)

		var wg sync.WaitGroup
		results := make([]*nethttptest.ResponseRecorder, 2)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = s.create(s.customerToken, day, "DINNER", "FRONT", 20)
			}()
		}
		wg.Wait()

		statuses := map[int]int{}
		for _, w := range results {
			statuses[w.Code]++
		}
		s.Equal(1, statuses[http.StatusCreated], statuses)
		s.Equal(1, statuses[http.StatusConflict], statuses)

		var reserved int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT coalesce(sum(party_size), 0) FROM reservations WHERE date = $1 AND turn = 'DINNER' AND zone = 'FRONT' AND status = 'ACTIVE'",
			day.Time()).Scan(&reserved)
		s.Require().NoError(err)
		s.Equal(30, reserved)
	})
}

func (s *reservationSuite) TestAvailability() {
	s.Run("reports occupancy by zone", func() {
		day := s.openingDay(2)
		s.seed(day, "LUNCH", "FRONT", 10)
		s.seed(day, "LUNCH", "HALL", 4)
		cancelled := s.seed(day, "LUNCH", "HALL", 6)
		_, err := s.DB.Exec(s.T().Context(), "UPDATE reservations SET status = 'CANCELLED_BY_CUSTOMER' WHERE id = $1", cancelled)
		s.Require().NoError(err)

		url := fmt.Sprintf("%s?date=%s&turn=LUNCH", availabilityURL, day)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.customerToken)

		var view queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Equal(14, view.TotalPeople)
		s.Equal(2, view.ReservationCount)
		s.Equal(730, view.TotalCapacity)
		s.Equal(2, view.Percentage)
		s.Equal(queries.ZoneAvailability{Capacity: 30, Reserved: 10, Available: 20}, view.ByZone[reservation.ZoneFront])
		s.Equal(queries.ZoneAvailability{Capacity: 500, Reserved: 4, Available: 496}, view.ByZone[reservation.ZoneHall])
	})

	s.Run("closed day", func() {
		url := fmt.Sprintf("%s?date=%s&turn=DINNER", availabilityURL, s.nextClosedDay())
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.customerToken)

		httptest.AssertErrorKind(s.T(), w, http.StatusUnprocessableEntity, "CLOSED_DAY")
	})

	s.Run("missing turn", func() {
		url := fmt.Sprintf("%s?date=%s", availabilityURL, s.openingDay(2))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.customerToken)

		detail := httptest.AssertErrorKind(s.T(), w, http.StatusBadRequest, "INVALID_INPUT")
		s.Equal("turn", detail["field"])
	})
}

func (s *reservationSuite) TestMine() {
	s.Run("lists own reservations with the requested filter", func() {
		future := s.openingDay(3)
		past := s.today().AddDays(-3)
		s.seed(future, "DINNER", "HALL", 2)
		s.seed(past, "LUNCH", "HALL", 2)
		s.mustCreate(s.otherToken, future, "LUNCH", "HALL", 3)

		tests := []struct {
			filter string
			want   int
		}{
			{filter: "", want: 2},
			{filter: "future", want: 1},
			{filter: "past", want: 1},
			{filter: "all", want: 2},
		}
		for _, tt := range tests {
			url := mineURL
			if tt.filter != "" {
				url += "?filter=" + tt.filter
			}
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.customerToken)

			var views []queries.MyReservationView
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &views)
			s.Len(views, tt.want, tt.filter)
			for _, v := range views {
				s.Equal(s.customerID, v.CustomerID)
				s.Nil(v.Customer)
			}
		}
	})

	s.Run("future reservations can still be changed", func() {
		s.seed(s.openingDay(3), "DINNER", "HALL", 2)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, mineURL+"?filter=future", nil, s.customerToken)

		var views []queries.MyReservationView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &views)
		s.Require().Len(views, 1)
		s.True(views[0].IsFuture)
		s.True(views[0].CanModify)
		s.True(views[0].CanCancel)
	})
}

func (s *reservationSuite) TestGet() {
	s.Run("owner and staff can read, others cannot", func() {
		id := s.seed(s.openingDay(2), "LUNCH", "GALLERY", 5)
		url := reservationsURL + "/" + id.String()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.customerToken)
		var own queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &own)
		s.Equal(id, own.ID)
		s.Nil(own.Customer)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.staffToken)
		var staffView queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &staffView)
		s.Require().NotNil(staffView.Customer)
		s.Equal("customer@example.com", staffView.Customer.Email)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.otherToken)
		httptest.AssertErrorKind(s.T(), w, http.StatusForbidden, "FORBIDDEN")
	})

	s.Run("unknown id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/"+uuid.NewString(), nil, s.customerToken)
		httptest.AssertErrorKind(s.T(), w, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *reservationSuite) TestUpdate() {
	s.Run("growing within the same slot excludes the current party", func() {
		day := s.openingDay(3)
		created := s.mustCreate(s.customerToken, day, "DINNER", "FRONT", 10)
		url := reservationsURL + "/" + created.Reservation.ID.String()

		size := 30
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url, request.UpdateReservationRequest{PartySize: &size}, s.customerToken)
		var body resdto.ReservationMutationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(30, body.Reservation.PartySize)
		s.Equal(30, body.Occupancy.Reserved)

		size = 31
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url, request.UpdateReservationRequest{PartySize: &size}, s.customerToken)
		detail := httptest.AssertErrorKind(s.T(), w, http.StatusConflict, "ZONE_CAPACITY_EXCEEDED")
		s.EqualValues(0, detail["alreadyReserved"])
		s.EqualValues(30, detail["available"])
	})

	s.Run("moving to a full zone is rejected", func() {
		day := s.openingDay(3)
		s.seed(day, "DINNER", "FRONT", 30)
		created := s.mustCreate(s.customerToken, day, "DINNER", "HALL", 2)

		zone := "FRONT"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+created.Reservation.ID.String(),
			request.UpdateReservationRequest{Zone: &zone}, s.customerToken)

		detail := httptest.AssertErrorKind(s.T(), w, http.StatusConflict, "ZONE_CAPACITY_EXCEEDED")
		s.Equal("FRONT", detail["zone"])
	})

	s.Run("notes only change skips the capacity check", func() {
		day := s.openingDay(3)
		id := s.seed(day, "LUNCH", "FRONT", 30)
		dbtest.SetCapacity(s.T(), s.DB, 20, 200, 500, 30)

		notes := "birthday"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+id.String(),
			request.UpdateReservationRequest{Notes: &notes}, s.customerToken)

		var body resdto.ReservationMutationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Require().NotNil(body.Reservation.Notes)
		s.Equal(notes, *body.Reservation.Notes)
	})

	s.Run("customer cannot change a reservation inside the edit window", func() {
		id := s.seed(s.today(), "DINNER", "HALL", 2)
		size := 3

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+id.String(),
			request.UpdateReservationRequest{PartySize: &size}, s.customerToken)
		httptest.AssertErrorKind(s.T(), w, http.StatusUnprocessableEntity, "EDIT_WINDOW_EXPIRED")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+id.String(),
			request.UpdateReservationRequest{PartySize: &size}, s.staffToken)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("another customer's reservation", func() {
		id := s.seed(s.openingDay(3), "DINNER", "HALL", 2)
		size := 3

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+id.String(),
			request.UpdateReservationRequest{PartySize: &size}, s.otherToken)

		httptest.AssertErrorKind(s.T(), w, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *reservationSuite) TestCancel() {
	s.Run("customer cancel frees the seats", func() {
		day := s.openingDay(3)
		created := s.mustCreate(s.customerToken, day, "LUNCH", "FRONT", 30)
		url := reservationsURL + "/" + created.Reservation.ID.String() + "/cancel"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url, nil, s.customerToken)
		var body resdto.ReservationMutationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(reservation.StatusCancelledByCustomer, body.Reservation.Status)
		s.Equal(0, body.Occupancy.Reserved)

		s.mustCreate(s.otherToken, day, "LUNCH", "FRONT", 30)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url, nil, s.customerToken)
		detail := httptest.AssertErrorKind(s.T(), w, http.StatusConflict, "ALREADY_CANCELLED")
		s.Equal("CANCELLED_BY_CUSTOMER", detail["status"])
	})

	s.Run("staff cancel is attributed to the restaurant", func() {
		id := s.seed(s.today(), "DINNER", "HALL", 2)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reservationsURL+"/"+id.String()+"/cancel", nil, s.staffToken)

		var body resdto.ReservationMutationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(reservation.StatusCancelledByRestaurant, body.Reservation.Status)
	})

	s.Run("queues a notification job", func() {
		created := s.mustCreate(s.customerToken, s.openingDay(3), "LUNCH", "HALL", 2)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			reservationsURL+"/"+created.Reservation.ID.String()+"/cancel", nil, s.customerToken)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var jobs int
		err := s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM notification_jobs WHERE payload->>'reservationId' = $1", created.Reservation.ID.String()).Scan(&jobs)
		s.Require().NoError(err)
		s.Equal(2, jobs)
	})
}

func (s *reservationSuite) TestCreateWithNewCustomer() {
	s.Run("staff books for a walk-in", func() {
		day := s.openingDay(2)
		req := request.CreateWithNewCustomerRequest{
			FirstName: "Ana", LastName: "Gomez", Phone: "+54 11 4444-1234",
			Email: "ana@example.com", Password: "securepass1",
			Date: day.String(), Turn: "DINNER", Zone: "GALLERY", PartySize: 6,
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL+"/with-new-customer", req, s.staffToken)

		var body resdto.ReservationWithCustomerResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.Equal("ana@example.com", body.Customer.Email)
		s.Equal(body.Customer.ID, body.Reservation.CustomerID)

		token := authtest.LoginUser(s.T(), s.Router, "ana@example.com", "securepass1")
		mine := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, mineURL, nil, token)
		var views []queries.MyReservationView
		httptest.AssertSuccessResponse(s.T(), mine, http.StatusOK, &views)
		s.Len(views, 1)
	})

	s.Run("capacity rejection leaves no account behind", func() {
		day := s.openingDay(2)
		s.seed(day, "DINNER", "FRONT", 30)
		req := request.CreateWithNewCustomerRequest{
			FirstName: "Ana", LastName: "Gomez", Phone: "+54 11 4444-1234",
			Email: "ana@example.com", Password: "securepass1",
			Date: day.String(), Turn: "DINNER", Zone: "FRONT", PartySize: 2,
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL+"/with-new-customer", req, s.staffToken)
		httptest.AssertErrorKind(s.T(), w, http.StatusConflict, "ZONE_CAPACITY_EXCEEDED")

		var exists bool
		err := s.DB.QueryRow(s.T().Context(), "SELECT EXISTS (SELECT 1 FROM users WHERE email = 'ana@example.com')").Scan(&exists)
		s.Require().NoError(err)
		s.False(exists)
	})

	s.Run("customers cannot use it", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL+"/with-new-customer",
			request.CreateWithNewCustomerRequest{}, s.customerToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *reservationSuite) TestAdmin() {
	s.Run("lists with filters and customer details", func() {
		day := s.openingDay(2)
		s.seed(day, "LUNCH", "FRONT", 4)
		s.seed(day, "DINNER", "FRONT", 6)
		s.seed(day.AddDays(1), "LUNCH", "HALL", 2)

		url := fmt.Sprintf("%s?date=%s&turn=LUNCH", adminListURL, day)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.staffToken)

		var views []queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &views)
		s.Require().Len(views, 1)
		s.Equal(4, views[0].PartySize)
		s.Require().NotNil(views[0].Customer)
		s.Equal("customer@example.com", views[0].Customer.Email)
	})

	s.Run("planning aggregates the service", func() {
		day := s.openingDay(2)
		s.seed(day, "DINNER", "FRONT", 2)
		s.seed(day, "DINNER", "HALL", 8)

		url := fmt.Sprintf("%s?date=%s&turn=DINNER", planningURL, day)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, s.staffToken)

		var body resdto.PlanningResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(resdto.PlanningTotals{Capacity: 730, People: 10, Percentage: 1, Reservations: 2}, body.Totals)
		s.Equal(2, body.ByZone[reservation.ZoneFront].People)
		s.Equal(8, body.ByZone[reservation.ZoneHall].People)
		s.Equal(30, body.CapacityByZone[reservation.ZoneFront])
	})

	s.Run("customers are forbidden", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminListURL, nil, s.customerToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *reservationSuite) TestCustomers() {
	s.Run("directory counts reservations and excludes staff", func() {
		day := s.openingDay(2)
		s.seed(day, "LUNCH", "FRONT", 2)
		s.seed(day, "DINNER", "HALL", 4)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, customersURL, nil, s.staffToken)

		var items []queries.CustomerListItem
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		counts := make(map[string]int, len(items))
		for _, it := range items {
			counts[it.Email] = it.ReservationCount
		}
		s.Equal(map[string]int{"customer@example.com": 2, "other@example.com": 0}, counts)
	})

	s.Run("search matches email without regard to case", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, customersURL+"/search?q=OTHER@", nil, s.staffToken)

		var items []queries.CustomerListItem
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		s.Require().Len(items, 1)
		s.Equal("other@example.com", items[0].Email)
	})

	s.Run("search with no match returns an empty list", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, customersURL+"/search?q=nobody", nil, s.staffToken)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[]`, w.Body.String())
	})

	s.Run("search term too short", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, customersURL+"/search?q=a", nil, s.staffToken)

		detail := httptest.AssertErrorKind(s.T(), w, http.StatusBadRequest, "INVALID_INPUT")
		s.Equal("q", detail["field"])
	})

	s.Run("detail lists recent reservations newest first", func() {
		day := s.openingDay(2)
		older := s.seed(day, "LUNCH", "FRONT", 2)
		newer := s.seed(day.AddDays(1), "LUNCH", "HALL", 3)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, customersURL+"/"+s.customerID.String(), nil, s.staffToken)

		var detail queries.CustomerDetail
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &detail)
		s.Equal(s.customerID, detail.ID)
		s.Equal("customer@example.com", detail.Email)
		s.Require().Len(detail.RecentReservations, 2)
		s.Equal(newer, detail.RecentReservations[0].ID)
		s.Equal(older, detail.RecentReservations[1].ID)
	})

	s.Run("unknown customer", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, customersURL+"/"+uuid.NewString(), nil, s.staffToken)
		httptest.AssertErrorKind(s.T(), w, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("customers are forbidden", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, customersURL, nil, s.customerToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *reservationSuite) TestCapacityConfig() {
	s.Run("anyone signed in can read it", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, capacityURL, nil, s.customerToken)

		var body resdto.CapacityConfigResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(730, body.TotalCapacity)
		s.Equal(30, body.MaxAdvanceDays)
		s.Equal([]int{2, 3, 4, 5, 6}, body.OpeningDays)
	})

	s.Run("staff update applies to new bookings", func() {
		front := 10
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, capacityURL,
			request.UpdateCapacityConfigRequest{FrontCapacity: &front}, s.staffToken)

		var body resdto.CapacityConfigResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(10, body.FrontCapacity)
		s.Equal(200, body.GalleryCapacity)
		s.Equal(710, body.TotalCapacity)

		created := s.create(s.customerToken, s.openingDay(2), "LUNCH", "FRONT", 11)
		detail := httptest.AssertErrorKind(s.T(), created, http.StatusConflict, "ZONE_CAPACITY_EXCEEDED")
		s.EqualValues(10, detail["available"])
	})

	s.Run("negative capacity", func() {
		front := -1
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, capacityURL,
			request.UpdateCapacityConfigRequest{FrontCapacity: &front}, s.staffToken)

		detail := httptest.AssertErrorKind(s.T(), w, http.StatusBadRequest, "INVALID_INPUT")
		s.Equal("frontCapacity", detail["field"])
	})

	s.Run("customers cannot update", func() {
		front := 10
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, capacityURL,
			request.UpdateCapacityConfigRequest{FrontCapacity: &front}, s.customerToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *reservationSuite) daysUntil(d calendar.Date) int {
	return int(d.Time().Sub(s.today().Time()).Hours() / 24)
}
