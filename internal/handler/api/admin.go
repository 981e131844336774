package api

import (
	"net/http"

	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the staff-only listing and planning views.
type AdminHandler struct {
	q queries.ReservationQueries
}

func NewAdminHandler(q queries.ReservationQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary List reservations
// @Description Staff only. All filters are optional.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param turn query string false "Turn" Enums(LUNCH, DINNER)
// @Param zone query string false "Zone" Enums(FRONT, GALLERY, HALL)
// @Param status query string false "Status" Enums(ACTIVE, CANCELLED_BY_CUSTOMER, CANCELLED_BY_RESTAURANT)
// @Success 200 {array} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *AdminHandler) List(c *gin.Context) {
	var query reqdto.AdminReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBinding(c, err)
		return
	}
	filter, err := query.ToDomain()
	if err != nil {
		abortWithError(c, err)
		return
	}

	views, err := h.q.ListForAdmin(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Turn planning
// @Description Staff only. Aggregates active reservations by zone and party size.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param turn query string true "Turn" Enums(LUNCH, DINNER)
// @Success 200 {object} resdto.PlanningResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/planning [get]
func (h *AdminHandler) Planning(c *gin.Context) {
	var query reqdto.PlanningQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBinding(c, err)
		return
	}
	date, turn, err := query.ToDomain()
	if err != nil {
		abortWithError(c, err)
		return
	}

	planning, err := h.q.Planning(c.Request.Context(), date, turn)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanning(planning))
}
