package api

import (
	"net/http"

	reqdto "restaurant-reservations/internal/handler/dto/request"
	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerHandler serves the staff customer directory.
type CustomerHandler struct {
	q queries.UserQueries
}

func NewCustomerHandler(q queries.UserQueries) *CustomerHandler {
	return &CustomerHandler{q: q}
}

// @Summary List customers
// @Description Staff only. Ordered by name, with each customer's reservation count.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CustomerListItem
// @Failure 403 {object} httperr.Response
// @Router /admin/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	items, err := h.q.ListCustomers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Search customers
// @Description Staff only. Case-insensitive match on name, email or phone. At most 10 results.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term, at least 2 characters"
// @Success 200 {array} queries.CustomerListItem
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/customers/search [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	var query reqdto.CustomerSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBinding(c, err)
		return
	}

	items, err := h.q.SearchCustomers(c.Request.Context(), query.Q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get customer
// @Description Staff only. Includes the 10 most recent reservations.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} queries.CustomerDetail
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer id",
			gin.H{"kind": KindInvalidInput, "field": "id"})
		return
	}

	detail, err := h.q.GetCustomer(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
