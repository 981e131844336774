package api

import (
	"net/http"

	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CapacityHandler struct {
	cmds commands.CapacityCommands
	q    queries.CapacityQueries
}

func NewCapacityHandler(cmds commands.CapacityCommands, q queries.CapacityQueries) *CapacityHandler {
	return &CapacityHandler{cmds: cmds, q: q}
}

// @Summary Get capacity configuration
// @Tags capacity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CapacityConfigResponse
// @Failure 500 {object} httperr.Response
// @Router /capacity-config [get]
func (h *CapacityHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.respond(c, view)
}

// @Summary Update capacity configuration
// @Description Staff only. Omitted fields keep their value; given values must be positive.
// @Tags capacity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateCapacityConfigRequest true "Changes"
// @Success 200 {object} resdto.CapacityConfigResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /capacity-config [put]
func (h *CapacityHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.UpdateCapacityConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}

	cfg, err := h.cmds.Update(c.Request.Context(), req, actor)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.respond(c, queries.NewCapacityConfigView(cfg))
}

func (h *CapacityHandler) respond(c *gin.Context, view *queries.CapacityConfigView) {
	resp, err := resdto.FromCapacityConfigView(view)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
