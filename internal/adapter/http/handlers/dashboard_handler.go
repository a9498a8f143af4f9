package handlers

import (
	"net/http"

	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary  Business-wide counters and totals
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  pkg.Envelope
// @Security Bearer
// @Router   /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		respondError(c, "[dashboard][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(d))
}
