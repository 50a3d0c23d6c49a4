package api

import (
	"net/http"

	resdto "booking-intake/internal/handler/dto/response"
	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	queries queries.VehicleQueries
}

func NewVehicleHandler(queries queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{queries: queries}
}

// @Summary List vehicles
// @Description Rental catalog in display order
// @Tags vehicles
// @Produce json
// @Success 200 {array} resdto.VehicleResponse
// @Failure 503 {object} httperr.Response
// @Router /api/vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	entries, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Catálogo no disponible", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalog(entries))
}
