package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dieselmedia/booking-api/internal/dto"
	"github.com/dieselmedia/booking-api/internal/httperr"
	"github.com/dieselmedia/booking-api/internal/httpresp"
	ucBooking "github.com/dieselmedia/booking-api/internal/usecase/booking"
)

type PublicHandler struct {
	appName        string
	availableTimes *ucBooking.GetAvailableTimes
}

func NewPublicHandler(appName string, availableTimes *ucBooking.GetAvailableTimes) *PublicHandler {
	return &PublicHandler{
		appName:        appName,
		availableTimes: availableTimes,
	}
}

func (h *PublicHandler) Root(c *gin.Context) {
	httpresp.Message(c, h.appName)
}

// AvailableTimes serves GET /available-times?date=YYYY-MM-DD.
func (h *PublicHandler) AvailableTimes(c *gin.Context) {
	a, err := h.availableTimes.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.AvailableTimesResponse{
		AvailableTimes: a.AvailableTimes,
		BookedTimes:    a.BookedTimes,
	})
}
