package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dieselmedia/booking-api/internal/httperr"
	"github.com/dieselmedia/booking-api/internal/httpresp"
	"github.com/dieselmedia/booking-api/internal/middleware"
	ucBooking "github.com/dieselmedia/booking-api/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookings
	getUC    *ucBooking.GetBooking
	updateUC *ucBooking.UpdateBookingStatus
	deleteUC *ucBooking.DeleteBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
	getUC *ucBooking.GetBooking,
	updateUC *ucBooking.UpdateBookingStatus,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// Create is public.
func (h *BookingHandler) Create(c *gin.Context) {
	var req ucBooking.CreateBookingInput
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req ucBooking.UpdateStatusInput
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), middleware.AdminEmail(c), c.Param("id"), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), middleware.AdminEmail(c), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Message(c, "Booking deleted successfully")
}
