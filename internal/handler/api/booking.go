package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		abortMissingGuest(c)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkIn, checkOut, err := req.StayDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use the 2006-01-02 format", nil)
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), guestID, commands.CreateBookingInput{
		RoomID:     req.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		Note:       req.Note,
	})
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		abortMissingGuest(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.CancelBooking(c.Request.Context(), guestID, id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		abortMissingGuest(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), guestID, id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Booking belongs to another guest", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) GetGuestBookings(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		abortMissingGuest(c)
		return
	}

	views, err := h.bookingQueries.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// GetRoomBookings lists a room's active bookings, its occupancy calendar.
func (h *BookingHandler) GetRoomBookings(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	views, err := h.bookingQueries.ListByRoom(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, commands.ErrRoomInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Room is not bookable", nil)
	case errs.Is(err, commands.ErrInvalidStayRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out date must be after check-in date", nil)
	case errs.Is(err, commands.ErrInvalidGuestInfo):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid guest contact", nil)
	case errs.Is(err, commands.ErrBookingConflict):
		h.writeConflict(c, err)
	case errs.Is(err, commands.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already cancelled", nil)
	case errs.Is(err, commands.ErrPastCheckIn):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Stay has already begun", nil)
	case errs.Is(err, commands.ErrNotBookingHolder):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Booking belongs to another guest", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// writeConflict surfaces the conflicting stay when the rejection carries one.
func (h *BookingHandler) writeConflict(c *gin.Context, err error) {
	var detail any
	var conflict *commands.ConflictError
	if errors.As(err, &conflict) {
		detail = gin.H{
			"conflict": gin.H{
				"booking_id": conflict.BookingID,
				"check_in":   conflict.CheckIn.Format(time.DateOnly),
				"check_out":  conflict.CheckOut.Format(time.DateOnly),
			},
		}
	}

	httperr.AbortWithError(c, http.StatusConflict, err, "Room already booked for an overlapping range", detail)
}

func abortMissingGuest(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusInternalServerError,
		errs.New("guest id missing from context"), "Internal server error", nil)
}
