package api

import (
	"net/http"
	"time"

	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availQueries: availQueries,
	}
}

// SearchAvailable lists every active room free for the whole requested range.
func (h *AvailabilityHandler) SearchAvailable(c *gin.Context) {
	checkIn, checkOut, ok := parseStayQuery(c)
	if !ok {
		return
	}

	views, err := h.availQueries.SearchAvailable(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		h.writeAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// CheckRoom answers availability for one room. With check_in and check_out it
// checks the whole range; without them it checks the current instant.
func (h *AvailabilityHandler) CheckRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var (
		available bool
		err       error
	)
	if c.Query("check_in") == "" && c.Query("check_out") == "" {
		available, err = h.availQueries.IsAvailableNow(c.Request.Context(), id, time.Now())
	} else {
		checkIn, checkOut, parsed := parseStayQuery(c)
		if !parsed {
			return
		}
		available, err = h.availQueries.IsAvailableForRange(c.Request.Context(), id, checkIn, checkOut)
	}
	if err != nil {
		h.writeAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		RoomID:    id,
		Available: available,
	})
}

func (h *AvailabilityHandler) writeAvailabilityError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrInvalidStayRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out date must be after check-in date", nil)
	case errs.Is(err, queries.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseStayQuery(c *gin.Context) (checkIn, checkOut time.Time, ok bool) {
	checkIn, err := time.Parse(time.DateOnly, c.Query("check_in"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "check_in must use the 2006-01-02 format", nil)
		return time.Time{}, time.Time{}, false
	}
	checkOut, err = time.Parse(time.DateOnly, c.Query("check_out"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "check_out must use the 2006-01-02 format", nil)
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}
