package api

import (
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.roomCommands.CreateRoom(c.Request.Context(), commands.CreateRoomInput{
		Label:            req.Label,
		Category:         req.Category,
		NightlyRateCents: req.NightlyRateCents,
		Capacity:         req.Capacity,
	})
	if err != nil {
		h.writeRoomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.roomCommands.UpdateRoom(c.Request.Context(), id, commands.UpdateRoomInput{
		Label:            req.Label,
		Category:         req.Category,
		NightlyRateCents: req.NightlyRateCents,
		Capacity:         req.Capacity,
	})
	if err != nil {
		h.writeRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

func (h *RoomHandler) DeactivateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.roomCommands.DeactivateRoom(c.Request.Context(), id)
	if err != nil {
		h.writeRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	var (
		views []*queries.RoomView
		err   error
	)
	if c.Query("include_inactive") == "true" {
		views, err = h.roomQueries.ListAll(c.Request.Context())
	} else {
		views, err = h.roomQueries.ListActive(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

func (h *RoomHandler) writeRoomError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, commands.ErrDuplicateLabel):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room label already in use", nil)
	case errs.Is(err, commands.ErrInvalidRoom):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid room spec", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
