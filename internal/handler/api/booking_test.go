package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"
	"staybook/internal/infra/memstore"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/jwt"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	store   *memstore.Store
	clk     *clock.MockClock
	jwtSvc  *jwt.Service
	roomID  uuid.UUID
	guestID uuid.UUID
	token   string
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.clk = clock.NewMockClock(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	s.store = memstore.New(s.clk)
	s.jwtSvc = jwt.NewService("test-secret", time.Hour)

	roomEntity, err := builder.NewRoomBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.store.Rooms().Insert(context.Background(), roomEntity))
	s.roomID = roomEntity.ID()

	s.guestID = uuid.New()
	s.token, err = s.jwtSvc.GenerateToken(s.guestID, "ada@example.com")
	s.Require().NoError(err)

	factory := booking.NewFactory(booking.NewNightlyRateCalculator())
	bookingCommands := commands.NewBookingCommands(
		s.store.Bookings(), s.store.Rooms(), s.store.BookingReads(), factory, s.clk,
	)
	bookingQueries := queries.NewBookingQueries(s.store.BookingReads())
	handler := api.NewBookingHandler(bookingCommands, bookingQueries)
	authMw := middleware.NewAuthMiddleware(s.jwtSvc)

	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	authed := s.router.Group("/api/bookings")
	authed.Use(authMw.RequireAuth())
	authed.POST("", handler.CreateBooking)
	authed.GET("", handler.GetGuestBookings)
	authed.GET("/:id", handler.GetBooking)
	authed.DELETE("/:id", handler.CancelBooking)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) post(path string, body map[string]any, token string) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) delete(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) createBody() map[string]any {
	return map[string]any{
		"room_id":     s.roomID,
		"check_in":    "2026-01-01",
		"check_out":   "2026-01-05",
		"guest_name":  "Ada Lovelace",
		"guest_email": "ada@example.com",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("creates a booking", func() {
		w := s.post("/api/bookings", s.createBody(), s.token)
		s.Equal(http.StatusCreated, w.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("confirmed", resp["status"])
		s.Equal("2026-01-01", resp["checkIn"])
		s.Equal("2026-01-05", resp["checkOut"])
		s.EqualValues(4, resp["nights"])
		s.EqualValues(48_000, resp["totalCents"])
	})

	s.Run("rejects overlap with 409 and conflict details", func() {
		w := s.post("/api/bookings", s.createBody(), s.token)
		s.Require().Equal(http.StatusCreated, w.Code)

		body := s.createBody()
		body["check_in"] = "2026-01-03"
		body["check_out"] = "2026-01-07"
		w = s.post("/api/bookings", body, s.token)
		s.Equal(http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), "Room already booked")
		s.Contains(w.Body.String(), "conflict")
		s.Contains(w.Body.String(), "2026-01-01")
	})

	s.Run("requires authentication", func() {
		w := s.post("/api/bookings", s.createBody(), "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects a reversed range", func() {
		body := s.createBody()
		body["check_in"] = "2026-01-05"
		body["check_out"] = "2026-01-01"
		w := s.post("/api/bookings", body, s.token)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("rejects malformed dates", func() {
		body := s.createBody()
		body["check_in"] = "January 1st"
		w := s.post("/api/bookings", body, s.token)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown room yields 404", func() {
		body := s.createBody()
		body["room_id"] = uuid.New()
		w := s.post("/api/bookings", body, s.token)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	created := s.post("/api/bookings", s.createBody(), s.token)
	s.Require().Equal(http.StatusCreated, created.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(created.Body.Bytes(), &resp))
	bookingID := resp["id"].(string)

	s.Run("another guest cannot cancel", func() {
		otherToken, err := s.jwtSvc.GenerateToken(uuid.New(), "eve@example.com")
		s.Require().NoError(err)

		w := s.delete("/api/bookings/"+bookingID, otherToken)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("holder cancels", func() {
		w := s.delete("/api/bookings/"+bookingID, s.token)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "cancelled")
	})

	s.Run("second cancel yields 409", func() {
		w := s.delete("/api/bookings/"+bookingID, s.token)
		s.Equal(http.StatusConflict, w.Code)
	})
}
