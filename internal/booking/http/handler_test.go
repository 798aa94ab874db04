package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharanipt/bike-rental-backend/internal/auth"
	"github.com/bharanipt/bike-rental-backend/internal/booking"
)

// fakeService is an in-memory booking.Service for handler tests. owners
// stands in for the users table the real ListAll joins against.
type fakeService struct {
	bookings map[string]*booking.Booking
	owners   map[string][2]string // user id -> name, email
	nextID   int
}

func newFakeService() *fakeService {
	return &fakeService{
		bookings: make(map[string]*booking.Booking),
		owners:   make(map[string][2]string),
	}
}

func (s *fakeService) Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	total, err := booking.ComputeTotal(req.Date, req.StartTime, req.EndTime, req.PricePerHour)
	if err != nil {
		return nil, err
	}
	s.nextID++
	b := &booking.Booking{
		ID:           fmt.Sprintf("00000000-0000-0000-0000-%012d", s.nextID),
		UserID:       req.UserID,
		BikeID:       req.BikeID,
		BikeName:     req.BikeName,
		BikeType:     req.BikeType,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		License:      req.License,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		PricePerHour: req.PricePerHour,
		TotalAmount:  total,
		Status:       booking.StatusUpcoming,
		CreatedAt:    time.Now(),
	}
	s.bookings[b.ID] = b
	return b, nil
}

func (s *fakeService) ListMine(ctx context.Context, userID string) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeService) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range s.bookings {
		copied := *b
		if owner, ok := s.owners[b.UserID]; ok {
			copied.OwnerName = owner[0]
			copied.OwnerEmail = owner[1]
		}
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeService) SetStatus(ctx context.Context, id, userID string, status booking.Status) (*booking.Booking, error) {
	if !booking.ValidStatus(status) {
		return nil, booking.ErrInvalidStatus
	}
	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return nil, booking.ErrNotFound
	}
	b.Status = status
	return b, nil
}

func setupRouter(svc booking.Service, m *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api")
	RegisterRoutes(group, NewHandler(svc), auth.AuthRequired(m))
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() CreateBookingBody {
	return CreateBookingBody{
		BikeID:       1,
		BikeName:     "Royal Enfield Classic",
		BikeType:     "Gear",
		CustomerName: "Tester",
		Phone:        "9876543210",
		Address:      "12 Main Street",
		License:      "TN01AB1234",
		Date:         "2026-09-01",
		StartTime:    "10:00",
		EndTime:      "12:30",
		PricePerHour: 300,
	}
}

func TestBookingRoutes(t *testing.T) {
	m := auth.NewJWTManager("test-secret", time.Hour)
	svc := newFakeService()
	svc.owners["user-1"] = [2]string{"Tester", "test@example.com"}
	r := setupRouter(svc, m)

	token, err := m.Generate("user-1")
	require.NoError(t, err)
	otherToken, err := m.Generate("user-2")
	require.NoError(t, err)

	var bookingID string

	t.Run("Create Without Token", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/bookings", validBody(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Create With Bad Token", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/bookings", validBody(), "garbage")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Create", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/bookings", validBody(), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Booking BookingResponse `json:"booking"`
			Message string          `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 900.0, resp.Booking.TotalAmount)
		assert.Equal(t, "upcoming", resp.Booking.Status)
		assert.Equal(t, "Booking created successfully", resp.Message)
		bookingID = resp.Booking.ID
	})

	t.Run("Create Missing Fields", func(t *testing.T) {
		body := validBody()
		body.Phone = ""
		w := doJSON(r, "POST", "/api/bookings", body, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("List Mine", func(t *testing.T) {
		w := doJSON(r, "GET", "/api/bookings", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Bookings []BookingResponse `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("List Mine Other User Empty", func(t *testing.T) {
		w := doJSON(r, "GET", "/api/bookings", nil, otherToken)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Bookings []BookingResponse `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Bookings, 0)
	})

	t.Run("List All With Any Token", func(t *testing.T) {
		w := doJSON(r, "GET", "/api/bookings/all", nil, otherToken)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Bookings []AdminBookingResponse `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Bookings, 1)

		owner := resp.Bookings[0].Owner
		assert.Equal(t, "user-1", owner.ID)
		assert.Equal(t, "Tester", owner.Name)
		assert.Equal(t, "test@example.com", owner.Email)
	})

	t.Run("Update Status", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/bookings/"+bookingID+"/status", UpdateStatusBody{Status: "cancelled"}, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cancelled")
	})

	t.Run("Update Status As Non-Owner", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/bookings/"+bookingID+"/status", UpdateStatusBody{Status: "completed"}, otherToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update Status Invalid Value", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/bookings/"+bookingID+"/status", UpdateStatusBody{Status: "finished"}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Update Status Malformed ID", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/bookings/not-a-uuid/status", UpdateStatusBody{Status: "cancelled"}, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
