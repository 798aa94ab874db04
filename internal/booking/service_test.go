package booking

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	bookings map[string]*Booking
	nextID   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[string]*Booking)}
}

func (r *fakeRepository) Create(ctx context.Context, b *Booking) error {
	r.nextID++
	b.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", r.nextID)
	b.CreatedAt = time.Now()
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			copied := *b
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRepository) ListAll(ctx context.Context) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		copied := *b
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRepository) UpdateStatus(ctx context.Context, id, userID string, status Status) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.UserID != userID {
		return nil, ErrNotFound
	}
	b.Status = status
	copied := *b
	return &copied, nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, zap.NewNop())
}

func validCreateRequest(userID string) CreateRequest {
	return CreateRequest{
		UserID:       userID,
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

func TestCreateBooking(t *testing.T) {
	svc := newTestService(newFakeRepository())
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest("user-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusUpcoming, b.Status)
	assert.Equal(t, 900.0, b.TotalAmount, "2.5 hours at 300/h should bill 900")
	assert.Equal(t, "Royal Enfield Classic", b.BikeName)
}

func TestCreateBookingInvalidTime(t *testing.T) {
	svc := newTestService(newFakeRepository())
	ctx := context.Background()

	req := validCreateRequest("user-1")
	req.StartTime = "ten"
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestListMine(t *testing.T) {
	svc := newTestService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest("user-1"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, validCreateRequest("user-2"))
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "user-1", mine[0].UserID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetStatus(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest("user-1"))
	require.NoError(t, err)

	t.Run("Owner Can Update", func(t *testing.T) {
		updated, err := svc.SetStatus(ctx, b.ID, "user-1", StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, updated.Status)
	})

	t.Run("Terminal Status Can Be Overwritten", func(t *testing.T) {
		updated, err := svc.SetStatus(ctx, b.ID, "user-1", StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, updated.Status)
	})

	t.Run("Non-Owner Gets Not Found", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, b.ID, "user-2", StatusCancelled)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, b.ID, "user-1", Status("finished"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Missing Booking", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, "00000000-0000-0000-0000-999999999999", "user-1", StatusCancelled)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
