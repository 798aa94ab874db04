package booking

import (
	"context"

	"go.uber.org/zap"
)

// CreateRequest carries everything a booking snapshots at creation time.
// Bike fields arrive from the caller and are stored as-is; the catalog is
// not consulted again once a booking exists.
type CreateRequest struct {
	UserID       string
	BikeID       int64
	BikeName     string
	BikeType     string
	CustomerName string
	Phone        string
	Address      string
	License      string
	Date         string
	StartTime    string
	EndTime      string
	PricePerHour float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	ListMine(ctx context.Context, userID string) ([]*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	SetStatus(ctx context.Context, id, userID string, status Status) (*Booking, error)
}

type service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) Service {
	return &service{
		repo: repo,
		log:  log,
	}
}

// Create computes the total amount from the rental window (whole hours,
// rounded up) and persists the booking with status "upcoming". Time-range
// sanity (end after start, date not in the past) is deliberately not
// enforced here; the booking form owns that check.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	total, err := ComputeTotal(req.Date, req.StartTime, req.EndTime, req.PricePerHour)
	if err != nil {
		return nil, err
	}

	b := &Booking{
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
		Status:       StatusUpcoming,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("user_id", b.UserID),
		zap.Int64("bike_id", b.BikeID),
		zap.Float64("total_amount", b.TotalAmount),
	)

	return b, nil
}

// ListMine returns the caller's bookings, most recent first.
func (s *service) ListMine(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListAll returns every booking across all owners with owner name/email
// joined in. Any authenticated caller may invoke this.
func (s *service) ListAll(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListAll(ctx)
}

// SetStatus overwrites the status of a booking owned by userID. The new
// status only has to be a member of the enum; transitions out of terminal
// states are not rejected here.
func (s *service) SetStatus(ctx context.Context, id, userID string, status Status) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, userID, status)
}
