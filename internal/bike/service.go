package bike

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type CreateRequest struct {
	Name         string
	Type         Type
	PricePerHour float64
	Image        string
	Description  string
}

type UpdateRequest struct {
	Name         *string
	Type         *Type
	PricePerHour *float64
	Image        *string
	Description  *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Bike, error)
	GetByID(ctx context.Context, id int64) (*Bike, error)
	List(ctx context.Context) ([]*Bike, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Bike, error)
	Delete(ctx context.Context, id int64) error

	// EnsureDefaults seeds the stock catalog into an empty table and
	// rewrites legacy placeholder image paths. Called once on startup.
	EnsureDefaults(ctx context.Context) error
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

func (s *service) Create(ctx context.Context, req CreateRequest) (*Bike, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !ValidType(req.Type) {
		return nil, ErrInvalidType
	}
	if req.PricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}

	b := &Bike{
		Name:         strings.TrimSpace(req.Name),
		Type:         req.Type,
		PricePerHour: req.PricePerHour,
		Image:        req.Image,
		Description:  req.Description,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Bike, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Bike, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Bike, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		if !ValidType(*req.Type) {
			return nil, ErrInvalidType
		}
		b.Type = *req.Type
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrInvalidPrice
		}
		b.PricePerHour = *req.PricePerHour
	}
	if req.Image != nil {
		b.Image = *req.Image
	}
	if req.Description != nil {
		b.Description = *req.Description
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a bike from the catalog. Existing bookings keep their
// snapshot of the bike's fields and are not touched.
func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) EnsureDefaults(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}

	if n == 0 {
		for i := range defaultCatalog {
			b := defaultCatalog[i]
			if err := s.repo.Create(ctx, &b); err != nil {
				return err
			}
		}
		s.log.Info("seeded default bike catalog", zap.Int("bikes", len(defaultCatalog)))
		return nil
	}

	// Migration: admin-saved catalogs from earlier releases stored local
	// placeholder paths instead of per-bike web images.
	var migrated int64
	for name, image := range legacyImageByName {
		rows, err := s.repo.UpdateImageByName(ctx, name, "/images/", image)
		if err != nil {
			return err
		}
		migrated += rows
	}
	if migrated > 0 {
		s.log.Info("migrated legacy bike images", zap.Int64("rows", migrated))
	}

	return nil
}
