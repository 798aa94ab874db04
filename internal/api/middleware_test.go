package api

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
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bharanipt/bike-rental-backend/internal/auth"
	"github.com/bharanipt/bike-rental-backend/internal/bike"
	bikeHttp "github.com/bharanipt/bike-rental-backend/internal/bike/http"
	"github.com/bharanipt/bike-rental-backend/internal/user"
)

// fakeUserRepository is an in-memory user store for middleware tests.
type fakeUserRepository struct {
	users  map[string]*user.User
	nextID int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*user.User)}
}

func (r *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

// fakeBikeRepository is an in-memory bike store for middleware tests.
type fakeBikeRepository struct {
	bikes  map[int64]*bike.Bike
	nextID int64
}

func newFakeBikeRepository() *fakeBikeRepository {
	return &fakeBikeRepository{bikes: make(map[int64]*bike.Bike)}
}

func (r *fakeBikeRepository) Create(ctx context.Context, b *bike.Bike) error {
	r.nextID++
	b.ID = r.nextID
	copied := *b
	r.bikes[b.ID] = &copied
	return nil
}

func (r *fakeBikeRepository) GetByID(ctx context.Context, id int64) (*bike.Bike, error) {
	b, ok := r.bikes[id]
	if !ok {
		return nil, bike.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBikeRepository) List(ctx context.Context) ([]*bike.Bike, error) {
	out := make([]*bike.Bike, 0, len(r.bikes))
	for id := int64(1); id <= r.nextID; id++ {
		if b, ok := r.bikes[id]; ok {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeBikeRepository) Update(ctx context.Context, b *bike.Bike) error {
	if _, ok := r.bikes[b.ID]; !ok {
		return bike.ErrNotFound
	}
	copied := *b
	r.bikes[b.ID] = &copied
	return nil
}

func (r *fakeBikeRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := r.bikes[id]; !ok {
		return bike.ErrNotFound
	}
	delete(r.bikes, id)
	return nil
}

func (r *fakeBikeRepository) Count(ctx context.Context) (int, error) {
	return len(r.bikes), nil
}

func (r *fakeBikeRepository) UpdateImageByName(ctx context.Context, name, oldPrefix, newImage string) (int64, error) {
	return 0, nil
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userRepo := newFakeUserRepository()
	hasher := auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost)
	userService := user.NewService(userRepo, hasher, zap.NewNop())
	bikeService := bike.NewService(newFakeBikeRepository(), zap.NewNop())
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	regular, err := userService.Register(context.Background(), "Regular", "regular@example.com", "password123")
	require.NoError(t, err)

	storeAdmin := &user.User{
		Name:         "Store Admin",
		Email:        "storeadmin@example.com",
		PasswordHash: "irrelevant",
		IsAdmin:      true,
	}
	require.NoError(t, userRepo.Create(context.Background(), storeAdmin))

	r := gin.New()
	group := r.Group("/api")
	bikeHttp.RegisterRoutes(group, bikeHttp.NewHandler(bikeService), auth.AuthRequired(jwtManager), RequireAdmin(userService))

	createBike := func(userID string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(bikeHttp.CreateBikeBody{
			Name:         "Test Bike",
			Type:         "Gear",
			PricePerHour: 100,
		})
		req := httptest.NewRequest("POST", "/api/bikes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if userID != "" {
			token, err := jwtManager.Generate(userID)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("No Token", func(t *testing.T) {
		w := createBike("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Non-Admin Forbidden", func(t *testing.T) {
		w := createBike(regular.ID)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Unknown User", func(t *testing.T) {
		w := createBike("ghost-id")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Demo Admin Allowed", func(t *testing.T) {
		w := createBike("admin-demo-id")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Store Admin Allowed", func(t *testing.T) {
		w := createBike(storeAdmin.ID)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Public Read Needs No Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/bikes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
