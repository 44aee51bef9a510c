package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/hotelsuite/hotel-management-api/internal/models"
)

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *models.User) error
	findByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	existsUsernameFn func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}
func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.findByUsernameFn(ctx, username)
}
func (m *mockUserRepo) ExistsUsername(ctx context.Context, username string) (bool, error) {
	if m.existsUsernameFn != nil {
		return m.existsUsernameFn(ctx, username)
	}
	return false, nil
}

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	var created *models.User
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			created = user
			return nil
		},
	}

	svc := NewAuthService(repo, "secret", time.Hour, nil)
	user, err := svc.Register(context.Background(), "front-desk", "s3cret!", "")

	assert.NoError(t, err)
	assert.Equal(t, "staff", user.Role)
	if assert.NotNil(t, created) {
		assert.NotEqual(t, "s3cret!", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret!")))
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := &mockUserRepo{
		existsUsernameFn: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}

	svc := NewAuthService(repo, "secret", time.Hour, nil)
	_, err := svc.Register(context.Background(), "front-desk", "s3cret!", "staff")

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_IssuesSignedToken(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.DefaultCost)
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: "front-desk", PasswordHash: string(hash), Role: "admin"}, nil
		},
	}

	issued := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc := NewAuthService(repo, "secret", 8*time.Hour, func() time.Time { return issued })
	token, user, err := svc.Login(context.Background(), "front-desk", "s3cret!")

	assert.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return issued }))
	assert.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "front-desk", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, float64(issued.Add(8*time.Hour).Unix()), claims["exp"])
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.DefaultCost)
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{Username: "front-desk", PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(repo, "secret", time.Hour, nil)
	_, _, err := svc.Login(context.Background(), "front-desk", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return nil, assert.AnError
		},
	}

	svc := NewAuthService(repo, "secret", time.Hour, nil)
	_, _, err := svc.Login(context.Background(), "nobody", "s3cret!")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
