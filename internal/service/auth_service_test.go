package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"charterflow-be/internal/dto"
	"charterflow-be/internal/model"
	"charterflow-be/internal/pkg/apperror"
	"charterflow-be/internal/pkg/logger"
	"charterflow-be/internal/pkg/sessions"
	"charterflow-be/internal/repository/memory"
	"charterflow-be/internal/repository/unitofwork"
	"charterflow-be/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB, store *memory.VerificationStore) service.IAuthService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	return service.NewAuthService(
		unitofwork.NewRepositoryFactory(db),
		store,
		sessions.NewTokenBlacklist(nil),
		nil,
		nil,
		logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false),
	)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, memory.NewVerificationStore())
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Email:     "pilot@example.com",
		Password:  "long-enough-pw",
		FirstName: "Amy",
		LastName:  "Pilot",
	}

	res, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "pilot@example.com", res.Email)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Code)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, memory.NewVerificationStore())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "pilot@example.com",
		Password:  "long-enough-pw",
		FirstName: "Amy",
		LastName:  "Pilot",
	})
	require.NoError(t, err)

	var m model.User
	require.NoError(t, db.First(&m, "email = ?", "pilot@example.com").Error)
	require.NotNil(t, m.PasswordHash)
	assert.NotEqual(t, "long-enough-pw", *m.PasswordHash)
	assert.False(t, m.IsEmailVerified)
	assert.True(t, m.IsActive)
}

func TestLoginIssuesTokenAndBumpsLastLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, memory.NewVerificationStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:     "pilot@example.com",
		Password:  "long-enough-pw",
		FirstName: "Amy",
		LastName:  "Pilot",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "pilot@example.com",
		Password: "long-enough-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)

	token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.NotEmpty(t, claims["user_id"])
	assert.NotEmpty(t, claims["jti"])

	var m model.User
	require.NoError(t, db.First(&m, "email = ?", "pilot@example.com").Error)
	assert.NotNil(t, m.LastLoginAt)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, memory.NewVerificationStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:     "pilot@example.com",
		Password:  "long-enough-pw",
		FirstName: "Amy",
		LastName:  "Pilot",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "pilot@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Code)

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "long-enough-pw",
	})
	require.Error(t, err)
	appErr, ok = err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Code)
}

func TestVerifyEmailFlipsFlag(t *testing.T) {
	db := newTestDB(t)
	store := memory.NewVerificationStore()
	svc := newAuthService(t, db, store)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:     "pilot@example.com",
		Password:  "long-enough-pw",
		FirstName: "Amy",
		LastName:  "Pilot",
	})
	require.NoError(t, err)

	code, found := store.Get("pilot@example.com")
	require.True(t, found)

	// Wrong code is rejected.
	err = svc.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "pilot@example.com", Code: "000000x"})
	require.Error(t, err)

	require.NoError(t, svc.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "pilot@example.com", Code: code}))

	var m model.User
	require.NoError(t, db.First(&m, "email = ?", "pilot@example.com").Error)
	assert.True(t, m.IsEmailVerified)

	// The code is single use.
	err = svc.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "pilot@example.com", Code: code})
	require.Error(t, err)
}
