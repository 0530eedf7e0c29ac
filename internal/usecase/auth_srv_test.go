package usecase

import (
	"context"
	"testing"
	"time"

	"store-ratings/internal/apperr"
	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"
	"store-ratings/pkg/auth"
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(cfg *utils.Config) (AuthService, *repository.Repository, *auth.TokenIssuer) {
	repo, _, _, _ := newFakeRepository()
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	if cfg == nil {
		cfg = &utils.Config{}
	}
	svc := NewAuthService(repo, issuer, cfg, zap.NewNop())
	return svc, repo, issuer
}

func validSignup() *request.SignupRequest {
	return &request.SignupRequest{
		Name:     "Jonathan Maxwell Harrington",
		Email:    "jonathan@example.com",
		Address:  "12 Main Street, Springfield",
		Password: "Secret!123",
	}
}

func TestSignupCreatesUserRole(t *testing.T) {
	svc, repo, _ := newAuthFixture(nil)

	resp, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "jonathan@example.com", resp.Email)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	user, err := repo.User.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NotEqual(t, "Secret!123", user.PasswordHash)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(nil)

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), validSignup())
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestSignupValidation(t *testing.T) {
	svc, _, _ := newAuthFixture(nil)

	tests := []struct {
		name   string
		mutate func(*request.SignupRequest)
	}{
		{"short name", func(r *request.SignupRequest) { r.Name = "Too Short" }},
		{"bad email", func(r *request.SignupRequest) { r.Email = "not-an-email" }},
		{"weak password", func(r *request.SignupRequest) { r.Password = "weakpass" }},
		{"missing address", func(r *request.SignupRequest) { r.Address = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(req)
			_, err := svc.Signup(context.Background(), req)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.NotEmpty(t, apperr.IssuesOf(err))
		})
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _, issuer := newAuthFixture(nil)

	signup, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "jonathan@example.com",
		Password: "Secret!123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, signup.ID, resp.User.ID)
	assert.Equal(t, entity.RoleUser, resp.User.Role)

	claims, err := issuer.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, signup.ID, claims.UserID)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "jonathan@example.com", claims.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture(nil)

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error.
	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "jonathan@example.com",
		Password: "Wrong!1234",
	})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Secret!123",
	})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newAuthFixture(nil)

	signup, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	userID := uuid.MustParse(signup.ID)

	err = svc.ChangePassword(context.Background(), userID, &request.ChangePasswordRequest{
		OldPassword: "Secret!123",
		NewPassword: "Rotated!456",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "jonathan@example.com",
		Password: "Secret!123",
	})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "jonathan@example.com",
		Password: "Rotated!456",
	})
	assert.NoError(t, err)
}

func TestChangePasswordWrongOld(t *testing.T) {
	svc, _, _ := newAuthFixture(nil)

	signup, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), uuid.MustParse(signup.ID), &request.ChangePasswordRequest{
		OldPassword: "NotTheOne!1",
		NewPassword: "Rotated!456",
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestChangePasswordUnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture(nil)

	err := svc.ChangePassword(context.Background(), uuid.New(), &request.ChangePasswordRequest{
		OldPassword: "Secret!123",
		NewPassword: "Rotated!456",
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestEnsureSeedAdmin(t *testing.T) {
	cfg := &utils.Config{
		Admin: utils.AdminConfig{
			Name:     "Platform Administrator Account",
			Email:    "admin@example.com",
			Password: "Admin!12345",
			Address:  "1 Admin Plaza",
		},
	}
	svc, repo, _ := newAuthFixture(cfg)

	require.NoError(t, svc.EnsureSeedAdmin(context.Background()))

	admin, err := repo.User.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	// Idempotent across restarts
	require.NoError(t, svc.EnsureSeedAdmin(context.Background()))
	total, err := repo.User.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestEnsureSeedAdminWithoutConfig(t *testing.T) {
	svc, repo, _ := newAuthFixture(&utils.Config{})

	require.NoError(t, svc.EnsureSeedAdmin(context.Background()))

	total, err := repo.User.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}
