package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"store-ratings/internal/apperr"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	signupResp *response.SignupResponse
	err        error
}

func (s *stubAuthService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	return s.signupResp, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	return nil, s.err
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	return s.err
}

func (s *stubAuthService) EnsureSeedAdmin(ctx context.Context) error {
	return s.err
}

func doSignup(h *AuthHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)
	return rec
}

func TestSignupHandlerSuccess(t *testing.T) {
	stub := &stubAuthService{signupResp: &response.SignupResponse{ID: uuid.New().String(), Email: "a@example.com"}}
	h := NewAuthHandler(stub, zap.NewNop())

	rec := doSignup(h, `{"name":"x","email":"a@example.com","address":"y","password":"z"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@example.com")
}

func TestSignupHandlerBadBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	rec := doSignup(h, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("Validation failed", map[string]string{"email": "must be a valid email"}), http.StatusBadRequest},
		{"unauthorized", apperr.Unauthorized("Invalid credentials"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("Forbidden"), http.StatusForbidden},
		{"not found", apperr.NotFound("Not found"), http.StatusNotFound},
		{"conflict", apperr.Conflict("Email already registered"), http.StatusConflict},
		{"internal", apperr.Internal("boom", assert.AnError), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{err: tt.err}, zap.NewNop())
			rec := doSignup(h, `{}`)
			assert.Equal(t, tt.want, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSignupHandlerValidationIssues(t *testing.T) {
	err := apperr.Validation("Validation failed", map[string]string{"email": "must be a valid email"})
	h := NewAuthHandler(&stubAuthService{err: err}, zap.NewNop())

	rec := doSignup(h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string            `json:"error"`
		Issues map[string]string `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Error)
	assert.Equal(t, "must be a valid email", body.Issues["email"])
}
