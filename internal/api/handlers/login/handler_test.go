package login

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/service/accounts"
	accountModels "github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type stubService struct {
	user *accountModels.UserResponse
	err  error
}

func (s *stubService) Authenticate(_ context.Context, _, _ string) (*accountModels.UserResponse, error) {
	return s.user, s.err
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := &stubService{user: &accountModels.UserResponse{
		ID:       "u1",
		Username: "tenzin",
		Email:    "tenzin@example.com",
		FullName: "Tenzin Bhutia",
	}}

	h := NewHandler(svc, logger.Discard())
	rec := doRequest(h, `{"email":"tenzin@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	// Пользователь приходит в обертке "user", пароль наружу не отдается
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Contains(t, raw, "user")

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "tenzin@example.com", resp.User.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHandler_InvalidCredentials(t *testing.T) {
	h := NewHandler(&stubService{err: accounts.ErrInvalidCredentials}, logger.Discard())
	rec := doRequest(h, `{"email":"tenzin@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_BadJSON(t *testing.T) {
	h := NewHandler(&stubService{}, logger.Discard())
	rec := doRequest(h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
