package signup

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

func (s *stubService) Register(_ context.Context, _ *accountModels.RegisterRequest) (*accountModels.UserResponse, error) {
	return s.user, s.err
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
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
	rec := doRequest(h, `{"username":"tenzin","email":"tenzin@example.com","password":"secret1","fullName":"Tenzin Bhutia"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	// Созданный пользователь приходит в обертке "user"
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Contains(t, raw, "user")

	var resp SignupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "tenzin", resp.User.Username)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHandler_EmailTaken(t *testing.T) {
	h := NewHandler(&stubService{err: accounts.ErrEmailTaken}, logger.Discard())
	rec := doRequest(h, `{"username":"tenzin","email":"tenzin@example.com","password":"secret1","fullName":"Tenzin Bhutia"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgEmailTaken)
}

func TestHandler_BadJSON(t *testing.T) {
	h := NewHandler(&stubService{}, logger.Discard())
	rec := doRequest(h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
