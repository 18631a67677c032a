package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/softcybersec/superd/internal/http/auth"
	"github.com/softcybersec/superd/internal/http/middleware"
	"github.com/softcybersec/superd/internal/school"
	"github.com/softcybersec/superd/internal/session"
	"github.com/softcybersec/superd/internal/user"
)

func newTestServer(t *testing.T) (*httptest.Server, session.Store) {
	t.Helper()

	ctrl := gomock.NewController(t)

	userRepo := user.NewMockRepository(ctrl)
	users := user.NewService(userRepo, "pepper")

	userRepo.EXPECT().
		GetByEmail(gomock.Any(), "claire@superd.net").
		Return(&user.User{
			ID:           1,
			Email:        "claire@superd.net",
			PasswordHash: users.HashPassword("pass123"),
			FirstName:    "Claire",
			SchoolID:     2,
		}, nil).
		AnyTimes()
	userRepo.EXPECT().
		GetByEmail(gomock.Any(), gomock.Any()).
		Return(nil, user.ErrNotFound).
		AnyTimes()

	schoolRepo := school.NewMockRepository(ctrl)
	schoolRepo.EXPECT().
		GetByID(gomock.Any(), int64(2)).
		Return(&school.School{ID: 2, Reference: "SiretDuPlessis", Name: "Plessis"}, nil).
		AnyTimes()

	sessions := session.NewMemory(time.Hour)

	router := chi.NewRouter()
	auth.NewHandler(users, school.NewService(schoolRepo), sessions).Routes(router)

	// A token-gated probe route, to exercise the middleware round-trip.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Auth(sessions))
		r.Get("/probe", func(w http.ResponseWriter, r *http.Request) {
			s, _ := middleware.SessionFrom(r.Context())
			_ = json.NewEncoder(w).Encode(s)
		})
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, sessions
}

func postLogin(t *testing.T, srv *httptest.Server, email, password string) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	return resp
}

func TestLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postLogin(t, srv, "claire@superd.net", "pass123")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Token  string         `json:"token"`
		User   map[string]any `json:"user"`
		School map[string]any `json:"school"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.NotEmpty(t, got.Token)
	assert.Equal(t, "claire@superd.net", got.User["email"])
	assert.Equal(t, "Plessis", got.School["name"])

	// The password hash must never be serialized.
	assert.NotContains(t, got.User, "passwordHash")
	assert.NotContains(t, got.User, "PasswordHash")
}

func TestLogin_BadCredentials(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, tc := range []struct{ email, password string }{
		{"claire@superd.net", "wrong"},
		{"nobody@superd.net", "pass123"},
	} {
		resp := postLogin(t, srv, tc.email, tc.password)
		resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestAuthMiddlewareRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postLogin(t, srv, "claire@superd.net", "pass123")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/probe", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.TokenHeader, login.Token)

	probeResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer probeResp.Body.Close()

	require.Equal(t, http.StatusOK, probeResp.StatusCode)

	var s session.Session
	require.NoError(t, json.NewDecoder(probeResp.Body).Decode(&s))
	assert.Equal(t, int64(1), s.UserID)
	assert.Equal(t, int64(2), s.SchoolID)

	// Without a token the probe is rejected.
	noToken, err := http.Get(srv.URL + "/probe")
	require.NoError(t, err)
	noToken.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, noToken.StatusCode)
}

func TestLogout(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postLogin(t, srv, "claire@superd.net", "pass123")
	defer resp.Body.Close()

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))

	logout := func() int {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/logout", nil)
		require.NoError(t, err)
		req.Header.Set(middleware.TokenHeader, login.Token)

		r, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		r.Body.Close()

		return r.StatusCode
	}

	assert.Equal(t, http.StatusNoContent, logout())

	// The removed token no longer authenticates.
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/probe", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.TokenHeader, login.Token)

	probeResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	probeResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, probeResp.StatusCode)

	// Logout is idempotent.
	assert.Equal(t, http.StatusNoContent, logout())
}
