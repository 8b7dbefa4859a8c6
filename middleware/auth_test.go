package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/OishiSharmeen04/TravelEase-server/utils"
)

type stubVerifier struct {
	identity *utils.Identity
	err      error
	calls    int
}

func (s *stubVerifier) Verify(token string) (*utils.Identity, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.identity, nil
}

func invoke(t *testing.T, header string, v utils.TokenVerifier) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/my-vehicles/a@x.com", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	invoked := false
	next := func(c echo.Context) error {
		invoked = true
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, RequireAuth(v)(next)(c))
	return c, rec, invoked
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	v := &stubVerifier{}
	_, rec, invoked := invoke(t, "", v)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, invoked)
	require.Zero(t, v.calls)
}

func TestRequireAuth_NotBearer(t *testing.T) {
	v := &stubVerifier{}
	_, rec, invoked := invoke(t, "Basic dXNlcjpwYXNz", v)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, invoked)
	require.Zero(t, v.calls)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	v := &stubVerifier{err: errors.New("expired")}
	_, rec, invoked := invoke(t, "Bearer bad-token", v)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, invoked)
	require.Equal(t, 1, v.calls)
}

func TestRequireAuth_AttachesEmail(t *testing.T) {
	v := &stubVerifier{identity: &utils.Identity{Email: "a@x.com"}}
	c, rec, invoked := invoke(t, "Bearer good-token", v)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, invoked)
	require.Equal(t, "a@x.com", c.Get("user_email"))
}
