package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth/gothic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedInRequest(t *testing.T, id uint) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/campgrounds", nil)
	session, err := gothic.Store.Get(req, sessionName)
	require.NoError(t, err)
	session.Values["user_id"] = id

	rec := httptest.NewRecorder()
	require.NoError(t, session.Save(req, rec))

	out := httptest.NewRequest(http.MethodGet, "/campgrounds", nil)
	for _, c := range rec.Result().Cookies() {
		out.AddCookie(c)
	}
	return out
}

func TestWithUser(t *testing.T) {
	gothic.Store = sessions.NewCookieStore([]byte("test-secret"))

	var got uint
	h := WithUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserID(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), signedInRequest(t, 42))
	assert.Equal(t, uint(42), got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/campgrounds", nil))
	assert.Zero(t, got, "anonymous request carries no principal")
}

func TestRequireUser(t *testing.T) {
	gothic.Store = sessions.NewCookieStore([]byte("test-secret"))

	called := false
	h := WithUser(RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, signedInRequest(t, 7))
	assert.True(t, called)
}
