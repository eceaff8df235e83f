package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanmoss/tally/internal/store"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, VerifyPassword("hunter2", hash))
	assert.False(t, VerifyPassword("hunter3", hash))
	assert.False(t, VerifyPassword("hunter2", "not-a-hash"))
}

func newTestManager(t *testing.T, ttl time.Duration) (*Manager, *store.DB, store.User) {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	u := store.User{ID: uuid.NewString(), Email: "a@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, db.CreateUser(u))

	return NewManager(db, ttl, false), db, u
}

func requestWithToken(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	return r
}

func TestSessionLifecycle(t *testing.T) {
	m, _, u := newTestManager(t, time.Hour)

	s, err := m.Create(u.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)

	userID, err := m.Resolve(requestWithToken(s.Token))
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)

	require.NoError(t, m.Destroy(requestWithToken(s.Token)))
	userID, err = m.Resolve(requestWithToken(s.Token))
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestResolve_NoCookie(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour)
	userID, err := m.Resolve(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestResolve_ExpiredSession(t *testing.T) {
	m, _, u := newTestManager(t, -time.Minute)
	s, err := m.Create(u.ID)
	require.NoError(t, err)

	userID, err := m.Resolve(requestWithToken(s.Token))
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestMiddleware(t *testing.T) {
	m, _, u := newTestManager(t, time.Hour)
	s, err := m.Create(u.ID)
	require.NoError(t, err)

	var seenUserID string
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = UserID(r.Context())
	}))

	// Authenticated request passes through with the user in context.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithToken(s.Token))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, u.ID, seenUserID)

	// Unauthenticated request is rejected.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
}

func TestCookieFlags(t *testing.T) {
	m, _, u := newTestManager(t, time.Hour)
	s, err := m.Create(u.ID)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.SetCookie(rec, s)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	rec = httptest.NewRecorder()
	m.ClearCookie(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}
