package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/evanmoss/tally/internal/store"
)

// CookieName is the session cookie issued on sign-in.
const CookieName = "tally_session"

type contextKey string

const userIDKey contextKey = "userID"

// Manager issues, resolves, and destroys opaque session tokens persisted
// in the sessions table.
type Manager struct {
	db     *store.DB
	ttl    time.Duration
	secure bool
}

// NewManager creates a session manager. secure controls the cookie's
// Secure flag and should be set when serving over TLS.
func NewManager(db *store.DB, ttl time.Duration, secure bool) *Manager {
	return &Manager{db: db, ttl: ttl, secure: secure}
}

// generateToken creates a random opaque session token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Create opens a new session for the user and returns it.
func (m *Manager) Create(userID string) (store.Session, error) {
	token, err := generateToken()
	if err != nil {
		return store.Session{}, err
	}
	now := time.Now().UTC()
	s := store.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.db.CreateSession(s); err != nil {
		return store.Session{}, err
	}
	return s, nil
}

// Resolve looks up the request's session cookie and returns the user ID it
// belongs to. Missing, unknown, and expired sessions all resolve to "".
func (m *Manager) Resolve(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", nil
	}
	s, err := m.db.GetSession(cookie.Value)
	if err != nil {
		return "", err
	}
	if s == nil || time.Now().After(s.ExpiresAt) {
		return "", nil
	}
	return s.UserID, nil
}

// Destroy removes the request's session, if any.
func (m *Manager) Destroy(r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	return m.db.DeleteSession(cookie.Value)
}

// SetCookie attaches the session cookie to a response.
func (m *Manager) SetCookie(w http.ResponseWriter, s store.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware rejects unauthenticated requests with a 401 and stores the
// resolved user ID in the request context for handlers.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.Resolve(r)
		if err != nil || userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID stores a user ID in a context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID extracts the authenticated user ID from a request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
