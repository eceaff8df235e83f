package server

import (
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/evanmoss/tally/internal/auth"
	"github.com/evanmoss/tally/internal/store"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

const minPasswordLength = 8

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	existing, err := s.db.GetUserByEmail(req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create account")
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	u := store.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.db.CreateUser(u); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	s.issueSession(w, u, http.StatusCreated)
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.db.GetUserByEmail(req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}
	if u == nil || !auth.VerifyPassword(req.Password, u.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	s.issueSession(w, *u, http.StatusOK)
}

func (s *Server) issueSession(w http.ResponseWriter, u store.User, status int) {
	sess, err := s.sessions.Create(u.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	s.sessions.SetCookie(w, sess)
	writeJSON(w, status, map[string]any{"user": userResponse{ID: u.ID, Email: u.Email}})
}

func (s *Server) handleSignout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Destroy(r); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign out")
		return
	}
	s.sessions.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// handleSession reports the authenticated user, or user: null when the
// request carries no valid session.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	userID, err := s.sessions.Resolve(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to resolve session")
		return
	}
	if userID == "" {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}

	u, err := s.db.GetUser(userID)
	if err != nil || u == nil {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": userResponse{ID: u.ID, Email: u.Email}})
}
