package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/evanmoss/tally/internal/auth"
	"github.com/evanmoss/tally/internal/habit"
)

type habitRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Unit        string  `json:"unit,omitempty"`
	Target      float64 `json:"target,omitempty"`
	Frequency   string  `json:"frequency,omitempty"`
	DaysPerWeek int     `json:"daysPerWeek,omitempty"`
}

func (s *Server) handleListHabits(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	includeArchived := r.URL.Query().Get("includeArchived") == "true"

	habits, err := s.db.ListHabits(userID, includeArchived)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list habits")
		return
	}
	if habits == nil {
		habits = []habit.Habit{}
	}
	writeJSON(w, http.StatusOK, habits)
}

func (s *Server) handleCreateHabit(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req habitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h := habit.Habit{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Type:        habit.Type(req.Type),
		Unit:        req.Unit,
		Target:      req.Target,
		Frequency:   habit.Frequency(req.Frequency),
		DaysPerWeek: req.DaysPerWeek,
		CreatedAt:   time.Now().UTC(),
	}
	if h.Frequency == "" {
		h.Frequency = habit.FrequencyDaily
	}
	if h.DaysPerWeek == 0 {
		h.DaysPerWeek = 7
	}
	if err := h.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.CreateHabit(h); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create habit")
		return
	}
	writeJSON(w, http.StatusCreated, h)
}

// loadHabit resolves the {id} route param to the caller's habit, writing
// the error response itself when the habit is missing.
func (s *Server) loadHabit(w http.ResponseWriter, r *http.Request) *habit.Habit {
	userID, _ := auth.UserID(r.Context())
	h, err := s.db.GetHabit(chi.URLParam(r, "id"), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load habit")
		return nil
	}
	if h == nil {
		writeError(w, http.StatusNotFound, "habit not found")
		return nil
	}
	return h
}

func (s *Server) handleGetHabit(w http.ResponseWriter, r *http.Request) {
	if h := s.loadHabit(w, r); h != nil {
		writeJSON(w, http.StatusOK, h)
	}
}

func (s *Server) handleUpdateHabit(w http.ResponseWriter, r *http.Request) {
	h := s.loadHabit(w, r)
	if h == nil {
		return
	}

	var req habitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The habit's type is immutable after creation: changing it would
	// orphan the meaning of historical logs.
	if req.Type != "" && habit.Type(req.Type) != h.Type {
		writeError(w, http.StatusBadRequest, "habit type cannot be changed")
		return
	}

	if req.Name != "" {
		h.Name = req.Name
	}
	if h.Type == habit.TypeMeasurable {
		if req.Unit != "" {
			h.Unit = req.Unit
		}
		if req.Target != 0 {
			h.Target = req.Target
		}
	}
	if req.Frequency != "" {
		h.Frequency = habit.Frequency(req.Frequency)
	}
	if req.DaysPerWeek != 0 {
		h.DaysPerWeek = req.DaysPerWeek
	}
	if err := h.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.UpdateHabit(*h); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update habit")
		return
	}
	writeJSON(w, http.StatusOK, h)
}

// handleArchiveHabit archives rather than deletes: logs are retained and
// the habit drops out of active views.
func (s *Server) handleArchiveHabit(w http.ResponseWriter, r *http.Request) {
	h := s.loadHabit(w, r)
	if h == nil {
		return
	}

	userID, _ := auth.UserID(r.Context())
	if err := s.db.ArchiveHabit(h.ID, userID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to archive habit")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "archived"})
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, habit.Presets)
}
