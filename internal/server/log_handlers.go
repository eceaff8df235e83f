package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/evanmoss/tally/internal/analytics"
	"github.com/evanmoss/tally/internal/auth"
	"github.com/evanmoss/tally/internal/habit"
)

type logRequest struct {
	HabitID      string   `json:"habitId"`
	Date         string   `json:"date"`
	NumericValue *float64 `json:"numericValue,omitempty"`
	BooleanValue *bool    `json:"booleanValue,omitempty"`

	// Accumulate adds NumericValue to the day's existing total instead of
	// overwriting, capping the result at the habit's daily target. This is
	// the "log progress" flow; plain overwrites are the maintenance path.
	Accumulate bool `json:"accumulate,omitempty"`
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	q := r.URL.Query()

	habitID := q.Get("habitId")
	if habitID == "" {
		writeError(w, http.StatusBadRequest, "habitId is required")
		return
	}
	h, err := s.db.GetHabit(habitID, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load habit")
		return
	}
	if h == nil {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}

	logs, err := s.db.ListLogs(habitID, q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list logs")
		return
	}
	if logs == nil {
		logs = []habit.Log{}
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleUpsertLog(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req logRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.HabitID == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "habitId and date are required")
		return
	}
	if len(analytics.DaysInRange(req.Date, req.Date)) == 0 {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	h, err := s.db.GetHabit(req.HabitID, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load habit")
		return
	}
	if h == nil {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}

	value, errMsg := s.resolveLogValue(*h, req)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	logged, err := s.db.UpsertLog(habit.Log{
		ID:      uuid.NewString(),
		HabitID: h.ID,
		Date:    req.Date,
		Value:   value,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save log")
		return
	}
	writeJSON(w, http.StatusOK, logged)
}

// resolveLogValue validates the request value against the habit's type and
// applies the accumulate-and-cap rule for measurable progress logging.
func (s *Server) resolveLogValue(h habit.Habit, req logRequest) (habit.LogValue, string) {
	switch h.Type {
	case habit.TypeBoolean:
		if req.BooleanValue == nil || req.NumericValue != nil {
			return habit.LogValue{}, "boolean habit requires booleanValue"
		}
		return habit.Flag(*req.BooleanValue), ""

	case habit.TypeMeasurable:
		if req.NumericValue == nil || req.BooleanValue != nil {
			return habit.LogValue{}, "measurable habit requires numericValue"
		}
		v := *req.NumericValue
		if v < 0 {
			return habit.LogValue{}, "numericValue must not be negative"
		}
		if req.Accumulate {
			// New total = existing + increment, never past the target.
			existing, err := s.db.ListLogs(h.ID, req.Date, req.Date)
			if err != nil {
				return habit.LogValue{}, "failed to load existing log"
			}
			if len(existing) == 1 {
				if cur, ok := existing[0].Value.Num(); ok {
					v += cur
				}
			}
			if v > h.Target {
				v = h.Target
			}
		}
		return habit.Numeric(v), ""
	}
	return habit.LogValue{}, "unknown habit type"
}

// handleDeleteLog is the explicit maintenance path; logs are never deleted
// implicitly.
func (s *Server) handleDeleteLog(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	deleted, err := s.db.DeleteLog(chi.URLParam(r, "id"), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete log")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "log not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
