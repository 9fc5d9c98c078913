package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/scout2retire/town-match/internal/db"
	"github.com/scout2retire/town-match/internal/scoring"
	"github.com/scout2retire/town-match/internal/types"
)

// handleListTowns returns town profiles, optionally filtered via query
// parameters: country, min_healthcare, min_safety, limit.
func (s *Server) handleListTowns(w http.ResponseWriter, r *http.Request) {
	filters, err := townFiltersFromQuery(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	towns, err := s.store.ListTowns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"towns": towns,
		"count": len(towns),
	})
}

// handleGetTown returns a single town profile by ID.
func (s *Server) handleGetTown(w http.ResponseWriter, r *http.Request) {
	townID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid town ID")
		return
	}

	town, err := s.store.GetTown(r.Context(), townID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if town == nil {
		notFound := &ErrTownNotFound{TownID: townID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, town)
}

// handleGetPreferences returns a user's saved preferences.
func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	prefs, err := s.store.GetUserPreferences(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if prefs == nil {
		notFound := &ErrPreferencesNotFound{UserID: userID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, prefs)
}

// handleSavePreferences upserts a user's preferences document.
func (s *Server) handleSavePreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var prefs types.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	prefs.UserID = userID

	if err := prefs.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SaveUserPreferences(r.Context(), &prefs); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, prefs)
}

// handleRank scores the filtered town set for one user and returns the
// results ranked best-first.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	prefs, err := s.resolvePreferences(r, req.Preferences, req.UserID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	towns, err := s.store.ListTowns(r.Context(), db.TownFilters{
		Country:            req.Country,
		MinHealthcareScore: req.MinHealthcareScore,
		MinSafetyScore:     req.MinSafetyScore,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	results, err := scoring.Rank(prefs, towns, req.Weights)
	if err != nil {
		invalid := &ErrInvalidWeights{Reason: err.Error()}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return
	}

	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// handleScore scores one user against one town and returns the full
// breakdown with factors and insights.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.TownID == uuid.Nil {
		verr := &ErrValidation{Field: "town_id", Message: "town_id is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	prefs, err := s.resolvePreferences(r, req.Preferences, req.UserID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	town, err := s.store.GetTown(r.Context(), req.TownID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if town == nil {
		notFound := &ErrTownNotFound{TownID: req.TownID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	result, err := scoring.Score(prefs, town, req.Weights)
	if err != nil {
		invalid := &ErrInvalidWeights{Reason: err.Error()}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// resolvePreferences picks the inline preference payload when present, and
// otherwise loads the user's saved preferences.
func (s *Server) resolvePreferences(r *http.Request, inline *types.UserPreferences, userID uuid.UUID) (*types.UserPreferences, error) {
	if inline != nil {
		return inline, nil
	}
	if userID == uuid.Nil {
		return nil, &ErrValidation{Field: "preferences", Message: "either preferences or user_id is required"}
	}

	prefs, err := s.store.GetUserPreferences(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return nil, &ErrPreferencesNotFound{UserID: userID}
	}
	return prefs, nil
}

// townFiltersFromQuery parses the list-towns query parameters.
func townFiltersFromQuery(r *http.Request) (db.TownFilters, error) {
	var filters db.TownFilters
	q := r.URL.Query()

	filters.Country = q.Get("country")

	if v := q.Get("min_healthcare"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, &ErrValidation{Field: "min_healthcare", Message: "must be a number"}
		}
		filters.MinHealthcareScore = f
	}
	if v := q.Get("min_safety"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, &ErrValidation{Field: "min_safety", Message: "must be a number"}
		}
		filters.MinSafetyScore = f
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filters, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"}
		}
		filters.Limit = n
	}

	return filters, nil
}
