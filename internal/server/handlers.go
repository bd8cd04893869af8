package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/career-compass/internal/advisor"
	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/types"
)

// RecommendationsResponse wraps either pipeline's results; exactly one of
// the two lists is populated, matching the profile kind.
type RecommendationsResponse struct {
	Kind              types.ProfileKind             `json:"kind"`
	Careers           []types.Recommendation        `json:"careers,omitempty"`
	Paths             []types.StudentRecommendation `json:"paths,omitempty"`
	ParentExplanation string                        `json:"parent_explanation,omitempty"`
}

// RoadmapRequest asks for a learning plan toward one career.
type RoadmapRequest struct {
	CareerID string         `json:"career_id"`
	Profile  *types.Profile `json:"profile"`
	// Previous carries prior stages whose completion flags should survive
	// regeneration.
	Previous []types.RoadmapStage `json:"previous,omitempty"`
}

// CompareRequest names the two career paths to compare.
type CompareRequest struct {
	First  string `json:"career1"`
	Second string `json:"career2"`
}

// ChatRequest is a free-form question with optional profile context.
type ChatRequest struct {
	Profile  *types.Profile `json:"profile,omitempty"`
	Question string         `json:"question"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// handleRecommendations runs the pipeline matching the profile kind.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var profile types.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	switch profile.Kind {
	case types.KindStudent:
		recs, err := s.advisor.RecommendPaths(r.Context(), &profile)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.jsonResponse(w, http.StatusOK, RecommendationsResponse{
			Kind:              types.KindStudent,
			Paths:             recs,
			ParentExplanation: advisor.ParentExplanation(recs),
		})
	case types.KindGeneral:
		recs, err := s.advisor.RecommendCareers(r.Context(), &profile)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.jsonResponse(w, http.StatusOK, RecommendationsResponse{
			Kind:    types.KindGeneral,
			Careers: recs,
		})
	default:
		s.errorResponse(w, http.StatusBadRequest, "kind must be 'general' or 'student'")
	}
}

// handleRoadmap generates a learning plan toward the requested career.
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CareerID == "" {
		s.errorResponse(w, http.StatusBadRequest, "career_id is required")
		return
	}
	if req.Profile == nil {
		s.errorResponse(w, http.StatusBadRequest, "profile is required")
		return
	}

	stages, err := s.advisor.Roadmap(r.Context(), req.Profile, req.CareerID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(req.Previous) > 0 {
		stages = roadmap.MergeCompletion(req.Previous, stages)
	}
	s.jsonResponse(w, http.StatusOK, stages)
}

// handleCompare produces the side-by-side career analysis.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.First == "" || req.Second == "" {
		s.errorResponse(w, http.StatusBadRequest, "career1 and career2 are required")
		return
	}

	comparison, err := s.advisor.Compare(r.Context(), req.First, req.Second)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, comparison)
}

// handleChat answers a free-form career question.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Question == "" {
		s.errorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	answer := s.chat.Answer(r.Context(), req.Profile, req.Question)
	s.jsonResponse(w, http.StatusOK, ChatResponse{Answer: answer})
}

// handleListCareers returns the general career catalog.
func (s *Server) handleListCareers(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Careers())
}

// handleGetCareer returns one career by id.
func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	career, err := s.store.Career(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, career)
}

// handleListStudentPaths returns the student career path catalog.
func (s *Server) handleListStudentPaths(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.StudentPaths())
}

// handleSchemes returns government schemes, optionally filtered by a
// profile built from the education/interests/skills query params.
func (s *Server) handleSchemes(w http.ResponseWriter, r *http.Request) {
	var profile *types.Profile
	query := r.URL.Query()
	if query.Has("education") || query.Has("interests") || query.Has("skills") {
		profile = &types.Profile{
			Kind:      types.KindGeneral,
			Education: query.Get("education"),
			Interests: query["interests"],
			Skills:    query["skills"],
		}
	}

	schemes, err := s.advisor.Schemes(r.Context(), profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, schemes)
}

// handleMarket returns the labor-market snapshot.
func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	data, err := s.advisor.MarketData(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, data)
}
