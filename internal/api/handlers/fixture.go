package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/data/repos"
	"github.com/predictpro/backend/pkg/logger"
)

// FixtureHandler handles fixture API endpoints
type FixtureHandler struct {
	fixtures contracts.FixtureRepository
	results  contracts.SignalResultRepository
	logger   *logger.Logger
}

// NewFixtureHandler creates a new fixture handler
func NewFixtureHandler(fixtures contracts.FixtureRepository, results contracts.SignalResultRepository, log *logger.Logger) *FixtureHandler {
	return &FixtureHandler{
		fixtures: fixtures,
		results:  results,
		logger:   log,
	}
}

// FixtureResponse represents a fixture for API response
type FixtureResponse struct {
	ID          int64  `json:"id"`
	Competition string `json:"competition"`
	Season      int    `json:"season"`
	Kickoff     string `json:"kickoff"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
}

// ListByDate returns all fixtures on a given day
// GET /api/fixtures/{date} (YYYY-MM-DD)
func (h *FixtureHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	day, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	fixtures, err := h.fixtures.ListByDate(ctx, day)
	if err != nil {
		h.logger.WithError(err).WithField("date", vars["date"]).Error("Failed to list fixtures")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve fixtures")
		return
	}

	result := make([]FixtureResponse, len(fixtures))
	for i, f := range fixtures {
		result[i] = FixtureResponse{
			ID:          f.ID,
			Competition: f.Competition,
			Season:      f.Season,
			Kickoff:     f.Kickoff.UTC().Format(time.RFC3339),
			HomeTeam:    f.HomeTeam,
			AwayTeam:    f.AwayTeam,
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}

// SignalResponse represents one evaluated signal for API response
type SignalResponse struct {
	SignalID  int     `json:"signal_id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Value     float64 `json:"value"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"created_at"`
}

// GetSignals returns the stored signal results for a fixture
// GET /api/fixtures/{id}/signals
func (h *FixtureHandler) GetSignals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "fixture id must be numeric")
		return
	}

	if _, err := h.fixtures.GetByID(ctx, id); err != nil {
		if errors.Is(err, repos.ErrFixtureNotFound) {
			respondError(w, http.StatusNotFound, "fixture not found")
			return
		}
		h.logger.WithError(err).WithField("fixture_id", id).Error("Failed to load fixture")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve fixture")
		return
	}

	results, err := h.results.ListByFixture(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("fixture_id", id).Error("Failed to list signal results")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve signals")
		return
	}

	result := make([]SignalResponse, len(results))
	for i, res := range results {
		result[i] = SignalResponse{
			SignalID:  int(res.SignalID),
			Name:      res.SignalID.String(),
			Status:    string(res.Status),
			Value:     res.Value,
			Note:      res.Note,
			CreatedAt: res.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}
