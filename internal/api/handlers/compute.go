package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/predictpro/backend/internal/contracts"
	"github.com/predictpro/backend/internal/data/repos"
	"github.com/predictpro/backend/pkg/logger"
	"github.com/predictpro/backend/pkg/redis"
)

// ComputeHandler handles on-demand signal computation requests
type ComputeHandler struct {
	fixtures contracts.FixtureRepository
	queue    *redis.Queue
	logger   *logger.Logger
}

// NewComputeHandler creates a new compute handler
func NewComputeHandler(fixtures contracts.FixtureRepository, queue *redis.Queue, log *logger.Logger) *ComputeHandler {
	return &ComputeHandler{
		fixtures: fixtures,
		queue:    queue,
		logger:   log,
	}
}

// Enqueue schedules signal computation for a fixture
// POST /api/compute/{id}
func (h *ComputeHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
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

	if err := h.queue.Enqueue(ctx, id); err != nil {
		h.logger.WithError(err).WithField("fixture_id", id).Error("Failed to enqueue computation")
		respondError(w, http.StatusInternalServerError, "Failed to schedule computation")
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"success":    true,
		"fixture_id": id,
		"status":     "scheduled",
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
