// Package research exposes the analysis pipeline over HTTP.
package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shareholder_catalyst/pkg/core/orchestrator"
)

// Runner executes one analysis; satisfied by *orchestrator.Orchestrator.
type Runner interface {
	AnalyzeCompany(ctx context.Context, ticker string) *orchestrator.AnalysisResult
}

// Handler serves the research endpoints.
type Handler struct {
	runner  Runner
	timeout time.Duration
}

// NewHandler creates a Handler over the given runner.
func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner, timeout: 10 * time.Minute}
}

// ResearchRequest is the body of POST /api/research.
type ResearchRequest struct {
	Ticker string `json:"ticker"`
}

// HandleResearch handles POST /api/research. The response body is the
// full AnalysisResult for the requested ticker.
func (h *Handler) HandleResearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Ticker == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	fmt.Printf("[API] research request ticker=%s\n", req.Ticker)
	result := h.runner.AnalyzeCompany(ctx, req.Ticker)

	if err := json.NewEncoder(w).Encode(result); err != nil {
		fmt.Printf("[API] [WARNING] failed to encode response: %v\n", err)
	}
}

// HandleHealth handles GET /api/health.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
