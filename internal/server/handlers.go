package server

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/pipeline"
)

// clusterRequest is the body of POST /api/cluster. Eps and MinPoints fall
// back to the configured defaults when omitted.
type clusterRequest struct {
	Utterances []string `json:"utterances"`
	Eps        *float64 `json:"eps,omitempty"`
	MinPoints  *int     `json:"min_points,omitempty"`
}

type clusterGroup struct {
	Label      int      `json:"label"`
	Size       int      `json:"size"`
	Utterances []string `json:"utterances"`
}

type clusterResponse struct {
	RunID        string         `json:"run_id"`
	Fingerprint  string         `json:"fingerprint"`
	Labels       []int          `json:"labels"`
	Groups       []clusterGroup `json:"groups"`
	ClusterCount int            `json:"cluster_count"`
	NoiseCount   int            `json:"noise_count"`
	VocabSize    int            `json:"vocab_size"`
	DurationMS   float64        `json:"duration_ms"`
}

type statsResponse struct {
	UptimeSeconds       float64 `json:"uptime_seconds"`
	Runs                int64   `json:"runs"`
	UtterancesClustered int64   `json:"utterances_clustered"`
	Eps                 float64 `json:"eps"`
	MinPoints           int     `json:"min_points"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) handleCluster(w http.ResponseWriter, r *http.Request) {
	var req clusterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if len(req.Utterances) > s.cfg.MaxBatchSize {
		s.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch of %d exceeds limit of %d utterances", len(req.Utterances), s.cfg.MaxBatchSize))
		return
	}

	opts := pipeline.Options{
		Eps:       s.cfg.Eps,
		MinPoints: s.cfg.MinPoints,
		Workers:   s.cfg.Workers,
	}
	if req.Eps != nil {
		opts.Eps = *req.Eps
	}
	if req.MinPoints != nil {
		opts.MinPoints = *req.MinPoints
	}

	pipe, err := pipeline.New(s.norm, opts)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := pipe.Run(r.Context(), req.Utterances)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.runs.Add(1)
	s.utterances.Add(int64(len(req.Utterances)))

	groups := make([]clusterGroup, len(res.Groups))
	for i, g := range res.Groups {
		groups[i] = clusterGroup{Label: g.Label, Size: len(g.Utterances), Utterances: g.Utterances}
	}

	s.writeJSON(w, http.StatusOK, clusterResponse{
		RunID:        res.RunID,
		Fingerprint:  res.Fingerprint,
		Labels:       res.Labels,
		Groups:       groups,
		ClusterCount: res.ClusterCount,
		NoiseCount:   res.NoiseCount,
		VocabSize:    res.VocabSize,
		DurationMS:   float64(res.Duration) / float64(time.Millisecond),
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Service) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func (s *Service) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, statsResponse{
		UptimeSeconds:       time.Since(s.startTime).Seconds(),
		Runs:                s.runs.Load(),
		UtterancesClustered: s.utterances.Load(),
		Eps:                 s.cfg.Eps,
		MinPoints:           s.cfg.MinPoints,
	})
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
