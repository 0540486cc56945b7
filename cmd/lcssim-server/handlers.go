package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	pkglcs "github.com/baditaflorin/go_lcs_similarity/pkg/lcs"
)

// Request represents a similarity computation request. Copied is the
// denominator of the percentage.
type Request struct {
	Original string `json:"original"`
	Copied   string `json:"copied"`
}

// Response represents a similarity computation response
type Response struct {
	Similarity     float64                `json:"similarity"`
	LCSLength      int                    `json:"lcs_length"`
	OriginalLength int                    `json:"original_length"`
	CopiedLength   int                    `json:"copied_length"`
	Empty          bool                   `json:"empty"`
	ProcessingTime string                 `json:"processing_time,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	computeDuration = metrics.NewSummary(`lcssim_compute_duration_seconds`)
	computedRunes   = metrics.NewCounter(`lcssim_computed_runes_total`)
	timeouts        = metrics.NewCounter(`lcssim_compute_timeouts_total`)
)

type handler struct {
	similarity     *pkglcs.Similarity
	logger         ports.Logger
	computeTimeout time.Duration
}

func newHandler(similarity *pkglcs.Similarity, logger ports.Logger, computeTimeout time.Duration) *handler {
	return &handler{
		similarity:     similarity,
		logger:         logger,
		computeTimeout: computeTimeout,
	}
}

// requestHandler is the main fasthttp request handler
func (h *handler) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	path := string(ctx.Path())
	switch path {
	case "/health":
		ctx.Response.Header.Set("Content-Type", "application/json")
		h.handleHealthCheck(ctx)
	case "/similarity":
		ctx.Response.Header.Set("Content-Type", "application/json")
		h.handleSimilarity(ctx)
	case "/metrics":
		ctx.Response.Header.Set("Content-Type", "text/plain; version=0.0.4")
		metrics.WritePrometheus(ctx, true)
	default:
		ctx.Response.Header.Set("Content-Type", "application/json")
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		h.writeJSONError(ctx, "Not found")
		path = "other"
	}
	ctx.Response.Header.Set("Server", "LCSSimilarityServer")

	metrics.GetOrCreateCounter(fmt.Sprintf(`lcssim_http_requests_total{path=%q,code="%d"}`, path, ctx.Response.StatusCode())).Inc()

	duration := time.Since(startTime)
	h.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests
func (h *handler) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleSimilarity handles similarity requests
func (h *handler) handleSimilarity(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		h.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	c, cancel := context.WithTimeout(context.Background(), h.computeTimeout)
	defer cancel()

	start := time.Now()
	result := h.similarity.Compute(c, req.Original, req.Copied)
	elapsed := time.Since(start)
	computeDuration.Update(elapsed.Seconds())

	if _, failed := result.Details["error"]; failed {
		timeouts.Inc()
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
		h.writeJSONError(ctx, "Computation timed out")
		return
	}
	computedRunes.Add(result.OriginalLength + result.CopiedLength)

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, Response{
		Similarity:     result.Similarity,
		LCSLength:      result.LCSLength,
		OriginalLength: result.OriginalLength,
		CopiedLength:   result.CopiedLength,
		Empty:          result.Empty,
		ProcessingTime: elapsed.String(),
		Details:        result.Details,
	})
}

// writeJSONResponse writes a JSON response to the context
func (h *handler) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON response", "error", err)
		h.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (h *handler) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
