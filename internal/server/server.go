// Package server exposes the blend optimizer as an HTTP JSON API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avierra/alloy-blend/internal/blend"
	"github.com/avierra/alloy-blend/internal/config"
	"github.com/avierra/alloy-blend/pkg/adapters"
	"github.com/avierra/alloy-blend/pkg/constants"
	"github.com/avierra/alloy-blend/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the blend API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Blend API endpoint (plan file upload)
	mux.HandleFunc("/api/optimize", h.handleOptimize)

	// Built-in scrap catalog
	mux.HandleFunc("/api/presets", h.handlePresets)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type optimizeResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	Usage       []usageRow   `json:"usage,omitempty"`
	Composition []elementRow `json:"composition,omitempty"`
	TotalCost   float64      `json:"totalCost,omitempty"`
	UnitCost    float64      `json:"unitCost,omitempty"`
	TotalUsed   float64      `json:"totalUsedKg,omitempty"`
	Utilization float64      `json:"utilizationPct,omitempty"`
	Warnings    []string     `json:"warnings,omitempty"`
	Duration    string       `json:"duration"`
}

type usageRow struct {
	Material  string  `json:"material"`
	WeightKg  float64 `json:"weightKg"`
	SharePct  float64 `json:"sharePct"`
	Cost      float64 `json:"cost"`
	CostShare float64 `json:"costSharePct"`
}

type elementRow struct {
	Element   string  `json:"element"`
	TargetPct float64 `json:"targetPct"`
	ActualPct float64 `json:"actualPct"`
	Deviation float64 `json:"deviation"`
}

func (h *handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing blend plan file")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && h.logger != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleOptimize"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read blend plan: %v", err))
		return
	}

	conf, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := conf.ApplyPresets(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	scarcityCap := conf.Optimization.ScarcityCapEnabled()
	if raw := r.FormValue("scarcityCap"); raw != "" {
		parsed, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid scarcityCap value %q", raw))
			return
		}
		scarcityCap = parsed
	}

	lotInputs := make([]validation.LotInput, len(conf.Materials))
	for i, material := range conf.Materials {
		lotInputs[i] = validation.LotInput{
			Name:        material.Name,
			Price:       material.UnitPrice(),
			Stock:       material.Stock,
			Composition: material.Composition,
		}
	}
	problems := validation.ValidateLots(lotInputs)
	problems = append(problems, validation.ValidateOrder(
		conf.Order.TotalWeight, conf.Order.TargetComposition, conf.Elements)...)
	if len(problems) > 0 {
		h.respondError(w, http.StatusUnprocessableEntity, strings.Join(problems, "; "))
		return
	}

	lots := adapters.MaterialsToLots(conf.Materials, conf.Elements)
	order := adapters.OrderToSpec(conf.Order)

	result := blend.Optimize(h.logger, lots, order, conf.Elements, scarcityCap)
	resp := optimizeResponse{
		Success:  result.Success,
		Message:  result.Message,
		Warnings: conf.ValidateConfiguration(),
		Duration: time.Since(start).String(),
	}
	if !result.Success {
		h.writeJSON(w, http.StatusOK, resp)
		return
	}

	report, err := blend.BuildReport(lots, result.Weights, order, conf.Elements)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to interpret solution: %v", err))
		return
	}

	for _, usage := range report.Usage {
		resp.Usage = append(resp.Usage, usageRow{
			Material:  usage.Name,
			WeightKg:  usage.Weight,
			SharePct:  usage.Share,
			Cost:      usage.Cost,
			CostShare: usage.CostShare,
		})
	}
	for _, line := range report.Composition {
		resp.Composition = append(resp.Composition, elementRow{
			Element:   line.Element,
			TargetPct: line.Target,
			ActualPct: line.Actual,
			Deviation: line.Deviation,
		})
	}
	resp.TotalCost = report.TotalCost
	resp.UnitCost = report.UnitCost
	resp.TotalUsed = report.TotalUsed
	resp.Utilization = report.Utilization
	resp.Duration = time.Since(start).String()

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, config.Presets)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
