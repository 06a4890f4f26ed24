package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const checkTimeout = 5 * time.Second

// HealthChecker reports whether the employee service answers.
type HealthChecker struct {
	apiURL     string
	httpClient *http.Client
	log        *slog.Logger
}

func NewHealthChecker(apiURL string, log *slog.Logger) *HealthChecker {
	return &HealthChecker{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: checkTimeout},
		log:        log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	switch code, err := h.ping(req.Context()); {
	case err != nil:
		status["employee_api"] = "unreachable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: employee service unreachable",
			"url", h.apiURL, "error", err)
	case code >= http.StatusInternalServerError:
		status["employee_api"] = "degraded"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: employee service returned error status",
			"url", h.apiURL, "status_code", code)
	default:
		status["employee_api"] = "ok"
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err := json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}

// ping sends a HEAD request. Client errors such as 401 or 405 still prove the
// service is up.
func (h *HealthChecker) ping(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.apiURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	if err = resp.Body.Close(); err != nil {
		h.log.WarnContext(ctx, "Failed to close response body", "error", err)
	}

	return resp.StatusCode, nil
}
