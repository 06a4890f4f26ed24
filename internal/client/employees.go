package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/UnknownOlympus/ems-console/internal/metrics"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/pagination"
	"github.com/google/uuid"
)

// EmployeeAPI is the request/response surface of the employee service.
type EmployeeAPI interface {
	List(ctx context.Context, page, size int, filter models.ListFilter) (models.PageResult, error)
	Search(ctx context.Context, query string, page, size int) (models.PageResult, error)
	Get(ctx context.Context, id models.EmployeeID) (models.Employee, error)
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	Update(ctx context.Context, id models.EmployeeID, employee models.Employee) (models.Employee, error)
	Delete(ctx context.Context, id models.EmployeeID) error
	DeleteAll(ctx context.Context) error
}

// EmployeeClient talks JSON over HTTP to the employee collection at baseURL.
// Failed requests are reported once and never retried.
type EmployeeClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	metrics    *metrics.Metrics
	log        *slog.Logger
}

// NewEmployeeClient creates a client for the collection URL, e.g. http://localhost:8081/api/employees.
func NewEmployeeClient(
	log *slog.Logger,
	httpClient *http.Client,
	metrics *metrics.Metrics,
	baseURL, token string,
) *EmployeeClient {
	return &EmployeeClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		metrics:    metrics,
		log:        log.With(slog.String("division", "client")),
	}
}

type errorBody struct {
	Message string `json:"message"`
}

// List fetches one page of the employee list. Each department is sent as its own
// department parameter; sortDir is only sent when set.
func (c *EmployeeClient) List(
	ctx context.Context,
	page, size int,
	filter models.ListFilter,
) (models.PageResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	for _, department := range filter.CleanDepartments() {
		query.Add("department", department)
	}
	if filter.SortDir != "" {
		query.Set("sortDir", filter.SortDir)
	}

	body, err := c.do(ctx, "list", http.MethodGet, "", query, nil)
	if err != nil {
		return models.PageResult{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return c.normalize(ctx, "list", body, size), nil
}

// Search fetches one page of employees matching query.
func (c *EmployeeClient) Search(ctx context.Context, query string, page, size int) (models.PageResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	body, err := c.do(ctx, "search", http.MethodGet, "/search", params, nil)
	if err != nil {
		return models.PageResult{}, fmt.Errorf("failed to search employees: %w", err)
	}

	return c.normalize(ctx, "search", body, size), nil
}

func (c *EmployeeClient) normalize(ctx context.Context, kind string, body []byte, size int) models.PageResult {
	result := pagination.Normalize(body, size)
	if result.Skipped > 0 {
		c.metrics.SkippedItems.WithLabelValues(kind).Add(float64(result.Skipped))
		c.log.WarnContext(ctx, "Skipped undecodable employees",
			slog.String("kind", kind), slog.Int("skipped", result.Skipped), slog.Int("kept", len(result.Items)))
	}
	return result
}

// Get fetches a single employee.
func (c *EmployeeClient) Get(ctx context.Context, id models.EmployeeID) (models.Employee, error) {
	body, err := c.do(ctx, "get", http.MethodGet, "/"+url.PathEscape(id.String()), nil, nil)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}

	var employee models.Employee
	if err = json.Unmarshal(body, &employee); err != nil {
		return models.Employee{}, fmt.Errorf("failed to decode employee %s: %w", id, err)
	}

	return employee, nil
}

// Create stores a new employee and returns the record the service saved.
func (c *EmployeeClient) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	employee.ID = ""

	body, err := c.do(ctx, "create", http.MethodPost, "", nil, employee)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return decodeSaved(body, employee)
}

// Update replaces the employee with the given id.
func (c *EmployeeClient) Update(
	ctx context.Context,
	id models.EmployeeID,
	employee models.Employee,
) (models.Employee, error) {
	employee.ID = ""

	body, err := c.do(ctx, "update", http.MethodPut, "/"+url.PathEscape(id.String()), nil, employee)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee %s: %w", id, err)
	}

	employee.ID = id
	return decodeSaved(body, employee)
}

// Delete removes a single employee.
func (c *EmployeeClient) Delete(ctx context.Context, id models.EmployeeID) error {
	if _, err := c.do(ctx, "delete", http.MethodDelete, "/"+url.PathEscape(id.String()), nil, nil); err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}

	return nil
}

// DeleteAll removes every employee.
func (c *EmployeeClient) DeleteAll(ctx context.Context) error {
	if _, err := c.do(ctx, "delete_all", http.MethodDelete, "", nil, nil); err != nil {
		return fmt.Errorf("failed to delete all employees: %w", err)
	}

	return nil
}

func decodeSaved(body []byte, sent models.Employee) (models.Employee, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return sent, nil
	}

	var saved models.Employee
	if err := json.Unmarshal(body, &saved); err != nil {
		return models.Employee{}, fmt.Errorf("failed to decode saved employee: %w", err)
	}

	return saved, nil
}

func (c *EmployeeClient) do(
	ctx context.Context,
	opn, method, path string,
	query url.Values,
	payload any,
) ([]byte, error) {
	startTime := time.Now()
	outcome := "error"
	defer func() {
		c.metrics.RequestDuration.WithLabelValues(opn).Observe(time.Since(startTime).Seconds())
		c.metrics.Requests.WithLabelValues(opn, outcome).Inc()
	}()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", target, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", models.UserAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.DebugContext(ctx, "Sending request", "op", opn, "method", method, "url", target, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusConflict:
		outcome = "conflict"
		return nil, &ConflictError{Message: parseMessage(body)}
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		outcome = "failure"
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: parseMessage(body)}
	}

	outcome = "success"
	return body, nil
}

func parseMessage(body []byte) string {
	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
