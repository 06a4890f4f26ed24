// Package directory holds the state of the employee list view: the current page,
// the search query and the bulk delete dialog. State changes only through the
// pageLoaded, searchResultsLoaded and employeeDeleted transitions.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/UnknownOlympus/ems-console/internal/client"
	"github.com/UnknownOlympus/ems-console/internal/debounce"
	"github.com/UnknownOlympus/ems-console/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems-console/internal/metrics"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/pagination"
)

// DeleteAllConfirmation must be typed exactly before every employee is removed.
const DeleteAllConfirmation = "Delete all employees"

const (
	msgConfirmDeleteAll = `Type "Delete all employees" to confirm.`
	msgDeleteAllFailed  = "Failed to delete employees. Please try again."
)

var (
	// ErrNotConfirmed is returned by DeleteAll when the confirmation text does not match.
	ErrNotConfirmed = errors.New("delete all was not confirmed")
	// ErrSuperseded is returned when a newer list or search request was issued
	// before this one resolved. Its result was discarded.
	ErrSuperseded = errors.New("response superseded by a newer request")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("directory is closed")
)

// State is a snapshot of the list view. Query is the text typed so far; LoadedQuery
// is the trimmed query the shown employees were searched with, empty for the plain list.
type State struct {
	Employees      []models.Employee
	Query          string
	LoadedQuery    string
	CurrentPage    int
	TotalPages     int
	DeleteAllError string
	DeletingAll    bool
}

// Searching reports whether the view shows search results rather than the plain list.
func (s State) Searching() bool {
	return strings.TrimSpace(s.Query) != ""
}

// Options configure a Directory. OnChange, when set, receives a snapshot after every
// state change; it runs on the goroutine that made the change.
type Options struct {
	Role        models.Role
	PageSize    int
	SearchDelay time.Duration
	Filter      models.ListFilter
	OnChange    func(State)
}

type Directory struct {
	log       *slog.Logger
	api       client.EmployeeAPI
	metrics   *metrics.Metrics
	role      models.Role
	pageSize  int
	debouncer *debounce.Debouncer
	onChange  func(State)

	mu         sync.Mutex
	state      State
	filter     models.ListFilter
	generation uint64
	closed     bool
}

// New creates a directory with an empty state. Nothing is fetched until LoadPage
// or SetQuery is called.
func New(log *slog.Logger, api client.EmployeeAPI, metrics *metrics.Metrics, opts Options) *Directory {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}

	return &Directory{
		log:       log,
		api:       api,
		metrics:   metrics,
		role:      opts.Role,
		pageSize:  pageSize,
		debouncer: debounce.New(opts.SearchDelay),
		onChange:  opts.OnChange,
		filter:    opts.Filter,
		state:     State{TotalPages: 1},
	}
}

func (d *Directory) initLogger(opn string) *slog.Logger {
	return d.log.With(sl.Op(opn), sl.Division("directory"))
}

// Snapshot returns a copy of the current state.
func (d *Directory) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.snapshotLocked()
}

func (d *Directory) snapshotLocked() State {
	st := d.state
	st.Employees = append([]models.Employee(nil), d.state.Employees...)
	return st
}

// SetFilter changes the department filter and sort order of later list fetches.
// Search results are not affected.
func (d *Directory) SetFilter(filter models.ListFilter) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.filter = filter
}

// LoadPage fetches one page of the list, narrowed by the current filter.
func (d *Directory) LoadPage(ctx context.Context, page int) error {
	return d.fetch(ctx, "", page)
}

// SetQuery records the search input and schedules a fetch once the input has been
// quiet for the search delay. A pending fetch is cancelled before it fires. An empty
// query fetches the first page of the unfiltered list.
func (d *Directory) SetQuery(ctx context.Context, query string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.state.Query = query
	d.mu.Unlock()

	d.debouncer.Debounce(func() {
		if err := d.fetch(ctx, strings.TrimSpace(query), 0); err != nil && !errors.Is(err, ErrSuperseded) {
			d.initLogger("Directory.SetQuery").WarnContext(ctx, "Debounced fetch failed", "query", query, sl.Err(err))
		}
	})
}

// Search sets the query and fetches the requested page right away, dropping any
// pending debounced fetch.
func (d *Directory) Search(ctx context.Context, query string, page int) error {
	d.mu.Lock()
	d.state.Query = query
	d.mu.Unlock()

	var err error
	d.debouncer.Immediate(func() {
		err = d.fetch(ctx, strings.TrimSpace(query), max(page, 0))
	})
	return err
}

// ChangePage fetches another page of whatever the view currently shows.
func (d *Directory) ChangePage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	return d.fetch(ctx, d.currentQuery(), page)
}

// ClearSearch empties the query and immediately fetches the first unfiltered page.
func (d *Directory) ClearSearch(ctx context.Context) error {
	d.mu.Lock()
	d.state.Query = ""
	d.mu.Unlock()

	d.debouncer.Cancel()
	return d.fetch(ctx, "", 0)
}

// Delete removes one employee and reloads the current page.
func (d *Directory) Delete(ctx context.Context, id models.EmployeeID) error {
	log := d.initLogger("Directory.Delete")

	if !d.role.IsAdmin() {
		return models.ErrForbidden
	}

	if err := d.api.Delete(ctx, id); err != nil {
		log.ErrorContext(ctx, "Failed to delete employee", "id", id, sl.Err(err))
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	log.InfoContext(ctx, "Employee deleted", "id", id)

	d.mu.Lock()
	page := d.state.CurrentPage
	d.mu.Unlock()

	d.employeeDeleted(id)

	return d.fetch(ctx, d.currentQuery(), page)
}

// DeleteAll removes every employee after the operator typed DeleteAllConfirmation.
// On failure DeleteAllError carries the service message or a generic fallback, and
// the call may be repeated.
func (d *Directory) DeleteAll(ctx context.Context, confirmation string) error {
	log := d.initLogger("Directory.DeleteAll")

	if !d.role.IsAdmin() {
		return models.ErrForbidden
	}

	d.mu.Lock()
	if strings.TrimSpace(confirmation) != DeleteAllConfirmation {
		d.state.DeleteAllError = msgConfirmDeleteAll
		d.mu.Unlock()
		d.notify()
		return ErrNotConfirmed
	}
	d.state.DeletingAll = true
	d.state.DeleteAllError = ""
	d.mu.Unlock()
	d.notify()

	if err := d.api.DeleteAll(ctx); err != nil {
		msg := client.ServerMessage(err)
		if msg == "" {
			msg = msgDeleteAllFailed
		}
		log.ErrorContext(ctx, "Failed to delete all employees", sl.Err(err))

		d.mu.Lock()
		d.state.DeletingAll = false
		d.state.DeleteAllError = msg
		d.mu.Unlock()
		d.notify()

		return fmt.Errorf("failed to delete all employees: %w", err)
	}
	log.WarnContext(ctx, "All employees deleted")

	d.mu.Lock()
	d.state.DeletingAll = false
	d.state.DeleteAllError = ""
	d.state.Query = ""
	d.mu.Unlock()

	d.debouncer.Cancel()
	return d.fetch(ctx, "", 0)
}

// Close cancels a pending search. Responses that arrive afterwards are dropped.
func (d *Directory) Close() {
	d.debouncer.Cancel()

	d.mu.Lock()
	d.closed = true
	d.generation++
	d.mu.Unlock()
}

func (d *Directory) currentQuery() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return strings.TrimSpace(d.state.Query)
}

// fetch issues a list call for an empty query and a search call otherwise. Only the
// most recently issued request may update the state.
func (d *Directory) fetch(ctx context.Context, query string, page int) error {
	const opn = "Directory.fetch"
	log := d.initLogger(opn)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.generation++
	gen := d.generation
	filter := d.filter
	d.mu.Unlock()

	var (
		result models.PageResult
		err    error
		kind   = "list"
	)
	if query == "" {
		result, err = d.api.List(ctx, page, d.pageSize, filter)
	} else {
		kind = "search"
		result, err = d.api.Search(ctx, query, page, d.pageSize)
	}
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch employees", "kind", kind, "page", page, sl.Err(err))
		return fmt.Errorf("failed to fetch %s page %d: %w", kind, page, err)
	}

	d.mu.Lock()
	if gen != d.generation {
		d.mu.Unlock()
		d.metrics.StaleResponses.WithLabelValues(kind).Inc()
		log.DebugContext(ctx, "Discarding stale response", "kind", kind, "generation", gen)
		return ErrSuperseded
	}
	if kind == "list" {
		d.pageLoaded(result, page)
	} else {
		d.searchResultsLoaded(result, query, page)
	}
	d.mu.Unlock()
	d.notify()

	return nil
}

func (d *Directory) pageLoaded(result models.PageResult, page int) {
	d.state.Employees = result.Items
	d.state.TotalPages = result.TotalPages
	d.state.CurrentPage = page
	d.state.LoadedQuery = ""
}

func (d *Directory) searchResultsLoaded(result models.PageResult, query string, page int) {
	d.pageLoaded(result, page)
	d.state.LoadedQuery = query
}

// employeeDeleted drops the row right away; the reload that follows replaces it.
func (d *Directory) employeeDeleted(id models.EmployeeID) {
	d.mu.Lock()
	kept := d.state.Employees[:0:0]
	for _, e := range d.state.Employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	d.state.Employees = kept
	d.mu.Unlock()
	d.notify()
}

func (d *Directory) notify() {
	if d.onChange == nil {
		return
	}
	d.onChange(d.Snapshot())
}
