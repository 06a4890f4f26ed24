package models

import (
	"errors"
	"fmt"
	"strings"
)

// PageResult is the canonical shape of one page of employees, whatever envelope the
// server used to deliver it. TotalPages is always at least 1. Skipped counts the
// items that were present in the response but could not be decoded.
type PageResult struct {
	Items      []Employee
	TotalPages int
	Skipped    int
}

// Sort directions accepted by the list endpoint. The service orders by first name.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ErrInvalidSort is returned by ParseSortDir for anything but asc or desc.
var ErrInvalidSort = errors.New("sort direction must be asc or desc")

// ListFilter narrows the unfiltered list. The zero value asks for every employee in
// the service's default order.
type ListFilter struct {
	Departments []string
	SortDir     string
}

// ParseSortDir accepts asc or desc in any case. An empty value keeps the service default.
func ParseSortDir(value string) (string, error) {
	switch dir := strings.ToLower(strings.TrimSpace(value)); dir {
	case "", SortAsc, SortDesc:
		return dir, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, value)
	}
}

// CleanDepartments returns the non-blank departments, trimmed.
func (f ListFilter) CleanDepartments() []string {
	departments := make([]string, 0, len(f.Departments))
	for _, d := range f.Departments {
		if d = strings.TrimSpace(d); d != "" {
			departments = append(departments, d)
		}
	}
	return departments
}
