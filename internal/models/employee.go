package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// UserAgent is sent with every request to the employee service.
const UserAgent = "ems-console/1.0"

// EmployeeID is the server-assigned identifier of an employee. The console never
// interprets it; it is only echoed back in request paths.
type EmployeeID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *EmployeeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode employee id: %w", err)
		}
		*id = EmployeeID(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("failed to decode employee id: %w", err)
	}
	*id = EmployeeID(num.String())

	return nil
}

// MarshalJSON emits canonical integers as JSON numbers and everything else as
// strings, so "007" and "+5" keep their spelling.
func (id EmployeeID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}

	return json.Marshal(string(id))
}

func (id EmployeeID) String() string {
	return string(id)
}

// Employee represents an employee record as exchanged with the employee service.
type Employee struct {
	ID          EmployeeID `json:"id,omitempty"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	Department  string     `json:"department,omitempty"`
}
