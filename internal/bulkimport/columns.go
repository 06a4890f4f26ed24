package bulkimport

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumns is returned when the header row lacks a required column.
var ErrMissingColumns = errors.New("missing required columns")

type column struct {
	name    string
	aliases []string
}

var columns = []column{
	{name: "firstName", aliases: []string{"first name", "firstname", "first_name"}},
	{name: "lastName", aliases: []string{"last name", "lastname", "last_name"}},
	{name: "email", aliases: []string{"email", "email id", "email_id", "email address", "email_address"}},
	{name: "phoneNumber", aliases: []string{
		"phone", "phone number", "phone_number", "mobile", "mobile number", "mobile_number",
	}},
	{name: "department", aliases: []string{"department", "dept"}},
}

// layout maps each column name to its index in a row.
type layout map[string]int

func parseHeader(header []string) (layout, error) {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		if name := normalizeHeader(cell); name != "" {
			if _, seen := index[name]; !seen {
				index[name] = i
			}
		}
	}

	found := make(layout, len(columns))
	var missing []string
	for _, col := range columns {
		idx, ok := lookup(index, col.aliases)
		if !ok {
			missing = append(missing, col.name)
			continue
		}
		found[col.name] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return found, nil
}

func lookup(index map[string]int, aliases []string) (int, bool) {
	for _, alias := range aliases {
		if idx, ok := index[alias]; ok {
			return idx, true
		}
	}
	return 0, false
}

func (l layout) value(row []string, name string) string {
	return cellValue(row, l[name])
}
