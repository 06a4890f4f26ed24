package models

// RowError describes why a single spreadsheet row was rejected.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	TotalRows    int        `json:"totalRows"`
	SuccessCount int        `json:"successCount"`
	FailureCount int        `json:"failureCount"`
	Errors       []RowError `json:"errors"`
}
