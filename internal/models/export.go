package models

import "time"

// ResponseDateLayout is the hyphenated ISO layout used when echoing dates.
const ResponseDateLayout = "2006-01-02"

// QueryDateLayout is the compact digit layout accepted in query parameters.
const QueryDateLayout = "20060102"

// ExportRequest describes one export of the rate dataset. The zero bounds
// are open; IsBackup is internal and never serialized back to a client.
type ExportRequest struct {
	StartDate    *time.Time
	EndDate      *time.Time
	OutputFormat string
	IsBackup     bool
}

// BackupRequest returns the request value used for internal full backups.
func BackupRequest(format string) ExportRequest {
	return ExportRequest{OutputFormat: format, IsBackup: true}
}

// ExportResponse echoes an export request's bounds and format and carries
// exactly one of a download link or a human-readable comment.
// swagger:model ExportResponse
type ExportResponse struct {
	// Start of the exported date range, hyphenated ISO form
	StartDate *string `json:"startDate"`

	// End of the exported date range, hyphenated ISO form
	EndDate *string `json:"endDate"`

	// Output format of the export
	// default: parquet
	OutputFormat string `json:"outputFormat"`

	// Shortened download link, absent when no artifact was produced
	URL *string `json:"url"`

	// Explanation when no link is returned
	// example: No results
	Comment *string `json:"comment"`
}

// NewExportResponse builds a response echoing the request's bounds.
func NewExportResponse(req ExportRequest) *ExportResponse {
	resp := &ExportResponse{OutputFormat: req.OutputFormat}
	if req.StartDate != nil {
		s := req.StartDate.Format(ResponseDateLayout)
		resp.StartDate = &s
	}
	if req.EndDate != nil {
		e := req.EndDate.Format(ResponseDateLayout)
		resp.EndDate = &e
	}
	return resp
}

// ExportErrorResponse represents an error response for export requests
// swagger:model ExportErrorResponse
type ExportErrorResponse struct {
	// Error message
	// example: Unsupported output format
	Error string `json:"error"`
}
