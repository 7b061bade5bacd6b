package log

// Field names shared by every structured log record.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldQuery       = "query"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldDataset     = "dataset"
	FieldSource      = "source"
	FieldRows        = "rows"
	FieldSkippedRows = "skipped_rows"
)

const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLoader  = "loader"
	ComponentIngest  = "ingest"
	ComponentStorage = "storage"
)
