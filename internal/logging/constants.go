package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldLine       = "line"
	FieldAccount    = "account"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldMonth      = "month"
	FieldFiles      = "files"
	FieldFailed     = "failed"
	FieldEncoding   = "encoding"
	FieldFormat     = "format"
	FieldOutputFile = "output_file"
	FieldRunID      = "run_id"
	FieldComponent  = "component"
	FieldError      = "error"
)
