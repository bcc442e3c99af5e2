package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRunID      = "run_id"
	FieldGameID     = "game_id"
	FieldThreadID   = "thread_id"
	FieldStage      = "stage"
	FieldTheme      = "theme"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
