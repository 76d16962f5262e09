package logger

import "time"

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldStage     = "stage"
	FieldIndex     = "index"
	FieldValue     = "value"
	FieldDone      = "done"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map from alternating key-value pairs.
//
//	log.Info("done", logger.Fields("stage", "map", "index", 42))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a stage that failed.
func ErrorFields(stage string, err error) map[string]any {
	return map[string]any{
		FieldStage: stage,
		FieldError: err.Error(),
	}
}

// DurationFields creates fields for a timed stage.
func DurationFields(stage string, d time.Duration) map[string]any {
	return map[string]any{
		FieldStage:    stage,
		FieldDuration: d.Milliseconds(),
	}
}
