package logging

import "context"

type contextKey string

const (
	sheetKey  contextKey = "sheet"
	sourceKey contextKey = "source"
)

// WithSheet adds the sheet name being operated on to the context.
func WithSheet(ctx context.Context, sheet string) context.Context {
	return context.WithValue(ctx, sheetKey, sheet)
}

// WithSource adds the input source (file path or "stdin") to the context.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// GetSheet retrieves the sheet name from the context.
// Returns empty string if not present.
func GetSheet(ctx context.Context) string {
	if s, ok := ctx.Value(sheetKey).(string); ok {
		return s
	}
	return ""
}

// GetSource retrieves the input source from the context.
// Returns empty string if not present.
func GetSource(ctx context.Context) string {
	if s, ok := ctx.Value(sourceKey).(string); ok {
		return s
	}
	return ""
}
