package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts sheet and source from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if sheet := GetSheet(ctx); sheet != "" {
		e.Str("sheet", sheet)
	}

	if source := GetSource(ctx); source != "" {
		e.Str("source", source)
	}
}
