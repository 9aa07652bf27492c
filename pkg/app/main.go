package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/appmarket/pkg/cache"
	"github.com/ghuser/appmarket/pkg/database"
	"github.com/ghuser/appmarket/pkg/docstore"
	"github.com/ghuser/appmarket/pkg/events"
	"github.com/ghuser/appmarket/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing review", "review_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db           *database.Database // PostgreSQL pool for the review context
	Catalog      *docstore.Client   // MongoDB client for the catalog context
	Logger       logger.Logger
	Bus          *events.Bus    // in-process review event bus
	Bridge       *events.Bridge // serializes catalog rating writes
	Redis        *cache.RedisClient
	SessionStore sessions.Store // Redis-backed session store
}
