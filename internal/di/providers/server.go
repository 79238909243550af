package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/samber/do/v2"
	"go.uber.org/zap"

	"notes-api/internal/api"
	"notes-api/internal/config"
	"notes-api/internal/metrics"
	"notes-api/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	shutdownTimeout time.Duration
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideAPI provides the HTTP handler with every route mounted.
func ProvideAPI(i do.Injector) (*api.Server, error) {
	cfg := do.MustInvoke[*config.Config](i)
	db := do.MustInvoke[*DatabaseHandle](i)

	return api.NewServer(
		do.MustInvoke[*service.NoteService](i),
		do.MustInvoke[*service.CategoryService](i),
		db.DB,
		do.MustInvoke[*metrics.Metrics](i),
		api.Options{
			AppName:        cfg.App.Name,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		},
		do.MustInvoke[*zap.Logger](i),
	), nil
}

// ProvideHTTPServer provides the HTTP server. It is not started here.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*zap.Logger](i)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      do.MustInvoke[*api.Server](i),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Named("http")),
	}

	return &HTTPServerHandle{Server: srv, shutdownTimeout: cfg.Server.ShutdownTimeout}, nil
}
