package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/record"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

const banner = "Finance Tracker API is running!"

type Rest struct {
	Logger  *logrus.Logger
	Config  *config.Config
	Service *service.Service
	Storage *storage.Storage
}

// Handler builds the full HTTP handler: record operations under the API
// prefix, /status, the root banner and the OpenAPI docs.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	api := humago.New(mux, huma.DefaultConfig("Finance Tracker API", "1.0.0"))
	api.UseMiddleware(
		logging.HumaMiddleware(r.Logger),
		TimeoutMiddleware(r.Config.RequestTimeout),
	)

	prefix := r.Config.APIPrefix
	for _, kind := range service.Kinds {
		svc := r.Service.For(kind)
		record.NewAddRecordHandler(svc, prefix).Register(api)
		record.NewListRecordsHandler(svc, prefix).Register(api)
		record.NewUpdateRecordHandler(svc, prefix).Register(api)
		record.NewDeleteRecordHandler(svc, prefix).Register(api)
	}

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(banner))
	})

	return CORS(mux)
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Config.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.Logger.WithField("port", r.Config.Port).Info("HttpServer.Serve.listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
