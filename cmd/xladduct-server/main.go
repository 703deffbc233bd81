// Command xladduct-server provides a REST API for cross-link adduct
// generation.
//
// Configuration comes from the environment (optionally a .env file):
//
//	XLADDUCT_ADDR              Listen address (default: localhost:8080)
//	XLADDUCT_READ_TIMEOUT      HTTP read timeout (default: 15s)
//	XLADDUCT_WRITE_TIMEOUT     HTTP write timeout (default: 15s)
//	XLADDUCT_IDLE_TIMEOUT      HTTP idle timeout (default: 60s)
//	XLADDUCT_SHUTDOWN_TIMEOUT  Graceful shutdown limit (default: 30s)
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lennykovac/xladduct/api/handlers"
	"github.com/lennykovac/xladduct/api/middleware"
	"github.com/lennykovac/xladduct/internal/config"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/adduct", func(r chi.Router) {
			r.Post("/generate", handlers.GenerateHandler)
		})

		r.Route("/formula", func(r chi.Router) {
			r.Post("/parse", handlers.ParseFormulaHandler)
			r.Post("/mass", handlers.FormulaMassHandler)
		})
	})

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>xladduct API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>xladduct API</h1>
    <p>A REST API for nucleic-acid cross-link adduct generation.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/adduct/generate</code>
        <p>Generate the adduct search space for a nucleotide configuration.</p>
        <pre>{"target_nucleotides": ["A=C10H14N5O7P", "U=C9H13N2O9P"], "nucleotide_groups": ["ACGU"], "can_cross_link": "U", "sequence_restriction": "AU", "max_length": 2}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/formula/parse</code>
        <p>Parse an empirical formula and return its canonical form.</p>
        <pre>{"formula": "C9H13N2O9P"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/formula/mass</code>
        <p>Calculate the monoisotopic mass of a formula.</p>
        <pre>{"formula": "H2O"}</pre>
    </div>
</body>
</html>`))
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		slog.Info("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("could not gracefully shutdown", "error", err)
			os.Exit(1)
		}
		close(done)
	}()

	slog.Info("xladduct API server starting", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("could not listen", "addr", cfg.Addr, "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("server stopped")
}
