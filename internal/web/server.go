// Package web configures the HTTP server: page and v1 routes, static assets,
// metrics, API docs and the middleware chain.
package web

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"newsroom/internal/config"
	"newsroom/internal/session"
	"newsroom/internal/uploads"
	"newsroom/internal/web/flash"
	"newsroom/internal/web/pagehandler"
	"newsroom/internal/web/v1handler"
	"newsroom/internal/web/view"
	"newsroom/pkg/controller"
	"newsroom/pkg/newsapi"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec documents the JSON endpoints under /v1.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server. Zero durations keep the
// net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout is applied to every request via http.TimeoutHandler.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// SecureCookies marks the flash cookie HTTPS only.
	SecureCookies bool
	// FlashKey signs the flash cookie; empty picks a random key per process.
	FlashKey []byte
	// Development mounts the profiler under /debug.
	Development bool
}

// NewOptions maps the HTTP settings of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		SecureCookies:     cfg.Session.Secure,
		FlashKey:          []byte(cfg.Session.FlashKey),
		Development:       cfg.IsDevelopment(),
	}
}

type Deps struct {
	News     newsapi.Client
	Sessions *session.Manager
	Uploads  *uploads.Service
}

// NewRouter builds the route tree. Every request passes recovery, logging,
// security headers and session loading, in that order.
func NewRouter(deps Deps, opts Options) (chi.Router, error) {
	views, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("could not parse templates: %w", err)
	}

	pages := pagehandler.New(pagehandler.Deps{
		News:     deps.News,
		Sessions: deps.Sessions,
		Uploads:  deps.Uploads,
		Views:    views,
		Flash:    flash.New(opts.SecureCookies, opts.FlashKey),
	})
	api := v1handler.New(v1handler.Deps{
		News:     deps.News,
		Sessions: deps.Sessions,
		Uploads:  deps.Uploads,
	})

	r := chi.NewRouter()
	r.Use(controller.WithRecover)
	r.Use(controller.WithLogger)
	r.Use(controller.WithSecurityHeaders)
	r.Use(deps.Sessions.Middleware)

	r.Handle("/static/*", http.StripPrefix("/static/", view.Static()))

	// prometheus metrics
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	r.Handle(metricsPath, promhttp.Handler())

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Newsroom",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	r.Route("/v1", api.Routes)

	if opts.Development {
		r.Mount("/debug", controller.Profiler())
	}

	pages.Routes(r)
	r.NotFound(pages.NotFound)

	return r, nil
}

// NewServer wires up the router and returns a configured *http.Server.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	r, err := NewRouter(deps, opts)
	if err != nil {
		return nil, err
	}

	var handler http.Handler = r
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(r, opts.RequestTimeout, "request timed out")
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported on the Prometheus default registry, next to the promauto
// collectors.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
