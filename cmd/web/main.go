package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"axiselect.app/web/internal/backend"
	"axiselect.app/web/internal/config"
	"axiselect.app/web/internal/gate"
	"axiselect.app/web/internal/i18n"
	mw "axiselect.app/web/internal/middleware"
	"axiselect.app/web/internal/promo"
)

// app bundles the long-lived dependencies every handler needs.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	backend  *backend.Client
	stats    *backend.Recorder
	registry *gate.Registry
	bundle   *i18n.Bundle
	links    promo.Links
	views    *viewRenderer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config problems are fatal before the logger exists.
		panicLog := zap.Must(zap.NewProduction())
		panicLog.Fatal("configuration invalid", zap.Error(err))
	}

	var log *zap.Logger
	if cfg.Prod() {
		log = zap.Must(zap.NewProduction())
	} else {
		log = zap.Must(zap.NewDevelopment())
	}
	defer func() { _ = log.Sync() }()

	var addr string
	flag.StringVar(&addr, "addr", ":"+cfg.Port, "HTTP listen address")
	flag.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public assets directory")
	flag.Parse()

	bundle, err := i18n.Load(cfg.LocalesDir, "zh", []string{"zh", "en"})
	if err != nil {
		log.Fatal("load locales", zap.Error(err))
	}
	links, err := promo.Load(cfg.PromoFile)
	if err != nil {
		log.Fatal("load promo links", zap.Error(err))
	}

	mw.ConfigureSessions(cfg.SessionSigningKey, cfg.Prod())

	client := backend.NewClient(cfg.BackendURL, cfg.BackendKey, log)
	stats := backend.NewRecorder(client, log)
	registry := gate.NewRegistry(0)
	registry.Start()

	views, err := newViewRenderer(cfg.TemplatesDir, bundle, !cfg.Prod())
	if err != nil {
		log.Fatal("parse templates", zap.Error(err))
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		backend:  client,
		stats:    stats,
		registry: registry,
		bundle:   bundle,
		links:    links,
		views:    views,
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Long enough for the registration event stream to stay open a while;
		// clients reconnect transparently when it lapses.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("web listening", zap.String("addr", addr), zap.Bool("prod", cfg.Prod()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	registry.Stop()
	stats.Close()
}

// router assembles the full middleware chain and route table.
func (a *app) router() chi.Router {
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(a.log))
	r.Use(chiMid.Recoverer)
	r.Use(chiMid.Compress(5))
	r.Use(mw.Session)
	r.Use(mw.Locale(a.bundle))
	r.Use(mw.VaryLocale)
	r.Use(mw.CSRF)
	r.Use(mw.Gate(a.registry))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(a.cfg.PublicDir, "assets"))))

	// Channel entry redirects kept from the QR-code campaigns.
	r.Get("/asa", channelRedirect("axiselectweba"))
	r.Get("/asa/*", channelRedirect("axiselectweba"))
	r.Get("/asb", channelRedirect("axiselectwebb"))
	r.Get("/asb/*", channelRedirect("axiselectwebb"))
	r.Get("/asc", channelRedirect("axiselectwebc"))
	r.Get("/asc/*", channelRedirect("axiselectwebc"))

	r.Get("/", a.HomeHandler)
	r.Get("/channel", a.ChannelPickerHandler)
	r.Post("/channel", a.ChannelSwitchHandler)

	r.Post("/register/send-code", a.SendCodeHandler)
	r.Post("/register/verify", a.VerifyCodeHandler)
	r.Post("/session/end", a.SessionEndHandler)
	r.Get("/events/registration", a.RegistrationEventsHandler)

	// Content pages sit behind the registration gate.
	r.Group(func(g chi.Router) {
		g.Use(mw.RequireRegistration(a.registry))
		g.Get("/program", a.ProgramHandler)
		g.Get("/getting-started", a.GettingStartedHandler)
		g.Get("/rules", a.RulesHandler)
		g.Get("/faq", a.FAQHandler)
		g.Get("/contact", a.ContactHandler)
		g.Get("/assistant", a.AssistantHandler)
	})

	return r
}

// channelRedirect sends campaign short paths to the home page carrying the
// matching channel marker.
func channelRedirect(marker string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/?"+marker, http.StatusPermanentRedirect)
	}
}
